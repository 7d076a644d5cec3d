package models

import (
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/volatiletech/null"
)

type ShopUser struct {
	ID        int         `json:"id" db:"id"`
	FirstName string      `json:"first_name" db:"first_name"`
	LastName  string      `json:"last_name" db:"last_name"`
	Username  string      `json:"username" db:"username"`
	Email     string      `json:"email" db:"email"`
	Password  string      `json:"-" db:"password"`
	Address   null.String `json:"address" db:"address"`
	City      null.String `json:"city" db:"city"`
	State     null.String `json:"state" db:"state"`
	Zipcode   null.String `json:"zipcode" db:"zipcode"`
	CreatedAt time.Time   `json:"-" db:"created_at"`
}

type RegisterShopUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (u *RegisterShopUser) Validate() error {
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
	for _, field := range []struct{ name, value string }{
		{"first_name", u.FirstName},
		{"last_name", u.LastName},
		{"username", u.Username},
		{"email", u.Email},
		{"password", u.Password},
	} {
		if err := required(field.name, field.value); err != nil {
			return err
		}
	}
	if !strings.Contains(u.Email, "@") {
		return validationError("email is not valid")
	}
	return nil
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ShopUserAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

type JWTClaims struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	jwt.StandardClaims
}

type RegisterResponse struct {
	RegisterSuccess bool   `json:"registerSuccess"`
	ErrorText       string `json:"errorText,omitempty"`
}

type LoginResponse struct {
	LoginSuccess bool      `json:"loginSuccess"`
	Token        string    `json:"token"`
	ExpiresAt    time.Time `json:"expiresAt"`
	User         *ShopUser `json:"user"`
}

type Response struct {
	Success bool `json:"success"`
}
