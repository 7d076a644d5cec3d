package models

import (
	"strings"
	"time"
)

type AdminUser struct {
	ID         int       `json:"id" db:"id"`
	FirstName  string    `json:"first_name" db:"first_name"`
	LastName   string    `json:"last_name" db:"last_name"`
	EmployeeID string    `json:"employee_id" db:"employee_id"`
	Username   string    `json:"username" db:"username"`
	Password   string    `json:"-" db:"password"`
	CreatedAt  time.Time `json:"-" db:"created_at"`
}

// AdminSession is the server-side state behind the admin session cookie.
type AdminSession struct {
	AdminID  int    `json:"admin_id"`
	Username string `json:"admin_username"`
	LastName string `json:"admin_lastname"`
	LoggedIn bool   `json:"admin_logged_in"`
}

type RegisterAdmin struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	EmployeeID string `json:"employee_id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Confirm    string `json:"confirm"`
}

// Validate checks the registration form; validEmployeeIDs is the allow-list of employee ids.
func (a *RegisterAdmin) Validate(validEmployeeIDs []string) error {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Username = strings.TrimSpace(a.Username)
	a.EmployeeID = strings.TrimSpace(a.EmployeeID)
	if err := lengthBetween("first_name", a.FirstName, 1, 45); err != nil {
		return err
	}
	if err := lengthBetween("last_name", a.LastName, 1, 45); err != nil {
		return err
	}
	found := false
	for _, id := range validEmployeeIDs {
		if id != "" && id == a.EmployeeID {
			found = true
			break
		}
	}
	if !found {
		return validationError("must use a valid employee ID")
	}
	if err := lengthBetween("username", a.Username, 4, 25); err != nil {
		return err
	}
	if err := required("password", a.Password); err != nil {
		return err
	}
	if a.Password != a.Confirm {
		return validationError("passwords do not match")
	}
	return nil
}

type UpdateLog struct {
	ID            int       `json:"id" db:"id"`
	Log           string    `json:"log" db:"log"`
	AdminID       int       `json:"admin_id" db:"admin_id"`
	AdminUsername string    `json:"admin_username" db:"admin_username"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type DashBoardStats struct {
	Products       int `json:"products"`
	ActiveProducts int `json:"activeProducts"`
	Categories     int `json:"categories"`
	ShopUsers      int `json:"shopUsers"`
	Transactions   int `json:"transactions"`
}

type AdminLoginResponse struct {
	LoginSuccess bool       `json:"loginSuccess"`
	Admin        *AdminUser `json:"admin"`
}
