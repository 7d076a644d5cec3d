package dbHelpers

import (
	"database/sql"

	"github.com/RemoteState/petstash-server/database"
	"github.com/RemoteState/petstash-server/models"
	"github.com/pkg/errors"
)

const shopUserColumns = `id,
				first_name,
				last_name,
				username,
				email,
				password,
				address,
				city,
				state,
				zipcode,
				created_at`

var shopUserConstraints = map[string]error{
	"shop_users_username_key": ErrUsernameTaken,
	"shop_users_email_key":    ErrEmailTaken,
}

// InsertShopUser creates a new shopper entry. hashedPassword must already be hashed.
func InsertShopUser(user models.RegisterShopUser, hashedPassword string) (int, error) {
	SQL := `INSERT INTO shop_users(first_name, last_name, username, email, password)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var userID int
	err := database.PetStashDB.Get(&userID, SQL,
		user.FirstName,
		user.LastName,
		user.Username,
		user.Email,
		hashedPassword)
	if err != nil {
		if mapped := mapConstraintError(err, shopUserConstraints); mapped != err {
			return 0, mapped
		}
		return 0, errors.Wrap(err, "failed to insert shop user")
	}
	return userID, nil
}

// CheckShopUserAvailable returns ErrUsernameTaken or ErrEmailTaken if a shopper already uses them
func CheckShopUserAvailable(username, email string) error {
	SQL := `SELECT username, email FROM shop_users WHERE username = $1 OR email = $2`
	existing := make([]struct {
		Username string `db:"username"`
		Email    string `db:"email"`
	}, 0)
	err := database.PetStashDB.Select(&existing, SQL, username, email)
	if err != nil {
		return errors.Wrap(err, "failed to check existing shop users")
	}
	for _, user := range existing {
		if user.Username == username {
			return ErrUsernameTaken
		}
	}
	if len(existing) > 0 {
		return ErrEmailTaken
	}
	return nil
}

// GetShopUserById returns the shopper details for a given id
func GetShopUserById(userID int) (*models.ShopUser, error) {
	SQL := `SELECT ` + shopUserColumns + ` FROM shop_users WHERE id = $1`
	var user models.ShopUser
	err := database.PetStashDB.Get(&user, SQL, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrShopUserNotFound
		}
		return nil, errors.Wrapf(err, "failed to get shop user %d", userID)
	}
	return &user, nil
}

// GetShopUserByUsername returns the shopper, password hash included, for a login attempt
func GetShopUserByUsername(username string) (*models.ShopUser, error) {
	SQL := `SELECT ` + shopUserColumns + ` FROM shop_users WHERE username = $1`
	var user models.ShopUser
	err := database.PetStashDB.Get(&user, SQL, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrShopUserNotFound
		}
		return nil, errors.Wrapf(err, "failed to get shop user %s", username)
	}
	return &user, nil
}

// ModifyShopUserAddress replaces the saved shipping address of a shopper
func ModifyShopUserAddress(userID int, address models.ShopUserAddress) error {
	SQL := `UPDATE shop_users
			SET address = $1,
				city    = $2,
				state   = $3,
				zipcode = $4
			WHERE id = $5`
	result, err := database.PetStashDB.Exec(SQL,
		nullIfEmpty(address.Address),
		nullIfEmpty(address.City),
		nullIfEmpty(address.State),
		nullIfEmpty(address.Zipcode),
		userID)
	if err != nil {
		return errors.Wrapf(err, "failed to modify address of shop user %d", userID)
	}
	affectedCount, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affectedCount == 0 {
		return ErrShopUserNotFound
	}
	return nil
}

// GetShopUserCount returns the number of registered shoppers
func GetShopUserCount() (int, error) {
	var count int
	err := database.PetStashDB.Get(&count, `SELECT count(*) FROM shop_users`)
	return count, err
}
