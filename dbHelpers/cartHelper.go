package dbHelpers

import (
	"database/sql"
	"math"
	"time"

	"github.com/RemoteState/petstash-server/database"
	"github.com/RemoteState/petstash-server/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// AddToCart adds quantity to the user's cart row for productID, creating the row if needed.
// The increment happens in SQL and the insert falls back to ON CONFLICT, one row per (user, product).
func AddToCart(userID, productID, quantity int) (models.CartChange, error) {
	change := models.CartUpdated
	err := database.Tx(func(tx *sqlx.Tx) error {
		var current int64
		SQL := `SELECT quantity FROM cart WHERE user_id = $1 AND product_id = $2`
		if err := tx.Get(&current, SQL, userID, productID); err != nil && err != sql.ErrNoRows {
			return err
		}
		if current+int64(quantity) > math.MaxInt32 {
			return ErrCartQuantityTooBig
		}

		SQL = `UPDATE cart
				SET quantity   = quantity + $1,
					updated_at = CURRENT_TIMESTAMP
				WHERE user_id = $2
				  AND product_id = $3`
		result, err := tx.Exec(SQL, quantity, userID, productID)
		if err != nil {
			return err
		}
		affectedCount, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affectedCount > 0 {
			return nil
		}

		change = models.CartAdded
		SQL = `INSERT INTO cart(user_id, product_id, quantity)
				VALUES ($1, $2, $3)
				ON CONFLICT (user_id, product_id)
					DO UPDATE SET quantity   = cart.quantity + EXCLUDED.quantity,
								  updated_at = CURRENT_TIMESTAMP`
		_, err = tx.Exec(SQL, userID, productID, quantity)
		return err
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return "", ErrProductNotFound
		}
		if errors.Cause(err) == ErrCartQuantityTooBig || isNumericOutOfRange(err) {
			return "", ErrCartQuantityTooBig
		}
		return "", errors.Wrapf(err, "failed to add product %d to cart of user %d", productID, userID)
	}
	return change, nil
}

// ModifyCartItem overwrites the quantity of an existing cart row, ErrCartItemNotFound if there is none
func ModifyCartItem(userID, productID, quantity int) error {
	SQL := `UPDATE cart
			SET quantity   = $1,
				updated_at = CURRENT_TIMESTAMP
			WHERE user_id = $2
			  AND product_id = $3`
	result, err := database.PetStashDB.Exec(SQL, quantity, userID, productID)
	if err != nil {
		return errors.Wrapf(err, "failed to modify product %d in cart of user %d", productID, userID)
	}
	affectedCount, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affectedCount == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// GetCart returns the user's cart joined with the current product name, price and onhand
func GetCart(userID int) ([]models.CartItem, error) {
	SQL := `SELECT c.id,
				   c.product_id,
				   p.name,
				   p.price,
				   p.onhand,
				   c.quantity
			FROM cart c
					 JOIN shop_products p ON p.id = c.product_id
			WHERE c.user_id = $1
			ORDER BY c.id`

	items := make([]models.CartItem, 0)
	err := database.PetStashDB.Select(&items, SQL, userID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get cart of user %d", userID)
	}
	return items, nil
}

// DeleteCartItem removes one product from the user's cart, deleting a missing row is not an error
func DeleteCartItem(userID, productID int) error {
	SQL := `DELETE FROM cart WHERE user_id = $1 AND product_id = $2`
	_, err := database.PetStashDB.Exec(SQL, userID, productID)
	return errors.Wrapf(err, "failed to delete product %d from cart of user %d", productID, userID)
}

// ClearCart removes every row of the user's cart
func ClearCart(userID int) error {
	SQL := `DELETE FROM cart WHERE user_id = $1`
	_, err := database.PetStashDB.Exec(SQL, userID)
	return errors.Wrapf(err, "failed to clear cart of user %d", userID)
}

// PurgeAbandonedCarts deletes cart rows not touched since olderThan and returns how many were removed
func PurgeAbandonedCarts(olderThan time.Time) (int64, error) {
	SQL := `DELETE FROM cart WHERE updated_at < $1`
	result, err := database.PetStashDB.Exec(SQL, olderThan)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge abandoned carts")
	}
	return result.RowsAffected()
}
