package dbHelpers

import (
	"database/sql"

	"github.com/RemoteState/petstash-server/database"
	"github.com/RemoteState/petstash-server/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// maxOrderTotal is the largest value transactions.total_cost NUMERIC(10, 2) can hold
var maxOrderTotal = decimal.RequireFromString("99999999.99")

const transactionColumns = `id,
				   user_id,
				   total_cost,
				   address,
				   city,
				   state,
				   zipcode,
				   created_at`

// InsertTransaction prices every line from shop_products, then stores the transaction header and its
// line items in one database transaction. The caller supplied price of a line is ignored.
func InsertTransaction(userID int, shipping models.ShippingInfo, lines []models.OrderLine) (*models.Transaction, error) {
	var transaction models.Transaction

	err := database.Tx(func(tx *sqlx.Tx) error {
		total := decimal.Zero
		for _, line := range lines {
			price, err := productPriceTx(tx, line.ProductID)
			if err != nil {
				return err
			}
			total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		if total.GreaterThan(maxOrderTotal) {
			return ErrOrderTotalTooBig
		}

		insertTransaction := `INSERT INTO transactions(user_id, total_cost, address, city, state, zipcode)
							VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
		var transactionID int
		err := tx.Get(&transactionID, insertTransaction,
			userID,
			total,
			shipping.Address,
			shipping.City,
			shipping.State,
			shipping.Zipcode)
		if err != nil {
			return err
		}

		insertItem := `INSERT INTO transaction_items(transaction_id, product_id, quantity) VALUES ($1, $2, $3)`
		for _, line := range lines {
			if _, err := tx.Exec(insertItem, transactionID, line.ProductID, line.Quantity); err != nil {
				return err
			}
		}

		query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
		return tx.Get(&transaction, query, transactionID)
	})
	if err != nil {
		switch errors.Cause(err) {
		case ErrProductNotFound, ErrProductUnavailable, ErrOrderTotalTooBig:
			return nil, err
		}
		if isNumericOutOfRange(err) {
			return nil, ErrOrderTotalTooBig
		}
		return nil, errors.Wrapf(err, "failed to create transaction for user %d", userID)
	}
	return &transaction, nil
}

// productPriceTx reads the current price of a product that is displayed in the shop
func productPriceTx(tx *sqlx.Tx, productID int) (decimal.Decimal, error) {
	SQL := `SELECT price, display FROM shop_products WHERE id = $1`
	product := struct {
		Price   decimal.Decimal `db:"price"`
		Display bool            `db:"display"`
	}{}
	err := tx.Get(&product, SQL, productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return decimal.Zero, errors.Wrapf(ErrProductNotFound, "product %d", productID)
		}
		return decimal.Zero, err
	}
	if !product.Display {
		return decimal.Zero, errors.Wrapf(ErrProductUnavailable, "product %d", productID)
	}
	return product.Price, nil
}

// GetTransactionByID returns a transaction by id. It does not check who owns it.
func GetTransactionByID(transactionID int) (*models.Transaction, error) {
	SQL := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	var transaction models.Transaction
	err := database.PetStashDB.Get(&transaction, SQL, transactionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTransactionNotFound
		}
		return nil, errors.Wrapf(err, "failed to get transaction %d", transactionID)
	}
	return &transaction, nil
}

// GetTransactionsForUser returns all transactions of a user, newest first
func GetTransactionsForUser(userID int) ([]models.Transaction, error) {
	SQL := `SELECT ` + transactionColumns + `
			FROM transactions
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC`
	transactions := make([]models.Transaction, 0)
	err := database.PetStashDB.Select(&transactions, SQL, userID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get transactions of user %d", userID)
	}
	return transactions, nil
}

// GetTransactionItems returns the line items of a transaction with the product's current name and price,
// ErrTransactionNotFound if there is no such transaction
func GetTransactionItems(transactionID int) ([]models.TransactionItem, error) {
	var exists bool
	SQL := `SELECT EXISTS(SELECT 1 FROM transactions WHERE id = $1)`
	if err := database.PetStashDB.Get(&exists, SQL, transactionID); err != nil {
		return nil, errors.Wrapf(err, "failed to get transaction %d", transactionID)
	}
	if !exists {
		return nil, ErrTransactionNotFound
	}

	SQL = `SELECT ti.product_id,
				   p.name,
				   ti.quantity,
				   p.price
			FROM transaction_items ti
					 JOIN shop_products p ON p.id = ti.product_id
			WHERE ti.transaction_id = $1
			ORDER BY ti.id`
	items := make([]models.TransactionItem, 0)
	err := database.PetStashDB.Select(&items, SQL, transactionID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get items of transaction %d", transactionID)
	}
	return items, nil
}

// GetTransactionCount returns the number of placed transactions
func GetTransactionCount() (int, error) {
	SQL := `SELECT count(*) FROM transactions`
	var count int
	err := database.PetStashDB.Get(&count, SQL)
	return count, err
}
