package dbHelpers

import (
	"testing"

	"github.com/RemoteState/petstash-server/database/testdb"
	"github.com/RemoteState/petstash-server/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShipping = models.ShippingInfo{
	Address: "12 Kennel Lane",
	City:    "Portland",
	State:   "OR",
	Zipcode: "97201",
}

func transactionRows(t *testing.T, db *sqlx.DB) (int, int) {
	t.Helper()
	var headers, items int
	require.NoError(t, db.Get(&headers, `SELECT count(*) FROM transactions`))
	require.NoError(t, db.Get(&items, `SELECT count(*) FROM transaction_items`))
	return headers, items
}

func TestInsertTransaction(t *testing.T) {
	db := testdb.Setup(t)
	testdb.SeedShopUser(t, db, 9, "fido")
	testdb.SeedProduct(t, db, 3, "Dog Food", "19.99", 0, true, 20)

	transaction, err := InsertTransaction(9, testShipping, []models.OrderLine{
		{ProductID: 3, ClientPrice: decimal.RequireFromString("0.01"), Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "39.98", transaction.TotalCost.StringFixed(2))
	assert.Equal(t, 9, transaction.UserID)
	assert.Equal(t, "Portland", transaction.City)

	items, err := GetTransactionItems(transaction.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.TransactionItem{
		ProductID: 3,
		Name:      "Dog Food",
		Quantity:  2,
		Price:     items[0].Price,
	}, items[0])
	assert.Equal(t, "19.99", items[0].Price.StringFixed(2))

	stored, err := GetTransactionByID(transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, transaction.ID, stored.ID)
	assert.True(t, stored.TotalCost.Equal(decimal.RequireFromString("39.98")))
}

func TestInsertTransactionTotalsEveryLine(t *testing.T) {
	db := testdb.Setup(t)
	testdb.SeedShopUser(t, db, 1, "alice")
	testdb.SeedProduct(t, db, 1, "Catnip", "3.10", 0, true, 20)
	testdb.SeedProduct(t, db, 2, "Scratcher", "24.95", 0, true, 20)

	transaction, err := InsertTransaction(1, testShipping, []models.OrderLine{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "34.25", transaction.TotalCost.StringFixed(2))

	items, err := GetTransactionItems(transaction.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 2, items[1].ProductID)
}

func TestInsertTransactionRollsBack(t *testing.T) {
	db := testdb.Setup(t)
	testdb.SeedShopUser(t, db, 1, "alice")
	testdb.SeedProduct(t, db, 1, "Catnip", "3.10", 0, true, 20)
	testdb.SeedProduct(t, db, 2, "Retired Toy", "5.00", 0, false, 20)

	_, err := InsertTransaction(1, testShipping, []models.OrderLine{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 1},
	})
	assert.Equal(t, ErrProductUnavailable, errors.Cause(err))

	_, err = InsertTransaction(1, testShipping, []models.OrderLine{
		{ProductID: 1, Quantity: 1},
		{ProductID: 99, Quantity: 1},
	})
	assert.Equal(t, ErrProductNotFound, errors.Cause(err))

	headers, items := transactionRows(t, db)
	assert.Zero(t, headers)
	assert.Zero(t, items)
}

func TestGetTransactionsForUser(t *testing.T) {
	db := testdb.Setup(t)
	testdb.SeedShopUser(t, db, 1, "alice")
	testdb.SeedShopUser(t, db, 2, "bob")
	testdb.SeedProduct(t, db, 1, "Catnip", "3.10", 0, true, 20)

	first, err := InsertTransaction(1, testShipping, []models.OrderLine{{ProductID: 1, Quantity: 1}})
	require.NoError(t, err)
	second, err := InsertTransaction(1, testShipping, []models.OrderLine{{ProductID: 1, Quantity: 2}})
	require.NoError(t, err)
	_, err = InsertTransaction(2, testShipping, []models.OrderLine{{ProductID: 1, Quantity: 5}})
	require.NoError(t, err)

	transactions, err := GetTransactionsForUser(1)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, second.ID, transactions[0].ID)
	assert.Equal(t, first.ID, transactions[1].ID)

	count, err := GetTransactionCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestGetTransactionByIDNotFound(t *testing.T) {
	testdb.Setup(t)
	_, err := GetTransactionByID(404)
	assert.Equal(t, ErrTransactionNotFound, err)

	_, err = GetTransactionItems(404)
	assert.Equal(t, ErrTransactionNotFound, err)
}

func TestInsertTransactionRejectsOversizedTotal(t *testing.T) {
	db := testdb.Setup(t)
	testdb.SeedShopUser(t, db, 1, "alice")
	testdb.SeedProduct(t, db, 1, "Aquarium", "9999.00", 0, true, 20)

	_, err := InsertTransaction(1, testShipping, []models.OrderLine{{ProductID: 1, Quantity: 10001}})
	assert.Equal(t, ErrOrderTotalTooBig, err)

	headers, items := transactionRows(t, db)
	assert.Zero(t, headers)
	assert.Zero(t, items)

	transaction, err := InsertTransaction(1, testShipping, []models.OrderLine{{ProductID: 1, Quantity: 10000}})
	require.NoError(t, err)
	assert.Equal(t, "99990000.00", transaction.TotalCost.String())
}
