// Package testdb runs the data access code against an in-memory SQLite database in tests.
package testdb

import (
	"testing"

	"github.com/RemoteState/petstash-server/database"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// schema mirrors database/migrations/000001_init.up.sql in SQLite syntax.
const schema = `
CREATE TABLE admin_users (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name  TEXT      NOT NULL,
	last_name   TEXT      NOT NULL,
	employee_id TEXT      NOT NULL,
	username    TEXT      NOT NULL UNIQUE,
	password    TEXT      NOT NULL,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE admin_update_log (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	log            TEXT      NOT NULL,
	admin_id       INTEGER   NOT NULL REFERENCES admin_users (id),
	admin_username TEXT      NOT NULL,
	created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE shop_categories (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	name           TEXT      NOT NULL,
	route          TEXT      NOT NULL UNIQUE,
	display        BOOLEAN   NOT NULL DEFAULT TRUE,
	icon_url       TEXT,
	banner_url     TEXT,
	banner_display BOOLEAN   NOT NULL DEFAULT FALSE,
	banner_button  TEXT,
	banner_caption TEXT,
	created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE shop_products (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT           NOT NULL,
	brand       TEXT           NOT NULL,
	price       NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
	image_url   TEXT           NOT NULL DEFAULT '',
	description TEXT           NOT NULL DEFAULT '',
	category_id INTEGER REFERENCES shop_categories (id),
	display     BOOLEAN        NOT NULL DEFAULT TRUE,
	onhand      INTEGER        NOT NULL DEFAULT 0 CHECK (onhand >= 0),
	created_at  TIMESTAMP      NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE shop_users (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT      NOT NULL,
	last_name  TEXT      NOT NULL,
	username   TEXT      NOT NULL UNIQUE,
	email      TEXT      NOT NULL UNIQUE,
	password   TEXT      NOT NULL,
	address    TEXT,
	city       TEXT,
	state      TEXT,
	zipcode    TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE cart (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    INTEGER   NOT NULL REFERENCES shop_users (id),
	product_id INTEGER   NOT NULL REFERENCES shop_products (id),
	quantity   INTEGER   NOT NULL CHECK (quantity > 0),
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (user_id, product_id)
);
CREATE TABLE transactions (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    INTEGER        NOT NULL REFERENCES shop_users (id),
	total_cost NUMERIC(10, 2) NOT NULL,
	address    TEXT           NOT NULL,
	city       TEXT           NOT NULL,
	state      TEXT           NOT NULL,
	zipcode    TEXT           NOT NULL,
	created_at TIMESTAMP      NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE transaction_items (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	transaction_id INTEGER NOT NULL REFERENCES transactions (id),
	product_id     INTEGER NOT NULL REFERENCES shop_products (id),
	quantity       INTEGER NOT NULL CHECK (quantity > 0)
);
`

// Setup creates a fresh in-memory database, installs it as database.PetStashDB and
// restores the previous handle when the test ends.
func Setup(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	_, err = db.Exec(schema)
	require.NoError(t, err)

	previous := database.PetStashDB
	database.PetStashDB = db
	t.Cleanup(func() {
		database.PetStashDB = previous
		_ = db.Close()
	})
	return db
}

// SeedCategory inserts a category and returns its id.
func SeedCategory(t *testing.T, db *sqlx.DB, name, route string, display bool) int {
	t.Helper()
	var id int
	err := db.Get(&id, `INSERT INTO shop_categories(name, route, display) VALUES ($1, $2, $3) RETURNING id`,
		name, route, display)
	require.NoError(t, err)
	return id
}

// SeedProduct inserts a product with the given id and returns it. categoryID 0 means no category.
func SeedProduct(t *testing.T, db *sqlx.DB, id int, name, price string, categoryID int, display bool, onhand int) int {
	t.Helper()
	var category interface{}
	if categoryID > 0 {
		category = categoryID
	}
	_, err := db.Exec(`INSERT INTO shop_products(id, name, brand, price, category_id, display, onhand)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, name, "Acme", price, category, display, onhand)
	require.NoError(t, err)
	return id
}

// SeedShopUser inserts a shopper with the given id and returns it.
func SeedShopUser(t *testing.T, db *sqlx.DB, id int, username string) int {
	t.Helper()
	_, err := db.Exec(`INSERT INTO shop_users(id, first_name, last_name, username, email, password)
			VALUES ($1, $2, $3, $4, $5, $6)`,
		id, "Test", "Shopper", username, username+"@example.com", "not-a-hash")
	require.NoError(t, err)
	return id
}
