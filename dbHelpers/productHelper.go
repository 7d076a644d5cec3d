package dbHelpers

import (
	"database/sql"
	"fmt"

	"github.com/RemoteState/petstash-server/database"
	"github.com/RemoteState/petstash-server/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const productColumns = `p.id,
				p.name,
				p.brand,
				p.price,
				p.image_url,
				p.description,
				p.category_id,
				p.display,
				p.onhand,
				p.created_at`

// productOrder is the default listing order of products: by category, then by name
const productOrder = ` ORDER BY p.category_id, p.name`

// GetActiveProducts returns all products displayed in the shop
func GetActiveProducts() ([]models.Product, error) {
	SQL := `SELECT ` + productColumns + `
			FROM shop_products p
			WHERE p.display = TRUE` + productOrder

	products := make([]models.Product, 0)
	err := database.PetStashDB.Select(&products, SQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get active products")
	}
	return products, nil
}

// GetActiveProductsByCategory returns the displayed products of one category
func GetActiveProductsByCategory(categoryID int) ([]models.Product, error) {
	SQL := `SELECT ` + productColumns + `
			FROM shop_products p
			WHERE p.display = TRUE
			  AND p.category_id = $1` + productOrder

	products := make([]models.Product, 0)
	err := database.PetStashDB.Select(&products, SQL, categoryID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get products of category %d", categoryID)
	}
	return products, nil
}

// GetActiveProductsByRoute returns the displayed products of the category published under route
func GetActiveProductsByRoute(route string) ([]models.Product, error) {
	category, err := GetCategoryByRoute(route)
	if err != nil {
		return nil, err
	}
	if !category.Display {
		return nil, ErrCategoryNotFound
	}
	return GetActiveProductsByCategory(category.ID)
}

// GetProducts returns every product with its category name, for the back office
func GetProducts() ([]models.Product, error) {
	SQL := `SELECT ` + productColumns + `,
				c.name AS category_name
			FROM shop_products p
					 LEFT JOIN shop_categories c ON c.id = p.category_id` + productOrder

	products := make([]models.Product, 0)
	err := database.PetStashDB.Select(&products, SQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get products")
	}
	return products, nil
}

// GetProductById gets the product details for a given id
func GetProductById(productID int) (*models.Product, error) {
	SQL := `SELECT ` + productColumns + `,
				c.name AS category_name
			FROM shop_products p
					 LEFT JOIN shop_categories c ON c.id = p.category_id
			WHERE p.id = $1`

	var product models.Product
	err := database.PetStashDB.Get(&product, SQL, productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, errors.Wrapf(err, "failed to get product %d", productID)
	}
	return &product, nil
}

// InsertProduct creates a new product entry and logs it for the admin
func InsertProduct(form models.ProductForm, admin models.AdminSession) (int, error) {
	var productID int
	err := database.Tx(func(tx *sqlx.Tx) error {
		SQL := `INSERT INTO shop_products(name, brand, price, image_url, description, category_id, display)
				VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
		err := tx.Get(&productID, SQL,
			form.Name,
			form.Brand,
			form.Price,
			form.ImageURL,
			form.Description,
			form.CategoryID,
			form.Display)
		if err != nil {
			return err
		}
		return insertUpdateLogTx(tx, fmt.Sprintf("Successfully added new product: %s by %s.", form.Name, form.Brand), admin)
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, ErrCategoryNotFound
		}
		return 0, errors.Wrap(err, "failed to insert product")
	}
	return productID, nil
}

// ModifyProduct modifies a given product and logs it for the admin. Onhand is only changed through inventory.
func ModifyProduct(productID int, form models.ProductForm, admin models.AdminSession) error {
	err := database.Tx(func(tx *sqlx.Tx) error {
		SQL := `UPDATE shop_products
				SET name        = $1,
					brand       = $2,
					price       = $3,
					image_url   = $4,
					description = $5,
					category_id = $6,
					display     = $7
				WHERE id = $8`
		result, err := tx.Exec(SQL,
			form.Name,
			form.Brand,
			form.Price,
			form.ImageURL,
			form.Description,
			form.CategoryID,
			form.Display,
			productID)
		if err != nil {
			return err
		}
		affectedCount, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affectedCount == 0 {
			return ErrProductNotFound
		}
		return insertUpdateLogTx(tx, fmt.Sprintf("Successfully updated product: %s by %s.", form.Name, form.Brand), admin)
	})
	if err == ErrProductNotFound {
		return err
	}
	if isForeignKeyViolation(err) {
		return ErrCategoryNotFound
	}
	return errors.Wrapf(err, "failed to modify product %d", productID)
}

// GetProductCount returns the number of products, only displayed ones if activeOnly is set
func GetProductCount(activeOnly bool) (int, error) {
	SQL := `SELECT count(*) FROM shop_products`
	if activeOnly {
		SQL += ` WHERE display = TRUE`
	}
	var count int
	err := database.PetStashDB.Get(&count, SQL)
	return count, err
}

// GetInventory returns the onhand count of every product
func GetInventory() ([]models.InventoryEntry, error) {
	SQL := `SELECT p.id, p.name, p.onhand FROM shop_products p` + productOrder
	inventory := make([]models.InventoryEntry, 0)
	err := database.PetStashDB.Select(&inventory, SQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get inventory")
	}
	return inventory, nil
}

// ReceiveInventory sets the onhand count of the given products, all of them or none
func ReceiveInventory(updates []models.InventoryUpdate, admin models.AdminSession) error {
	err := database.Tx(func(tx *sqlx.Tx) error {
		SQL := `UPDATE shop_products SET onhand = $1 WHERE id = $2`
		for _, update := range updates {
			result, err := tx.Exec(SQL, update.Onhand, update.ProductID)
			if err != nil {
				return err
			}
			affectedCount, err := result.RowsAffected()
			if err != nil {
				return err
			}
			if affectedCount == 0 {
				return errors.Wrapf(ErrProductNotFound, "product %d", update.ProductID)
			}
		}
		return insertUpdateLogTx(tx, fmt.Sprintf("Received inventory for %d products.", len(updates)), admin)
	})
	if errors.Cause(err) == ErrProductNotFound {
		return err
	}
	return errors.Wrap(err, "failed to receive inventory")
}
