package dbHelpers

import (
	"database/sql"
	"fmt"

	"github.com/RemoteState/petstash-server/database"
	"github.com/RemoteState/petstash-server/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null"
)

const categoryColumns = `id,
				name,
				route,
				display,
				icon_url,
				banner_url,
				banner_display,
				banner_button,
				banner_caption,
				created_at`

var categoryConstraints = map[string]error{
	"shop_categories_route_key": ErrCategoryRouteTaken,
}

// GetActiveCategories returns all categories displayed in the shop
func GetActiveCategories() ([]models.ItemCategory, error) {
	SQL := `SELECT ` + categoryColumns + `
			FROM shop_categories
			WHERE display = TRUE
			ORDER BY name`

	categories := make([]models.ItemCategory, 0)
	err := database.PetStashDB.Select(&categories, SQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get active categories")
	}
	return categories, nil
}

// GetCategories returns all categories, hidden ones included
func GetCategories() ([]models.ItemCategory, error) {
	SQL := `SELECT ` + categoryColumns + ` FROM shop_categories ORDER BY id`

	categories := make([]models.ItemCategory, 0)
	err := database.PetStashDB.Select(&categories, SQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get categories")
	}
	return categories, nil
}

// GetCategoryById gets the category details for a given id
func GetCategoryById(categoryID int) (*models.ItemCategory, error) {
	SQL := `SELECT ` + categoryColumns + ` FROM shop_categories WHERE id = $1`

	var category models.ItemCategory
	err := database.PetStashDB.Get(&category, SQL, categoryID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCategoryNotFound
		}
		return nil, errors.Wrapf(err, "failed to get category %d", categoryID)
	}
	return &category, nil
}

// GetCategoryByRoute gets the category for a public route
func GetCategoryByRoute(route string) (*models.ItemCategory, error) {
	SQL := `SELECT ` + categoryColumns + ` FROM shop_categories WHERE route = $1`

	var category models.ItemCategory
	err := database.PetStashDB.Get(&category, SQL, route)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCategoryNotFound
		}
		return nil, errors.Wrapf(err, "failed to get category %q", route)
	}
	return &category, nil
}

// InsertCategory creates a new category entry and logs it for the admin
func InsertCategory(form models.CategoryForm, admin models.AdminSession) (int, error) {
	var categoryID int
	err := database.Tx(func(tx *sqlx.Tx) error {
		SQL := `INSERT INTO shop_categories(name, display, route, icon_url, banner_url, banner_display, banner_button, banner_caption)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
		err := tx.Get(&categoryID, SQL,
			form.Name,
			form.Display,
			form.Route,
			nullIfEmpty(form.IconURL),
			nullIfEmpty(form.BannerURL),
			form.BannerDisplay,
			nullIfEmpty(form.BannerButton),
			nullIfEmpty(form.BannerCaption))
		if err != nil {
			return err
		}
		return insertUpdateLogTx(tx, fmt.Sprintf("Created new product category: %s.", form.Name), admin)
	})
	if err != nil {
		return 0, errors.Wrap(mapConstraintError(err, categoryConstraints), "failed to insert category")
	}
	return categoryID, nil
}

// ModifyCategory modifies a given category and logs it for the admin
func ModifyCategory(categoryID int, form models.CategoryForm, admin models.AdminSession) error {
	err := database.Tx(func(tx *sqlx.Tx) error {
		SQL := `UPDATE shop_categories
				SET name           = $1,
					display        = $2,
					route          = $3,
					icon_url       = $4,
					banner_url     = $5,
					banner_display = $6,
					banner_button  = $7,
					banner_caption = $8
				WHERE id = $9`
		result, err := tx.Exec(SQL,
			form.Name,
			form.Display,
			form.Route,
			nullIfEmpty(form.IconURL),
			nullIfEmpty(form.BannerURL),
			form.BannerDisplay,
			nullIfEmpty(form.BannerButton),
			nullIfEmpty(form.BannerCaption),
			categoryID)
		if err != nil {
			return err
		}
		affectedCount, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affectedCount == 0 {
			return ErrCategoryNotFound
		}
		return insertUpdateLogTx(tx, fmt.Sprintf("Updated product category: %s.", form.Name), admin)
	})
	if err == ErrCategoryNotFound {
		return err
	}
	return errors.Wrapf(mapConstraintError(err, categoryConstraints), "failed to modify category %d", categoryID)
}

// GetCategoryCount returns the number of categories
func GetCategoryCount() (int, error) {
	SQL := `SELECT count(*) FROM shop_categories`
	var count int
	err := database.PetStashDB.Get(&count, SQL)
	return count, err
}

func nullIfEmpty(value string) null.String {
	return null.NewString(value, value != "")
}
