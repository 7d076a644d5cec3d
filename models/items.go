package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"
)

// NoCategory is sent by the admin product form when no primary category is chosen.
const NoCategory = -1

var maxProductPrice = decimal.NewFromInt(10000)

type Product struct {
	ID           int         `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Brand        string      `json:"brand" db:"brand"`
	Price        Money       `json:"price" db:"price"`
	ImageURL     string      `json:"image_url" db:"image_url"`
	Description  string      `json:"description" db:"description"`
	CategoryID   null.Int    `json:"category_id" db:"category_id"`
	CategoryName null.String `json:"category_name" db:"category_name"`
	Display      bool        `json:"display" db:"display"`
	Onhand       int         `json:"onhand" db:"onhand"`
	CreatedAt    time.Time   `json:"-" db:"created_at"`
}

type ItemCategory struct {
	ID            int         `json:"id" db:"id"`
	Name          string      `json:"name" db:"name"`
	Route         string      `json:"route" db:"route"`
	Display       bool        `json:"display" db:"display"`
	IconURL       null.String `json:"icon_url" db:"icon_url"`
	BannerURL     null.String `json:"banner_url" db:"banner_url"`
	BannerDisplay bool        `json:"banner_display" db:"banner_display"`
	BannerButton  null.String `json:"banner_button" db:"banner_button"`
	BannerCaption null.String `json:"banner_caption" db:"banner_caption"`
	CreatedAt     time.Time   `json:"-" db:"created_at"`
}

// CategoryForm is the admin add/edit payload for a category.
type CategoryForm struct {
	Name          string `json:"name"`
	Route         string `json:"route"`
	Display       bool   `json:"display"`
	IconURL       string `json:"icon_url"`
	BannerURL     string `json:"banner_url"`
	BannerDisplay bool   `json:"banner_display"`
	BannerButton  string `json:"banner_button"`
	BannerCaption string `json:"banner_caption"`
}

func (f *CategoryForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Route = strings.TrimSpace(f.Route)
	if err := lengthBetween("name", f.Name, 2, 45); err != nil {
		return err
	}
	if err := lengthBetween("route", f.Route, 2, 19); err != nil {
		return err
	}
	if err := lengthBetween("icon_url", f.IconURL, 0, 100); err != nil {
		return err
	}
	if err := lengthBetween("banner_url", f.BannerURL, 0, 100); err != nil {
		return err
	}
	if err := lengthBetween("banner_button", f.BannerButton, 0, 45); err != nil {
		return err
	}
	return lengthBetween("banner_caption", f.BannerCaption, 0, 150)
}

// ProductForm is the admin add/edit payload for a product.
type ProductForm struct {
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
	CategoryID  null.Int        `json:"category_id"`
	Display     bool            `json:"display"`
}

func (f *ProductForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Brand = strings.TrimSpace(f.Brand)
	if err := lengthBetween("name", f.Name, 2, 100); err != nil {
		return err
	}
	if err := lengthBetween("brand", f.Brand, 2, 45); err != nil {
		return err
	}
	if f.Price.IsNegative() || f.Price.GreaterThan(maxProductPrice) {
		return validationError("price must be between 0 and 10000")
	}
	if !f.Price.Equal(f.Price.Round(2)) {
		return validationError("price can have at most 2 decimal places")
	}
	if err := lengthBetween("image_url", f.ImageURL, 0, 100); err != nil {
		return err
	}
	if err := lengthBetween("description", f.Description, 0, 255); err != nil {
		return err
	}
	if f.CategoryID.Valid && f.CategoryID.Int == NoCategory {
		f.CategoryID = null.Int{}
	}
	return nil
}

type InventoryEntry struct {
	ProductID int    `json:"product_id" db:"id"`
	Name      string `json:"name" db:"name"`
	Onhand    int    `json:"onhand" db:"onhand"`
}

// InventoryUpdate sets the onhand count of one product.
type InventoryUpdate struct {
	ProductID int `json:"product_id"`
	Onhand    int `json:"onhand"`
}

func (u InventoryUpdate) Validate() error {
	if u.ProductID <= 0 {
		return validationError("product_id is required")
	}
	if u.Onhand < 0 {
		return validationError("can only accept numeric edits above 0")
	}
	return nil
}
