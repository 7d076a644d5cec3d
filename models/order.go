package models

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID        int       `json:"transaction_id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	TotalCost Money     `json:"total_cost" db:"total_cost"`
	Address   string    `json:"address" db:"address"`
	City      string    `json:"city" db:"city"`
	State     string    `json:"state" db:"state"`
	Zipcode   string    `json:"zipcode" db:"zipcode"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TransactionItem is a line item joined with the live product row, so Price is the current catalog price.
type TransactionItem struct {
	ProductID int    `json:"product_id" db:"product_id"`
	Name      string `json:"name" db:"name"`
	Quantity  int    `json:"qty" db:"quantity"`
	Price     Money  `json:"price" db:"price"`
}

type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

// OrderLine is one requested product. ClientPrice is accepted for compatibility with the
// storefront but never used; the line is priced from shop_products.
type OrderLine struct {
	ProductID   int             `json:"product_id"`
	ClientPrice decimal.Decimal `json:"product_price"`
	Quantity    int             `json:"product_qty"`
}

type NewTransaction struct {
	Shipping ShippingInfo `json:"shipping"`
	Products []OrderLine  `json:"products"`
}

func (t *NewTransaction) Validate() error {
	t.Shipping.Address = strings.TrimSpace(t.Shipping.Address)
	t.Shipping.City = strings.TrimSpace(t.Shipping.City)
	t.Shipping.State = strings.TrimSpace(t.Shipping.State)
	t.Shipping.Zipcode = strings.TrimSpace(t.Shipping.Zipcode)
	for _, field := range []struct{ name, value string }{
		{"shipping.address", t.Shipping.Address},
		{"shipping.city", t.Shipping.City},
		{"shipping.state", t.Shipping.State},
		{"shipping.zipcode", t.Shipping.Zipcode},
	} {
		if err := required(field.name, field.value); err != nil {
			return err
		}
	}
	if len(t.Products) == 0 {
		return validationError("products can't be empty")
	}
	for _, line := range t.Products {
		if line.ProductID <= 0 {
			return validationError("product_id is required")
		}
		if line.Quantity <= 0 {
			return validationError("product_qty must be a positive integer")
		}
		if line.Quantity > math.MaxInt32 {
			return validationError("product_qty is too large")
		}
	}
	return nil
}

type TransactionResponse struct {
	TransactionSuccess bool  `json:"transactionSuccess"`
	TransactionID      int   `json:"transaction_id"`
	TotalCost          Money `json:"total_cost"`
}
