package models

import "math"

// CartChange tells whether an add created a new cart row or merged into an existing one.
type CartChange string

const (
	CartAdded   CartChange = "add"
	CartUpdated CartChange = "update"
)

type CartItem struct {
	ID        int    `json:"cart_item_id" db:"id"`
	ProductID int    `json:"product_id" db:"product_id"`
	Name      string `json:"name" db:"name"`
	Price     Money  `json:"price" db:"price"`
	Onhand    int    `json:"onhand" db:"onhand"`
	Quantity  int    `json:"qty" db:"quantity"`
}

type CartRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func (c CartRequest) Validate() error {
	if c.ProductID <= 0 {
		return validationError("product_id is required")
	}
	if c.Quantity <= 0 {
		return validationError("quantity must be a positive integer")
	}
	if c.Quantity > math.MaxInt32 {
		return validationError("quantity is too large")
	}
	return nil
}

type CartChangeResponse struct {
	CartChangeSuccess bool `json:"cartChangeSuccess"`
	CartAdd           bool `json:"cartAdd,omitempty"`
	CartUpdate        bool `json:"cartUpdate,omitempty"`
	CartDelete        bool `json:"cartDelete,omitempty"`
}
