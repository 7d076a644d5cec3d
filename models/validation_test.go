package models

import (
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null"
)

func TestCartRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request CartRequest
		valid   bool
	}{
		{"valid", CartRequest{ProductID: 7, Quantity: 3}, true},
		{"zero quantity", CartRequest{ProductID: 7, Quantity: 0}, false},
		{"negative quantity", CartRequest{ProductID: 7, Quantity: -2}, false},
		{"missing product", CartRequest{Quantity: 1}, false},
		{"largest quantity", CartRequest{ProductID: 7, Quantity: math.MaxInt32}, true},
		{"quantity past int32", CartRequest{ProductID: 7, Quantity: math.MaxInt32 + 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.IsType(t, &ValidationError{}, err)
		})
	}
}

func TestNewTransactionValidate(t *testing.T) {
	valid := func() NewTransaction {
		return NewTransaction{
			Shipping: ShippingInfo{Address: " 12 Kennel Lane ", City: "Portland", State: "OR", Zipcode: "97201"},
			Products: []OrderLine{{ProductID: 3, Quantity: 2}},
		}
	}

	transaction := valid()
	require.NoError(t, transaction.Validate())
	assert.Equal(t, "12 Kennel Lane", transaction.Shipping.Address)

	transaction = valid()
	transaction.Shipping.Zipcode = "  "
	assert.EqualError(t, transaction.Validate(), "shipping.zipcode is required")

	transaction = valid()
	transaction.Products = nil
	assert.EqualError(t, transaction.Validate(), "products can't be empty")

	transaction = valid()
	transaction.Products[0].Quantity = 0
	assert.EqualError(t, transaction.Validate(), "product_qty must be a positive integer")

	transaction = valid()
	transaction.Products[0].Quantity = math.MaxInt32 + 1
	assert.EqualError(t, transaction.Validate(), "product_qty is too large")
}

func TestRegisterShopUserValidate(t *testing.T) {
	user := RegisterShopUser{FirstName: "Pat", LastName: "Owner", Username: " pat ", Email: "pat@example.com", Password: "x"}
	require.NoError(t, user.Validate())
	assert.Equal(t, "pat", user.Username)

	user.Email = "not-an-email"
	assert.EqualError(t, user.Validate(), "email is not valid")

	user.Password = ""
	assert.EqualError(t, user.Validate(), "password is required")
}

func TestRegisterAdminValidate(t *testing.T) {
	allowed := []string{"1001", "1002"}
	valid := func() RegisterAdmin {
		return RegisterAdmin{
			FirstName:  "Kim",
			LastName:   "Lee",
			EmployeeID: "1001",
			Username:   "kimlee",
			Password:   "s3cret",
			Confirm:    "s3cret",
		}
	}

	admin := valid()
	assert.NoError(t, admin.Validate(allowed))

	admin = valid()
	admin.EmployeeID = "2000"
	assert.EqualError(t, admin.Validate(allowed), "must use a valid employee ID")

	admin = valid()
	admin.Username = "kim"
	assert.EqualError(t, admin.Validate(allowed), "username must be between 4 and 25 characters")

	admin = valid()
	admin.FirstName = strings.Repeat("a", 46)
	assert.Error(t, admin.Validate(allowed))

	admin = valid()
	admin.Confirm = "other"
	assert.EqualError(t, admin.Validate(allowed), "passwords do not match")

	admin = valid()
	assert.Error(t, admin.Validate(nil))
}

func TestCategoryFormValidate(t *testing.T) {
	form := CategoryForm{Name: " Dogs ", Route: "dogs"}
	require.NoError(t, form.Validate())
	assert.Equal(t, "Dogs", form.Name)

	form = CategoryForm{Name: "Dogs", Route: "a-route-that-is-too-long"}
	assert.EqualError(t, form.Validate(), "route must be between 2 and 19 characters")

	form = CategoryForm{Name: "Dogs", Route: "dogs", BannerCaption: strings.Repeat("c", 151)}
	assert.EqualError(t, form.Validate(), "banner_caption must be at most 150 characters")
}

func TestProductFormValidate(t *testing.T) {
	valid := func() ProductForm {
		return ProductForm{
			Name:       "Squeaky Ball",
			Brand:      "Fetch Co",
			Price:      decimal.RequireFromString("7.99"),
			CategoryID: null.IntFrom(2),
		}
	}

	form := valid()
	require.NoError(t, form.Validate())
	assert.Equal(t, null.IntFrom(2), form.CategoryID)

	form = valid()
	form.CategoryID = null.IntFrom(NoCategory)
	require.NoError(t, form.Validate())
	assert.False(t, form.CategoryID.Valid)

	for _, price := range []string{"-0.01", "10000.01", "1.999"} {
		form = valid()
		form.Price = decimal.RequireFromString(price)
		assert.Error(t, form.Validate(), price)
	}

	form = valid()
	form.Price = decimal.RequireFromString("10000")
	assert.NoError(t, form.Validate())

	form = valid()
	form.Description = strings.Repeat("d", 256)
	assert.EqualError(t, form.Validate(), "description must be at most 255 characters")
}

func TestInventoryUpdateValidate(t *testing.T) {
	assert.NoError(t, InventoryUpdate{ProductID: 1, Onhand: 0}.Validate())
	assert.Error(t, InventoryUpdate{ProductID: 1, Onhand: -1}.Validate())
	assert.Error(t, InventoryUpdate{Onhand: 1}.Validate())
}
