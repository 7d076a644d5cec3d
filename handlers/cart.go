package handlers

import (
	"net/http"

	"github.com/RemoteState/petstash-server/dbHelpers"
	"github.com/RemoteState/petstash-server/metrics"
	"github.com/RemoteState/petstash-server/middlewares"
	"github.com/RemoteState/petstash-server/models"
	"github.com/RemoteState/petstash-server/utils"
	"github.com/go-chi/chi"
	"github.com/pkg/errors"
)

// parseCartRequest decodes and validates the body and makes sure the product can be bought
func parseCartRequest(w http.ResponseWriter, r *http.Request) (*models.CartRequest, bool) {
	var reqBody models.CartRequest
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return nil, false
	}
	if err := reqBody.Validate(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, err.Error())
		return nil, false
	}

	product, err := dbHelpers.GetProductById(reqBody.ProductID)
	if err != nil {
		respondDBError(w, err, "Failed to get product")
		return nil, false
	}
	if !product.Display {
		respondDBError(w, dbHelpers.ErrProductUnavailable, "Product is not available")
		return nil, false
	}
	return &reqBody, true
}

// AddToCart adds the quantity to the shopper's cart row of the product, creating the row if needed
func AddToCart(w http.ResponseWriter, r *http.Request) {
	user := middlewares.ShopperContext(r)
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, errors.New("missing shopper"), "Authentication failed!")
		return
	}
	reqBody, ok := parseCartRequest(w, r)
	if !ok {
		return
	}

	change, err := dbHelpers.AddToCart(user.ID, reqBody.ProductID, reqBody.Quantity)
	if err != nil {
		respondDBError(w, err, "Failed to add to cart")
		return
	}
	metrics.CartChanges.WithLabelValues(string(change)).Inc()

	utils.RespondJSON(w, http.StatusOK, models.CartChangeResponse{
		CartChangeSuccess: true,
		CartAdd:           change == models.CartAdded,
		CartUpdate:        change == models.CartUpdated,
	})
}

// ModifyCart overwrites the quantity of a product already in the cart
func ModifyCart(w http.ResponseWriter, r *http.Request) {
	user := middlewares.ShopperContext(r)
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, errors.New("missing shopper"), "Authentication failed!")
		return
	}
	var reqBody models.CartRequest
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}
	if err := reqBody.Validate(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, err.Error())
		return
	}

	if err := dbHelpers.ModifyCartItem(user.ID, reqBody.ProductID, reqBody.Quantity); err != nil {
		respondDBError(w, err, "Failed to update cart")
		return
	}
	metrics.CartChanges.WithLabelValues(string(models.CartUpdated)).Inc()

	utils.RespondJSON(w, http.StatusOK, models.CartChangeResponse{CartChangeSuccess: true, CartUpdate: true})
}

// GetCart lists the shopper's cart
func GetCart(w http.ResponseWriter, r *http.Request) {
	user := middlewares.ShopperContext(r)
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, errors.New("missing shopper"), "Authentication failed!")
		return
	}
	items, err := dbHelpers.GetCart(user.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get cart")
		return
	}
	utils.RespondJSON(w, http.StatusOK, items)
}

// DeleteCartItem removes one product from the cart, succeeding when it is already absent
func DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	user := middlewares.ShopperContext(r)
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, errors.New("missing shopper"), "Authentication failed!")
		return
	}
	productID, err := utils.StringToInt(chi.URLParam(r, "product_id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid product id")
		return
	}

	if err := dbHelpers.DeleteCartItem(user.ID, productID); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to delete cart item")
		return
	}
	metrics.CartChanges.WithLabelValues("delete").Inc()

	utils.RespondJSON(w, http.StatusOK, models.CartChangeResponse{CartChangeSuccess: true, CartDelete: true})
}

// ClearCart empties the shopper's cart
func ClearCart(w http.ResponseWriter, r *http.Request) {
	user := middlewares.ShopperContext(r)
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, errors.New("missing shopper"), "Authentication failed!")
		return
	}
	if err := dbHelpers.ClearCart(user.ID); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to clear cart")
		return
	}
	metrics.CartChanges.WithLabelValues("clear").Inc()

	utils.RespondJSON(w, http.StatusOK, models.CartChangeResponse{CartChangeSuccess: true, CartDelete: true})
}
