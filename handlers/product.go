package handlers

import (
	"net/http"

	"github.com/RemoteState/petstash-server/dbHelpers"
	"github.com/RemoteState/petstash-server/models"
	"github.com/RemoteState/petstash-server/utils"
	"github.com/go-chi/chi"
)

// GetAllProducts lists every product with its category name
func GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := dbHelpers.GetProducts()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get products")
		return
	}
	utils.RespondJSON(w, http.StatusOK, products)
}

func GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.StringToInt(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to convert given productID to int")
		return
	}
	product, err := dbHelpers.GetProductById(productID)
	if err != nil {
		respondDBError(w, err, "Failed to get product")
		return
	}
	utils.RespondJSON(w, http.StatusOK, product)
}

// parseProductForm decodes and validates the body, and checks that the category exists
func parseProductForm(w http.ResponseWriter, r *http.Request) (*models.ProductForm, bool) {
	var reqBody models.ProductForm
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return nil, false
	}
	if err := reqBody.Validate(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, err.Error())
		return nil, false
	}
	if reqBody.CategoryID.Valid {
		if _, err := dbHelpers.GetCategoryById(reqBody.CategoryID.Int); err != nil {
			respondDBError(w, err, "Failed to get category")
			return nil, false
		}
	}
	return &reqBody, true
}

func CreateProduct(w http.ResponseWriter, r *http.Request) {
	admin, ok := currentAdmin(w, r)
	if !ok {
		return
	}
	reqBody, ok := parseProductForm(w, r)
	if !ok {
		return
	}

	productID, err := dbHelpers.InsertProduct(*reqBody, *admin)
	if err != nil {
		respondDBError(w, err, "Failed to store product entry")
		return
	}
	product, err := dbHelpers.GetProductById(productID)
	if err != nil {
		respondDBError(w, err, "Failed to get product")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, product)
}

func ModifyProduct(w http.ResponseWriter, r *http.Request) {
	admin, ok := currentAdmin(w, r)
	if !ok {
		return
	}
	productID, err := utils.StringToInt(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to convert given productID to int")
		return
	}
	reqBody, ok := parseProductForm(w, r)
	if !ok {
		return
	}

	if err := dbHelpers.ModifyProduct(productID, *reqBody, *admin); err != nil {
		respondDBError(w, err, "Failed to update product entry")
		return
	}
	product, err := dbHelpers.GetProductById(productID)
	if err != nil {
		respondDBError(w, err, "Failed to get product")
		return
	}
	utils.RespondJSON(w, http.StatusOK, product)
}
