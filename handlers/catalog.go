package handlers

import (
	"net/http"

	"github.com/RemoteState/petstash-server/dbHelpers"
	"github.com/RemoteState/petstash-server/utils"
	"github.com/go-chi/chi"
)

// GetActiveCategories lists the categories shown in the shop
func GetActiveCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := dbHelpers.GetActiveCategories()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get categories")
		return
	}
	utils.RespondJSON(w, http.StatusOK, categories)
}

// GetActiveProducts lists the products shown in the shop
func GetActiveProducts(w http.ResponseWriter, r *http.Request) {
	products, err := dbHelpers.GetActiveProducts()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get products")
		return
	}
	utils.RespondJSON(w, http.StatusOK, products)
}

// GetActiveProductsByRoute lists the products shown in the category published under {route}
func GetActiveProductsByRoute(w http.ResponseWriter, r *http.Request) {
	products, err := dbHelpers.GetActiveProductsByRoute(chi.URLParam(r, "route"))
	if err != nil {
		respondDBError(w, err, "Failed to get products")
		return
	}
	utils.RespondJSON(w, http.StatusOK, products)
}
