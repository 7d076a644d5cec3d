package handlers

import (
	"net/http"

	"github.com/RemoteState/petstash-server/dbHelpers"
	"github.com/RemoteState/petstash-server/models"
	"github.com/RemoteState/petstash-server/utils"
	"github.com/go-chi/chi"
)

func GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := dbHelpers.GetCategories()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get category entries")
		return
	}
	utils.RespondJSON(w, http.StatusOK, categories)
}

func GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := utils.StringToInt(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to convert given categoryID to int")
		return
	}
	category, err := dbHelpers.GetCategoryById(categoryID)
	if err != nil {
		respondDBError(w, err, "Failed to get category")
		return
	}
	utils.RespondJSON(w, http.StatusOK, category)
}

func CreateCategory(w http.ResponseWriter, r *http.Request) {
	admin, ok := currentAdmin(w, r)
	if !ok {
		return
	}

	var reqBody models.CategoryForm
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}
	if err := reqBody.Validate(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, err.Error())
		return
	}
	if respondIfRouteTaken(w, reqBody.Route, 0) {
		return
	}

	categoryID, err := dbHelpers.InsertCategory(reqBody, *admin)
	if err != nil {
		respondDBError(w, err, "Failed to store category entry")
		return
	}

	category, err := dbHelpers.GetCategoryById(categoryID)
	if err != nil {
		respondDBError(w, err, "Failed to get category")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, category)
}

func ModifyCategory(w http.ResponseWriter, r *http.Request) {
	admin, ok := currentAdmin(w, r)
	if !ok {
		return
	}

	categoryID, err := utils.StringToInt(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to convert given categoryID to int")
		return
	}

	var reqBody models.CategoryForm
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}
	if err := reqBody.Validate(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, err.Error())
		return
	}
	if respondIfRouteTaken(w, reqBody.Route, categoryID) {
		return
	}

	if err := dbHelpers.ModifyCategory(categoryID, reqBody, *admin); err != nil {
		respondDBError(w, err, "Failed to update category entry")
		return
	}

	category, err := dbHelpers.GetCategoryById(categoryID)
	if err != nil {
		respondDBError(w, err, "Failed to get category")
		return
	}
	utils.RespondJSON(w, http.StatusOK, category)
}

// respondIfRouteTaken answers 409 when another category than categoryID already uses route
func respondIfRouteTaken(w http.ResponseWriter, route string, categoryID int) bool {
	existing, err := dbHelpers.GetCategoryByRoute(route)
	if err == dbHelpers.ErrCategoryNotFound {
		return false
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to check category route")
		return true
	}
	if existing.ID == categoryID {
		return false
	}
	respondDBError(w, dbHelpers.ErrCategoryRouteTaken, "Category route already taken")
	return true
}
