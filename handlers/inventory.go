package handlers

import (
	"net/http"

	"github.com/RemoteState/petstash-server/dbHelpers"
	"github.com/RemoteState/petstash-server/models"
	"github.com/RemoteState/petstash-server/utils"
)

func GetInventory(w http.ResponseWriter, r *http.Request) {
	inventory, err := dbHelpers.GetInventory()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get inventory")
		return
	}
	utils.RespondJSON(w, http.StatusOK, inventory)
}

// ReceiveInventory sets the onhand counts of the listed products, all or nothing
func ReceiveInventory(w http.ResponseWriter, r *http.Request) {
	admin, ok := currentAdmin(w, r)
	if !ok {
		return
	}

	updates := make([]models.InventoryUpdate, 0)
	if err := utils.ParseBody(r.Body, &updates); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}
	if len(updates) == 0 {
		utils.RespondError(w, http.StatusBadRequest, nil, "No inventory updates given")
		return
	}
	for _, update := range updates {
		if err := update.Validate(); err != nil {
			utils.RespondError(w, http.StatusBadRequest, err, err.Error())
			return
		}
	}

	if err := dbHelpers.ReceiveInventory(updates, *admin); err != nil {
		respondDBError(w, err, "Failed to receive inventory")
		return
	}

	inventory, err := dbHelpers.GetInventory()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get inventory")
		return
	}
	utils.RespondJSON(w, http.StatusOK, inventory)
}
