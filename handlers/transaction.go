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
	"github.com/sirupsen/logrus"
)

// CreateTransaction places an order for the listed products, priced from the catalog
func CreateTransaction(w http.ResponseWriter, r *http.Request) {
	user := middlewares.ShopperContext(r)
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, errors.New("missing shopper"), "Authentication failed!")
		return
	}

	var reqBody models.NewTransaction
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}
	if err := reqBody.Validate(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, err.Error())
		return
	}

	transaction, err := dbHelpers.InsertTransaction(user.ID, reqBody.Shipping, reqBody.Products)
	if err != nil {
		respondDBError(w, err, "Failed to place order")
		return
	}
	metrics.TransactionsCreated.Inc()
	logrus.Infof("CreateTransaction: shop user %d placed transaction %d for %s", user.ID, transaction.ID, transaction.TotalCost)

	utils.RespondJSON(w, http.StatusCreated, models.TransactionResponse{
		TransactionSuccess: true,
		TransactionID:      transaction.ID,
		TotalCost:          transaction.TotalCost,
	})
}

// GetTransactions lists the shopper's transactions, newest first
func GetTransactions(w http.ResponseWriter, r *http.Request) {
	user := middlewares.ShopperContext(r)
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, errors.New("missing shopper"), "Authentication failed!")
		return
	}
	transactions, err := dbHelpers.GetTransactionsForUser(user.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get transactions")
		return
	}
	utils.RespondJSON(w, http.StatusOK, transactions)
}

// GetTransaction returns one transaction. Any authenticated shopper may read it, it is not filtered by owner.
func GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, err := utils.StringToInt(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid transaction id")
		return
	}
	transaction, err := dbHelpers.GetTransactionByID(transactionID)
	if err != nil {
		respondDBError(w, err, "Failed to get transaction")
		return
	}
	utils.RespondJSON(w, http.StatusOK, transaction)
}

// GetTransactionItems lists the items of a transaction with the current product prices
func GetTransactionItems(w http.ResponseWriter, r *http.Request) {
	transactionID, err := utils.StringToInt(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid transaction id")
		return
	}
	items, err := dbHelpers.GetTransactionItems(transactionID)
	if err != nil {
		respondDBError(w, err, "Failed to get transaction items")
		return
	}
	utils.RespondJSON(w, http.StatusOK, items)
}
