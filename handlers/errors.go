package handlers

import (
	"net/http"

	"github.com/RemoteState/petstash-server/dbHelpers"
	"github.com/RemoteState/petstash-server/models"
	"github.com/RemoteState/petstash-server/utils"
	"github.com/pkg/errors"
)

// errorStatus maps errors of the data access layer onto response codes, defaulting to 500
func errorStatus(err error) int {
	switch errors.Cause(err) {
	case dbHelpers.ErrCartItemNotFound,
		dbHelpers.ErrProductNotFound,
		dbHelpers.ErrCategoryNotFound,
		dbHelpers.ErrTransactionNotFound,
		dbHelpers.ErrShopUserNotFound:
		return http.StatusNotFound
	case dbHelpers.ErrProductUnavailable,
		dbHelpers.ErrCategoryRouteTaken,
		dbHelpers.ErrUsernameTaken,
		dbHelpers.ErrEmailTaken:
		return http.StatusConflict
	case dbHelpers.ErrCartQuantityTooBig,
		dbHelpers.ErrOrderTotalTooBig:
		return http.StatusBadRequest
	case utils.ErrInvalidCredentials:
		return http.StatusUnauthorized
	}
	if _, ok := errors.Cause(err).(*models.ValidationError); ok {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondDBError answers with the status of err; messageToUser is replaced by the error text for client errors
func respondDBError(w http.ResponseWriter, err error, messageToUser string) {
	status := errorStatus(err)
	if status < http.StatusInternalServerError {
		messageToUser = errors.Cause(err).Error()
	}
	utils.RespondError(w, status, err, messageToUser)
}
