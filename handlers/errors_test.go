package handlers

import (
	"net/http"
	"testing"

	"github.com/RemoteState/petstash-server/dbHelpers"
	"github.com/RemoteState/petstash-server/models"
	"github.com/RemoteState/petstash-server/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{dbHelpers.ErrCartItemNotFound, http.StatusNotFound},
		{errors.Wrap(dbHelpers.ErrProductNotFound, "product 3"), http.StatusNotFound},
		{dbHelpers.ErrCategoryNotFound, http.StatusNotFound},
		{dbHelpers.ErrTransactionNotFound, http.StatusNotFound},
		{dbHelpers.ErrProductUnavailable, http.StatusConflict},
		{dbHelpers.ErrCategoryRouteTaken, http.StatusConflict},
		{dbHelpers.ErrUsernameTaken, http.StatusConflict},
		{dbHelpers.ErrEmailTaken, http.StatusConflict},
		{dbHelpers.ErrCartQuantityTooBig, http.StatusBadRequest},
		{dbHelpers.ErrOrderTotalTooBig, http.StatusBadRequest},
		{utils.ErrInvalidCredentials, http.StatusUnauthorized},
		{&models.ValidationError{Message: "bad"}, http.StatusBadRequest},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, errorStatus(tt.err), tt.err.Error())
	}
}
