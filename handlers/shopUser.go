package handlers

import (
	"net/http"
	"time"

	"github.com/RemoteState/petstash-server/dbHelpers"
	"github.com/RemoteState/petstash-server/middlewares"
	"github.com/RemoteState/petstash-server/models"
	"github.com/RemoteState/petstash-server/session"
	"github.com/RemoteState/petstash-server/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// RegisterShopUser creates a shopper account
func RegisterShopUser(w http.ResponseWriter, r *http.Request) {
	var reqBody models.RegisterShopUser
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}
	if err := reqBody.Validate(); err != nil {
		utils.RespondJSON(w, http.StatusBadRequest, models.RegisterResponse{ErrorText: err.Error()})
		return
	}

	err := dbHelpers.CheckShopUserAvailable(reqBody.Username, reqBody.Email)
	if err != nil {
		respondRegisterError(w, err)
		return
	}

	hashedPassword, err := utils.HashPassword(reqBody.Password)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to register")
		return
	}

	userID, err := dbHelpers.InsertShopUser(reqBody, hashedPassword)
	if err != nil {
		respondRegisterError(w, err)
		return
	}
	logrus.Infof("RegisterShopUser: registered shop user %d (%s)", userID, reqBody.Username)
	utils.RespondJSON(w, http.StatusCreated, models.RegisterResponse{RegisterSuccess: true})
}

func respondRegisterError(w http.ResponseWriter, err error) {
	switch errors.Cause(err) {
	case dbHelpers.ErrUsernameTaken:
		utils.RespondJSON(w, http.StatusConflict, models.RegisterResponse{ErrorText: "Username already exists."})
	case dbHelpers.ErrEmailTaken:
		utils.RespondJSON(w, http.StatusConflict, models.RegisterResponse{ErrorText: "Email already exists."})
	default:
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to register")
	}
}

// LoginShopUser checks the credentials and hands out a bearer token
func LoginShopUser(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := utils.ParseBody(r.Body, &credentials); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}

	user, err := dbHelpers.GetShopUserByUsername(credentials.Username)
	if err != nil {
		if errors.Cause(err) == dbHelpers.ErrShopUserNotFound {
			utils.RespondError(w, http.StatusUnauthorized, utils.ErrInvalidCredentials, "Invalid username or password.")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to login")
		return
	}
	if err := utils.CheckPassword(user.Password, credentials.Password); err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "Invalid username or password.")
		return
	}

	token, expiresAt, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to login")
		return
	}
	utils.RespondJSON(w, http.StatusOK, models.LoginResponse{
		LoginSuccess: true,
		Token:        token,
		ExpiresAt:    expiresAt,
		User:         user,
	})
}

// LogoutShopUser revokes the token of the request
func LogoutShopUser(w http.ResponseWriter, r *http.Request) {
	claims := middlewares.TokenContext(r)
	if claims == nil {
		utils.RespondError(w, http.StatusUnauthorized, errors.New("missing token claims"), "Authentication failed!")
		return
	}
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if err := session.SessionStore.RevokeToken(r.Context(), claims.Id, ttl); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to logout")
		return
	}
	utils.RespondJSON(w, http.StatusOK, models.Response{Success: true})
}

// GetShopUser returns the authenticated shopper
func GetShopUser(w http.ResponseWriter, r *http.Request) {
	user := middlewares.ShopperContext(r)
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, errors.New("missing shopper"), "Authentication failed!")
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}

// UpdateShopUserAddress saves the shipping address of the authenticated shopper
func UpdateShopUserAddress(w http.ResponseWriter, r *http.Request) {
	user := middlewares.ShopperContext(r)
	if user == nil {
		utils.RespondError(w, http.StatusUnauthorized, errors.New("missing shopper"), "Authentication failed!")
		return
	}

	var address models.ShopUserAddress
	if err := utils.ParseBody(r.Body, &address); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}
	if err := dbHelpers.ModifyShopUserAddress(user.ID, address); err != nil {
		respondDBError(w, err, "Failed to update address")
		return
	}

	updated, err := dbHelpers.GetShopUserById(user.ID)
	if err != nil {
		respondDBError(w, err, "Failed to get shop user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, updated)
}
