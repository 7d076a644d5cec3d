package handlers

import (
	"net/http"

	"github.com/RemoteState/petstash-server/dbHelpers"
	"github.com/RemoteState/petstash-server/middlewares"
	"github.com/RemoteState/petstash-server/models"
	"github.com/RemoteState/petstash-server/session"
	"github.com/RemoteState/petstash-server/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RegisterAdmin registers a back office user, the employee id must be in ADMIN_EMPLOYEE_IDS
func RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var reqBody models.RegisterAdmin
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}
	if err := reqBody.Validate(utils.EnvList("ADMIN_EMPLOYEE_IDS")); err != nil {
		utils.RespondJSON(w, http.StatusBadRequest, models.RegisterResponse{ErrorText: err.Error()})
		return
	}

	_, err := dbHelpers.GetAdminByUsername(reqBody.Username)
	if err == nil {
		utils.RespondJSON(w, http.StatusConflict, models.RegisterResponse{ErrorText: "Username already exists."})
		return
	}
	if errors.Cause(err) != dbHelpers.ErrAdminNotFound {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to register")
		return
	}

	hashedPassword, err := utils.HashPassword(reqBody.Password)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to register")
		return
	}
	adminID, err := dbHelpers.InsertAdminUser(reqBody, hashedPassword)
	if err != nil {
		if errors.Cause(err) == dbHelpers.ErrUsernameTaken {
			utils.RespondJSON(w, http.StatusConflict, models.RegisterResponse{ErrorText: "Username already exists."})
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to register")
		return
	}
	logrus.Infof("RegisterAdmin: registered admin %d (%s)", adminID, reqBody.Username)
	utils.RespondJSON(w, http.StatusCreated, models.RegisterResponse{RegisterSuccess: true})
}

// LoginAdmin starts a back office session and sets its cookie
func LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := utils.ParseBody(r.Body, &credentials); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}

	admin, err := dbHelpers.GetAdminByUsername(credentials.Username)
	if err != nil {
		if errors.Cause(err) == dbHelpers.ErrAdminNotFound {
			utils.RespondError(w, http.StatusUnauthorized, utils.ErrInvalidCredentials, "Invalid username or password.")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to login")
		return
	}
	if err := utils.CheckPassword(admin.Password, credentials.Password); err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "Invalid username or password.")
		return
	}

	sessionID, err := session.SessionStore.CreateAdmin(r.Context(), models.AdminSession{
		AdminID:  admin.ID,
		Username: admin.Username,
		LastName: admin.LastName,
		LoggedIn: true,
	}, session.AdminSessionTTL)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.AdminCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(session.AdminSessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondJSON(w, http.StatusOK, models.AdminLoginResponse{LoginSuccess: true, Admin: admin})
}

// LogoutAdmin ends the back office session and expires its cookie
func LogoutAdmin(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(session.AdminCookieName)
	if err == nil {
		if err := session.SessionStore.DeleteAdmin(r.Context(), cookie.Value); err != nil {
			utils.RespondError(w, http.StatusInternalServerError, err, "Failed to logout")
			return
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.AdminCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	utils.RespondJSON(w, http.StatusOK, models.Response{Success: true})
}

// GetDashBoardStats counts the shop's products, categories, shoppers and transactions
func GetDashBoardStats(w http.ResponseWriter, r *http.Request) {
	var (
		stats models.DashBoardStats
		egp   = new(errgroup.Group)
	)

	egp.Go(func() error {
		var err error
		stats.Products, err = dbHelpers.GetProductCount(false)
		return err
	})

	egp.Go(func() error {
		var err error
		stats.ActiveProducts, err = dbHelpers.GetProductCount(true)
		return err
	})

	egp.Go(func() error {
		var err error
		stats.Categories, err = dbHelpers.GetCategoryCount()
		return err
	})

	egp.Go(func() error {
		var err error
		stats.ShopUsers, err = dbHelpers.GetShopUserCount()
		return err
	})

	egp.Go(func() error {
		var err error
		stats.Transactions, err = dbHelpers.GetTransactionCount()
		return err
	})

	if err := egp.Wait(); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get dashboard stats")
		return
	}
	utils.RespondJSON(w, http.StatusOK, stats)
}

// GetUpdateLog pages through the back office update log
func GetUpdateLog(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := utils.GetOffsetLimit(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid offset or limit")
		return
	}
	logs, err := dbHelpers.GetUpdateLog(offset, limit)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get update log")
		return
	}
	utils.RespondJSON(w, http.StatusOK, logs)
}

// currentAdmin returns the session of the request or answers 401
func currentAdmin(w http.ResponseWriter, r *http.Request) (*models.AdminSession, bool) {
	admin := middlewares.AdminContext(r)
	if admin == nil {
		utils.RespondError(w, http.StatusUnauthorized, errors.New("missing admin session"), "Please log in to the back office.")
		return nil, false
	}
	return admin, true
}
