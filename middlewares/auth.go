package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/RemoteState/petstash-server/dbHelpers"
	"github.com/RemoteState/petstash-server/models"
	"github.com/RemoteState/petstash-server/session"
	"github.com/RemoteState/petstash-server/utils"
	"github.com/pkg/errors"
)

type contextString string

const shopperContext contextString = "__shopperContext"
const tokenContext contextString = "__tokenContext"
const adminContext contextString = "__adminContext"

var (
	errMissingToken  = errors.New("missing bearer token")
	errRevokedToken  = errors.New("token has been revoked")
	errNoAdminCookie = errors.New("missing admin session cookie")
	errNotLoggedIn   = errors.New("admin session is not logged in")
)

// bearerToken reads the token from an "Authorization: Bearer <token>" header
func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// ShopperAuthMiddleware authenticates the shopper from the bearer token and loads it into the context
func ShopperAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			utils.RespondError(w, http.StatusUnauthorized, errMissingToken, "Authentication failed!")
			return
		}

		claims, err := utils.ParseJWT(tokenString)
		if err != nil {
			utils.RespondError(w, http.StatusUnauthorized, err, "Authentication failed!")
			return
		}

		revoked, err := session.SessionStore.IsTokenRevoked(r.Context(), claims.Id)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, err, "Authentication failed!")
			return
		}
		if revoked {
			utils.RespondError(w, http.StatusUnauthorized, errRevokedToken, "Authentication failed!")
			return
		}

		user, err := dbHelpers.GetShopUserById(claims.UserID)
		if err != nil {
			if errors.Cause(err) == dbHelpers.ErrShopUserNotFound {
				utils.RespondError(w, http.StatusUnauthorized, err, "Authentication failed!")
				return
			}
			utils.RespondError(w, http.StatusInternalServerError, err, "Authentication failed!")
			return
		}

		ctx := context.WithValue(r.Context(), shopperContext, user)
		ctx = context.WithValue(ctx, tokenContext, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ShopperContext returns the authenticated shopper, nil outside ShopperAuthMiddleware
func ShopperContext(r *http.Request) *models.ShopUser {
	if user, ok := r.Context().Value(shopperContext).(*models.ShopUser); ok && user != nil {
		return user
	}
	return nil
}

// TokenContext returns the claims of the token the shopper authenticated with
func TokenContext(r *http.Request) *models.JWTClaims {
	if claims, ok := r.Context().Value(tokenContext).(*models.JWTClaims); ok && claims != nil {
		return claims
	}
	return nil
}

// AdminAuthMiddleware allows only requests carrying a logged in admin session
func AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.AdminCookieName)
		if err != nil || cookie.Value == "" {
			utils.RespondError(w, http.StatusUnauthorized, errNoAdminCookie, "Please log in to the back office.")
			return
		}

		admin, err := session.SessionStore.GetAdmin(r.Context(), cookie.Value)
		if err != nil {
			if err == session.ErrNotFound {
				utils.RespondError(w, http.StatusUnauthorized, err, "Please log in to the back office.")
				return
			}
			utils.RespondError(w, http.StatusInternalServerError, err, "Authentication failed!")
			return
		}
		if !admin.LoggedIn {
			utils.RespondError(w, http.StatusUnauthorized, errNotLoggedIn, "Please log in to the back office.")
			return
		}

		ctx := context.WithValue(r.Context(), adminContext, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminContext returns the admin session of the request, nil outside AdminAuthMiddleware
func AdminContext(r *http.Request) *models.AdminSession {
	if admin, ok := r.Context().Value(adminContext).(*models.AdminSession); ok && admin != nil {
		return admin
	}
	return nil
}
