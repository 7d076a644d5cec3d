// Package session keeps server-side identity state: admin sessions behind the
// back office cookie and the revoked shopper token ids.
package session

import (
	"context"
	"time"

	"github.com/RemoteState/petstash-server/models"
	"github.com/pkg/errors"
)

const (
	// AdminCookieName carries the admin session id
	AdminCookieName = "petstash_admin"
	// AdminSessionTTL is how long an admin session stays valid without a new login
	AdminSessionTTL = 12 * time.Hour
)

var ErrNotFound = errors.New("session not found")

// SessionStore is the store used by the server, set up at startup
var SessionStore Store

type Store interface {
	// CreateAdmin stores the session and returns its new id
	CreateAdmin(ctx context.Context, admin models.AdminSession, ttl time.Duration) (string, error)
	// GetAdmin returns ErrNotFound for unknown or expired ids
	GetAdmin(ctx context.Context, sessionID string) (*models.AdminSession, error)
	DeleteAdmin(ctx context.Context, sessionID string) error
	// RevokeToken marks a token id as revoked until it would have expired anyway
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

func adminKey(sessionID string) string {
	return "admin_session:" + sessionID
}

func revokedTokenKey(tokenID string) string {
	return "revoked_token:" + tokenID
}
