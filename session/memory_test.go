package session

import (
	"context"
	"testing"
	"time"

	"github.com/RemoteState/petstash-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAdminSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	admin := models.AdminSession{AdminID: 4, Username: "keeper", LastName: "Smith", LoggedIn: true}

	sessionID, err := store.CreateAdmin(ctx, admin, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)

	got, err := store.GetAdmin(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, admin, *got)

	require.NoError(t, store.DeleteAdmin(ctx, sessionID))
	_, err = store.GetAdmin(ctx, sessionID)
	assert.Equal(t, ErrNotFound, err)
}

func TestMemoryStoreAdminSessionExpires(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	sessionID, err := store.CreateAdmin(ctx, models.AdminSession{AdminID: 1, LoggedIn: true}, time.Minute)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = store.GetAdmin(ctx, sessionID)
	assert.Equal(t, ErrNotFound, err)
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	_, err := NewMemoryStore().GetAdmin(context.Background(), "missing")
	assert.Equal(t, ErrNotFound, err)
}

func TestMemoryStoreRevokedTokens(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	revoked, err := store.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.RevokeToken(ctx, "jti-1", time.Hour))
	revoked, err = store.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// an already expired token needs no revocation entry
	require.NoError(t, store.RevokeToken(ctx, "jti-2", -time.Second))
	revoked, err = store.IsTokenRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	now = now.Add(2 * time.Hour)
	revoked, err = store.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}
