package session

import (
	"context"
	"sync"
	"time"

	"github.com/RemoteState/petstash-server/models"
	"github.com/google/uuid"
)

type memoryEntry struct {
	admin     models.AdminSession
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Used in tests and when no redis is configured.
type MemoryStore struct {
	mu      sync.Mutex
	admins  map[string]memoryEntry
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		admins:  make(map[string]memoryEntry),
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) CreateAdmin(_ context.Context, admin models.AdminSession, ttl time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sessionID := uuid.NewString()
	s.admins[adminKey(sessionID)] = memoryEntry{admin: admin, expiresAt: s.now().Add(ttl)}
	return sessionID, nil
}

func (s *MemoryStore) GetAdmin(_ context.Context, sessionID string) (*models.AdminSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.admins[adminKey(sessionID)]
	if !ok {
		return nil, ErrNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.admins, adminKey(sessionID))
		return nil, ErrNotFound
	}
	admin := entry.admin
	return &admin, nil
}

func (s *MemoryStore) DeleteAdmin(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.admins, adminKey(sessionID))
	return nil
}

func (s *MemoryStore) RevokeToken(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[revokedTokenKey(tokenID)] = s.now().Add(ttl)
	return nil
}

func (s *MemoryStore) IsTokenRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiresAt, ok := s.revoked[revokedTokenKey(tokenID)]
	if !ok {
		return false, nil
	}
	if !s.now().Before(expiresAt) {
		delete(s.revoked, revokedTokenKey(tokenID))
		return false, nil
	}
	return true, nil
}
