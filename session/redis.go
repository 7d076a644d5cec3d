package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/RemoteState/petstash-server/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore checks the connection before handing out the store
func NewRedisStore(ctx context.Context, rdb *redis.Client) (*RedisStore, error) {
	if rdb == nil {
		return nil, errors.New("redis client must be non-nil")
	}
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping redis")
	}
	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) CreateAdmin(ctx context.Context, admin models.AdminSession, ttl time.Duration) (string, error) {
	data, err := json.Marshal(admin)
	if err != nil {
		return "", err
	}
	sessionID := uuid.NewString()
	if err := s.rdb.Set(ctx, adminKey(sessionID), data, ttl).Err(); err != nil {
		return "", errors.Wrap(err, "failed to create admin session")
	}
	return sessionID, nil
}

func (s *RedisStore) GetAdmin(ctx context.Context, sessionID string) (*models.AdminSession, error) {
	data, err := s.rdb.Get(ctx, adminKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get admin session")
	}
	var admin models.AdminSession
	if err := json.Unmarshal(data, &admin); err != nil {
		return nil, errors.Wrap(err, "corrupt admin session")
	}
	return &admin, nil
}

func (s *RedisStore) DeleteAdmin(ctx context.Context, sessionID string) error {
	return errors.Wrap(s.rdb.Del(ctx, adminKey(sessionID)).Err(), "failed to delete admin session")
}

func (s *RedisStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return errors.Wrap(s.rdb.Set(ctx, revokedTokenKey(tokenID), 1, ttl).Err(), "failed to revoke token")
}

func (s *RedisStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	count, err := s.rdb.Exists(ctx, revokedTokenKey(tokenID)).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check revoked token")
	}
	return count > 0, nil
}
