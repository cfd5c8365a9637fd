package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"library-service/internal/domain/repositories"
)

const revokedKeyPrefix = "revoked:"

// RedisRevocationStore keeps revoked refresh tokens in Redis, one key
// per token with a TTL equal to the token's remaining life. Expiry is
// handled by Redis itself, so no sweeper runs, and every process in a
// deployment shares the same set.
type RedisRevocationStore struct {
	client *redis.Client
}

func NewRedisRevocationStore(client *redis.Client) repositories.RevocationStore {
	return &RedisRevocationStore{client: client}
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired; nothing to deny.
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+token, "1", ttl).Err()
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := s.client.Get(ctx, revokedKeyPrefix+token).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
