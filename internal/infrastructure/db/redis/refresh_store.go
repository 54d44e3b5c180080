package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/propertyai/agent-platform/internal/core/domain"
)

const (
	refreshKeyPrefix = "refresh:"
	userTokensPrefix = "refresh:user:"
)

// RefreshTokenStore records issued refresh-token IDs in Redis with a TTL
// matching the token lifetime. Consuming a token deletes it, which makes
// rotation single-use: a replayed token is simply not found.
type RefreshTokenStore struct {
	client *redis.Client
}

func NewRefreshTokenStore(client *redis.Client) *RefreshTokenStore {
	return &RefreshTokenStore{client: client}
}

func (s *RefreshTokenStore) Save(ctx context.Context, jti, userID string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, refreshKeyPrefix+jti, userID, ttl)
	pipe.SAdd(ctx, userTokensPrefix+userID, jti)
	pipe.Expire(ctx, userTokensPrefix+userID, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// Consume validates and revokes a token ID in one round trip, returning the
// user it was issued to. GETDEL guarantees a token is honoured at most once
// even under concurrent refresh attempts.
func (s *RefreshTokenStore) Consume(ctx context.Context, jti string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	userID, err := s.client.GetDel(ctx, refreshKeyPrefix+jti).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidToken
		}
		return "", fmt.Errorf("consume refresh token: %w", err)
	}

	s.client.SRem(ctx, userTokensPrefix+userID, jti)
	return userID, nil
}

// RevokeAll invalidates every outstanding refresh token for a user.
func (s *RefreshTokenStore) RevokeAll(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	jtis, err := s.client.SMembers(ctx, userTokensPrefix+userID).Result()
	if err != nil {
		return fmt.Errorf("list refresh tokens: %w", err)
	}

	pipe := s.client.TxPipeline()
	for _, jti := range jtis {
		pipe.Del(ctx, refreshKeyPrefix+jti)
	}
	pipe.Del(ctx, userTokensPrefix+userID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("revoke refresh tokens: %w", err)
	}
	return nil
}
