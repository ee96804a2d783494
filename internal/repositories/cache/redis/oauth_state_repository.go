package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FoundlyHQ/foundly-backend/internal/apperrors"
	portsrepo "github.com/FoundlyHQ/foundly-backend/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const stateKeyPrefix = "oauth:state:"

// RedisOAuthStateRepository stores OAuth state tokens in redis so the flow
// survives restarts and works across multiple instances.
type RedisOAuthStateRepository struct {
	client *redis.Client
}

func NewOAuthStateRepository(client *redis.Client) portsrepo.OAuthStateRepository {
	return &RedisOAuthStateRepository{client: client}
}

// Ensure RedisOAuthStateRepository implements portsrepo.OAuthStateRepository
var _ portsrepo.OAuthStateRepository = (*RedisOAuthStateRepository)(nil)

func (r *RedisOAuthStateRepository) SaveState(ctx context.Context, state string, ttl time.Duration) error {
	if err := r.client.Set(ctx, stateKeyPrefix+state, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to save oauth state: %w", err)
	}
	return nil
}

// ConsumeState uses GETDEL so a state token can only ever be redeemed once.
func (r *RedisOAuthStateRepository) ConsumeState(ctx context.Context, state string) error {
	err := r.client.GetDel(ctx, stateKeyPrefix+state).Err()
	if errors.Is(err, redis.Nil) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to consume oauth state: %w", err)
	}
	return nil
}
