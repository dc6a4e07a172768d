package refreshtokens

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vkarpovs/crudboard/internal/server/models"
)

const redisKeyPrefix = "refresh_token:"

// RedisRepository stores refresh-token records as Redis keys whose TTL
// mirrors the record expiry, so stale records disappear without a cleanup
// job. The value is the owning user id.
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository constructs a repository over the given client.
// A zero ttl falls back to models.DefaultRefreshTokenTTL on Create.
func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{client: client, ttl: ttl}
}

func (r *RedisRepository) key(id uuid.UUID) string {
	return redisKeyPrefix + id.String()
}

// Create stores a new record for userID and returns its identifier.
func (r *RedisRepository) Create(ctx context.Context, userID int64, createdAt time.Time) (uuid.UUID, error) {
	token, err := models.NewRefreshToken(userID, createdAt, r.ttl)
	if err != nil {
		return uuid.Nil, err
	}

	validity := time.Until(token.ExpiresAt)
	if err := r.client.Set(ctx, r.key(token.ID), strconv.FormatInt(userID, 10), validity).Err(); err != nil {
		return uuid.Nil, fmt.Errorf("redis error: %w", err)
	}

	return token.ID, nil
}

// Exists reports whether a record with the given id is present.
func (r *RedisRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("redis error: %w", err)
	}
	return n > 0, nil
}

// Delete removes a record by id. Missing keys are not an error.
func (r *RedisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}
