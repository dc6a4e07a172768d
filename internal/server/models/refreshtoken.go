package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultRefreshTokenTTL is applied when a refresh token is created without
// an explicit validity duration.
const DefaultRefreshTokenTTL = 7 * 24 * time.Hour

var (
	ErrCreatedAtInFuture    = errors.New("created at cannot be in the future")
	ErrExpiresBeforeCreated = errors.New("expires at must be after created at")
)

// RefreshToken is the durable record behind a signed refresh token. Its ID
// doubles as the token's jti claim; deleting the record invalidates the
// token regardless of its signature or expiration claim.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewRefreshToken builds a record with a fresh random identifier and an
// expiry of createdAt+ttl (DefaultRefreshTokenTTL when ttl is zero).
// createdAt must not be in the future.
func NewRefreshToken(userID int64, createdAt time.Time, ttl time.Duration) (*RefreshToken, error) {
	if createdAt.After(time.Now()) {
		return nil, ErrCreatedAtInFuture
	}
	if ttl == 0 {
		ttl = DefaultRefreshTokenTTL
	}
	if ttl < 0 {
		return nil, ErrExpiresBeforeCreated
	}

	return &RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(ttl),
	}, nil
}
