// Package refreshtokens declares the storage contract for refresh-token
// records and its persistence adapters. A record's identifier is the jti
// claim of the signed token handed to the client; a token is only valid
// while its record exists.
package refreshtokens

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines operations for issuing, checking, and revoking
// refresh-token records. Implementations must be safe for concurrent use;
// concurrent Delete calls on the same id are idempotent.
type Repository interface {
	// Create persists a new record for userID with an expiry of
	// createdAt plus the configured TTL and returns its fresh identifier.
	Create(ctx context.Context, userID int64, createdAt time.Time) (uuid.UUID, error)

	// Exists reports whether a record with the given identifier is present.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Delete removes the record with the given identifier. Deleting a
	// non-existent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
