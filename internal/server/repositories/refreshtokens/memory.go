package refreshtokens

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vkarpovs/crudboard/internal/server/models"
)

// MemoryRepository is a mutex-guarded in-process store. It backs service
// tests and single-node development setups; records survive only as long as
// the process.
type MemoryRepository struct {
	mu     sync.RWMutex
	tokens map[uuid.UUID]*models.RefreshToken
	ttl    time.Duration
}

// NewMemoryRepository constructs an empty in-memory store.
// A zero ttl falls back to models.DefaultRefreshTokenTTL on Create.
func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	return &MemoryRepository{
		tokens: make(map[uuid.UUID]*models.RefreshToken),
		ttl:    ttl,
	}
}

// Create stores a new record for userID and returns its identifier.
func (r *MemoryRepository) Create(ctx context.Context, userID int64, createdAt time.Time) (uuid.UUID, error) {
	token, err := models.NewRefreshToken(userID, createdAt, r.ttl)
	if err != nil {
		return uuid.Nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.ID] = token

	return token.ID, nil
}

// Exists reports whether a record with the given id is present.
func (r *MemoryRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tokens[id]
	return ok, nil
}

// Delete removes a record by id. Missing records are not an error.
func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, id)
	return nil
}
