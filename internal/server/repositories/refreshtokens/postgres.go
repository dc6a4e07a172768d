package refreshtokens

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vkarpovs/crudboard/internal/dbx"
	"github.com/vkarpovs/crudboard/internal/server/models"
)

// PostgresRepository stores refresh-token records in the refresh_tokens
// table over dbx.DBTX (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db  dbx.DBTX
	ttl time.Duration
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
// A zero ttl falls back to models.DefaultRefreshTokenTTL on Create.
func NewPostgresRepository(db dbx.DBTX, ttl time.Duration) *PostgresRepository {
	return &PostgresRepository{db: db, ttl: ttl}
}

// Create inserts a new record for userID and returns its identifier.
func (r *PostgresRepository) Create(ctx context.Context, userID int64, createdAt time.Time) (uuid.UUID, error) {
	token, err := models.NewRefreshToken(userID, createdAt, r.ttl)
	if err != nil {
		return uuid.Nil, err
	}

	query := `
		INSERT INTO refresh_tokens (id, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, token.ID, token.UserID, token.CreatedAt, token.ExpiresAt); err != nil {
		return uuid.Nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return token.ID, nil
}

// Exists reports whether a record with the given id is present.
func (r *PostgresRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE id = $1)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// Delete removes a record by id. Missing rows are not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM refresh_tokens
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
