// PostgreSQL implementation of RepositoryManager, with migrations via goose.
package repomanager

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/vkarpovs/crudboard/internal/dbx"
	"github.com/vkarpovs/crudboard/internal/server/migrations"
	"github.com/vkarpovs/crudboard/internal/server/repositories/refreshtokens"
	"github.com/vkarpovs/crudboard/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	refreshTokenTTL time.Duration
}

// NewPostgresRepositoryManager constructs a manager whose refresh-token
// repositories apply the given TTL to new records.
func NewPostgresRepositoryManager(refreshTokenTTL time.Duration) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{refreshTokenTTL: refreshTokenTTL}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// RefreshTokens returns a refreshtokens.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db, m.refreshTokenTTL)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
