// Package repomanager wires repository constructors together with database
// schema migrations behind a single factory interface.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/vkarpovs/crudboard/internal/dbx"
	"github.com/vkarpovs/crudboard/internal/server/repositories/refreshtokens"
	"github.com/vkarpovs/crudboard/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX (a live connection
// or a transaction) and runs schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
