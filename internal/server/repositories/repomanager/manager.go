package repomanager

import (
	"context"
	"database/sql"

	"github.com/reomoon/memo/internal/dbx"
	"github.com/reomoon/memo/internal/server/repositories/sessions"
)

// RepositoryManager vends database-backed repositories and migrates their
// schema.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Sessions(db dbx.DBTX) sessions.Repository
}
