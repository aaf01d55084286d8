// Package dbx provides tiny DB abstractions shared by storage code.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the keystore.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
