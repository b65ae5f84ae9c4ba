// Package metadata is the client's key/value table. The session token lives
// here under a fixed key; see internal/client/tokenstore.
package metadata

import (
	"context"
	"database/sql"
)

// DBTX is the part of database/sql the repository needs. *sql.DB and
// *sql.Tx both satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository stores opaque values under string keys.
//
// Get reports found == false (and a nil error) when the key is absent.
// Delete and Clear are idempotent.
type Repository interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
