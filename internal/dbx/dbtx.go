// Package dbx provides the database/sql handle the SQL slot providers run on
// (DBTX, satisfied by *sql.DB and *sql.Tx) and a helper to run several slot
// writes inside one transaction.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is the subset of database/sql used by the SQL slot providers.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn against one transaction and commits it when fn returns nil.
// Any error or panic from fn rolls the transaction back; panics propagate.
//
// Slot providers built with sqlite.New(tx) or postgres.New(tx) then write
// several slots atomically:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    p := sqlite.New(tx)
//	    if err := p.SetItem(ctx, "notes", "[]"); err != nil {
//	        return err
//	    }
//	    return p.RemoveItem(ctx, "drafts")
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}
