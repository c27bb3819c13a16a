// Package sqlite provides a slot.Provider backed by a local SQLite database
// (modernc.org/sqlite, no cgo).
//
// # Schema
//
// Slots live in a single table managed by goose migrations embedded in the
// migrations subpackage:
//
//	slots(key TEXT PRIMARY KEY, value TEXT NOT NULL)
//
// # Typical Usage
//
//	p, err := sqlite.Open(ctx, "blobkeeper.db")
//	defer p.Close()
//	_ = p.SetItem(ctx, "notes", "[]")
//
// Provider can also be bound to an existing dbx.DBTX (a *sql.DB or *sql.Tx)
// with New; the caller is then responsible for running RunMigrations.
package sqlite
