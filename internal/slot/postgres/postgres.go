// Package postgres provides a slot.Provider backed by a PostgreSQL table,
// reached through the pgx stdlib driver. The schema is applied with goose
// from the embedded migrations subpackage.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blobkeeper/internal/dbx"
	"github.com/dmitrijs2005/blobkeeper/internal/slot/postgres/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Provider implements slot.Provider over dbx.DBTX (satisfied by *sql.DB or *sql.Tx).
type Provider struct {
	db    dbx.DBTX
	owned *sql.DB
}

// New constructs a provider bound to the given DBTX.
func New(db dbx.DBTX) *Provider {
	return &Provider{db: db}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlOpen is a seam for tests that must not reach a real server.
var sqlOpen = sql.Open

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// Open connects with the given DSN, migrates and returns an owning Provider.
func Open(ctx context.Context, dsn string) (*Provider, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}
	return &Provider{db: db, owned: db}, nil
}

// Close closes the connection pool if Open created it.
func (p *Provider) Close() error {
	if p.owned == nil {
		return nil
	}
	return p.owned.Close()
}

// GetItem returns the slot value; ok is false when no row exists.
func (p *Provider) GetItem(ctx context.Context, key string) (string, bool, error) {
	query := `
		SELECT value
		FROM slots
		WHERE key = $1
	`
	var value string
	if err := p.db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("db error: %w", err)
	}
	return value, true, nil
}

// SetItem upserts the slot value.
func (p *Provider) SetItem(ctx context.Context, key string, value string) error {
	query := `
		INSERT INTO slots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	if _, err := p.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// RemoveItem deletes the slot row. Deleting a missing slot is not an error.
func (p *Provider) RemoveItem(ctx context.Context, key string) error {
	query := `
		DELETE FROM slots
		WHERE key = $1
	`
	if _, err := p.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
