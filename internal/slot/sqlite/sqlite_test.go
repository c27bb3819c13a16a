package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/blobkeeper/internal/dbx"
	"github.com/dmitrijs2005/blobkeeper/internal/slot"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ slot.Provider = (*Provider)(nil)

func openTemp(t *testing.T) *Provider {
	t.Helper()
	p, err := Open(context.Background(), filepath.Join(t.TempDir(), "slots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestProvider_GetSetRemove(t *testing.T) {
	p := openTemp(t)
	ctx := context.Background()

	_, ok, err := p.GetItem(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.SetItem(ctx, "notes", `[{"id":"1"}]`))
	v, ok, err := p.GetItem(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)

	// upsert replaces
	require.NoError(t, p.SetItem(ctx, "notes", `[]`))
	v, _, err = p.GetItem(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)

	require.NoError(t, p.RemoveItem(ctx, "notes"))
	_, ok, err = p.GetItem(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.RemoveItem(ctx, "notes"))
}

func TestProvider_Keys(t *testing.T) {
	p := openTemp(t)
	ctx := context.Background()

	require.NoError(t, p.SetItem(ctx, "b", "2"))
	require.NoError(t, p.SetItem(ctx, "a", "1"))

	keys, err := p.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestOpen_InMemory(t *testing.T) {
	p, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer p.Close()

	ctx := context.Background()
	require.NoError(t, p.SetItem(ctx, "k", "v"))
	v, ok, err := p.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestProvider_InsideTransaction(t *testing.T) {
	owner := openTemp(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, owner.owned, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return New(tx).SetItem(ctx, "k", "in-tx")
	})
	require.NoError(t, err)

	v, ok, err := owner.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "in-tx", v)

	err = dbx.WithTx(ctx, owner.owned, nil, func(ctx context.Context, tx dbx.DBTX) error {
		require.NoError(t, New(tx).SetItem(ctx, "k", "rolled-back"))
		return errors.New("boom")
	})
	require.Error(t, err)

	v, _, err = owner.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "in-tx", v)
}

func TestProvider_ClosedDBErrors(t *testing.T) {
	p := openTemp(t)
	require.NoError(t, p.Close())

	ctx := context.Background()
	_, _, err := p.GetItem(ctx, "k")
	require.Error(t, err)
	require.Error(t, p.SetItem(ctx, "k", "v"))
	require.Error(t, p.RemoveItem(ctx, "k"))
}

func TestOpen_MigrationError(t *testing.T) {
	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	_, err := Open(context.Background(), ":memory:")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestClose_NotOwned(t *testing.T) {
	assert.NoError(t, New(nil).Close())
}
