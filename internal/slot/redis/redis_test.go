package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/blobkeeper/internal/slot"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ slot.Provider = (*Provider)(nil)

type fakeRedis struct {
	data map[string]string
	err  error
}

func newFake() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestProvider_GetSetRemove(t *testing.T) {
	f := newFake()
	p := New(f, "")
	ctx := context.Background()

	_, ok, err := p.GetItem(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.SetItem(ctx, "notes", "[]"))
	v, ok, err := p.GetItem(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	require.NoError(t, p.RemoveItem(ctx, "notes"))
	_, ok, err = p.GetItem(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProvider_Prefix(t *testing.T) {
	f := newFake()
	p := New(f, "bk")

	require.NoError(t, p.SetItem(context.Background(), "notes", "[]"))
	assert.Contains(t, f.data, "bk:notes")
	assert.NotContains(t, f.data, "notes")
}

func TestProvider_Errors(t *testing.T) {
	f := newFake()
	f.err = errors.New("conn refused")
	p := New(f, "")
	ctx := context.Background()

	_, _, err := p.GetItem(ctx, "k")
	require.ErrorContains(t, err, "conn refused")
	require.ErrorContains(t, p.SetItem(ctx, "k", "v"), "conn refused")
	require.ErrorContains(t, p.RemoveItem(ctx, "k"), "conn refused")
}

func TestClose_NotOwned(t *testing.T) {
	assert.NoError(t, New(newFake(), "").Close())
}
