package repository

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blobkeeper/internal/codec"
	"github.com/dmitrijs2005/blobkeeper/internal/common"
	"github.com/dmitrijs2005/blobkeeper/internal/logging"
	"github.com/dmitrijs2005/blobkeeper/internal/slot"
)

// Repository stores a collection of T under one slot, identified by keys of
// type K. The store key, resolver, provider, codec and comparator are fixed
// for the lifetime of the instance.
type Repository[T any, K comparable] struct {
	storeKey string
	resolve  func(T) K
	provider slot.Provider
	codec    codec.Codec[T]
	equal    KeyEqual[K]
	logger   logging.Logger
}

// New returns a repository over the slot storeKey of provider. Records are
// encoded as JSON unless WithCodec says otherwise.
func New[T any, K comparable](storeKey string, resolve func(T) K, provider slot.Provider, opts ...Option[T, K]) *Repository[T, K] {
	r := &Repository[T, K]{
		storeKey: storeKey,
		resolve:  resolve,
		provider: provider,
		codec:    codec.JSON[T]{},
		equal:    Equal[K],
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("store_key", storeKey)
	return r
}

// StoreKey returns the slot this repository manages.
func (r *Repository[T, K]) StoreKey() string {
	return r.storeKey
}

// GetAll returns every stored record in order. An absent slot yields an
// empty, non-nil slice.
func (r *Repository[T, K]) GetAll(ctx context.Context) ([]T, error) {
	return r.readCollection(ctx)
}

// FindByKey returns the first record whose key matches. ok is false when
// there is none; that is not an error.
func (r *Repository[T, K]) FindByKey(ctx context.Context, key K) (item T, ok bool, err error) {
	items, err := r.readCollection(ctx)
	if err != nil {
		return item, false, err
	}
	i := r.indexOf(key, items)
	if i < 0 {
		return item, false, nil
	}
	return items[i], true, nil
}

// GetByKey is FindByKey that turns absence into a *NotFoundError.
func (r *Repository[T, K]) GetByKey(ctx context.Context, key K) (T, error) {
	item, ok, err := r.FindByKey(ctx, key)
	if err != nil {
		return item, err
	}
	if !ok {
		return item, &NotFoundError{StoreKey: r.storeKey, Key: key}
	}
	return item, nil
}

// FindMatching returns the records satisfying predicate, in stored order.
func (r *Repository[T, K]) FindMatching(ctx context.Context, predicate func(T) bool) ([]T, error) {
	items, err := r.readCollection(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]T, 0, len(items))
	for _, item := range items {
		if predicate(item) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// AddOrUpdate appends item when no stored record shares its key, otherwise
// replaces that record at its position. The whole collection is rewritten.
func (r *Repository[T, K]) AddOrUpdate(ctx context.Context, item T) error {
	items, err := r.readCollection(ctx)
	if err != nil {
		return err
	}
	if i := r.indexOf(r.resolve(item), items); i >= 0 {
		items[i] = item
	} else {
		items = append(items, item)
	}
	return r.writeCollection(ctx, items)
}

// Remove deletes the record matching key and returns it. The order of the
// remaining records is preserved.
func (r *Repository[T, K]) Remove(ctx context.Context, key K) (T, error) {
	var zero T
	items, err := r.readCollection(ctx)
	if err != nil {
		return zero, err
	}
	i := r.indexOf(key, items)
	if i < 0 {
		return zero, &NotFoundError{StoreKey: r.storeKey, Key: key}
	}
	removed := items[i]
	items = append(items[:i], items[i+1:]...)
	if err := r.writeCollection(ctx, items); err != nil {
		return zero, err
	}
	return removed, nil
}

func (r *Repository[T, K]) indexOf(key K, items []T) int {
	for i, item := range items {
		if r.equal(r.resolve(item), key) {
			return i
		}
	}
	return -1
}

func (r *Repository[T, K]) readCollection(ctx context.Context) ([]T, error) {
	text, ok, err := r.provider.GetItem(ctx, r.storeKey)
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", r.storeKey, err)
	}
	if !ok {
		r.logger.Debug(ctx, "slot absent")
		return []T{}, nil
	}
	items, err := r.codec.Decode(text)
	if err != nil {
		r.logger.Warn(ctx, "slot decode failed", "error", err)
		return nil, &DecodeError{StoreKey: r.storeKey, Err: err}
	}
	r.logger.Debug(ctx, "slot read", "items", len(items), "bytes", len(text))
	return items, nil
}

func (r *Repository[T, K]) writeCollection(ctx context.Context, items []T) error {
	text, err := r.codec.Encode(items)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w: %w", r.storeKey, common.ErrEncode, err)
	}
	if err := r.provider.SetItem(ctx, r.storeKey, text); err != nil {
		return fmt.Errorf("write slot %q: %w", r.storeKey, err)
	}
	r.logger.Debug(ctx, "slot written", "items", len(items), "bytes", len(text))
	return nil
}
