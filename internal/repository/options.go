package repository

import (
	"github.com/dmitrijs2005/blobkeeper/internal/codec"
	"github.com/dmitrijs2005/blobkeeper/internal/logging"
)

// KeyEqual reports whether two keys identify the same record.
type KeyEqual[K comparable] func(a, b K) bool

// Equal is the default KeyEqual: plain ==.
func Equal[K comparable](a, b K) bool {
	return a == b
}

// Option customises a Repository at construction.
type Option[T any, K comparable] func(*Repository[T, K])

// WithCodec replaces the default JSON codec.
func WithCodec[T any, K comparable](c codec.Codec[T]) Option[T, K] {
	return func(r *Repository[T, K]) {
		if c != nil {
			r.codec = c
		}
	}
}

// WithKeyEqual replaces the default == key comparison.
func WithKeyEqual[T any, K comparable](eq KeyEqual[K]) Option[T, K] {
	return func(r *Repository[T, K]) {
		if eq != nil {
			r.equal = eq
		}
	}
}

// WithLogger attaches a logger; slot reads and writes are logged at debug.
func WithLogger[T any, K comparable](l logging.Logger) Option[T, K] {
	return func(r *Repository[T, K]) {
		if l != nil {
			r.logger = l
		}
	}
}
