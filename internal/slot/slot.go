// Package slot defines the storage medium the repository persists into: a
// flat namespace of string slots addressed by key, supporting only
// whole-value reads and writes.
//
// Implementations live in subpackages (memory, sqlite, postgres, bolt, redis,
// s3). None of them offer atomic read-modify-write across calls; callers
// that share a key race with last-writer-wins semantics.
package slot

import "context"

// Provider is a string-keyed, string-valued slot store.
type Provider interface {
	// GetItem returns the slot value. ok is false when the slot is absent,
	// which is not an error.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItem replaces the whole slot value, creating the slot if needed.
	SetItem(ctx context.Context, key string, value string) error

	// RemoveItem deletes the slot. Removing an absent slot is a no-op.
	RemoveItem(ctx context.Context, key string) error
}
