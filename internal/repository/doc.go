// Package repository persists a homogeneous collection of records inside a
// single slot of a string-keyed storage medium.
//
// # Overview
//
// The slot.Provider only offers whole-value reads and writes, so the
// Repository layers collection semantics on top of it: every operation reads
// and decodes the entire collection, and every mutation encodes and writes the
// entire collection back (read-modify-write). Nothing is cached between calls.
//
// # Identity
//
// Each record's logical key is obtained from a resolver function. Keys are
// compared with a KeyEqual function, == by default. No coercion happens
// between key representations; callers must normalise keys to one canonical
// form (see records.CanonicalKey for the schemaless case).
//
// # Concurrency
//
// A Repository holds no lock. Two repositories, processes or hosts that
// share a store key race on read-modify-write and the last writer wins.
//
// Key Types
//
//   - type Repository[T, K]: the keyed blob repository
//   - type NotFoundError: returned by GetByKey and Remove
//   - type DecodeError: the slot holds text the codec cannot read
//
// Typical Usage
//
//	repo := repository.New("notes", func(n Note) string { return n.ID }, memory.New())
//	_ = repo.AddOrUpdate(ctx, Note{ID: "1", Text: "hello"})
//	n, err := repo.GetByKey(ctx, "1")
//	all, _ := repo.GetAll(ctx)
//	removed, err := repo.Remove(ctx, "1")
package repository
