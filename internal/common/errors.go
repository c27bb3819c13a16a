// Package common defines sentinel errors and small helpers shared by the
// repository, its slot providers and the CLI. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrDecode     = errors.New("decode error")
	ErrEncode     = errors.New("encode error")

	// Configuration errors.
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrUnknownCodec   = errors.New("unknown codec")

	// Sealed codec errors.
	ErrMissingPassphrase = errors.New("passphrase is required for sealed codec")
)
