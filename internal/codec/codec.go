// Package codec turns a whole collection into the single string stored in a
// slot and back.
//
// Every codec must round-trip losslessly for the record types the caller
// uses. Decode must fail on malformed text; it never falls back to an empty
// collection.
package codec

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/blobkeeper/internal/common"
)

// Codec encodes and decodes a collection of T.
type Codec[T any] interface {
	Encode(items []T) (string, error)
	Decode(text string) ([]T, error)
}

// Names accepted by New.
const (
	NameJSON   = "json"
	NameCBOR   = "cbor"
	NameSealed = "sealed"
)

// New returns the codec registered under name. The sealed codec wraps JSON
// and needs a non-empty passphrase.
func New[T any](name string, passphrase, salt []byte) (Codec[T], error) {
	switch strings.ToLower(name) {
	case "", NameJSON:
		return JSON[T]{}, nil
	case NameCBOR:
		return NewCBOR[T]()
	case NameSealed:
		return NewSealed[T](JSON[T]{}, passphrase, salt)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownCodec, name)
	}
}
