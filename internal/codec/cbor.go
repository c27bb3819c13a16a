package codec

import (
	"encoding/base64"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// CBOR stores the collection as canonical CBOR, base64 encoded so it fits a
// string slot.
type CBOR[T any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCBOR[T any]() (*CBOR[T], error) {
	enc, err := cbor.EncOptions{Sort: cbor.SortCanonical}.EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}
	// Nested maps decode as map[string]any so schemaless records stay
	// JSON-compatible.
	dec, err := cbor.DecOptions{DefaultMapType: reflect.TypeOf(map[string]any(nil))}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR decoder: %w", err)
	}
	return &CBOR[T]{enc: enc, dec: dec}, nil
}

func (c *CBOR[T]) Encode(items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	b, err := c.enc.Marshal(items)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func (c *CBOR[T]) Decode(text string) ([]T, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := c.dec.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
