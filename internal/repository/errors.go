package repository

import (
	"fmt"

	"github.com/dmitrijs2005/blobkeeper/internal/common"
)

// NotFoundError reports that no stored record resolves to Key.
// It matches common.ErrorNotFound with errors.Is.
type NotFoundError struct {
	StoreKey string
	Key      any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item not found for key %v in %q", e.Key, e.StoreKey)
}

func (e *NotFoundError) Is(target error) bool {
	return target == common.ErrorNotFound
}

// DecodeError reports that the slot value could not be decoded. The
// repository never substitutes an empty collection for unreadable data.
// It matches common.ErrDecode with errors.Is.
type DecodeError struct {
	StoreKey string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode slot %q: %v", e.StoreKey, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == common.ErrDecode
}
