package codec

import (
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/blobkeeper/internal/common"
	"github.com/dmitrijs2005/blobkeeper/internal/cryptox"
)

// DefaultSalt is used when the caller does not configure one.
var DefaultSalt = []byte("blobkeeper/sealed/v1")

// Sealed encrypts the text produced by an inner codec with AES-GCM.
// The stored form is base64(nonce || ciphertext).
type Sealed[T any] struct {
	inner Codec[T]
	key   []byte
}

// NewSealed derives the key from passphrase and salt once, up front.
func NewSealed[T any](inner Codec[T], passphrase, salt []byte) (*Sealed[T], error) {
	if len(passphrase) == 0 {
		return nil, common.ErrMissingPassphrase
	}
	if len(salt) == 0 {
		salt = DefaultSalt
	}
	return &Sealed[T]{inner: inner, key: cryptox.DeriveKey(passphrase, salt)}, nil
}

func (s *Sealed[T]) Encode(items []T) (string, error) {
	plain, err := s.inner.Encode(items)
	if err != nil {
		return "", err
	}
	sealed, err := cryptox.Seal(s.key, []byte(plain))
	if err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *Sealed[T]) Decode(text string) ([]T, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, err
	}
	plain, err := cryptox.Open(s.key, raw)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	return s.inner.Decode(string(plain))
}
