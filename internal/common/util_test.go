package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestGenerateRandByteArray_Length(t *testing.T) {
	for _, n := range []int{0, 12, 32} {
		if got := len(GenerateRandByteArray(n)); got != n {
			t.Fatalf("expected length %d, got %d", n, got)
		}
	}
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}

	// nil must be a no-op
	WipeByteArray(nil)
}

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("slot %q: %w", "notes", ErrDecode)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("wrapped error must match ErrDecode")
	}
	if errors.Is(err, ErrorNotFound) {
		t.Fatalf("decode error must not match ErrorNotFound")
	}
}
