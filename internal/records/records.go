// Package records defines the schemaless document type the CLI stores, and
// the key and predicate helpers that plug it into a repository.
package records

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Document is a JSON object with no fixed schema.
type Document map[string]any

// CanonicalKey renders a key value in one canonical text form so that the
// same identity written as a JSON number or a string compares equal:
// 1, 1.0, json.Number("1") and "1" all become "1". Missing keys yield "".
func CanonicalKey(v any) string {
	switch k := v.(type) {
	case nil:
		return ""
	case string:
		return k
	case json.Number:
		if f, err := k.Float64(); err == nil {
			return formatFloat(f)
		}
		return k.String()
	case float64:
		return formatFloat(k)
	case float32:
		return formatFloat(float64(k))
	case int:
		return strconv.Itoa(k)
	case int64:
		return strconv.FormatInt(k, 10)
	case uint64:
		return strconv.FormatUint(k, 10)
	case bool:
		return strconv.FormatBool(k)
	default:
		return fmt.Sprint(k)
	}
}

// formatFloat renders f the way encoding/json does, so a key printed by list
// can be typed back verbatim.
func formatFloat(f float64) string {
	if b, err := json.Marshal(f); err == nil {
		return string(b)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// KeyField returns a resolver reading field from a document.
func KeyField(field string) func(Document) string {
	return func(d Document) string {
		return CanonicalKey(d[field])
	}
}

// Contains matches documents whose field, rendered as text, contains substr.
func Contains(field, substr string) func(Document) bool {
	return func(d Document) bool {
		v, ok := d[field]
		if !ok {
			return false
		}
		return strings.Contains(CanonicalKey(v), substr)
	}
}

// EnsureKey assigns a fresh UUID to field when it is absent or empty and
// returns the document's canonical key.
func EnsureKey(d Document, field string) string {
	if k := CanonicalKey(d[field]); k != "" {
		return k
	}
	id := uuid.New().String()
	d[field] = id
	return id
}

// Parse decodes a single JSON object.
func Parse(text string) (Document, error) {
	var d Document
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	if d == nil {
		return nil, fmt.Errorf("invalid document: expected a JSON object")
	}
	return d, nil
}

// String renders the document as compact JSON with sorted keys.
func (d Document) String() string {
	b, err := json.Marshal(map[string]any(d))
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(d))
	}
	return string(b)
}
