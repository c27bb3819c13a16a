package codec

import "encoding/json"

// JSON stores the collection as a flat JSON array. A literal null decodes to
// an empty collection.
type JSON[T any] struct{}

func (JSON[T]) Encode(items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (JSON[T]) Decode(text string) ([]T, error) {
	var items []T
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
