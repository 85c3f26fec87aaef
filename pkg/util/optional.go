package util

import (
	"bytes"
	"encoding/json"
)

// Optional wraps a JSON field so that an absent key can be told apart
// from an explicit null. Set is false when the key was missing, Value is
// nil when the key was present but null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a present Optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a present Optional holding no value
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only called by encoding/json when the key is present,
// null included
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}

	return json.Marshal(*o.Value)
}
