package pkg

import (
	"bytes"
	"encoding/json"
)

// Optional is a field of a partial update. A field absent from the JSON
// payload stays unset; an explicit null is set to the zero value.
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Or returns the value if set, fallback otherwise.
func (o Optional[T]) Or(fallback T) T {
	if o.Set {
		return o.Value
	}
	return fallback
}

// Apply stores the value in dst if set and reports whether it did.
func (o Optional[T]) Apply(dst *T) bool {
	if o.Set {
		*dst = o.Value
	}
	return o.Set
}
