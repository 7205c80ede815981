// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package optional provides a generic tri-state value for JSON request payloads.

A field decoded into [Field] remembers whether the key was present in the
document, and whether it was present as an explicit null. This is what partial
updates need: "absent" keeps the stored value, "null" clears it, and anything
else overwrites it.

Key Functions:
  - Of: A present, non-null field.
  - Null: A present field holding JSON null.
  - Apply: Overwrite a destination only when the field was supplied.
*/
package optional

import (
	"bytes"
	"encoding/json"
)

// Field is a JSON value that tracks presence and nullness.
// The zero value is an absent field.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a present field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a present field holding JSON null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// UnmarshalJSON implements [json.Unmarshaler]. It is only invoked when the key exists.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.Null = true
		f.Value = zero
		return nil
	}

	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON implements [json.Marshaler]. Absent and null fields both encode as null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Present reports whether the field carries a non-null value.
func (f Field[T]) Present() bool {
	return f.Set && !f.Null
}

// Apply overwrites *dst with the field value when the field is present and non-null.
func (f Field[T]) Apply(dst *T) {
	if f.Present() {
		*dst = f.Value
	}
}

// ApplyNullable overwrites a nullable destination. A null field clears it.
func (f Field[T]) ApplyNullable(dst **T) {
	switch {
	case !f.Set:
	case f.Null:
		*dst = nil
	default:
		v := f.Value
		*dst = &v
	}
}
