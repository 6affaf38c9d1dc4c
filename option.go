package nullops

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Option is a value that may be absent.
//
// The zero Option is absent. Absence is tracked separately from the value,
// so Some(0) and None[int]() are different things: every operator in this
// package depends on that distinction.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a nil-able pointer into an Option. A nil pointer is absent.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// MustGet returns the value. Panics if absent.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("nullops: MustGet on absent value")
	}
	return o.value
}

// OrElse returns the value, or def when absent.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// String renders the value with %v, or "null" when absent.
func (o Option[T]) String() string {
	if !o.ok {
		return "null"
	}
	return fmt.Sprintf("%v", o.value)
}

// MarshalJSON encodes an absent value as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as absent.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
