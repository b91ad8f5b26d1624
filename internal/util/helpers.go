package util

import "cmp"

// Ptr returns a pointer to the value.
func Ptr[T any](v T) *T {
	return &v
}

// Deref safely dereferences a pointer, returning the zero value if nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Clamp constrains value to [lo, hi]. lo wins when the range is empty.
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	if value > hi {
		value = hi
	}
	if value < lo {
		value = lo
	}
	return value
}
