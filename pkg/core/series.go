package core

import (
	"golang.org/x/exp/constraints"
)

// Series is a time series of ordered values, oldest first
type Series[T constraints.Ordered] []T

// Last returns the value at a specified position from the end
// position 0 is the last value, 1 is the second-to-last, etc.
func (s Series[T]) Last(position int) T {
	return s[len(s)-1-position]
}

// LastValues returns a slice with the last 'size' values
// If size exceeds the length, returns the entire series
func (s Series[T]) LastValues(size int) Series[T] {
	if l := len(s); l > size {
		return s[l-size:]
	}
	return s
}

// Clone returns a copy that does not share the backing array
func (s Series[T]) Clone() Series[T] {
	if s == nil {
		return nil
	}
	out := make(Series[T], len(s))
	copy(out, s)
	return out
}

// Shift moves every value n positions forward and zero-fills the vacated head.
// The result always has the receiver's length. n <= 0 returns a plain copy.
func (s Series[T]) Shift(n int) Series[T] {
	if n <= 0 {
		return s.Clone()
	}

	out := make(Series[T], len(s))
	if n >= len(s) {
		return out
	}

	copy(out[n:], s[:len(s)-n])
	return out
}

// Crossover detects when this series crosses above the reference series
// Returns true when the current value is higher, but the previous value was not
func (s Series[T]) Crossover(ref Series[T]) bool {
	return s.Last(0) > ref.Last(0) && s.Last(1) <= ref.Last(1)
}

// Crossunder detects when this series crosses below the reference series
// Returns true when the current value is lower/equal, but the previous value was higher
func (s Series[T]) Crossunder(ref Series[T]) bool {
	return s.Last(0) <= ref.Last(0) && s.Last(1) > ref.Last(1)
}

// Cross detects when this series crosses the reference series in either direction
func (s Series[T]) Cross(ref Series[T]) bool {
	return s.Crossover(ref) || s.Crossunder(ref)
}
