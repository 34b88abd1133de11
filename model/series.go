package model

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Series is an ordered sequence of values for a single column.
type Series[T constraints.Ordered] []T

// Values returns the raw values of the series.
func (s Series[T]) Values() []T {
	return s
}

// Length returns the number of values in the series.
func (s Series[T]) Length() int {
	return len(s)
}

// Last returns the value at the given position counting from the end,
// Last(0) being the most recent value.
func (s Series[T]) Last(position int) T {
	return s[len(s)-1-position]
}

// LastValues returns up to size values from the end of the series.
func (s Series[T]) LastValues(size int) []T {
	if l := len(s); l > size {
		return s[l-size:]
	}
	return s
}

// Finite returns the values of a float series with NaN and Inf entries
// removed. Order is preserved.
func Finite(s Series[float64]) []float64 {
	out := make([]float64, 0, len(s))
	for _, v := range s {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
