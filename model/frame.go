package model

import (
	"errors"
	"fmt"

	"github.com/StudioSol/set"
)

var (
	// ErrEmptySelection is returned by Frame.Window when no row satisfies
	// the predicate.
	ErrEmptySelection = errors.New("empty selection: no rows match the window predicate")

	// ErrLengthMismatch is returned when a column does not match the frame's
	// row count.
	ErrLengthMismatch = errors.New("column length does not match frame length")
)

// Frame is an in-memory columnar table: an ordered integer index plus named
// float64 columns of equal length. Column order follows insertion order and
// is stable, so every walk over the frame is deterministic. Values may be
// NaN to mark gaps.
type Frame struct {
	index   []int
	columns *set.LinkedHashSetString
	values  map[string]Series[float64]
}

// NewFrame creates a frame over the given row index. A nil index is allowed
// and yields an empty frame; use DenseIndex for the common 0..n-1 case.
func NewFrame(index []int) *Frame {
	return &Frame{
		index:   index,
		columns: set.NewLinkedHashSetString(),
		values:  make(map[string]Series[float64]),
	}
}

// DenseIndex returns the sequence 0..n-1.
func DenseIndex(n int) []int {
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	return index
}

// AddColumn appends a named column. The column must have exactly one value
// per row. Re-adding an existing name replaces its values but keeps its
// original position in the column order.
func (f *Frame) AddColumn(name string, values Series[float64]) error {
	if len(values) != len(f.index) {
		return fmt.Errorf("column %q has %d values for %d rows: %w",
			name, len(values), len(f.index), ErrLengthMismatch)
	}
	if _, ok := f.values[name]; !ok {
		f.columns.Add(name)
	}
	f.values[name] = values
	return nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.index)
}

// Index returns the row index values in order.
func (f *Frame) Index() []int {
	return f.index
}

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string {
	names := make([]string, 0, f.columns.Length())
	for name := range f.columns.Iter() {
		names = append(names, name)
	}
	return names
}

// HasColumn reports whether the frame holds a column with the given name.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Column returns the named column's values.
func (f *Frame) Column(name string) (Series[float64], bool) {
	values, ok := f.values[name]
	return values, ok
}

// Window returns a new frame holding only the rows whose index value
// satisfies the predicate. Row order and the column set are preserved and
// no resampling or reindexing occurs: the selected rows keep their original
// index values. Returns ErrEmptySelection when nothing matches.
func (f *Frame) Window(pred func(index int) bool) (*Frame, error) {
	positions := make([]int, 0, len(f.index))
	for pos, idx := range f.index {
		if pred(idx) {
			positions = append(positions, pos)
		}
	}
	if len(positions) == 0 {
		return nil, ErrEmptySelection
	}

	index := make([]int, len(positions))
	for i, pos := range positions {
		index[i] = f.index[pos]
	}

	window := NewFrame(index)
	for _, name := range f.Columns() {
		source := f.values[name]
		values := make(Series[float64], len(positions))
		for i, pos := range positions {
			values[i] = source[pos]
		}
		window.values[name] = values
		window.columns.Add(name)
	}
	return window, nil
}

// IndexAbove returns a predicate selecting rows with index > threshold.
func IndexAbove(threshold int) func(index int) bool {
	return func(index int) bool {
		return index > threshold
	}
}

// IndexAtLeast returns a predicate selecting rows with index >= threshold.
func IndexAtLeast(threshold int) func(index int) bool {
	return func(index int) bool {
		return index >= threshold
	}
}
