// Package series provides the named-column table the indicator layer
// reads its input sequences from.
package series

import (
	"errors"
	"fmt"
	"sort"
)

// ErrColumnNotFound reports a lookup of a column the frame does not
// hold.
var ErrColumnNotFound = errors.New("series: column not found")

// Frame is a table of equal-length float64 columns keyed by name
// ("high", "low", "close", "volume", ...). A frame wraps the slices it
// was given without copying; callers that mutate them see the changes
// reflected here.
type Frame struct {
	columns map[string][]float64
	rows    int
}

// NewFrame builds a frame from named columns. All columns must share
// one length.
func NewFrame(columns map[string][]float64) (*Frame, error) {
	f := &Frame{columns: make(map[string][]float64, len(columns))}

	first := true
	for name, col := range columns {
		if first {
			f.rows = len(col)
			first = false
		} else if len(col) != f.rows {
			return nil, fmt.Errorf("series: column %q has %d rows, want %d",
				name, len(col), f.rows)
		}
		f.columns[name] = col
	}

	return f, nil
}

// Column returns the named column, or an error wrapping
// [ErrColumnNotFound] if the frame does not hold it.
func (f *Frame) Column(name string) ([]float64, error) {
	col, ok := f.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	return col, nil
}

// RowCount returns the shared length of the frame's columns.
func (f *Frame) RowCount() int {
	return f.rows
}

// Names returns the column names in sorted order.
func (f *Frame) Names() []string {
	names := make([]string, 0, len(f.columns))
	for name := range f.columns {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
