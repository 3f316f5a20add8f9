// Package lookup maps ordered keys onto values through a sorted list of
// breakpoints, the way a grading scale maps scores onto letters.
package lookup

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/SteadBytes/bisection/libs/bisect"
)

var ErrBadTable = errors.New("bad lookup table")

// Table holds n breakpoints and n+1 values. Keys below the first
// breakpoint map to values[0]; a key equal to a breakpoint belongs to the
// band that starts there.
type Table[K cmp.Ordered, V any] struct {
	breakpoints []K
	values      []V
}

func NewTable[K cmp.Ordered, V any](breakpoints []K, values []V) (*Table[K, V], error) {
	if len(values) != len(breakpoints)+1 {
		return nil, fmt.Errorf("%w: %d breakpoints need %d values, got %d",
			ErrBadTable, len(breakpoints), len(breakpoints)+1, len(values))
	}
	if !slices.IsSorted(breakpoints) {
		return nil, fmt.Errorf("%w: breakpoints %v are not sorted", ErrBadTable, breakpoints)
	}
	return &Table[K, V]{
		breakpoints: slices.Clone(breakpoints),
		values:      slices.Clone(values),
	}, nil
}

func (t *Table[K, V]) Lookup(key K) V {
	return t.values[bisect.BisectRight(t.breakpoints, key)]
}

// Len returns the number of bands.
func (t *Table[K, V]) Len() int {
	return len(t.values)
}
