// Package bisect locates insertion points in sorted slices and inserts
// values while keeping them sorted.
//
// Plain functions require a cmp.Ordered element type and compare with
// cmp.Less. The Func variants only need a less function and work for any
// partially ordered type. Every operation has a Range form that restricts
// the search to a[lo:hi] while still returning indices into a.
//
// No function checks that its input is sorted; results over unsorted data
// are meaningless but never out of bounds.
package bisect

import (
	"cmp"
	"slices"
)

// search returns the first index in [lo, hi) for which right reports true,
// or hi if there is none. right must be false for a prefix of the range and
// true for the rest.
func search(lo, hi int, right func(i int) bool) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if right(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

func searchLeft[S ~[]E, E any](a S, x E, lo, hi int, less func(a, b E) bool) int {
	return search(lo, hi, func(i int) bool {
		return !less(a[i], x)
	})
}

func searchRight[S ~[]E, E any](a S, x E, lo, hi int, less func(a, b E) bool) int {
	return search(lo, hi, func(i int) bool {
		return less(x, a[i])
	})
}

// BisectLeft returns the index i where x would be inserted into the sorted
// slice a: every element of a[:i] is less than x and every element of a[i:]
// is not. If x is present, i is its leftmost position.
func BisectLeft[S ~[]E, E cmp.Ordered](a S, x E) int {
	return searchLeft(a, x, 0, len(a), cmp.Less[E])
}

// BisectLeftRange is BisectLeft restricted to a[lo:hi].
func BisectLeftRange[S ~[]E, E cmp.Ordered](a S, x E, lo, hi int) (int, error) {
	if err := checkRange(len(a), lo, hi); err != nil {
		return lo, err
	}
	return searchLeft(a, x, lo, hi, cmp.Less[E]), nil
}

// BisectLeftFunc is BisectLeft for slices ordered by less.
func BisectLeftFunc[S ~[]E, E any](a S, x E, less func(a, b E) bool) int {
	return searchLeft(a, x, 0, len(a), less)
}

// BisectLeftRangeFunc is BisectLeftFunc restricted to a[lo:hi].
func BisectLeftRangeFunc[S ~[]E, E any](a S, x E, lo, hi int, less func(a, b E) bool) (int, error) {
	if err := checkRange(len(a), lo, hi); err != nil {
		return lo, err
	}
	return searchLeft(a, x, lo, hi, less), nil
}

// BisectRight returns the index i where x would be inserted into the sorted
// slice a: every element of a[:i] is less than or equal to x and every
// element of a[i:] is greater. If x is present, i is just past its
// rightmost position.
func BisectRight[S ~[]E, E cmp.Ordered](a S, x E) int {
	return searchRight(a, x, 0, len(a), cmp.Less[E])
}

// BisectRightRange is BisectRight restricted to a[lo:hi].
func BisectRightRange[S ~[]E, E cmp.Ordered](a S, x E, lo, hi int) (int, error) {
	if err := checkRange(len(a), lo, hi); err != nil {
		return lo, err
	}
	return searchRight(a, x, lo, hi, cmp.Less[E]), nil
}

// BisectRightFunc is BisectRight for slices ordered by less.
func BisectRightFunc[S ~[]E, E any](a S, x E, less func(a, b E) bool) int {
	return searchRight(a, x, 0, len(a), less)
}

// BisectRightRangeFunc is BisectRightFunc restricted to a[lo:hi].
func BisectRightRangeFunc[S ~[]E, E any](a S, x E, lo, hi int, less func(a, b E) bool) (int, error) {
	if err := checkRange(len(a), lo, hi); err != nil {
		return lo, err
	}
	return searchRight(a, x, lo, hi, less), nil
}

// Bisect is BisectRight.
func Bisect[S ~[]E, E cmp.Ordered](a S, x E) int {
	return BisectRight(a, x)
}

// InsortLeft inserts x into the sorted slice *a before any elements equal
// to it.
func InsortLeft[S ~[]E, E cmp.Ordered](a *S, x E) {
	*a = slices.Insert(*a, BisectLeft(*a, x), x)
}

// InsortLeftRange is InsortLeft with the search restricted to (*a)[lo:hi].
// *a is left untouched if the range is invalid.
func InsortLeftRange[S ~[]E, E cmp.Ordered](a *S, x E, lo, hi int) error {
	i, err := BisectLeftRange(*a, x, lo, hi)
	if err != nil {
		return err
	}
	*a = slices.Insert(*a, i, x)
	return nil
}

// InsortLeftFunc is InsortLeft for slices ordered by less.
func InsortLeftFunc[S ~[]E, E any](a *S, x E, less func(a, b E) bool) {
	*a = slices.Insert(*a, BisectLeftFunc(*a, x, less), x)
}

// InsortLeftRangeFunc is InsortLeftFunc restricted to (*a)[lo:hi].
func InsortLeftRangeFunc[S ~[]E, E any](a *S, x E, lo, hi int, less func(a, b E) bool) error {
	i, err := BisectLeftRangeFunc(*a, x, lo, hi, less)
	if err != nil {
		return err
	}
	*a = slices.Insert(*a, i, x)
	return nil
}

// InsortRight inserts x into the sorted slice *a after any elements equal
// to it.
func InsortRight[S ~[]E, E cmp.Ordered](a *S, x E) {
	*a = slices.Insert(*a, BisectRight(*a, x), x)
}

// InsortRightRange is InsortRight with the search restricted to (*a)[lo:hi].
// *a is left untouched if the range is invalid.
func InsortRightRange[S ~[]E, E cmp.Ordered](a *S, x E, lo, hi int) error {
	i, err := BisectRightRange(*a, x, lo, hi)
	if err != nil {
		return err
	}
	*a = slices.Insert(*a, i, x)
	return nil
}

// InsortRightFunc is InsortRight for slices ordered by less.
func InsortRightFunc[S ~[]E, E any](a *S, x E, less func(a, b E) bool) {
	*a = slices.Insert(*a, BisectRightFunc(*a, x, less), x)
}

// InsortRightRangeFunc is InsortRightFunc restricted to (*a)[lo:hi].
func InsortRightRangeFunc[S ~[]E, E any](a *S, x E, lo, hi int, less func(a, b E) bool) error {
	i, err := BisectRightRangeFunc(*a, x, lo, hi, less)
	if err != nil {
		return err
	}
	*a = slices.Insert(*a, i, x)
	return nil
}

// Insort is InsortRight.
func Insort[S ~[]E, E cmp.Ordered](a *S, x E) {
	InsortRight(a, x)
}
