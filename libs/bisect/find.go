package bisect

import "cmp"

// Index returns the leftmost index of x in the sorted slice a.
func Index[S ~[]E, E cmp.Ordered](a S, x E) (int, bool) {
	i := BisectLeft(a, x)
	if i != len(a) && cmp.Compare(a[i], x) == 0 {
		return i, true
	}
	return -1, false
}

// FindLT returns the rightmost value less than x.
func FindLT[S ~[]E, E cmp.Ordered](a S, x E) (E, bool) {
	if i := BisectLeft(a, x); i != 0 {
		return a[i-1], true
	}
	var zero E
	return zero, false
}

// FindLE returns the rightmost value less than or equal to x.
func FindLE[S ~[]E, E cmp.Ordered](a S, x E) (E, bool) {
	if i := BisectRight(a, x); i != 0 {
		return a[i-1], true
	}
	var zero E
	return zero, false
}

// FindGT returns the leftmost value greater than x.
func FindGT[S ~[]E, E cmp.Ordered](a S, x E) (E, bool) {
	if i := BisectRight(a, x); i != len(a) {
		return a[i], true
	}
	var zero E
	return zero, false
}

// FindGE returns the leftmost value greater than or equal to x.
func FindGE[S ~[]E, E cmp.Ordered](a S, x E) (E, bool) {
	if i := BisectLeft(a, x); i != len(a) {
		return a[i], true
	}
	var zero E
	return zero, false
}
