package arrays

import (
	"cmp"
	"fmt"
)

// TernarySearch returns an index of x in the ascending slice a, or -1.
// With duplicates any matching index may be returned.
func TernarySearch[T cmp.Ordered](a []T, x T) int {
	lo, hi := 0, len(a)-1
	for lo <= hi {
		third := (hi - lo) / 3
		m1, m2 := lo+third, hi-third
		switch {
		case a[m1] == x:
			return m1
		case a[m2] == x:
			return m2
		case x < a[m1]:
			hi = m1 - 1
		case x > a[m2]:
			lo = m2 + 1
		default:
			lo, hi = m1+1, m2-1
		}
	}

	return -1
}

// TernaryMax returns the argument in [lo, hi] maximizing f, which must be
// strictly increasing then strictly decreasing over the range (either part may
// be empty). If the peak is two equal values the smaller argument is returned.
func TernaryMax(f func(int) int, lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: lo=%d hi=%d", ErrEmptyRange, lo, hi)
	}
	// width is computed unsigned so ranges wider than MaxInt cannot overflow
	for {
		width := uint64(hi) - uint64(lo)
		if width <= 2 {
			break
		}
		third := int(width / 3)
		m1, m2 := lo+third, hi-third
		f1, f2 := f(m1), f(m2)
		switch {
		case f1 < f2:
			lo = m1 + 1
		case f1 > f2:
			hi = m2 - 1
		default:
			lo, hi = m1, m2
		}
	}

	// x stops at hi before x++ could wrap past MaxInt
	best := lo
	for x := lo; x != hi; {
		x++
		if f(x) > f(best) {
			best = x
		}
	}

	return best, nil
}
