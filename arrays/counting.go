package arrays

import "fmt"

// CountingSort returns an ascending copy of a. Negative values are supported.
// It fails with ErrRangeTooLarge when max-min+1 exceeds DefaultMaxSpan.
func CountingSort(a []int) ([]int, error) {
	return CountingSortBy(a, func(v int) int { return v }, DefaultMaxSpan)
}

// CountingSortBy returns a copy of a stably ordered by key. Elements with
// equal keys keep their input order. maxSpan limits max-min+1 of the keys
// and therefore the size of the counting array.
func CountingSortBy[T any](a []T, key func(T) int, maxSpan int) ([]T, error) {
	out := make([]T, len(a))
	if len(a) == 0 {
		return out, nil
	}

	keys := make([]int, len(a))
	lo, hi := key(a[0]), key(a[0])
	for i, v := range a {
		k := key(v)
		keys[i] = k
		lo, hi = min(lo, k), max(hi, k)
	}
	// unsigned subtraction is exact for hi >= lo
	diff := uint64(hi) - uint64(lo)
	if maxSpan <= 0 || diff >= uint64(maxSpan) {
		return nil, fmt.Errorf("%w: keys span [%d, %d], limit=%d", ErrRangeTooLarge, lo, hi, maxSpan)
	}
	span := diff + 1

	// count[k-lo+1] then prefix sums give the first output slot per key
	count := make([]int, span+1)
	for _, k := range keys {
		count[k-lo+1]++
	}
	for i := 1; i < len(count); i++ {
		count[i] += count[i-1]
	}
	for i, v := range a {
		slot := keys[i] - lo
		out[count[slot]] = v
		count[slot]++
	}

	return out, nil
}
