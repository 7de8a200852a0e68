package sorting

import (
	"fmt"
	"slices"
)

// Counting sorts integers with COUNTING-SORT. No two elements are ever
// compared: for each value x the algorithm counts how many elements are not
// greater than x and writes x directly into that position of the output.
//
// Negative values are supported by shifting every key by the minimum, so the
// algorithm works on the range [min, max]. With k = max-min+1 the running time
// is O(n + k), which is linear whenever k = O(n). A range wider than
// Options.MaxRange is rejected with ErrRangeTooLarge before anything is
// allocated or moved.
//
// Stable. Memory: O(n + k).
func Counting[T Integer](src []T, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	if len(src) < 2 {
		return nil
	}

	// max-min computed modulo 2^64 is exact for every integer type, even when
	// the range does not fit in int64.
	lo, hi := slices.Min(src), slices.Max(src)
	dist := uint64(hi) - uint64(lo)
	if dist >= uint64(o.MaxRange) {
		return fmt.Errorf("%w: max-min %d, limit %d", ErrRangeTooLarge, dist, o.MaxRange)
	}

	return CountingBy(src, func(v T) int { return int(uint64(v) - uint64(lo)) }, int(dist)+1)
}

// CountingBy stably sorts src by key(v), where every key lies in [0, k).
// It is the building block of Radix, which calls it once per digit.
//
// Steps:
//  1. count[c] = number of elements with key c.
//  2. Prefix sums: count[c] = number of elements with key <= c.
//  3. Walk src from right to left, placing each element at count[key]-1 and
//     decrementing; walking backwards keeps equal keys in input order.
//
// If any key is out of range, ErrKeyOutOfRange is returned and src is unchanged.
func CountingBy[T any](src []T, key func(T) int, k int) error {
	if k <= 0 {
		return fmt.Errorf("%w: k must be positive (%d)", ErrKeyOutOfRange, k)
	}
	if len(src) < 2 {
		return nil
	}

	// 1. count occurrences, validating every key first
	keys := make([]int, len(src))
	count := make([]int, k)
	for i, v := range src {
		c := key(v)
		if c < 0 || c >= k {
			return fmt.Errorf("%w: key %d not in [0, %d)", ErrKeyOutOfRange, c, k)
		}
		keys[i] = c
		count[c]++
	}

	// 2. count[c] now holds the number of keys <= c
	for c := 1; c < k; c++ {
		count[c] += count[c-1]
	}

	// 3. place from the right for stability
	out := make([]T, len(src))
	for i := len(src) - 1; i >= 0; i-- {
		c := keys[i]
		count[c]--
		out[count[c]] = src[i]
	}
	copy(src, out)

	return nil
}
