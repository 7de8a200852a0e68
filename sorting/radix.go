package sorting

import (
	"slices"
)

// Radix sorts integers with least-significant-digit RADIX-SORT: one stable
// CountingBy pass per digit in Options.Base (10 by default), starting from the
// lowest digit. Stability of each pass is what makes the final order correct.
//
// Negative numbers have no digits in the usual sense, so the input is split
// into negatives and non-negatives. Both parts are sorted by magnitude; the
// negative part is then reversed (a larger magnitude means a smaller value)
// and placed in front.
//
// Complexity: O(d·(n + b)) for d digits in base b. Memory: O(n + b).
func Radix[T Integer](src []T, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	if len(src) < 2 {
		return nil
	}

	var neg, pos []uint64
	for _, v := range src {
		if v < 0 {
			neg = append(neg, uint64(-int64(v)))
		} else {
			pos = append(pos, uint64(v))
		}
	}

	base := uint64(o.Base)
	if err = radixMagnitudes(neg, base); err != nil {
		return err
	}
	if err = radixMagnitudes(pos, base); err != nil {
		return err
	}

	// largest magnitude first for the negatives
	slices.Reverse(neg)
	i := 0
	for _, m := range neg {
		src[i] = T(-int64(m))
		i++
	}
	for _, m := range pos {
		src[i] = T(m)
		i++
	}

	return nil
}

// radixMagnitudes sorts non-negative keys digit by digit.
func radixMagnitudes(keys []uint64, base uint64) error {
	if len(keys) < 2 {
		return nil
	}

	maxKey := slices.Max(keys)
	for exp := uint64(1); maxKey/exp > 0; exp *= base {
		digit := func(v uint64) int { return int((v / exp) % base) }
		if err := CountingBy(keys, digit, int(base)); err != nil {
			return err
		}
		// exp*base would overflow before the loop condition can fail
		if exp > maxKey/base {
			break
		}
	}

	return nil
}
