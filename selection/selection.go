package selection

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/clrs/sorting"
)

var (
	// ErrEmptyInput is returned for an empty input slice.
	ErrEmptyInput = errors.New("selection: empty input")

	// ErrRankOutOfRange is returned when the requested rank is not in [0, n).
	ErrRankOutOfRange = errors.New("selection: rank out of range")
)

// groupSize is the group width of the median-of-medians pivot.
const groupSize = 5

// Minimum returns the smallest element of src.
func Minimum[T cmp.Ordered](src []T) (T, error) {
	if len(src) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	m := src[0]
	for _, v := range src[1:] {
		if v < m {
			m = v
		}
	}

	return m, nil
}

// Maximum returns the largest element of src.
func Maximum[T cmp.Ordered](src []T) (T, error) {
	if len(src) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	m := src[0]
	for _, v := range src[1:] {
		if v > m {
			m = v
		}
	}

	return m, nil
}

// MinMax returns the minimum and the maximum of src. Elements are taken in
// pairs: the smaller one of a pair is compared with the running minimum and
// the larger one with the running maximum, which costs three comparisons per
// two elements instead of four.
func MinMax[T cmp.Ordered](src []T) (lo, hi T, err error) {
	n := len(src)
	if n == 0 {
		return lo, hi, ErrEmptyInput
	}

	// seed from the first element (odd n) or the first pair (even n)
	start := 1
	lo, hi = src[0], src[0]
	if n%2 == 0 {
		start = 2
		if src[1] < src[0] {
			lo = src[1]
		} else {
			hi = src[1]
		}
	}

	for i := start; i+1 < n; i += 2 {
		a, b := src[i], src[i+1]
		if b < a {
			a, b = b, a
		}
		if a < lo {
			lo = a
		}
		if b > hi {
			hi = b
		}
	}

	return lo, hi, nil
}

// RandomizedSelect returns the element of rank k (0-based) in expected linear
// time. The slice is partitioned around a random pivot with the Lomuto scheme
// and the search continues only on the side that contains rank k.
func RandomizedSelect[T cmp.Ordered](src []T, k int, seed int64) (T, error) {
	var zero T
	if len(src) == 0 {
		return zero, ErrEmptyInput
	}
	if k < 0 || k >= len(src) {
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrRankOutOfRange, k, len(src))
	}

	a := slices.Clone(src)
	rng := rand.New(rand.NewSource(seed))
	for {
		if len(a) == 1 {
			return a[0], nil
		}
		// random pivot into the Lomuto pivot slot
		r := rng.Intn(len(a))
		a[r], a[len(a)-1] = a[len(a)-1], a[r]

		q := sorting.PartitionLomuto(a)
		switch {
		case k == q:
			return a[q], nil
		case k < q:
			a = a[:q]
		default:
			a = a[q+1:]
			k -= q + 1
		}
	}
}

// Select returns the element of rank k (0-based) in worst-case linear time.
//
// Steps:
//  1. Split the input into groups of five and take the median of each group.
//  2. Recursively select the median x of those medians.
//  3. Partition around x; at least 3n/10 - 6 elements fall on each side.
//  4. Recurse into the side that contains rank k, or return x.
func Select[T cmp.Ordered](src []T, k int) (T, error) {
	var zero T
	if len(src) == 0 {
		return zero, ErrEmptyInput
	}
	if k < 0 || k >= len(src) {
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrRankOutOfRange, k, len(src))
	}

	return selectRank(slices.Clone(src), k), nil
}

// Median returns the lower median of src.
func Median[T cmp.Ordered](src []T) (T, error) {
	return Select(src, (len(src)-1)/2)
}

func selectRank[T cmp.Ordered](a []T, k int) T {
	for {
		if len(a) <= groupSize {
			sorting.Insertion(a)
			return a[k]
		}

		// 1. medians of the groups of five
		medians := make([]T, 0, (len(a)+groupSize-1)/groupSize)
		for i := 0; i < len(a); i += groupSize {
			g := a[i:min(i+groupSize, len(a))]
			sorting.Insertion(g)
			medians = append(medians, g[(len(g)-1)/2])
		}

		// 2. median of medians
		x := selectRank(medians, (len(medians)-1)/2)

		// 3. three-way partition around x so duplicates of x cannot stall progress
		var less, greater []T
		equal := 0
		for _, v := range a {
			switch {
			case v < x:
				less = append(less, v)
			case v > x:
				greater = append(greater, v)
			default:
				equal++
			}
		}

		// 4. keep only the side holding rank k
		switch {
		case k < len(less):
			a = less
		case k < len(less)+equal:
			return x
		default:
			k -= len(less) + equal
			a = greater
		}
	}
}
