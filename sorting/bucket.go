package sorting

import "fmt"

// Bucket sorts float64 values drawn from [0, 1) with BUCKET-SORT.
//
// The interval is divided into n equal buckets, value v goes to bucket
// floor(n·v), every bucket is sorted with Insertion and the buckets are
// concatenated in order. For uniformly distributed input the expected bucket
// size is O(1), so the expected running time is O(n).
//
// A value outside [0, 1), NaN included, yields ErrOutOfRange and src is left
// unchanged.
func Bucket(src []float64) error {
	n := len(src)
	for i, v := range src {
		if !(v >= 0 && v < 1) {
			return fmt.Errorf("%w: src[%d] = %g", ErrOutOfRange, i, v)
		}
	}
	if n < 2 {
		return nil
	}

	buckets := make([][]float64, n)
	for _, v := range src {
		b := int(float64(n) * v)
		buckets[b] = append(buckets[b], v)
	}

	i := 0
	for _, b := range buckets {
		Insertion(b)
		i += copy(src[i:], b)
	}

	return nil
}
