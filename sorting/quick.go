package sorting

import (
	"cmp"
	"math/rand"
)

// Quick sorts src with quicksort using the partitioner selected in opts
// (Lomuto by default).
//
// Partitioning divides the slice in place into a left area whose elements are
// not greater than those of the right area; both areas are then sorted
// recursively. The recursion tree has O(log n) expected height and every level
// costs O(n), hence O(n log n) expected time. A sorted input with a fixed pivot
// position triggers the Θ(n²) worst case, which WithRandomPivot avoids in
// expectation.
//
// Returns ErrOptionViolation for invalid options; src is untouched then.
func Quick[T cmp.Ordered](src []T, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if o.RandomPivot {
		rng = rand.New(rand.NewSource(o.Seed))
	}
	quickSort(src, o.Partitioner, rng)

	return nil
}

func quickSort[T cmp.Ordered](src []T, p Partitioner, rng *rand.Rand) {
	switch len(src) {
	case 0, 1:
		return
	case 2:
		if src[0] > src[1] {
			src[0], src[1] = src[1], src[0]
		}
		return
	}

	switch p {
	case Hoare:
		if rng != nil {
			k := rng.Intn(len(src))
			src[0], src[k] = src[k], src[0]
		}
		j := PartitionHoare(src)
		quickSort(src[:j+1], p, rng)
		quickSort(src[j+1:], p, rng)
	default:
		if rng != nil {
			k := rng.Intn(len(src))
			last := len(src) - 1
			src[last], src[k] = src[k], src[last]
		}
		q := PartitionLomuto(src)
		quickSort(src[:q], p, rng)
		quickSort(src[q+1:], p, rng)
	}
}

// PartitionLomuto partitions a non-empty src around its last element and
// returns the pivot's final index.
//
// store is the index of the first element of the "greater than pivot" area;
// whenever an element not greater than the pivot is found it is swapped to the
// end of the "small" area, which therefore grows by one.
func PartitionLomuto[T cmp.Ordered](src []T) int {
	pivotIdx := len(src) - 1
	pivot := src[pivotIdx]

	store := 0
	for k := 0; k < pivotIdx; k++ {
		if src[k] <= pivot {
			src[store], src[k] = src[k], src[store]
			store++
		}
	}
	src[store], src[pivotIdx] = src[pivotIdx], src[store]

	return store
}

// PartitionHoare partitions src (len >= 2) around its first element and
// returns j in [0, len-2] such that every element of src[:j+1] is not greater
// than any element of src[j+1:]. Unlike Lomuto the pivot value is not put in
// its final position; the caller only gets the boundary between the halves.
func PartitionHoare[T cmp.Ordered](src []T) int {
	pivot := src[0]
	i, j := -1, len(src)
	for {
		for {
			j--
			if src[j] <= pivot {
				break
			}
		}
		for {
			i++
			if src[i] >= pivot {
				break
			}
		}
		if i >= j {
			return j
		}
		src[i], src[j] = src[j], src[i]
	}
}
