package sorting

import "cmp"

// Insertion sorts src with INSERTION-SORT: every element larger than the key
// is shifted one slot to the right, then the key is written once into the
// gap that opened up.
//
// Stable. Complexity: O(n²) worst case, O(n) on sorted input, O(1) memory.
func Insertion[T cmp.Ordered](src []T) {
	for i := 1; i < len(src); i++ {
		key := src[i]
		j := i - 1
		for j >= 0 && src[j] > key {
			src[j+1] = src[j]
			j--
		}
		src[j+1] = key
	}
}

// InsertionSwap is the same idea expressed with adjacent swaps: the current
// element walks left until its left neighbour is not greater.
// It performs up to three times as many writes as Insertion.
func InsertionSwap[T cmp.Ordered](src []T) {
	for cur := 1; cur < len(src); cur++ {
		for i := cur; i > 0 && src[i] < src[i-1]; i-- {
			src[i], src[i-1] = src[i-1], src[i]
		}
	}
}
