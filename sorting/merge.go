package sorting

import (
	"cmp"
	"slices"
)

// Merge sorts src with top-down merge sort.
//
// Divide: the slice is split at q = (n+1)/2.
// Conquer: both halves are sorted recursively.
// Combine: the sorted halves are merged through a temporary buffer.
//
// Stable. Complexity: O(n log n) time, O(n) memory per merge level.
func Merge[T cmp.Ordered](src []T) {
	mergeSort(src, merge[T])
}

// MergeCLRS is Merge with the book's MERGE procedure: both halves are copied
// out into L and R and then merged back into src.
func MergeCLRS[T cmp.Ordered](src []T) {
	mergeSort(src, mergeCLRS[T])
}

// mergeSort drives the recursion shared by Merge and MergeCLRS.
func mergeSort[T cmp.Ordered](src []T, combine func(src []T, mid int)) {
	switch len(src) {
	case 0, 1:
		return
	case 2:
		if src[0] > src[1] {
			src[0], src[1] = src[1], src[0]
		}
		return
	}

	q := (len(src) + 1) / 2
	mergeSort(src[:q], combine)
	mergeSort(src[q:], combine)
	combine(src, q)
}

// merge combines the sorted runs src[:mid] and src[mid:].
func merge[T cmp.Ordered](src []T, mid int) {
	tmp := make([]T, len(src))
	mergeInto(tmp, src[:mid], src[mid:])
	copy(src, tmp)
}

// mergeInto writes the merge of the sorted runs a and b into dst,
// which must have length len(a)+len(b). Ties take from a first.
func mergeInto[T cmp.Ordered](dst, a, b []T) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			dst[k] = a[i]
			i++
		} else {
			dst[k] = b[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}

// mergeCLRS follows MERGE(A, p, q, r) without sentinels.
func mergeCLRS[T cmp.Ordered](src []T, mid int) {
	l := slices.Clone(src[:mid])
	r := slices.Clone(src[mid:])

	i, j := 0, 0
	for k := range src {
		switch {
		case i == len(l):
			src[k] = r[j]
			j++
		case j == len(r):
			src[k] = l[i]
			i++
		case l[i] <= r[j]:
			src[k] = l[i]
			i++
		default:
			src[k] = r[j]
			j++
		}
	}
}
