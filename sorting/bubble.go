package sorting

import "cmp"

// BubbleLR sorts src with bubble sort where the largest remaining value
// travels left to right and settles at the end of the unsorted prefix.
//
// After pass i the last i elements are in their final positions.
// Complexity: O(n²) comparisons, O(1) memory.
func BubbleLR[T cmp.Ordered](src []T) {
	for end := len(src) - 1; end > 0; end-- {
		for j := 0; j < end; j++ {
			if src[j] > src[j+1] {
				src[j], src[j+1] = src[j+1], src[j]
			}
		}
	}
}

// BubbleRL sorts src with bubble sort where the smallest remaining value
// travels right to left and settles at the start of the unsorted suffix.
// This is the variant written in the textbook (problem 2-2).
//
// Complexity: O(n²) comparisons, O(1) memory.
func BubbleRL[T cmp.Ordered](src []T) {
	for i := 0; i < len(src)-1; i++ {
		for j := len(src) - 1; j > i; j-- {
			if src[j] < src[j-1] {
				src[j], src[j-1] = src[j-1], src[j]
			}
		}
	}
}
