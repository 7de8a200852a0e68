// Package selection implements the order-statistics algorithms of chapter 9.
//
// The i-th order statistic of a set of n elements is its i-th smallest
// element; this package uses 0-based ranks, so rank 0 is the minimum and
// rank n-1 the maximum.
//
//   - Minimum, Maximum: n-1 comparisons each.
//   - MinMax: both at once with at most 3⌊n/2⌋ comparisons by processing
//     elements in pairs.
//   - RandomizedSelect: RANDOMIZED-SELECT, quicksort's partition applied to
//     one side only. Expected O(n), worst case O(n²).
//   - Select: the deterministic SELECT (median of medians of groups of five).
//     Worst case O(n).
//   - Median: the lower median via Select.
//
// None of the functions modify their input; the partitioning ones work on a copy.
package selection
