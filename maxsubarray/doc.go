// Package maxsubarray finds a contiguous window with the largest sum
// (the maximum-subarray problem of chapter 4).
//
// Three solutions are provided:
//
//   - BruteForce: try every window. O(n²).
//   - DivideAndConquer: the best window lies entirely in the left half,
//     entirely in the right half, or crosses the midpoint; the crossing case
//     is solved in linear time. O(n log n).
//   - Kadane: one pass keeping the best window that ends at the current
//     position. O(n).
//
// Conventions shared by all three:
//
//   - The empty window is admissible and has sum 0, so an all-negative input
//     yields an empty Result with Sum 0 rather than its largest element.
//   - Windows are half-open: Result{Low: 2, High: 5} covers src[2:5].
//   - All three agree on Sum. When several windows share the maximum sum the
//     reported window may differ between algorithms: Kadane prefers the one
//     that ends last, DivideAndConquer prefers the longest.
package maxsubarray
