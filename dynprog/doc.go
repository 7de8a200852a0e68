// Package dynprog collects dynamic-programming algorithms (chapter 15 and
// friends).
//
// What:
//
//   - RodCut: bottom-up CUT-ROD with the list of piece lengths.
//   - MatrixChainOrder: minimal scalar multiplications for a matrix chain
//     and the optimal parenthesization, e.g. "((A1A2)A3)".
//   - LCS: length and one longest common subsequence of two sequences.
//   - EditDistance: Levenshtein distance between two strings, by rune.
//   - DTW: dynamic time warping distance between two numeric series, with an
//     optional Sakoe-Chiba band, a slope penalty for non-diagonal steps and an
//     optional warping path.
//
// Every algorithm fills a table of optimal sub-solutions in an order where
// each cell depends only on cells already computed, then (optionally) walks
// the table backwards to reconstruct one optimal solution.
//
// Complexity:
//
//   - RodCut: O(n·len(prices)) time, O(n) memory.
//   - MatrixChainOrder: O(k³) time, O(k²) memory for k matrices.
//   - LCS, EditDistance: O(n·m) time and memory.
//   - DTW: O(n·m) time; O(n·m) memory with FullMatrix, O(m) with TwoRows.
package dynprog
