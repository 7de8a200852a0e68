package dynprog

import (
	"fmt"
	"math"
	"slices"
)

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix keeps the whole (n+1)×(m+1) matrix and supports path
//     recovery. Memory O(n·m).
//   - TwoRows keeps only the previous and current rows. Memory O(m), no path.
type MemoryMode int

const (
	// FullMatrix stores all rows.
	FullMatrix MemoryMode = iota
	// TwoRows stores two rows only.
	TwoRows
)

// Coord is one step (I in a, J in b) of a warping path.
type Coord struct {
	I, J int
}

// DTWOptions configures DTW.
//
//   - Window is the Sakoe-Chiba band: cells with |i-j| > Window are skipped.
//     -1 disables the band; values below -1 are rejected with ErrBadInput.
//   - SlopePenalty is added to every non-diagonal step. Must be >= 0.
//   - ReturnPath asks for the optimal warping path (needs FullMatrix).
//   - MemoryMode selects FullMatrix or TwoRows.
type DTWOptions struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, distance-only
// configuration using the full matrix.
func DefaultOptions() DTWOptions {
	return DTWOptions{Window: -1, MemoryMode: FullMatrix}
}

// DTW computes the dynamic time warping distance between a and b:
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +Inf
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j-1], D[i-1][j]+p, D[i][j-1]+p)
//
// and returns D[n][m]. With a window too narrow to connect (0,0) to (n,m)
// the distance is +Inf. A nil opts means DefaultOptions.
//
// When opts.ReturnPath is set the optimal path from (0,0) to (n-1,m-1) is
// returned; on ties the diagonal step is preferred.
func DTW(a, b []float64, opts *DTWOptions) (float64, []Coord, error) {
	// 1. Validate input and options.
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 {
		return 0, nil, fmt.Errorf("%w: Window=%d", ErrBadInput, o.Window)
	}
	if o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) {
		return 0, nil, fmt.Errorf("%w: SlopePenalty=%g", ErrBadInput, o.SlopePenalty)
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return 0, nil, fmt.Errorf("%w: MemoryMode=%d", ErrBadInput, int(o.MemoryMode))
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	// 2. Allocate rows: all of them, or two reused alternately.
	rows := n + 1
	if o.MemoryMode == TwoRows {
		rows = 2
	}
	dp := make([][]float64, rows)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	inf := math.Inf(1)
	row := func(i int) []float64 {
		if o.MemoryMode == TwoRows {
			return dp[i%2]
		}
		return dp[i]
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	// 3. Fill row by row.
	for i := 1; i <= n; i++ {
		cur, prev := row(i), row(i-1)
		cur[0] = inf
		for j := 1; j <= m; j++ {
			if o.Window >= 0 && abs(i-j) > o.Window {
				cur[j] = inf
				continue
			}
			best := min(prev[j-1], prev[j]+o.SlopePenalty, cur[j-1]+o.SlopePenalty)
			cur[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
	}
	dist := row(n)[m]

	if !o.ReturnPath || math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	// 4. Backtrack from (n,m), following the predecessor that produced each cell.
	path := make([]Coord, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		diag := dp[i-1][j-1]
		up := dp[i-1][j] + o.SlopePenalty
		left := dp[i][j-1] + o.SlopePenalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	slices.Reverse(path)

	return dist, path, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
