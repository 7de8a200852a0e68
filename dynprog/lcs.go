package dynprog

import "slices"

// LCS returns the length of a longest common subsequence of a and b and
// one such subsequence (LCS-LENGTH followed by PRINT-LCS). On ties the
// reconstruction prefers dropping an element of a.
func LCS[T comparable](a, b []T) (int, []T) {
	n, m := len(a), len(b)
	c := make([][]int, n+1)
	for i := range c {
		c[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			switch {
			case a[i-1] == b[j-1]:
				c[i][j] = c[i-1][j-1] + 1
			case c[i-1][j] >= c[i][j-1]:
				c[i][j] = c[i-1][j]
			default:
				c[i][j] = c[i][j-1]
			}
		}
	}

	out := make([]T, 0, c[n][m])
	for i, j := n, m; i > 0 && j > 0; {
		switch {
		case a[i-1] == b[j-1]:
			out = append(out, a[i-1])
			i--
			j--
		case c[i-1][j] >= c[i][j-1]:
			i--
		default:
			j--
		}
	}
	slices.Reverse(out)

	return c[n][m], out
}

// EditDistance returns the Levenshtein distance between a and b: the fewest
// single-rune insertions, deletions and substitutions turning a into b.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			sub := prev[j-1]
			if ra[i-1] != rb[j-1] {
				sub++
			}
			cur[j] = min(sub, prev[j]+1, cur[j-1]+1)
		}
		prev, cur = cur, prev
	}

	return prev[len(rb)]
}
