package dynprog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MatrixChainOrder returns the minimal number of scalar multiplications
// needed to compute A1·A2·…·Ak, where Ai is dims[i-1]×dims[i], together with
// an optimal parenthesization such as "((A1A2)A3)" (MATRIX-CHAIN-ORDER and
// PRINT-OPTIMAL-PARENS).
func MatrixChainOrder(dims []int) (int, string, error) {
	if len(dims) < 2 {
		return 0, "", fmt.Errorf("%w: need at least 2, got %d", ErrBadDimensions, len(dims))
	}
	for i, d := range dims {
		if d <= 0 {
			return 0, "", fmt.Errorf("%w: dims[%d]=%d", ErrBadDimensions, i, d)
		}
	}

	k := len(dims) - 1
	// m[i][j] is the cost of Ai..Aj; s[i][j] the split point (1-based).
	m := make([][]int, k+1)
	s := make([][]int, k+1)
	for i := range m {
		m[i] = make([]int, k+1)
		s[i] = make([]int, k+1)
	}

	for l := 2; l <= k; l++ {
		for i := 1; i <= k-l+1; i++ {
			j := i + l - 1
			m[i][j] = math.MaxInt
			for q := i; q < j; q++ {
				cost := m[i][q] + m[q+1][j] + dims[i-1]*dims[q]*dims[j]
				if cost < m[i][j] {
					m[i][j] = cost
					s[i][j] = q
				}
			}
		}
	}

	var sb strings.Builder
	writeParens(&sb, s, 1, k)

	return m[1][k], sb.String(), nil
}

func writeParens(sb *strings.Builder, s [][]int, i, j int) {
	if i == j {
		sb.WriteString("A")
		sb.WriteString(strconv.Itoa(i))
		return
	}
	sb.WriteByte('(')
	writeParens(sb, s, i, s[i][j])
	writeParens(sb, s, s[i][j]+1, j)
	sb.WriteByte(')')
}
