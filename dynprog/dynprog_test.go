package dynprog_test

import (
	"testing"

	"github.com/katalvlaran/clrs/dynprog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textbookPrices is the price table of the rod-cutting example.
var textbookPrices = []int{1, 5, 8, 9, 10, 17, 17, 20, 24, 30}

func TestRodCut_Textbook(t *testing.T) {
	want := []int{0, 1, 5, 8, 10, 13, 17, 18, 22, 25, 30}
	for n, rev := range want {
		got, cuts, err := dynprog.RodCut(textbookPrices, n)
		require.NoError(t, err)
		assert.Equal(t, rev, got, "n=%d", n)

		sum, value := 0, 0
		for _, c := range cuts {
			sum += c
			value += textbookPrices[c-1]
		}
		assert.Equal(t, n, sum, "pieces must add up to n=%d", n)
		assert.Equal(t, rev, value, "pieces must earn the revenue for n=%d", n)
	}

	_, cuts, _ := dynprog.RodCut(textbookPrices, 7)
	assert.Equal(t, []int{1, 6}, cuts)
	_, cuts, _ = dynprog.RodCut(textbookPrices, 4)
	assert.Equal(t, []int{2, 2}, cuts)
}

func TestRodCut_ShortPriceTable(t *testing.T) {
	// Only lengths 1 and 2 sell; the best for 5 is 2+2+1.
	rev, cuts, err := dynprog.RodCut([]int{1, 5}, 5)
	require.NoError(t, err)
	assert.Equal(t, 11, rev)
	assert.ElementsMatch(t, []int{1, 2, 2}, cuts)

	rev, cuts, err = dynprog.RodCut(nil, 3)
	require.NoError(t, err)
	assert.Zero(t, rev)
	assert.Empty(t, cuts)

	_, _, err = dynprog.RodCut(textbookPrices, -1)
	assert.ErrorIs(t, err, dynprog.ErrBadLength)
}

func TestMatrixChainOrder(t *testing.T) {
	cost, parens, err := dynprog.MatrixChainOrder([]int{30, 35, 15, 5, 10, 20, 25})
	require.NoError(t, err)
	assert.Equal(t, 15125, cost)
	assert.Equal(t, "((A1(A2A3))((A4A5)A6))", parens)

	cost, parens, err = dynprog.MatrixChainOrder([]int{10, 100, 5, 50})
	require.NoError(t, err)
	assert.Equal(t, 7500, cost)
	assert.Equal(t, "((A1A2)A3)", parens)

	cost, parens, err = dynprog.MatrixChainOrder([]int{4, 7})
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Equal(t, "A1", parens)

	_, _, err = dynprog.MatrixChainOrder([]int{4})
	assert.ErrorIs(t, err, dynprog.ErrBadDimensions)
	_, _, err = dynprog.MatrixChainOrder([]int{4, 0, 3})
	assert.ErrorIs(t, err, dynprog.ErrBadDimensions)
}

func TestLCS(t *testing.T) {
	n, seq := dynprog.LCS([]rune("ABCBDAB"), []rune("BDCABA"))
	assert.Equal(t, 4, n)
	assert.Len(t, seq, 4)
	assert.True(t, isSubsequence(seq, []rune("ABCBDAB")))
	assert.True(t, isSubsequence(seq, []rune("BDCABA")))

	n, ints := dynprog.LCS([]int{1, 2, 3}, []int{4, 5})
	assert.Zero(t, n)
	assert.Empty(t, ints)

	n, _ = dynprog.LCS([]string{}, []string{"x"})
	assert.Zero(t, n)
}

func isSubsequence[T comparable](sub, s []T) bool {
	i := 0
	for _, v := range s {
		if i < len(sub) && sub[i] == v {
			i++
		}
	}
	return i == len(sub)
}

func TestEditDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"intention", "execution", 5},
		{"héllo", "hello", 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, dynprog.EditDistance(c.a, c.b), "%q→%q", c.a, c.b)
		assert.Equal(t, c.want, dynprog.EditDistance(c.b, c.a), "%q→%q", c.b, c.a)
	}
}
