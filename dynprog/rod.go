package dynprog

import "fmt"

// RodCut solves the rod-cutting problem bottom-up (EXTENDED-BOTTOM-UP-CUT-ROD).
//
// prices[i] is the price of a piece of length i+1; lengths beyond
// len(prices) cannot be sold, and rod left over after the last sellable piece
// is wasted. It returns the best revenue for a rod of length n and the piece
// lengths of one optimal cutting in the order they are cut. Among equal
// revenues the shortest first piece wins, as in the textbook.
func RodCut(prices []int, n int) (int, []int, error) {
	if n < 0 {
		return 0, nil, fmt.Errorf("%w: %d", ErrBadLength, n)
	}

	// r[j] is the best revenue for length j; s[j] the first piece of it.
	r := make([]int, n+1)
	s := make([]int, n+1)
	for j := 1; j <= n; j++ {
		best := r[j-1] // leave one unit unsold when no price fits
		first := 0
		for i := 1; i <= j && i <= len(prices); i++ {
			if q := prices[i-1] + r[j-i]; q > best || first == 0 && q == best {
				best, first = q, i
			}
		}
		r[j], s[j] = best, first
	}

	var cuts []int
	for j := n; j > 0; {
		if s[j] == 0 {
			j--
			continue
		}
		cuts = append(cuts, s[j])
		j -= s[j]
	}

	return r[n], cuts, nil
}
