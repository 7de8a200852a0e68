package dynprog_test

import (
	"fmt"

	"github.com/katalvlaran/clrs/dynprog"
)

func ExampleMatrixChainOrder() {
	cost, parens, _ := dynprog.MatrixChainOrder([]int{10, 100, 5, 50})
	fmt.Println(cost, parens)
	// Output:
	// 7500 ((A1A2)A3)
}

func ExampleRodCut() {
	prices := []int{1, 5, 8, 9, 10, 17, 17, 20, 24, 30}
	rev, cuts, _ := dynprog.RodCut(prices, 7)
	fmt.Println(rev, cuts)
	// Output:
	// 18 [1 6]
}

func ExampleEditDistance() {
	fmt.Println(dynprog.EditDistance("kitten", "sitting"))
	// Output:
	// 3
}
