package sorting_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/clrs/sorting"
)

func ExampleInsertion() {
	a := []int{5, 2, 4, 6, 1, 3}
	sorting.Insertion(a)
	fmt.Println(a)
	// Output:
	// [1 2 3 4 5 6]
}

func ExampleQuick() {
	a := []int{2, 8, 7, 1, 3, 5, 6, 4}
	_ = sorting.Quick(a, sorting.WithPartitioner(sorting.Hoare))
	fmt.Println(a)
	// Output:
	// [1 2 3 4 5 6 7 8]
}

// ExampleRadix sorts the seven three-digit numbers of the textbook figure.
func ExampleRadix() {
	a := []int{329, 457, 657, 839, 436, 720, 355}
	_ = sorting.Radix(a)
	fmt.Println(a)
	// Output:
	// [329 355 436 457 657 720 839]
}

func ExampleCounting() {
	a := []int{2, 5, 3, 0, 2, 3, 0, 3}
	_ = sorting.Counting(a)
	fmt.Println(a)
	// Output:
	// [0 0 2 2 3 3 3 5]
}

func ExampleParallelMerge() {
	a := []int{9, -3, 5, 0, 12, 7, -8, 1}
	if err := sorting.ParallelMerge(context.Background(), a, sorting.WithThreshold(2)); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(a)
	// Output:
	// [-8 -3 0 1 5 7 9 12]
}
