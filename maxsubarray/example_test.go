package maxsubarray_test

import (
	"fmt"

	"github.com/katalvlaran/clrs/maxsubarray"
)

// ExampleKadane finds the best buy/sell window from daily price changes.
func ExampleKadane() {
	changes := []int{13, -3, -25, 20, -3, -16, -23, 18, 20, -7, 12, -5, -22, 15, -4, 7}
	r := maxsubarray.Kadane(changes)
	fmt.Println(r.Low, r.High, r.Sum, r.Slice(changes))
	// Output:
	// 7 11 43 [18 20 -7 12]
}
