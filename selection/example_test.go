package selection_test

import (
	"fmt"

	"github.com/katalvlaran/clrs/selection"
)

func ExampleSelect() {
	scores := []int{71, 93, 55, 88, 64, 97, 80}
	third, _ := selection.Select(scores, 2)
	median, _ := selection.Median(scores)
	fmt.Println(third, median)
	// Output:
	// 71 80
}
