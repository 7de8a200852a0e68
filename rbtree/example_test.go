package rbtree_test

import (
	"fmt"

	"github.com/katalvlaran/clrs/rbtree"
)

func ExampleTree_Validate() {
	t := rbtree.New[int, string]()
	for i := 1; i <= 7; i++ {
		t.Put(i, fmt.Sprint("v", i))
	}
	_ = t.Delete(4)

	fmt.Println(t.Keys(), t.Validate())
	// Output:
	// [1 2 3 5 6 7] <nil>
}
