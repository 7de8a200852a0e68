package hashtable_test

import (
	"fmt"

	"github.com/katalvlaran/clrs/hashtable"
)

func ExampleNewChained() {
	t, _ := hashtable.NewChained[string, int](hashtable.StringHasher)
	t.Put("apple", 3)
	t.Put("pear", 5)
	t.Put("apple", 4)

	v, _ := t.Get("apple")
	_, err := t.Get("plum")
	fmt.Println(t.Len(), v, err)
	// Output:
	// 2 4 hashtable: key not found
}

func ExampleNewOpen() {
	t, _ := hashtable.NewOpen[int, string](hashtable.IntHasher[int],
		hashtable.WithProbing(hashtable.Double), hashtable.WithCapacity(4), hashtable.WithoutGrowth())
	for i := 0; i < 5; i++ {
		if err := t.Put(i, fmt.Sprint("v", i)); err != nil {
			fmt.Println(err)
		}
	}
	// Output:
	// hashtable: table is full: 4 slots
}
