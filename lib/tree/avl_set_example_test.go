package tree_test

import (
	"fmt"
	"slices"

	"github.com/benz9527/xavl/lib/tree"
)

func ExampleNewAVLSet() {
	set := tree.NewAVLSet[int]()
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		set.Insert(key)
	}
	set.Erase(5)
	fmt.Println(slices.Collect(set.All()))
	fmt.Println(set.Len(), set.LowerBound(6).Key(), set.Find(2).IsEnd())
	// Output:
	// [1 3 4 7 8 9]
	// 6 7 true
}

func ExampleAVLIterator() {
	set := tree.NewAVLSetOf("b", "d", "a", "c")
	for it := set.End(); ; {
		it.Prev()
		if it.IsEnd() {
			break
		}
		fmt.Print(it.Key())
	}
	fmt.Println()
	// Output:
	// dcba
}
