package sorting_test

import "slices"

// sortCase pairs an input with its expected ascending order.
type sortCase struct {
	in   []int
	want []int
}

// sortVectors returns fresh copies of the shared table, so every algorithm
// gets its own slices to mutate.
func sortVectors() []sortCase {
	raw := []sortCase{
		{[]int{9, 2, 3, 4, 1, 6, 8, 19, 20, 34}, []int{1, 2, 3, 4, 6, 8, 9, 19, 20, 34}},
		{[]int{10, 80, 30, 70, 40, 50, 90}, []int{10, 30, 40, 50, 70, 80, 90}},
		{[]int{2, 3, 4, 5, 10, 1, 11}, []int{1, 2, 3, 4, 5, 10, 11}},
		{[]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{[]int{1, 5, 3, 4}, []int{1, 3, 4, 5}},
		{[]int{1, 2, 3, 0, 5}, []int{0, 1, 2, 3, 5}},
		{[]int{1, 2, 3}, []int{1, 2, 3}},
		{[]int{3, 1, 2}, []int{1, 2, 3}},
		{[]int{2, 1, 3}, []int{1, 2, 3}},
		{[]int{6, 1, 7, 9, 3, 8, 2, 5, 4, 0}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{[]int{3, 2}, []int{2, 3}},
		{[]int{8, 3, 7, 9, 6, 1, 9, 10}, []int{1, 3, 6, 7, 8, 9, 9, 10}},
		{[]int{8, 2, 78, 892, 11, 0, 34}, []int{0, 2, 8, 11, 34, 78, 892}},
		{
			[]int{9, 3, 83, 9, 2, 0, 1, 65, 2, 822, 9, 11, 22, 3, 3, 3, 47},
			[]int{0, 1, 2, 2, 3, 3, 3, 3, 9, 9, 9, 11, 22, 47, 65, 83, 822},
		},
		{[]int{-6, 9, 0, 1, 17, 91, 0, 178}, []int{-6, 0, 0, 1, 9, 17, 91, 178}},
		{[]int{-3, -2, -1, -9, -5, -1, -19, -33}, []int{-33, -19, -9, -5, -3, -2, -1, -1}},
		{[]int{-5, -6, -7, 0, 0, 0, 0, -8, 1, 2, 3}, []int{-8, -7, -6, -5, 0, 0, 0, 0, 1, 2, 3}},
		{[]int{2, 2, 2, 2, 2}, []int{2, 2, 2, 2, 2}},
		{[]int{}, []int{}},
		{[]int{42}, []int{42}},
	}

	out := make([]sortCase, len(raw))
	for i, c := range raw {
		out[i] = sortCase{in: slices.Clone(c.in), want: slices.Clone(c.want)}
	}

	return out
}
