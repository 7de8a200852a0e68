package maxsubarray_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/clrs/maxsubarray"
	"github.com/stretchr/testify/assert"
)

// sumOf adds up a window so tests can check that Sum matches the reported bounds.
func sumOf(src []int, r maxsubarray.Result[int]) int {
	s := 0
	for _, v := range r.Slice(src) {
		s += v
	}

	return s
}

func TestMaxSubarray_Table(t *testing.T) {
	cases := []struct {
		in   []int
		want int
	}{
		{
			[]int{
				22, -27, 38, -34, 49, 40, 13, -44, -13, 28, 46, 7, -26, 42, 29, 0, -6, 35, 23, -37, 10, 12, -2, 18, -12, -49, -10, 37, -5, 17, 6, -11, -22,
				-17, -50, -40, 44, 14, -41, 19, -15, 45, -23, 48, -1, -39, -46, 15, 3, -32, -29, -48, -19, 27, -33, -8, 11, 21, -43, 24, 5, 34, -36, -9, 16,
				-31, -7, -24, -47, -14, -16, -18, 39, -30, 33, -45, -38, 41, -3, 4, -25, 20, -35, 32, 26, 47, 2, -4, 8, 9, 31, -28, 36, 1, -21, 30, 43, 25,
				-20, -42,
			},
			239,
		},
		{[]int{-3, -4, -5, -6, -7}, 0},
		{[]int{0, 0, 1, 2}, 3},
		{[]int{1, 2, 3, 4}, 10},
		{make([]int, 10), 0},
		{[]int{0, 0, 0, -1, 0, 0}, 0},
		{[]int{100, 0, 0, 0, 0, 0, 0, 0}, 100},
		{[]int{-2, -3, -100, 0}, 0},
		{[]int{1, 2, 3, -100, 6}, 6},
		{[]int{0, -1}, 0},
		{[]int{-1, 0}, 0},
		{[]int{1, 2, 3, -2, 5}, 9},
		{[]int{10, -2, -3}, 10},
		// textbook figure 4.3: days 8..11, sum 43
		{[]int{13, -3, -25, 20, -3, -16, -23, 18, 20, -7, 12, -5, -22, 15, -4, 7}, 43},
		{nil, 0},
	}

	for i, c := range cases {
		k := maxsubarray.Kadane(c.in)
		d := maxsubarray.DivideAndConquer(c.in)
		b := maxsubarray.BruteForce(c.in)

		assert.Equal(t, c.want, k.Sum, "case %d: Kadane", i)
		assert.Equal(t, c.want, d.Sum, "case %d: DivideAndConquer", i)
		assert.Equal(t, c.want, b.Sum, "case %d: BruteForce", i)

		assert.Equal(t, k.Sum, sumOf(c.in, k), "case %d: Kadane window", i)
		assert.Equal(t, d.Sum, sumOf(c.in, d), "case %d: D&C window", i)
		assert.Equal(t, b.Sum, sumOf(c.in, b), "case %d: brute window", i)
	}
}

func TestMaxSubarray_Windows(t *testing.T) {
	in := []int{13, -3, -25, 20, -3, -16, -23, 18, 20, -7, 12, -5, -22, 15, -4, 7}
	want := maxsubarray.Result[int]{Low: 7, High: 11, Sum: 43}

	assert.Equal(t, want, maxsubarray.Kadane(in))
	assert.Equal(t, want, maxsubarray.DivideAndConquer(in))
	assert.Equal(t, want, maxsubarray.BruteForce(in))
	assert.Equal(t, []int{18, 20, -7, 12}, want.Slice(in))
}

func TestMaxSubarray_AllNegative(t *testing.T) {
	in := []int{-3, -4, -5}
	for _, r := range []maxsubarray.Result[int]{
		maxsubarray.Kadane(in),
		maxsubarray.DivideAndConquer(in),
		maxsubarray.BruteForce(in),
	} {
		assert.True(t, r.Empty())
		assert.Zero(t, r.Sum)
		assert.Nil(t, r.Slice(in))
	}
}

// TestMaxSubarray_LongestOnTies shows the divide-and-conquer preference for longer windows.
func TestMaxSubarray_LongestOnTies(t *testing.T) {
	in := []int{0, 0, 1, 2}
	d := maxsubarray.DivideAndConquer(in)
	assert.Equal(t, 3, d.Sum)
	assert.Equal(t, 4, d.Len())
}

func TestMaxSubarray_Random(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for round := 0; round < 200; round++ {
		in := make([]int, r.Intn(40))
		for i := range in {
			in[i] = r.Intn(41) - 20
		}
		want := maxsubarray.BruteForce(in).Sum
		assert.Equal(t, want, maxsubarray.Kadane(in).Sum, "round %d %v", round, in)
		assert.Equal(t, want, maxsubarray.DivideAndConquer(in).Sum, "round %d %v", round, in)
	}
}

func TestMaxSubarray_Floats(t *testing.T) {
	in := []float64{-1.5, 2.25, -0.5, 3.0, -10}
	assert.InDelta(t, 4.75, maxsubarray.Kadane(in).Sum, 1e-12)
	assert.InDelta(t, 4.75, maxsubarray.DivideAndConquer(in).Sum, 1e-12)
}
