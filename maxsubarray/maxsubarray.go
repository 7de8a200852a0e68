package maxsubarray

// Number is the set of element types with a meaningful signed sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Result describes the window src[Low:High] and its Sum.
type Result[T Number] struct {
	Low  int
	High int
	Sum  T
}

// Empty reports whether the window contains no elements.
func (r Result[T]) Empty() bool { return r.Low == r.High }

// Len returns the number of elements in the window.
func (r Result[T]) Len() int { return r.High - r.Low }

// Slice returns the window of src described by r.
func (r Result[T]) Slice(src []T) []T {
	if r.Empty() {
		return nil
	}

	return src[r.Low:r.High]
}

// Kadane solves the problem in a single pass.
//
// cur is the best sum of a window ending at i and starting at curLow. As soon
// as cur drops below zero no window starting at or before i can help any
// later window, so the start jumps to i+1 and cur restarts from zero.
// A tie with the best sum so far (>=) moves the best window forward.
//
// Complexity: O(n) time, O(1) memory.
func Kadane[T Number](src []T) Result[T] {
	var (
		best   Result[T]
		cur    T
		curLow int
		found  bool
	)
	for i, v := range src {
		cur += v
		if cur >= best.Sum {
			best = Result[T]{Low: curLow, High: i + 1, Sum: cur}
			found = true
		} else if cur < 0 {
			curLow = i + 1
			cur = 0
		}
	}
	if !found {
		return Result[T]{}
	}

	return best
}

// DivideAndConquer solves the problem recursively: the answer is the best of
// the left half, the right half, and the best window crossing the midpoint.
// Among results with equal sums the longest window wins; among equally long
// ones the crossing window, then the right one, is preferred.
//
// Complexity: O(n log n) time, O(log n) stack.
func DivideAndConquer[T Number](src []T) Result[T] {
	if len(src) == 0 {
		return Result[T]{}
	}

	return divide(src, 0, len(src))
}

// divide solves src[low:high] (non-empty) in absolute indices.
func divide[T Number](src []T, low, high int) Result[T] {
	if high-low == 1 {
		if src[low] >= 0 {
			return Result[T]{Low: low, High: high, Sum: src[low]}
		}
		return Result[T]{Low: low, High: low}
	}

	mid := low + (high-low)/2
	l := divide(src, low, mid)
	r := divide(src, mid, high)
	c := crossing(src, low, mid, high)

	best := l
	for _, cand := range []Result[T]{r, c} {
		if better(cand, best) {
			best = cand
		}
	}

	return best
}

// better reports whether a should replace b: larger sum, or equal sum and
// at least as long (so later candidates win full ties).
func better[T Number](a, b Result[T]) bool {
	if a.Sum != b.Sum {
		return a.Sum > b.Sum
	}

	return a.Len() >= b.Len()
}

// crossing finds the best window that touches the boundary at mid from
// either side. Each side may contribute nothing (sum 0).
func crossing[T Number](src []T, low, mid, high int) Result[T] {
	var (
		cur, leftSum, rightSum T
		left, right            = -1, -1
	)

	for i := mid - 1; i >= low; i-- {
		cur += src[i]
		if cur >= leftSum {
			leftSum = cur
			left = i
		}
	}

	cur = 0
	for j := mid; j < high; j++ {
		cur += src[j]
		if cur >= rightSum {
			rightSum = cur
			right = j
		}
	}

	if left < 0 && right < 0 {
		return Result[T]{Low: mid, High: mid}
	}

	res := Result[T]{Low: mid, High: mid, Sum: leftSum + rightSum}
	if left >= 0 {
		res.Low = left
	}
	if right >= 0 {
		res.High = right + 1
	}

	return res
}

// BruteForce checks every window. It is the reference the faster algorithms
// are tested against.
//
// Complexity: O(n²) time, O(1) memory.
func BruteForce[T Number](src []T) Result[T] {
	var best Result[T]
	for i := range src {
		var sum T
		for j := i; j < len(src); j++ {
			sum += src[j]
			if sum > best.Sum {
				best = Result[T]{Low: i, High: j + 1, Sum: sum}
			}
		}
	}

	return best
}
