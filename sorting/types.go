package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for the sorting package.
var (
	// ErrOptionViolation is returned when an Option was given an invalid value.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")

	// ErrBadBase is returned when the radix base is smaller than 2.
	ErrBadBase = errors.New("sorting: radix base must be at least 2")

	// ErrRangeTooLarge is returned when the value range of a counting sort
	// exceeds Options.MaxRange.
	ErrRangeTooLarge = errors.New("sorting: value range too large for counting sort")

	// ErrKeyOutOfRange is returned by CountingBy for a key outside [0, k).
	ErrKeyOutOfRange = errors.New("sorting: key out of range")

	// ErrOutOfRange is returned by Bucket for a value outside [0, 1).
	ErrOutOfRange = errors.New("sorting: bucket sort value outside [0, 1)")

	// ErrUnknownAlgorithm is returned by IntSorter for an unregistered name.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)

// Integer lists the integer types accepted by Counting and Radix.
// Values must fit in an int64.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// Partitioner selects the partitioning procedure used by Quick.
type Partitioner int

const (
	// Lomuto partitions around the last element. The pivot ends up at the
	// returned index q, everything in [:q] is <= pivot, everything in [q+1:] is > pivot.
	Lomuto Partitioner = iota

	// Hoare partitions around the first element with two indices moving towards
	// each other. It returns j such that every element of [:j+1] is <= every
	// element of [j+1:]; the pivot itself may end up on either side.
	Hoare
)

// String returns the partitioner name.
func (p Partitioner) String() string {
	switch p {
	case Lomuto:
		return "lomuto"
	case Hoare:
		return "hoare"
	default:
		return fmt.Sprintf("partitioner(%d)", int(p))
	}
}

// Default option values.
const (
	DefaultMaxRange  = 1 << 20
	DefaultBase      = 10
	DefaultThreshold = 2048
)

// Options holds the tunables shared by the sorting functions. Each function
// reads only the fields that concern it.
type Options struct {
	// Partitioner used by Quick. Default Lomuto.
	Partitioner Partitioner

	// RandomPivot swaps a random element into the pivot slot before each
	// partition. Seed makes the sequence reproducible.
	RandomPivot bool
	Seed        int64

	// MaxRange caps max-min+1 for Counting. Default DefaultMaxRange.
	MaxRange int

	// Base is the digit base for Radix. Default DefaultBase.
	Base int

	// Threshold is the slice length at or below which ParallelMerge stops
	// spawning and sorts serially. Default DefaultThreshold.
	Threshold int

	// MaxGoroutines bounds the goroutines ParallelMerge keeps busy.
	// Default runtime.GOMAXPROCS(0).
	MaxGoroutines int

	// err records the first invalid option.
	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions() Options {
	return Options{
		Partitioner:   Lomuto,
		MaxRange:      DefaultMaxRange,
		Base:          DefaultBase,
		Threshold:     DefaultThreshold,
		MaxGoroutines: runtime.GOMAXPROCS(0),
	}
}

// WithPartitioner selects the Quick partitioning scheme.
func WithPartitioner(p Partitioner) Option {
	return func(o *Options) {
		if p != Lomuto && p != Hoare {
			o.setErr(fmt.Errorf("%w: unknown partitioner %d", ErrOptionViolation, int(p)))
			return
		}
		o.Partitioner = p
	}
}

// WithRandomPivot enables randomized pivot selection seeded with seed.
func WithRandomPivot(seed int64) Option {
	return func(o *Options) {
		o.RandomPivot = true
		o.Seed = seed
	}
}

// WithMaxRange sets the largest value range Counting accepts.
func WithMaxRange(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.setErr(fmt.Errorf("%w: MaxRange must be positive (%d)", ErrOptionViolation, n))
			return
		}
		o.MaxRange = n
	}
}

// WithBase sets the Radix digit base.
func WithBase(b int) Option {
	return func(o *Options) {
		if b < 2 {
			o.setErr(fmt.Errorf("%w: got %d", ErrBadBase, b))
			return
		}
		o.Base = b
	}
}

// WithThreshold sets the ParallelMerge serial cutoff.
func WithThreshold(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.setErr(fmt.Errorf("%w: Threshold must be at least 1 (%d)", ErrOptionViolation, n))
			return
		}
		o.Threshold = n
	}
}

// WithMaxGoroutines bounds ParallelMerge concurrency. Zero keeps the default.
func WithMaxGoroutines(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.setErr(fmt.Errorf("%w: MaxGoroutines cannot be negative (%d)", ErrOptionViolation, n))
		case n > 0:
			o.MaxGoroutines = n
		}
	}
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// buildOptions applies opts over the defaults and returns the first violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// IsSorted reports whether src is in non-decreasing order.
func IsSorted[T cmp.Ordered](src []T) bool {
	for i := 1; i < len(src); i++ {
		if src[i] < src[i-1] {
			return false
		}
	}

	return true
}
