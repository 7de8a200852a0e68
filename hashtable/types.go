package hashtable

import (
	"errors"
	"fmt"
)

// Sentinel errors for the hashtable package.
var (
	// ErrNilHasher is returned by the constructors when no Hasher is given.
	ErrNilHasher = errors.New("hashtable: hasher is nil")

	// ErrKeyNotFound is returned by Get and Delete for absent keys.
	ErrKeyNotFound = errors.New("hashtable: key not found")

	// ErrTableFull is returned by Open.Put when growth is disabled and no slot is free.
	ErrTableFull = errors.New("hashtable: table is full")

	// ErrOptionViolation is returned when an Option was given an invalid value.
	ErrOptionViolation = errors.New("hashtable: invalid option supplied")
)

// Probing selects the probe sequence used by Open.
type Probing int

const (
	// Linear probes h, h+1, h+2, ...
	Linear Probing = iota
	// Quadratic probes h, h+1, h+3, h+6, ... (triangular offsets, which cover
	// every slot of a power-of-two table).
	Quadratic
	// Double probes h1, h1+h2, h1+2·h2, ... with an odd h2 derived from the
	// upper bits of the hash.
	Double
)

// String returns the probing name.
func (p Probing) String() string {
	switch p {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("Probing(%d)", int(p))
	}
}

const (
	// DefaultCapacity is the initial number of slots.
	DefaultCapacity = 8
	// DefaultChainedLoad is the maximum load factor of Chained.
	DefaultChainedLoad = 1.0
	// DefaultOpenLoad is the maximum load factor of Open.
	DefaultOpenLoad = 0.5
)

// Options configures both table kinds. Fields that do not apply to a table
// are ignored by it.
type Options struct {
	// Capacity is the initial slot count, rounded up to a power of two.
	Capacity int

	// MaxLoad is the load factor above which the table grows. Zero selects
	// the table's default.
	MaxLoad float64

	// Probing is the probe sequence of Open.
	Probing Probing

	// Grow enables doubling on overload. Only Open honours false.
	Grow bool

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns a growable table of DefaultCapacity slots with
// linear probing.
func DefaultOptions() Options {
	return Options{Capacity: DefaultCapacity, Probing: Linear, Grow: true}
}

// WithCapacity sets the initial slot count (must be positive).
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.setErr(fmt.Errorf("%w: capacity must be positive (%d)", ErrOptionViolation, n))
			return
		}
		o.Capacity = n
	}
}

// WithMaxLoad sets the growth threshold α. It must be positive; Open
// additionally requires α < 1.
func WithMaxLoad(alpha float64) Option {
	return func(o *Options) {
		if !(alpha > 0) {
			o.setErr(fmt.Errorf("%w: max load must be positive (%g)", ErrOptionViolation, alpha))
			return
		}
		o.MaxLoad = alpha
	}
}

// WithProbing selects the probe sequence of Open.
func WithProbing(p Probing) Option {
	return func(o *Options) {
		if p < Linear || p > Double {
			o.setErr(fmt.Errorf("%w: unknown probing %d", ErrOptionViolation, int(p)))
			return
		}
		o.Probing = p
	}
}

// WithoutGrowth pins an Open table to its initial capacity.
func WithoutGrowth() Option {
	return func(o *Options) { o.Grow = false }
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

func buildOptions(opts []Option, defaultLoad float64) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.MaxLoad == 0 {
		o.MaxLoad = defaultLoad
	}
	o.Capacity = nextPow2(o.Capacity)

	return o, nil
}

// nextPow2 rounds n up to a power of two (minimum 1).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
