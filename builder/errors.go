package builder

import "errors"

// Sentinel errors for the builder package. Constructors wrap them with the
// method name and offending parameters.
var (
	// ErrTooFewVertices is returned when a size parameter is too small.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability is returned for a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource is returned when a random constructor has no RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrOptionViolation is returned when an option was given an invalid value.
	ErrOptionViolation = errors.New("builder: invalid option value")

	// ErrConstructFailed is returned for a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)
