package dynprog

import "errors"

// Sentinel errors for the dynprog package.
var (
	// ErrBadLength is returned by RodCut for a negative rod length.
	ErrBadLength = errors.New("dynprog: rod length must be non-negative")

	// ErrBadDimensions is returned by MatrixChainOrder for fewer than two
	// dimensions or a non-positive dimension.
	ErrBadDimensions = errors.New("dynprog: invalid matrix dimensions")

	// ErrEmptyInput is returned by DTW when either series is empty.
	ErrEmptyInput = errors.New("dynprog: input sequences must be non-empty")

	// ErrBadInput is returned by DTW for an invalid option value.
	ErrBadInput = errors.New("dynprog: invalid DTW option")

	// ErrPathNeedsMatrix is returned by DTW when a path is requested without
	// the full matrix.
	ErrPathNeedsMatrix = errors.New("dynprog: ReturnPath requires MemoryMode=FullMatrix")
)
