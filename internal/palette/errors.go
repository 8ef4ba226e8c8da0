// Package palette selects qualitative colour palettes: sets of colours
// chosen to be maximally distinguishable under a perceptual difference
// metric, optionally as perceived with a colour vision deficiency,
// against a fixed background, or extending an existing palette.
package palette

import "errors"

var (
	// ErrInvalidParameter indicates an out-of-range numeric input,
	// such as a target count below 1.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrMissingInput indicates that no candidate input mode was set.
	ErrMissingInput = errors.New("no input mode set")

	// ErrConflictingInput indicates more than one candidate input mode.
	ErrConflictingInput = errors.New("conflicting input modes")

	// ErrInvalidConfiguration indicates an unknown metric, deficiency,
	// or palette name.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInsufficientCandidates indicates the target count exceeds the
	// candidate count after budget reduction.
	ErrInsufficientCandidates = errors.New("not enough candidates")

	// ErrMemoryBudgetExceeded indicates a ceiling too small to hold
	// even a single candidate's distances.
	ErrMemoryBudgetExceeded = errors.New("memory budget exceeded")
)
