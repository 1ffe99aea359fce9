package prng

import "errors"

// Sentinel errors returned by New.
var (
	// ErrBadSeed indicates a seed outside (0, 2^31-1).
	ErrBadSeed = errors.New("prng: seed must satisfy 0 < seed < 2147483647")

	// ErrBadStreamSize indicates a non-positive WithStreamSize value.
	ErrBadStreamSize = errors.New("prng: stream size must be positive")
)
