package config

import "errors"

// Sentinel errors returned by Load and Validate.
var (
	// ErrMissingPath indicates PreferencePath or WorkloadPath was empty.
	ErrMissingPath = errors.New("config: CSV path must not be empty")

	// ErrBadDimensions indicates P, N, or L was not a positive integer.
	ErrBadDimensions = errors.New("config: projects/pairs/supervisors must be positive")

	// ErrBadSeed indicates Seed was outside (0, 2^31-1).
	ErrBadSeed = errors.New("config: seed must satisfy 0 < seed < 2147483647")
)
