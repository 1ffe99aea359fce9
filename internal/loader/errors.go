package loader

import "errors"

// Sentinel errors surfaced while loading the CSV inputs.
var (
	// ErrShapeMismatch indicates the parsed CSV grid's dimensions
	// disagree with the declared P/N/L.
	ErrShapeMismatch = errors.New("loader: CSV shape does not match declared dimensions")

	// ErrBadCell indicates a cell outside its column's legal range:
	// {1,2,3,4} (blank → 0) for preferences, (0,1] (blank → 0.0) for
	// workloads.
	ErrBadCell = errors.New("loader: cell value out of range")
)
