package alloc

import "errors"

// Sentinel errors returned by the alloc package. Callers should compare
// with errors.Is, never by string.
var (
	// ErrBadShape indicates a matrix with zero rows/columns, or a jagged
	// (non-rectangular) row.
	ErrBadShape = errors.New("alloc: matrix has an invalid or jagged shape")

	// ErrBadRank indicates a preference-matrix cell outside {0,1,2,3,4}.
	ErrBadRank = errors.New("alloc: preference rank out of range")

	// ErrBadWeight indicates a workload-matrix cell outside {0} ∪ (0,1].
	ErrBadWeight = errors.New("alloc: workload weight out of range")

	// ErrDuplicateRank indicates a column of the preference matrix uses
	// the same rank value for two different projects.
	ErrDuplicateRank = errors.New("alloc: duplicate rank in preference column")

	// ErrNonPositiveWeights indicates one or more preference weights was
	// not strictly positive.
	ErrNonPositiveWeights = errors.New("alloc: preference weights must be positive")

	// ErrWeightsNotDecreasing indicates w1..w4 were not supplied in
	// strictly decreasing order (w1 > w2 > w3 > w4), which the energy
	// function relies on to rank preferences consistently.
	ErrWeightsNotDecreasing = errors.New("alloc: preference weights must strictly decrease")

	// ErrStateSizeMismatch indicates Proj/Pref slices of different
	// lengths were used to build a State.
	ErrStateSizeMismatch = errors.New("alloc: proj/pref length mismatch")
)
