// Package seedinit produces a starting assignment in the feasible set:
// seed each pair with a randomly drawn rank, then run greedy descent on
// cost.TotalViolations via move.ChangeAllocationByPref until no
// violations remain.
//
// Termination is not guaranteed on pathological inputs; Seed takes an
// iteration cap and returns ErrDidNotConverge if it is exhausted,
// rather than running forever.
package seedinit
