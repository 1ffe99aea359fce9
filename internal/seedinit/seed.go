package seedinit

import (
	"github.com/danfiner/projsa/internal/alloc"
	"github.com/danfiner/projsa/internal/cost"
	"github.com/danfiner/projsa/internal/move"
	"github.com/danfiner/projsa/internal/prng"
)

// DefaultIterationCap bounds the greedy repair loop when the caller
// does not have a better estimate. It is generous relative to the
// problem sizes this solver targets; non-termination is a real risk on
// pathological inputs, hence the cap at all.
const DefaultIterationCap = 1_000_000

// Seed fills s with an initial, feasible (zero-violation) assignment:
//  1. For each pair, draw a rank uniformly from {1..4} and assign the
//     first project offering that rank (leaving the pair at the zero
//     value if none does — an infeasible seed the repair loop below is
//     expected to fix).
//  2. Compute total violations.
//  3. While violations remain, propose a move; accept it only if it
//     does not increase the violation count, else revert.
//
// Returns ErrDidNotConverge if iterCap proposals are exhausted before
// violations reach zero.
func Seed(s *alloc.State, prefs alloc.PreferenceMatrix, workloads alloc.WorkloadMatrix, rng *prng.Source, iterCap int) error {
	for n := 0; n < s.Pairs(); n++ {
		r := rng.NextIntn(alloc.MaxRank) + 1
		for p := 0; p < prefs.Projects(); p++ {
			if prefs.C[p][n] == r {
				s.Proj[n] = p
				s.Pref[n] = r
				break
			}
		}
	}

	violations := cost.TotalViolations(s.Proj, workloads)
	for iter := 0; violations > 0; iter++ {
		if iter >= iterCap {
			return ErrDidNotConverge
		}
		proposal := move.ChangeAllocationByPref(s, prefs, rng)
		trial := cost.TotalViolations(s.Proj, workloads)
		if trial > violations {
			proposal.Revert(s)
			continue
		}
		violations = trial
	}
	return nil
}
