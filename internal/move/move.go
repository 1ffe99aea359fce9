package move

import (
	"github.com/danfiner/projsa/internal/alloc"
	"github.com/danfiner/projsa/internal/prng"
)

// Proposal is a single-slot undo log for one ChangeAllocationByPref
// call: the pair that was touched, and the project/rank it held before
// the move. Apply is implicit (ChangeAllocationByPref mutates the state
// directly and returns the Proposal needed to undo it); Revert restores
// the pre-move values.
type Proposal struct {
	Pair    int // index of the pair that was (possibly) reassigned
	OldProj int // project the pair held before the move
	OldPref int // rank the pair held before the move
}

// Revert restores s to the state it held before the move that produced
// p. Reverting twice, or reverting a Proposal against a state it was
// never applied to, silently overwrites s.Proj[p.Pair]/s.Pref[p.Pair]
// with the recorded values — callers are expected to revert at most
// once per proposal, immediately after inspecting the trial state.
func (p Proposal) Revert(s *alloc.State) {
	s.Proj[p.Pair] = p.OldProj
	s.Pref[p.Pair] = p.OldPref
}

// NoOp reports whether the move left the pair's project and rank
// unchanged. For a Proposal from ChangeAllocationByPref this happens
// only when the drawn rank was unranked by the pair (the degenerate
// "null move"): the drawn rank always differs from the old one, so any
// resolved move changes the rank.
func (p Proposal) NoOp(s *alloc.State) bool {
	return s.Proj[p.Pair] == p.OldProj && s.Pref[p.Pair] == p.OldPref
}

// ChangeAllocationByPref draws a pair, draws a rank different from
// that pair's current rank, and reassigns the pair to the
// first (ascending project index) project offering that rank. If no
// project offers the drawn rank, the pair's project and rank are left
// unchanged (the "null move"). The pre-move (pair, project, rank) is
// returned as a Proposal so the caller can revert it later.
func ChangeAllocationByPref(s *alloc.State, prefs alloc.PreferenceMatrix, rng *prng.Source) Proposal {
	pair := rng.NextIntn(s.Pairs())
	oldProj := s.Proj[pair]
	oldPref := s.Pref[pair]

	rank := pickDifferentRank(rng, oldPref)

	newProj, newPref := oldProj, oldPref
	for p := 0; p < prefs.Projects(); p++ {
		if prefs.C[p][pair] == rank {
			newProj, newPref = p, rank
			break
		}
	}

	s.Proj[pair] = newProj
	s.Pref[pair] = newPref

	return Proposal{Pair: pair, OldProj: oldProj, OldPref: oldPref}
}

// pickDifferentRank draws one rank from {1..4} excluding current
// (if current isn't itself in {1..4}, e.g. an unrepaired seed pair, all
// four ranks are candidates) using a single PRNG draw over the
// resulting bucket count.
func pickDifferentRank(rng *prng.Source, current int) int {
	var candidates [alloc.MaxRank]int
	count := 0
	for r := alloc.MinRank; r <= alloc.MaxRank; r++ {
		if r != current {
			candidates[count] = r
			count++
		}
	}
	return candidates[rng.NextIntn(count)]
}
