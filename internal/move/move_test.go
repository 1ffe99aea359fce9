package move_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danfiner/projsa/internal/alloc"
	"github.com/danfiner/projsa/internal/move"
	"github.com/danfiner/projsa/internal/prng"
)

func TestChangeAllocationByPref_ProposalRevertsCleanly(t *testing.T) {
	prefs := alloc.PreferenceMatrix{C: [][]int{
		{1, 2},
		{2, 1},
	}}
	state := alloc.NewState(2)
	state.Proj[0], state.Pref[0] = 0, 1
	state.Proj[1], state.Pref[1] = 1, 1

	before := state.Clone()

	rng, err := prng.New(7)
	require.NoError(t, err)

	proposal := move.ChangeAllocationByPref(state, prefs, rng)
	proposal.Revert(state)

	require.Equal(t, before.Proj, state.Proj)
	require.Equal(t, before.Pref, state.Pref)
}

func TestChangeAllocationByPref_NeverDrawsCurrentRank(t *testing.T) {
	prefs := alloc.PreferenceMatrix{C: [][]int{
		{1, 2, 3, 4},
		{2, 3, 4, 1},
		{3, 4, 1, 2},
		{4, 1, 2, 3},
	}}
	state := alloc.NewState(4)
	state.Proj[0], state.Pref[0] = 0, 1

	rng, err := prng.New(13579)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		state.Proj[0], state.Pref[0] = 0, 1
		proposal := move.ChangeAllocationByPref(state, prefs, rng)
		if proposal.Pair == 0 {
			require.NotEqual(t, 1, state.Pref[0], "resampled rank must differ from the prior rank")
		}
	}
}

func TestNoOp_DetectsUnchangedAssignment(t *testing.T) {
	state := alloc.NewState(1)
	state.Proj[0], state.Pref[0] = 2, 3

	p := move.Proposal{Pair: 0, OldProj: 2, OldPref: 3}
	require.True(t, p.NoOp(state))

	state.Proj[0] = 5
	require.False(t, p.NoOp(state))
}
