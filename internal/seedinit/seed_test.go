package seedinit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danfiner/projsa/internal/alloc"
	"github.com/danfiner/projsa/internal/cost"
	"github.com/danfiner/projsa/internal/prng"
	"github.com/danfiner/projsa/internal/seedinit"
)

func TestSeed_ReachesZeroViolations(t *testing.T) {
	prefs := alloc.PreferenceMatrix{C: [][]int{
		{1, 2, 3, 4},
		{2, 3, 4, 1},
		{3, 4, 1, 2},
		{4, 1, 2, 3},
	}}
	workloads := alloc.WorkloadMatrix{W: [][]float64{
		{0.3, 0},
		{0, 0.3},
		{0.3, 0},
		{0, 0.3},
	}}

	rng, err := prng.New(2024)
	require.NoError(t, err)

	state := alloc.NewState(4)
	err = seedinit.Seed(state, prefs, workloads, rng, seedinit.DefaultIterationCap)
	require.NoError(t, err)
	require.Equal(t, 0, cost.TotalViolations(state.Proj, workloads))
}

func TestSeed_ReturnsErrDidNotConvergeWhenCapTooLow(t *testing.T) {
	// Four pairs all rank project 0 as their 1st choice and nothing
	// else, with no other project able to absorb a pair — the repair
	// loop can never clear the clash, so a tiny iteration cap must fail
	// fast rather than loop until DefaultIterationCap.
	prefs := alloc.PreferenceMatrix{C: [][]int{
		{1, 1, 1, 1},
	}}
	workloads := alloc.WorkloadMatrix{W: [][]float64{
		{1.0},
	}}

	rng, err := prng.New(55)
	require.NoError(t, err)

	state := alloc.NewState(4)
	err = seedinit.Seed(state, prefs, workloads, rng, 10)
	require.ErrorIs(t, err, seedinit.ErrDidNotConverge)
}
