package anneal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/danfiner/projsa/internal/alloc"
	"github.com/danfiner/projsa/internal/anneal"
	"github.com/danfiner/projsa/internal/cost"
	"github.com/danfiner/projsa/internal/prng"
	"github.com/danfiner/projsa/internal/seedinit"
)

// recordingRecorder captures every Epoch call for assertions.
type recordingRecorder struct {
	temperatures []float64
	finalEnergy  float64
}

func (r *recordingRecorder) Epoch(epoch int, temperature, energy float64, moves, successfulMoves int) {
	r.temperatures = append(r.temperatures, temperature)
	r.finalEnergy = energy
}

func fourPairFourProjectFixture() (alloc.PreferenceMatrix, alloc.WorkloadMatrix) {
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
	return prefs, workloads
}

// SchedulerSuite covers the temperature schedule and the acceptance
// rules of the inner move loop.
type SchedulerSuite struct {
	suite.Suite
}

func (s *SchedulerSuite) TestConfig_EpochCountIncludesTerminalZero() {
	cfg := anneal.NewConfig(5.0, 0.001, 1000, 100)
	require.Equal(s.T(), 5001, cfg.Epochs)

	cfg = anneal.NewConfig(1.0, 0.5, 1, 1)
	require.Equal(s.T(), 3, cfg.Epochs) // 1.0, 0.5, 0.0
}

func (s *SchedulerSuite) TestDefaultConfig_MatchesReferenceSchedule() {
	cfg := anneal.DefaultConfig()
	require.Equal(s.T(), 5.0, cfg.T0)
	require.Equal(s.T(), 0.001, cfg.DeltaT)
	require.Equal(s.T(), 1000, cfg.MovesCapFactor)
	require.Equal(s.T(), 100, cfg.SuccessCapFactor)
	require.Equal(s.T(), 5001, cfg.Epochs)
}

func (s *SchedulerSuite) TestRun_VisitsEveryEpochAndEndsAtZeroTemperature() {
	prefs, workloads := fourPairFourProjectFixture()
	rng, err := prng.New(321)
	require.NoError(s.T(), err)

	state := alloc.NewState(4)
	require.NoError(s.T(), seedinit.Seed(state, prefs, workloads, rng, seedinit.DefaultIterationCap))

	weights, err := alloc.DefaultWeights(4)
	require.NoError(s.T(), err)

	cfg := anneal.NewConfig(0.02, 0.01, 10, 5)
	recorder := &recordingRecorder{}
	scheduler := anneal.New(state, prefs, workloads, weights, rng, cfg, anneal.WithRecorder(recorder))

	result, err := scheduler.Run(context.Background())
	require.NoError(s.T(), err)
	require.Equal(s.T(), cfg.Epochs, result.Epochs)
	require.Len(s.T(), recorder.temperatures, cfg.Epochs)
	require.Equal(s.T(), 0.0, recorder.temperatures[len(recorder.temperatures)-1])
}

func (s *SchedulerSuite) TestRun_NeverLeavesAUniquenessClash() {
	prefs, workloads := fourPairFourProjectFixture()
	rng, err := prng.New(4242)
	require.NoError(s.T(), err)

	state := alloc.NewState(4)
	require.NoError(s.T(), seedinit.Seed(state, prefs, workloads, rng, seedinit.DefaultIterationCap))

	weights, err := alloc.DefaultWeights(4)
	require.NoError(s.T(), err)

	cfg := anneal.NewConfig(0.05, 0.01, 20, 10)
	scheduler := anneal.New(state, prefs, workloads, weights, rng, cfg)

	_, err = scheduler.Run(context.Background())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, cost.ClashCount(state.Proj))
}

func (s *SchedulerSuite) TestRun_RespectsContextCancellation() {
	prefs, workloads := fourPairFourProjectFixture()
	rng, err := prng.New(7)
	require.NoError(s.T(), err)

	state := alloc.NewState(4)
	require.NoError(s.T(), seedinit.Seed(state, prefs, workloads, rng, seedinit.DefaultIterationCap))

	weights, err := alloc.DefaultWeights(4)
	require.NoError(s.T(), err)

	cfg := anneal.DefaultConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scheduler := anneal.New(state, prefs, workloads, weights, rng, cfg)
	_, err = scheduler.Run(ctx)
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerSuite))
}
