package anneal

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/danfiner/projsa/internal/alloc"
	"github.com/danfiner/projsa/internal/cost"
	"github.com/danfiner/projsa/internal/move"
	"github.com/danfiner/projsa/internal/prng"
)

// Result summarizes a completed annealing run.
type Result struct {
	FinalEnergy float64
	Epochs      int
	Counters    Counters
}

// Scheduler owns the matrices, assignment state, counters, and PRNG for
// one annealing run. It mutates State in place via move.
// ChangeAllocationByPref and cost queries; it holds no other
// package-level state.
type Scheduler struct {
	state     *alloc.State
	prefs     alloc.PreferenceMatrix
	workloads alloc.WorkloadMatrix
	weights   alloc.Weights
	rng       *prng.Source
	cfg       Config

	recorder Recorder
	log      logrus.FieldLogger
}

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithRecorder attaches a per-epoch observer (metrics, test harness).
func WithRecorder(r Recorder) Option {
	return func(s *Scheduler) { s.recorder = r }
}

// WithLogger attaches a structured logger; per-epoch summaries are
// logged at Debug level, the final result at Info level.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Scheduler) { s.log = log }
}

// New builds a Scheduler over an already-feasible state (see
// internal/seedinit). state, prefs, and workloads are not copied; the
// caller must not mutate them concurrently with Run.
func New(state *alloc.State, prefs alloc.PreferenceMatrix, workloads alloc.WorkloadMatrix, weights alloc.Weights, rng *prng.Source, cfg Config, opts ...Option) *Scheduler {
	s := &Scheduler{
		state:     state,
		prefs:     prefs,
		workloads: workloads,
		weights:   weights,
		rng:       rng,
		cfg:       cfg,
		recorder:  NopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the outer temperature loop to completion, or until ctx is
// cancelled. On cancellation the assignment state is left exactly as
// it stood after the last fully-decided move (no partial move is ever
// left applied-but-undecided), and ctx.Err() is returned.
func (s *Scheduler) Run(ctx context.Context) (Result, error) {
	n := s.state.Pairs()
	movesCap := s.cfg.MovesCapFactor * n
	successCap := s.cfg.SuccessCapFactor * n

	var totals Counters
	for epoch := 0; epoch < s.cfg.Epochs; epoch++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		temperature, atZero := s.cfg.temperatureAt(epoch)
		moves, successes := s.runEpoch(temperature, atZero, movesCap, successCap, &totals)

		energy := cost.Energy(s.state.Pref, s.weights)
		s.recorder.Epoch(epoch, temperature, energy, moves, successes)
		if s.log != nil {
			s.log.WithFields(logrus.Fields{
				"epoch":           epoch,
				"temp":            temperature,
				"moves":           moves,
				"successfulMoves": successes,
				"energy":          energy,
			}).Debug("anneal: epoch complete")
		}
	}

	result := Result{
		FinalEnergy: cost.Energy(s.state.Pref, s.weights),
		Epochs:      s.cfg.Epochs,
		Counters:    totals,
	}
	if s.log != nil {
		s.log.WithFields(logrus.Fields{
			"finalEnergy":     result.FinalEnergy,
			"moves":           totals.Moves,
			"successfulMoves": totals.SuccessfulMoves,
			"nullMoves":       totals.NullMoves,
		}).Info("anneal: run complete")
	}
	return result, nil
}

// runEpoch runs one equilibration epoch until either movesCap moves or
// successCap successful moves have occurred,
// accumulating into totals and returning this epoch's own counts.
func (s *Scheduler) runEpoch(temperature float64, atZero bool, movesCap, successCap int, totals *Counters) (moves, successes int) {
	for moves < movesCap && successes < successCap {
		moves++
		totals.Moves++

		currentEnergy := cost.Energy(s.state.Pref, s.weights)
		proposal := move.ChangeAllocationByPref(s.state, s.prefs, s.rng)
		trialEnergy := cost.Energy(s.state.Pref, s.weights)
		deltaEnergy := trialEnergy - currentEnergy

		// u is drawn unconditionally, on every move, regardless of which
		// predicate ultimately decides the outcome: this keeps the PRNG
		// draw sequence identical across control-flow paths.
		u := s.rng.NextUniform()
		newProject := s.state.Proj[proposal.Pair]
		workloadClashes := cost.WorkloadClashCount(s.workloads, s.state.Proj, newProject)
		uniquenessClashes := cost.ClashCount(s.state.Proj)

		switch {
		case uniquenessClashes > 0:
			proposal.Revert(s.state)
		case !atZero && u > acceptanceRatio(deltaEnergy, temperature):
			proposal.Revert(s.state)
		case atZero && trialEnergy > currentEnergy:
			proposal.Revert(s.state)
		case workloadClashes > 0:
			proposal.Revert(s.state)
		case trialEnergy == currentEnergy:
			// Degenerate case (an unranked null move, or a distinct
			// project at equal cost): not counted as successful, but not
			// reverted either — the state already reflects it.
			totals.NullMoves++
		default:
			successes++
			totals.SuccessfulMoves++
		}
	}
	return moves, successes
}

// acceptanceRatio computes the Metropolis acceptance probability
// exp(-deltaEnergy/temperature). math.Exp saturates to 0 or +Inf at
// the extremes rather than producing NaN when deltaEnergy/temperature
// overflows.
func acceptanceRatio(deltaEnergy, temperature float64) float64 {
	return math.Exp(-deltaEnergy / temperature)
}
