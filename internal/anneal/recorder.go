package anneal

// Recorder observes per-epoch scheduler progress. Implementations are
// expected to be cheap (called once per epoch, not per move);
// internal/metrics.Collector provides one.
type Recorder interface {
	Epoch(epoch int, temperature, energy float64, moves, successfulMoves int)
}

// NopRecorder discards all observations; it is the Scheduler's default
// so Recorder is always safe to call without a nil check.
type NopRecorder struct{}

// Epoch implements Recorder by doing nothing.
func (NopRecorder) Epoch(int, float64, float64, int, int) {}

// Counters tracks the scheduler's lifetime move bookkeeping, summed
// across all epochs.
type Counters struct {
	Moves           int
	SuccessfulMoves int
	NullMoves       int
}
