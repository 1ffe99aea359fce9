package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records one run's progress as Prometheus gauges and
// counters. It owns a private registry (rather than the default global
// one) so that more than one Collector can exist in a process, e.g. in
// tests that run the scheduler repeatedly.
type Collector struct {
	registry *prometheus.Registry

	temperature  prometheus.Gauge
	energy       prometheus.Gauge
	epoch        prometheus.Gauge
	movesTotal   prometheus.Counter
	successTotal prometheus.Counter
	nullTotal    prometheus.Counter
	violations   prometheus.Gauge
	runDuration  prometheus.Histogram
}

// NewCollector builds a Collector and registers its metrics under the
// "projsa" namespace, following the Namespace/Subsystem/Name layout
// tutu-network/tutu's observability package uses for its scheduler
// metrics.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,

		temperature: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "projsa",
			Subsystem: "anneal",
			Name:      "temperature",
			Help:      "Current annealing temperature for the active epoch.",
		}),
		energy: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "projsa",
			Subsystem: "anneal",
			Name:      "energy",
			Help:      "Current allocation energy at the end of the active epoch.",
		}),
		epoch: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "projsa",
			Subsystem: "anneal",
			Name:      "epoch",
			Help:      "Index of the most recently completed epoch.",
		}),
		movesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "projsa",
			Subsystem: "anneal",
			Name:      "moves_total",
			Help:      "Total candidate moves proposed across all epochs.",
		}),
		successTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "projsa",
			Subsystem: "anneal",
			Name:      "successful_moves_total",
			Help:      "Total moves accepted with a change in energy.",
		}),
		nullTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "projsa",
			Subsystem: "anneal",
			Name:      "null_moves_total",
			Help:      "Total moves not counted as successful: rejected moves plus accepted moves with no change in energy.",
		}),
		violations: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "projsa",
			Subsystem: "anneal",
			Name:      "violations",
			Help:      "Uniqueness and workload clashes observed in the current state.",
		}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "projsa",
			Subsystem: "anneal",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of a complete annealing run.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Epoch implements anneal.Recorder. moves and successfulMoves are
// per-epoch counts, added to the running counters; the gauges are set
// to the epoch's final values.
func (c *Collector) Epoch(epoch int, temperature, energy float64, moves, successfulMoves int) {
	c.epoch.Set(float64(epoch))
	c.temperature.Set(temperature)
	c.energy.Set(energy)
	c.movesTotal.Add(float64(moves))
	c.successTotal.Add(float64(successfulMoves))
	if null := moves - successfulMoves; null > 0 {
		c.nullTotal.Add(float64(null))
	}
}

// ObserveViolations records the uniqueness/workload clash count for the
// current state, e.g. sampled after seedinit.Seed or between epochs.
func (c *Collector) ObserveViolations(count int) {
	c.violations.Set(float64(count))
}

// ObserveRunDuration records one complete run's wall-clock time.
func (c *Collector) ObserveRunDuration(d time.Duration) {
	c.runDuration.Observe(d.Seconds())
}

// Handler returns the HTTP handler serving this Collector's registry in
// the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server exposing /metrics on addr and blocks
// until ctx is cancelled, mirroring the way tutu-network/tutu's
// observability server is wired into its daemon's lifecycle.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	server := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
