// Package metrics exposes the scheduler's run-time state as Prometheus
// gauges and counters, declared with promauto the way
// tutu-network/tutu's internal/infra/observability package declares its
// scheduler metrics, and served over HTTP with promhttp when the run
// configuration sets metrics_addr.
package metrics
