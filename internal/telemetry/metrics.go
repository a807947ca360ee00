package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Udaynanda/backtester/internal/tickengine"
)

// Metrics is a Prometheus registry exposing the engine's run counters and
// per-book depth. It never reads tickengine.Stats on its own; the caller
// pushes updates explicitly via Observe and UpdateBookDepth, the same
// push model the engine itself uses for trade fan-out.
type Metrics struct {
	registry *prometheus.Registry

	ticksProcessed  prometheus.Counter
	ordersSubmitted prometheus.Counter
	tradesExecuted  prometheus.Counter
	tickLatency     prometheus.Histogram
	bookDepth       *prometheus.GaugeVec
}

// NewMetrics creates and registers every metric under namespace.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		ticksProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_processed_total",
			Help:      "Total number of ticks dispatched to strategies.",
		}),
		ordersSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_submitted_total",
			Help:      "Total number of orders submitted by any strategy.",
		}),
		tradesExecuted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trades_executed_total",
			Help:      "Total number of trades matched across all books.",
		}),
		tickLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_latency_microseconds",
			Help:      "Per-tick dispatch latency in microseconds.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		bookDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "book_depth",
			Help:      "Resting volume on one side of one symbol's book.",
		}, []string{"symbol", "side"}),
	}

	registry.MustRegister(
		m.ticksProcessed,
		m.ordersSubmitted,
		m.tradesExecuted,
		m.tickLatency,
		m.bookDepth,
	)
	return m
}

// Registry returns the underlying registry, for mounting a promhttp
// handler or for tests that want to read back registered metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records one tick's worth of engine stats deltas plus its
// measured latency. Callers pass deltas, not cumulative totals, since
// prometheus.Counter only moves forward via Add/Inc.
func (m *Metrics) Observe(ordersDelta, tradesDelta uint64, latencyUS float64) {
	m.ticksProcessed.Inc()
	m.ordersSubmitted.Add(float64(ordersDelta))
	m.tradesExecuted.Add(float64(tradesDelta))
	m.tickLatency.Observe(latencyUS)
}

// UpdateBookDepth sets the current resting volume gauge for one side of
// one symbol's book.
func (m *Metrics) UpdateBookDepth(symbol string, side string, depth float64) {
	m.bookDepth.WithLabelValues(symbol, side).Set(depth)
}

// SnapshotFromStats pushes a full stats snapshot's worth of counters in
// one call, for callers that only have a cumulative tickengine.Stats
// (e.g. a final end-of-run report) rather than per-tick deltas.
func SnapshotFromStats(m *Metrics, stats tickengine.Stats) {
	m.ticksProcessed.Add(float64(stats.TicksProcessed))
	m.ordersSubmitted.Add(float64(stats.OrdersSubmitted))
	m.tradesExecuted.Add(float64(stats.TradesExecuted))
}
