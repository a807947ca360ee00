package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Udaynanda/backtester/internal/tickengine"
)

func TestMetricsObserveIncrementsCounters(t *testing.T) {
	m := NewMetrics("backtester_test")
	m.Observe(2, 1, 12.5)
	m.UpdateBookDepth("AAPL", "bid", 500)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	found := map[string]bool{}
	counters := map[string]float64{}
	for _, fam := range families {
		found[fam.GetName()] = true
		if c := fam.GetMetric()[0].GetCounter(); c != nil {
			counters[fam.GetName()] = c.GetValue()
		}
	}
	assert.True(t, found["backtester_test_ticks_processed_total"])
	assert.True(t, found["backtester_test_orders_submitted_total"])
	assert.True(t, found["backtester_test_trades_executed_total"])
	assert.True(t, found["backtester_test_book_depth"])
	assert.Equal(t, 1.0, counters["backtester_test_ticks_processed_total"])
	assert.Equal(t, 2.0, counters["backtester_test_orders_submitted_total"])
	assert.Equal(t, 1.0, counters["backtester_test_trades_executed_total"])
}

func TestSnapshotFromStats(t *testing.T) {
	m := NewMetrics("backtester_test2")
	SnapshotFromStats(m, tickengine.Stats{
		TicksProcessed:  10,
		OrdersSubmitted: 4,
		TradesExecuted:  2,
	})

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestNewLoggerDefaultsToInfoOnBadLevel(t *testing.T) {
	log, err := NewLogger("not-a-level")
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.True(t, log.Core().Enabled(zap.InfoLevel))
	assert.False(t, log.Core().Enabled(zap.DebugLevel))
}

func TestNewLoggerDebug(t *testing.T) {
	log, err := NewLogger("debug")
	require.NoError(t, err)
	require.NotNil(t, log)
}
