// Package telemetry wires the backtester's ambient observability: a zap
// logger for collaborators (ingest, cmd/backtester) and a Prometheus
// registry exposing the engine's Stats. Neither internal/bookcore nor
// internal/tickengine import this package or log anything themselves.
package telemetry

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger at the given level ("debug", "info",
// "warn", or "error"). An unrecognized level falls back to "info".
func NewLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func parseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zap.InfoLevel
	}
	return l
}

// LogRunSummary writes a single structured line summarizing a finished
// backtest. Kept separate from NewLogger so cmd/backtester can call it
// without internal/telemetry depending on internal/tickengine's Stats
// type directly in the logger file.
func LogRunSummary(log *zap.Logger, ticks, orders, trades uint64, avgLatencyUS float64) {
	log.Info("backtest complete",
		zap.Uint64("ticks_processed", ticks),
		zap.Uint64("orders_submitted", orders),
		zap.Uint64("trades_executed", trades),
		zap.String("avg_latency_us", fmt.Sprintf("%.3f", avgLatencyUS)),
	)
}
