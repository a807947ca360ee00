// Command backtester runs a single backtest end to end: it loads ticks
// from a CSV file (or generates a synthetic dataset if no file is given
// or the file fails to open), wires up the reference strategies, runs
// the tick engine, and logs a summary.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Udaynanda/backtester/internal/bookcore"
	"github.com/Udaynanda/backtester/internal/ingest"
	"github.com/Udaynanda/backtester/internal/strategy"
	"github.com/Udaynanda/backtester/internal/telemetry"
	"github.com/Udaynanda/backtester/internal/tickengine"
)

func main() {
	csvPath := flag.String("csv", "", "path to a tick CSV file (symbol,timestamp,price,volume,side); falls back to synthetic data if empty or unreadable")
	syntheticCount := flag.Int("synthetic-count", ingest.DefaultSyntheticCount, "number of ticks to generate when no usable CSV is given")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, or error")
	flag.Parse()

	log, err := telemetry.NewLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "backtester: failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ticks := loadTicks(*csvPath, *syntheticCount, log)
	log.Info("loaded ticks", zap.Int("count", len(ticks)))

	engine := tickengine.NewTickEngine()
	engine.AddStrategy(strategy.NewMomentum(20, 100))
	engine.AddStrategy(strategy.NewMarketMaker(bookcore.Price(100), bookcore.Quantity(50), 1000))

	engine.RunBacktest(ticks)

	stats := engine.Stats()
	telemetry.LogRunSummary(log, stats.TicksProcessed, stats.OrdersSubmitted, stats.TradesExecuted, stats.AvgLatencyUS())

	metrics := telemetry.NewMetrics("backtester")
	telemetry.SnapshotFromStats(metrics, stats)
}

func loadTicks(csvPath string, syntheticCount int, log *zap.Logger) []tickengine.Tick {
	if csvPath == "" {
		return generateSynthetic(syntheticCount, log)
	}

	ticks, err := ingest.LoadCSV(csvPath, log)
	if err != nil {
		log.Warn("failed to load csv, falling back to synthetic data",
			zap.String("path", csvPath), zap.Error(err))
		return generateSynthetic(syntheticCount, log)
	}
	return ticks
}

func generateSynthetic(count int, log *zap.Logger) []tickengine.Tick {
	cfg := ingest.NewSyntheticConfig()
	if count > 0 {
		cfg.Count = count
	}
	log.Info("generating synthetic ticks",
		zap.Int("count", cfg.Count), zap.Int64("seed", cfg.Seed), zap.String("symbol", cfg.Symbol))
	return ingest.GenerateSynthetic(cfg)
}
