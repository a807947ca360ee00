package ingest

import (
	"math/rand"

	"github.com/Udaynanda/backtester/internal/bookcore"
	"github.com/Udaynanda/backtester/internal/tickengine"
)

// DefaultSyntheticSeed, DefaultSyntheticSymbol, DefaultSyntheticBasePrice,
// and DefaultSyntheticCount match the reference dataset used throughout
// the design notes and tests: a single symbol, a million ticks, and a
// fixed seed so two runs of the same count produce byte-identical ticks.
const (
	DefaultSyntheticSeed      = 42
	DefaultSyntheticSymbol    = "AAPL"
	DefaultSyntheticBasePrice = bookcore.Price(1_000_000)
	DefaultSyntheticCount     = 1_000_000
)

// SyntheticConfig parameterizes GenerateSynthetic. A zero value is not
// useful; use NewSyntheticConfig for the documented defaults.
type SyntheticConfig struct {
	Seed      int64
	Symbol    string
	BasePrice bookcore.Price
	Count     int
}

// NewSyntheticConfig returns the default dataset parameters.
func NewSyntheticConfig() SyntheticConfig {
	return SyntheticConfig{
		Seed:      DefaultSyntheticSeed,
		Symbol:    DefaultSyntheticSymbol,
		BasePrice: DefaultSyntheticBasePrice,
		Count:     DefaultSyntheticCount,
	}
}

// GenerateSynthetic produces a deterministic random walk of ticks: price
// drifts by a normally-distributed step each tick (clamped so it never
// goes non-positive), volume is uniform in [100, 1000], side is a fair
// coin flip, and ticks are spaced one millisecond apart starting at
// timestamp 1_000_000 (1ms). Two calls with the same cfg produce an identical sequence,
// since the only source of randomness is a rand.Rand seeded from cfg.Seed.
func GenerateSynthetic(cfg SyntheticConfig) []tickengine.Tick {
	rng := rand.New(rand.NewSource(cfg.Seed))

	ticks := make([]tickengine.Tick, 0, cfg.Count)
	price := cfg.BasePrice
	const tickSpacingNS = 1_000_000 // 1ms

	for i := 0; i < cfg.Count; i++ {
		step := bookcore.Price(rng.NormFloat64() * float64(bookcore.PriceScale))
		price += step
		if price <= 0 {
			price = cfg.BasePrice
		}

		volume := bookcore.Quantity(100 + rng.Intn(901))

		side := bookcore.Buy
		if rng.Intn(2) == 1 {
			side = bookcore.Sell
		}

		ticks = append(ticks, tickengine.Tick{
			Symbol:    cfg.Symbol,
			Price:     price,
			Volume:    volume,
			Timestamp: bookcore.Timestamp(uint64(i+1) * tickSpacingNS),
			Side:      side,
		})
	}

	return ticks
}
