// Package tickengine drives a backtest: it owns the per-symbol order books,
// the ordered list of strategies, and the order pool, and dispatches each
// Tick through the deterministic pipeline described in the package's
// design notes (update -> strategy notification -> order submission ->
// trade callback).
package tickengine

import "github.com/Udaynanda/backtester/internal/bookcore"

// Tick is a single market-data event. Price, Volume, and Side are
// informational only — the engine never mutates a book from a Tick; it is
// purely a dispatch signal to strategies, which decide for themselves
// whether to submit an order.
type Tick struct {
	Symbol    string
	Price     bookcore.Price
	Volume    bookcore.Quantity
	Timestamp bookcore.Timestamp
	Side      bookcore.Side
}

// Strategy is the capability set a backtest strategy must implement. The
// engine never introspects strategy state beyond these three calls.
type Strategy interface {
	// OnTick is called once per tick, in strategy-insertion order. The
	// engine passed in is valid only for the duration of this call.
	OnTick(tick Tick, engine *TickEngine)
	// OnTrade is called for every trade emitted by any book the engine
	// owns, in emission order, including trades resulting from this
	// strategy's own orders.
	OnTrade(trade bookcore.Trade)
	// Name identifies the strategy for logging and reporting.
	Name() string
}

// Stats are the aggregate counters accumulated across a backtest.
type Stats struct {
	TicksProcessed  uint64
	OrdersSubmitted uint64
	TradesExecuted  uint64
	TotalLatencyNS  uint64
}

// AvgLatencyUS returns the mean per-tick processing latency in
// microseconds, or 0 if no ticks have been processed.
func (s Stats) AvgLatencyUS() float64 {
	if s.TicksProcessed == 0 {
		return 0
	}
	return float64(s.TotalLatencyNS) / float64(s.TicksProcessed) / 1000.0
}
