package tickengine

import (
	"time"

	"github.com/Udaynanda/backtester/internal/bookcore"
)

// TickEngine owns every order book, the ordered strategy list, and the
// order pool for one backtest. It is single-threaded: RunBacktest and
// ProcessTick must only ever be called from one goroutine, and strategy
// callbacks run synchronously on that same goroutine.
type TickEngine struct {
	books      map[string]*bookcore.OrderBook
	bookOrder  []string // insertion order of books, for the routing quirk below
	strategies []Strategy
	pool       *bookcore.OrderPool

	nextOrderID bookcore.OrderID
	currentTime bookcore.Timestamp

	stats Stats
}

// NewTickEngine creates an engine with a fresh order pool.
func NewTickEngine() *TickEngine {
	return &TickEngine{
		books: make(map[string]*bookcore.OrderBook),
		pool:  bookcore.NewOrderPool(bookcore.DefaultBlockSize),
	}
}

// AddStrategy appends a strategy to the ordered dispatch list. Strategies
// are never removed once added.
func (e *TickEngine) AddStrategy(s Strategy) {
	e.strategies = append(e.strategies, s)
}

// GetOrderBook returns the book for symbol, or nil if no tick for that
// symbol has ever been processed.
func (e *TickEngine) GetOrderBook(symbol string) *bookcore.OrderBook {
	return e.books[symbol]
}

// Stats returns a snapshot of the engine's run counters.
func (e *TickEngine) Stats() Stats {
	return e.stats
}

// CurrentTime returns the timestamp of the most recently dispatched tick,
// or 0 if no tick has been processed yet.
func (e *TickEngine) CurrentTime() bookcore.Timestamp {
	return e.currentTime
}

func (e *TickEngine) ensureBook(symbol string) *bookcore.OrderBook {
	if b, ok := e.books[symbol]; ok {
		return b
	}
	b := bookcore.NewOrderBook(symbol)
	b.SetTradeCallback(e.onTrade)
	e.books[symbol] = b
	e.bookOrder = append(e.bookOrder, symbol)
	return b
}

// ProcessTick runs one full dispatch cycle: it ensures a book exists for
// the tick's symbol, then calls OnTick on every strategy in insertion
// order. Any order a strategy submits during its OnTick is matched
// synchronously, and the resulting trades are fanned out to every
// strategy (including the caller) before that OnTick call returns.
func (e *TickEngine) ProcessTick(tick Tick) {
	start := time.Now()

	e.currentTime = tick.Timestamp
	e.ensureBook(tick.Symbol)

	for _, s := range e.strategies {
		s.OnTick(tick, e)
	}

	e.stats.TotalLatencyNS += uint64(time.Since(start).Nanoseconds())
	e.stats.TicksProcessed++
}

// SubmitOrder allocates a slot from the pool, copies template into it,
// stamps ID and Timestamp, and routes it to a book synchronously.
//
// Routing preserves a known quirk of the reference implementation: an
// order is always routed to the first book the engine ever created, in
// insertion order, whatever symbol the submitting strategy was reacting to
// (Order carries no symbol of its own). This is
// correct only for single-symbol backtests; see the design notes for why
// it is preserved rather than fixed.
func (e *TickEngine) SubmitOrder(template bookcore.Order) *bookcore.Order {
	order := e.pool.Allocate()
	*order = template
	e.nextOrderID++
	order.ID = e.nextOrderID
	order.Timestamp = e.currentTime
	order.Filled = 0
	order.InitialQuantity = order.Quantity
	order.Status = bookcore.Pending

	e.stats.OrdersSubmitted++

	if len(e.bookOrder) == 0 {
		return order
	}
	book := e.books[e.bookOrder[0]]
	book.AddOrder(order)
	return order
}

// onTrade is the callback every book's trade emission funnels through. It
// updates stats and fans the trade out to every strategy in insertion
// order, even if the trade happened re-entrantly while a strategy's own
// OnTick is still on the call stack.
func (e *TickEngine) onTrade(trade bookcore.Trade) {
	e.stats.TradesExecuted++
	for _, s := range e.strategies {
		s.OnTrade(trade)
	}
}

// RunBacktest iterates ticks in order, calling ProcessTick on each.
func (e *TickEngine) RunBacktest(ticks []Tick) {
	for _, t := range ticks {
		e.ProcessTick(t)
	}
}
