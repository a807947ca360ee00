package strategy

import (
	"github.com/Udaynanda/backtester/internal/bookcore"
	"github.com/Udaynanda/backtester/internal/tickengine"
)

// MarketMaker quotes both sides of the book every 10th tick around the
// tick price, gated by an independent check of position against
// maxPosition per side. Fills do not update position, so it stays 0 and
// the check blocks quoting only when maxPosition <= 0. P&L tracking is a
// simplified spread-capture estimate, same simplification as the
// original: it credits spread/2 per observed trade without checking
// whether the trade was actually this strategy's own fill.
type MarketMaker struct {
	spread      bookcore.Price
	quoteSize   bookcore.Quantity
	maxPosition int64

	position   int64
	tickCount  uint64
	tradeCount int
	totalPNL   int64
}

// NewMarketMaker creates a MarketMaker quoting the given spread and size,
// capped at maxPosition in either direction.
func NewMarketMaker(spread bookcore.Price, quoteSize bookcore.Quantity, maxPosition int64) *MarketMaker {
	return &MarketMaker{spread: spread, quoteSize: quoteSize, maxPosition: maxPosition}
}

func (mm *MarketMaker) Name() string { return "MarketMaker" }

func (mm *MarketMaker) Position() int64 { return mm.position }
func (mm *MarketMaker) Trades() int     { return mm.tradeCount }
func (mm *MarketMaker) PNL() int64      { return mm.totalPNL }

func (mm *MarketMaker) OnTick(tick tickengine.Tick, engine *tickengine.TickEngine) {
	mm.tickCount++
	if mm.tickCount%10 != 0 {
		return
	}

	mid := tick.Price
	canBuy := mm.position < mm.maxPosition
	canSell := mm.position > -mm.maxPosition

	if canBuy {
		engine.SubmitOrder(bookcore.Order{
			Side:     bookcore.Buy,
			Type:     bookcore.Limit,
			Price:    mid - mm.spread/2,
			Quantity: mm.quoteSize,
		})
	}
	if canSell {
		engine.SubmitOrder(bookcore.Order{
			Side:     bookcore.Sell,
			Type:     bookcore.Limit,
			Price:    mid + mm.spread/2,
			Quantity: mm.quoteSize,
		})
	}
}

func (mm *MarketMaker) OnTrade(trade bookcore.Trade) {
	mm.tradeCount++
	mm.totalPNL += int64(mm.spread / 2)
}
