// Package strategy provides reference Strategy implementations ported
// from the original momentum and market-making strategies, preserving
// their exact fixed-point arithmetic.
package strategy

import (
	"github.com/Udaynanda/backtester/internal/bookcore"
	"github.com/Udaynanda/backtester/internal/tickengine"
)

// Momentum buys when price crosses above a rolling moving average by 2%
// and sells when it crosses below by 2%. OnTick sends a closing order for
// an opposing position before the new one, but neither OnTick nor OnTrade
// updates the position field: Position stays 0, only the opening order is
// ever sent, and PNL, which accrues only while Position is non-zero, stays
// 0. OnTrade counts every trade it observes as one of this strategy's own,
// which is true only in single-strategy, single-symbol backtests. The core
// itself makes no such assumption — see the OnTrade doc on
// tickengine.Strategy.
type Momentum struct {
	windowSize int
	orderSize  bookcore.Quantity

	prices []bookcore.Price

	position       int64
	targetPosition int64
	avgEntryPrice  bookcore.Price
	totalPNL       int64
	tradesExecuted int
}

// NewMomentum creates a Momentum strategy with the given lookback window
// and order size. A non-positive windowSize falls back to 20, matching the
// original's default.
func NewMomentum(windowSize int, orderSize bookcore.Quantity) *Momentum {
	if windowSize <= 0 {
		windowSize = 20
	}
	return &Momentum{windowSize: windowSize, orderSize: orderSize}
}

func (m *Momentum) Name() string { return "MomentumStrategy" }

func (m *Momentum) Position() int64 { return m.position }
func (m *Momentum) PNL() int64      { return m.totalPNL }
func (m *Momentum) Trades() int     { return m.tradesExecuted }

func (m *Momentum) OnTick(tick tickengine.Tick, engine *tickengine.TickEngine) {
	m.prices = append(m.prices, tick.Price)
	if len(m.prices) > m.windowSize {
		m.prices = m.prices[1:]
	}
	if len(m.prices) < m.windowSize {
		return
	}

	var sum bookcore.Price
	for _, p := range m.prices {
		sum += p
	}
	ma := sum / bookcore.Price(len(m.prices))
	current := tick.Price

	// Thresholds computed in the original's operation order (ma * 102 / 100,
	// not ma * 1.02) to stay exact integer arithmetic and match its
	// rounding.
	buyThreshold := ma * 102 / 100
	sellThreshold := ma * 98 / 100

	switch {
	case current > buyThreshold && m.position <= 0:
		if m.position < 0 {
			engine.SubmitOrder(bookcore.Order{
				Side:     bookcore.Buy,
				Type:     bookcore.Limit,
				Price:    current,
				Quantity: bookcore.Quantity(-m.position),
			})
		}
		engine.SubmitOrder(bookcore.Order{
			Side:     bookcore.Buy,
			Type:     bookcore.Limit,
			Price:    current,
			Quantity: m.orderSize,
		})
		m.targetPosition = int64(m.orderSize)
	case current < sellThreshold && m.position >= 0:
		if m.position > 0 {
			engine.SubmitOrder(bookcore.Order{
				Side:     bookcore.Sell,
				Type:     bookcore.Limit,
				Price:    current,
				Quantity: bookcore.Quantity(m.position),
			})
		}
		engine.SubmitOrder(bookcore.Order{
			Side:     bookcore.Sell,
			Type:     bookcore.Limit,
			Price:    current,
			Quantity: m.orderSize,
		})
		m.targetPosition = -int64(m.orderSize)
	}
}

func (m *Momentum) OnTrade(trade bookcore.Trade) {
	m.tradesExecuted++

	switch {
	case m.position > 0:
		m.totalPNL += int64(trade.Price-m.avgEntryPrice) * int64(trade.Quantity)
	case m.position < 0:
		m.totalPNL += int64(m.avgEntryPrice-trade.Price) * int64(trade.Quantity)
	}
}
