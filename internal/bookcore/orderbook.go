package bookcore

// TradeCallback is invoked synchronously, once per trade, in emission
// order. It must not panic; the book makes no attempt to roll back state
// if it does.
type TradeCallback func(Trade)

// OrderBook is a single-symbol, price-time priority limit order book. It
// is not safe for concurrent use: the whole core is single-threaded by
// design (see the package doc on bookcore), and the engine never calls
// into a book from more than one goroutine.
type OrderBook struct {
	Symbol string

	bids *bookSide
	asks *bookSide

	tradeCallback TradeCallback
	totalTrades   uint64
}

// NewOrderBook creates an empty book for one symbol.
func NewOrderBook(symbol string) *OrderBook {
	return &OrderBook{
		Symbol: symbol,
		bids:   newBookSide(true),
		asks:   newBookSide(false),
	}
}

// SetTradeCallback installs the single callback invoked at trade
// emission. There is only ever one; a later call replaces the former.
func (b *OrderBook) SetTradeCallback(cb TradeCallback) {
	b.tradeCallback = cb
}

// TotalTrades returns the book's monotonic trade counter.
func (b *OrderBook) TotalTrades() uint64 {
	return b.totalTrades
}

// BestBid returns the highest resting bid price, or 0 if the side is
// empty.
func (b *OrderBook) BestBid() Price {
	if l := b.bids.bestLevel(); l != nil {
		return l.Price
	}
	return 0
}

// BestAsk returns the lowest resting ask price, or 0 if the side is
// empty.
func (b *OrderBook) BestAsk() Price {
	if l := b.asks.bestLevel(); l != nil {
		return l.Price
	}
	return 0
}

// BidVolume sums remaining quantity resting on the bid side. O(L).
func (b *OrderBook) BidVolume() Quantity {
	return b.bids.volume()
}

// AskVolume sums remaining quantity resting on the ask side. O(L).
func (b *OrderBook) AskVolume() Quantity {
	return b.asks.volume()
}

// CancelOrder is preserved as a no-op: the core maintains no id->order
// index, so there is nothing to cancel. See the design notes on why this
// shape is kept rather than "fixed" — a strategy can never expect a
// submitted order to be removable by id.
func (b *OrderBook) CancelOrder(id OrderID) {
	_ = id
}

func (b *OrderBook) sideFor(s Side) *bookSide {
	if s == Buy {
		return b.bids
	}
	return b.asks
}

// AddOrder admits order into the book. Market orders are routed to
// ProcessMarketOrder. Limit orders match against the opposing side first;
// any quantity left over after matching rests at order.Price.
func (b *OrderBook) AddOrder(order *Order) {
	if order.Type == Market {
		b.ProcessMarketOrder(order)
		return
	}

	b.match(order, &order.Price)

	if order.Remaining() > 0 {
		level := b.sideFor(order.Side).getOrCreate(order.Price)
		level.append(order)
	}

	b.finalizeStatus(order)
}

// ProcessMarketOrder matches order against the best available liquidity
// with no price constraint. A market order never rests: any quantity left
// unmatched is cancelled rather than resting on the book.
func (b *OrderBook) ProcessMarketOrder(order *Order) {
	b.match(order, nil)
	b.finalizeStatus(order)
	if order.Status != Filled {
		order.Status = Cancelled
	}
}

func (b *OrderBook) finalizeStatus(order *Order) {
	switch {
	case order.Filled == order.Quantity:
		order.Status = Filled
	case order.Filled > 0:
		order.Status = Partial
	default:
		order.Status = Pending
	}
}

// match consumes resting liquidity from the side opposite order.Side until
// either order is fully filled, the opposing side empties, or (for a
// limit order, when limitPrice != nil) the best opposing price no longer
// crosses order's limit. It mutates resting makers in place and invokes
// the trade callback synchronously for every fill.
func (b *OrderBook) match(order *Order, limitPrice *Price) {
	opposite := b.sideFor(order.Side.Opposite())

	for order.Remaining() > 0 {
		level := opposite.bestLevel()
		if level == nil {
			break
		}

		if limitPrice != nil {
			if order.Side == Buy && *limitPrice < level.Price {
				break
			}
			if order.Side == Sell && *limitPrice > level.Price {
				break
			}
		}

		for order.Remaining() > 0 && level.head != nil {
			maker := level.front()

			qty := order.Remaining()
			if maker.Remaining() < qty {
				qty = maker.Remaining()
			}

			tradeTime := order.Timestamp
			if maker.Timestamp > tradeTime {
				tradeTime = maker.Timestamp
			}

			trade := Trade{Price: level.Price, Quantity: qty, Timestamp: tradeTime}
			if order.Side == Buy {
				trade.BuyOrderID, trade.SellOrderID = order.ID, maker.ID
			} else {
				trade.BuyOrderID, trade.SellOrderID = maker.ID, order.ID
			}

			if b.tradeCallback != nil {
				b.tradeCallback(trade)
			}

			order.Filled += qty
			maker.Filled += qty
			level.TotalQuantity -= qty
			b.totalTrades++

			if maker.Filled == maker.Quantity {
				maker.Status = Filled
				level.popFront()
			} else {
				maker.Status = Partial
			}
		}

		opposite.removeIfEmpty(level)
	}
}
