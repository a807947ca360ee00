package bookcore

import "container/heap"

// PriceLevel is a FIFO queue of resting orders sharing one price on one
// side of the book. Invariant: TotalQuantity == sum of Remaining() over
// every order linked into the queue.
type PriceLevel struct {
	Price         Price
	TotalQuantity Quantity

	head, tail *Order
}

func newPriceLevel(price Price) *PriceLevel {
	return &PriceLevel{Price: price}
}

// append admits an order at the back of the FIFO queue.
func (l *PriceLevel) append(o *Order) {
	o.level = l
	o.next = nil
	if l.tail != nil {
		l.tail.next = o
	} else {
		l.head = o
	}
	l.tail = o
	l.TotalQuantity += o.Remaining()
}

// front returns the oldest resting order without removing it, or nil.
func (l *PriceLevel) front() *Order {
	return l.head
}

// popFront removes and returns the oldest resting order in O(1).
func (l *PriceLevel) popFront() *Order {
	o := l.head
	if o == nil {
		return nil
	}
	l.head = o.next
	if l.head == nil {
		l.tail = nil
	}
	o.next = nil
	o.level = nil
	return o
}

func (l *PriceLevel) empty() bool { return l.head == nil }

// levelHeap is a binary heap over *PriceLevel giving O(log L) access to
// the best price on one side: a max-heap for bids, a min-heap for asks.
type levelHeap struct {
	data   []*PriceLevel
	index  map[*PriceLevel]int
	isBids bool
}

func newLevelHeap(isBids bool) *levelHeap {
	return &levelHeap{index: map[*PriceLevel]int{}, isBids: isBids}
}

func (h *levelHeap) Len() int { return len(h.data) }

func (h *levelHeap) Less(i, j int) bool {
	if h.isBids {
		return h.data[i].Price > h.data[j].Price
	}
	return h.data[i].Price < h.data[j].Price
}

func (h *levelHeap) Swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.index[h.data[i]] = i
	h.index[h.data[j]] = j
}

func (h *levelHeap) Push(x any) {
	l := x.(*PriceLevel)
	h.index[l] = len(h.data)
	h.data = append(h.data, l)
}

func (h *levelHeap) Pop() any {
	n := len(h.data)
	l := h.data[n-1]
	h.data = h.data[:n-1]
	delete(h.index, l)
	return l
}

func (h *levelHeap) best() *PriceLevel {
	if len(h.data) == 0 {
		return nil
	}
	return h.data[0]
}

func (h *levelHeap) remove(l *PriceLevel) {
	i, ok := h.index[l]
	if !ok {
		return
	}
	heap.Remove(h, i)
}

// bookSide owns one side (bids or asks) of an OrderBook: a price -> level
// map for O(1) lookup of an existing level, plus a levelHeap for O(log L)
// access to the best price.
type bookSide struct {
	levels map[Price]*PriceLevel
	best   *levelHeap
}

func newBookSide(isBids bool) *bookSide {
	return &bookSide{
		levels: map[Price]*PriceLevel{},
		best:   newLevelHeap(isBids),
	}
}

func (bs *bookSide) bestLevel() *PriceLevel {
	return bs.best.best()
}

func (bs *bookSide) getOrCreate(price Price) *PriceLevel {
	if l, ok := bs.levels[price]; ok {
		return l
	}
	l := newPriceLevel(price)
	bs.levels[price] = l
	heap.Push(bs.best, l)
	return l
}

// removeIfEmpty erases a level from the side once its queue has drained.
func (bs *bookSide) removeIfEmpty(l *PriceLevel) {
	if !l.empty() && l.TotalQuantity > 0 {
		return
	}
	delete(bs.levels, l.Price)
	bs.best.remove(l)
}

// volume sums TotalQuantity across every level on this side. O(L).
func (bs *bookSide) volume() Quantity {
	var total Quantity
	for _, l := range bs.levels {
		total += l.TotalQuantity
	}
	return total
}
