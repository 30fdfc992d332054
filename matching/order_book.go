package matching

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/coindee/coindee-matching-engine/types/sorted"
)

// BookEntry is an aggregated resting price level: the sum of all volume
// resting at one exact price. A level whose volume reaches zero is removed
// from the book, never retained.
type BookEntry struct {
	Price  decimal.Decimal
	Volume decimal.Decimal
}

// MarshalJSON renders the entry with price and volume as plain JSON numbers.
func (e BookEntry) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(`{"price":`)
	b.WriteString(e.Price.String())
	b.WriteString(`,"volume":`)
	b.WriteString(e.Volume.String())
	b.WriteByte('}')
	return b.Bytes(), nil
}

// OrderBook stores the aggregated resting liquidity of a single symbol as
// two ordered sequences of price levels: asks sorted ascending and bids
// sorted descending by price, so index 0 is the best price of either side.
// Prices are unique within a side and every level volume is positive.
// The book is exclusively owned by one Engine instance; external consumers
// read through value copies produced by Snapshot.
// NOTE: Not thread-safe.
type OrderBook struct {
	asks sorted.Slice[BookEntry]
	bids sorted.Slice[BookEntry]
}

// NewOrderBook creates and returns a new empty OrderBook instance.
func NewOrderBook() *OrderBook {
	return &OrderBook{
		asks: sorted.NewSlice(func(a, b BookEntry) int { return a.Price.Cmp(b.Price) }),
		bids: sorted.NewSlice(func(a, b BookEntry) int { return -a.Price.Cmp(b.Price) }),
	}
}

////////////////////////////////////////////////////////////////
// Read access
////////////////////////////////////////////////////////////////

// Asks returns the ask levels sorted ascending by price.
// The result must not be modified by the caller.
func (ob OrderBook) Asks() []BookEntry {
	return ob.asks.Items()
}

// Bids returns the bid levels sorted descending by price.
// The result must not be modified by the caller.
func (ob OrderBook) Bids() []BookEntry {
	return ob.bids.Items()
}

// BestAsk returns the lowest-priced ask level.
func (ob OrderBook) BestAsk() (BookEntry, bool) {
	if ob.asks.Len() == 0 {
		return BookEntry{}, false
	}
	return ob.asks.At(0), true
}

// BestBid returns the highest-priced bid level.
func (ob OrderBook) BestBid() (BookEntry, bool) {
	if ob.bids.Len() == 0 {
		return BookEntry{}, false
	}
	return ob.bids.At(0), true
}

// Size returns the total number of price levels on both sides.
func (ob OrderBook) Size() int {
	return ob.asks.Len() + ob.bids.Len()
}

// Snapshot returns an independent value copy of both sequences.
// Callers cannot observe subsequent mutation of the book through it and
// cannot mutate engine state through it.
func (ob OrderBook) Snapshot() OrderBook {
	return OrderBook{
		asks: ob.asks.Clone(),
		bids: ob.bids.Clone(),
	}
}

// Top returns an independent copy truncated to at most limit levels per
// side, keeping the best-priced levels. A non-positive limit falls back to
// DefaultOrderBookLimit. Used by hosts to apply a display limit.
func (ob OrderBook) Top(limit int) OrderBook {
	if limit <= 0 {
		limit = DefaultOrderBookLimit
	}
	return OrderBook{
		asks: ob.asks.CloneHead(limit),
		bids: ob.bids.CloneHead(limit),
	}
}

// MarshalJSON renders the book in its wire form:
// {"asks": [{"price": ..., "volume": ...}, ...], "bids": [...]}
// with asks ascending and bids descending by price.
func (ob OrderBook) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Asks []BookEntry `json:"asks"`
		Bids []BookEntry `json:"bids"`
	}{
		Asks: ob.asks.Items(),
		Bids: ob.bids.Items(),
	})
}

////////////////////////////////////////////////////////////////
// Internal helpers
////////////////////////////////////////////////////////////////

// sideOf returns the sequence resting orders of the given side aggregate into.
func (ob *OrderBook) sideOf(side OrderSide) *sorted.Slice[BookEntry] {
	if side == OrderSideAsk {
		return &ob.asks
	}
	return &ob.bids
}
