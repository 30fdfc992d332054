package matching

import (
	"github.com/shopspring/decimal"
)

////////////////////////////////////////////////////////////////
// Matching
////////////////////////////////////////////////////////////////

// isMatch reports whether the order still consumes the given resting level:
// an ask matches bids priced at or above its limit, a bid matches asks
// priced at or below its limit. An exhausted order matches nothing.
func isMatch(order *Order, entry BookEntry) bool {
	if !order.volume.IsPositive() {
		return false
	}
	if order.side == OrderSideAsk {
		return order.price.LessThanOrEqual(entry.Price)
	}
	return order.price.GreaterThanOrEqual(entry.Price)
}

// match consumes matching opposite-side liquidity, mutating both the
// scanned levels and the order's remaining volume, and returns the order's
// leftover volume (>= 0). The scanned sequence is walked from index 0, the
// best price of that side; levels are depleted greedily, best price first,
// until the order is exhausted or no further level satisfies isMatch.
// The sequence is assumed sorted per its side's direction.
func (ob *OrderBook) match(order *Order) decimal.Decimal {
	scan := ob.sideOf(order.side.Opposite())

	for scan.Len() > 0 && isMatch(order, scan.At(0)) {
		entry := scan.Ref(0)

		delta := roundVolume(entry.Volume.Sub(order.volume))
		if delta.IsPositive() {
			// Order fully filled, the partially depleted level survives.
			entry.Volume = delta
			order.volume = decimal.Zero
			break
		}

		// Level fully depleted. Its removal shifts the next candidate into
		// index 0, so the loop keeps scanning at the front.
		scan.RemoveAt(0)
		order.volume = roundVolume(delta.Abs())
	}

	return order.volume
}

////////////////////////////////////////////////////////////////
// Insertion
////////////////////////////////////////////////////////////////

// insert places the order's residual volume into the same-side sequence,
// aggregating on exact price match and otherwise splicing a new level in at
// the index keeping the side sorted and price-unique.
// The caller guards that the residual volume is positive.
func (ob *OrderBook) insert(order *Order) {
	side := ob.sideOf(order.side)

	i, found := side.Search(BookEntry{Price: order.price})
	if found {
		// Aggregate: same-price contributions are indistinguishable.
		entry := side.Ref(i)
		entry.Volume = entry.Volume.Add(order.volume)
		return
	}

	side.InsertAt(i, BookEntry{Price: order.price, Volume: order.volume})
}
