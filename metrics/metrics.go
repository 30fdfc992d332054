package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Counter: orders accepted into the engine queue
	OrdersProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_orders_processed_total",
			Help: "Total number of orders processed by the matching engine",
		},
		[]string{"symbol", "side"},
	)

	// Counter: volume consumed from resting liquidity
	MatchedVolumeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_matched_volume_total",
			Help: "Total volume matched off the resting side of the book",
		},
		[]string{"symbol"},
	)

	// Gauge: price levels currently resting per side
	BookDepthLevels = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "engine_book_depth_levels",
			Help: "Current number of aggregated price levels in the order book",
		},
		[]string{"symbol", "side"},
	)

	// Gauges: best prices, zero while a side is empty
	BestBidPrice = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "engine_best_bid_price",
			Help: "Current best bid price in the order book",
		},
		[]string{"symbol"},
	)

	BestAskPrice = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "engine_best_ask_price",
			Help: "Current best ask price in the order book",
		},
		[]string{"symbol"},
	)

	// Counter: snapshot queries answered and expired
	SnapshotRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_snapshot_requests_total",
			Help: "Total number of order book snapshot requests",
		},
	)

	SnapshotTimeoutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_snapshot_timeouts_total",
			Help: "Total number of snapshot requests that expired before a reply",
		},
	)

	// Counter: change notifications dropped on slow subscriber channels
	DroppedUpdatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_dropped_updates_total",
			Help: "Total number of order book updates dropped for slow subscribers",
		},
	)
)

// RecordOrderProcessed increments the processed orders counter and adds the
// matched part of the order volume to the matched volume counter.
func RecordOrderProcessed(symbol, side string, matchedVolume float64) {
	OrdersProcessedTotal.WithLabelValues(symbol, side).Inc()
	if matchedVolume > 0 {
		MatchedVolumeTotal.WithLabelValues(symbol).Add(matchedVolume)
	}
}

// UpdateBook refreshes the depth and best price gauges from a book change.
func UpdateBook(symbol string, askLevels, bidLevels int, bestAsk, bestBid float64) {
	BookDepthLevels.WithLabelValues(symbol, "ask").Set(float64(askLevels))
	BookDepthLevels.WithLabelValues(symbol, "bid").Set(float64(bidLevels))
	BestAskPrice.WithLabelValues(symbol).Set(bestAsk)
	BestBidPrice.WithLabelValues(symbol).Set(bestBid)
}
