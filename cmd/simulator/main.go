package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/coindee/coindee-matching-engine/config"
	"github.com/coindee/coindee-matching-engine/matching"
	"github.com/coindee/coindee-matching-engine/worker"
)

const orderInterval = 25 * time.Millisecond

func main() {
	cfg := config.Load()

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Expose Prometheus metrics.
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		logger.WithField("addr", cfg.MetricsAddr).Info("serving metrics")
		if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
			logger.WithError(err).Error("metrics server stopped")
		}
	}()

	w := worker.New(worker.Options{
		Symbol:          matching.SymbolBTC,
		QueueSize:       cfg.QueueSize,
		SnapshotTimeout: cfg.SnapshotTimeout,
		Logger:          logger,
	})
	defer w.Close()

	// Log the top of the book on every change.
	updates, unsubscribe, err := w.SubscribeChanges(16)
	if err != nil {
		logger.WithError(err).Fatal("subscribing to book changes")
	}
	defer unsubscribe()

	go func() {
		for book := range updates {
			top := book.Top(1)
			fields := logrus.Fields{
				"ask_levels": len(book.Asks()),
				"bid_levels": len(book.Bids()),
			}
			if entry, ok := top.BestAsk(); ok {
				fields["best_ask"] = entry.Price.String()
			}
			if entry, ok := top.BestBid(); ok {
				fields["best_bid"] = entry.Price.String()
			}
			logger.WithFields(fields).Info("book changed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("feeding random orders, ^C to stop")
	feed(ctx, logger, w)

	// Report the final book before shutdown.
	snapCtx, cancel := context.WithTimeout(context.Background(), cfg.SnapshotTimeout)
	defer cancel()
	book, err := w.Snapshot(snapCtx)
	if err != nil {
		logger.WithError(err).Error("final snapshot failed")
		return
	}
	logger.WithFields(logrus.Fields{
		"ask_levels": len(book.Asks()),
		"bid_levels": len(book.Bids()),
	}).Info("final book")
}

// feed submits random orders in a price band around a drifting mid price
// until the context is cancelled.
func feed(ctx context.Context, logger *logrus.Logger, w *worker.Worker) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	mid := int64(6000000) // 60000.00, in cents

	ticker := time.NewTicker(orderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		// Drift the mid price a little every order.
		mid += int64(rnd.Intn(2001)) - 1000

		// Bands overlap around the mid so the two sides cross regularly.
		side := matching.OrderSideAsk
		offset := int64(rnd.Intn(50000)) - 10000
		if rnd.Intn(2) == 0 {
			side = matching.OrderSideBid
			offset = -offset
		}

		price := decimal.New(mid+offset, -2)
		volume := decimal.New(1+int64(rnd.Intn(100000000)), -8)

		order, err := matching.NewOrder(matching.SymbolBTC, side, price, volume)
		if err != nil {
			logger.WithError(err).Warn("skipping invalid generated order")
			continue
		}

		if err := w.ProcessOrder(order); err != nil {
			logger.WithError(err).Error("order rejected by worker")
			return
		}
	}
}
