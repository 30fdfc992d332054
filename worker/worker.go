// Package worker runs a matching engine on its own dedicated goroutine.
//
// The engine itself is not thread-safe: its safety model is a single
// sequential execution context per instance. The worker provides exactly
// that, funneling every operation through one task queue consumed by one
// goroutine, so orders are processed strictly in delivery order and a
// match-then-insert sequence never interleaves with another order.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/coindee/coindee-matching-engine/matching"
	"github.com/coindee/coindee-matching-engine/metrics"
)

// ErrClosed is returned for every operation submitted after Close.
var ErrClosed = errors.New("engine worker is closed")

const (
	// DefaultQueueSize specifies the size of the task queue consumed by the
	// worker goroutine.
	DefaultQueueSize = 256

	// DefaultSnapshotTimeout bounds the wait for a snapshot reply when the
	// caller's context carries no deadline of its own.
	DefaultSnapshotTimeout = 1000 * time.Millisecond
)

// Options configures a Worker. The zero value is usable.
type Options struct {
	// Symbol of the book owned by the worker. Defaults to SymbolBTC.
	Symbol matching.Symbol

	// QueueSize of the task queue. Defaults to DefaultQueueSize.
	QueueSize int

	// SnapshotTimeout applied to snapshot queries without a deadline.
	// Defaults to DefaultSnapshotTimeout.
	SnapshotTimeout time.Duration

	// Logger used for structured logging. Defaults to the standard logger.
	Logger *logrus.Logger
}

// Worker owns one matching engine instance and the goroutine driving it.
type Worker struct {
	engine *matching.Engine
	symbol matching.Symbol
	log    *logrus.Entry

	snapshotTimeout time.Duration

	tasks chan func(e *matching.Engine)
	done  chan struct{}

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates a Worker and starts its goroutine.
func New(opts Options) *Worker {
	if opts.Symbol == 0 {
		opts.Symbol = matching.SymbolBTC
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.SnapshotTimeout <= 0 {
		opts.SnapshotTimeout = DefaultSnapshotTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	w := &Worker{
		engine:          matching.NewEngine(),
		symbol:          opts.Symbol,
		log:             logger.WithField("component", "engine-worker").WithField("symbol", opts.Symbol.String()),
		snapshotTimeout: opts.SnapshotTimeout,
		tasks:           make(chan func(e *matching.Engine), opts.QueueSize),
		done:            make(chan struct{}),
	}

	// Internal observer keeping the gauges and the debug log current.
	// Registered before the loop starts, so no task can race the call.
	w.engine.Subscribe(&bookObserver{worker: w})

	w.wg.Add(1)
	go w.run()

	return w
}

// run is the single goroutine working with the engine, performing enqueued
// tasks strictly in delivery order.
func (w *Worker) run() {
	defer w.wg.Done()

	for {
		select {
		case task := <-w.tasks:
			task(w.engine)
		case <-w.done:
			return
		}
	}
}

// submit enqueues a task unless the worker is closed or the context expires.
func (w *Worker) submit(ctx context.Context, task func(e *matching.Engine)) error {
	select {
	case <-w.done:
		return ErrClosed
	default:
	}

	select {
	case w.tasks <- task:
		return nil
	case <-w.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ProcessOrder enqueues the order for processing and returns without
// waiting for the result (fire-and-forget). The order must come from
// matching.NewOrder and belongs to the worker afterwards.
// Blocks only while the task queue is full.
func (w *Worker) ProcessOrder(order *matching.Order) error {
	if order.Symbol() != w.symbol {
		return matching.ErrInvalidSymbol
	}

	submitted := order.Volume()

	return w.submit(context.Background(), func(e *matching.Engine) {
		e.ProcessOrder(order)

		matched := submitted.Sub(order.Volume())
		metrics.RecordOrderProcessed(w.symbol.String(), order.Side().String(), matched.InexactFloat64())

		w.log.WithFields(logrus.Fields{
			"side":    order.Side().String(),
			"price":   order.Price().String(),
			"volume":  submitted.String(),
			"matched": matched.String(),
		}).Debug("order processed")
	})
}

// Snapshot requests a point-in-time copy of the order book. The wait is
// bounded: a context without a deadline gets the configured snapshot
// timeout applied, and an expired wait returns the context error as the
// single rejection path.
func (w *Worker) Snapshot(ctx context.Context) (matching.OrderBook, error) {
	metrics.SnapshotRequestsTotal.Inc()

	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.snapshotTimeout)
		defer cancel()
	}

	// Buffered reply so a late worker never blocks on an abandoned query.
	reply := make(chan matching.OrderBook, 1)

	err := w.submit(ctx, func(e *matching.Engine) {
		reply <- e.Snapshot()
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			metrics.SnapshotTimeoutsTotal.Inc()
		}
		return matching.OrderBook{}, err
	}

	select {
	case book := <-reply:
		return book, nil
	case <-ctx.Done():
		metrics.SnapshotTimeoutsTotal.Inc()
		w.log.WithField("timeout", w.snapshotTimeout.String()).Warn("snapshot request expired")
		return matching.OrderBook{}, ctx.Err()
	case <-w.done:
		return matching.OrderBook{}, ErrClosed
	}
}

// SubscribeChanges registers a change subscriber and returns the channel
// its order book updates are delivered on, together with an unsubscribe
// function. Unsubscribing more than once is a no-op. When the subscriber
// drains too slowly the oldest pending update is dropped rather than
// blocking the engine. The channel is not closed on unsubscribe; pending
// updates may still be drained.
func (w *Worker) SubscribeChanges(buffer int) (<-chan matching.OrderBook, func(), error) {
	if buffer <= 0 {
		buffer = 1
	}

	ch := make(chan matching.OrderBook, buffer)
	handler := &channelHandler{ch: ch, log: w.log}

	registered := make(chan func(), 1)
	err := w.submit(context.Background(), func(e *matching.Engine) {
		registered <- e.Subscribe(handler)
	})
	if err != nil {
		return nil, nil, err
	}

	var unsubscribe func()
	select {
	case unsubscribe = <-registered:
	case <-w.done:
		return nil, nil, ErrClosed
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			// Unsubscription mutates the registry, so it runs on the
			// worker goroutine like everything else.
			_ = w.submit(context.Background(), func(e *matching.Engine) {
				unsubscribe()
			})
		})
	}

	return ch, cancel, nil
}

// Close stops the worker goroutine and waits until it is done.
// Tasks still queued are discarded; subsequent operations return ErrClosed.
func (w *Worker) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
	})
	w.wg.Wait()
}

////////////////////////////////////////////////////////////////
// Engine subscribers
////////////////////////////////////////////////////////////////

// channelHandler forwards change notifications into a subscriber channel,
// dropping the oldest pending update when the channel is full.
// Runs on the worker goroutine only.
type channelHandler struct {
	ch  chan matching.OrderBook
	log *logrus.Entry
}

func (h *channelHandler) OnOrderBookChange(book matching.OrderBook) {
	for {
		select {
		case h.ch <- book:
			return
		default:
		}
		select {
		case <-h.ch:
			metrics.DroppedUpdatesTotal.Inc()
		default:
		}
	}
}

func (h *channelHandler) OnError(err error) {
	h.log.WithError(err).Warn("change subscriber delivery failed")
}

// bookObserver keeps the Prometheus gauges current on every book change.
type bookObserver struct {
	worker *Worker
}

func (o *bookObserver) OnOrderBookChange(book matching.OrderBook) {
	var bestAsk, bestBid float64
	if entry, ok := book.BestAsk(); ok {
		bestAsk = entry.Price.InexactFloat64()
	}
	if entry, ok := book.BestBid(); ok {
		bestBid = entry.Price.InexactFloat64()
	}

	metrics.UpdateBook(o.worker.symbol.String(), len(book.Asks()), len(book.Bids()), bestAsk, bestBid)
}

func (o *bookObserver) OnError(err error) {
	o.worker.log.WithError(err).Error("book observer delivery failed")
}
