package matching

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tidwall/hashmap"
)

// Engine owns the order book of a single symbol and exposes the matching
// facade: ProcessOrder, Snapshot and Subscribe. The engine is designed to
// run on a single dedicated sequential execution context (see the worker
// package); ProcessOrder and Snapshot are synchronous and never yield
// control mid-mutation, so the sortedness and no-crossing invariants hold
// at every externally observable point.
// NOTE: Not thread-safe.
type Engine struct {
	book *OrderBook

	// Subscribers by subscription id.
	subscribers *hashmap.Map[string, Handler]
}

// NewEngine creates and returns a new Engine instance with an empty book
// and no subscribers.
func NewEngine() *Engine {
	return &Engine{
		book:        NewOrderBook(),
		subscribers: hashmap.New[string, Handler](defaultReservedSubscriberSlots),
	}
}

// ProcessOrder matches the order against the opposite side of the book,
// inserts or aggregates any residual volume into its own side, and then
// synchronously notifies every subscriber with the resulting book.
// Matching runs to convergence before any insertion, so a crossing price is
// always fully or partially consumed rather than inserted.
// The order must come from NewOrder; it is mutated and must be discarded
// by the caller afterwards.
func (e *Engine) ProcessOrder(order *Order) {
	leftover := e.book.match(order)

	if leftover.IsPositive() {
		e.book.insert(order)
	}

	e.notify()
}

// Snapshot returns an independent value copy of the order book.
// Pure read: safe to call at any time, including from within a subscriber
// callback.
func (e *Engine) Snapshot() OrderBook {
	return e.book.Snapshot()
}

// Subscribe registers the handler to be notified on every future processed
// order and returns an unsubscribe function. Calling the returned function
// more than once is a no-op.
func (e *Engine) Subscribe(handler Handler) (unsubscribe func()) {
	id := uuid.New().String()
	e.subscribers.Set(id, handler)

	return func() {
		e.subscribers.Delete(id)
	}
}

// Subscribers returns the number of currently registered subscribers.
func (e *Engine) Subscribers() int {
	return e.subscribers.Len()
}

// notify delivers the current book to every subscriber. The notification
// payload is a fresh value copy shared by the whole batch, so no subscriber
// can observe a partially updated book or be affected by later mutation.
func (e *Engine) notify() {
	if e.subscribers.Len() == 0 {
		return
	}

	book := e.book.Snapshot()
	e.subscribers.Scan(func(_ string, handler Handler) bool {
		deliver(handler, book)
		return true
	})
}

// deliver isolates a single notification call so one failing subscriber
// does not prevent others from being notified or corrupt the book.
func deliver(handler Handler, book OrderBook) {
	defer func() {
		if r := recover(); r != nil {
			// Report back to the failing subscriber only. A broken OnError
			// must not take the engine down either.
			defer func() { _ = recover() }()
			handler.OnError(fmt.Errorf("order book subscriber panicked: %v", r))
		}
	}()

	handler.OnOrderBookChange(book)
}
