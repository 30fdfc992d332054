package matching

//go:generate mockgen -destination=mocks/interfaces.go -package=mockmatching . Handler

// Handler receives order book change notifications from the engine.
// Implementations must treat the delivered book as read-only; it is an
// independent value copy and stays consistent after delivery.
type Handler interface {

	// OnOrderBookChange is called once per processed order with the book
	// resulting from that order.
	OnOrderBookChange(book OrderBook)

	// OnError is called when delivering a notification to this handler
	// failed, for example because OnOrderBookChange panicked.
	OnError(err error)
}

// HandlerFunc adapts a plain function to the Handler interface.
// Delivery errors are discarded.
type HandlerFunc func(book OrderBook)

// OnOrderBookChange calls the wrapped function.
func (f HandlerFunc) OnOrderBookChange(book OrderBook) {
	f(book)
}

// OnError discards the error.
func (f HandlerFunc) OnError(err error) {}
