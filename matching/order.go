package matching

import (
	"github.com/shopspring/decimal"
)

// Order contains information about a single incoming instruction to buy or
// sell a fixed amount of the traded instrument at a limit price.
// Orders are created through NewOrder only, so an order that reached the
// engine is known to satisfy the schema: price > 0 with at most
// PricePrecision fractional digits, volume > 0 with at most VolumePrecision
// fractional digits, side and symbol from the closed enumerations.
// The engine mutates the volume in place while matching to track the
// remaining amount to fill; orders are discarded after processing.
type Order struct {
	symbol Symbol
	side   OrderSide

	price  decimal.Decimal
	volume decimal.Decimal
}

// NewOrder validates the given order parameters and creates a new Order.
func NewOrder(symbol Symbol, side OrderSide, price decimal.Decimal, volume decimal.Decimal) (*Order, error) {
	if !symbol.Valid() {
		return nil, ErrInvalidSymbol
	}
	if !side.Valid() {
		return nil, ErrInvalidOrderSide
	}
	if !price.IsPositive() || !fitsPrecision(price, PricePrecision) {
		return nil, ErrInvalidOrderPrice
	}
	if !volume.IsPositive() || !fitsPrecision(volume, VolumePrecision) {
		return nil, ErrInvalidOrderVolume
	}

	return &Order{
		symbol: symbol,
		side:   side,
		price:  price,
		volume: volume,
	}, nil
}

// NewAsk creates a new validated sell order.
func NewAsk(symbol Symbol, price decimal.Decimal, volume decimal.Decimal) (*Order, error) {
	return NewOrder(symbol, OrderSideAsk, price, volume)
}

// NewBid creates a new validated buy order.
func NewBid(symbol Symbol, price decimal.Decimal, volume decimal.Decimal) (*Order, error) {
	return NewOrder(symbol, OrderSideBid, price, volume)
}

// Symbol returns the symbol of the order.
func (o *Order) Symbol() Symbol {
	return o.symbol
}

// Side returns the side of the order.
func (o *Order) Side() OrderSide {
	return o.side
}

// IsAsk returns true if sell order.
func (o *Order) IsAsk() bool {
	return o.side == OrderSideAsk
}

// IsBid returns true if buy order.
func (o *Order) IsBid() bool {
	return o.side == OrderSideBid
}

// Price returns the limit price of the order. Never mutated.
func (o *Order) Price() decimal.Decimal {
	return o.price
}

// Volume returns the volume of the order still to be filled.
// Before processing this is the submitted volume; afterwards the residual.
func (o *Order) Volume() decimal.Decimal {
	return o.volume
}
