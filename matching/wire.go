package matching

import (
	"github.com/shopspring/decimal"
)

// OrderRequest is the wire form of an incoming order as hosts receive it.
// The side travels under the field name "type".
type OrderRequest struct {
	Price  decimal.Decimal `json:"price"`
	Volume decimal.Decimal `json:"volume"`
	Symbol string          `json:"symbol"`
	Side   string          `json:"type"`
}

// Order validates the request and builds the order to process.
func (r OrderRequest) Order() (*Order, error) {
	symbol, err := ParseSymbol(r.Symbol)
	if err != nil {
		return nil, err
	}

	side, err := ParseOrderSide(r.Side)
	if err != nil {
		return nil, err
	}

	return NewOrder(symbol, side, r.Price, r.Volume)
}
