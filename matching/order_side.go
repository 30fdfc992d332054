package matching

// OrderSide is an enumeration of possible trading sides (sell/buy).
type OrderSide uint8

const (
	// OrderSideAsk represents the selling side of the market.
	OrderSideAsk OrderSide = iota + 1
	// OrderSideBid represents the buying side of the market.
	OrderSideBid
)

// Valid returns true if the side is one of the enumerated values.
func (s OrderSide) Valid() bool {
	return s == OrderSideAsk || s == OrderSideBid
}

// Opposite returns the side an order of this side is matched against.
func (s OrderSide) Opposite() OrderSide {
	if s == OrderSideAsk {
		return OrderSideBid
	}
	return OrderSideAsk
}

// String returns the wire name of the side.
func (s OrderSide) String() string {
	switch s {
	case OrderSideAsk:
		return "ask"
	case OrderSideBid:
		return "bid"
	default:
		return "unknown"
	}
}

// ParseOrderSide returns the side named by the given wire name.
func ParseOrderSide(name string) (OrderSide, error) {
	switch name {
	case "ask":
		return OrderSideAsk, nil
	case "bid":
		return OrderSideBid, nil
	default:
		return 0, ErrInvalidOrderSide
	}
}
