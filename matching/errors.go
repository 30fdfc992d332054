package matching

import (
	"errors"
)

// Errors used by the package.
var (
	ErrInvalidSymbol      = errors.New("invalid symbol")
	ErrInvalidOrderSide   = errors.New("invalid order side")
	ErrInvalidOrderPrice  = errors.New("invalid order price")
	ErrInvalidOrderVolume = errors.New("invalid order volume")
)
