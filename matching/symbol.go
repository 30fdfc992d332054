package matching

// Symbol is an enumeration of traded instruments.
// A single engine instance maintains the book of exactly one symbol;
// hosts route orders of other symbols to their own engine instances.
type Symbol uint8

const (
	// SymbolBTC is currently the only traded instrument.
	SymbolBTC Symbol = iota + 1
)

// Valid returns true if the symbol is one of the enumerated values.
func (s Symbol) Valid() bool {
	return s == SymbolBTC
}

// String returns the wire name of the symbol.
func (s Symbol) String() string {
	switch s {
	case SymbolBTC:
		return "BTC"
	default:
		return "unknown"
	}
}

// ParseSymbol returns the symbol named by the given wire name.
func ParseSymbol(name string) (Symbol, error) {
	switch name {
	case "BTC":
		return SymbolBTC, nil
	default:
		return 0, ErrInvalidSymbol
	}
}
