package matching

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("valid ask", func(t *testing.T) {
		order, err := NewAsk(SymbolBTC, decimal.RequireFromString("60100.50"), decimal.RequireFromString("0.00000001"))
		require.NoError(t, err)
		require.True(t, order.IsAsk())
		require.False(t, order.IsBid())
		require.Equal(t, OrderSideAsk, order.Side())
		require.Equal(t, SymbolBTC, order.Symbol())
		require.True(t, order.Price().Equal(decimal.RequireFromString("60100.50")))
		require.True(t, order.Volume().Equal(decimal.RequireFromString("0.00000001")))
	})

	t.Run("valid bid", func(t *testing.T) {
		order, err := NewBid(SymbolBTC, decimal.NewFromInt(59000), decimal.RequireFromString("0.01"))
		require.NoError(t, err)
		require.True(t, order.IsBid())
		require.Equal(t, OrderSideBid, order.Side())
	})

	t.Run("invalid parameters", func(t *testing.T) {
		price := decimal.NewFromInt(59000)
		volume := decimal.RequireFromString("0.01")

		for name, tc := range map[string]struct {
			symbol Symbol
			side   OrderSide
			price  decimal.Decimal
			volume decimal.Decimal
			err    error
		}{
			"unknown symbol": {Symbol(99), OrderSideBid, price, volume, ErrInvalidSymbol},
			"zero symbol": {Symbol(0), OrderSideBid, price, volume, ErrInvalidSymbol},
			"unknown side": {SymbolBTC, OrderSide(99), price, volume, ErrInvalidOrderSide},
			"zero price": {SymbolBTC, OrderSideBid, decimal.Zero, volume, ErrInvalidOrderPrice},
			"negative price": {SymbolBTC, OrderSideBid, decimal.NewFromInt(-1), volume, ErrInvalidOrderPrice},
			"price beyond 2 digits": {SymbolBTC, OrderSideBid, decimal.RequireFromString("59000.123"), volume, ErrInvalidOrderPrice},
			"zero volume": {SymbolBTC, OrderSideBid, price, decimal.Zero, ErrInvalidOrderVolume},
			"negative volume": {SymbolBTC, OrderSideBid, price, decimal.RequireFromString("-0.01"), ErrInvalidOrderVolume},
			"volume beyond 8 digits": {SymbolBTC, OrderSideBid, price, decimal.RequireFromString("0.123456789"), ErrInvalidOrderVolume},
		} {
			t.Run(name, func(t *testing.T) {
				order, err := NewOrder(tc.symbol, tc.side, tc.price, tc.volume)
				require.ErrorIs(t, err, tc.err)
				require.Nil(t, order)
			})
		}
	})
}

func TestOrderSide(t *testing.T) {
	require.True(t, OrderSideAsk.Valid())
	require.True(t, OrderSideBid.Valid())
	require.False(t, OrderSide(0).Valid())

	require.Equal(t, OrderSideBid, OrderSideAsk.Opposite())
	require.Equal(t, OrderSideAsk, OrderSideBid.Opposite())

	require.Equal(t, "ask", OrderSideAsk.String())
	require.Equal(t, "bid", OrderSideBid.String())

	side, err := ParseOrderSide("ask")
	require.NoError(t, err)
	require.Equal(t, OrderSideAsk, side)

	side, err = ParseOrderSide("bid")
	require.NoError(t, err)
	require.Equal(t, OrderSideBid, side)

	_, err = ParseOrderSide("hold")
	require.ErrorIs(t, err, ErrInvalidOrderSide)
}

func TestSymbol(t *testing.T) {
	require.True(t, SymbolBTC.Valid())
	require.Equal(t, "BTC", SymbolBTC.String())

	symbol, err := ParseSymbol("BTC")
	require.NoError(t, err)
	require.Equal(t, SymbolBTC, symbol)

	_, err = ParseSymbol("DOGE")
	require.ErrorIs(t, err, ErrInvalidSymbol)
}
