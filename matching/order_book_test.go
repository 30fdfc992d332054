package matching

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderBookBest(t *testing.T) {
	ob := NewOrderBook()

	_, ok := ob.BestAsk()
	require.False(t, ok)
	_, ok = ob.BestBid()
	require.False(t, ok)

	ob.insert(mustAsk(t, "60100", "0.01"))
	ob.insert(mustAsk(t, "60010", "0.02"))
	ob.insert(mustBid(t, "57600", "0.03"))
	ob.insert(mustBid(t, "58500", "0.04"))

	bestAsk, ok := ob.BestAsk()
	require.True(t, ok)
	require.True(t, bestAsk.Price.Equal(d("60010")))

	bestBid, ok := ob.BestBid()
	require.True(t, ok)
	require.True(t, bestBid.Price.Equal(d("58500")))

	require.Equal(t, 4, ob.Size())
}

func TestOrderBookSnapshot(t *testing.T) {
	ob := NewOrderBook()
	ob.insert(mustAsk(t, "60100", "0.05"))
	ob.insert(mustBid(t, "59000", "0.01"))

	snap := ob.Snapshot()

	// Mutating the book afterwards is invisible through the snapshot.
	ob.insert(mustAsk(t, "60100", "0.05"))
	ob.insert(mustBid(t, "58000", "0.02"))

	requireLevels(t, snap.Asks(), [2]string{"60100", "0.05"})
	requireLevels(t, snap.Bids(), [2]string{"59000", "0.01"})

	// Two consecutive snapshots without intervening mutation are equal.
	a, b := ob.Snapshot(), ob.Snapshot()
	require.Equal(t, a.Asks(), b.Asks())
	require.Equal(t, a.Bids(), b.Bids())
}

func TestOrderBookTop(t *testing.T) {
	ob := NewOrderBook()
	for _, p := range []string{"60010", "60100", "61500"} {
		ob.insert(mustAsk(t, p, "0.01"))
	}
	for _, p := range []string{"58500", "58000", "57600"} {
		ob.insert(mustBid(t, p, "0.01"))
	}

	top := ob.Top(2)
	requireLevels(t, top.Asks(), [2]string{"60010", "0.01"}, [2]string{"60100", "0.01"})
	requireLevels(t, top.Bids(), [2]string{"58500", "0.01"}, [2]string{"58000", "0.01"})

	// A non-positive limit falls back to the default, which here covers
	// the whole book.
	top = ob.Top(0)
	require.Len(t, top.Asks(), 3)
	require.Len(t, top.Bids(), 3)
}

func TestOrderBookMarshalJSON(t *testing.T) {
	ob := NewOrderBook()

	data, err := json.Marshal(ob.Snapshot())
	require.NoError(t, err)
	require.JSONEq(t, `{"asks":[],"bids":[]}`, string(data))

	ob.insert(mustAsk(t, "60100.50", "0.05"))
	ob.insert(mustBid(t, "59000", "0.01"))

	data, err = json.Marshal(ob.Snapshot())
	require.NoError(t, err)

	// Prices and volumes are rendered as plain JSON numbers.
	require.Equal(t,
		`{"asks":[{"price":60100.5,"volume":0.05}],"bids":[{"price":59000,"volume":0.01}]}`,
		string(data))
}
