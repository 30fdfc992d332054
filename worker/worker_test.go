package worker

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/coindee/coindee-matching-engine/matching"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestWorker(t *testing.T) *Worker {
	t.Helper()
	w := New(Options{Logger: quietLogger()})
	t.Cleanup(w.Close)
	return w
}

func bid(t *testing.T, price, volume string) *matching.Order {
	t.Helper()
	order, err := matching.NewBid(matching.SymbolBTC, decimal.RequireFromString(price), decimal.RequireFromString(volume))
	require.NoError(t, err)
	return order
}

func ask(t *testing.T, price, volume string) *matching.Order {
	t.Helper()
	order, err := matching.NewAsk(matching.SymbolBTC, decimal.RequireFromString(price), decimal.RequireFromString(volume))
	require.NoError(t, err)
	return order
}

func TestWorkerProcessOrderAndSnapshot(t *testing.T) {
	w := newTestWorker(t)

	require.NoError(t, w.ProcessOrder(bid(t, "59000", "0.01")))
	require.NoError(t, w.ProcessOrder(ask(t, "60100", "0.05")))
	require.NoError(t, w.ProcessOrder(bid(t, "60100", "0.02")))

	// The snapshot query runs behind the orders in the same queue, so it
	// observes all of them.
	book, err := w.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, book.Asks(), 1)
	require.True(t, book.Asks()[0].Price.Equal(decimal.RequireFromString("60100")))
	require.True(t, book.Asks()[0].Volume.Equal(decimal.RequireFromString("0.03")))
	require.Len(t, book.Bids(), 1)
	require.True(t, book.Bids()[0].Price.Equal(decimal.RequireFromString("59000")))
}

func TestWorkerSnapshotTimeout(t *testing.T) {
	w := newTestWorker(t)

	// Stall the worker goroutine so the snapshot reply cannot arrive.
	gate := make(chan struct{})
	require.NoError(t, w.submit(context.Background(), func(*matching.Engine) { <-gate }))
	defer close(gate)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := w.Snapshot(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWorkerSubscribeChanges(t *testing.T) {
	w := newTestWorker(t)

	ch, unsubscribe, err := w.SubscribeChanges(4)
	require.NoError(t, err)

	require.NoError(t, w.ProcessOrder(bid(t, "59000", "0.01")))

	select {
	case book := <-ch:
		require.Len(t, book.Bids(), 1)
		require.True(t, book.Bids()[0].Price.Equal(decimal.RequireFromString("59000")))
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification received")
	}

	// Synchronize past the unsubscription task, then verify no further
	// updates are delivered.
	unsubscribe()
	_, err = w.Snapshot(context.Background())
	require.NoError(t, err)

	require.NoError(t, w.ProcessOrder(bid(t, "58000", "0.01")))
	_, err = w.Snapshot(context.Background())
	require.NoError(t, err)

	select {
	case <-ch:
		t.Fatal("received update after unsubscribing")
	default:
	}

	// Unsubscribing twice is a no-op.
	unsubscribe()
}

func TestWorkerSubscribeChangesDropsOldest(t *testing.T) {
	w := newTestWorker(t)

	ch, unsubscribe, err := w.SubscribeChanges(1)
	require.NoError(t, err)
	defer unsubscribe()

	require.NoError(t, w.ProcessOrder(bid(t, "59000", "0.01")))
	require.NoError(t, w.ProcessOrder(bid(t, "58000", "0.01")))

	// Barrier: both orders are processed before reading.
	_, err = w.Snapshot(context.Background())
	require.NoError(t, err)

	// The single-slot channel kept only the newest book.
	book := <-ch
	require.Len(t, book.Bids(), 2)

	select {
	case <-ch:
		t.Fatal("stale update was not dropped")
	default:
	}
}

func TestWorkerClose(t *testing.T) {
	w := New(Options{Logger: quietLogger()})
	w.Close()

	require.ErrorIs(t, w.ProcessOrder(bid(t, "59000", "0.01")), ErrClosed)

	_, err := w.Snapshot(context.Background())
	require.ErrorIs(t, err, ErrClosed)

	_, _, err = w.SubscribeChanges(1)
	require.ErrorIs(t, err, ErrClosed)

	// Closing twice is a no-op.
	w.Close()
}
