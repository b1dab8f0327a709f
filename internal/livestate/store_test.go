package livestate

import (
	"auction-engine/internal/clock"
	model "auction-engine/internal/models"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// recorder collects deliveries from a subscription
type recorder[T any] struct {
	mu  sync.Mutex
	got []T
}

func (r *recorder[T]) add(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, v)
}

func (r *recorder[T]) snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.got...)
}

func leader(price, userID string) model.LivePatch {
	return model.LeaderPatch(decimal.RequireFromString(price), model.User{UserID: userID, Name: "name-" + userID})
}

func TestMemoryStore_UpdateMergesAndStamps(t *testing.T) {
	t.Parallel()
	clk := clock.NewManual(start)
	store := NewMemoryStore(clk)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "a1")
	require.NoError(t, err)
	require.False(t, ok)

	st, err := store.Update(ctx, "a1", leader("10.01", "u1"))
	require.NoError(t, err)
	require.Equal(t, "u1", st.CurrentBidderID)
	require.Equal(t, start, st.LastUpdate)

	clk.Advance(time.Second)
	price := decimal.RequireFromString("10.02")
	st, err = store.Update(ctx, "a1", model.LivePatch{CurrentBid: &price})
	require.NoError(t, err)
	require.True(t, price.Equal(st.CurrentBid))
	require.Equal(t, "u1", st.CurrentBidderID, "fields missing from the patch are kept")
	require.Equal(t, start.Add(time.Second), st.LastUpdate)

	got, ok, err := store.Get(ctx, "a1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, st, got)
}

func TestMemoryStore_InvalidateFreezesRecord(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore(clock.NewFixed(start))
	ctx := context.Background()

	_, err := store.Update(ctx, "a1", leader("10.01", "u1"))
	require.NoError(t, err)

	closedAt := start.Add(time.Minute)
	final := model.LiveAuctionState{
		CurrentBid:      decimal.RequireFromString("10.01"),
		CurrentBidderID: "u1",
		ClosedAt:        &closedAt,
	}
	require.NoError(t, store.Invalidate(ctx, "a1", final))

	st, err := store.Update(ctx, "a1", leader("10.02", "u2"))
	require.NoError(t, err)
	require.Equal(t, "u1", st.CurrentBidderID)
	require.NotNil(t, st.ClosedAt)
	require.Equal(t, start, st.LastUpdate)
}

func TestMemoryStore_SubscribeReplaysAndOrders(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore(clock.NewFixed(start))
	ctx := context.Background()

	_, err := store.Update(ctx, "a1", leader("1.00", "u0"))
	require.NoError(t, err)

	var rec recorder[model.LiveAuctionState]
	unsubscribe := store.Subscribe("a1", rec.add)
	defer unsubscribe()

	updates := 50
	for i := 1; i <= updates; i++ {
		_, err := store.Update(ctx, "a1", leader(fmt.Sprintf("1.%02d", i), fmt.Sprintf("u%d", i)))
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool { return len(rec.snapshot()) == updates+1 }, 2*time.Second, 5*time.Millisecond)
	got := rec.snapshot()
	require.Equal(t, "u0", got[0].CurrentBidderID, "current value is replayed first")
	for i := 1; i < len(got); i++ {
		require.True(t, got[i].CurrentBid.GreaterThan(got[i-1].CurrentBid), "deliveries keep store order")
	}
}

func TestMemoryStore_SlowSubscriberDoesNotBlockOthers(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore(clock.NewFixed(start))
	ctx := context.Background()

	release := make(chan struct{})
	unsubSlow := store.Subscribe("a1", func(model.LiveAuctionState) { <-release })
	defer unsubSlow()

	var fast recorder[model.LiveAuctionState]
	unsubFast := store.Subscribe("a1", fast.add)
	defer unsubFast()

	for i := 1; i <= 3; i++ {
		_, err := store.Update(ctx, "a1", leader(fmt.Sprintf("2.%02d", i), "u1"))
		require.NoError(t, err)
	}
	require.Eventually(t, func() bool { return len(fast.snapshot()) == 3 }, 2*time.Second, 5*time.Millisecond)
	close(release)
}

func TestMemoryStore_UnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore(clock.NewFixed(start))
	ctx := context.Background()

	var rec recorder[model.LiveAuctionState]
	unsubscribe := store.Subscribe("a1", rec.add)
	_, err := store.Update(ctx, "a1", leader("1.01", "u1"))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, 2*time.Second, 5*time.Millisecond)

	unsubscribe()
	unsubscribe()
	_, err = store.Update(ctx, "a1", leader("1.02", "u2"))
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	require.Len(t, rec.snapshot(), 1)
}

func TestMemoryStore_TimerFeed(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore(clock.NewFixed(start))
	ctx := context.Background()

	var rec recorder[*model.TimerSnapshot]
	unsubscribe := store.SubscribeTimer("a1", rec.add)
	defer unsubscribe()

	require.NoError(t, store.PublishTimer(ctx, "a1", &model.TimerSnapshot{TimeLeftMs: 15000}))
	require.NoError(t, store.PublishTimer(ctx, "a1", nil))

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, 2*time.Second, 5*time.Millisecond)
	got := rec.snapshot()
	require.Equal(t, int64(15000), got[0].TimeLeftMs)
	require.Nil(t, got[1])
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore(clock.NewFixed(start))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Update(ctx, "a1", leader("1.01", "u1"))
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.PublishTimer(ctx, "a1", nil), context.Canceled)
}
