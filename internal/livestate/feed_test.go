package livestate

import (
	"auction-engine/internal/clock"
	model "auction-engine/internal/models"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func topicCount[T any](f *feed[T]) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.topics)
}

func pendingFor[T any](f *feed[T], key string) []int {
	t := f.acquire(key, false)
	if t == nil {
		return nil
	}
	defer t.mu.Unlock()
	var out []int
	for _, s := range t.subs {
		out = append(out, s.pending())
	}
	return out
}

func TestMemoryStore_UnknownAuctionsHoldNoTopics(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore(clock.NewFixed(start))
	ctx := context.Background()

	for i := 0; i < 500; i++ {
		key := fmt.Sprintf("ghost-%d", i)
		_, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		require.False(t, ok)

		store.Subscribe(key, func(model.LiveAuctionState) {})()
		store.SubscribeTimer(key, func(*model.TimerSnapshot) {})()
	}

	require.Zero(t, topicCount(store.states))
	require.Zero(t, topicCount(store.timers))
}

func TestMemoryStore_TopicLifetime(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore(clock.NewFixed(start))
	ctx := context.Background()

	tests := []struct {
		name       string
		run        func(t *testing.T)
		wantStates int
		wantTimers int
	}{
		{
			name: "stopped_timer_without_subscribers",
			run: func(t *testing.T) {
				require.NoError(t, store.PublishTimer(ctx, "t1", nil))
			},
		},
		{
			name: "running_timer_is_kept",
			run: func(t *testing.T) {
				require.NoError(t, store.PublishTimer(ctx, "t2", &model.TimerSnapshot{TimeLeftMs: 1000}))
			},
			wantTimers: 1,
		},
		{
			name: "running_timer_outlives_subscriber",
			run: func(t *testing.T) {
				store.SubscribeTimer("t2", func(*model.TimerSnapshot) {})()
			},
			wantTimers: 1,
		},
		{
			name: "stopped_timer_is_released",
			run: func(t *testing.T) {
				require.NoError(t, store.PublishTimer(ctx, "t2", nil))
			},
		},
		{
			name: "stopped_timer_is_released_by_last_subscriber",
			run: func(t *testing.T) {
				unsubscribe := store.SubscribeTimer("t3", func(*model.TimerSnapshot) {})
				require.NoError(t, store.PublishTimer(ctx, "t3", nil))
				require.Equal(t, 1, topicCount(store.timers))
				unsubscribe()
			},
		},
		{
			name: "live_record_outlives_subscriber",
			run: func(t *testing.T) {
				_, err := store.Update(ctx, "a1", leader("1.01", "u1"))
				require.NoError(t, err)
				store.Subscribe("a1", func(model.LiveAuctionState) {})()
			},
			wantStates: 1,
		},
		{
			name: "closed_record_is_kept",
			run: func(t *testing.T) {
				closedAt := start
				require.NoError(t, store.Invalidate(ctx, "a1", model.LiveAuctionState{ClosedAt: &closedAt}))
			},
			wantStates: 1,
		},
	}

	// steps share one store and run in order
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.run(t)
			require.Equal(t, tc.wantStates, topicCount(store.states))
			require.Equal(t, tc.wantTimers, topicCount(store.timers))
		})
	}
}

func TestFeed_StalledSubscriberKeepsLatestOnly(t *testing.T) {
	t.Parallel()
	f := newFeed[int](nil)

	release := make(chan struct{})
	var rec recorder[int]
	unsubscribe := f.subscribe("k", func(v int) {
		<-release
		rec.add(v)
	})
	defer unsubscribe()

	updates := 10 * maxPending
	for i := 1; i <= updates; i++ {
		f.update("k", func(int, bool) (int, bool) { return i, true })
	}

	for _, n := range pendingFor(f, "k") {
		require.LessOrEqual(t, n, maxPending)
	}

	close(release)
	require.Eventually(t, func() bool {
		got := rec.snapshot()
		return len(got) > 0 && got[len(got)-1] == updates
	}, 2*time.Second, 5*time.Millisecond)

	got := rec.snapshot()
	require.Less(t, len(got), updates, "backlog was coalesced")
	for i := 1; i < len(got); i++ {
		require.Greater(t, got[i], got[i-1], "order is kept")
	}
}
