package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/clock"
	"auction-engine/internal/livestate"
	model "auction-engine/internal/models"
	"auction-engine/internal/timer"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type sseEvent struct {
	name string
	data string
}

// readEvent reads one server-sent event off the stream
func readEvent(t *testing.T, r *bufio.Reader) sseEvent {
	t.Helper()
	var ev sseEvent
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			if ev.name != "" {
				return ev
			}
		case strings.HasPrefix(line, "event:"):
			ev.name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			ev.data += strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}
}

type streamFixture struct {
	service *MockBiddingServiceInterface
	live    *livestate.MemoryStore
	timer   *timer.Controller
	clock   *clock.Manual
	server  *httptest.Server
}

func newStreamFixture(t *testing.T) *streamFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	clk := clock.NewManual(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	live := livestate.NewMemoryStore(clk)
	tc := timer.New(clk, live)
	service := NewMockBiddingServiceInterface(ctrl)

	handler := NewBiddingHandler(service, NewMockAuctionCloser(ctrl), live, tc)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:auction_id/live", handler.LiveFeedHandler)
	router.GET("/auctions/:auction_id/timer", handler.TimerFeedHandler)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &streamFixture{service: service, live: live, timer: tc, clock: clk, server: srv}
}

func (f *streamFixture) open(t *testing.T, ctx context.Context, path string) (*http.Response, *bufio.Reader) {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.server.URL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp, bufio.NewReader(resp.Body)
}

func TestLiveFeedHandler_StreamsUntilClosed(t *testing.T) {
	t.Parallel()
	f := newStreamFixture(t)
	ctx := context.Background()

	price := dec("10.00")
	_, err := f.live.Update(ctx, "a1", model.LivePatch{CurrentBid: &price})
	require.NoError(t, err)
	f.service.EXPECT().LiveState(gomock.Any(), "a1").Return(model.LiveAuctionState{CurrentBid: price}, nil)

	resp, r := f.open(t, ctx, "/auctions/a1/live")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	var st model.LiveAuctionState
	first := readEvent(t, r)
	require.Equal(t, EventAuction, first.name)
	require.NoError(t, json.Unmarshal([]byte(first.data), &st))
	require.True(t, price.Equal(st.CurrentBid))

	_, err = f.live.Update(ctx, "a1", model.LeaderPatch(dec("10.01"), model.User{UserID: "alice", Name: "Alice"}))
	require.NoError(t, err)
	next := readEvent(t, r)
	require.NoError(t, json.Unmarshal([]byte(next.data), &st))
	require.Equal(t, "alice", st.CurrentBidderID)
	require.True(t, dec("10.01").Equal(st.CurrentBid))

	closedAt := f.clock.Now()
	require.NoError(t, f.live.Invalidate(ctx, "a1", model.LiveAuctionState{
		CurrentBid:      dec("10.01"),
		CurrentBidderID: "alice",
		ClosedAt:        &closedAt,
	}))
	final := readEvent(t, r)
	require.NoError(t, json.Unmarshal([]byte(final.data), &st))
	require.NotNil(t, st.ClosedAt)

	// the server ends the stream after the closed snapshot
	_, err = r.ReadString('\n')
	require.Error(t, err)
}

func TestLiveFeedHandler_UnknownAuction(t *testing.T) {
	t.Parallel()
	f := newStreamFixture(t)

	f.service.EXPECT().LiveState(gomock.Any(), "nope").Return(model.LiveAuctionState{}, biddingerrors.ErrAuctionNotFound)

	resp, _ := f.open(t, context.Background(), "/auctions/nope/live")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTimerFeedHandler(t *testing.T) {
	t.Parallel()
	f := newStreamFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.timer.Arm(ctx, "a1", f.clock.Now().Add(30*time.Second))

	_, r := f.open(t, ctx, "/auctions/a1/timer")

	// the replayed arm and the opening snapshot may both arrive; both carry the fresh value
	var snap model.TimerSnapshot
	ev := readEvent(t, r)
	require.Equal(t, EventTimer, ev.name)
	require.NoError(t, json.Unmarshal([]byte(ev.data), &snap))
	require.Equal(t, int64(30000), snap.TimeLeftMs)

	f.timer.Close(ctx, "a1")
	for i := 0; ; i++ {
		require.Less(t, i, 3, "closing hold never reached the feed")
		if ev := readEvent(t, r); ev.data == "null" {
			break
		}
	}
}

func TestTimerFeedHandler_UnknownTimerIsNull(t *testing.T) {
	t.Parallel()
	f := newStreamFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, r := f.open(t, ctx, "/auctions/ghost/timer")
	ev := readEvent(t, r)
	require.Equal(t, EventTimer, ev.name)
	require.Equal(t, "null", ev.data)
}
