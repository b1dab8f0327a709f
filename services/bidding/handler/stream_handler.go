package handler

import (
	"io"

	model "auction-engine/internal/models"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// SSE event names
const (
	EventAuction = "auction"
	EventTimer   = "timer"
)

// LiveFeedHandler handles GET /auctions/:auction_id/live.
// The stream starts with the current record and ends after the closed snapshot.
func (h *BiddingHandler) LiveFeedHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	ctx := c.Request.Context()

	// rebuilds the record from the ledger if the store lost it
	if _, err := h.service.LiveState(ctx, auctionID); err != nil {
		respondError(c, "LiveFeedHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	events := make(chan model.LiveAuctionState, 16)
	unsubscribe := h.feeds.Subscribe(auctionID, func(st model.LiveAuctionState) {
		select {
		case events <- st:
		case <-ctx.Done():
		}
	})
	defer unsubscribe()

	utils.Debug("live feed opened", map[string]any{"auction_id": auctionID})
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case st := <-events:
			c.SSEvent(EventAuction, st)
			return st.ClosedAt == nil
		}
	})
	utils.Debug("live feed closed", map[string]any{"auction_id": auctionID})
}

// TimerFeedHandler handles GET /auctions/:auction_id/timer.
// Every change is sent as the time left right now; null means no running countdown.
func (h *BiddingHandler) TimerFeedHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	ctx := c.Request.Context()

	changed := make(chan struct{}, 1)
	unsubscribe := h.feeds.SubscribeTimer(auctionID, func(*model.TimerSnapshot) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	first := true
	c.Stream(func(w io.Writer) bool {
		if !first {
			select {
			case <-ctx.Done():
				return false
			case <-changed:
			}
		}
		first = false
		if snap := h.timerSnapshot(auctionID); snap != nil {
			c.SSEvent(EventTimer, snap)
		} else {
			c.SSEvent(EventTimer, "null")
		}
		return true
	})
}

func (h *BiddingHandler) timerSnapshot(auctionID string) *model.TimerSnapshot {
	left, ok := h.timers.Remaining(auctionID)
	if !ok {
		return nil
	}
	return &model.TimerSnapshot{TimeLeftMs: left.Milliseconds()}
}
