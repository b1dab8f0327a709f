package bidding

import (
	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/clock"
	"auction-engine/internal/livestate"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
	"context"
	"errors"
	"fmt"
)

// CloseOptions tunes a single close request
type CloseOptions struct {
	// Force skips the timer-expiry check (operator close)
	Force bool
}

// CloseCoordinator moves an auction from open to closed exactly once
type CloseCoordinator struct {
	ledger  repository.Ledger
	live    livestate.Store
	timer   TimerController
	clock   clock.Clock
	retrier *livestate.Retrier
}

// NewCloseCoordinator creates a coordinator. retrier may be nil.
func NewCloseCoordinator(ledger repository.Ledger, live livestate.Store, timer TimerController, clk clock.Clock, retrier *livestate.Retrier) *CloseCoordinator {
	return &CloseCoordinator{
		ledger:  ledger,
		live:    live,
		timer:   timer,
		clock:   clk,
		retrier: retrier,
	}
}

// Close picks the winning bid and freezes the auction.
// The timer hold goes on before the ledger write so no bid can slip in while
// closing; it is lifted again if the ledger refuses the close.
func (c *CloseCoordinator) Close(ctx context.Context, auctionID string, opts CloseOptions) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("close: %w - empty auction ID", biddingerrors.ErrInvalidAuction)
	}
	if !opts.Force && !c.timer.IsExpired(auctionID) {
		return models.Auction{}, fmt.Errorf("close: auction %s: %w", auctionID, biddingerrors.ErrCannotCloseYet)
	}

	auction, err := c.ledger.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("close: failed to load auction %s: %w", auctionID, err)
	}
	if auction.IsClosed() {
		return models.Auction{}, fmt.Errorf("close: auction %s: %w", auctionID, biddingerrors.ErrAlreadyClosed)
	}

	c.timer.Close(ctx, auctionID)

	closed, err := c.ledger.CloseAuction(ctx, auctionID, c.clock.Now())
	if err != nil {
		if !errors.Is(err, biddingerrors.ErrAlreadyClosed) {
			c.timer.CancelClose(context.WithoutCancel(ctx), auctionID)
		}
		if biddingerrors.IsDomain(err) {
			return models.Auction{}, fmt.Errorf("close: auction %s: %w", auctionID, err)
		}
		return models.Auction{}, fmt.Errorf("close: auction %s: %w: %w", auctionID, biddingerrors.ErrLedgerWriteFailed, err)
	}

	winning, err := c.ledger.LastBid(ctx, auctionID)
	if err != nil {
		utils.Warn("close: failed to load winning bid name", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
	}
	if err := c.live.Invalidate(ctx, auctionID, closedSnapshot(closed, winning)); err != nil {
		utils.Warn("close: live store invalidate failed", map[string]any{
			"auction_id": auctionID,
			"error":      fmt.Errorf("%w: %w", biddingerrors.ErrLiveStoreWriteFailed, err).Error(),
		})
		c.healClosed(closed, winning)
	}

	utils.Info("auction closed", map[string]any{
		"auction_id": auctionID,
		"winner_id":  *closed.WinnerID,
		"price":      closed.Price.String(),
		"forced":     opts.Force,
	})
	return closed, nil
}

// healClosed retries the invalidate; the closed snapshot can never go stale
func (c *CloseCoordinator) healClosed(closed models.Auction, winning models.Bid) {
	if c.retrier == nil {
		return
	}
	snap := closedSnapshot(closed, winning)
	c.retrier.Go(closed.AuctionID, func(ctx context.Context) error {
		return c.live.Invalidate(ctx, closed.AuctionID, snap)
	})
}
