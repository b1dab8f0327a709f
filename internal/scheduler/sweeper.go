package scheduler

import (
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/clock"
	"auction-engine/internal/models"
	"auction-engine/utils"
	"context"
	"errors"
	"time"
)

// OpenAuctionLister is the slice of the ledger the sweeper reads
type OpenAuctionLister interface {
	ListOpenAuctions(ctx context.Context) ([]models.Auction, error)
}

// Timers is the slice of the timer controller the sweeper needs
type Timers interface {
	IsExpired(auctionID string) bool
	Arm(ctx context.Context, auctionID string, expiresAt time.Time)
}

// Closer closes one auction
type Closer interface {
	Close(ctx context.Context, auctionID string, opts bidding.CloseOptions) (models.Auction, error)
}

// Sweeper periodically closes open auctions whose countdown ran out.
// An expired auction without bids gets a fresh countdown when rearm is set,
// otherwise it stays open and expired until an operator steps in.
type Sweeper struct {
	ledger   OpenAuctionLister
	timers   Timers
	closer   Closer
	clock    clock.Clock
	interval time.Duration
	rearm    time.Duration
}

type Option func(*Sweeper)

func WithInterval(d time.Duration) Option {
	return func(s *Sweeper) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithRearm re-arms expired auctions that have no bids for d; zero disables it
func WithRearm(d time.Duration) Option {
	return func(s *Sweeper) {
		s.rearm = d
	}
}

func NewSweeper(ledger OpenAuctionLister, timers Timers, closer Closer, clk clock.Clock, opts ...Option) *Sweeper {
	s := &Sweeper{
		ledger:   ledger,
		timers:   timers,
		closer:   closer,
		clock:    clk,
		interval: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run sweeps every interval until ctx is done
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	utils.Info("close sweeper started", map[string]any{"interval": s.interval.String()})
	for {
		select {
		case <-ctx.Done():
			utils.Info("close sweeper stopped", nil)
			return nil
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
				utils.Error("close sweep failed", map[string]any{"error": err.Error()})
			}
		}
	}
}

// SweepOnce closes every expired open auction and reports how many closed
func (s *Sweeper) SweepOnce(ctx context.Context) (int, error) {
	open, err := s.ledger.ListOpenAuctions(ctx)
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, a := range open {
		if ctx.Err() != nil {
			return closed, ctx.Err()
		}
		if !s.timers.IsExpired(a.AuctionID) {
			continue
		}

		_, err := s.closer.Close(ctx, a.AuctionID, bidding.CloseOptions{})
		switch {
		case err == nil:
			closed++
		case errors.Is(err, biddingerrors.ErrNoBids):
			if s.rearm > 0 {
				s.timers.Arm(ctx, a.AuctionID, s.clock.Now().Add(s.rearm))
				utils.Info("auction re-armed without bids", map[string]any{
					"auction_id": a.AuctionID,
					"rearm":      s.rearm.String(),
				})
			}
		case errors.Is(err, biddingerrors.ErrAlreadyClosed), errors.Is(err, biddingerrors.ErrCannotCloseYet):
			// another closer or a late bid got there first
		default:
			utils.Error("sweeper failed to close auction", map[string]any{
				"auction_id": a.AuctionID,
				"error":      err.Error(),
			})
		}
	}
	return closed, nil
}
