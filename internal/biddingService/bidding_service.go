package bidding

import (
	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/clock"
	"auction-engine/internal/livestate"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/internal/timer"
	"auction-engine/utils"
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultIncrement is the fixed step between consecutive bids
var DefaultIncrement = decimal.New(1, -2)

// DefaultInitialTimer is the countdown a new auction starts with
const DefaultInitialTimer = 60 * time.Second

// TimerController is the countdown authority the bidding flow depends on
type TimerController interface {
	Arm(ctx context.Context, auctionID string, expiresAt time.Time)
	Touch(ctx context.Context, auctionID string) (timer.Touch, error)
	CancelTouch(ctx context.Context, auctionID string, t timer.Touch)
	IsExpired(auctionID string) bool
	Close(ctx context.Context, auctionID string)
	CancelClose(ctx context.Context, auctionID string)
}

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	ledger       repository.Ledger
	live         livestate.Store
	timer        TimerController
	clock        clock.Clock
	increment    decimal.Decimal
	initialTimer time.Duration
	retrier      *livestate.Retrier

	// reconciles of one auction run one at a time, so the last to run read the latest ledger state
	reconcileLocks [64]sync.Mutex
}

type Option func(*BiddingService)

func WithIncrement(inc decimal.Decimal) Option {
	return func(s *BiddingService) {
		if inc.IsPositive() {
			s.increment = inc
		}
	}
}

func WithInitialTimer(d time.Duration) Option {
	return func(s *BiddingService) {
		if d > 0 {
			s.initialTimer = d
		}
	}
}

// WithRetrier heals failed live-store writes in the background.
// Without one, failures are only logged until the next bid or reconcile.
func WithRetrier(r *livestate.Retrier) Option {
	return func(s *BiddingService) {
		s.retrier = r
	}
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(ledger repository.Ledger, live livestate.Store, timer TimerController, clk clock.Clock, opts ...Option) *BiddingService {
	s := &BiddingService{
		ledger:       ledger,
		live:         live,
		timer:        timer,
		clock:        clk,
		increment:    DefaultIncrement,
		initialTimer: DefaultInitialTimer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MakeBid places the next bid on auctionID for user.
// The timer is touched first; everything after a successful touch that fails
// gives the touch back. The ledger transaction is the final word on price,
// leader and credits; the live store is told optimistically and corrected after.
func (s *BiddingService) MakeBid(ctx context.Context, auctionID string, user models.User) (models.Bid, error) {
	if auctionID == "" || user.UserID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing auctionID or userID", biddingerrors.ErrInvalidBid)
	}

	touch, err := s.timer.Touch(ctx, auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: touch timer for %s: %w: %w", auctionID, biddingerrors.ErrTimerTouchFailed, err)
	}
	if !touch.Success {
		return models.Bid{}, fmt.Errorf("service: auction %s: %w", auctionID, biddingerrors.ErrAuctionClosed)
	}

	committed := false
	defer func() {
		if !committed {
			s.timer.CancelTouch(context.WithoutCancel(ctx), auctionID, touch)
		}
	}()

	auction, err := s.ledger.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	now := s.clock.Now()
	if auction.IsClosed() {
		return models.Bid{}, fmt.Errorf("service: auction %s: %w", auctionID, biddingerrors.ErrAuctionClosed)
	}
	if now.Before(auction.StartAt) {
		return models.Bid{}, fmt.Errorf("service: auction %s starts at %s: %w", auctionID, auction.StartAt.Format(time.RFC3339), biddingerrors.ErrAuctionNotStarted)
	}

	credits, err := s.ledger.GetCredits(ctx, user.UserID, auction.CampaignID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load credits for user %s: %w", user.UserID, err)
	}
	if credits.Amount < 1 {
		return models.Bid{}, fmt.Errorf("service: user %s in campaign %s: %w", user.UserID, auction.CampaignID, biddingerrors.ErrInsufficientCredits)
	}

	leader, err := s.currentLeader(ctx, auction)
	if err != nil {
		return models.Bid{}, err
	}
	if leader.CurrentBidderID == user.UserID {
		return models.Bid{}, fmt.Errorf("service: user %s on %s: %w", user.UserID, auctionID, biddingerrors.ErrAlreadyHighestBidder)
	}

	optimistic := leader.CurrentBid.Add(s.increment)
	s.publish(ctx, auctionID, models.LeaderPatch(optimistic, user))

	bid, err := s.ledger.CommitBid(ctx, models.BidCommit{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		UserID:    user.UserID,
		Name:      user.Name,
		Increment: s.increment,
		CreatedAt: now,
	})
	if err != nil {
		s.reconcileNow(ctx, auctionID)
		if biddingerrors.IsDomain(err) {
			return models.Bid{}, fmt.Errorf("service: failed to commit bid on %s by user %s: %w", auctionID, user.UserID, err)
		}
		return models.Bid{}, fmt.Errorf("service: commit bid on %s: %w: %w", auctionID, biddingerrors.ErrLedgerWriteFailed, err)
	}
	committed = true

	if !bid.Price.Equal(optimistic) {
		s.publish(ctx, auctionID, models.LeaderPatch(bid.Price, user))
	}
	// optimistic writes of racing bids can land in any order; settle on the ledger's leader
	s.heal(auctionID)

	utils.Debug("bid committed", map[string]any{
		"auction_id": auctionID,
		"user_id":    user.UserID,
		"price":      bid.Price.String(),
	})
	return bid, nil
}

// currentLeader reads the leader from the live store, falling back to the
// ledger when the live record is missing, closed or behind the ledger price.
func (s *BiddingService) currentLeader(ctx context.Context, auction models.Auction) (models.LiveAuctionState, error) {
	st, ok, err := s.live.Get(ctx, auction.AuctionID)
	if err != nil {
		utils.Warn("live store read failed, using ledger", map[string]any{
			"auction_id": auction.AuctionID,
			"error":      err.Error(),
		})
	}
	if err == nil && ok && st.ClosedAt == nil && !st.CurrentBid.LessThan(auction.Price) {
		return st, nil
	}

	cold := models.LiveAuctionState{CurrentBid: auction.Price}
	last, err := s.ledger.LastBid(ctx, auction.AuctionID)
	switch {
	case errors.Is(err, biddingerrors.ErrNoBids):
		return cold, nil
	case err != nil:
		return models.LiveAuctionState{}, fmt.Errorf("service: failed to load last bid for %s: %w", auction.AuctionID, err)
	}
	cold.CurrentBidderID = last.UserID
	cold.CurrentBidderName = last.Name
	return cold, nil
}

// Reconcile rewrites the live record from the ledger: the latest bid while
// open, the closed snapshot once closed.
func (s *BiddingService) Reconcile(ctx context.Context, auctionID string) error {
	mu := s.reconcileLock(auctionID)
	mu.Lock()
	defer mu.Unlock()

	auction, err := s.ledger.GetAuction(ctx, auctionID)
	if err != nil {
		return fmt.Errorf("service: reconcile %s: %w", auctionID, err)
	}

	last, err := s.ledger.LastBid(ctx, auctionID)
	hasBid := err == nil
	if err != nil && !errors.Is(err, biddingerrors.ErrNoBids) {
		return fmt.Errorf("service: reconcile %s: %w", auctionID, err)
	}

	if auction.IsClosed() {
		return s.live.Invalidate(ctx, auctionID, closedSnapshot(auction, last))
	}

	price := auction.Price
	bidderID, name, image := "", "", ""
	patch := models.LivePatch{
		CurrentBid:         &price,
		CurrentBidderID:    &bidderID,
		CurrentBidderName:  &name,
		CurrentBidderImage: &image,
	}
	if hasBid {
		price, bidderID, name = last.Price, last.UserID, last.Name
		// the ledger doesn't keep avatars; keep the one on record if the leader is unchanged
		if cur, ok, err := s.live.Get(ctx, auctionID); err == nil && ok && cur.CurrentBidderID == last.UserID {
			patch.CurrentBidderImage = nil
		}
	}

	if _, err := s.live.Update(ctx, auctionID, patch); err != nil {
		return fmt.Errorf("service: reconcile %s: %w: %w", auctionID, biddingerrors.ErrLiveStoreWriteFailed, err)
	}
	return nil
}

func (s *BiddingService) reconcileLock(auctionID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(auctionID))
	return &s.reconcileLocks[h.Sum32()%uint32(len(s.reconcileLocks))]
}

// reconcileNow repairs the live record right away, handing over to the
// retrier if the store is still failing.
func (s *BiddingService) reconcileNow(ctx context.Context, auctionID string) {
	if err := s.Reconcile(context.WithoutCancel(ctx), auctionID); err != nil {
		utils.Warn("live store reconcile failed", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		s.heal(auctionID)
	}
}

// heal schedules a background reconcile. It re-reads the ledger on every
// attempt, so no stale patch is ever replayed.
func (s *BiddingService) heal(auctionID string) {
	if s.retrier == nil {
		return
	}
	s.retrier.Go(auctionID, func(ctx context.Context) error {
		return s.Reconcile(ctx, auctionID)
	})
}

// publish is best effort: a failed write is logged and healed, never returned
func (s *BiddingService) publish(ctx context.Context, auctionID string, patch models.LivePatch) {
	if _, err := s.live.Update(ctx, auctionID, patch); err != nil {
		utils.Warn("live store write failed", map[string]any{
			"auction_id": auctionID,
			"error":      fmt.Errorf("%w: %w", biddingerrors.ErrLiveStoreWriteFailed, err).Error(),
		})
		s.heal(auctionID)
	}
}

func closedSnapshot(auction models.Auction, winning models.Bid) models.LiveAuctionState {
	st := models.LiveAuctionState{
		CurrentBid: auction.Price,
		ClosedAt:   auction.ClosedAt,
	}
	if auction.WinnerID != nil {
		st.CurrentBidderID = *auction.WinnerID
	}
	if winning.UserID == st.CurrentBidderID {
		st.CurrentBidderName = winning.Name
	}
	return st
}
