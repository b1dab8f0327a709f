package bidding

import (
	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/models"
	"auction-engine/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreateAuctionInput is what an operator supplies for a new auction
type CreateAuctionInput struct {
	Name          string
	Description   string
	StartingPrice decimal.Decimal
	CampaignID    string
	CompanyID     string
	StartAt       time.Time     // zero means now
	Duration      time.Duration // countdown after StartAt; zero uses the configured initial timer
}

// ActiveBidder is one distinct user among the most recent bids
type ActiveBidder struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// Winner is the closed auction's winner, or the current leader while open
type Winner struct {
	UserID string          `json:"user_id"`
	Price  decimal.Decimal `json:"price"`
	Closed bool            `json:"closed"`
}

// CreateAuction stores a new auction, seeds its live record and arms its timer
func (s *BiddingService) CreateAuction(ctx context.Context, in CreateAuctionInput) (models.Auction, error) {
	if strings.TrimSpace(in.Name) == "" || in.CampaignID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing name or campaignID", biddingerrors.ErrInvalidAuction)
	}
	if in.StartingPrice.IsNegative() {
		return models.Auction{}, fmt.Errorf("service: %w - negative starting price", biddingerrors.ErrInvalidAuction)
	}
	if in.Duration < 0 {
		return models.Auction{}, fmt.Errorf("service: %w - negative duration", biddingerrors.ErrInvalidAuction)
	}

	now := s.clock.Now()
	startAt := in.StartAt
	if startAt.IsZero() {
		startAt = now
	}
	duration := in.Duration
	if duration == 0 {
		duration = s.initialTimer
	}

	auction := models.Auction{
		AuctionID:     utils.GenerateID(),
		Name:          in.Name,
		Description:   in.Description,
		StartingPrice: in.StartingPrice,
		Price:         in.StartingPrice,
		CampaignID:    in.CampaignID,
		CompanyID:     in.CompanyID,
		StartAt:       startAt.UTC(),
		CreatedAt:     now,
	}
	if err := s.ledger.CreateAuction(ctx, auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction: %w", err)
	}

	price := auction.Price
	s.publish(ctx, auction.AuctionID, models.LivePatch{CurrentBid: &price})
	s.timer.Arm(ctx, auction.AuctionID, auction.StartAt.Add(duration))

	utils.Info("auction created", map[string]any{
		"auction_id":  auction.AuctionID,
		"campaign_id": auction.CampaignID,
		"start_at":    auction.StartAt,
		"expires_in":  duration.String(),
	})
	return auction, nil
}

// RestoreTimers arms a fresh countdown and rebuilds the live record for every
// open auction. Timers are process memory, so this runs once at boot.
func (s *BiddingService) RestoreTimers(ctx context.Context) (int, error) {
	open, err := s.ledger.ListOpenAuctions(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: failed to list open auctions: %w", err)
	}

	now := s.clock.Now()
	for _, a := range open {
		from := now
		if a.StartAt.After(now) {
			from = a.StartAt
		}
		s.timer.Arm(ctx, a.AuctionID, from.Add(s.initialTimer))
		s.reconcileNow(ctx, a.AuctionID)
	}
	return len(open), nil
}

// GetAuction returns the ledger row
func (s *BiddingService) GetAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", biddingerrors.ErrInvalidBid)
	}
	auction, err := s.ledger.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// RecordView bumps the auction's view counter
func (s *BiddingService) RecordView(ctx context.Context, auctionID string) (int64, error) {
	if auctionID == "" {
		return 0, fmt.Errorf("service: %w - empty auction ID", biddingerrors.ErrInvalidBid)
	}
	views, err := s.ledger.IncrementViews(ctx, auctionID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to record view on %s: %w", auctionID, err)
	}
	return views, nil
}

// GetBidsForAuction returns bids newest first; take <= 0 means all
func (s *BiddingService) GetBidsForAuction(ctx context.Context, auctionID string, take int) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", biddingerrors.ErrInvalidBid)
	}

	bids, err := s.ledger.GetBidsByAuction(ctx, auctionID, take)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}

	return bids, nil
}

// LastBid returns the most recent bid
func (s *BiddingService) LastBid(ctx context.Context, auctionID string) (models.Bid, error) {
	if auctionID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty auction ID", biddingerrors.ErrInvalidBid)
	}

	bid, err := s.ledger.LastBid(ctx, auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get last bid for auction %s: %w", auctionID, err)
	}

	return bid, nil
}

// ActiveBidders returns up to take distinct users from the newest bids
func (s *BiddingService) ActiveBidders(ctx context.Context, auctionID string, take int) ([]ActiveBidder, error) {
	if take <= 0 {
		return nil, fmt.Errorf("service: %w - take must be positive", biddingerrors.ErrInvalidBid)
	}
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", biddingerrors.ErrInvalidBid)
	}

	bids, err := s.ledger.RecentBidders(ctx, auctionID, take)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bidders for auction %s: %w", auctionID, err)
	}

	out := make([]ActiveBidder, 0, len(bids))
	for _, b := range bids {
		out = append(out, ActiveBidder{UserID: b.UserID, Name: b.Name})
	}
	return out, nil
}

// CurrentWinner returns the winner of a closed auction, otherwise the leader so far
func (s *BiddingService) CurrentWinner(ctx context.Context, auctionID string) (Winner, error) {
	auction, err := s.GetAuction(ctx, auctionID)
	if err != nil {
		return Winner{}, err
	}
	if auction.IsClosed() {
		return Winner{UserID: *auction.WinnerID, Price: auction.Price, Closed: true}, nil
	}

	bid, err := s.ledger.WinningBid(ctx, auctionID)
	if err != nil {
		return Winner{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}
	return Winner{UserID: bid.UserID, Price: bid.Price}, nil
}

// AuctionsWonBy returns every auction userID has won
func (s *BiddingService) AuctionsWonBy(ctx context.Context, userID string) ([]models.Auction, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", biddingerrors.ErrInvalidBid)
	}

	auctions, err := s.ledger.AuctionsWonBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auctions won by user %s: %w", userID, err)
	}

	return auctions, nil
}

// GetCredits returns the user's bid balance in a campaign
func (s *BiddingService) GetCredits(ctx context.Context, userID, campaignID string) (models.UserCredits, error) {
	if userID == "" || campaignID == "" {
		return models.UserCredits{}, fmt.Errorf("service: %w - missing userID or campaignID", biddingerrors.ErrInvalidCredits)
	}
	credits, err := s.ledger.GetCredits(ctx, userID, campaignID)
	if err != nil {
		return models.UserCredits{}, fmt.Errorf("service: failed to get credits: %w", err)
	}
	return credits, nil
}

// GrantCredits adds purchased credits; called by the payment collaborator
func (s *BiddingService) GrantCredits(ctx context.Context, userID, campaignID string, amount int64) (models.UserCredits, error) {
	if userID == "" || campaignID == "" {
		return models.UserCredits{}, fmt.Errorf("service: %w - missing userID or campaignID", biddingerrors.ErrInvalidCredits)
	}
	credits, err := s.ledger.GrantCredits(ctx, userID, campaignID, amount)
	if err != nil {
		return models.UserCredits{}, fmt.Errorf("service: failed to grant credits: %w", err)
	}

	utils.Info("credits granted", map[string]any{
		"user_id":     userID,
		"campaign_id": campaignID,
		"amount":      amount,
		"balance":     credits.Amount,
	})
	return credits, nil
}

// SumBidsForCampaign adds up the prices of every bid placed in the campaign
func (s *BiddingService) SumBidsForCampaign(ctx context.Context, campaignID string) (decimal.Decimal, error) {
	if campaignID == "" {
		return decimal.Zero, fmt.Errorf("service: %w - empty campaign ID", biddingerrors.ErrInvalidBid)
	}
	sum, err := s.ledger.SumBidsForCampaign(ctx, campaignID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("service: failed to sum bids for campaign %s: %w", campaignID, err)
	}
	return sum, nil
}

// CountClosedAuctions returns how many auctions completed
func (s *BiddingService) CountClosedAuctions(ctx context.Context) (int, error) {
	count, err := s.ledger.CountClosedAuctions(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: failed to count closed auctions: %w", err)
	}
	return count, nil
}

// LiveState returns the live record, rebuilding it from the ledger when the store has none
func (s *BiddingService) LiveState(ctx context.Context, auctionID string) (models.LiveAuctionState, error) {
	if st, ok, err := s.live.Get(ctx, auctionID); err == nil && ok {
		return st, nil
	}
	if err := s.Reconcile(ctx, auctionID); err != nil && !errors.Is(err, biddingerrors.ErrLiveStoreWriteFailed) {
		return models.LiveAuctionState{}, err
	}
	st, _, err := s.live.Get(ctx, auctionID)
	if err != nil {
		return models.LiveAuctionState{}, fmt.Errorf("service: read live state for %s: %w", auctionID, err)
	}
	return st, nil
}
