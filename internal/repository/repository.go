package repository

import (
	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mock_repository.go -package=repository auction-engine/internal/repository Ledger

// Ledger is the durable, transactional store of auctions, bids and credits.
// It is the only component allowed to change money-affecting fields.
type Ledger interface {
	CreateAuction(ctx context.Context, auction model.Auction) error
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	ListOpenAuctions(ctx context.Context) ([]model.Auction, error)
	IncrementViews(ctx context.Context, auctionID string) (int64, error)

	// CommitBid locks the auction, re-validates it, raises the price by the
	// increment, appends the bid and takes one credit, all or nothing.
	CommitBid(ctx context.Context, in model.BidCommit) (model.Bid, error)
	// CloseAuction freezes the winner and price of an open auction with at least one bid.
	CloseAuction(ctx context.Context, auctionID string, closedAt time.Time) (model.Auction, error)

	GetBidsByAuction(ctx context.Context, auctionID string, limit int) ([]model.Bid, error)
	LastBid(ctx context.Context, auctionID string) (model.Bid, error)
	// RecentBidders returns the newest bid of each of the take most recent distinct bidders, newest first.
	RecentBidders(ctx context.Context, auctionID string, take int) ([]model.Bid, error)
	WinningBid(ctx context.Context, auctionID string) (model.Bid, error)

	GetCredits(ctx context.Context, userID, campaignID string) (model.UserCredits, error)
	GrantCredits(ctx context.Context, userID, campaignID string, amount int64) (model.UserCredits, error)

	AuctionsWonBy(ctx context.Context, userID string) ([]model.Auction, error)
	SumBidsForCampaign(ctx context.Context, campaignID string) (decimal.Decimal, error)
	CountClosedAuctions(ctx context.Context) (int, error)
}

type auctionEntry struct {
	mu      sync.Mutex
	auction model.Auction
	bids    []model.Bid // in commit order, oldest first
}

type creditEntry struct {
	mu     sync.Mutex
	amount int64
}

type creditKey struct {
	userID     string
	campaignID string
}

// MemoryRepo is a concurrency-safe in-memory Ledger.
// The repo lock only guards the maps; each auction and credit balance has its
// own lock, so bids on different auctions never wait on each other.
// Lock order is auction before credits.
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]*auctionEntry
	credits  map[creditKey]*creditEntry
}

// NewMemoryRepo creates a new in-memory ledger instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string]*auctionEntry),
		credits:  make(map[creditKey]*creditEntry),
	}
}

func (r *MemoryRepo) entry(auctionID string) (*auctionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("ledger: auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	return e, nil
}

func (r *MemoryRepo) credit(userID, campaignID string, create bool) *creditEntry {
	key := creditKey{userID: userID, campaignID: campaignID}

	r.mu.RLock()
	c, ok := r.credits[key]
	r.mu.RUnlock()
	if ok || !create {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok = r.credits[key]; !ok {
		c = &creditEntry{}
		r.credits[key] = c
	}
	return c
}

// CreateAuction stores a new auction
func (r *MemoryRepo) CreateAuction(_ context.Context, auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.auctions[auction.AuctionID]; exists {
		return fmt.Errorf("ledger: create auction %s: %w - duplicate id", auction.AuctionID, biddingerrors.ErrInvalidAuction)
	}
	r.auctions[auction.AuctionID] = &auctionEntry{auction: auction}
	return nil
}

// GetAuction returns a copy of the auction row
func (r *MemoryRepo) GetAuction(_ context.Context, auctionID string) (model.Auction, error) {
	e, err := r.entry(auctionID)
	if err != nil {
		return model.Auction{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.auction, nil
}

// ListOpenAuctions returns every auction without closedAt, oldest first
func (r *MemoryRepo) ListOpenAuctions(_ context.Context) ([]model.Auction, error) {
	open := make([]model.Auction, 0)
	for _, e := range r.snapshotEntries() {
		e.mu.Lock()
		if !e.auction.IsClosed() {
			open = append(open, e.auction)
		}
		e.mu.Unlock()
	}
	sortByCreation(open)
	return open, nil
}

// IncrementViews bumps the view counter and returns the new value
func (r *MemoryRepo) IncrementViews(_ context.Context, auctionID string) (int64, error) {
	e, err := r.entry(auctionID)
	if err != nil {
		return 0, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.auction.Views++
	return e.auction.Views, nil
}

// CommitBid validates and applies a bid under the auction lock.
// Every check runs before the first mutation so a rejected bid leaves no trace.
func (r *MemoryRepo) CommitBid(_ context.Context, in model.BidCommit) (model.Bid, error) {
	e, err := r.entry(in.AuctionID)
	if err != nil {
		return model.Bid{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.auction.IsClosed() {
		return model.Bid{}, fmt.Errorf("ledger: commit bid on %s: %w", in.AuctionID, biddingerrors.ErrAuctionClosed)
	}
	if n := len(e.bids); n > 0 && e.bids[n-1].UserID == in.UserID {
		return model.Bid{}, fmt.Errorf("ledger: commit bid on %s: %w", in.AuctionID, biddingerrors.ErrAlreadyHighestBidder)
	}

	c := r.credit(in.UserID, e.auction.CampaignID, false)
	if c == nil {
		return model.Bid{}, fmt.Errorf("ledger: commit bid on %s: %w", in.AuctionID, biddingerrors.ErrInsufficientCredits)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.amount < 1 {
		return model.Bid{}, fmt.Errorf("ledger: commit bid on %s: %w", in.AuctionID, biddingerrors.ErrInsufficientCredits)
	}

	bid := model.Bid{
		BidID:     in.BidID,
		AuctionID: in.AuctionID,
		UserID:    in.UserID,
		Price:     e.auction.Price.Add(in.Increment),
		Name:      in.Name,
		CreatedAt: in.CreatedAt,
	}

	c.amount--
	e.auction.Price = bid.Price
	e.bids = append(e.bids, bid)
	return bid, nil
}

// CloseAuction picks the winning bid and freezes the auction
func (r *MemoryRepo) CloseAuction(_ context.Context, auctionID string, closedAt time.Time) (model.Auction, error) {
	e, err := r.entry(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.auction.IsClosed() {
		return model.Auction{}, fmt.Errorf("ledger: close auction %s: %w", auctionID, biddingerrors.ErrAlreadyClosed)
	}
	winning, ok := highestBid(e.bids)
	if !ok {
		return model.Auction{}, fmt.Errorf("ledger: close auction %s: %w", auctionID, biddingerrors.ErrNoBids)
	}

	winnerID := winning.UserID
	e.auction.ClosedAt = &closedAt
	e.auction.WinnerID = &winnerID
	e.auction.Price = winning.Price
	return e.auction, nil
}

// GetBidsByAuction returns bids newest first; limit <= 0 means all
func (r *MemoryRepo) GetBidsByAuction(_ context.Context, auctionID string, limit int) ([]model.Bid, error) {
	e, err := r.entry(auctionID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	n := len(e.bids)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]model.Bid, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, e.bids[i])
	}
	return out, nil
}

func (r *MemoryRepo) RecentBidders(_ context.Context, auctionID string, take int) ([]model.Bid, error) {
	e, err := r.entry(auctionID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	return distinctBidders(e.bids, take), nil
}

// distinctBidders walks bids from newest to oldest, keeping each user's first hit
func distinctBidders(oldestFirst []model.Bid, take int) []model.Bid {
	out := make([]model.Bid, 0)
	seen := make(map[string]bool)
	for i := len(oldestFirst) - 1; i >= 0 && len(out) < take; i-- {
		b := oldestFirst[i]
		if seen[b.UserID] {
			continue
		}
		seen[b.UserID] = true
		out = append(out, b)
	}
	return out
}

// LastBid returns the most recent bid, which is the current leader
func (r *MemoryRepo) LastBid(_ context.Context, auctionID string) (model.Bid, error) {
	e, err := r.entry(auctionID)
	if err != nil {
		return model.Bid{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.bids) == 0 {
		return model.Bid{}, fmt.Errorf("ledger: last bid for %s: %w", auctionID, biddingerrors.ErrNoBids)
	}
	return e.bids[len(e.bids)-1], nil
}

// WinningBid returns the highest bid; ties go to the earliest
func (r *MemoryRepo) WinningBid(_ context.Context, auctionID string) (model.Bid, error) {
	e, err := r.entry(auctionID)
	if err != nil {
		return model.Bid{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	winning, ok := highestBid(e.bids)
	if !ok {
		return model.Bid{}, fmt.Errorf("ledger: winning bid for %s: %w", auctionID, biddingerrors.ErrNoBids)
	}
	return winning, nil
}

// GetCredits returns the balance; a user without a row has zero credits
func (r *MemoryRepo) GetCredits(_ context.Context, userID, campaignID string) (model.UserCredits, error) {
	out := model.UserCredits{UserID: userID, CampaignID: campaignID}
	if c := r.credit(userID, campaignID, false); c != nil {
		c.mu.Lock()
		out.Amount = c.amount
		c.mu.Unlock()
	}
	return out, nil
}

// GrantCredits adds purchased credits to a balance
func (r *MemoryRepo) GrantCredits(_ context.Context, userID, campaignID string, amount int64) (model.UserCredits, error) {
	if amount <= 0 {
		return model.UserCredits{}, fmt.Errorf("ledger: grant credits: %w - amount must be positive", biddingerrors.ErrInvalidCredits)
	}
	c := r.credit(userID, campaignID, true)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.amount += amount
	return model.UserCredits{UserID: userID, CampaignID: campaignID, Amount: c.amount}, nil
}

// AuctionsWonBy returns the closed auctions whose winner is userID
func (r *MemoryRepo) AuctionsWonBy(_ context.Context, userID string) ([]model.Auction, error) {
	won := make([]model.Auction, 0)
	for _, e := range r.snapshotEntries() {
		e.mu.Lock()
		if e.auction.WinnerID != nil && *e.auction.WinnerID == userID {
			won = append(won, e.auction)
		}
		e.mu.Unlock()
	}
	sortByCreation(won)
	return won, nil
}

// SumBidsForCampaign adds up every bid price placed on the campaign's auctions
func (r *MemoryRepo) SumBidsForCampaign(_ context.Context, campaignID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range r.snapshotEntries() {
		e.mu.Lock()
		if e.auction.CampaignID == campaignID {
			for _, b := range e.bids {
				sum = sum.Add(b.Price)
			}
		}
		e.mu.Unlock()
	}
	return sum, nil
}

// CountClosedAuctions returns how many auctions completed
func (r *MemoryRepo) CountClosedAuctions(_ context.Context) (int, error) {
	count := 0
	for _, e := range r.snapshotEntries() {
		e.mu.Lock()
		if e.auction.IsClosed() {
			count++
		}
		e.mu.Unlock()
	}
	return count, nil
}

func (r *MemoryRepo) snapshotEntries() []*auctionEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*auctionEntry, 0, len(r.auctions))
	for _, e := range r.auctions {
		out = append(out, e)
	}
	return out
}

// highestBid returns the bid with the greatest price, earliest first on ties
func highestBid(bids []model.Bid) (model.Bid, bool) {
	if len(bids) == 0 {
		return model.Bid{}, false
	}
	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Price.GreaterThan(winning.Price) || (b.Price.Equal(winning.Price) && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, true
}

func sortByCreation(auctions []model.Auction) {
	sort.SliceStable(auctions, func(i, j int) bool {
		return auctions[i].CreatedAt.Before(auctions[j].CreatedAt)
	})
}
