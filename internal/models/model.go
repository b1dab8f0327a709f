package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// prices go over the wire as JSON numbers, matching the live feed payloads
	decimal.MarshalJSONWithoutQuotes = true
}

// User is the caller identity handed over by the auth gateway
type User struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Image  string `json:"image,omitempty"`
}

// Auction represents an auction row in the durable ledger
type Auction struct {
	AuctionID     string          `json:"auction_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	Price         decimal.Decimal `json:"price"`
	CampaignID    string          `json:"campaign_id"`
	CompanyID     string          `json:"company_id"`
	StartAt       time.Time       `json:"start_at"`
	ClosedAt      *time.Time      `json:"closed_at"`
	WinnerID      *string         `json:"winner_id"`
	Views         int64           `json:"views"`
	CreatedAt     time.Time       `json:"created_at"`
}

// IsClosed reports whether the close transition already happened
func (a Auction) IsClosed() bool {
	return a.ClosedAt != nil
}

// Bid represents a committed bid. Bids are append-only.
type Bid struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id"`
	Price     decimal.Decimal `json:"price"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
}

// UserCredits is the bid balance of a user inside one campaign
type UserCredits struct {
	UserID     string `json:"user_id"`
	CampaignID string `json:"campaign_id"`
	Amount     int64  `json:"amount"`
}

// BidCommit carries everything the ledger needs to commit one bid atomically.
// The ledger computes the price itself from the locked auction row.
type BidCommit struct {
	BidID     string
	AuctionID string
	UserID    string
	Name      string
	Increment decimal.Decimal
	CreatedAt time.Time
}

// LiveAuctionState is the broadcast record viewers subscribe to
type LiveAuctionState struct {
	CurrentBid         decimal.Decimal `json:"currentBid"`
	CurrentBidderID    string          `json:"currentBidderId,omitempty"`
	CurrentBidderName  string          `json:"currentBidderName,omitempty"`
	CurrentBidderImage string          `json:"currentBidderImage,omitempty"`
	LastUpdate         time.Time       `json:"lastUpdate"`
	ClosedAt           *time.Time      `json:"closedAt,omitempty"`
}

// LivePatch holds the fields to merge into a LiveAuctionState; nil fields are left untouched
type LivePatch struct {
	CurrentBid         *decimal.Decimal
	CurrentBidderID    *string
	CurrentBidderName  *string
	CurrentBidderImage *string
}

// LeaderPatch builds a patch announcing user as the leader at price
func LeaderPatch(price decimal.Decimal, user User) LivePatch {
	return LivePatch{
		CurrentBid:         &price,
		CurrentBidderID:    &user.UserID,
		CurrentBidderName:  &user.Name,
		CurrentBidderImage: &user.Image,
	}
}

// Apply merges the patch into s
func (p LivePatch) Apply(s LiveAuctionState) LiveAuctionState {
	if p.CurrentBid != nil {
		s.CurrentBid = *p.CurrentBid
	}
	if p.CurrentBidderID != nil {
		s.CurrentBidderID = *p.CurrentBidderID
	}
	if p.CurrentBidderName != nil {
		s.CurrentBidderName = *p.CurrentBidderName
	}
	if p.CurrentBidderImage != nil {
		s.CurrentBidderImage = *p.CurrentBidderImage
	}
	return s
}

// TimerSnapshot is the timer feed payload. A nil snapshot means no running timer.
type TimerSnapshot struct {
	TimeLeftMs int64 `json:"timeLeftMs"`
}
