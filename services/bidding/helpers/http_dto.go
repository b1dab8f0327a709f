package helpers

import (
	"time"

	"auction-engine/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	StartingPrice   decimal.Decimal `json:"starting_price"`
	CampaignID      string          `json:"campaign_id" binding:"required"`
	CompanyID       string          `json:"company_id"`
	StartAt         *time.Time      `json:"start_at"`
	DurationSeconds int64           `json:"duration_seconds" binding:"gte=0"`
}

type GrantCreditsRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	CampaignID string `json:"campaign_id" binding:"required"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt string          `json:"created_at"`
}

type CloseResponse struct {
	OK      bool           `json:"ok"`
	Auction models.Auction `json:"auction"`
}

type CreditsResponse struct {
	UserID     string `json:"user_id"`
	CampaignID string `json:"campaign_id"`
	Amount     int64  `json:"amount"`
}

func NewBidResponse(bid models.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		UserID:    bid.UserID,
		Name:      bid.Name,
		Price:     bid.Price,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewCreditsResponse(credits models.UserCredits) CreditsResponse {
	return CreditsResponse{
		UserID:     credits.UserID,
		CampaignID: credits.CampaignID,
		Amount:     credits.Amount,
	}
}
