package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	bidding "auction-engine/internal/biddingService"
	model "auction-engine/internal/models"
	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mock_bidding_handler.go -package=handler auction-engine/services/bidding/handler BiddingServiceInterface,AuctionCloser

type BiddingServiceInterface interface {
	MakeBid(ctx context.Context, auctionID string, user model.User) (model.Bid, error)
	CreateAuction(ctx context.Context, in bidding.CreateAuctionInput) (model.Auction, error)
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	RecordView(ctx context.Context, auctionID string) (int64, error)
	GetBidsForAuction(ctx context.Context, auctionID string, take int) ([]model.Bid, error)
	LastBid(ctx context.Context, auctionID string) (model.Bid, error)
	ActiveBidders(ctx context.Context, auctionID string, take int) ([]bidding.ActiveBidder, error)
	CurrentWinner(ctx context.Context, auctionID string) (bidding.Winner, error)
	AuctionsWonBy(ctx context.Context, userID string) ([]model.Auction, error)
	GetCredits(ctx context.Context, userID, campaignID string) (model.UserCredits, error)
	GrantCredits(ctx context.Context, userID, campaignID string, amount int64) (model.UserCredits, error)
	SumBidsForCampaign(ctx context.Context, campaignID string) (decimal.Decimal, error)
	CountClosedAuctions(ctx context.Context) (int, error)
	LiveState(ctx context.Context, auctionID string) (model.LiveAuctionState, error)
}

type AuctionCloser interface {
	Close(ctx context.Context, auctionID string, opts bidding.CloseOptions) (model.Auction, error)
}

// Feeds is where the stream handlers subscribe
type Feeds interface {
	Subscribe(auctionID string, fn func(model.LiveAuctionState)) (unsubscribe func())
	SubscribeTimer(auctionID string, fn func(*model.TimerSnapshot)) (unsubscribe func())
}

// TimerReader reports the time left on an auction's countdown
type TimerReader interface {
	Remaining(auctionID string) (time.Duration, bool)
}

type BiddingHandler struct {
	service BiddingServiceInterface
	closer  AuctionCloser
	feeds   Feeds
	timers  TimerReader

	// operator closes skip the expiry check unless this is set
	requireExpiry bool
}

type Option func(*BiddingHandler)

// WithRequireExpiry makes operator closes wait for the timer like the sweeper does
func WithRequireExpiry(require bool) Option {
	return func(h *BiddingHandler) {
		h.requireExpiry = require
	}
}

func NewBiddingHandler(service BiddingServiceInterface, closer AuctionCloser, feeds Feeds, timers TimerReader, opts ...Option) *BiddingHandler {
	h := &BiddingHandler{
		service: service,
		closer:  closer,
		feeds:   feeds,
		timers:  timers,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// respondError maps err and writes the error body
func respondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// MakeBidHandler handles POST /auctions/:auction_id/bids
func (h *BiddingHandler) MakeBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	user, ok := helpers.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing caller identity"), "missing caller identity")
		return
	}

	bid, err := h.service.MakeBid(c.Request.Context(), auctionID, user)
	if err != nil {
		respondError(c, "MakeBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    user.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("MakeBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": auctionID,
		"user_id":    user.UserID,
		"price":      bid.Price.String(),
	})
}

// CloseAuctionHandler handles POST /auctions/:auction_id/close
func (h *BiddingHandler) CloseAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	closed, err := h.closer.Close(c.Request.Context(), auctionID, bidding.CloseOptions{Force: !h.requireExpiry})
	if err != nil {
		respondError(c, "CloseAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.CloseResponse{OK: true, Auction: closed}, "auction closed successfully")
	helpers.LogSuccess("CloseAuctionHandler", "auction closed successfully", map[string]any{
		"auction_id": auctionID,
		"price":      closed.Price.String(),
	})
}

// CreateAuctionHandler handles POST /auctions
func (h *BiddingHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	in := bidding.CreateAuctionInput{
		Name:          req.Name,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		CampaignID:    req.CampaignID,
		CompanyID:     req.CompanyID,
		Duration:      time.Duration(req.DurationSeconds) * time.Second,
	}
	if req.StartAt != nil {
		in.StartAt = *req.StartAt
	}

	auction, err := h.service.CreateAuction(c.Request.Context(), in)
	if err != nil {
		respondError(c, "CreateAuctionHandler", err, map[string]any{"campaign_id": req.CampaignID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":  auction.AuctionID,
		"campaign_id": auction.CampaignID,
	})
}

// GetCreditsHandler handles GET /users/:user_id/credits/:campaign_id
func (h *BiddingHandler) GetCreditsHandler(c *gin.Context) {
	userID, campaignID := c.Param("user_id"), c.Param("campaign_id")

	credits, err := h.service.GetCredits(c.Request.Context(), userID, campaignID)
	if err != nil {
		respondError(c, "GetCreditsHandler", err, map[string]any{"user_id": userID, "campaign_id": campaignID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCreditsResponse(credits), "credits retrieved successfully")
}

// GrantCreditsHandler handles POST /credits
func (h *BiddingHandler) GrantCreditsHandler(c *gin.Context) {
	var req helpers.GrantCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "GrantCreditsHandler", err)
		return
	}

	credits, err := h.service.GrantCredits(c.Request.Context(), req.UserID, req.CampaignID, req.Amount)
	if err != nil {
		respondError(c, "GrantCreditsHandler", err, map[string]any{"user_id": req.UserID, "campaign_id": req.CampaignID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCreditsResponse(credits), "credits granted successfully")
	helpers.LogSuccess("GrantCreditsHandler", "credits granted successfully", map[string]any{
		"user_id":     req.UserID,
		"campaign_id": req.CampaignID,
		"amount":      req.Amount,
	})
}
