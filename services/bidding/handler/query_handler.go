package handler

import (
	"errors"
	"net/http"

	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"
	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultBidsTake    = 50
	defaultBiddersTake = 10
)

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *BiddingHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		respondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
}

// RecordViewHandler handles POST /auctions/:auction_id/views
func (h *BiddingHandler) RecordViewHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	views, err := h.service.RecordView(c.Request.Context(), auctionID)
	if err != nil {
		respondError(c, "RecordViewHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"views": views}, "view recorded successfully")
}

// GetBidsByAuctionHandler handles GET /auctions/:auction_id/bids
func (h *BiddingHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	take, err := helpers.ParseTake(c, defaultBidsTake)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid take")
		return
	}

	bids, err := h.service.GetBidsForAuction(c.Request.Context(), auctionID, take)
	if err != nil && !errors.Is(err, biddingerrors.ErrNoBids) {
		respondError(c, "GetBidsByAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	out := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, helpers.NewBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, out, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(out),
	})
}

// GetLastBidHandler handles GET /auctions/:auction_id/bids/last
func (h *BiddingHandler) GetLastBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bid, err := h.service.LastBid(c.Request.Context(), auctionID)
	if err != nil {
		respondError(c, "GetLastBidHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "last bid retrieved successfully")
}

// GetActiveBiddersHandler handles GET /auctions/:auction_id/bidders
func (h *BiddingHandler) GetActiveBiddersHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	take, err := helpers.ParseTake(c, defaultBiddersTake)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid take")
		return
	}

	bidders, err := h.service.ActiveBidders(c.Request.Context(), auctionID, take)
	if err != nil {
		respondError(c, "GetActiveBiddersHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	if bidders == nil {
		bidders = []bidding.ActiveBidder{}
	}
	utils.JSONResponse(c, http.StatusOK, bidders, "bidders retrieved successfully")
}

// GetWinnerHandler handles GET /auctions/:auction_id/winner
func (h *BiddingHandler) GetWinnerHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	winner, err := h.service.CurrentWinner(c.Request.Context(), auctionID)
	if err != nil {
		if errors.Is(err, biddingerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinnerHandler: no winning bid found", map[string]any{"auction_id": auctionID})
			return
		}
		respondError(c, "GetWinnerHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, winner, "winner retrieved successfully")
}

// GetAuctionsWonHandler handles GET /users/:user_id/wins
func (h *BiddingHandler) GetAuctionsWonHandler(c *gin.Context) {
	userID := c.Param("user_id")
	auctions, err := h.service.AuctionsWonBy(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "GetAuctionsWonHandler", err, map[string]any{"user_id": userID})
		return
	}
	if auctions == nil {
		auctions = []model.Auction{}
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("GetAuctionsWonHandler", "auctions retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(auctions),
	})
}

// SumCampaignBidsHandler handles GET /campaigns/:campaign_id/bids/sum
func (h *BiddingHandler) SumCampaignBidsHandler(c *gin.Context) {
	campaignID := c.Param("campaign_id")
	sum, err := h.service.SumBidsForCampaign(c.Request.Context(), campaignID)
	if err != nil {
		respondError(c, "SumCampaignBidsHandler", err, map[string]any{"campaign_id": campaignID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"campaign_id": campaignID, "sum": sum}, "sum computed successfully")
}

// CountClosedAuctionsHandler handles GET /stats/closed-auctions
func (h *BiddingHandler) CountClosedAuctionsHandler(c *gin.Context) {
	count, err := h.service.CountClosedAuctions(c.Request.Context())
	if err != nil {
		respondError(c, "CountClosedAuctionsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"count": count}, "count retrieved successfully")
}
