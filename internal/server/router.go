package server

import (
	handler "auction-engine/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application.
// Operator routes answer 403 when operatorToken is empty.
func SetupRouter(biddingHandler *handler.BiddingHandler, operatorToken string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	operator := RequireOperator(operatorToken)

	router.POST("/auctions", operator, biddingHandler.CreateAuctionHandler)
	router.POST("/credits", operator, biddingHandler.GrantCreditsHandler)

	auctions := router.Group("/auctions/:auction_id")
	{
		auctions.GET("", biddingHandler.GetAuctionHandler)
		auctions.POST("/bids", RequireUser, biddingHandler.MakeBidHandler)
		auctions.GET("/bids", biddingHandler.GetBidsByAuctionHandler)
		auctions.GET("/bids/last", biddingHandler.GetLastBidHandler)
		auctions.GET("/bidders", biddingHandler.GetActiveBiddersHandler)
		auctions.GET("/winner", biddingHandler.GetWinnerHandler)
		auctions.POST("/views", biddingHandler.RecordViewHandler)
		auctions.POST("/close", operator, biddingHandler.CloseAuctionHandler)
		auctions.GET("/live", biddingHandler.LiveFeedHandler)
		auctions.GET("/timer", biddingHandler.TimerFeedHandler)
	}

	users := router.Group("/users/:user_id")
	{
		users.GET("/credits/:campaign_id", biddingHandler.GetCreditsHandler)
		users.GET("/wins", biddingHandler.GetAuctionsWonHandler)
	}

	router.GET("/campaigns/:campaign_id/bids/sum", biddingHandler.SumCampaignBidsHandler)
	router.GET("/stats/closed-auctions", biddingHandler.CountClosedAuctionsHandler)

	return router
}
