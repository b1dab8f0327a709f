package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/models"
	handler "auction-engine/services/bidding/handler"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestSetupRouter_Guards(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	service := handler.NewMockBiddingServiceInterface(ctrl)
	closer := handler.NewMockAuctionCloser(ctrl)
	router := SetupRouter(handler.NewBiddingHandler(service, closer, nil, nil), "tok")

	service.EXPECT().MakeBid(gomock.Any(), "a1", models.User{UserID: "u1", Name: "Alice"}).Return(models.Bid{BidID: "b1", AuctionID: "a1", UserID: "u1"}, nil)
	closer.EXPECT().Close(gomock.Any(), "a1", bidding.CloseOptions{Force: true}).Return(models.Auction{AuctionID: "a1"}, nil)
	service.EXPECT().CountClosedAuctions(gomock.Any()).Return(0, nil)

	tests := []struct {
		name           string
		method         string
		path           string
		headers        map[string]string
		body           string
		expectedStatus int
	}{
		{name: "bid_without_identity", method: http.MethodPost, path: "/auctions/a1/bids", expectedStatus: http.StatusUnauthorized},
		{name: "bid_with_identity", method: http.MethodPost, path: "/auctions/a1/bids", headers: map[string]string{"X-User-Id": "u1", "X-User-Name": "Alice"}, expectedStatus: http.StatusCreated},
		{name: "close_without_token", method: http.MethodPost, path: "/auctions/a1/close", expectedStatus: http.StatusUnauthorized},
		{name: "close_with_token", method: http.MethodPost, path: "/auctions/a1/close", headers: map[string]string{"Authorization": "Bearer tok"}, expectedStatus: http.StatusOK},
		{name: "create_without_token", method: http.MethodPost, path: "/auctions", body: `{"name":"x","campaign_id":"c"}`, expectedStatus: http.StatusUnauthorized},
		{name: "grant_without_token", method: http.MethodPost, path: "/credits", body: `{"user_id":"u","campaign_id":"c","amount":1}`, expectedStatus: http.StatusUnauthorized},
		{name: "public_stats", method: http.MethodGet, path: "/stats/closed-auctions", expectedStatus: http.StatusOK},
		{name: "unknown_route", method: http.MethodGet, path: "/items/1/bids", expectedStatus: http.StatusNotFound},
	}

	// sequential: each expectation above is consumed exactly once
	for _, tc := range tests {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		for k, v := range tc.headers {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, tc.expectedStatus, w.Code, tc.name)
	}
}
