package integrationtests

import (
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/clock"
	"auction-engine/internal/livestate"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"auction-engine/internal/timer"
	handler "auction-engine/services/bidding/handler"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const operatorToken = "integration-token"

var startTime = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

// testApp is the whole engine wired over the in-memory ledger and a manual clock
type testApp struct {
	router  *gin.Engine
	clock   *clock.Manual
	ledger  *repository.MemoryRepo
	retrier *livestate.Retrier
}

// SetupTestApp initializes the router with in-memory ledger for integration testing.
func SetupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clk := clock.NewManual(startTime)
	ledger := repository.NewMemoryRepo()
	live := livestate.NewMemoryStore(clk)
	timers := timer.New(clk, live)
	retrier := livestate.NewRetrier(3, time.Millisecond)
	t.Cleanup(retrier.Close)

	svc := bidding.NewBiddingService(ledger, live, timers, clk, bidding.WithRetrier(retrier))
	closer := bidding.NewCloseCoordinator(ledger, live, timers, clk, retrier)
	h := handler.NewBiddingHandler(svc, closer, live, timers)

	return &testApp{
		router:  server.SetupRouter(h, operatorToken),
		clock:   clk,
		ledger:  ledger,
		retrier: retrier,
	}
}

// request carries the optional caller identity and operator flag
type request struct {
	method   string
	url      string
	body     any
	userID   string
	userName string
	operator bool
}

// Do executes an HTTP request on the app router and parses the response
func (a *testApp) Do(t *testing.T, r request) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := r.body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(r.method, r.url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if r.userID != "" {
		req.Header.Set("X-User-Id", r.userID)
		req.Header.Set("X-User-Name", r.userName)
	}
	if r.operator {
		req.Header.Set("Authorization", "Bearer "+operatorToken)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// CreateAuction creates an auction through the operator route and returns its id
func (a *testApp) CreateAuction(t *testing.T, price string, campaignID string) string {
	t.Helper()
	resp, w := a.Do(t, request{
		method:   http.MethodPost,
		url:      "/auctions",
		body:     map[string]any{"name": "Watch", "starting_price": json.Number(price), "campaign_id": campaignID},
		operator: true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create auction: status %d body %s", w.Code, w.Body.String())
	}
	return resp["data"].(map[string]any)["auction_id"].(string)
}

// GrantCredits tops up a user through the operator route
func (a *testApp) GrantCredits(t *testing.T, userID, campaignID string, amount int64) {
	t.Helper()
	_, w := a.Do(t, request{
		method:   http.MethodPost,
		url:      "/credits",
		body:     map[string]any{"user_id": userID, "campaign_id": campaignID, "amount": amount},
		operator: true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("grant credits: status %d body %s", w.Code, w.Body.String())
	}
}

// Bid places one bid as userID
func (a *testApp) Bid(t *testing.T, auctionID, userID string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	return a.Do(t, request{method: http.MethodPost, url: "/auctions/" + auctionID + "/bids", userID: userID, userName: "name-" + userID})
}
