package perftests

import (
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/clock"
	"auction-engine/internal/livestate"
	"auction-engine/internal/repository"
	"auction-engine/internal/timer"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

const campaignID = "bench"

// newService wires the engine over the in-memory ledger with a countdown long
// enough that nothing expires during a run
func newService(tb testing.TB) (*bidding.BiddingService, *repository.MemoryRepo) {
	tb.Helper()
	clk := clock.NewSystem()
	ledger := repository.NewMemoryRepo()
	live := livestate.NewMemoryStore(clk)
	timers := timer.New(clk, live, timer.WithWindow(time.Minute))
	retrier := livestate.NewRetrier(3, time.Millisecond)
	tb.Cleanup(retrier.Close)

	svc := bidding.NewBiddingService(ledger, live, timers, clk,
		bidding.WithInitialTimer(time.Hour),
		bidding.WithRetrier(retrier),
	)
	return svc, ledger
}

func createAuctions(tb testing.TB, svc *bidding.BiddingService, n int) []string {
	tb.Helper()
	ids := make([]string, n)
	for i := range ids {
		a, err := svc.CreateAuction(context.Background(), bidding.CreateAuctionInput{
			Name:          fmt.Sprintf("Benchmark auction %d", i),
			StartingPrice: decimal.NewFromInt(100),
			CampaignID:    campaignID,
		})
		if err != nil {
			tb.Fatalf("failed to create auction: %v", err)
		}
		ids[i] = a.AuctionID
	}
	return ids
}

func grant(tb testing.TB, svc *bidding.BiddingService, userID string, amount int64) {
	tb.Helper()
	if _, err := svc.GrantCredits(context.Background(), userID, campaignID, amount); err != nil {
		tb.Fatalf("failed to grant credits: %v", err)
	}
}
