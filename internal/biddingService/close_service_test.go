package bidding

import (
	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func closedCopy(a model.Auction, winner string, price string) model.Auction {
	at := now
	a.ClosedAt = &at
	a.WinnerID = &winner
	a.Price = dec(price)
	return a
}

// Tests CloseCoordinator.Close
func TestCloseCoordinator_Close(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		auctionID     string
		opts          CloseOptions
		expire        bool
		mockSetup     func(f *fixture)
		expectedError error
		wantHoldKept  bool
	}{
		{
			name:          "empty_auctionID",
			auctionID:     "",
			mockSetup:     func(f *fixture) {},
			expectedError: biddingerrors.ErrInvalidAuction,
		},
		{
			name:          "timer_still_running",
			auctionID:     "a1",
			mockSetup:     func(f *fixture) {},
			expectedError: biddingerrors.ErrCannotCloseYet,
		},
		{
			name:      "auction_not_found",
			auctionID: "a1",
			opts:      CloseOptions{Force: true},
			mockSetup: func(f *fixture) {
				f.ledger.EXPECT().GetAuction(gomock.Any(), "a1").Return(model.Auction{}, biddingerrors.ErrAuctionNotFound)
			},
			expectedError: biddingerrors.ErrAuctionNotFound,
		},
		{
			name:      "already_closed",
			auctionID: "a1",
			expire:    true,
			mockSetup: func(f *fixture) {
				f.ledger.EXPECT().GetAuction(gomock.Any(), "a1").Return(closedCopy(openAuction(), "bob", "10.02"), nil)
			},
			expectedError: biddingerrors.ErrAlreadyClosed,
		},
		{
			name:      "no_bids_lifts_hold",
			auctionID: "a1",
			opts:      CloseOptions{Force: true},
			mockSetup: func(f *fixture) {
				f.ledger.EXPECT().GetAuction(gomock.Any(), "a1").Return(openAuction(), nil)
				f.ledger.EXPECT().CloseAuction(gomock.Any(), "a1", now).Return(model.Auction{}, biddingerrors.ErrNoBids)
			},
			expectedError: biddingerrors.ErrNoBids,
		},
		{
			name:      "ledger_failure_lifts_hold",
			auctionID: "a1",
			opts:      CloseOptions{Force: true},
			mockSetup: func(f *fixture) {
				f.ledger.EXPECT().GetAuction(gomock.Any(), "a1").Return(openAuction(), nil)
				f.ledger.EXPECT().CloseAuction(gomock.Any(), "a1", now).Return(model.Auction{}, errors.New("deadlock detected"))
			},
			expectedError: biddingerrors.ErrLedgerWriteFailed,
		},
		{
			name:      "lost_race_to_another_closer",
			auctionID: "a1",
			opts:      CloseOptions{Force: true},
			mockSetup: func(f *fixture) {
				f.ledger.EXPECT().GetAuction(gomock.Any(), "a1").Return(openAuction(), nil)
				f.ledger.EXPECT().CloseAuction(gomock.Any(), "a1", now).Return(model.Auction{}, biddingerrors.ErrAlreadyClosed)
			},
			expectedError: biddingerrors.ErrAlreadyClosed,
			wantHoldKept:  true,
		},
		{
			name:      "closes_and_invalidates_live",
			auctionID: "a1",
			opts:      CloseOptions{Force: true},
			mockSetup: func(f *fixture) {
				f.ledger.EXPECT().GetAuction(gomock.Any(), "a1").Return(openAuction(), nil)
				f.ledger.EXPECT().CloseAuction(gomock.Any(), "a1", now).Return(closedCopy(openAuction(), "bob", "10.02"), nil)
				f.ledger.EXPECT().LastBid(gomock.Any(), "a1").Return(model.Bid{UserID: "bob", Name: "Bob", Price: dec("10.02")}, nil)
				f.live.EXPECT().Invalidate(gomock.Any(), "a1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, final model.LiveAuctionState) error {
						require.NotNil(t, final.ClosedAt)
						require.Equal(t, "bob", final.CurrentBidderID)
						require.Equal(t, "Bob", final.CurrentBidderName)
						require.True(t, dec("10.02").Equal(final.CurrentBid))
						return nil
					})
			},
			wantHoldKept: true,
		},
		{
			name:      "live_store_failure_does_not_fail_close",
			auctionID: "a1",
			expire:    true,
			mockSetup: func(f *fixture) {
				f.ledger.EXPECT().GetAuction(gomock.Any(), "a1").Return(openAuction(), nil)
				f.ledger.EXPECT().CloseAuction(gomock.Any(), "a1", gomock.Any()).Return(closedCopy(openAuction(), "bob", "10.02"), nil)
				f.ledger.EXPECT().LastBid(gomock.Any(), "a1").Return(model.Bid{UserID: "bob"}, nil)
				f.live.EXPECT().Invalidate(gomock.Any(), "a1", gomock.Any()).Return(errors.New("store down"))
			},
			wantHoldKept: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			if tc.expire {
				f.clock.Advance(time.Minute)
			}
			closer := NewCloseCoordinator(f.ledger, f.live, f.timer, f.clock, nil)
			tc.mockSetup(f)

			closed, err := closer.Close(context.Background(), tc.auctionID, tc.opts)

			if tc.wantHoldKept {
				require.True(t, f.timer.IsExpired("a1"), "closing hold stays on")
			} else if !tc.expire {
				require.False(t, f.timer.IsExpired("a1"), "timer untouched or hold lifted")
			}

			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.True(t, closed.IsClosed())
			require.Equal(t, "bob", *closed.WinnerID)
		})
	}
}
