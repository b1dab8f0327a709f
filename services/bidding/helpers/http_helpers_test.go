package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-engine/internal/biddingerrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToHTTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err    error
		status int
	}{
		{biddingerrors.ErrAuctionNotFound, http.StatusNotFound},
		{biddingerrors.ErrNoBids, http.StatusNotFound},
		{biddingerrors.ErrInvalidBid, http.StatusBadRequest},
		{biddingerrors.ErrInvalidAuction, http.StatusBadRequest},
		{biddingerrors.ErrInvalidCredits, http.StatusBadRequest},
		{biddingerrors.ErrInsufficientCredits, http.StatusPaymentRequired},
		{biddingerrors.ErrAlreadyHighestBidder, http.StatusConflict},
		{biddingerrors.ErrAuctionClosed, http.StatusConflict},
		{biddingerrors.ErrAuctionNotStarted, http.StatusConflict},
		{biddingerrors.ErrAlreadyClosed, http.StatusConflict},
		{biddingerrors.ErrCannotCloseYet, http.StatusConflict},
		{biddingerrors.ErrTimerTouchFailed, http.StatusServiceUnavailable},
		{biddingerrors.ErrLedgerWriteFailed, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.err.Error(), func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("service: auction a1: %w", tc.err)
			status, message := MapErrorToHTTP(wrapped)
			require.Equal(t, tc.status, status)
			require.NotEmpty(t, message)
		})
	}
}

func TestParseTake(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{query: "", want: 20},
		{query: "?take=5", want: 5},
		{query: "?take=1000", want: 1000},
		{query: "?take=0", wantErr: true},
		{query: "?take=-3", wantErr: true},
		{query: "?take=1001", wantErr: true},
		{query: "?take=ten", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.query, func(t *testing.T) {
			t.Parallel()

			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/auctions/a1/bids"+tc.query, nil)

			take, err := ParseTake(c, 20)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, take)
		})
	}
}
