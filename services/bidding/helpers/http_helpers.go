package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"auction-engine/internal/biddingerrors"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// MaxTake caps ?take= on list endpoints
const MaxTake = 1000

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseTake reads ?take=, falling back to def when absent
func ParseTake(c *gin.Context, def int) (int, error) {
	raw := c.Query("take")
	if raw == "" {
		return def, nil
	}
	take, err := strconv.Atoi(raw)
	if err != nil || take <= 0 || take > MaxTake {
		return 0, fmt.Errorf("take must be between 1 and %d, got %q", MaxTake, raw)
	}
	return take, nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, biddingerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for auction"
	case errors.Is(err, biddingerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, biddingerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, biddingerrors.ErrInvalidCredits):
		return http.StatusBadRequest, "invalid credit details"
	case errors.Is(err, biddingerrors.ErrInsufficientCredits):
		return http.StatusPaymentRequired, "not enough credits"
	case errors.Is(err, biddingerrors.ErrAlreadyHighestBidder):
		return http.StatusConflict, "already the highest bidder"
	case errors.Is(err, biddingerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is closed"
	case errors.Is(err, biddingerrors.ErrAuctionNotStarted):
		return http.StatusConflict, "auction has not started"
	case errors.Is(err, biddingerrors.ErrAlreadyClosed):
		return http.StatusConflict, "auction already closed"
	case errors.Is(err, biddingerrors.ErrCannotCloseYet):
		return http.StatusConflict, "auction timer has not expired"
	case errors.Is(err, biddingerrors.ErrTimerTouchFailed), errors.Is(err, biddingerrors.ErrLedgerWriteFailed):
		return http.StatusServiceUnavailable, "temporarily unavailable, retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
