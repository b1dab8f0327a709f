package biddingerrors

import "errors"

// Ledger-level errors
var (
	ErrAuctionNotFound   = errors.New("auction not found")
	ErrNoBids            = errors.New("no bids found for auction")
	ErrLedgerWriteFailed = errors.New("ledger write failed")
)

// Live store errors. These never fail a bid.
var (
	ErrLiveStoreWriteFailed = errors.New("live store write failed")
)

// business logic errors
var (
	ErrInvalidBid           = errors.New("invalid bid")
	ErrInvalidAuction       = errors.New("invalid auction")
	ErrInvalidCredits       = errors.New("invalid credit amount")
	ErrAuctionClosed        = errors.New("auction is closed")
	ErrAuctionNotStarted    = errors.New("auction has not started")
	ErrInsufficientCredits  = errors.New("not enough credits")
	ErrAlreadyHighestBidder = errors.New("already the highest bidder")
	ErrTimerTouchFailed     = errors.New("timer touch failed")
)

// close errors
var (
	ErrAlreadyClosed  = errors.New("auction already closed")
	ErrCannotCloseYet = errors.New("auction timer has not expired")
)

// IsDomain reports whether err carries one of the business outcomes above,
// as opposed to an infrastructure failure.
func IsDomain(err error) bool {
	for _, target := range []error{
		ErrAuctionNotFound,
		ErrNoBids,
		ErrInvalidBid,
		ErrInvalidAuction,
		ErrInvalidCredits,
		ErrAuctionClosed,
		ErrAuctionNotStarted,
		ErrInsufficientCredits,
		ErrAlreadyHighestBidder,
		ErrAlreadyClosed,
		ErrCannotCloseYet,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
