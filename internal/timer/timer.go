package timer

import (
	"auction-engine/internal/clock"
	model "auction-engine/internal/models"
	"auction-engine/utils"
	"context"
	"sync"
	"time"
)

// DefaultWindow is how far a touch pushes the expiry out
const DefaultWindow = 15 * time.Second

// Publisher receives the timer feed; nil means no running countdown
type Publisher interface {
	PublishTimer(ctx context.Context, auctionID string, snap *model.TimerSnapshot) error
}

// Touch is the receipt of one touch attempt. Previous and Generation let the
// caller undo exactly this touch later.
type Touch struct {
	Success    bool
	Generation uint64
	Previous   time.Time
	ExpiresAt  time.Time
}

type entry struct {
	mu         sync.Mutex
	expiresAt  time.Time
	closed     bool
	generation uint64
}

// Controller owns every auction's countdown. Each auction has its own lock,
// held while the feed is published so feed order matches timer order.
type Controller struct {
	clock  clock.Clock
	feed   Publisher
	window time.Duration

	mu      sync.Mutex
	entries map[string]*entry
}

type Option func(*Controller)

func WithWindow(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.window = d
		}
	}
}

// New creates a controller. feed may be nil.
func New(clk clock.Clock, feed Publisher, opts ...Option) *Controller {
	c := &Controller{
		clock:   clk,
		feed:    feed,
		window:  DefaultWindow,
		entries: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Window() time.Duration {
	return c.window
}

func (c *Controller) lookup(auctionID string, create bool) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[auctionID]
	if !ok && create {
		e = &entry{}
		c.entries[auctionID] = e
	}
	return e
}

// Arm (re)starts the countdown so it expires at expiresAt, lifting any closing hold
func (c *Controller) Arm(ctx context.Context, auctionID string, expiresAt time.Time) {
	e := c.lookup(auctionID, true)
	e.mu.Lock()
	e.expiresAt = expiresAt
	e.closed = false
	e.generation++
	c.publish(ctx, auctionID, c.snapshot(e))
	e.mu.Unlock()
}

// Touch extends the countdown to now+window if it has not expired yet.
// An expired, closed or unknown timer rejects the touch and stays as it is.
func (c *Controller) Touch(ctx context.Context, auctionID string) (Touch, error) {
	if err := ctx.Err(); err != nil {
		return Touch{}, err
	}

	e := c.lookup(auctionID, false)
	if e == nil {
		return Touch{}, nil
	}

	e.mu.Lock()
	now := c.clock.Now()
	if e.closed || !now.Before(e.expiresAt) {
		e.mu.Unlock()
		return Touch{}, nil
	}

	receipt := Touch{Success: true, Previous: e.expiresAt}
	if next := now.Add(c.window); next.After(e.expiresAt) {
		e.expiresAt = next
	}
	e.generation++
	receipt.Generation = e.generation
	receipt.ExpiresAt = e.expiresAt
	c.publish(ctx, auctionID, c.snapshot(e))
	e.mu.Unlock()
	return receipt, nil
}

// CancelTouch rolls back a successful touch, but only while it is still the
// latest change to the timer. A later touch or close wins and this is a no-op.
func (c *Controller) CancelTouch(ctx context.Context, auctionID string, t Touch) {
	if !t.Success {
		return
	}
	e := c.lookup(auctionID, false)
	if e == nil {
		return
	}

	e.mu.Lock()
	if e.closed || e.generation != t.Generation {
		e.mu.Unlock()
		return
	}
	e.expiresAt = t.Previous
	e.generation++
	c.publish(ctx, auctionID, c.snapshot(e))
	e.mu.Unlock()
}

// IsExpired reports whether the auction stopped accepting touches
func (c *Controller) IsExpired(auctionID string) bool {
	e := c.lookup(auctionID, false)
	if e == nil {
		return true
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed || !c.clock.Now().Before(e.expiresAt)
}

// Remaining returns the time left on a running countdown
func (c *Controller) Remaining(auctionID string) (time.Duration, bool) {
	e := c.lookup(auctionID, false)
	if e == nil {
		return 0, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	left := e.expiresAt.Sub(c.clock.Now())
	if e.closed || left <= 0 {
		return 0, false
	}
	return left, true
}

// Close places the closing hold: no touch succeeds until CancelClose or Arm
func (c *Controller) Close(ctx context.Context, auctionID string) {
	e := c.lookup(auctionID, true)
	e.mu.Lock()
	e.closed = true
	e.generation++
	c.publish(ctx, auctionID, nil)
	e.mu.Unlock()
}

// CancelClose lifts the closing hold, leaving the expiry as it was
func (c *Controller) CancelClose(ctx context.Context, auctionID string) {
	e := c.lookup(auctionID, false)
	if e == nil {
		return
	}
	e.mu.Lock()
	if !e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = false
	e.generation++
	c.publish(ctx, auctionID, c.snapshot(e))
	e.mu.Unlock()
}

// snapshot must be called with e.mu held
func (c *Controller) snapshot(e *entry) *model.TimerSnapshot {
	left := e.expiresAt.Sub(c.clock.Now())
	if e.closed || left <= 0 {
		return nil
	}
	return &model.TimerSnapshot{TimeLeftMs: left.Milliseconds()}
}

func (c *Controller) publish(ctx context.Context, auctionID string, snap *model.TimerSnapshot) {
	if c.feed == nil {
		return
	}
	if err := c.feed.PublishTimer(ctx, auctionID, snap); err != nil {
		utils.Warn("timer feed publish failed", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
	}
}
