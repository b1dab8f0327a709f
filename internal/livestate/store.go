package livestate

import (
	"auction-engine/internal/clock"
	model "auction-engine/internal/models"
	"context"
)

//go:generate mockgen -destination=mock_store.go -package=livestate auction-engine/internal/livestate Store

// Store is the low-latency broadcast layer viewers subscribe to.
// It announces state; the ledger stays the source of truth.
type Store interface {
	// Update merges patch into the auction's record, stamps lastUpdate and pushes the result.
	Update(ctx context.Context, auctionID string, patch model.LivePatch) (model.LiveAuctionState, error)
	Get(ctx context.Context, auctionID string) (model.LiveAuctionState, bool, error)
	// Invalidate replaces the record with the closed snapshot. A closed record ignores later updates.
	Invalidate(ctx context.Context, auctionID string, final model.LiveAuctionState) error
	PublishTimer(ctx context.Context, auctionID string, snap *model.TimerSnapshot) error

	Subscribe(auctionID string, fn func(model.LiveAuctionState)) (unsubscribe func())
	SubscribeTimer(auctionID string, fn func(*model.TimerSnapshot)) (unsubscribe func())
}

// MemoryStore is an in-process Store. Each subscriber gets updates in store
// order, and the current value on subscribe; one that falls far behind skips
// to the latest record. Unknown auctions and stopped timers hold no memory
// once their last subscriber leaves.
type MemoryStore struct {
	clock  clock.Clock
	states *feed[model.LiveAuctionState]
	timers *feed[*model.TimerSnapshot]
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clock:  clk,
		// closed records are kept so late updates stay ignored
		states: newFeed[model.LiveAuctionState](nil),
		timers: newFeed(func(snap *model.TimerSnapshot) bool { return snap == nil }),
	}
}

func (s *MemoryStore) Update(ctx context.Context, auctionID string, patch model.LivePatch) (model.LiveAuctionState, error) {
	if err := ctx.Err(); err != nil {
		return model.LiveAuctionState{}, err
	}
	now := s.clock.Now()
	return s.states.update(auctionID, func(cur model.LiveAuctionState, _ bool) (model.LiveAuctionState, bool) {
		if cur.ClosedAt != nil {
			return cur, false
		}
		next := patch.Apply(cur)
		next.LastUpdate = now
		return next, true
	}), nil
}

func (s *MemoryStore) Get(ctx context.Context, auctionID string) (model.LiveAuctionState, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.LiveAuctionState{}, false, err
	}
	st, ok := s.states.get(auctionID)
	return st, ok, nil
}

func (s *MemoryStore) Invalidate(ctx context.Context, auctionID string, final model.LiveAuctionState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if final.LastUpdate.IsZero() {
		final.LastUpdate = s.clock.Now()
	}
	s.states.update(auctionID, func(model.LiveAuctionState, bool) (model.LiveAuctionState, bool) {
		return final, true
	})
	return nil
}

func (s *MemoryStore) PublishTimer(ctx context.Context, auctionID string, snap *model.TimerSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.timers.update(auctionID, func(*model.TimerSnapshot, bool) (*model.TimerSnapshot, bool) {
		return snap, true
	})
	return nil
}

func (s *MemoryStore) Subscribe(auctionID string, fn func(model.LiveAuctionState)) func() {
	return s.states.subscribe(auctionID, fn)
}

func (s *MemoryStore) SubscribeTimer(auctionID string, fn func(*model.TimerSnapshot)) func() {
	return s.timers.subscribe(auctionID, fn)
}
