package livestate

import (
	"auction-engine/utils"
	"context"
	"sync"
	"time"
)

// Retrier heals live-store writes in the background.
// Jobs are keyed (one per auction); a job requested while the same key is
// already running makes that run go once more instead of starting a second one.
type Retrier struct {
	attempts int
	backoff  time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	running map[string]bool // value: rerun requested
	wg      sync.WaitGroup
}

// NewRetrier makes up to attempts tries per job, sleeping backoff, 2*backoff, ... between them
func NewRetrier(attempts int, backoff time.Duration) *Retrier {
	if attempts < 1 {
		attempts = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Retrier{
		attempts: attempts,
		backoff:  backoff,
		ctx:      ctx,
		cancel:   cancel,
		running:  make(map[string]bool),
	}
}

// Go schedules fn for key. fn must re-derive what it writes on every call.
func (r *Retrier) Go(key string, fn func(ctx context.Context) error) {
	r.mu.Lock()
	if _, busy := r.running[key]; busy {
		r.running[key] = true
		r.mu.Unlock()
		return
	}
	r.running[key] = false
	r.wg.Add(1)
	r.mu.Unlock()

	go r.loop(key, fn)
}

func (r *Retrier) loop(key string, fn func(ctx context.Context) error) {
	defer r.wg.Done()

	for {
		r.run(key, fn)

		r.mu.Lock()
		if !r.running[key] || r.ctx.Err() != nil {
			delete(r.running, key)
			r.mu.Unlock()
			return
		}
		r.running[key] = false
		r.mu.Unlock()
	}
}

func (r *Retrier) run(key string, fn func(ctx context.Context) error) {
	wait := r.backoff
	for attempt := 1; attempt <= r.attempts; attempt++ {
		err := fn(r.ctx)
		if err == nil {
			return
		}
		if attempt == r.attempts {
			utils.Error("live store retry exhausted", map[string]any{
				"key":      key,
				"attempts": attempt,
				"error":    err.Error(),
			})
			return
		}
		utils.Warn("live store retry failed", map[string]any{
			"key":     key,
			"attempt": attempt,
			"error":   err.Error(),
		})

		select {
		case <-r.ctx.Done():
			return
		case <-time.After(wait):
		}
		wait *= 2
	}
}

// Wait blocks until every scheduled job has finished
func (r *Retrier) Wait() {
	r.wg.Wait()
}

// Close abandons pending retries and waits for running ones to return
func (r *Retrier) Close() {
	r.cancel()
	r.wg.Wait()
}
