package livestate

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRetrier_RetriesUntilSuccess(t *testing.T) {
	t.Parallel()
	r := NewRetrier(5, time.Millisecond)
	defer r.Close()

	var calls atomic.Int32
	r.Go("a1", func(context.Context) error {
		if calls.Add(1) < 3 {
			return errors.New("store down")
		}
		return nil
	})
	r.Wait()
	require.Equal(t, int32(3), calls.Load())
}

func TestRetrier_GivesUpAfterAttempts(t *testing.T) {
	t.Parallel()
	r := NewRetrier(3, time.Millisecond)
	defer r.Close()

	var calls atomic.Int32
	r.Go("a1", func(context.Context) error {
		calls.Add(1)
		return errors.New("store down")
	})
	r.Wait()
	require.Equal(t, int32(3), calls.Load())
}

func TestRetrier_CoalescesSameKey(t *testing.T) {
	t.Parallel()
	r := NewRetrier(1, time.Millisecond)
	defer r.Close()

	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	job := func(context.Context) error {
		if calls.Add(1) == 1 {
			close(entered)
			<-release
		}
		return nil
	}

	r.Go("a1", job)
	<-entered
	for i := 0; i < 10; i++ {
		r.Go("a1", job)
	}
	close(release)
	r.Wait()

	// the first run plus exactly one rerun for everything queued meanwhile
	require.Equal(t, int32(2), calls.Load())
}

func TestRetrier_DifferentKeysRunIndependently(t *testing.T) {
	t.Parallel()
	r := NewRetrier(1, time.Millisecond)
	defer r.Close()

	var mu sync.Mutex
	seen := map[string]bool{}
	for _, key := range []string{"a1", "a2", "a3"} {
		key := key
		r.Go(key, func(context.Context) error {
			mu.Lock()
			seen[key] = true
			mu.Unlock()
			return nil
		})
	}
	r.Wait()
	require.Len(t, seen, 3)
}

func TestRetrier_CloseStopsBackoff(t *testing.T) {
	t.Parallel()
	r := NewRetrier(100, time.Hour)

	var calls atomic.Int32
	r.Go("a1", func(context.Context) error {
		calls.Add(1)
		return errors.New("store down")
	})

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	done := make(chan struct{})
	go func() {
		r.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not interrupt the backoff sleep")
	}
}
