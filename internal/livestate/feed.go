package livestate

import "sync"

// maxPending bounds the values queued for one subscriber
const maxPending = 64

// subscriber drains its own queue on a dedicated goroutine so a slow
// callback never blocks the publisher or the other subscribers.
type subscriber[T any] struct {
	fn     func(T)
	mu     sync.Mutex
	queue  []T
	notify chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newSubscriber[T any](fn func(T)) *subscriber[T] {
	s := &subscriber[T]{
		fn:     fn,
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

// push queues v. A subscriber more than maxPending values behind drops its
// backlog and keeps only v, since every value is a full record.
func (s *subscriber[T]) push(v T) {
	s.mu.Lock()
	if len(s.queue) >= maxPending {
		clear(s.queue)
		s.queue = s.queue[:0]
	}
	s.queue = append(s.queue, v)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *subscriber[T]) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

func (s *subscriber[T]) run() {
	for {
		select {
		case <-s.done:
			return
		case <-s.notify:
		}

		s.mu.Lock()
		batch := s.queue
		s.queue = nil
		s.mu.Unlock()

		for _, v := range batch {
			select {
			case <-s.done:
				return
			default:
			}
			s.fn(v)
		}
	}
}

func (s *subscriber[T]) stop() {
	s.once.Do(func() { close(s.done) })
}

// topic is one key's current value plus its subscribers.
// Values are queued to subscribers while mu is held, which fixes one delivery order for everyone.
type topic[T any] struct {
	mu     sync.Mutex
	value  T
	has    bool
	nextID int
	subs   map[int]*subscriber[T]
}

// feed is a keyed set of topics. A topic lives only while it holds a value
// or has subscribers; values vacant reports true for do not count.
// Lock order is feed.mu before topic.mu.
type feed[T any] struct {
	mu     sync.Mutex
	topics map[string]*topic[T]
	vacant func(T) bool
}

func newFeed[T any](vacant func(T) bool) *feed[T] {
	return &feed[T]{
		topics: make(map[string]*topic[T]),
		vacant: vacant,
	}
}

// acquire returns key's topic with its lock held, or nil when there is none and create is false
func (f *feed[T]) acquire(key string, create bool) *topic[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, ok := f.topics[key]
	if !ok {
		if !create {
			return nil
		}
		t = &topic[T]{subs: make(map[int]*subscriber[T])}
		f.topics[key] = t
	}
	t.mu.Lock()
	return t
}

// idle must be called with t.mu held
func (f *feed[T]) idle(t *topic[T]) bool {
	if len(t.subs) > 0 {
		return false
	}
	return !t.has || (f.vacant != nil && f.vacant(t.value))
}

// release drops t from the feed if it is still registered under key and idle
func (f *feed[T]) release(key string, t *topic[T]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.mu.Lock()
	defer t.mu.Unlock()

	if f.topics[key] == t && f.idle(t) {
		delete(f.topics, key)
	}
}

// update applies fn to the current value under the topic lock and fans the result out.
// When fn reports false nothing is stored or delivered.
func (f *feed[T]) update(key string, fn func(cur T, has bool) (T, bool)) T {
	t := f.acquire(key, true)
	next, ok := fn(t.value, t.has)
	if ok {
		t.value, t.has = next, true
		for _, s := range t.subs {
			s.push(next)
		}
	} else {
		next = t.value
	}
	idle := f.idle(t)
	t.mu.Unlock()

	if idle {
		f.release(key, t)
	}
	return next
}

func (f *feed[T]) get(key string) (T, bool) {
	t := f.acquire(key, false)
	if t == nil {
		var zero T
		return zero, false
	}
	defer t.mu.Unlock()
	return t.value, t.has
}

// subscribe registers fn and replays the current value, if any, as its first delivery
func (f *feed[T]) subscribe(key string, fn func(T)) func() {
	s := newSubscriber(fn)

	t := f.acquire(key, true)
	id := t.nextID
	t.nextID++
	t.subs[id] = s
	if t.has {
		s.push(t.value)
	}
	t.mu.Unlock()

	return func() {
		f.mu.Lock()
		t.mu.Lock()
		delete(t.subs, id)
		if f.topics[key] == t && f.idle(t) {
			delete(f.topics, key)
		}
		t.mu.Unlock()
		f.mu.Unlock()
		s.stop()
	}
}
