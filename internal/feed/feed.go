// Package feed provides a broadcast value that remembers the latest
// publication.
package feed

import (
	"context"
	"sync"
)

type config struct {
	buffer int
	replay bool
}

type Option func(*config)

// WithBuffer lets each subscriber fall behind by n values before the oldest
// pending value is dropped. The default is 1, so slow subscribers only ever
// see the newest value.
func WithBuffer(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.buffer = n
		}
	}
}

// WithoutReplay stops new subscribers from receiving the latest value on
// subscription. Use it for event feeds where a past value means nothing to a
// late subscriber.
func WithoutReplay() Option {
	return func(c *config) { c.replay = false }
}

type Feed[T any] struct {
	mu     sync.Mutex
	cfg    config
	latest T
	has    bool
	subs   map[chan T]struct{}
}

func New[T any](opts ...Option) *Feed[T] {
	cfg := config{buffer: 1, replay: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Feed[T]{
		cfg:  cfg,
		subs: make(map[chan T]struct{}),
	}
}

// Publish stores v as the latest value and hands it to every subscriber
// without blocking.
func (f *Feed[T]) Publish(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.latest = v
	f.has = true
	for ch := range f.subs {
		offer(ch, v)
	}
}

func offer[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Latest returns the most recent value and whether anything was published.
func (f *Feed[T]) Latest() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, f.has
}

// Subscribe returns a channel of future values, preceded by the latest one
// unless the feed was built WithoutReplay. The channel is closed once ctx is
// done.
func (f *Feed[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, f.cfg.buffer)

	f.mu.Lock()
	if f.has && f.cfg.replay {
		ch <- f.latest
	}
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.subs, ch)
		close(ch)
		f.mu.Unlock()
	}()

	return ch
}

// Wait blocks until a value is published or ctx is done.
func (f *Feed[T]) Wait(ctx context.Context) (T, error) {
	if v, ok := f.Latest(); ok {
		return v, nil
	}
	sub, cancel := context.WithCancel(ctx)
	defer cancel()

	select {
	case v, ok := <-f.Subscribe(sub):
		if ok {
			return v, nil
		}
	case <-ctx.Done():
	}
	var zero T
	return zero, ctx.Err()
}

func (f *Feed[T]) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
