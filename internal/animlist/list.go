// Package animlist tracks the lifecycle of keyed items across full list
// snapshots so that every removal stays visible for a while before the entry
// is dropped.
package animlist

import (
	"cmp"
	"context"
	"reflect"
	"slices"
	"sync"
	"time"
)

const DefaultDuration = 250 * time.Millisecond

// purgeFactor is how many animation durations an exiting entry may linger
// before a sweep drops it.
const purgeFactor = 3

type Phase uint8

const (
	PhaseEntering Phase = iota
	PhaseActive
	PhaseExiting
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseActive:
		return "active"
	case PhaseExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

type Entry[K cmp.Ordered, T any] struct {
	Key  K
	Item T
	// RemovedAt is zero while the entry is visible and set to the moment its
	// key disappeared from the input otherwise.
	RemovedAt time.Time
	EnteredAt time.Time
}

func (e Entry[K, T]) Removing() bool {
	return !e.RemovedAt.IsZero()
}

// Phase derives the transition the entry is in at now.
func (e Entry[K, T]) Phase(now time.Time, d time.Duration) Phase {
	if e.Removing() {
		return PhaseExiting
	}
	if now.Sub(e.EnteredAt) < d {
		return PhaseEntering
	}
	return PhaseActive
}

type Options struct {
	Duration time.Duration
	Now      func() time.Time
}

type List[K cmp.Ordered, T any] struct {
	mu       sync.Mutex
	entries  []Entry[K, T]
	last     []T
	keyOf    func(T) K
	duration time.Duration
	now      func() time.Time
}

func New[K cmp.Ordered, T any](keyOf func(T) K, opts Options) *List[K, T] {
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &List[K, T]{
		keyOf:    keyOf,
		duration: opts.Duration,
		now:      opts.Now,
	}
}

func (l *List[K, T]) Duration() time.Duration {
	return l.duration
}

// Update applies a full snapshot. Keys new to the list are appended as
// entering, keys already present get the new payload and any pending exit is
// cancelled, keys missing from items start exiting. The list is kept sorted
// by key and swept afterwards, even when items carry no change.
func (l *List[K, T]) Update(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if !reflect.DeepEqual(items, l.last) {
		l.apply(items, now)
		l.last = slices.Clone(items)
	}
	l.sweep(now)
}

func (l *List[K, T]) apply(items []T, now time.Time) {
	index := make(map[K]int, len(l.entries))
	for i, e := range l.entries {
		index[e.Key] = i
	}

	present := make(map[K]struct{}, len(items))
	for _, item := range items {
		key := l.keyOf(item)
		present[key] = struct{}{}
		if i, ok := index[key]; ok {
			l.entries[i].Item = item
			if l.entries[i].Removing() {
				l.entries[i].RemovedAt = time.Time{}
				l.entries[i].EnteredAt = now
			}
			continue
		}
		index[key] = len(l.entries)
		l.entries = append(l.entries, Entry[K, T]{Key: key, Item: item, EnteredAt: now})
	}

	for i := range l.entries {
		if _, ok := present[l.entries[i].Key]; ok {
			continue
		}
		// Already exiting entries keep their original removal time so that
		// repeated snapshots cannot postpone the purge forever.
		if !l.entries[i].Removing() {
			l.entries[i].RemovedAt = now
		}
	}

	slices.SortStableFunc(l.entries, func(a, b Entry[K, T]) int {
		return cmp.Compare(a.Key, b.Key)
	})
}

// Sweep drops entries that have been exiting for longer than three
// animation durations. It returns how many entries were dropped.
func (l *List[K, T]) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sweep(l.now())
}

func (l *List[K, T]) sweep(now time.Time) int {
	limit := purgeFactor * l.duration
	before := len(l.entries)
	l.entries = slices.DeleteFunc(l.entries, func(e Entry[K, T]) bool {
		return e.Removing() && now.Sub(e.RemovedAt) > limit
	})
	return before - len(l.entries)
}

// Complete is called when the exit transition of key finished. The entry is
// dropped right away. Entries that are not exiting are left alone, which
// covers a completion racing with the key reappearing.
func (l *List[K, T]) Complete(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := slices.IndexFunc(l.entries, func(e Entry[K, T]) bool { return e.Key == key })
	if i < 0 || !l.entries[i].Removing() {
		return false
	}
	l.entries = slices.Delete(l.entries, i, i+1)
	return true
}

func (l *List[K, T]) Entries() []Entry[K, T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.entries)
}

func (l *List[K, T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Run sweeps once per animation duration until ctx is done.
func (l *List[K, T]) Run(ctx context.Context) {
	ticker := time.NewTicker(l.duration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}
