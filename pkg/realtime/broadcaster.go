// Package realtime provides the plumbing between long-lived state objects
// and their SSE subscribers: a fan-out broadcaster and a keyed registry.
package realtime

import "sync"

// Broadcaster fans events out to SSE subscribers. Slow subscribers are
// skipped rather than blocked; a later event catches them up, since
// consumers refetch a snapshot per event rather than relying on deltas.
type Broadcaster[T any] struct {
	mu   sync.Mutex
	subs map[chan T]struct{}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{subs: make(map[chan T]struct{})}
}

// Subscribe registers a new subscriber and returns its event channel.
func (b *Broadcaster[T]) Subscribe() chan T {
	ch := make(chan T, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel. Safe to call
// more than once for the same channel.
func (b *Broadcaster[T]) Unsubscribe(ch chan T) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish delivers an event to all current subscribers.
func (b *Broadcaster[T]) Publish(event T) {
	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- event:
		default:
			// Lagging subscriber; drop, the next event resyncs it.
		}
	}
	b.mu.Unlock()
}
