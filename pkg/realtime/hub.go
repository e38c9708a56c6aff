package realtime

import "sync"

// Entry pairs a piece of keyed state with its broadcaster.
type Entry[T any] struct {
	ID    string
	State T
	hub   *Broadcaster[string]
}

// Hub is a keyed registry of live state objects, each with an event
// broadcaster for its SSE subscribers. The state drives its own timing;
// the hub only tracks membership and fan-out.
type Hub[T any] struct {
	mu      sync.RWMutex
	entries map[string]*Entry[T]
}

// NewHub creates an empty hub.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{entries: make(map[string]*Entry[T])}
}

// Put registers state under id with a fresh broadcaster, replacing any
// previous entry under that id.
func (h *Hub[T]) Put(id string, state T) *Entry[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	e := &Entry[T]{ID: id, State: state, hub: NewBroadcaster[string]()}
	h.entries[id] = e
	return e
}

// Get returns the state under id if present.
func (h *Hub[T]) Get(id string) (T, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	e, ok := h.entries[id]
	if !ok {
		var zero T
		return zero, false
	}
	return e.State, true
}

// Remove drops the entry under id. Its broadcaster's subscribers are left
// to disconnect on their own; publishing to a removed id is a no-op.
func (h *Hub[T]) Remove(id string) {
	h.mu.Lock()
	delete(h.entries, id)
	h.mu.Unlock()
}

// Broadcaster returns the broadcaster for id, or nil when id is unknown.
func (h *Hub[T]) Broadcaster(id string) *Broadcaster[string] {
	h.mu.RLock()
	defer h.mu.RUnlock()
	e, ok := h.entries[id]
	if !ok {
		return nil
	}
	return e.hub
}

// Publish notifies subscribers of id's broadcaster, if the entry exists.
func (h *Hub[T]) Publish(id string, event string) {
	if hub := h.Broadcaster(id); hub != nil {
		hub.Publish(event)
	}
}
