package realtime

import "testing"

func TestHub_PutThenGet(t *testing.T) {
	h := NewHub[string]()
	h.Put("s1", "session one")

	got, ok := h.Get("s1")
	if !ok || got != "session one" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
	if _, ok := h.Get("missing"); ok {
		t.Error("unknown id should not be found")
	}
}

func TestHub_PutReplacesEntry(t *testing.T) {
	h := NewHub[string]()
	h.Put("s1", "old")
	h.Put("s1", "new")

	got, _ := h.Get("s1")
	if got != "new" {
		t.Errorf("got %q, want new", got)
	}
}

func TestHub_RemoveDropsEntry(t *testing.T) {
	h := NewHub[string]()
	h.Put("s1", "state")
	h.Remove("s1")

	if _, ok := h.Get("s1"); ok {
		t.Error("entry should be gone")
	}
	if b := h.Broadcaster("s1"); b != nil {
		t.Error("removed id should have no broadcaster")
	}
	h.Remove("s1") // removing twice is fine
}

func TestHub_PublishReachesSubscribers(t *testing.T) {
	h := NewHub[string]()
	h.Put("s1", "state")

	ch := h.Broadcaster("s1").Subscribe()
	defer h.Broadcaster("s1").Unsubscribe(ch)

	h.Publish("s1", "state")
	if got := <-ch; got != "state" {
		t.Errorf("got %q, want state", got)
	}
}

func TestHub_PublishToUnknownIDIsNoOp(t *testing.T) {
	h := NewHub[string]()
	h.Publish("ghost", "state") // must not panic
}
