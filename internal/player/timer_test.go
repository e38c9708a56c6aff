package player

import (
	"sync"
	"testing"
	"time"
)

// tickRecorder collects countdown callbacks for assertions.
type tickRecorder struct {
	mu      sync.Mutex
	ticks   []int
	expires int
}

func (r *tickRecorder) onTick(remaining int) {
	r.mu.Lock()
	r.ticks = append(r.ticks, remaining)
	r.mu.Unlock()
}

func (r *tickRecorder) onExpire() {
	r.mu.Lock()
	r.expires++
	r.mu.Unlock()
}

func (r *tickRecorder) snapshot() ([]int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.ticks...), r.expires
}

func TestCountdown_TicksDownAndExpiresOnce(t *testing.T) {
	rec := &tickRecorder{}
	c := StartCountdown(5, 5*time.Millisecond, rec.onTick, rec.onExpire)
	defer c.Cancel()

	deadline := time.Now().Add(time.Second)
	for {
		_, expires := rec.snapshot()
		if expires > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("countdown did not expire")
		}
		time.Sleep(time.Millisecond)
	}

	ticks, expires := rec.snapshot()
	want := []int{4, 3, 2, 1, 0}
	if len(ticks) != len(want) {
		t.Fatalf("ticks %v, want %v", ticks, want)
	}
	for i, v := range want {
		if ticks[i] != v {
			t.Fatalf("ticks %v, want %v", ticks, want)
		}
	}
	if expires != 1 {
		t.Errorf("expires %d, want 1", expires)
	}

	// No stray callbacks after expiry.
	time.Sleep(20 * time.Millisecond)
	ticks, expires = rec.snapshot()
	if len(ticks) != len(want) || expires != 1 {
		t.Errorf("callbacks after expiry: ticks %v expires %d", ticks, expires)
	}
}

func TestCountdown_CancelBeforeFirstTickSuppressesCallbacks(t *testing.T) {
	rec := &tickRecorder{}
	c := StartCountdown(3, 20*time.Millisecond, rec.onTick, rec.onExpire)
	c.Cancel()

	time.Sleep(80 * time.Millisecond)
	ticks, expires := rec.snapshot()
	if len(ticks) != 0 {
		t.Errorf("ticks %v, want none", ticks)
	}
	if expires != 0 {
		t.Errorf("expires %d, want 0", expires)
	}
}

func TestCountdown_CancelIsIdempotent(t *testing.T) {
	c := StartCountdown(2, 10*time.Millisecond, nil, nil)
	c.Cancel()
	c.Cancel() // must not panic or double-close
}

func TestCountdown_ZeroSecondsExpiresOnFirstTick(t *testing.T) {
	rec := &tickRecorder{}
	c := StartCountdown(0, 5*time.Millisecond, rec.onTick, rec.onExpire)
	defer c.Cancel()

	deadline := time.Now().Add(time.Second)
	for {
		_, expires := rec.snapshot()
		if expires == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("zero countdown did not expire")
		}
		time.Sleep(time.Millisecond)
	}
	ticks, _ := rec.snapshot()
	if len(ticks) != 1 || ticks[0] != 0 {
		t.Errorf("ticks %v, want [0]", ticks)
	}
}
