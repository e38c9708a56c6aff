package player

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestSpinTarget_LandsOnSegment(t *testing.T) {
	for segment := 0; segment < wheelSegments; segment++ {
		for _, jitter := range []float64{-20, -7.5, 0, 12.25, 19.9} {
			got := spinTarget(0, segment, jitter)
			if landed := landedSegment(got); landed != segment {
				t.Errorf("segment %d jitter %.1f: landed %d (rotation %.2f)", segment, jitter, landed, got)
			}
		}
	}
}

func TestSpinTarget_AdvancesForwardWithMinSpins(t *testing.T) {
	current := 3117.0 // mid-flight rotation from an earlier spin
	got := spinTarget(current, 2, 5)
	if got <= current {
		t.Fatalf("target %.2f not ahead of current %.2f", got, current)
	}
	if delta := got - current; delta < 360*minSpins {
		t.Errorf("delta %.2f, want at least %d full rotations", delta, minSpins)
	}
	if delta := got - current; delta >= 360*(minSpins+1) {
		t.Errorf("delta %.2f, want the smallest aligned rotation plus %d turns", delta, minSpins)
	}
	if landed := landedSegment(got); landed != 2 {
		t.Errorf("landed %d, want 2", landed)
	}
}

func TestPickSegmentAndJitter_Ranges(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		if seg := pickSegment(r); seg < 0 || seg >= wheelSegments {
			t.Fatalf("segment %d out of range", seg)
		}
		if j := spinJitter(r); j < -maxJitter || j >= maxJitter {
			t.Fatalf("jitter %.2f out of range", j)
		}
	}
}

func TestSpinTickDelays_GeometricSchedule(t *testing.T) {
	delays := spinTickDelays()
	if len(delays) != 30 {
		t.Fatalf("len %d, want 30", len(delays))
	}
	if delays[0] != 50*time.Millisecond {
		t.Errorf("first delay %v, want 50ms", delays[0])
	}
	for i := 1; i < len(delays); i++ {
		ratio := float64(delays[i]) / float64(delays[i-1])
		if math.Abs(ratio-1.1) > 0.01 {
			t.Fatalf("delay %d ratio %.3f, want ~1.1", i, ratio)
		}
	}
}
