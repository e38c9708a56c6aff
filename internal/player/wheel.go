package player

import (
	"math"
	"math/rand"
	"time"
)

// Wheel geometry. The pointer is fixed at the top of the face (0°); segment
// i spans [i*60°, (i+1)*60°) with its center at i*60+30. Rotating the wheel
// clockwise by R degrees puts face angle (360 - R mod 360) under the pointer.
const (
	segmentAngle  = 360.0 / wheelSegments
	wheelSegments = 6
	minSpins      = 5    // full extra rotations for visual effect
	maxJitter     = 20.0 // degrees either side of the segment center
)

// DefaultSpinDuration matches the fixed deceleration the face animates with.
const DefaultSpinDuration = 6 * time.Second

// pickSegment chooses the winning segment uniformly. The outcome is decided
// here, at spin start; everything after is presentation.
func pickSegment(r *rand.Rand) int {
	return r.Intn(wheelSegments)
}

// spinJitter returns a landing offset in [-maxJitter, +maxJitter) so the
// pointer does not always rest at dead-center of a segment.
func spinJitter(r *rand.Rand) float64 {
	return r.Float64()*2*maxJitter - maxJitter
}

// spinTarget computes the absolute rotation that parks the pointer on the
// jittered center of the winning segment: the current rotation advanced
// forward (never backward) to the nearest aligned angle, plus minSpins full
// turns.
func spinTarget(current float64, segment int, jitter float64) float64 {
	pointer := float64(segment)*segmentAngle + segmentAngle/2 + jitter
	targetMod := math.Mod(360-pointer, 360)
	if targetMod < 0 {
		targetMod += 360
	}
	currentMod := math.Mod(current, 360)
	if currentMod < 0 {
		currentMod += 360
	}
	distance := targetMod - currentMod
	if distance < 0 {
		distance += 360
	}
	return current + distance + 360*minSpins
}

// landedSegment recovers the segment index resting under the pointer for a
// given absolute rotation. Inverse of spinTarget for any jitter within a
// segment's span.
func landedSegment(rotation float64) int {
	pointer := 360 - math.Mod(rotation, 360)
	pointer = math.Mod(pointer, 360)
	if pointer < 0 {
		pointer += 360
	}
	idx := int(pointer / segmentAngle)
	if idx >= wheelSegments {
		idx = wheelSegments - 1
	}
	return idx
}

// spinTickDelays is the deceleration cue schedule: intervals starting at
// 50ms and lengthening by 1.1x per tick, for up to 30 ticks. Purely a
// presentation cue; it has no effect on the outcome.
func spinTickDelays() []time.Duration {
	const (
		first  = 50 * time.Millisecond
		growth = 1.1
		count  = 30
	)
	delays := make([]time.Duration, count)
	interval := float64(first)
	for i := range delays {
		delays[i] = time.Duration(interval)
		interval *= growth
	}
	return delays
}
