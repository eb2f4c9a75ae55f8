// SPDX-License-Identifier: MIT
package physics

import "math"

const (
	// ShakeDecayPerMs multiplies the amplitude every millisecond.
	ShakeDecayPerMs = 0.994
	// ShakeFloorPx: below this the amplitude snaps to exactly zero, so a
	// settled chart has no residual sub-pixel jitter.
	ShakeFloorPx = 0.05
	// ShakeMaxPx caps accumulated amplitude.
	ShakeMaxPx = 12.0
)

// Shake accumulates screen-shake amplitude from burst impulses and decays
// it exponentially per millisecond.
type Shake struct {
	amp float64
	rng *RNG
}

// NewShake returns a shake accumulator drawing offsets from rng.
func NewShake(rng *RNG) *Shake {
	return &Shake{rng: rng}
}

// Impulse adds burst energy, capped at ShakeMaxPx.
func (s *Shake) Impulse(amp float64) {
	if amp <= 0 {
		return
	}
	s.amp += amp
	if s.amp > ShakeMaxPx {
		s.amp = ShakeMaxPx
	}
}

// Update decays the amplitude by dtMs worth of per-millisecond decay and
// snaps to zero below the floor.
func (s *Shake) Update(dtMs float64) {
	if s.amp == 0 || dtMs <= 0 || math.IsNaN(dtMs) {
		return
	}
	s.amp *= math.Pow(ShakeDecayPerMs, dtMs)
	if s.amp < ShakeFloorPx {
		s.amp = 0
	}
}

// Amplitude returns the current amplitude in pixels.
func (s *Shake) Amplitude() float64 { return s.amp }

// Offset draws a random per-frame displacement within ±Amplitude. A zero
// amplitude returns (0, 0) without consuming the generator.
func (s *Shake) Offset() (dx, dy float64) {
	if s.amp == 0 {
		return 0, 0
	}
	return s.rng.Signed() * s.amp, s.rng.Signed() * s.amp
}
