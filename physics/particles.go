// SPDX-License-Identifier: MIT
package physics

import "math"

const (
	// ParticlePoolSize bounds concurrently live particles.
	ParticlePoolSize = 64

	// SpawnCooldownMs is the minimum gap between bursts.
	SpawnCooldownMs = 120.0
	// MaxBurstsPerSwing caps bursts while the swing direction holds; the
	// counter resets when the direction flips.
	MaxBurstsPerSwing = 3

	// Burst size scales with intensity between these counts.
	burstMinCount = 6
	burstMaxCount = 14

	// particle kinematics, pixels and milliseconds
	particleLifeMinMs  = 400.0
	particleLifeMaxMs  = 900.0
	particleSpeedPx    = 90.0  // px/sec launch speed scale
	particleGravityPx  = 160.0 // px/sec² downward
	particleSizeMinPx  = 1.5
	particleSizeMaxPx  = 3.5
	particleSpreadRad  = 0.9 // half-angle of the launch cone
	particleFadeInFrac = 0.1 // of lifetime
)

// Particle is one pooled particle. Callers read positions and Alpha;
// only the owning system mutates slots.
type Particle struct {
	X, Y   float64
	VX, VY float64 // px/sec
	AgeMs  float64
	LifeMs float64
	SizePx float64
	Alpha  float64
	Active bool
}

// Particles is a fixed-pool burst simulation driven by price swings.
type Particles struct {
	pool [ParticlePoolSize]Particle
	rng  *RNG

	cooldownMs float64
	bursts     int // bursts spent on the current swing
	swingDir   int // sign of the current swing, 0 before the first burst
}

// NewParticles returns a system drawing randomness from rng.
func NewParticles(rng *RNG) *Particles {
	return &Particles{rng: rng}
}

// Burst requests a particle burst at (x, y). dir is the swing direction
// (+1 up, -1 down); a direction flip resets the per-swing budget.
// intensity in [0,1] scales the particle count and launch speed. Returns
// false when the cooldown or the per-swing cap declines the burst.
//
// Complexity: O(count) slot scans, no allocation.
func (p *Particles) Burst(x, y, intensity float64, dir int) bool {
	if dir != 0 && dir != p.swingDir {
		p.swingDir = dir
		p.bursts = 0
	}
	if p.cooldownMs > 0 || p.bursts >= MaxBurstsPerSwing {
		return false
	}
	intensity = clamp01(intensity)
	p.cooldownMs = SpawnCooldownMs
	p.bursts++

	count := burstMinCount + int(intensity*float64(burstMaxCount-burstMinCount))
	up := p.swingDir >= 0
	var i int
	for i = 0; i < count; i++ {
		slot := p.free()
		if slot == nil {
			return true // pool exhausted: partial burst, still a burst
		}
		p.launch(slot, x, y, intensity, up)
	}
	return true
}

// launch initializes one particle in a cone around the swing direction.
func (p *Particles) launch(slot *Particle, x, y, intensity float64, up bool) {
	angle := -math.Pi/2 + p.rng.Signed()*particleSpreadRad
	if !up {
		angle = -angle
	}
	speed := particleSpeedPx * (0.5 + 0.5*intensity) * p.rng.Range(0.6, 1.4)
	*slot = Particle{
		X: x, Y: y,
		VX:     math.Cos(angle) * speed,
		VY:     math.Sin(angle) * speed,
		LifeMs: p.rng.Range(particleLifeMinMs, particleLifeMaxMs),
		SizePx: p.rng.Range(particleSizeMinPx, particleSizeMaxPx),
		Active: true,
	}
}

// Update advances all live particles by dtMs and retires expired ones.
//
// Complexity: O(ParticlePoolSize).
func (p *Particles) Update(dtMs float64) {
	if dtMs < 0 || math.IsNaN(dtMs) {
		dtMs = 0
	}
	p.cooldownMs -= dtMs
	if p.cooldownMs < 0 {
		p.cooldownMs = 0
	}
	dt := dtMs / 1000
	var i int
	for i = 0; i < ParticlePoolSize; i++ {
		s := &p.pool[i]
		if !s.Active {
			continue
		}
		s.AgeMs += dtMs
		if s.AgeMs >= s.LifeMs {
			*s = Particle{}
			continue
		}
		s.X += s.VX * dt
		s.Y += s.VY * dt
		s.VY += particleGravityPx * dt
		s.Alpha = lifeAlpha(s.AgeMs, s.LifeMs, particleFadeInFrac)
	}
}

// Visible appends all live particles to dst and returns it.
func (p *Particles) Visible(dst []Particle) []Particle {
	var i int
	for i = 0; i < ParticlePoolSize; i++ {
		if p.pool[i].Active {
			dst = append(dst, p.pool[i])
		}
	}
	return dst
}

// ActiveCount returns the number of live particles.
func (p *Particles) ActiveCount() int {
	n := 0
	var i int
	for i = 0; i < ParticlePoolSize; i++ {
		if p.pool[i].Active {
			n++
		}
	}
	return n
}

func (p *Particles) free() *Particle {
	var i int
	for i = 0; i < ParticlePoolSize; i++ {
		if !p.pool[i].Active {
			return &p.pool[i]
		}
	}
	return nil
}

// lifeAlpha ramps opacity in over fadeFrac of the lifetime and back out
// over the same fraction at the end.
func lifeAlpha(ageMs, lifeMs, fadeFrac float64) float64 {
	if lifeMs <= 0 {
		return 0
	}
	t := ageMs / lifeMs
	switch {
	case t < fadeFrac:
		return t / fadeFrac
	case t > 1-fadeFrac:
		return (1 - t) / fadeFrac
	default:
		return 1
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
