// SPDX-License-Identifier: MIT
package physics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlchart/geom"
	"github.com/katalvlaran/lvlchart/physics"
)

func TestRNG_Deterministic(t *testing.T) {
	a, b := physics.NewRNG(42), physics.NewRNG(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Float64(), b.Float64()
		require.Equal(t, va, vb, "same seed, same sequence")
		require.GreaterOrEqual(t, va, 0.0)
		require.Less(t, va, 1.0)
	}

	c := physics.NewRNG(43)
	assert.NotEqual(t, physics.NewRNG(42).Float64(), c.Float64(), "seeds diverge")

	// seed==0 maps to a fixed default, still deterministic
	assert.Equal(t, physics.NewRNG(0).Float64(), physics.NewRNG(0).Float64())

	r := physics.NewRNG(7)
	for i := 0; i < 50; i++ {
		v := r.Range(10, 20)
		require.GreaterOrEqual(t, v, 10.0)
		require.Less(t, v, 20.0)
	}
}

// TestParticles_BurstGating covers the cooldown and the per-swing cap.
func TestParticles_BurstGating(t *testing.T) {
	p := physics.NewParticles(physics.NewRNG(7))

	require.True(t, p.Burst(100, 100, 0.5, 1))
	n := p.ActiveCount()
	assert.GreaterOrEqual(t, n, 6, "at least the minimum burst count")
	assert.LessOrEqual(t, n, 14)

	assert.False(t, p.Burst(100, 100, 0.5, 1), "cooldown declines")

	p.Update(physics.SpawnCooldownMs)
	require.True(t, p.Burst(100, 100, 0.5, 1), "cooldown elapsed")
	p.Update(physics.SpawnCooldownMs)
	require.True(t, p.Burst(100, 100, 0.5, 1))
	p.Update(physics.SpawnCooldownMs)
	assert.False(t, p.Burst(100, 100, 0.5, 1), "per-swing budget spent")

	// A direction flip resets the budget.
	assert.True(t, p.Burst(100, 100, 0.5, -1))
}

// TestParticles_Expiry: every particle retires within its lifetime.
func TestParticles_Expiry(t *testing.T) {
	p := physics.NewParticles(physics.NewRNG(7))
	require.True(t, p.Burst(100, 100, 1, 1))
	require.Greater(t, p.ActiveCount(), 0)

	for i := 0; i < 10; i++ {
		p.Update(100)
	}
	assert.Equal(t, 0, p.ActiveCount(), "all lifetimes are under 1s")
	assert.Empty(t, p.Visible(nil))
}

// TestParticles_Reproducible pins exact positions for a fixed seed: two
// systems fed the same calls hold identical pools.
func TestParticles_Reproducible(t *testing.T) {
	run := func() []physics.Particle {
		p := physics.NewParticles(physics.NewRNG(99))
		p.Burst(50, 80, 0.7, 1)
		p.Update(16.67)
		p.Update(16.67)
		p.Update(physics.SpawnCooldownMs)
		p.Burst(60, 90, 0.3, -1)
		p.Update(16.67)
		return p.Visible(nil)
	}
	first, second := run(), run()
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

// TestParticles_PoolBounded: spamming bursts never exceeds the pool, and
// overflow declines without error.
func TestParticles_PoolBounded(t *testing.T) {
	p := physics.NewParticles(physics.NewRNG(3))
	dir := 1
	for i := 0; i < 40; i++ {
		p.Burst(100, 100, 1, dir)
		dir = -dir
		p.Update(physics.SpawnCooldownMs)
		require.LessOrEqual(t, p.ActiveCount(), physics.ParticlePoolSize)
	}
}

func TestShake_AccumulateDecaySnap(t *testing.T) {
	s := physics.NewShake(physics.NewRNG(5))
	assert.Equal(t, 0.0, s.Amplitude())

	dx, dy := s.Offset()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	s.Impulse(5)
	assert.Equal(t, 5.0, s.Amplitude())
	s.Impulse(100)
	assert.Equal(t, physics.ShakeMaxPx, s.Amplitude(), "impulses cap at the maximum")

	s.Update(100)
	want := physics.ShakeMaxPx * math.Pow(physics.ShakeDecayPerMs, 100)
	assert.InDelta(t, want, s.Amplitude(), 1e-12)

	dx, dy = s.Offset()
	assert.LessOrEqual(t, math.Abs(dx), s.Amplitude())
	assert.LessOrEqual(t, math.Abs(dy), s.Amplitude())

	s.Update(5000)
	assert.Equal(t, 0.0, s.Amplitude(), "snaps to exactly zero below the floor")
}

func tickerPlot() geom.Rect { return geom.Rect{X: 0, Y: 0, W: 400, H: 200} }

// TestTicker_WeightedPick: with a single sized level, every spawned label
// comes from it.
func TestTicker_WeightedPick(t *testing.T) {
	tk := physics.NewTicker(physics.NewRNG(11))
	bids := []physics.Level{{Price: 100, Size: 5}}

	var picked []float64
	format := func(price, size float64, bid bool) string {
		picked = append(picked, price)
		require.True(t, bid)
		return "bid"
	}
	for i := 0; i < 200; i++ {
		tk.Update(100, bids, nil, 0, tickerPlot(), format)
	}
	require.NotEmpty(t, picked, "base spawn rate produces labels over 20s")
	for _, pr := range picked {
		assert.Equal(t, 100.0, pr)
	}
}

// TestTicker_ZeroSizeFallback: an all-zero book falls back to the first
// bid, then the first ask; an empty book spawns nothing.
func TestTicker_ZeroSizeFallback(t *testing.T) {
	tk := physics.NewTicker(physics.NewRNG(11))
	bids := []physics.Level{{Price: 99, Size: 0}}
	asks := []physics.Level{{Price: 101, Size: 0}}

	seen := map[float64]bool{}
	format := func(price, _ float64, bid bool) string {
		seen[price] = true
		assert.True(t, bid, "bids win the fallback")
		return ""
	}
	for i := 0; i < 200; i++ {
		tk.Update(100, bids, asks, 0, tickerPlot(), format)
	}
	assert.True(t, seen[99])
	assert.False(t, seen[101])

	tk2 := physics.NewTicker(physics.NewRNG(11))
	for i := 0; i < 200; i++ {
		tk2.Update(100, asks[:0], nil, 0, tickerPlot(), nil)
	}
	assert.Equal(t, 0, tk2.ActiveCount(), "empty book never spawns")
}

// TestTicker_ScrollAndCull: labels move up every frame and are culled once
// expired or past the top edge.
func TestTicker_ScrollAndCull(t *testing.T) {
	tk := physics.NewTicker(physics.NewRNG(2))
	bids := []physics.Level{{Price: 100, Size: 5}}

	for i := 0; i < 30; i++ {
		tk.Update(100, bids, nil, 0.5, tickerPlot(), nil)
	}
	labels := tk.Visible(nil)
	require.NotEmpty(t, labels)
	for _, l := range labels {
		assert.Less(t, l.Y, tickerPlot().Bottom(), "scrolled up from the spawn edge")
		assert.GreaterOrEqual(t, l.Y, tickerPlot().Y)
	}

	y0 := labels[0].Y
	tk.Update(100, bids, nil, 0.5, tickerPlot(), nil)
	next := tk.Visible(nil)
	require.NotEmpty(t, next)
	assert.Less(t, next[0].Y, y0)

	for i := 0; i < 10; i++ {
		tk.Update(1000, nil, nil, 0, tickerPlot(), nil)
	}
	assert.Equal(t, 0, tk.ActiveCount(), "all labels expired or scrolled off")
}

// TestTicker_PoolBounded: sustained maximum churn never exceeds the pool.
func TestTicker_PoolBounded(t *testing.T) {
	tk := physics.NewTicker(physics.NewRNG(8))
	size := 100.0
	for i := 0; i < 500; i++ {
		size += 1000 // violent churn
		bids := []physics.Level{{Price: 100, Size: size}}
		tk.Update(16.67, bids, nil, 1, tickerPlot(), nil)
		require.LessOrEqual(t, tk.ActiveCount(), physics.TickerPoolSize)
	}
}
