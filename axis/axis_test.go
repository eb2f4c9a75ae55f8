package axis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlchart/axis"
	"github.com/katalvlaran/lvlchart/geom"
)

func viewport(lo, hi float64) geom.Viewport {
	return geom.Viewport{
		Plot: geom.Rect{X: 0, Y: 0, W: 400, H: 200},
		T0:   0, T1: 60,
		Lo: lo, Hi: hi,
	}
}

// TestNiceValueStep_Ladder: chosen steps come from the 1/2/2.5/5 ladder
// and respect the minimum pixel spacing.
func TestNiceValueStep_Ladder(t *testing.T) {
	for _, span := range []float64{0.013, 1, 7, 42, 1000, 1e6} {
		step := axis.NiceValueStep(span, 200, 0)
		require.Greater(t, step, 0.0, "span=%v", span)

		spacing := step / span * 200
		assert.GreaterOrEqual(t, spacing, axis.MinGridSpacingPx, "span=%v", span)

		// Mantissa must be one of the ladder values.
		exp := math.Floor(math.Log10(step))
		mant := step / math.Pow(10, exp)
		ok := false
		for _, m := range []float64{1, 2, 2.5, 5, 10} {
			if math.Abs(mant-m) < 1e-9 {
				ok = true
			}
		}
		assert.True(t, ok, "span=%v step=%v mantissa=%v", span, step, mant)
	}
}

// TestNiceValueStep_Hysteresis: the previous step survives small span
// changes that would otherwise flip the interval back and forth.
func TestNiceValueStep_Hysteresis(t *testing.T) {
	prev := axis.NiceValueStep(100, 200, 0)
	// Shrink the span slightly: spacing grows, stays inside the band.
	kept := axis.NiceValueStep(90, 200, prev)
	assert.Equal(t, prev, kept, "step must not flicker on a small range change")

	// Collapse the span dramatically: the old step is now far too sparse.
	repicked := axis.NiceValueStep(5, 200, prev)
	assert.NotEqual(t, prev, repicked)
	assert.Less(t, repicked, prev)
}

// TestNiceTimeStep picks calendar steps and doubles past the table.
func TestNiceTimeStep(t *testing.T) {
	// 60s over 400px: 6.67px per second, so 10s is the first step whose
	// spacing clears the 64px floor.
	assert.Equal(t, 10.0, axis.NiceTimeStep(60, 400))
	// Tiny window: finest step already fits.
	assert.Equal(t, 1.0, axis.NiceTimeStep(5, 400))
	// Half a year over 400px: weeks are too tight, must double beyond the
	// table and still satisfy the spacing bound.
	step := axis.NiceTimeStep(180*86400, 400)
	assert.GreaterOrEqual(t, step/(180*86400)*400, axis.MinTimeSpacingPx)
	assert.Equal(t, 0.0, math.Mod(step, 604800), "doubled steps stay whole weeks")
}

// TestGrid_PoolBounded: the slot pool never exceeds its capacity no
// matter how the range thrashes.
func TestGrid_PoolBounded(t *testing.T) {
	g := axis.NewGrid()
	for i := 0; i < 500; i++ {
		lo := float64(i % 17)
		hi := lo + 1 + float64(i%13)*37
		g.Update(16.67, viewport(lo, hi), nil)
		require.LessOrEqual(t, g.ActiveCount(), axis.GridPoolSize, "tick %d", i)
	}
}

// TestGrid_LabelsFadeInAndPersist: a stable view converges labels to full
// opacity at interior positions.
func TestGrid_LabelsFadeInAndPersist(t *testing.T) {
	g := axis.NewGrid()
	vp := viewport(0, 100)
	for i := 0; i < 400; i++ {
		g.Update(16.67, vp, nil)
	}
	vis := g.Visible(nil)
	require.NotEmpty(t, vis)
	interior := 0
	for _, s := range vis {
		if s.Pos > vp.Plot.Y+axis.EdgeFadePx && s.Pos < vp.Plot.Bottom()-axis.EdgeFadePx {
			interior++
			assert.InDelta(t, 1.0, s.Alpha, 1e-6, "interior label %q", s.Text)
		}
		assert.GreaterOrEqual(t, s.Pos, vp.Plot.Y-1)
		assert.LessOrEqual(t, s.Pos, vp.Plot.Bottom()+1)
	}
	assert.Greater(t, interior, 0)
}

// TestGrid_RemovedTickFadesOut: after the range moves away, orphaned
// slots fade to zero and are recycled rather than vanishing instantly.
func TestGrid_RemovedTickFadesOut(t *testing.T) {
	g := axis.NewGrid()
	for i := 0; i < 200; i++ {
		g.Update(16.67, viewport(0, 100), nil)
	}
	before := g.ActiveCount()
	require.Greater(t, before, 0)

	// Jump the view to a disjoint range: old ticks are all unwanted.
	g.Update(16.67, viewport(10000, 10100), nil)
	for _, s := range g.Visible(nil) {
		if s.Value < 5000 {
			assert.Less(t, s.Alpha, 1.0, "orphaned label must be fading")
		}
	}

	// Long enough for every orphan to fade below the release floor.
	for i := 0; i < 600; i++ {
		g.Update(16.67, viewport(10000, 10100), nil)
	}
	for _, s := range g.Visible(nil) {
		assert.GreaterOrEqual(t, s.Value, 9000.0, "old ticks must be recycled by now")
	}
}

// TestTimeAxis_PoolBounded mirrors the grid boundedness property.
func TestTimeAxis_PoolBounded(t *testing.T) {
	a := axis.NewTimeAxis()
	for i := 0; i < 500; i++ {
		vp := viewport(0, 100)
		vp.T0 = float64(i * 7)
		vp.T1 = vp.T0 + 60 + float64(i%11)*600
		a.Update(16.67, vp, nil)
		require.LessOrEqual(t, a.ActiveCount(), axis.TimePoolSize, "tick %d", i)
	}
}

// TestTimeAxis_OverlapSuppression: labels wider than their tick spacing
// must resolve deterministically to alternating winners, never two full
// neighbors.
func TestTimeAxis_OverlapSuppression(t *testing.T) {
	a := axis.NewTimeAxis()
	vp := viewport(0, 100)
	vp.T0, vp.T1 = 0, 360 // step 60s → 66.7px spacing, 5 interior ticks

	// 12-character labels are ~84px wide: every adjacent pair collides.
	wide := func(sec, step float64) string { return "wide-label-x" }
	for i := 0; i < 400; i++ {
		a.Update(16.67, vp, wide)
	}
	full := 0
	for _, s := range a.Visible(nil) {
		if s.Alpha > 0.9 {
			full++
		}
	}
	assert.Equal(t, 3, full, "every other label survives: t=60, 180, 300")
	assert.Equal(t, 7, a.ActiveCount(), "suppressed and edge labels stay pooled, just invisible")
}

// TestDefaultTimeFormatter matches granularity to the interval.
func TestDefaultTimeFormatter(t *testing.T) {
	assert.Equal(t, "00:02:05", axis.DefaultTimeFormatter(125, 5))
	assert.Equal(t, "00:05", axis.DefaultTimeFormatter(300, 60))
	assert.Equal(t, "Jan 2", axis.DefaultTimeFormatter(86400, 86400))
}
