// SPDX-License-Identifier: MIT
package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlchart/geom"
)

// TestPath_ResetKeepsCapacity verifies the pooling contract: rebuilding a
// path after Reset must not grow past its steady-state capacity.
func TestPath_ResetKeepsCapacity(t *testing.T) {
	var p geom.Path
	for i := 0; i < 100; i++ {
		p.LineTo(float64(i), 0)
	}
	capBefore := cap(p.Verbs())

	p.Reset()
	require.True(t, p.Empty(), "Reset must empty the path")
	for i := 0; i < 100; i++ {
		p.LineTo(float64(i), 0)
	}
	assert.Equal(t, capBefore, cap(p.Verbs()), "rebuilding at the same size must reuse the backing array")
}

// TestPath_Last returns the end point of the latest drawing verb,
// skipping Close.
func TestPath_Last(t *testing.T) {
	var p geom.Path
	_, ok := p.Last()
	assert.False(t, ok, "empty path has no last point")

	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.Close()
	pt, ok := p.Last()
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 3, Y: 4}, pt)
}

// TestPath_AddRoundedRect_ClampsRadius checks that an oversized radius is
// clamped to half the shorter side and a non-positive radius degrades to a
// plain rectangle.
func TestPath_AddRoundedRect_ClampsRadius(t *testing.T) {
	var p geom.Path
	p.AddRoundedRect(geom.Rect{X: 0, Y: 0, W: 10, H: 4}, 100)
	require.False(t, p.Empty())
	for _, v := range p.Verbs() {
		if v.Op == geom.OpClose {
			continue
		}
		assert.GreaterOrEqual(t, v.P3.X, 0.0)
		assert.LessOrEqual(t, v.P3.X, 10.0)
		assert.GreaterOrEqual(t, v.P3.Y, 0.0)
		assert.LessOrEqual(t, v.P3.Y, 4.0)
	}

	var q geom.Path
	q.AddRoundedRect(geom.Rect{W: 10, H: 4}, 0)
	assert.Equal(t, 5, q.Len(), "radius<=0 must emit a plain 4-corner rect + close")
}

// TestViewport_Mapping checks forward and inverse time mapping plus the
// inverted value axis.
func TestViewport_Mapping(t *testing.T) {
	vp := geom.Viewport{
		Plot: geom.Rect{X: 10, Y: 20, W: 100, H: 50},
		T0:   1000, T1: 1100,
		Lo: 0, Hi: 10,
	}

	assert.InDelta(t, 10, vp.XForTime(1000), 1e-12)
	assert.InDelta(t, 110, vp.XForTime(1100), 1e-12)
	assert.InDelta(t, 60, vp.XForTime(1050), 1e-12)

	// Inverse clamps into the plot.
	assert.InDelta(t, 1000, vp.TimeForX(-500), 1e-12)
	assert.InDelta(t, 1100, vp.TimeForX(9999), 1e-12)
	assert.InDelta(t, 1050, vp.TimeForX(60), 1e-12)

	// Value axis is inverted: Lo at the bottom, Hi at the top.
	assert.InDelta(t, 70, vp.YForValue(0), 1e-12)
	assert.InDelta(t, 20, vp.YForValue(10), 1e-12)
}

// TestViewport_DegenerateSpans ensures zero spans produce finite output
// instead of NaN/Inf.
func TestViewport_DegenerateSpans(t *testing.T) {
	vp := geom.Viewport{Plot: geom.Rect{W: 100, H: 50}, T0: 5, T1: 5, Lo: 3, Hi: 3}
	assert.False(t, isNaNOrInf(vp.XForTime(5)))
	assert.False(t, isNaNOrInf(vp.YForValue(3)))
	assert.False(t, isNaNOrInf(vp.TimeForX(50)))
}

func isNaNOrInf(f float64) bool { return f != f || f > 1e300 || f < -1e300 }
