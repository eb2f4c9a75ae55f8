// SPDX-License-Identifier: MIT
package geom

// Viewport maps data space onto a pixel rectangle: the time domain
// [T0, T1] onto [Plot.X, Plot.X+Plot.W] and the value range [Lo, Hi] onto
// [Plot.Y+Plot.H, Plot.Y] (screen Y grows downward, values grow upward).
//
// A Viewport is a per-frame snapshot: the orchestrator fills one from the
// previously committed animated domain/range, and every pipeline of that
// frame maps through the same instance, which is what keeps all layers of
// one frame mutually consistent.
type Viewport struct {
	Plot   Rect    // destination pixels
	T0, T1 float64 // visible time domain, seconds
	Lo, Hi float64 // visible value range
}

// TimeSpan returns T1-T0 floored to Epsilon.
func (v Viewport) TimeSpan() float64 {
	if s := v.T1 - v.T0; s > Epsilon {
		return s
	}
	return Epsilon
}

// ValueSpan returns Hi-Lo floored to Epsilon.
func (v Viewport) ValueSpan() float64 {
	if s := v.Hi - v.Lo; s > Epsilon {
		return s
	}
	return Epsilon
}

// XForTime maps a time in seconds to a pixel X. Times outside [T0, T1]
// map outside the plot; callers clip or clamp as appropriate.
func (v Viewport) XForTime(t float64) float64 {
	return v.Plot.X + (t-v.T0)/v.TimeSpan()*v.Plot.W
}

// TimeForX inverts XForTime, clamping x into the plot first so pointer
// positions just outside the plot resolve to the nearest edge.
func (v Viewport) TimeForX(x float64) float64 {
	x = v.Plot.ClampX(x)
	if v.Plot.W <= Epsilon {
		return v.T0
	}
	return v.T0 + (x-v.Plot.X)/v.Plot.W*v.TimeSpan()
}

// YForValue maps a value to a pixel Y (inverted axis).
func (v Viewport) YForValue(val float64) float64 {
	return v.Plot.Y + v.Plot.H - (val-v.Lo)/v.ValueSpan()*v.Plot.H
}
