package spline

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlchart/geom"
)

// fcBound is the Fritsch–Carlson stability bound: tangent pairs are scaled
// so that α²+β² never exceeds fcBound² (= 9).
const fcBound = 3.0

// Build appends a monotone cubic Hermite curve through pts (ascending X)
// onto dst. dst is Reset first. Points are pixel-space.
//
// 0 points → empty path. 1 point → MoveTo only (the caller is expected to
// widen a single sample into a flat two-point line before calling).
// 2 points → straight segment.
func Build(dst *geom.Path, pts []geom.Point) {
	dst.Reset()
	n := len(pts)
	if n == 0 {
		return
	}
	dst.MoveTo(pts[0].X, pts[0].Y)
	if n == 1 {
		return
	}
	if n == 2 {
		dst.LineTo(pts[1].X, pts[1].Y)
		return
	}
	for i := 0; i < n-1; i++ {
		h := pts[i+1].X - pts[i].X
		if h <= geom.Epsilon {
			// Duplicate timestamp: vertical jump, last value wins.
			dst.LineTo(pts[i+1].X, pts[i+1].Y)
			continue
		}
		m0, m1 := segmentTangents(pts, i)
		third := h / 3
		dst.CubicTo(
			pts[i].X+third, pts[i].Y+m0*third,
			pts[i+1].X-third, pts[i+1].Y-m1*third,
			pts[i+1].X, pts[i+1].Y,
		)
	}
}

// EvalAt evaluates the same curve Build draws at position x, returning the
// interpolated Y. x outside the point range clamps to the nearest endpoint
// value. Returns (0, false) when pts is empty.
func EvalAt(pts []geom.Point, x float64) (float64, bool) {
	n := len(pts)
	if n == 0 {
		return 0, false
	}
	if n == 1 || x <= pts[0].X {
		return pts[0].Y, true
	}
	if x >= pts[n-1].X {
		return pts[n-1].Y, true
	}
	// Locate the segment [i, i+1] containing x.
	i := sort.Search(n-1, func(k int) bool { return pts[k+1].X >= x }) // O(log n)
	h := pts[i+1].X - pts[i].X
	if h <= geom.Epsilon {
		return pts[i+1].Y, true
	}
	m0, m1 := segmentTangents(pts, i)

	// Cubic Hermite basis on normalized t ∈ [0,1]; exact at the knots.
	t := (x - pts[i].X) / h
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*pts[i].Y + h10*h*m0 + h01*pts[i+1].Y + h11*h*m1, true
}

// segmentTangents returns the clamped Hermite tangents for segment i of
// pts (i+1 < len(pts), segment width > Epsilon). The Fritsch–Carlson clamp
// is applied locally to this segment's copy of the tangents, keeping the
// result a pure function of pts[i-1..i+2].
func segmentTangents(pts []geom.Point, i int) (m0, m1 float64) {
	d := secant(pts, i)
	if d == 0 {
		// Flat segment: both tangents must be zero to stay flat.
		return 0, 0
	}
	m0 = knotTangent(pts, i)
	m1 = knotTangent(pts, i+1)

	alpha := m0 / d
	beta := m1 / d
	if s := alpha*alpha + beta*beta; s > fcBound*fcBound {
		tau := fcBound / math.Sqrt(s)
		m0 = tau * alpha * d
		m1 = tau * beta * d
	}
	return m0, m1
}

// knotTangent computes the initial (pre-clamp) tangent at knot k: the
// average of the adjacent secants, zeroed when they disagree in sign, and
// the one-sided secant at the ends.
func knotTangent(pts []geom.Point, k int) float64 {
	n := len(pts)
	switch {
	case k == 0:
		return secant(pts, 0)
	case k == n-1:
		return secant(pts, n-2)
	}
	dl := secant(pts, k-1)
	dr := secant(pts, k)
	if dl*dr <= 0 {
		return 0
	}
	return (dl + dr) / 2
}

// secant returns the slope of interval i, or 0 for a degenerate interval.
func secant(pts []geom.Point, i int) float64 {
	h := pts[i+1].X - pts[i].X
	if h <= geom.Epsilon {
		return 0
	}
	return (pts[i+1].Y - pts[i].Y) / h
}
