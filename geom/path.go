// SPDX-License-Identifier: MIT
package geom

import "math"

// Path is an append-only sequence of vector drawing verbs. The zero value
// is an empty path ready for use.
//
// Paths are built fresh every frame but reused across frames: Reset trims
// the length while keeping the backing array, so after the first few frames
// a path reaches a steady capacity and building it allocates nothing.
type Path struct {
	verbs []Verb
}

// Reset empties the path while retaining capacity.
func (p *Path) Reset() { p.verbs = p.verbs[:0] }

// Empty reports whether the path holds no verbs.
func (p *Path) Empty() bool { return len(p.verbs) == 0 }

// Len returns the number of verbs.
func (p *Path) Len() int { return len(p.verbs) }

// Verbs exposes the verb slice for rendering. The slice is owned by the
// path and valid only until the next mutation.
func (p *Path) Verbs() []Verb { return p.verbs }

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, Verb{Op: OpMoveTo, P3: Point{X: x, Y: y}})
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.verbs = append(p.verbs, Verb{Op: OpLineTo, P3: Point{X: x, Y: y}})
}

// CubicTo appends a cubic Bézier through controls (c1x,c1y), (c2x,c2y)
// ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.verbs = append(p.verbs, Verb{
		Op: OpCubicTo,
		P1: Point{X: c1x, Y: c1y},
		P2: Point{X: c2x, Y: c2y},
		P3: Point{X: x, Y: y},
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.verbs = append(p.verbs, Verb{Op: OpClose})
}

// Last returns the end point of the most recent verb and false when the
// path is empty or ends in a Close.
func (p *Path) Last() (Point, bool) {
	for i := len(p.verbs) - 1; i >= 0; i-- {
		if p.verbs[i].Op != OpClose {
			return p.verbs[i].P3, true
		}
	}
	return Point{}, false
}

// AddRect appends a closed rectangular subpath.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.Right(), r.Y)
	p.LineTo(r.Right(), r.Bottom())
	p.LineTo(r.X, r.Bottom())
	p.Close()
}

// kappa approximates a quarter circle with one cubic Bézier:
// 4*(sqrt(2)-1)/3, the standard circle-from-Béziers constant.
const kappa = 0.5522847498307936

// AddRoundedRect appends a closed rectangle with corner radius, clamped so
// the radius never exceeds half the shorter side. radius <= 0 degrades to
// AddRect.
func (p *Path) AddRoundedRect(r Rect, radius float64) {
	if radius <= 0 {
		p.AddRect(r)
		return
	}
	half := math.Min(r.W, r.H) / 2
	if radius > half {
		radius = half
	}
	k := radius * kappa
	x0, y0, x1, y1 := r.X, r.Y, r.Right(), r.Bottom()

	p.MoveTo(x0+radius, y0)
	p.LineTo(x1-radius, y0)
	p.CubicTo(x1-radius+k, y0, x1, y0+radius-k, x1, y0+radius)
	p.LineTo(x1, y1-radius)
	p.CubicTo(x1, y1-radius+k, x1-radius+k, y1, x1-radius, y1)
	p.LineTo(x0+radius, y1)
	p.CubicTo(x0+radius-k, y1, x0, y1-radius+k, x0, y1-radius)
	p.LineTo(x0, y0+radius)
	p.CubicTo(x0, y0+radius-k, x0+radius-k, y0, x0+radius, y0)
	p.Close()
}

// AddCircle appends a closed circle of the given radius centered at
// (cx, cy), built from four cubic Béziers.
func (p *Path) AddCircle(cx, cy, radius float64) {
	if radius <= 0 {
		return
	}
	k := radius * kappa
	p.MoveTo(cx+radius, cy)
	p.CubicTo(cx+radius, cy+k, cx+k, cy+radius, cx, cy+radius)
	p.CubicTo(cx-k, cy+radius, cx-radius, cy+k, cx-radius, cy)
	p.CubicTo(cx-radius, cy-k, cx-k, cy-radius, cx, cy-radius)
	p.CubicTo(cx+k, cy-radius, cx+radius, cy-k, cx+radius, cy)
	p.Close()
}
