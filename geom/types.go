// SPDX-License-Identifier: MIT
// Package geom core types: Point, Rect and the verb-based Path.
package geom

// Epsilon is the denominator floor used across lvlchart wherever a span or
// dimension divides something. Divisions by quantities smaller than this
// are treated as degenerate and resolved to a safe constant result.
const Epsilon = 1e-9

// Point is a position either in data space (X = seconds, Y = value) or in
// pixel space, depending on context; the two never mix inside one slice.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has non-positive width or height.
// An empty plot rect short-circuits the whole tick to a no-op frame.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// ClampX clamps x into [r.X, r.X+r.W].
func (r Rect) ClampX(x float64) float64 {
	if x < r.X {
		return r.X
	}
	if right := r.Right(); x > right {
		return right
	}
	return x
}

// Op identifies a path verb.
type Op uint8

const (
	// OpMoveTo starts a new subpath at P3.
	OpMoveTo Op = iota
	// OpLineTo draws a straight segment to P3.
	OpLineTo
	// OpCubicTo draws a cubic Bézier with controls P1, P2 ending at P3.
	OpCubicTo
	// OpClose closes the current subpath.
	OpClose
)

// Verb is one path command. P1 and P2 are meaningful only for OpCubicTo;
// P3 is the end point for every op except OpClose.
type Verb struct {
	Op         Op
	P1, P2, P3 Point
}
