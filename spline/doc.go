// Package spline builds smooth chart curves with a Fritsch–Carlson
// monotone cubic Hermite spline and evaluates the identical curve at
// arbitrary positions for crosshair placement.
//
// 🚀 Why monotone cubic?
//
//	A natural cubic spline rings: after a sharp price move it overshoots
//	between samples, and the wiggle reads as fake market data. The
//	Fritsch–Carlson construction never leaves the band between adjacent
//	sample values, so sharp moves stay sharp and flat stretches stay flat.
//
// Algorithm outline:
//  1. Secant slope per interval: d_i = (y_{i+1}-y_i)/(x_{i+1}-x_i).
//  2. Knot tangent = average of adjacent secants, forced to zero when the
//     secants disagree in sign (local extremum stays an extremum).
//  3. Per segment, clamp the tangent pair so α²+β² ≤ 9 (α = m_i/d_i,
//     β = m_{i+1}/d_i), the classic stability bound against overshoot.
//  4. Emit one cubic Bézier per segment with controls one third of the
//     way in, derived from the clamped tangents.
//
// The clamp in step 3 is applied per segment, never written back to the
// knots, so any segment's curve depends only on its four surrounding
// points. That locality is what lets EvalAt reproduce the drawn curve
// exactly without rebuilding the whole path.
//
// Edge cases: 0 points → empty path; 1 point → a dot (callers widen to a
// flat line); 2 points → a straight segment. Duplicate X positions
// degenerate to a vertical jump, last value winning.
//
// A Reveal transform blends the real geometry toward a decorative sine-sum
// idle waveform, used as the loading squiggle while a chart warms up.
//
// Complexity: Build and ApplyReveal are O(n), EvalAt is O(log n); none of
// them allocate.
package spline
