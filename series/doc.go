// Package series owns the data side of a plotted line: a bounded,
// time-sorted sample buffer with ingestion filtering, visible-window
// slicing, and the Y-range targeting rules that decide what value span the
// chart should be converging toward each frame.
//
// ✨ Key rules:
//   - The buffer holds at most MaxSamples samples; older ones are dropped.
//     Ingestion filters NaN/Inf times and values, so the engine only ever
//     reasons about a packed, finite, sorted numeric buffer.
//   - The range target always contains every visible value (plus the live
//     value and any reference line) — containment is an invariant of the
//     target, while the displayed range merely converges toward it.
//   - A minimum-span floor keeps a flat series from collapsing the plot to
//     zero height; "exaggerate" mode narrows the margins to amplify small
//     moves. Both use empirically tuned constants preserved from the
//     original visual design.
//   - Range convergence is asymmetric: expansions beyond half the current
//     span snap instantly (real data must not be clipped for long), while
//     contractions and small expansions always animate.
//
// ⚙️ Usage:
//
//	buf := series.NewBuffer()
//	buf.SetSamples(raw)                   // filtered copy, O(n)
//	lo, hi := buf.Visible(t0, t1, 1)      // window + 1 neighbor each side
//	mn, mx, ok := buf.MinMax(lo, hi)
//	target := series.TargetRange(mn, mx, false)
//	animated.Advance(target, 0.1, dtMs)
//
// Complexity: SetSamples O(n); Visible O(log n); MinMax O(k) over the
// visible count; range math O(1). Nothing here allocates per frame.
package series
