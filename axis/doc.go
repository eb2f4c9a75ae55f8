// Package axis maintains the chart's grid (value) and time-axis labels as
// fixed pools of reusable slots, each independently fading in, out, or
// repositioning as the animated view changes.
//
// 🚀 Why pooled slots?
//
//	Labels churn constantly while the range animates. Allocating label
//	objects per frame would thrash the heap at 120 Hz; instead every
//	label lives in a pre-allocated slot identified by a stable key (the
//	tick it represents). When a tick disappears its slot fades to zero
//	and is recycled for the next tick, so allocation stays at zero and the
//	live label count is bounded by the pool size by construction.
//
// ✨ Interval selection:
//   - Grid: "nice" steps from the 1 / 2 / 2.5 / 5 ladder scaled by powers
//     of ten, chosen so pixel spacing stays ≥ MinGridSpacingPx. A
//     hysteresis band keeps the previous step while it is still
//     acceptable, so tick density does not flicker as the range animates.
//     A fine half-step layer fades in once spacing is generous enough.
//   - Time: calendar-friendly steps (seconds → weeks) picked from a fixed
//     table by window length, doubled when projected spacing is too tight.
//
// Labels near the plot boundary scale their opacity down over the edge
// fade distance, and overlapping time labels resolve deterministically:
// the currently-most-visible label wins, the other fades out.
//
// Complexity: each Update is O(pool + visible ticks); the overlap pass is
// O(k log k) over visible time labels. No allocation after construction.
package axis
