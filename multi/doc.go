// Package multi runs several line-series pipelines in parallel over one
// shared animated Y-range: per-series spline paths, per-series visibility
// fades, and a combined crosshair that reports one entry per visible
// series at the hovered time.
//
// ✨ Rules:
//   - At most MaxSeries (8) series render concurrently; callers supplying
//     more get the first 8. The cap bounds every per-frame loop.
//   - Toggling a series never pops: its visibility alpha converges toward
//     0 or 1, and a fully faded series releases its slot for reuse.
//   - The shared range targets the union of every series whose alpha is
//     above the visibility threshold, with the same expand-snap /
//     contract-lerp asymmetry as single-series mode. A series fading out
//     therefore releases its range claim only once it is nearly gone,
//     which keeps the range from jumping while the fade is visible.
//   - Per-series live values are smoothed with the same adaptive-speed
//     convergence as the single-series displayed value.
//
// Slot model: series states live in a fixed array keyed by series ID —
// the same arena-with-sentinel pattern as axis label slots, so input
// churn reassigns slots instead of allocating.
//
// Complexity: O(MaxSeries × visible samples) per tick, allocation-free at
// steady state.
package multi
