// SPDX-License-Identifier: MIT
// Package geom provides the small geometric vocabulary shared by every
// lvlchart pipeline: points, rectangles, a reusable vector Path, and the
// Viewport mapping between (time, value) data space and plot pixels.
//
// ✨ Key properties:
//   - Path is append-only and pooled: Reset keeps the verb backing array,
//     so a path reused across frames settles at a stable capacity and
//     stops allocating.
//   - Viewport guards every division with an epsilon floor, so degenerate
//     plots (zero width, zero span) map to finite coordinates instead of
//     NaN/Inf leaking into downstream geometry.
//
// ⚙️ Usage:
//
//	var p geom.Path
//	p.MoveTo(0, 10)
//	p.CubicTo(2, 10, 4, 20, 6, 20)
//	for _, v := range p.Verbs() { /* hand to the renderer */ }
//
// Complexity: all operations are O(1) amortized; iterating a path is O(n)
// in its verb count.
package geom
