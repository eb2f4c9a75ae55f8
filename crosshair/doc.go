// Package crosshair resolves a pointer position into an inspected point on
// the curve: the interpolated (time, value) pair, its screen position, the
// fade-by-distance opacity, and display text that only reformats when it
// would actually read differently.
//
// ✨ Behavior:
//   - Pointer X clamps into the plot, converts to time through the frame's
//     viewport, then evaluates the same Hermite curve the line path drew —
//     so the crosshair dot sits exactly on the rendered line.
//   - Opacity is 0 within a dead zone around the live dot (the crosshair
//     must not fight the live point visually), ramps linearly out to the
//     fade-start distance, and is scaled by a scrub-engagement amount that
//     itself converges smoothly, so show/hide is a brief transition rather
//     than a pop.
//   - Formatted text is cached behind a display quantum (1e-6 for values,
//     whole seconds for times): text never shows resolution finer than the
//     reader could distinguish, and formatting cost is paid only on real
//     changes.
//   - Hover notifications deduplicate: a payload is emitted only when the
//     resolved time, value or screen X moved beyond small epsilons.
//
// Complexity: Resolve is O(log n) over the visible points; everything else
// is O(1). No allocation per frame once the formatters warm up.
package crosshair
