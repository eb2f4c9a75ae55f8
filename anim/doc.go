// Package anim implements the convergence kernel every animated quantity
// in lvlchart flows through: frame-rate-independent exponential
// interpolation toward a target, with snap-on-convergence, adaptive speed
// boosting, and cosine-eased timed progress for fixed-duration morphs.
//
// 🚀 The kernel
//
//	next = cur + (target-cur) * (1 - (1-speed)^(dt/RefFrameMs))
//
//	The exponent makes the motion identical at any frame rate: N small
//	steps summing to duration D land exactly where one step of D lands,
//	because the per-step retention factors multiply. This is what keeps
//	the chart's feel stable across 30/60/120 Hz displays and frame drops.
//
// ✨ Key rules:
//   - dt is clamped to MaxFrameDtMs before use, so an app-backgrounded
//     pause never produces one catastrophic jump.
//   - Advancing by dt=0 is a no-op; dt→∞ snaps to the target.
//   - Once the remaining gap is below the snap threshold the value is set
//     exactly to the target, ending the asymptotic approach (and the
//     micro-jitter it would otherwise show at rest).
//   - Retargeting mid-flight needs no cancellation: changing the target
//     redirects the motion smoothly on the next step.
//
// ⚙️ Usage:
//
//	v := anim.Advance(v, target, 0.08, dtMs)          // plain lerp
//	v = anim.AdvanceSnap(v, target, 0.08, dtMs, eps)  // lerp + snap
//
//	var morph anim.Progress
//	morph.Start(300) // ms
//	morph.Advance(dtMs)
//	alpha := morph.Eased() // cosine-eased 0..1
//
// Complexity: every function is O(1), allocation-free, and pure.
package anim
