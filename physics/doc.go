// SPDX-License-Identifier: MIT
// Package physics drives the chart's decorative simulation layers:
// particle bursts on price swings, screen shake, and the scrolling
// orderbook ticker.
//
// ✨ Principles:
//   - Determinism: every random draw comes from an explicit, injectable
//     linear-congruential generator. Same seed ⇒ identical particle
//     positions, counts and ticker picks on every platform, so tests can
//     assert exact outcomes.
//   - No allocation: particles and ticker labels live in fixed pools with
//     active flags. When a pool is full, spawning silently declines for
//     that tick; density degrades, nothing fails.
//   - Bounded energy: particle bursts are gated by a cooldown and a
//     per-swing burst cap, and shake amplitude decays exponentially per
//     millisecond with a snap-to-zero floor, so a sustained swing cannot
//     accumulate unbounded motion.
//
// All Update methods take dt in milliseconds and are safe to call with
// dt == 0 (pure re-render frames).
package physics
