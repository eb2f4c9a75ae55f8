// Package lvlchart is a real-time vector-geometry engine for animated
// financial charts: feed it a scrolling time series (or OHLC candles, or
// several series at once) and every animation frame it hands back the exact
// paths, positions, opacities and text your presentation layer should draw.
//
// 🚀 What is lvlchart?
//
//	A pure-Go, allocation-conscious frame engine that brings together:
//		• Monotone cubic splines: smooth curves with zero overshoot
//		• Frame-rate-independent convergence of every animated quantity
//		• Pooled axis labels with fade choreography and overlap resolution
//		• Crosshair scrubbing with deduplicated hover callbacks
//		• Candle pipelines: live OHLC smoothing, width & mode morphs
//		• Multi-series plotting with shared-range union (up to 8 series)
//		• Decorative physics: seeded particles, screen shake, order ticker
//
// ✨ Why choose lvlchart?
//
//   - Deterministic – every random draw flows through an injectable seeded
//     generator, so tests can assert exact geometry
//   - Zero per-frame allocation – slots, particles and paths are pooled
//     and recycled, never created inside a tick
//   - Host-agnostic – no I/O, no goroutines, no clocks; the host scheduler
//     calls Tick with elapsed time and draws what comes back
//
// Under the hood, everything is organized per concern:
//
//	geom/      — points, rects, vector paths, viewport mapping
//	anim/      — exponential convergence kernel & eased timed progress
//	spline/    — Fritsch–Carlson monotone cubic builder + evaluator
//	series/    — bounded sample buffer, visible window, Y-range targets
//	axis/      — pooled grid & time-axis label managers
//	crosshair/ — hover resolution, fade model, cached formatting
//	candle/    — candle bucketing, batched body/wick paths, morphs
//	multi/     — per-series pipelines over a shared animated range
//	physics/   — seeded particles, shake decay, orderbook ticker
//	engine/    — the per-tick orchestrator tying it all together
//	config/    — YAML tuning profiles for the animation constants
//
// Quick ASCII example:
//
//	   ┌────────────────────────────┐
//	   │        ╭─╮    live ●       │
//	   │   ╭────╯ ╰───╮  ╭──╯       │
//	   │ ──╯          ╰──╯          │
//	   └────────────────────────────┘
//	     one Tick() = one frame of that picture, fully described.
//
// Dive into engine/doc.go for the tick lifecycle.
//
//	go get github.com/katalvlaran/lvlchart
package lvlchart
