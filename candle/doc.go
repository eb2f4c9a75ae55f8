// Package candle turns OHLC buckets into batched body and wick vector
// paths with the transition choreography a live candlestick chart needs:
// live-candle display smoothing, birth fades, bucket-width morphs and the
// line↔candle mode morph.
//
// 🚀 Candle states
//
//	Historical candles are immutable and drawn as-is. The single live
//	candle accumulates: its displayed OHLC converges toward the true
//	values every frame, and when its bucket rolls over the display
//	collapses to the new open price and fades in from zero — a birth,
//	not a pop.
//
// ✨ Transitions:
//   - Width morph (~300ms, cosine): changing the bucket width cross-fades
//     between the old-width and new-width candle paths, interpolating the
//     Y-range between the two range endpoints in log space.
//   - Mode morph (~500ms, cosine): switching to line mode collapses each
//     candle toward a flat mark at its close while candle opacity fades
//     out and line opacity fades in; tooltips switch from OHLC to
//     single-value format past the midpoint.
//   - Rounded body corners apply only above a minimum body width, so very
//     thin candles stay crisp rectangles.
//
// The pipeline tracks its own animated Y-range from candle High/Low
// extremes. This is separate from the line-mode range, since wicks
// need more headroom than closes.
//
// Tick ordering matches the engine contract: geometry is built from the
// previous frame's committed display state, then the new state is
// committed, so no layer can desynchronize within a frame.
//
// Complexity: O(visible candles) per tick, allocation-free at steady
// state (paths and the previous-candles snapshot reuse their buffers).
package candle
