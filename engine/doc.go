// Package engine is the frame orchestrator: the single per-tick driver
// that advances every animated quantity and builds the frame's vector
// geometry atomically.
//
// 🚀 One call does everything:
//
//	e := engine.New()
//	frame := e.Tick(nowSec, dtMs, input)
//
// Each Tick runs the strict four-phase order:
//  1. snapshot — the committed value/range/window from the previous tick;
//  2. targets  — fresh targets computed from this tick's input;
//  3. render   — all paths, positions, opacities and text built from the
//     snapshot, never from the new targets;
//  4. commit   — every animated scalar advanced toward its target.
//
// Rendering from the snapshot while committing afterwards is what keeps
// the curve's last point, the live dot and the badge in exact agreement
// on the frame a new sample arrives; reordering these phases produces
// one-frame artifacts.
//
// ⚙️ The engine is single-threaded and allocation-free at steady state:
// one goroutine (the host's frame callback) owns it, every per-tick loop
// runs over capped buffers or fixed pools, and no tick blocks, performs
// I/O or returns an error. Malformed input degrades the frame (empty
// geometry, held badge text) and the next healthy input recovers fully.
//
// Modes: supplying candles selects the candle pipeline, supplying series
// selects the multi-series pipeline, otherwise the engine renders the
// single line series. Grid, time axis, crosshair and decorative physics
// run in every mode.
package engine
