package engine

import (
	"math"

	"github.com/katalvlaran/lvlchart/candle"
	"github.com/katalvlaran/lvlchart/crosshair"
	"github.com/katalvlaran/lvlchart/geom"
	"github.com/katalvlaran/lvlchart/multi"
	"github.com/katalvlaran/lvlchart/series"
	"github.com/katalvlaran/lvlchart/spline"
)

// tickLine runs the single-series frame: snapshot window/value/range,
// compute targets, render, commit.
func (e *Engine) tickLine(nowSec, dtMs float64, in *Input, f *Frame) {
	e.buf.SetSamples(in.Samples)

	liveTarget, haveValue := e.lineLiveTarget(in)
	if !haveValue {
		e.degrade(f)
		return
	}
	if !e.valueSet {
		e.dispValue, e.valueSet = liveTarget, true
	}
	if !e.revealStarted {
		e.reveal.Start(e.tuning.RevealMs)
		e.revealStarted = true
	}

	endT := nowSec
	if last, ok := e.buf.Last(); ok {
		endT = last.TimeSec
	}
	t0, t1 := e.domain(endT)

	// Targets from fresh input; the committed display value and reference
	// line always stay inside the range.
	lo, hi, ok := e.buf.MinMax(e.buf.Visible(t0, t1, 1))
	if !ok {
		lo, hi = e.dispValue, e.dispValue
	}
	lo, hi = widen(lo, hi, e.dispValue)
	if in.Reference != nil {
		lo, hi = widen(lo, hi, in.Reference.Value)
	}
	target := series.TargetRange(lo, hi, in.Exaggerate)
	if !e.rng.Initialized() {
		e.rng.Set(target)
	}

	vp := geom.Viewport{Plot: in.Plot, T0: t0, T1: t1, Lo: e.rng.Cur.Min, Hi: e.rng.Cur.Max}
	f.Viewport = vp

	// Render from the snapshot.
	e.buildLinePoints(vp)
	f.Reveal = e.reveal.Linear()
	spline.ApplyReveal(e.pts, in.Plot, f.Reveal, nowSec)
	spline.Build(&f.Line, e.pts)
	if in.ShowFill && len(e.pts) > 0 {
		e.buildFill(f, vp)
	}

	dotX, dotY := vp.Plot.Right(), vp.YForValue(e.dispValue)
	if n := len(e.pts); n > 0 {
		dotX, dotY = e.pts[n-1].X, e.pts[n-1].Y
	}
	e.dotBadge(dtMs, in, f, dotX, dotY)
	e.axes(dtMs, vp, in, f)
	e.reference(in, vp, f)
	e.hoverLine(dtMs, in, vp, f, dotX)
	e.stepPhysics(dtMs, in, f, dotX, dotY, liveTarget, vp.Hi-vp.Lo)

	// Commit.
	e.rng.Advance(target, e.tuning.RangeSpeed, dtMs)
	e.commitValue(liveTarget, e.rng.Cur.Span(), dtMs)
	e.reveal.Advance(dtMs)
}

// lineLiveTarget prefers the explicit live value, falling back to the
// latest sample.
func (e *Engine) lineLiveTarget(in *Input) (float64, bool) {
	if in.HaveLive && !math.IsNaN(in.LiveValue) && !math.IsInf(in.LiveValue, 0) {
		return in.LiveValue, true
	}
	if last, ok := e.buf.Last(); ok {
		return last.Value, true
	}
	return 0, false
}

// buildLinePoints projects visible samples plus the live tip into pixel
// space, reusing the scratch slice. A single point widens to a flat line.
func (e *Engine) buildLinePoints(vp geom.Viewport) {
	e.pts = e.pts[:0]
	lo, hi := e.buf.Visible(vp.T0, vp.T1, 1)
	var i int
	for i = lo; i < hi; i++ {
		smp := e.buf.At(i)
		e.pts = append(e.pts, geom.Point{X: vp.XForTime(smp.TimeSec), Y: vp.YForValue(smp.Value)})
	}
	// The live tip always anchors the right edge on the displayed value,
	// overriding a sample that lands exactly there.
	tipX := vp.Plot.Right()
	tip := geom.Point{X: tipX, Y: vp.YForValue(e.dispValue)}
	if n := len(e.pts); n > 0 && e.pts[n-1].X >= tipX {
		e.pts[n-1] = tip
	} else {
		e.pts = append(e.pts, tip)
	}
	if len(e.pts) == 1 {
		only := e.pts[0]
		e.pts = append(e.pts[:0],
			geom.Point{X: vp.Plot.X, Y: only.Y},
			geom.Point{X: tipX, Y: only.Y},
		)
	}
}

// buildFill rebuilds the curve into the fill path and closes it down to
// the plot floor.
func (e *Engine) buildFill(f *Frame, vp geom.Viewport) {
	spline.Build(&f.Fill, e.pts)
	if f.Fill.Empty() {
		return
	}
	bottom := vp.Plot.Bottom()
	f.Fill.LineTo(e.pts[len(e.pts)-1].X, bottom)
	f.Fill.LineTo(e.pts[0].X, bottom)
	f.Fill.Close()
}

// hoverLine resolves the crosshair against the rendered curve points.
func (e *Engine) hoverLine(dtMs float64, in *Input, vp geom.Viewport, f *Frame, liveX float64) {
	engaged := in.ScrubEnabled && in.PointerX != nil
	if engaged {
		res := e.resolver.Resolve(vp, *in.PointerX, liveX, e.pts, in.FormatValue, in.FormatTime)
		f.Crosshair = res
		if res.Active {
			f.HoverLine.MoveTo(res.X, vp.Plot.Y)
			f.HoverLine.LineTo(res.X, vp.Plot.Bottom())
			if e.resolver.ShouldNotify(res) && in.OnHover != nil {
				in.OnHover(crosshair.Event{X: res.X, Y: res.Y, TimeSec: res.TimeSec, Value: res.Value})
			}
		}
	} else {
		e.resolver.ShouldNotify(crosshair.Result{})
	}
	e.resolver.AdvanceScrub(dtMs, engaged)
}

// tickCandle runs the candle-mode frame around the candle pipeline.
func (e *Engine) tickCandle(dtMs float64, in *Input, f *Frame) {
	width := in.CandleWidthSec
	if width <= 0 {
		e.degrade(f)
		return
	}

	liveTarget := 0.0
	if in.LiveCandle != nil {
		liveTarget = in.LiveCandle.Close
	} else {
		liveTarget = in.Candles[len(in.Candles)-1].Close
	}
	if !e.valueSet {
		e.dispValue, e.valueSet = liveTarget, true
	}

	endT := 0.0
	if n := len(in.Candles); n > 0 {
		endT = in.Candles[n-1].TimeSec + width
	}
	if in.LiveCandle != nil {
		endT = in.LiveCandle.TimeSec + width
	}
	t0, t1 := e.domain(endT)

	r := e.candles.EffectiveRange()
	if !e.candles.RangeInitialized() {
		r = rawCandleRange(in.Candles, in.LiveCandle)
	}
	vp := geom.Viewport{Plot: in.Plot, T0: t0, T1: t1, Lo: r.Min, Hi: r.Max}
	f.Viewport = vp

	f.Candle = e.candles.Tick(dtMs, in.Candles, in.LiveCandle, width, in.LineModeTarget, vp)

	dotX, dotY := vp.Plot.Right(), vp.YForValue(e.dispValue)
	e.dotBadge(dtMs, in, f, dotX, dotY)
	e.axes(dtMs, vp, in, f)
	e.reference(in, vp, f)
	e.hoverCandle(dtMs, in, vp, f, dotX, width)
	e.stepPhysics(dtMs, in, f, dotX, dotY, liveTarget, vp.Hi-vp.Lo)

	e.commitValue(liveTarget, vp.Hi-vp.Lo, dtMs)
}

// hoverCandle resolves the hovered bucket and publishes its (possibly
// smoothed) OHLC for the tooltip.
func (e *Engine) hoverCandle(dtMs float64, in *Input, vp geom.Viewport, f *Frame, liveX, width float64) {
	engaged := in.ScrubEnabled && in.PointerX != nil
	if !engaged {
		e.resolver.ShouldNotify(crosshair.Result{})
		e.resolver.AdvanceScrub(dtMs, false)
		return
	}

	x := vp.Plot.ClampX(*in.PointerX)
	t := vp.TimeForX(x)

	var c candle.Candle
	resolved := false
	if in.LiveCandle != nil && t >= in.LiveCandle.TimeSec {
		c = f.Candle.LiveOHLC
		resolved = true
	} else if i, ok := candle.FindBucket(in.Candles, t, width); ok {
		c = in.Candles[i]
		resolved = true
	}
	if resolved {
		res := crosshair.Result{
			Active:  true,
			X:       x,
			Y:       vp.YForValue(c.Close),
			TimeSec: c.TimeSec,
			Value:   c.Close,
			Alpha:   crosshair.FadeAlpha(x-liveX, e.resolver.Scrub()),
		}
		if in.FormatValue != nil {
			res.ValueText = e.hoverValFmt.Format(c.Close, in.FormatValue)
		}
		if in.FormatTime != nil {
			res.TimeText = e.hoverTimeFmt.Format(c.TimeSec, in.FormatTime)
		}
		f.Crosshair = res
		f.HoverCandle = c
		f.HoverIsOHLC = f.Candle.OHLCMode
		f.HoverLine.MoveTo(x, vp.Plot.Y)
		f.HoverLine.LineTo(x, vp.Plot.Bottom())
		if e.resolver.ShouldNotify(res) && in.OnHover != nil {
			in.OnHover(crosshair.Event{X: res.X, Y: res.Y, TimeSec: res.TimeSec, Value: res.Value})
		}
	} else {
		e.resolver.ShouldNotify(crosshair.Result{})
	}
	e.resolver.AdvanceScrub(dtMs, true)
}

// rawCandleRange seeds the first frame's viewport before the pipeline's
// animated range exists.
func rawCandleRange(candles []candle.Candle, live *candle.Candle) series.Range {
	lo, hi := math.Inf(1), math.Inf(-1)
	var i int
	for i = 0; i < len(candles); i++ {
		lo = math.Min(lo, candles[i].Low)
		hi = math.Max(hi, candles[i].High)
	}
	if live != nil {
		lo = math.Min(lo, live.Low)
		hi = math.Max(hi, live.High)
	}
	if lo > hi {
		return series.Range{Min: 0, Max: 1}
	}
	return series.TargetRange(lo, hi, false)
}

// tickMulti runs the multi-series frame around the multi pipeline.
func (e *Engine) tickMulti(nowSec, dtMs float64, in *Input, f *Frame) {
	endT := nowSec
	seen := false
	for i := range in.Series {
		if n := len(in.Series[i].Samples); n > 0 {
			last := in.Series[i].Samples[n-1].TimeSec
			if !seen || last > endT {
				endT, seen = last, true
			}
		}
	}
	t0, t1 := e.domain(endT)

	r := series.Range{Min: 0, Max: 1}
	if e.multiPipe.RangeInitialized() {
		r = e.multiPipe.Range()
	} else if lo, hi, ok := rawSeriesUnion(in.Series); ok {
		r = series.TargetRange(lo, hi, false)
	}
	vp := geom.Viewport{Plot: in.Plot, T0: t0, T1: t1, Lo: r.Min, Hi: r.Max}
	f.Viewport = vp

	var ptr *float64
	if in.ScrubEnabled {
		ptr = in.PointerX
	}
	f.Multi = e.multiPipe.Tick(dtMs, in.Series, in.Hidden, ptr, vp, in.FormatValue, in.FormatTime)

	if ptr != nil {
		x := vp.Plot.ClampX(*ptr)
		f.HoverLine.MoveTo(x, vp.Plot.Y)
		f.HoverLine.LineTo(x, vp.Plot.Bottom())
	}
	e.resolver.AdvanceScrub(dtMs, ptr != nil)

	e.axes(dtMs, vp, in, f)
	e.reference(in, vp, f)

	// Momentum follows the first series' live value.
	liveTarget := in.Series[0].LiveValue
	if !e.valueSet {
		e.dispValue, e.valueSet = liveTarget, true
	}
	dotX, dotY := vp.Plot.Right(), vp.YForValue(e.dispValue)
	e.dotBadge(dtMs, in, f, dotX, dotY)
	e.stepPhysics(dtMs, in, f, dotX, dotY, liveTarget, vp.Hi-vp.Lo)

	e.commitValue(liveTarget, vp.Hi-vp.Lo, dtMs)
}

// rawSeriesUnion seeds the first multi frame's range.
func rawSeriesUnion(inputs []multi.Input) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	var i, j int
	for i = 0; i < len(inputs); i++ {
		for j = 0; j < len(inputs[i].Samples); j++ {
			v := inputs[i].Samples[j].Value
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// widen grows [lo, hi] to include v.
func widen(lo, hi, v float64) (float64, float64) {
	return math.Min(lo, v), math.Max(hi, v)
}
