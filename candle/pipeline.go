// Package candle pipeline: per-tick state advance and path building.
package candle

import (
	"math"

	"github.com/katalvlaran/lvlchart/anim"
	"github.com/katalvlaran/lvlchart/geom"
	"github.com/katalvlaran/lvlchart/series"
)

const (
	// WidthMorphMs is the bucket-width cross-fade duration.
	WidthMorphMs = 300.0
	// ModeMorphMs is the line↔candle morph duration.
	ModeMorphMs = 500.0
	// BirthFadeMs is the fade-in after a live-candle bucket rollover.
	BirthFadeMs = 260.0

	// LiveOHLCSpeed converges the live candle's displayed OHLC toward its
	// true accumulating values.
	LiveOHLCSpeed = 0.22
	// liveSnapEps ends the live OHLC approach exactly.
	liveSnapEps = 1e-9

	// BodyWidthFrac is the body width as a fraction of the bucket's pixel
	// width; the rest is the gap between neighbors.
	BodyWidthFrac = 0.7
	// MinRoundWidthPx: bodies narrower than this stay sharp rectangles.
	MinRoundWidthPx = 3.0
	// CornerRadiusPx is the body corner radius once rounding applies.
	CornerRadiusPx = 1.5

	// RangeSpeed converges the candle Y-range.
	RangeSpeed = 0.1
)

// Output is one frame of candle geometry. Paths are owned by the pipeline
// and valid until the next Tick.
type Output struct {
	Bodies geom.Path // historical candle bodies, current width
	Wicks  geom.Path // historical candle wicks, current width

	LiveBody  geom.Path // live candle body
	LiveWick  geom.Path // live candle wick
	LiveAlpha float64   // birth fade of the live candle
	LiveOHLC  Candle    // displayed (smoothed, possibly collapsed) values

	PrevBodies geom.Path // old-width candles during a width morph
	PrevWicks  geom.Path
	PrevAlpha  float64 // old-width layer opacity (1-morph)

	CandleAlpha float64 // whole candle layer opacity (mode morph)
	LineAlpha   float64 // line layer opacity (mode morph)
	OHLCMode    bool    // tooltips show OHLC until the morph midpoint
}

// Pipeline owns all animated candle state for one chart.
type Pipeline struct {
	out Output

	// live candle display smoothing
	hasLive  bool
	liveTime float64
	dispO    float64
	dispH    float64
	dispL    float64
	dispC    float64
	birth    anim.Progress

	// width morph
	widthSec     float64
	prevWidthSec float64
	widthMorph   anim.Progress
	morphFrom    series.Range // range endpoint at morph start
	lastCandles  []Candle     // previous tick's candle set
	prevCandles  []Candle     // old-width snapshot, drawn during the morph
	prevLive     Candle
	prevHasLive  bool

	// line/candle mode morph: linear progress, eased on application
	modeProgress float64

	rng series.AnimatedRange
}

// NewPipeline returns a pipeline with pre-allocated buffers.
func NewPipeline() *Pipeline {
	return &Pipeline{
		lastCandles: make([]Candle, 0, MaxCandles),
		prevCandles: make([]Candle, 0, MaxCandles),
	}
}

// EffectiveRange returns the committed Y-range the next frame should map
// through: during a width morph, the log-space blend between the morph's
// start range and the current animated range.
func (p *Pipeline) EffectiveRange() series.Range {
	cur := p.rng.Cur
	if p.widthMorph.Done() {
		return cur
	}
	m := p.widthMorph.Eased()
	return series.Range{
		Min: lerpLog(p.morphFrom.Min, cur.Min, m),
		Max: lerpLog(p.morphFrom.Max, cur.Max, m),
	}
}

// RangeInitialized reports whether the pipeline has seen data.
func (p *Pipeline) RangeInitialized() bool { return p.rng.Initialized() }

// Tick advances the candle pipeline one frame and returns its geometry.
// vp must be built from EffectiveRange before calling (snapshot order:
// geometry renders against the previously committed range). candles is
// read-only caller data; live may be nil; widthSec is the bucket width;
// lineModeTarget is 1 for line mode, 0 for candles.
func (p *Pipeline) Tick(dtMs float64, candles []Candle, live *Candle, widthSec, lineModeTarget float64, vp geom.Viewport) *Output {
	dtMs = anim.ClampDt(dtMs)
	if len(candles) > MaxCandles {
		candles = candles[len(candles)-MaxCandles:]
	}

	p.detectWidthChange(widthSec)
	p.detectLiveRollover(live)

	// Targets from fresh input.
	lo, hi, ok := extent(candles, live, widthSec, vp.T0, vp.T1)
	var target series.Range
	if ok {
		target = series.TargetRange(lo, hi, false)
	}

	// Render from the snapshot state (display OHLC, morph progress as
	// committed last frame; vp already reflects the committed range).
	eased := anim.CosEase(p.modeProgress)
	p.out.CandleAlpha = 1 - eased
	p.out.LineAlpha = eased
	p.out.OHLCMode = eased < 0.5
	p.out.LiveAlpha = p.birth.Eased()
	if !p.hasLive {
		p.out.LiveAlpha = 0
	}

	p.buildHistorical(candles, widthSec, eased, vp)
	p.buildLive(widthSec, eased, vp)
	p.buildPrev(eased, vp)

	// Commit: advance every animated quantity for the next frame.
	if ok {
		p.rng.Advance(target, RangeSpeed, dtMs)
	}
	p.advanceLive(live, dtMs)
	p.widthMorph.Advance(dtMs)
	p.advanceMode(lineModeTarget, dtMs)
	p.birth.Advance(dtMs)
	p.lastCandles = append(p.lastCandles[:0], candles...)

	return &p.out
}

// detectWidthChange snapshots the previous tick's candles and starts the
// cross-fade when the caller switches bucket width.
func (p *Pipeline) detectWidthChange(widthSec float64) {
	if widthSec == p.widthSec {
		return
	}
	if p.widthSec != 0 {
		p.prevWidthSec = p.widthSec
		p.morphFrom = p.EffectiveRange()
		p.prevCandles = append(p.prevCandles[:0], p.lastCandles...)
		p.prevHasLive = p.hasLive
		if p.hasLive {
			p.prevLive = p.displayed()
		}
		p.widthMorph.Start(WidthMorphMs)
	}
	p.widthSec = widthSec
}

// detectLiveRollover collapses the display to the open price and starts
// the birth fade when the live bucket identity changes.
func (p *Pipeline) detectLiveRollover(live *Candle) {
	if live == nil {
		p.hasLive = false
		return
	}
	if p.hasLive && live.TimeSec == p.liveTime {
		return
	}
	p.hasLive = true
	p.liveTime = live.TimeSec
	p.dispO, p.dispH, p.dispL, p.dispC = live.Open, live.Open, live.Open, live.Open
	p.birth.Start(BirthFadeMs)
}

// advanceLive converges the displayed OHLC toward the true live values.
func (p *Pipeline) advanceLive(live *Candle, dtMs float64) {
	if live == nil || !p.hasLive {
		return
	}
	p.dispO = anim.AdvanceSnap(p.dispO, live.Open, LiveOHLCSpeed, dtMs, liveSnapEps)
	p.dispH = anim.AdvanceSnap(p.dispH, live.High, LiveOHLCSpeed, dtMs, liveSnapEps)
	p.dispL = anim.AdvanceSnap(p.dispL, live.Low, LiveOHLCSpeed, dtMs, liveSnapEps)
	p.dispC = anim.AdvanceSnap(p.dispC, live.Close, LiveOHLCSpeed, dtMs, liveSnapEps)
}

// advanceMode moves the mode morph linearly toward its target; changing
// the target mid-flight simply reverses the ramp from where it is.
func (p *Pipeline) advanceMode(target, dtMs float64) {
	if target > 1 {
		target = 1
	}
	if target < 0 {
		target = 0
	}
	step := dtMs / ModeMorphMs
	switch {
	case p.modeProgress < target:
		p.modeProgress = math.Min(target, p.modeProgress+step)
	case p.modeProgress > target:
		p.modeProgress = math.Max(target, p.modeProgress-step)
	}
}

// displayed returns the live candle's current display values.
func (p *Pipeline) displayed() Candle {
	return Candle{TimeSec: p.liveTime, Open: p.dispO, High: p.dispH, Low: p.dispL, Close: p.dispC}
}

// lerpLog blends a and b in log space when both are positive (price
// ranges normally are), falling back to linear otherwise.
func lerpLog(a, b, m float64) float64 {
	if a > 0 && b > 0 {
		return math.Exp(math.Log(a) + (math.Log(b)-math.Log(a))*m)
	}
	return a + (b-a)*m
}
