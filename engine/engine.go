package engine

import (
	"math"

	"github.com/katalvlaran/lvlchart/anim"
	"github.com/katalvlaran/lvlchart/axis"
	"github.com/katalvlaran/lvlchart/candle"
	"github.com/katalvlaran/lvlchart/crosshair"
	"github.com/katalvlaran/lvlchart/geom"
	"github.com/katalvlaran/lvlchart/multi"
	"github.com/katalvlaran/lvlchart/physics"
	"github.com/katalvlaran/lvlchart/series"
)

const (
	// timeSnapEpsSec ends window/offset animation exactly.
	timeSnapEpsSec = 1e-3
	// badgeSnapPx ends the badge's trailing motion.
	badgeSnapPx = 0.01
	// swingFullFrac: a per-tick move of this fraction of the range counts
	// as a full-magnitude swing for the ticker's scroll blend.
	swingFullFrac = 0.1
)

type mode int

const (
	modeLine mode = iota
	modeCandle
	modeMulti
)

// Engine owns all animated chart state. One goroutine (the host's frame
// callback) drives it; Tick never blocks and never returns an error.
type Engine struct {
	tuning Tuning
	seed   int64

	buf       *series.Buffer
	rng       series.AnimatedRange
	dispValue float64
	valueSet  bool

	windowSec float64
	offsetSec float64
	winSet    bool

	badgeY    float64
	badgeSet  bool
	badgeFmt  crosshair.Formatter
	badgeText string

	hoverValFmt  crosshair.Formatter
	hoverTimeFmt crosshair.Formatter

	grid     *axis.Grid
	taxis    *axis.TimeAxis
	resolver *crosshair.Resolver

	candles   *candle.Pipeline
	multiPipe *multi.Pipeline

	particles *physics.Particles
	shake     *physics.Shake
	ticker    *physics.Ticker

	reveal        anim.Progress
	revealStarted bool
	pulsePhase    float64

	prevLive     float64
	havePrevLive bool

	pts   []geom.Point
	frame Frame
}

// New returns an engine with every pool pre-allocated.
func New(opts ...Option) *Engine {
	e := &Engine{
		tuning:       DefaultTuning(),
		buf:          series.NewBuffer(),
		grid:         axis.NewGrid(),
		taxis:        axis.NewTimeAxis(),
		resolver:     crosshair.NewResolver(),
		candles:      candle.NewPipeline(),
		multiPipe:    multi.NewPipeline(),
		badgeFmt:     crosshair.NewFormatter(crosshair.ValueQuantum),
		hoverValFmt:  crosshair.NewFormatter(crosshair.ValueQuantum),
		hoverTimeFmt: crosshair.NewFormatter(crosshair.TimeQuantumSec),
		pts:          make([]geom.Point, 0, series.MaxSamples+1),
	}
	var o Option
	for _, o = range opts {
		o(e)
	}
	rng := physics.NewRNG(e.seed)
	e.particles = physics.NewParticles(rng)
	e.shake = physics.NewShake(rng)
	e.ticker = physics.NewTicker(rng)

	e.frame.GridLabels = make([]axis.Slot, 0, axis.GridPoolSize)
	e.frame.TimeLabels = make([]axis.Slot, 0, axis.TimePoolSize)
	e.frame.Particles = make([]physics.Particle, 0, physics.ParticlePoolSize)
	e.frame.TickerLabels = make([]physics.TickerLabel, 0, physics.TickerPoolSize)
	return e
}

// Tick advances the engine one frame and returns its geometry. nowSec is
// wall-clock seconds (drives decorative phases), dtMs the elapsed time
// since the previous tick. The returned Frame is owned by the engine and
// valid until the next Tick.
func (e *Engine) Tick(nowSec, dtMs float64, in Input) *Frame {
	dtMs = anim.ClampDt(dtMs)
	if in.Paused {
		dtMs = 0
	}
	f := &e.frame
	f.reset()

	if in.Plot.Empty() || in.WindowSec <= 0 {
		return e.degrade(f)
	}
	if !e.winSet {
		e.windowSec, e.offsetSec, e.winSet = in.WindowSec, in.OffsetSec, true
	}

	switch e.pickMode(&in) {
	case modeCandle:
		e.tickCandle(dtMs, &in, f)
	case modeMulti:
		e.tickMulti(nowSec, dtMs, &in, f)
	default:
		e.tickLine(nowSec, dtMs, &in, f)
	}

	e.windowSec = anim.AdvanceSnap(e.windowSec, in.WindowSec, e.tuning.WindowSpeed, dtMs, timeSnapEpsSec)
	e.offsetSec = anim.AdvanceSnap(e.offsetSec, in.OffsetSec, e.tuning.OffsetSpeed, dtMs, timeSnapEpsSec)
	return f
}

func (e *Engine) pickMode(in *Input) mode {
	if len(in.Candles) > 0 || in.LiveCandle != nil {
		return modeCandle
	}
	if len(in.Series) > 0 {
		return modeMulti
	}
	return modeLine
}

// domain maps the committed window/offset onto [t0, t1] ending at endSec
// when the offset is zero.
func (e *Engine) domain(endSec float64) (t0, t1 float64) {
	t1 = endSec - e.offsetSec
	return t1 - e.windowSec, t1
}

// degrade emits an empty frame holding the last badge text, and clears
// hover dedup state so the next hover fires again.
func (e *Engine) degrade(f *Frame) *Frame {
	f.Empty = true
	f.BadgeText = e.badgeText
	e.resolver.ShouldNotify(crosshair.Result{})
	return f
}

// axes updates the time axis every mode, and the value grid when shown.
func (e *Engine) axes(dtMs float64, vp geom.Viewport, in *Input, f *Frame) {
	e.taxis.Update(dtMs, vp, timeFormatter(in.FormatTime))
	f.TimeLabels = e.taxis.Visible(f.TimeLabels)

	if !in.ShowGrid {
		return
	}
	e.grid.Update(dtMs, vp, valueFormatter(in.FormatValue))
	f.GridLabels = e.grid.Visible(f.GridLabels)
	var s axis.Slot
	for _, s = range f.GridLabels {
		f.GridLines.MoveTo(vp.Plot.X, s.Pos)
		f.GridLines.LineTo(vp.Plot.Right(), s.Pos)
	}
}

// reference draws the optional horizontal reference line when it falls
// inside the committed range.
func (e *Engine) reference(in *Input, vp geom.Viewport, f *Frame) {
	if in.Reference == nil {
		return
	}
	y := vp.YForValue(in.Reference.Value)
	if y < vp.Plot.Y || y > vp.Plot.Bottom() {
		return
	}
	f.HasRef = true
	f.RefY = y
	f.RefLabel = in.Reference.Label
	f.RefLine.MoveTo(vp.Plot.X, y)
	f.RefLine.LineTo(vp.Plot.Right(), y)
}

// dotBadge publishes the live dot, pulse and badge from committed state,
// then commits the badge position and pulse phase.
func (e *Engine) dotBadge(dtMs float64, in *Input, f *Frame, dotX, dotY float64) {
	f.DotX, f.DotY = dotX, dotY
	if in.ShowPulse {
		f.PulsePhase = e.pulsePhase
		f.PulseAlpha = 1 - e.pulsePhase
	}

	if !e.badgeSet {
		e.badgeY, e.badgeSet = dotY, true
	}
	if in.ShowBadge {
		f.BadgeY = e.badgeY
		if in.FormatValue != nil {
			e.badgeText = e.badgeFmt.Format(e.dispValue, in.FormatValue)
		}
		f.BadgeText = e.badgeText
	}

	e.pulsePhase = math.Mod(e.pulsePhase+dtMs/e.tuning.PulsePeriodMs, 1)
	e.badgeY = anim.AdvanceSnap(e.badgeY, dotY, e.tuning.BadgeSpeed, dtMs, badgeSnapPx)
}

// stepPhysics runs swing-triggered bursts, shake decay and the orderbook
// ticker, then records the live value for next tick's swing detection.
func (e *Engine) stepPhysics(dtMs float64, in *Input, f *Frame, dotX, dotY, liveTarget, span float64) {
	gap := 0.0
	if e.havePrevLive {
		gap = liveTarget - e.prevLive
	}

	if in.ShowMomentum && span > 0 {
		thresh := e.tuning.SwingBurstFrac * span
		if thresh > 0 && math.Abs(gap) >= thresh {
			dir := 1
			if gap < 0 {
				dir = -1
			}
			intensity := math.Min(1, math.Abs(gap)/(4*thresh))
			if e.particles.Burst(dotX, dotY, intensity, dir) {
				e.shake.Impulse(e.tuning.ShakeImpulsePx * (0.5 + 0.5*intensity))
			}
		}
	}
	e.particles.Update(dtMs)
	e.shake.Update(dtMs)
	f.Particles = e.particles.Visible(f.Particles)
	f.ShakeX, f.ShakeY = e.shake.Offset()

	// The ticker always advances so labels keep fading and culling after
	// the book empties; spawning declines by itself without levels.
	swing := 0.0
	if span > 0 {
		swing = math.Min(1, math.Abs(gap)/(span*swingFullFrac))
	}
	e.ticker.Update(dtMs, in.Bids, in.Asks, swing, in.Plot, tickerFormat(in.FormatValue))
	f.TickerLabels = e.ticker.Visible(f.TickerLabels)

	e.prevLive, e.havePrevLive = liveTarget, true
}

// commitValue advances the displayed value with adaptive speed and the
// standard snap rule.
func (e *Engine) commitValue(liveTarget, span, dtMs float64) {
	speed := anim.AdaptiveSpeed(e.tuning.ValueSpeed, e.tuning.ValueMaxSpeed, liveTarget-e.dispValue, span)
	e.dispValue = anim.AdvanceSnap(e.dispValue, liveTarget, speed, dtMs, span*series.SnapFrac)
}

func timeFormatter(fn crosshair.FormatFunc) axis.TimeFormatter {
	if fn == nil {
		return axis.DefaultTimeFormatter
	}
	return func(sec, _ float64) string { return fn(sec) }
}

func valueFormatter(fn crosshair.FormatFunc) axis.ValueFormatter {
	if fn == nil {
		return axis.DefaultValueFormatter
	}
	return axis.ValueFormatter(fn)
}

func tickerFormat(fn crosshair.FormatFunc) physics.LabelFormat {
	if fn == nil {
		return nil
	}
	return func(price, _ float64, _ bool) string { return fn(price) }
}
