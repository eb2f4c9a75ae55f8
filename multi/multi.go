package multi

import (
	"github.com/katalvlaran/lvlchart/anim"
	"github.com/katalvlaran/lvlchart/crosshair"
	"github.com/katalvlaran/lvlchart/geom"
	"github.com/katalvlaran/lvlchart/series"
	"github.com/katalvlaran/lvlchart/spline"
)

const (
	// MaxSeries bounds concurrently rendered series.
	MaxSeries = 8

	// VisibilitySpeed converges a series' show/hide alpha.
	VisibilitySpeed = 0.12
	// visSnapEps ends the fade exactly at 0 or 1.
	visSnapEps = 1e-3
	// VisibleAlphaThreshold: a series above this alpha claims the shared
	// range and contributes crosshair entries.
	VisibleAlphaThreshold = 0.05

	// live-value smoothing, same law as the single-series controller
	liveSpeed    = 0.08
	liveMaxSpeed = 0.4
	liveSnapEps  = 1e-9

	// rangeSpeed converges the shared range.
	rangeSpeed = 0.1
)

// Input describes one series for one tick. Samples is read-only caller
// data, time-sorted.
type Input struct {
	ID        string
	Label     string
	Samples   []series.Sample
	LiveValue float64
}

// SeriesOut is one series' renderable state for the frame.
type SeriesOut struct {
	ID    string
	Label string
	Path  *geom.Path
	Alpha float64
	DotX  float64
	DotY  float64
}

// Entry is one series' crosshair readout at the hovered time.
type Entry struct {
	ID    string
	Label string
	Value float64
	Text  string
	Y     float64
	Alpha float64
}

// Output is one frame of multi-series geometry. Slices are owned by the
// pipeline and valid until the next Tick.
type Output struct {
	Series   []SeriesOut
	Entries  []Entry
	TimeText string
}

type state struct {
	id     string
	label  string
	active bool
	wanted bool
	alpha  float64

	dispLive   float64 // smoothed live value
	liveTarget float64 // true live value from the latest input
	liveSet    bool
	hidden     bool // caller's toggle state this tick

	buf      *series.Buffer
	pts      []geom.Point
	path     geom.Path
	valueFmt crosshair.Formatter
}

// Pipeline owns the per-series slots and the shared animated range.
type Pipeline struct {
	states  [MaxSeries]state
	rng     series.AnimatedRange
	timeFmt crosshair.Formatter
	out     Output
}

// NewPipeline returns a pipeline with every slot pre-allocated.
func NewPipeline() *Pipeline {
	p := &Pipeline{
		timeFmt: crosshair.NewFormatter(crosshair.TimeQuantumSec),
	}
	for i := range p.states {
		p.states[i].buf = series.NewBuffer()
		p.states[i].pts = make([]geom.Point, 0, series.MaxSamples+1)
		p.states[i].valueFmt = crosshair.NewFormatter(crosshair.ValueQuantum)
	}
	p.out.Series = make([]SeriesOut, 0, MaxSeries)
	p.out.Entries = make([]Entry, 0, MaxSeries)
	return p
}

// Range returns the committed shared range.
func (p *Pipeline) Range() series.Range { return p.rng.Cur }

// RangeInitialized reports whether the shared range has seen data.
func (p *Pipeline) RangeInitialized() bool { return p.rng.Initialized() }

// Tick advances all series one frame. vp must be built from Range()
// before the call (render-from-snapshot ordering). hidden reports the
// caller's toggle state per series ID; pointerX is nil when not hovering.
func (p *Pipeline) Tick(dtMs float64, inputs []Input, hidden func(id string) bool, pointerX *float64, vp geom.Viewport, formatValue, formatTime crosshair.FormatFunc) *Output {
	dtMs = anim.ClampDt(dtMs)
	if len(inputs) > MaxSeries {
		inputs = inputs[:MaxSeries] // cap: first N win
	}

	p.ingest(inputs, hidden)

	// Targets from fresh input: union of visible series' extents.
	target, haveTarget := p.rangeTarget(vp.T0, vp.T1)

	// Render from the committed snapshot.
	p.render(vp, pointerX, formatValue, formatTime)

	// Commit.
	if haveTarget {
		p.rng.Advance(target, rangeSpeed, dtMs)
	}
	p.advance(dtMs)

	return &p.out
}

// ingest binds inputs to slots by ID and marks visibility targets.
func (p *Pipeline) ingest(inputs []Input, hidden func(id string) bool) {
	for i := range p.states {
		p.states[i].wanted = false
	}
	for _, in := range inputs {
		s := p.find(in.ID)
		if s == nil {
			s = p.acquire()
			if s == nil {
				continue // all slots still fading out: drop this series
			}
			s.id = in.ID
			s.active = true
			s.alpha = 0
			s.liveSet = false
		}
		s.wanted = true
		s.label = in.Label
		s.buf.SetSamples(in.Samples)
		if !s.liveSet {
			s.dispLive = in.LiveValue
			s.liveSet = true
		}
		s.liveTarget = in.LiveValue
		s.hidden = hidden != nil && hidden(in.ID)
	}
}

func (p *Pipeline) find(id string) *state {
	for i := range p.states {
		if p.states[i].active && p.states[i].id == id {
			return &p.states[i]
		}
	}
	return nil
}

// acquire returns a free slot, or the most-faded unwanted one.
func (p *Pipeline) acquire() *state {
	var victim *state
	for i := range p.states {
		s := &p.states[i]
		if !s.active {
			return s
		}
		if s.wanted {
			continue
		}
		if victim == nil || s.alpha < victim.alpha {
			victim = s
		}
	}
	if victim != nil && victim.alpha < VisibleAlphaThreshold {
		return victim
	}
	return nil
}

// rangeTarget unions visible-window extents of every series above the
// visibility threshold, including smoothed live values.
func (p *Pipeline) rangeTarget(t0, t1 float64) (series.Range, bool) {
	lo, hi := 0.0, 0.0
	have := false
	for i := range p.states {
		s := &p.states[i]
		if !s.active || s.alpha <= VisibleAlphaThreshold && !s.wantedVisible() {
			continue
		}
		l, h, ok := s.buf.MinMax(s.buf.Visible(t0, t1, 1))
		if !ok {
			continue
		}
		if s.liveSet {
			if s.dispLive < l {
				l = s.dispLive
			}
			if s.dispLive > h {
				h = s.dispLive
			}
		}
		if !have {
			lo, hi, have = l, h, true
			continue
		}
		if l < lo {
			lo = l
		}
		if h > hi {
			hi = h
		}
	}
	if !have {
		return series.Range{}, false
	}
	return series.TargetRange(lo, hi, false), true
}

// render builds per-series paths, dots and crosshair entries from the
// committed state.
func (p *Pipeline) render(vp geom.Viewport, pointerX *float64, formatValue, formatTime crosshair.FormatFunc) {
	p.out.Series = p.out.Series[:0]
	p.out.Entries = p.out.Entries[:0]
	p.out.TimeText = ""
	if vp.Plot.Empty() {
		return
	}

	var hoverT float64
	hovering := pointerX != nil
	if hovering {
		hoverT = vp.TimeForX(*pointerX)
		if formatTime != nil {
			p.out.TimeText = p.timeFmt.Format(hoverT, formatTime)
		}
	}

	for i := range p.states {
		s := &p.states[i]
		if !s.active || s.alpha < visSnapEps {
			continue
		}
		s.buildPoints(vp)
		spline.Build(&s.path, s.pts)

		dotX, dotY := vp.Plot.Right(), vp.YForValue(s.dispLive)
		if n := len(s.pts); n > 0 {
			dotX, dotY = s.pts[n-1].X, s.pts[n-1].Y
		}
		p.out.Series = append(p.out.Series, SeriesOut{
			ID: s.id, Label: s.label, Path: &s.path, Alpha: s.alpha,
			DotX: dotX, DotY: dotY,
		})

		if hovering && s.alpha > VisibleAlphaThreshold {
			x := vp.Plot.ClampX(*pointerX)
			if y, ok := spline.EvalAt(s.pts, x); ok {
				value := vp.Lo + (vp.Plot.Y+vp.Plot.H-y)/vp.Plot.H*(vp.Hi-vp.Lo)
				text := ""
				if formatValue != nil {
					text = s.valueFmt.Format(value, formatValue)
				}
				p.out.Entries = append(p.out.Entries, Entry{
					ID: s.id, Label: s.label, Value: value, Text: text,
					Y: y, Alpha: s.alpha,
				})
			}
		}
	}
}

// buildPoints projects the visible window plus the live tip into pixel
// space, reusing the scratch slice.
func (s *state) buildPoints(vp geom.Viewport) {
	s.pts = s.pts[:0]
	lo, hi := s.buf.Visible(vp.T0, vp.T1, 1)
	for i := lo; i < hi; i++ {
		smp := s.buf.At(i)
		s.pts = append(s.pts, geom.Point{X: vp.XForTime(smp.TimeSec), Y: vp.YForValue(smp.Value)})
	}
	if s.liveSet {
		// The live tip anchors the right edge on the smoothed value, even
		// when a sample lands exactly there.
		tip := geom.Point{X: vp.Plot.Right(), Y: vp.YForValue(s.dispLive)}
		if n := len(s.pts); n > 0 && s.pts[n-1].X >= tip.X {
			s.pts[n-1] = tip
		} else {
			s.pts = append(s.pts, tip)
		}
	}
	// A single sample widens into a flat line across the plot.
	if len(s.pts) == 1 {
		only := s.pts[0]
		s.pts = append(s.pts[:0],
			geom.Point{X: vp.Plot.X, Y: only.Y},
			geom.Point{X: vp.Plot.Right(), Y: only.Y},
		)
	}
}

// advance commits visibility fades and live-value smoothing.
func (p *Pipeline) advance(dtMs float64) {
	span := p.rng.Cur.Span()
	for i := range p.states {
		s := &p.states[i]
		if !s.active {
			continue
		}
		target := 0.0
		if s.wanted && !s.hidden {
			target = 1
		}
		s.alpha = anim.AdvanceSnap(s.alpha, target, VisibilitySpeed, dtMs, visSnapEps)
		if !s.wanted && s.alpha == 0 {
			// Fully faded orphan: release the slot, keeping its buffers.
			s.path.Reset()
			*s = state{buf: s.buf, pts: s.pts[:0], path: s.path, valueFmt: s.valueFmt}
			continue
		}
		if s.liveSet {
			speed := anim.AdaptiveSpeed(liveSpeed, liveMaxSpeed, s.liveTarget-s.dispLive, span)
			s.dispLive = anim.AdvanceSnap(s.dispLive, s.liveTarget, speed, dtMs, liveSnapEps)
		}
	}
}

func (s *state) wantedVisible() bool { return s.wanted && !s.hidden }
