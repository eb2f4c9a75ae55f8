package crosshair

import (
	"math"

	"github.com/katalvlaran/lvlchart/anim"
	"github.com/katalvlaran/lvlchart/geom"
	"github.com/katalvlaran/lvlchart/spline"
)

const (
	// DeadZonePx: within this distance of the live dot the crosshair is
	// fully hidden.
	DeadZonePx = 10.0
	// FadeStartPx: at or beyond this distance the crosshair reaches the
	// full scrub-engagement opacity; the ramp between is linear.
	FadeStartPx = 48.0

	// ScrubSpeed converges the engagement amount when scrubbing starts or
	// stops.
	ScrubSpeed = 0.16
	// scrubSnapEps ends the engagement ramp exactly at 0 or 1.
	scrubSnapEps = 1e-3

	// ValueQuantum / TimeQuantumSec are the display precision floors:
	// text is reformatted only when the quantized value changes.
	ValueQuantum   = 1e-6
	TimeQuantumSec = 1.0

	// Notify dedup epsilons. The value epsilon matches the display
	// quantum: a change the text cannot show is not worth a callback.
	notifyEpsX     = 0.5 // px
	notifyEpsTime  = 1e-3
	notifyEpsValue = ValueQuantum
)

// FormatFunc renders a value (or a time in seconds) as display text.
type FormatFunc func(float64) string

// Formatter caches formatted text behind a display quantum.
type Formatter struct {
	quantum float64
	lastQ   float64
	text    string
	primed  bool
}

// NewFormatter returns a cache with the given quantum (> 0).
func NewFormatter(quantum float64) Formatter {
	return Formatter{quantum: quantum}
}

// Format returns fn(v), recomputing only when v crossed into a different
// display quantum since the previous call. A nil fn yields empty text
// and leaves the cache untouched.
func (f *Formatter) Format(v float64, fn FormatFunc) string {
	if fn == nil {
		return ""
	}
	q := math.Round(v / f.quantum)
	if f.primed && q == f.lastQ {
		return f.text
	}
	f.lastQ = q
	f.text = fn(v)
	f.primed = true
	return f.text
}

// Result is one frame's resolved crosshair state.
type Result struct {
	Active    bool
	X, Y      float64 // screen position of the crosshair dot
	TimeSec   float64
	Value     float64
	Alpha     float64
	ValueText string
	TimeText  string
}

// Event is the deduplicated hover payload handed to the host.
type Event struct {
	X, Y    float64
	TimeSec float64
	Value   float64
}

// Resolver owns the animated scrub amount, text caches and notify state
// for one chart (or one series in multi mode).
type Resolver struct {
	scrub    float64
	valueFmt Formatter
	timeFmt  Formatter

	lastNotify Event
	notified   bool
}

// NewResolver returns a resolver with standard display quanta.
func NewResolver() *Resolver {
	return &Resolver{
		valueFmt: NewFormatter(ValueQuantum),
		timeFmt:  NewFormatter(TimeQuantumSec),
	}
}

// AdvanceScrub converges the engagement amount toward 1 (scrubbing) or 0.
func (r *Resolver) AdvanceScrub(dtMs float64, engaged bool) {
	target := 0.0
	if engaged {
		target = 1
	}
	r.scrub = anim.AdvanceSnap(r.scrub, target, ScrubSpeed, dtMs, scrubSnapEps)
}

// Scrub returns the current engagement amount in [0,1].
func (r *Resolver) Scrub() float64 { return r.scrub }

// FadeAlpha maps the distance from the live dot to crosshair opacity:
// 0 inside the dead zone, scrub at/beyond FadeStartPx, linear between.
func FadeAlpha(distPx, scrub float64) float64 {
	d := math.Abs(distPx)
	if d <= DeadZonePx {
		return 0
	}
	if d >= FadeStartPx {
		return scrub
	}
	return scrub * (d - DeadZonePx) / (FadeStartPx - DeadZonePx)
}

// Resolve maps pointer X onto the curve described by pts (pixel-space,
// the same slice the line path was built from). liveX is the live dot's
// screen X, anchoring the fade. Returns an inactive Result when there is
// no curve to inspect.
func (r *Resolver) Resolve(vp geom.Viewport, pointerX, liveX float64, pts []geom.Point, formatValue, formatTime FormatFunc) Result {
	if len(pts) == 0 || vp.Plot.Empty() {
		return Result{}
	}
	x := vp.Plot.ClampX(pointerX)
	y, ok := spline.EvalAt(pts, x)
	if !ok {
		return Result{}
	}
	t := vp.TimeForX(x)
	value := vp.Lo + (vp.Plot.Y+vp.Plot.H-y)/vp.Plot.H*(vp.Hi-vp.Lo)

	return Result{
		Active:    true,
		X:         x,
		Y:         y,
		TimeSec:   t,
		Value:     value,
		Alpha:     FadeAlpha(x-liveX, r.scrub),
		ValueText: r.valueFmt.Format(value, formatValue),
		TimeText:  r.timeFmt.Format(t, formatTime),
	}
}

// ShouldNotify reports whether res differs from the previously notified
// hover beyond the dedup epsilons, recording it when it does. Inactive
// results clear the notify state so the next hover always fires.
func (r *Resolver) ShouldNotify(res Result) bool {
	if !res.Active {
		r.notified = false
		return false
	}
	if r.notified &&
		math.Abs(res.X-r.lastNotify.X) < notifyEpsX &&
		math.Abs(res.TimeSec-r.lastNotify.TimeSec) < notifyEpsTime &&
		math.Abs(res.Value-r.lastNotify.Value) < notifyEpsValue {
		return false
	}
	r.lastNotify = Event{X: res.X, Y: res.Y, TimeSec: res.TimeSec, Value: res.Value}
	r.notified = true
	return true
}
