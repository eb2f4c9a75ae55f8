package axis

import (
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/lvlchart/anim"
	"github.com/katalvlaran/lvlchart/geom"
)

// TimeFormatter renders a tick time (seconds) as label text. step is the
// current interval, letting formatters drop precision the axis cannot
// resolve anyway.
type TimeFormatter func(sec, step float64) string

// DefaultTimeFormatter prints wall-clock text at a granularity matched to
// the interval: seconds below a minute, minutes below a day, dates above.
func DefaultTimeFormatter(sec, step float64) string {
	ts := time.Unix(int64(sec), 0).UTC()
	switch {
	case step < 60:
		return ts.Format("15:04:05")
	case step < 86400:
		return ts.Format("15:04")
	default:
		return ts.Format("Jan 2")
	}
}

// TimeAxis manages the time labels along the bottom edge over a fixed
// slot pool, including the deterministic overlap resolution.
type TimeAxis struct {
	slots [TimePoolSize]Slot
	step  float64

	// scratch for the overlap pass, reused across frames
	order []*Slot
}

// NewTimeAxis returns a time-axis manager with an empty pool.
func NewTimeAxis() *TimeAxis {
	return &TimeAxis{order: make([]*Slot, 0, TimePoolSize)}
}

// Step returns the current interval (0 before the first update).
func (a *TimeAxis) Step() float64 { return a.step }

// Update advances the time axis one frame. format may be nil to use
// DefaultTimeFormatter.
func (a *TimeAxis) Update(dtMs float64, vp geom.Viewport, format TimeFormatter) {
	if format == nil {
		format = DefaultTimeFormatter
	}
	for i := range a.slots {
		a.slots[i].wanted = false
	}

	a.step = NiceTimeStep(vp.T1-vp.T0, vp.Plot.W)
	if a.step > 0 && !vp.Plot.Empty() {
		a.mark(vp, format)
		a.resolveOverlaps()
	}

	for i := range a.slots {
		s := &a.slots[i]
		if !s.Active {
			continue
		}
		if !s.wanted {
			s.Target = 0
		}
		s.Alpha = anim.Advance(s.Alpha, s.Target, LabelFadeSpeed, dtMs)
		if !s.wanted && s.Alpha < releaseAlpha {
			*s = Slot{}
		}
	}
}

func (a *TimeAxis) mark(vp geom.Viewport, format TimeFormatter) {
	i0 := int64(math.Ceil(vp.T0 / a.step))
	i1 := int64(math.Floor(vp.T1 / a.step))
	if i1-i0 > 4*TimePoolSize {
		i1 = i0 + 4*TimePoolSize
	}
	for i := i0; i <= i1; i++ {
		t := float64(i) * a.step
		x := vp.XForTime(t)
		key := int64(math.Round(t))

		s := find(a.slots[:], key)
		if s == nil {
			if s = acquire(a.slots[:]); s == nil {
				continue
			}
			*s = Slot{Key: key, Value: t, Text: format(t, a.step), Active: true}
		}
		s.wanted = true
		s.Pos = x
		s.Target = edgeFade(x, vp.Plot.X, vp.Plot.Right())
	}
}

// resolveOverlaps sorts wanted labels by X and suppresses the less
// visible of any pair whose rendered widths would collide. Ties resolve
// to the left label so the outcome is deterministic.
func (a *TimeAxis) resolveOverlaps() {
	a.order = a.order[:0]
	for i := range a.slots {
		if a.slots[i].Active && a.slots[i].wanted {
			a.order = append(a.order, &a.slots[i])
		}
	}
	sort.Slice(a.order, func(i, j int) bool { return a.order[i].Pos < a.order[j].Pos })

	for i := 1; i < len(a.order); i++ {
		l, r := a.order[i-1], a.order[i]
		if l.Target == 0 {
			// Already suppressed; compare r against the previous survivor.
			if i >= 2 {
				l = a.order[i-2]
			} else {
				continue
			}
		}
		halfW := (textWidth(l.Text) + textWidth(r.Text)) / 2
		if r.Pos-l.Pos >= halfW {
			continue
		}
		if r.Alpha > l.Alpha {
			l.Target = 0
		} else {
			r.Target = 0
		}
	}
}

func textWidth(s string) float64 { return float64(len(s)) * charWidthPx }

// Visible appends drawable slots to dst and returns it.
func (a *TimeAxis) Visible(dst []Slot) []Slot {
	for i := range a.slots {
		if a.slots[i].Active && a.slots[i].Alpha >= releaseAlpha {
			dst = append(dst, a.slots[i])
		}
	}
	return dst
}

// ActiveCount returns the number of bound slots (visible or fading).
func (a *TimeAxis) ActiveCount() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].Active {
			n++
		}
	}
	return n
}
