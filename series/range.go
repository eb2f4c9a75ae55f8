package series

import (
	"math"

	"github.com/katalvlaran/lvlchart/anim"
)

// Empirically tuned range constants, preserved verbatim from the original
// visual design. They encode chart feel, not derivable invariants; change
// them only on an explicit product decision.
const (
	// MarginFrac pads the raw value extent on each side.
	MarginFrac = 0.1
	// ExaggerateMarginFrac is the tighter padding used to amplify small
	// moves when the caller enables exaggerated ranging.
	ExaggerateMarginFrac = 0.04
	// MinSpanFrac floors the target span at this fraction of the raw span.
	MinSpanFrac = 0.1
	// MinSpanAbs is the absolute floor on the target span, protecting flat
	// series from a zero-height plot.
	MinSpanAbs = 0.4

	// SnapFrac: a range bound snaps to its target once the remaining gap
	// drops below this fraction of the current span.
	SnapFrac = 0.001
	// ExpandSnapFrac: an expansion larger than this fraction of the
	// current span snaps immediately instead of animating.
	ExpandSnapFrac = 0.5
)

// Range is a [Min, Max] value interval.
type Range struct {
	Min, Max float64
}

// Span returns Max-Min (possibly ≤ 0 for degenerate input).
func (r Range) Span() float64 { return r.Max - r.Min }

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// TargetRange converts the raw visible value extent [mn, mx] into the
// range the chart should converge toward: margins applied on both sides,
// then widened symmetrically to the minimum-span floor.
func TargetRange(mn, mx float64, exaggerate bool) Range {
	if mx < mn {
		mn, mx = mx, mn
	}
	raw := mx - mn
	margin := MarginFrac
	if exaggerate {
		margin = ExaggerateMarginFrac
	}
	lo := mn - raw*margin
	hi := mx + raw*margin

	floor := math.Max(raw*MinSpanFrac, MinSpanAbs)
	if span := hi - lo; span < floor {
		mid := (lo + hi) / 2
		lo = mid - floor/2
		hi = mid + floor/2
	}
	return Range{Min: lo, Max: hi}
}

// AnimatedRange carries the displayed range and converges it toward a
// target with the expansion/contraction asymmetry.
type AnimatedRange struct {
	Cur Range
	set bool
}

// Set forces the displayed range (first frame, or hard resets).
func (a *AnimatedRange) Set(r Range) {
	a.Cur = r
	a.set = true
}

// Initialized reports whether the range has ever been set or advanced.
func (a *AnimatedRange) Initialized() bool { return a.set }

// Advance moves the displayed range one step toward target.
//
// Rules:
//   - first call adopts the target verbatim;
//   - dt ≤ 0 is a no-op, like every other animated quantity;
//   - a bound expanding by more than ExpandSnapFrac of the current span
//     snaps to the target bound (real data must not stay clipped);
//   - otherwise each bound converges exponentially and snaps once within
//     SnapFrac of the current span.
func (a *AnimatedRange) Advance(target Range, speed, dtMs float64) {
	if !a.set {
		a.Set(target)
		return
	}
	if dtMs <= 0 || math.IsNaN(dtMs) {
		return
	}
	span := a.Cur.Span()
	if span <= 0 {
		a.Cur = target
		return
	}
	snapEps := span * SnapFrac
	half := span * ExpandSnapFrac

	if target.Min < a.Cur.Min-half {
		a.Cur.Min = target.Min
	} else {
		a.Cur.Min = anim.AdvanceSnap(a.Cur.Min, target.Min, speed, dtMs, snapEps)
	}
	if target.Max > a.Cur.Max+half {
		a.Cur.Max = target.Max
	} else {
		a.Cur.Max = anim.AdvanceSnap(a.Cur.Max, target.Max, speed, dtMs, snapEps)
	}
}
