// Package axis slot pool primitives shared by the grid and time managers.
package axis

const (
	// GridPoolSize bounds concurrently tracked grid labels (coarse + fine).
	GridPoolSize = 24
	// TimePoolSize bounds concurrently tracked time-axis labels.
	TimePoolSize = 16

	// MinGridSpacingPx is the minimum pixel distance between grid lines.
	MinGridSpacingPx = 36.0
	// MinTimeSpacingPx is the minimum pixel distance between time labels.
	MinTimeSpacingPx = 64.0

	// FineFadeStartPx / FineFadeFullPx bound the linear ramp over which
	// the fine half-step layer fades in as coarse spacing grows.
	FineFadeStartPx = 72.0
	FineFadeFullPx  = 120.0
	// FineMaxAlpha is the fine layer's fully-visible target opacity.
	FineMaxAlpha = 0.5

	// EdgeFadePx scales label opacity down within this distance of the
	// plot boundary so labels never look abruptly clipped.
	EdgeFadePx = 14.0

	// LabelFadeSpeed is the per-reference-frame convergence speed of slot
	// opacity toward its target.
	LabelFadeSpeed = 0.18

	// releaseAlpha: a fading slot below this opacity is considered gone
	// and may be recycled.
	releaseAlpha = 0.01

	// charWidthPx approximates rendered text width per character for the
	// time-axis overlap test; the presentation layer's font is close
	// enough to monospaced digits for collision purposes.
	charWidthPx = 7.0
)

// Slot is one pooled label: a reusable record reassigned across ticks
// rather than created and destroyed.
type Slot struct {
	Key    int64   // stable identity of the tick this slot shows
	Value  float64 // tick value: a price level (grid) or time in seconds
	Text   string  // formatted label text
	Pos    float64 // pixel position: Y for grid slots, X for time slots
	Alpha  float64 // current opacity
	Target float64 // opacity this slot is converging toward
	Active bool    // slot is bound to a tick (live or fading out)

	wanted bool // per-update mark: the tick still exists this frame
}

// find returns the active slot bound to key, or nil.
func find(slots []Slot, key int64) *Slot {
	for i := range slots {
		if slots[i].Active && slots[i].Key == key {
			return &slots[i]
		}
	}
	return nil
}

// acquire returns a slot for a new tick: a free slot when one exists,
// otherwise the least-visible unwanted slot. Returns nil when every slot
// is still wanted (pool exhausted; the new tick is silently dropped this
// frame, a soft visual degradation, never an error).
func acquire(slots []Slot) *Slot {
	var victim *Slot
	for i := range slots {
		s := &slots[i]
		if !s.Active {
			return s
		}
		if s.wanted {
			continue
		}
		if victim == nil || s.Alpha < victim.Alpha {
			victim = s
		}
	}
	return victim
}

// edgeFade returns the opacity scale for a position pos within [lo, hi]:
// 1 in the interior, ramping to 0 over EdgeFadePx at either boundary.
func edgeFade(pos, lo, hi float64) float64 {
	d := pos - lo
	if d2 := hi - pos; d2 < d {
		d = d2
	}
	if d <= 0 {
		return 0
	}
	if d >= EdgeFadePx {
		return 1
	}
	return d / EdgeFadePx
}
