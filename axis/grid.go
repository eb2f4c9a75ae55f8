package axis

import (
	"math"
	"strconv"

	"github.com/katalvlaran/lvlchart/anim"
	"github.com/katalvlaran/lvlchart/geom"
)

// ValueFormatter renders a grid tick value as label text.
type ValueFormatter func(float64) string

// DefaultValueFormatter trims trailing zeros from a fixed 6-decimal
// rendering, matching the engine's display precision floor.
func DefaultValueFormatter(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// keyForValue quantizes a tick value into a stable slot identity. The 1e6
// scale matches the display precision floor: two ticks closer than that
// are visually the same label.
func keyForValue(v float64) int64 { return int64(math.Round(v * 1e6)) }

// Grid manages the horizontal value-grid labels over a fixed slot pool.
type Grid struct {
	slots [GridPoolSize]Slot
	step  float64
}

// NewGrid returns a grid manager with an empty pool.
func NewGrid() *Grid { return &Grid{} }

// Step returns the current coarse interval (0 before the first update).
func (g *Grid) Step() float64 { return g.step }

// Update advances the grid for one frame: re-picks the interval (with
// hysteresis), marks wanted ticks, assigns/recycles slots and converges
// opacities. format may be nil to use DefaultValueFormatter.
func (g *Grid) Update(dtMs float64, vp geom.Viewport, format ValueFormatter) {
	if format == nil {
		format = DefaultValueFormatter
	}
	for i := range g.slots {
		g.slots[i].wanted = false
	}

	span := vp.Hi - vp.Lo
	g.step = NiceValueStep(span, vp.Plot.H, g.step)
	if g.step > 0 && span > 0 && !vp.Plot.Empty() {
		g.mark(vp, format)
	}

	// Converge opacities; release slots that finished fading out.
	for i := range g.slots {
		s := &g.slots[i]
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

// mark walks the coarse and fine ticks of the current interval and binds
// each to a slot.
func (g *Grid) mark(vp geom.Viewport, format ValueFormatter) {
	fine := g.step / 2
	pxSpacing := g.step / (vp.Hi - vp.Lo) * vp.Plot.H
	fineAlpha := fineRamp(pxSpacing)

	i0 := int64(math.Ceil(vp.Lo / fine))
	i1 := int64(math.Floor(vp.Hi / fine))
	if i1-i0 > 4*GridPoolSize {
		// Pathological range/step combination; keep the tick walk bounded.
		i1 = i0 + 4*GridPoolSize
	}
	for i := i0; i <= i1; i++ {
		coarse := i%2 == 0
		if !coarse && fineAlpha <= 0 {
			continue
		}
		v := float64(i) * fine
		y := vp.YForValue(v)
		target := edgeFade(y, vp.Plot.Y, vp.Plot.Bottom())
		if !coarse {
			target *= fineAlpha
		}
		key := keyForValue(v)

		s := find(g.slots[:], key)
		if s == nil {
			if s = acquire(g.slots[:]); s == nil {
				continue // pool exhausted: drop this tick for the frame
			}
			*s = Slot{Key: key, Value: v, Text: format(v), Active: true}
		}
		s.wanted = true
		s.Pos = y
		s.Target = target
	}
}

// fineRamp maps coarse pixel spacing to the fine layer's target opacity:
// 0 below FineFadeStartPx, FineMaxAlpha above FineFadeFullPx, linear
// in between.
func fineRamp(spacingPx float64) float64 {
	if spacingPx <= FineFadeStartPx {
		return 0
	}
	if spacingPx >= FineFadeFullPx {
		return FineMaxAlpha
	}
	return FineMaxAlpha * (spacingPx - FineFadeStartPx) / (FineFadeFullPx - FineFadeStartPx)
}

// Visible appends every slot worth drawing (alpha above the release
// floor) to dst and returns it. dst is reused across frames by callers.
func (g *Grid) Visible(dst []Slot) []Slot {
	for i := range g.slots {
		if g.slots[i].Active && g.slots[i].Alpha >= releaseAlpha {
			dst = append(dst, g.slots[i])
		}
	}
	return dst
}

// ActiveCount returns the number of bound slots (visible or fading).
func (g *Grid) ActiveCount() int {
	n := 0
	for i := range g.slots {
		if g.slots[i].Active {
			n++
		}
	}
	return n
}
