package spline

import (
	"math"

	"github.com/katalvlaran/lvlchart/anim"
	"github.com/katalvlaran/lvlchart/geom"
)

// Idle waveform shape: a three-harmonic sine sum, amplitudes halving per
// harmonic so the squiggle reads organic rather than periodic. Frequencies
// are in cycles across the plot width; phase speeds differ so the shape
// drifts instead of translating rigidly.
const (
	idleFreq1 = 1.7
	idleFreq2 = 3.1
	idleFreq3 = 5.3

	idlePhase2 = 1.3
	idlePhase3 = 0.7

	// idleAmpFrac is the waveform amplitude as a fraction of plot height.
	idleAmpFrac = 0.12
)

// IdleWave returns the decorative waveform Y for a horizontal position
// u ∈ [0,1] across the plot, in units of plot height relative to the plot
// vertical center. phase advances the animation (seconds of wall clock).
func IdleWave(u, phase float64) float64 {
	w := math.Sin(2*math.Pi*idleFreq1*u + phase)
	w += 0.5 * math.Sin(2*math.Pi*idleFreq2*u+idlePhase2*phase)
	w += 0.25 * math.Sin(2*math.Pi*idleFreq3*u+idlePhase3*phase)
	return idleAmpFrac * w / 1.75 // normalize the 1+0.5+0.25 amplitude sum
}

// ApplyReveal blends pts (pixel-space, in place) between the idle waveform
// and their real positions. progress 0 shows the pure squiggle, 1 the real
// curve; values in between mix linearly after cosine easing. phase drives
// the squiggle animation. progress ≥ 1 is a no-op.
func ApplyReveal(pts []geom.Point, plot geom.Rect, progress, phase float64) {
	if progress >= 1 || plot.Empty() {
		return
	}
	if progress < 0 {
		progress = 0
	}
	mix := anim.CosEase(progress)
	cy := plot.Y + plot.H/2
	for i := range pts {
		u := (pts[i].X - plot.X) / plot.W
		waveY := cy + IdleWave(u, phase)*plot.H
		pts[i].Y = waveY + (pts[i].Y-waveY)*mix
	}
}
