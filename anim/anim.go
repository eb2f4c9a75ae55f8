package anim

import "math"

const (
	// RefFrameMs is the reference frame interval the speed constants are
	// tuned against: one frame at 60 Hz.
	RefFrameMs = 1000.0 / 60.0

	// MaxFrameDtMs caps the elapsed time fed into any interpolation. A
	// stalled host (backgrounded app, debugger pause) resumes with at most
	// this much simulated time instead of one huge jump.
	MaxFrameDtMs = 50.0
)

// ClampDt returns dtMs clamped into [0, MaxFrameDtMs]. Negative and NaN
// inputs resolve to 0 (a no-op step).
func ClampDt(dtMs float64) float64 {
	if !(dtMs > 0) {
		return 0
	}
	if dtMs > MaxFrameDtMs {
		return MaxFrameDtMs
	}
	return dtMs
}

// Advance moves cur toward target by one frame-rate-independent
// exponential step. speed is the per-reference-frame convergence fraction
// in [0, 1]; dtMs is raw elapsed milliseconds (clamped internally).
//
// Properties: Advance(c, t, s, 0) == c; speed 1 or dt→∞ returns target.
func Advance(cur, target, speed, dtMs float64) float64 {
	if math.IsInf(dtMs, 1) && speed > 0 {
		return target
	}
	dtMs = ClampDt(dtMs)
	if dtMs == 0 || cur == target {
		return cur
	}
	if speed >= 1 {
		return target
	}
	if speed <= 0 {
		return cur
	}
	ratio := dtMs / RefFrameMs
	return cur + (target-cur)*(1-math.Pow(1-speed, ratio))
}

// AdvanceSnap is Advance with snap-on-convergence: once the remaining gap
// after the step is at most snapEps, the result is exactly target.
func AdvanceSnap(cur, target, speed, dtMs, snapEps float64) float64 {
	next := Advance(cur, target, speed, dtMs)
	if math.Abs(target-next) <= snapEps {
		return target
	}
	return next
}

// AdaptiveSpeed boosts a base convergence speed as the gap grows relative
// to the span: tiny jitters converge at base, jumps of a full span (or
// more) converge at maxSpeed, with linear blending between. A non-positive
// span yields base (nothing to normalize against).
func AdaptiveSpeed(base, maxSpeed, gap, span float64) float64 {
	if span <= 0 || maxSpeed <= base {
		return base
	}
	rel := math.Abs(gap) / span
	if rel > 1 {
		rel = 1
	}
	return base + (maxSpeed-base)*rel
}

// CosEase maps linear progress p∈[0,1] to a cosine ease-in-out curve.
// Inputs outside [0,1] are clamped.
func CosEase(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return 0.5 - 0.5*math.Cos(math.Pi*p)
}

// Progress is a fixed-duration 0..1 ramp used for timed morphs (candle
// width change, line/candle mode switch, birth fades). The zero value is a
// finished ramp at 1.
type Progress struct {
	elapsedMs  float64
	durationMs float64
	running    bool
}

// Start restarts the ramp from zero over durationMs. A non-positive
// duration completes immediately.
func (p *Progress) Start(durationMs float64) {
	p.elapsedMs = 0
	p.durationMs = durationMs
	p.running = durationMs > 0
}

// Advance accumulates clamped elapsed time.
func (p *Progress) Advance(dtMs float64) {
	if !p.running {
		return
	}
	p.elapsedMs += ClampDt(dtMs)
	if p.elapsedMs >= p.durationMs {
		p.elapsedMs = p.durationMs
		p.running = false
	}
}

// Linear returns raw progress in [0,1].
func (p *Progress) Linear() float64 {
	if p.durationMs <= 0 {
		return 1
	}
	return p.elapsedMs / p.durationMs
}

// Eased returns cosine-eased progress in [0,1].
func (p *Progress) Eased() float64 { return CosEase(p.Linear()) }

// Done reports whether the ramp has reached 1.
func (p *Progress) Done() bool { return !p.running }
