package engine

import "errors"

// ErrInvalidTuning is panicked by WithTuning on non-positive fields.
var ErrInvalidTuning = errors.New("engine: tuning fields must be positive")

// Tuning holds the engine-level animation constants. Component-internal
// constants (spline bounds, fade distances, pool sizes) are fixed; these
// are the knobs that shape the chart's overall motion and may be loaded
// from a profile.
type Tuning struct {
	// ValueSpeed / ValueMaxSpeed bound the adaptive displayed-value
	// convergence: base rate for jitter, max rate for large jumps.
	ValueSpeed    float64 `yaml:"value_speed"`
	ValueMaxSpeed float64 `yaml:"value_max_speed"`

	// RangeSpeed converges the Y-range toward its target.
	RangeSpeed float64 `yaml:"range_speed"`

	// WindowSpeed / OffsetSpeed animate the visible time window length
	// and the history-browsing domain offset.
	WindowSpeed float64 `yaml:"window_speed"`
	OffsetSpeed float64 `yaml:"offset_speed"`

	// BadgeSpeed trails the value badge behind the live dot.
	BadgeSpeed float64 `yaml:"badge_speed"`

	// RevealMs is the squiggle-to-data reveal duration.
	RevealMs float64 `yaml:"reveal_ms"`

	// PulsePeriodMs is the live-dot pulse cycle.
	PulsePeriodMs float64 `yaml:"pulse_period_ms"`

	// SwingBurstFrac: a live-value move of this fraction of the current
	// range within one tick triggers a particle burst.
	SwingBurstFrac float64 `yaml:"swing_burst_frac"`
	// ShakeImpulsePx is the shake energy added per full-intensity burst.
	ShakeImpulsePx float64 `yaml:"shake_impulse_px"`
}

// DefaultTuning returns the stock motion profile.
func DefaultTuning() Tuning {
	return Tuning{
		ValueSpeed:     0.08,
		ValueMaxSpeed:  0.4,
		RangeSpeed:     0.1,
		WindowSpeed:    0.08,
		OffsetSpeed:    0.12,
		BadgeSpeed:     0.2,
		RevealMs:       900,
		PulsePeriodMs:  1600,
		SwingBurstFrac: 0.04,
		ShakeImpulsePx: 3,
	}
}

// Validate reports ErrInvalidTuning when any field is non-positive.
func (t Tuning) Validate() error {
	ok := t.ValueSpeed > 0 && t.ValueMaxSpeed > 0 && t.RangeSpeed > 0 &&
		t.WindowSpeed > 0 && t.OffsetSpeed > 0 && t.BadgeSpeed > 0 &&
		t.RevealMs > 0 && t.PulsePeriodMs > 0 &&
		t.SwingBurstFrac > 0 && t.ShakeImpulsePx > 0
	if !ok {
		return ErrInvalidTuning
	}
	return nil
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithTuning replaces the default motion profile. Panics with
// ErrInvalidTuning on non-positive fields: tuning is programmer input.
func WithTuning(t Tuning) Option {
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return func(e *Engine) { e.tuning = t }
}

// WithSeed seeds the decorative-physics generator; seed==0 keeps the
// fixed default stream.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}
