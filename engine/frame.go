package engine

import (
	"github.com/katalvlaran/lvlchart/axis"
	"github.com/katalvlaran/lvlchart/candle"
	"github.com/katalvlaran/lvlchart/crosshair"
	"github.com/katalvlaran/lvlchart/geom"
	"github.com/katalvlaran/lvlchart/multi"
	"github.com/katalvlaran/lvlchart/physics"
	"github.com/katalvlaran/lvlchart/series"
)

// RefLine is an optional horizontal reference (e.g. a position's entry
// price) drawn across the plot.
type RefLine struct {
	Value float64
	Label string
}

// Input is one tick's worth of caller data and configuration. All slices
// are read-only to the engine; the caller may reuse them across ticks.
type Input struct {
	// Line-mode data.
	Samples   []series.Sample
	LiveValue float64
	HaveLive  bool

	// Layout and window.
	Plot      geom.Rect
	WindowSec float64 // target visible window length
	OffsetSec float64 // target domain offset, 0 = live edge

	// Feature toggles.
	ShowGrid     bool
	ShowBadge    bool
	ShowFill     bool
	ShowPulse    bool
	ShowMomentum bool // particle bursts + screen shake
	ScrubEnabled bool
	Paused       bool
	Exaggerate   bool // tighter range margins to emphasize small moves

	Reference *RefLine
	PointerX  *float64 // nil when not hovering

	// Orderbook ticker feed; nil slices disable the ticker.
	Bids, Asks []physics.Level

	// Candle mode: supplying candles (or a live candle) selects it.
	Candles        []candle.Candle
	LiveCandle     *candle.Candle
	CandleWidthSec float64
	LineModeTarget float64 // 1 morphs candles into a line

	// Multi mode: supplying series selects it (unless candles are set).
	Series []multi.Input
	Hidden func(id string) bool

	// Formatting callbacks; nil yields empty text.
	FormatValue crosshair.FormatFunc
	FormatTime  crosshair.FormatFunc

	// OnHover receives deduplicated hover payloads.
	OnHover func(crosshair.Event)
}

// Frame is one tick's renderable output. Paths and slices are owned by
// the engine and valid until the next Tick.
type Frame struct {
	Empty    bool // no drawable data this tick
	Viewport geom.Viewport

	// Line layer.
	Line   geom.Path
	Fill   geom.Path
	Reveal float64 // 0 squiggle … 1 real data

	// Live dot and pulse.
	DotX, DotY float64
	PulsePhase float64 // 0..1 cycle position
	PulseAlpha float64

	// Value badge.
	BadgeY    float64
	BadgeText string

	// Axes.
	GridLines  geom.Path
	GridLabels []axis.Slot
	TimeLabels []axis.Slot

	// Reference line.
	HasRef   bool
	RefY     float64
	RefLine  geom.Path
	RefLabel string

	// Crosshair.
	Crosshair   crosshair.Result
	HoverLine   geom.Path
	HoverCandle candle.Candle // resolved bucket in candle mode
	HoverIsOHLC bool          // tooltip shows OHLC (pre-midpoint of the mode morph)

	// Mode pipelines; nil outside their mode.
	Candle *candle.Output
	Multi  *multi.Output

	// Decorative physics.
	Particles      []physics.Particle
	TickerLabels   []physics.TickerLabel
	ShakeX, ShakeY float64
}

// reset clears per-tick output while keeping allocated capacity.
func (f *Frame) reset() {
	f.Empty = false
	f.Line.Reset()
	f.Fill.Reset()
	f.GridLines.Reset()
	f.RefLine.Reset()
	f.HoverLine.Reset()
	f.GridLabels = f.GridLabels[:0]
	f.TimeLabels = f.TimeLabels[:0]
	f.Particles = f.Particles[:0]
	f.TickerLabels = f.TickerLabels[:0]
	f.Crosshair = crosshair.Result{}
	f.HoverCandle = candle.Candle{}
	f.HoverIsOHLC = false
	f.HasRef = false
	f.RefLabel = ""
	f.Candle = nil
	f.Multi = nil
	f.PulseAlpha = 0
	f.ShakeX, f.ShakeY = 0, 0
}
