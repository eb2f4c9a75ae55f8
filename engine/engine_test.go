package engine_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlchart/candle"
	"github.com/katalvlaran/lvlchart/crosshair"
	"github.com/katalvlaran/lvlchart/engine"
	"github.com/katalvlaran/lvlchart/geom"
	"github.com/katalvlaran/lvlchart/multi"
	"github.com/katalvlaran/lvlchart/physics"
	"github.com/katalvlaran/lvlchart/series"
)

func fmtVal(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func flatSamples(value float64) []series.Sample {
	return []series.Sample{
		{TimeSec: 0, Value: value},
		{TimeSec: 60, Value: value},
		{TimeSec: 120, Value: value},
		{TimeSec: 180, Value: value},
		{TimeSec: 240, Value: value},
	}
}

func lineInput(samples []series.Sample, live float64) engine.Input {
	return engine.Input{
		Samples:     samples,
		LiveValue:   live,
		HaveLive:    true,
		Plot:        geom.Rect{X: 0, Y: 0, W: 400, H: 200},
		WindowSec:   300,
		ShowGrid:    true,
		ShowBadge:   true,
		ShowFill:    true,
		FormatValue: fmtVal,
	}
}

// TestEngine_EmptyDegrades: no data and no plot never error, and the last
// badge text is held through an empty stretch.
func TestEngine_EmptyDegrades(t *testing.T) {
	e := engine.New()

	f := e.Tick(0, 16.67, engine.Input{})
	assert.True(t, f.Empty, "zero plot degrades")

	in := lineInput(flatSamples(100), 100)
	for i := 0; i < 200; i++ {
		f = e.Tick(float64(i)*0.016, 16.67, in)
	}
	require.False(t, f.Empty)
	require.Equal(t, "100.00", f.BadgeText)

	f = e.Tick(4, 16.67, engine.Input{Plot: in.Plot, WindowSec: 300})
	assert.True(t, f.Empty, "no samples, no live value")
	assert.Equal(t, "100.00", f.BadgeText, "badge text held static")
	assert.True(t, f.Line.Empty())

	// Recovery on the next healthy input.
	f = e.Tick(5, 16.67, in)
	assert.False(t, f.Empty)
	assert.False(t, f.Line.Empty())
}

// TestEngine_FlatLineFloor: five flat samples still get a non-degenerate
// range around the value.
func TestEngine_FlatLineFloor(t *testing.T) {
	e := engine.New()
	in := lineInput(flatSamples(100), 100)
	var f *engine.Frame
	for i := 0; i < 100; i++ {
		f = e.Tick(float64(i)*0.016, 16.67, in)
	}
	span := f.Viewport.Hi - f.Viewport.Lo
	assert.GreaterOrEqual(t, span, series.MinSpanAbs)
	assert.Less(t, f.Viewport.Lo, 100.0)
	assert.Greater(t, f.Viewport.Hi, 100.0)
}

// TestEngine_LineTipAgreesWithDot: on every frame the rendered curve ends
// exactly at the live dot (the atomicity the render-from-snapshot order
// exists for).
func TestEngine_LineTipAgreesWithDot(t *testing.T) {
	e := engine.New()
	samples := flatSamples(100)
	for i := 0; i < 300; i++ {
		live := 100 + float64(i%7)
		f := e.Tick(float64(i)*0.016, 16.67, lineInput(samples, live))
		if f.Reveal < 1 {
			continue // squiggle blend still active
		}
		last, ok := f.Line.Last()
		require.True(t, ok)
		assert.Equal(t, f.DotX, last.X)
		assert.Equal(t, f.DotY, last.Y)
	}
}

// TestEngine_RevealRampsToOne: the squiggle hand-off starts below 1 and
// finishes exactly at 1.
func TestEngine_RevealRampsToOne(t *testing.T) {
	e := engine.New()
	in := lineInput(flatSamples(100), 100)

	f := e.Tick(0, 16.67, in)
	assert.Less(t, f.Reveal, 1.0, "reveal just started")

	for i := 0; i < 120; i++ {
		f = e.Tick(float64(i)*0.016, 16.67, in)
	}
	assert.Equal(t, 1.0, f.Reveal)
}

// TestEngine_CrosshairFadeEndpoints: opacity 0 at the live dot, full scrub
// amount far from it.
func TestEngine_CrosshairFadeEndpoints(t *testing.T) {
	e := engine.New()
	in := lineInput(flatSamples(100), 100)
	in.ScrubEnabled = true

	atDot := 400.0
	in.PointerX = &atDot
	var f *engine.Frame
	for i := 0; i < 100; i++ {
		f = e.Tick(float64(i)*0.016, 16.67, in)
	}
	require.True(t, f.Crosshair.Active)
	assert.Equal(t, 0.0, f.Crosshair.Alpha, "dead zone at the live dot")

	far := 200.0
	in.PointerX = &far
	for i := 0; i < 100; i++ {
		f = e.Tick(float64(i)*0.016, 16.67, in)
	}
	require.True(t, f.Crosshair.Active)
	assert.Equal(t, 1.0, f.Crosshair.Alpha, "full scrub engagement far from the dot")
	assert.False(t, f.HoverLine.Empty())
}

// TestEngine_HoverDedup: a motionless pointer fires the hover callback
// exactly once; leaving and returning fires again.
func TestEngine_HoverDedup(t *testing.T) {
	e := engine.New()
	in := lineInput(flatSamples(100), 100)
	in.ScrubEnabled = true
	calls := 0
	in.OnHover = func(crosshair.Event) { calls++ }

	x := 200.0
	in.PointerX = &x
	for i := 0; i < 50; i++ {
		e.Tick(float64(i)*0.016, 16.67, in)
	}
	assert.Equal(t, 1, calls, "identical hover notifies once")

	in.PointerX = nil
	e.Tick(1, 16.67, in)
	in.PointerX = &x
	e.Tick(1.1, 16.67, in)
	assert.Equal(t, 2, calls, "leaving clears the dedup state")
}

// TestEngine_PausedFreezes: paused ticks render but do not advance
// animated state.
func TestEngine_PausedFreezes(t *testing.T) {
	e := engine.New()
	in := lineInput(flatSamples(100), 100)
	for i := 0; i < 100; i++ {
		e.Tick(float64(i)*0.016, 16.67, in)
	}

	in.LiveValue = 150
	in.Paused = true
	f1 := e.Tick(2, 16.67, in)
	f2 := e.Tick(2.1, 16.67, in)
	assert.Equal(t, f1.DotY, f2.DotY, "displayed value frozen while paused")

	in.Paused = false
	f3 := e.Tick(2.2, 16.67, in)
	assert.NotEqual(t, f2.DotY, f3.DotY, "unpausing resumes convergence")
}

// TestEngine_WindowAnimates: changing the window length glides the domain
// span toward the new target instead of snapping.
func TestEngine_WindowAnimates(t *testing.T) {
	e := engine.New()
	in := lineInput(flatSamples(100), 100)
	var f *engine.Frame
	for i := 0; i < 50; i++ {
		f = e.Tick(float64(i)*0.016, 16.67, in)
	}
	require.InDelta(t, 300.0, f.Viewport.T1-f.Viewport.T0, 1e-6)

	in.WindowSec = 600
	f = e.Tick(1, 16.67, in)
	f = e.Tick(1.02, 16.67, in)
	span := f.Viewport.T1 - f.Viewport.T0
	assert.Greater(t, span, 300.0)
	assert.Less(t, span, 600.0, "mid-glide")

	for i := 0; i < 2000; i++ {
		f = e.Tick(float64(i)*0.016, 16.67, in)
	}
	assert.InDelta(t, 600.0, f.Viewport.T1-f.Viewport.T0, 1e-2, "converged and snapped")
}

// TestEngine_ReferenceLine: a reference value inside the range produces a
// horizontal line and label.
func TestEngine_ReferenceLine(t *testing.T) {
	e := engine.New()
	in := lineInput(flatSamples(100), 100)
	in.Reference = &engine.RefLine{Value: 100.1, Label: "entry"}
	var f *engine.Frame
	for i := 0; i < 100; i++ {
		f = e.Tick(float64(i)*0.016, 16.67, in)
	}
	require.True(t, f.HasRef)
	assert.Equal(t, "entry", f.RefLabel)
	assert.False(t, f.RefLine.Empty())
	assert.InDelta(t, f.Viewport.YForValue(100.1), f.RefY, 1e-9)
}

// TestEngine_AxesPopulated: grid and time labels appear with bounded
// counts.
func TestEngine_AxesPopulated(t *testing.T) {
	e := engine.New()
	in := lineInput(flatSamples(100), 100)
	var f *engine.Frame
	for i := 0; i < 100; i++ {
		f = e.Tick(float64(i)*0.016, 16.67, in)
	}
	assert.NotEmpty(t, f.GridLabels)
	assert.NotEmpty(t, f.TimeLabels)
	assert.False(t, f.GridLines.Empty())
	assert.LessOrEqual(t, len(f.GridLabels), 24)
	assert.LessOrEqual(t, len(f.TimeLabels), 16)
}

// TestEngine_CandleMode: candles select the candle pipeline and the
// crosshair resolves whole buckets.
func TestEngine_CandleMode(t *testing.T) {
	e := engine.New()
	cs := []candle.Candle{
		{TimeSec: 0, Open: 100, High: 102, Low: 98, Close: 101},
		{TimeSec: 60, Open: 101, High: 103, Low: 99, Close: 102},
		{TimeSec: 120, Open: 102, High: 104, Low: 100, Close: 103},
	}
	x := 90.0
	in := engine.Input{
		Plot:           geom.Rect{X: 0, Y: 0, W: 400, H: 200},
		WindowSec:      180,
		Candles:        cs,
		CandleWidthSec: 60,
		ScrubEnabled:   true,
		PointerX:       &x,
		FormatValue:    fmtVal,
	}
	var f *engine.Frame
	for i := 0; i < 50; i++ {
		f = e.Tick(float64(i)*0.016, 16.67, in)
	}
	require.NotNil(t, f.Candle)
	assert.Nil(t, f.Multi)
	assert.False(t, f.Candle.Bodies.Empty())

	// Pointer at x=90 → t=40.5 of a 180s window ending at 180 → bucket 0.
	require.True(t, f.Crosshair.Active)
	assert.Equal(t, 101.0, f.HoverCandle.Close)
	assert.True(t, f.HoverIsOHLC)
}

// TestEngine_MultiMode: series inputs select the multi pipeline.
func TestEngine_MultiMode(t *testing.T) {
	e := engine.New()
	in := engine.Input{
		Plot:      geom.Rect{X: 0, Y: 0, W: 400, H: 200},
		WindowSec: 300,
		Series: []multi.Input{
			{ID: "a", Label: "A", Samples: flatSamples(100), LiveValue: 100},
			{ID: "b", Label: "B", Samples: flatSamples(50), LiveValue: 50},
		},
		FormatValue: fmtVal,
	}
	var f *engine.Frame
	for i := 0; i < 100; i++ {
		f = e.Tick(float64(i)*0.016, 16.67, in)
	}
	require.NotNil(t, f.Multi)
	assert.Nil(t, f.Candle)
	assert.Len(t, f.Multi.Series, 2)
	assert.True(t, f.Viewport.Lo < 50 && f.Viewport.Hi > 100, "shared range unions both series")
}

// TestEngine_MomentumParticles: a large live-value swing spawns particles
// when momentum cues are enabled.
func TestEngine_MomentumParticles(t *testing.T) {
	e := engine.New(engine.WithSeed(42))
	in := lineInput(flatSamples(100), 100)
	in.ShowMomentum = true
	e.Tick(0, 16.67, in)
	e.Tick(0.016, 16.67, in)

	in.LiveValue = 150 // far beyond the swing threshold
	f := e.Tick(0.033, 16.67, in)
	assert.NotEmpty(t, f.Particles, "swing triggered a burst")

	// Determinism: same seed, same sequence, same particles.
	e2 := engine.New(engine.WithSeed(42))
	in2 := lineInput(flatSamples(100), 100)
	in2.ShowMomentum = true
	e2.Tick(0, 16.67, in2)
	e2.Tick(0.016, 16.67, in2)
	in2.LiveValue = 150
	f2 := e2.Tick(0.033, 16.67, in2)
	assert.Equal(t, f.Particles, f2.Particles)
}

// TestEngine_OrderbookTicker: supplying a book feeds the scrolling label
// layer.
func TestEngine_OrderbookTicker(t *testing.T) {
	e := engine.New()
	in := lineInput(flatSamples(100), 100)
	in.Bids = []physics.Level{{Price: 99.5, Size: 10}}
	in.Asks = []physics.Level{{Price: 100.5, Size: 8}}
	var f *engine.Frame
	for i := 0; i < 200; i++ {
		f = e.Tick(float64(i)*0.1, 100, in)
	}
	assert.NotEmpty(t, f.TickerLabels)
	for _, l := range f.TickerLabels {
		assert.NotEmpty(t, l.Text, "formatter applied")
	}
}

// TestEngine_TickerOutlivesBook: labels already scrolling keep fading
// and culling after the book empties instead of vanishing in one frame.
func TestEngine_TickerOutlivesBook(t *testing.T) {
	e := engine.New()
	in := lineInput(flatSamples(100), 100)
	in.Bids = []physics.Level{{Price: 99.5, Size: 10}}
	in.Asks = []physics.Level{{Price: 100.5, Size: 8}}
	var f *engine.Frame
	for i := 0; i < 200; i++ {
		f = e.Tick(float64(i)*0.1, 100, in)
	}
	require.NotEmpty(t, f.TickerLabels)

	in.Bids, in.Asks = nil, nil
	f = e.Tick(20.0, 100, in)
	assert.NotEmpty(t, f.TickerLabels, "one empty-book tick keeps live labels")

	for i := 0; i < 40; i++ {
		f = e.Tick(20.1+float64(i)*0.1, 100, in)
	}
	assert.Empty(t, f.TickerLabels, "labels expire without a book, none respawn")
}

// TestEngine_WithTuningValidates: programmer-error tuning panics.
func TestEngine_WithTuningValidates(t *testing.T) {
	assert.PanicsWithValue(t, engine.ErrInvalidTuning, func() {
		engine.WithTuning(engine.Tuning{})
	})

	tn := engine.DefaultTuning()
	tn.RangeSpeed = -1
	assert.Panics(t, func() { engine.WithTuning(tn) })

	assert.NotPanics(t, func() { engine.New(engine.WithTuning(engine.DefaultTuning())) })
}
