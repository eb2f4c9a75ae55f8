// SPDX-License-Identifier: MIT
package physics

import (
	"math"

	"github.com/katalvlaran/lvlchart/anim"
	"github.com/katalvlaran/lvlchart/geom"
)

const (
	// TickerPoolSize bounds concurrently scrolling labels.
	TickerPoolSize = 20

	// spawn rate, labels per second
	tickerBaseSpawnPerSec = 0.8
	tickerChurnSpawnGain  = 6.0
	tickerMaxSpawnPerSec  = 8.0
	// churnHalfPoint is the churn (size units/sec) at which the saturating
	// churn response reaches one half.
	churnHalfPoint = 25.0
	// churnSmoothSpeed smooths the raw churn signal per reference frame.
	churnSmoothSpeed = 0.06

	// scroll speed, px/sec
	tickerScrollBasePxSec  = 18.0
	tickerScrollChurnPxSec = 40.0
	tickerScrollSwingPxSec = 30.0

	// label lifetime and fade
	labelLifeMinMs = 1800.0
	labelLifeMaxMs = 3200.0
	labelFadeFrac  = 0.25
)

// Level is one orderbook price level.
type Level struct {
	Price float64
	Size  float64
}

// TickerLabel is one pooled scrolling label.
type TickerLabel struct {
	Text   string
	X, Y   float64
	Alpha  float64
	AgeMs  float64
	LifeMs float64
	Bid    bool
	Active bool
}

// LabelFormat renders a picked level into display text.
type LabelFormat func(price, size float64, bid bool) string

// Ticker spawns scrolling orderbook labels at a rate modulated by book
// churn, scrolling at a speed blended from churn and swing magnitude.
type Ticker struct {
	pool [TickerPoolSize]TickerLabel
	rng  *RNG

	spawnAccum float64
	prevTotal  float64
	havePrev   bool
	churn      float64 // smoothed size units per second
}

// NewTicker returns a ticker drawing randomness from rng.
func NewTicker(rng *RNG) *Ticker {
	return &Ticker{rng: rng}
}

// Churn returns the smoothed churn signal.
func (t *Ticker) Churn() float64 { return t.churn }

// Update advances every label, culls expired or off-screen ones, and
// spawns new labels from the current book. swingMag in [0,1] is the
// recent price-swing magnitude; format may be nil to spawn empty text.
//
// Complexity: O(TickerPoolSize + len(bids) + len(asks)).
func (t *Ticker) Update(dtMs float64, bids, asks []Level, swingMag float64, plot geom.Rect, format LabelFormat) {
	if dtMs < 0 || math.IsNaN(dtMs) {
		dtMs = 0
	}
	t.observeChurn(dtMs, bids, asks)

	resp := t.churn / (t.churn + churnHalfPoint) // saturating in [0,1)
	scroll := tickerScrollBasePxSec + tickerScrollChurnPxSec*resp + tickerScrollSwingPxSec*clamp01(swingMag)

	// Advance and cull.
	var i int
	for i = 0; i < TickerPoolSize; i++ {
		s := &t.pool[i]
		if !s.Active {
			continue
		}
		s.AgeMs += dtMs
		s.Y -= scroll * dtMs / 1000
		if s.AgeMs >= s.LifeMs || s.Y < plot.Y {
			*s = TickerLabel{}
			continue
		}
		s.Alpha = lifeAlpha(s.AgeMs, s.LifeMs, labelFadeFrac)
	}

	// Spawn.
	rate := tickerBaseSpawnPerSec + tickerChurnSpawnGain*resp
	if rate > tickerMaxSpawnPerSec {
		rate = tickerMaxSpawnPerSec
	}
	t.spawnAccum += rate * dtMs / 1000
	for t.spawnAccum >= 1 {
		t.spawnAccum--
		t.spawn(bids, asks, plot, format)
	}
}

// observeChurn tracks the rate of change of total book size, smoothed.
func (t *Ticker) observeChurn(dtMs float64, bids, asks []Level) {
	total := 0.0
	for _, l := range bids {
		if l.Size > 0 {
			total += l.Size
		}
	}
	for _, l := range asks {
		if l.Size > 0 {
			total += l.Size
		}
	}
	if t.havePrev && dtMs > 0 {
		raw := math.Abs(total-t.prevTotal) / (dtMs / 1000)
		t.churn = anim.Advance(t.churn, raw, churnSmoothSpeed, dtMs)
	}
	t.prevTotal = total
	t.havePrev = true
}

// spawn picks a level and claims a free slot; declines silently when the
// pool is full or the book is empty.
func (t *Ticker) spawn(bids, asks []Level, plot geom.Rect, format LabelFormat) {
	level, bid, ok := t.pickLevel(bids, asks)
	if !ok || plot.Empty() {
		return
	}
	var slot *TickerLabel
	var i int
	for i = 0; i < TickerPoolSize; i++ {
		if !t.pool[i].Active {
			slot = &t.pool[i]
			break
		}
	}
	if slot == nil {
		return
	}
	text := ""
	if format != nil {
		text = format(level.Price, level.Size, bid)
	}
	*slot = TickerLabel{
		Text:   text,
		X:      plot.X + t.rng.Float64()*plot.W,
		Y:      plot.Bottom(),
		LifeMs: t.rng.Range(labelLifeMinMs, labelLifeMaxMs),
		Bid:    bid,
		Active: true,
	}
}

// pickLevel draws a level weighted by size across both sides. When every
// size is ≤ 0 it falls back to the first bid, then the first ask.
func (t *Ticker) pickLevel(bids, asks []Level) (Level, bool, bool) {
	total := 0.0
	for _, l := range bids {
		if l.Size > 0 {
			total += l.Size
		}
	}
	for _, l := range asks {
		if l.Size > 0 {
			total += l.Size
		}
	}
	if total <= 0 {
		if len(bids) > 0 {
			return bids[0], true, true
		}
		if len(asks) > 0 {
			return asks[0], false, true
		}
		return Level{}, false, false
	}
	r := t.rng.Float64() * total
	for _, l := range bids {
		if l.Size <= 0 {
			continue
		}
		r -= l.Size
		if r < 0 {
			return l, true, true
		}
	}
	for _, l := range asks {
		if l.Size <= 0 {
			continue
		}
		r -= l.Size
		if r < 0 {
			return l, false, true
		}
	}
	// Float round-off on the final subtraction: take the last positive ask.
	for i := len(asks) - 1; i >= 0; i-- {
		if asks[i].Size > 0 {
			return asks[i], false, true
		}
	}
	for i := len(bids) - 1; i >= 0; i-- {
		if bids[i].Size > 0 {
			return bids[i], true, true
		}
	}
	return Level{}, false, false
}

// Visible appends all live labels to dst and returns it.
func (t *Ticker) Visible(dst []TickerLabel) []TickerLabel {
	var i int
	for i = 0; i < TickerPoolSize; i++ {
		if t.pool[i].Active {
			dst = append(dst, t.pool[i])
		}
	}
	return dst
}

// ActiveCount returns the number of live labels.
func (t *Ticker) ActiveCount() int {
	n := 0
	var i int
	for i = 0; i < TickerPoolSize; i++ {
		if t.pool[i].Active {
			n++
		}
	}
	return n
}
