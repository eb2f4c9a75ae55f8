package candle

import "github.com/katalvlaran/lvlchart/geom"

// minBodyHeightPx keeps doji candles (open == close) visible as a sliver
// instead of a zero-height rectangle.
const minBodyHeightPx = 1.0

// buildHistorical batches every visible historical candle into the Bodies
// and Wicks paths, collapsing toward the close by the mode morph amount.
func (p *Pipeline) buildHistorical(candles []Candle, widthSec, eased float64, vp geom.Viewport) {
	p.out.Bodies.Reset()
	p.out.Wicks.Reset()
	if vp.Plot.Empty() || widthSec <= 0 {
		return
	}
	for i := range candles {
		c := &candles[i]
		if c.TimeSec+widthSec < vp.T0 || c.TimeSec > vp.T1 {
			continue
		}
		appendCandle(&p.out.Bodies, &p.out.Wicks, c, widthSec, eased, vp)
	}
}

// buildLive draws the live candle from its displayed (smoothed) values
// and publishes those values for tooltips.
func (p *Pipeline) buildLive(widthSec, eased float64, vp geom.Viewport) {
	p.out.LiveBody.Reset()
	p.out.LiveWick.Reset()
	disp := p.displayed()
	p.out.LiveOHLC = disp
	if !p.hasLive || vp.Plot.Empty() || widthSec <= 0 {
		return
	}
	appendCandle(&p.out.LiveBody, &p.out.LiveWick, &disp, widthSec, eased, vp)
}

// buildPrev draws the old-width layer during a width morph and splits the
// candle layer opacity between old (fading out) and new (fading in).
func (p *Pipeline) buildPrev(eased float64, vp geom.Viewport) {
	p.out.PrevBodies.Reset()
	p.out.PrevWicks.Reset()
	if p.widthMorph.Done() {
		p.out.PrevAlpha = 0
		return
	}
	m := p.widthMorph.Eased()
	p.out.PrevAlpha = (1 - m) * p.out.CandleAlpha
	p.out.CandleAlpha *= m

	if vp.Plot.Empty() || p.prevWidthSec <= 0 {
		return
	}
	for i := range p.prevCandles {
		c := &p.prevCandles[i]
		if c.TimeSec+p.prevWidthSec < vp.T0 || c.TimeSec > vp.T1 {
			continue
		}
		appendCandle(&p.out.PrevBodies, &p.out.PrevWicks, c, p.prevWidthSec, eased, vp)
	}
	if p.prevHasLive {
		appendCandle(&p.out.PrevBodies, &p.out.PrevWicks, &p.prevLive, p.prevWidthSec, eased, vp)
	}
}

// appendCandle emits one candle's body rect and wick line. eased is the
// mode-morph amount: 0 draws true OHLC, 1 collapses everything onto the
// close price.
func appendCandle(bodies, wicks *geom.Path, c *Candle, widthSec, eased float64, vp geom.Viewport) {
	o := c.Open + (c.Close-c.Open)*eased
	h := c.High + (c.Close-c.High)*eased
	l := c.Low + (c.Close-c.Low)*eased

	pxW := widthSec / vp.TimeSpan() * vp.Plot.W
	bodyW := pxW * BodyWidthFrac
	cx := vp.XForTime(c.TimeSec + widthSec/2)

	yO := vp.YForValue(o)
	yC := vp.YForValue(c.Close)
	top, bot := yO, yC
	if bot < top {
		top, bot = bot, top
	}
	if bot-top < minBodyHeightPx {
		mid := (top + bot) / 2
		top = mid - minBodyHeightPx/2
		bot = mid + minBodyHeightPx/2
	}

	radius := 0.0
	if bodyW > MinRoundWidthPx {
		radius = CornerRadiusPx
	}
	bodies.AddRoundedRect(geom.Rect{X: cx - bodyW/2, Y: top, W: bodyW, H: bot - top}, radius)

	wicks.MoveTo(cx, vp.YForValue(h))
	wicks.LineTo(cx, vp.YForValue(l))
}
