package main

import (
	"github.com/katalvlaran/lvlchart/engine"
	"github.com/katalvlaran/lvlchart/geom"
)

// Wire types: a flat JSON rendition of engine.Frame for websocket
// clients. Paths travel as verb lists; labels as text+position+alpha.

type wireLabel struct {
	Text  string  `json:"text"`
	Pos   float64 `json:"pos"`
	Alpha float64 `json:"alpha"`
}

type wireParticle struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Alpha float64 `json:"alpha"`
}

type wireTicker struct {
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Alpha float64 `json:"alpha"`
	Bid   bool    `json:"bid"`
}

type wireFrame struct {
	Empty  bool    `json:"empty"`
	Reveal float64 `json:"reveal"`

	Line []geom.Verb `json:"line,omitempty"`
	Fill []geom.Verb `json:"fill,omitempty"`
	Grid []geom.Verb `json:"grid,omitempty"`

	DotX       float64 `json:"dotX"`
	DotY       float64 `json:"dotY"`
	PulseAlpha float64 `json:"pulseAlpha"`

	BadgeY    float64 `json:"badgeY"`
	BadgeText string  `json:"badgeText"`

	GridLabels []wireLabel `json:"gridLabels,omitempty"`
	TimeLabels []wireLabel `json:"timeLabels,omitempty"`

	CandleBodies []geom.Verb `json:"candleBodies,omitempty"`
	CandleWicks  []geom.Verb `json:"candleWicks,omitempty"`
	CandleAlpha  float64     `json:"candleAlpha,omitempty"`
	LineAlpha    float64     `json:"lineAlpha,omitempty"`

	Particles []wireParticle `json:"particles,omitempty"`
	Ticker    []wireTicker   `json:"ticker,omitempty"`
	ShakeX    float64        `json:"shakeX"`
	ShakeY    float64        `json:"shakeY"`
}

func encodeFrame(f *engine.Frame) wireFrame {
	w := wireFrame{
		Empty:      f.Empty,
		Reveal:     f.Reveal,
		Line:       f.Line.Verbs(),
		Fill:       f.Fill.Verbs(),
		Grid:       f.GridLines.Verbs(),
		DotX:       f.DotX,
		DotY:       f.DotY,
		PulseAlpha: f.PulseAlpha,
		BadgeY:     f.BadgeY,
		BadgeText:  f.BadgeText,
		ShakeX:     f.ShakeX,
		ShakeY:     f.ShakeY,
	}
	for _, s := range f.GridLabels {
		w.GridLabels = append(w.GridLabels, wireLabel{Text: s.Text, Pos: s.Pos, Alpha: s.Alpha})
	}
	for _, s := range f.TimeLabels {
		w.TimeLabels = append(w.TimeLabels, wireLabel{Text: s.Text, Pos: s.Pos, Alpha: s.Alpha})
	}
	for _, p := range f.Particles {
		w.Particles = append(w.Particles, wireParticle{X: p.X, Y: p.Y, Size: p.SizePx, Alpha: p.Alpha})
	}
	for _, l := range f.TickerLabels {
		w.Ticker = append(w.Ticker, wireTicker{Text: l.Text, X: l.X, Y: l.Y, Alpha: l.Alpha, Bid: l.Bid})
	}
	if f.Candle != nil {
		w.CandleBodies = f.Candle.Bodies.Verbs()
		w.CandleWicks = f.Candle.Wicks.Verbs()
		w.CandleAlpha = f.Candle.CandleAlpha
		w.LineAlpha = f.Candle.LineAlpha
	}
	return w
}
