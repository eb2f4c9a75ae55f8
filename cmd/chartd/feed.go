package main

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlchart/candle"
	"github.com/katalvlaran/lvlchart/physics"
	"github.com/katalvlaran/lvlchart/series"
)

// Synthetic market parameters: a GBM-style walk with per-second drift and
// volatility, sampled once per second into the chart history.
const (
	feedStartPrice = 100.0
	feedMu         = 0.00002 // per-second drift
	feedVol        = 0.0015  // per-second volatility
	feedSampleSec  = 1.0
	feedBucketSec  = 60.0
	feedBookLevels = 5
	feedBookSpread = 0.05
)

// feed synthesizes a deterministic price stream, candle buckets and an
// orderbook for the demo daemon.
type feed struct {
	rng   *rand.Rand
	price float64
	clock float64 // feed-time seconds

	lastSample float64
	samples    []series.Sample

	candles []candle.Candle
	live    candle.Candle
	hasLive bool

	bids, asks []physics.Level
}

func newFeed(seed int64) *feed {
	if seed == 0 {
		seed = 1
	}
	f := &feed{
		rng:     rand.New(rand.NewSource(seed)),
		price:   feedStartPrice,
		samples: make([]series.Sample, 0, series.MaxSamples),
		candles: make([]candle.Candle, 0, candle.MaxCandles),
		bids:    make([]physics.Level, feedBookLevels),
		asks:    make([]physics.Level, feedBookLevels),
	}
	f.openBucket(0)
	f.push(0)
	return f
}

// advance walks the price forward by dtSec and refreshes samples, the
// live candle and the book.
func (f *feed) advance(dtSec float64) {
	if dtSec <= 0 {
		return
	}
	f.clock += dtSec

	z := f.rng.NormFloat64()
	incr := (feedMu-0.5*feedVol*feedVol)*dtSec + feedVol*math.Sqrt(dtSec)*z
	f.price *= math.Exp(incr)

	// Live candle accumulation and bucket rollover.
	bucket := math.Floor(f.clock/feedBucketSec) * feedBucketSec
	if bucket != f.live.TimeSec {
		f.candles = append(f.candles, f.live)
		if len(f.candles) > candle.MaxCandles {
			f.candles = f.candles[1:]
		}
		f.openBucket(bucket)
	}
	f.live.Close = f.price
	f.live.High = math.Max(f.live.High, f.price)
	f.live.Low = math.Min(f.live.Low, f.price)

	if f.clock-f.lastSample >= feedSampleSec {
		f.push(f.clock)
	}
	f.refreshBook()
}

func (f *feed) openBucket(t float64) {
	f.live = candle.Candle{TimeSec: t, Open: f.price, High: f.price, Low: f.price, Close: f.price}
	f.hasLive = true
}

func (f *feed) push(t float64) {
	f.samples = append(f.samples, series.Sample{TimeSec: t, Value: f.price})
	if len(f.samples) > series.MaxSamples {
		f.samples = f.samples[1:]
	}
	f.lastSample = t
}

// refreshBook lays symmetric levels around the price with jittered sizes.
func (f *feed) refreshBook() {
	var i int
	for i = 0; i < feedBookLevels; i++ {
		off := feedBookSpread * float64(i+1)
		f.bids[i] = physics.Level{Price: f.price - off, Size: 1 + 9*f.rng.Float64()}
		f.asks[i] = physics.Level{Price: f.price + off, Size: 1 + 9*f.rng.Float64()}
	}
}
