package candle

import (
	"math"
	"sort"
)

// Candle is one OHLC bucket; TimeSec is the bucket start.
type Candle struct {
	TimeSec float64
	Open    float64
	High    float64
	Low     float64
	Close   float64
}

// MaxCandles bounds how many candles one frame will path-build; callers
// supplying more get the most recent MaxCandles.
const MaxCandles = 500

// FindBucket returns the index of the candle whose bucket [TimeSec,
// TimeSec+widthSec) contains t, using binary search over the time-sorted
// slice. Times before the first bucket clamp to index 0 and times past
// the last bucket clamp to the last index, so a crosshair at the plot
// edge still resolves to a candle.
func FindBucket(candles []Candle, t, widthSec float64) (int, bool) {
	n := len(candles)
	if n == 0 {
		return 0, false
	}
	// First candle starting after t; the bucket containing t is before it.
	i := sort.Search(n, func(k int) bool { return candles[k].TimeSec > t })
	if i == 0 {
		return 0, true
	}
	return i - 1, true
}

// extent scans visible candles and returns the min Low / max High over
// them plus the live candle's true values. Visibility uses the same
// bucket-overlap predicate the path builder draws with, so a candle
// straddling the window edge still feeds the range. ok is false with no
// candles.
func extent(candles []Candle, live *Candle, widthSec, t0, t1 float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := range candles {
		c := &candles[i]
		if c.TimeSec+widthSec < t0 || c.TimeSec > t1 {
			continue
		}
		if c.Low < lo {
			lo = c.Low
		}
		if c.High > hi {
			hi = c.High
		}
	}
	if live != nil {
		if live.Low < lo {
			lo = live.Low
		}
		if live.High > hi {
			hi = live.High
		}
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}
