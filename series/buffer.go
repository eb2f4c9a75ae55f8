package series

import (
	"math"
	"sort"
)

// MaxSamples bounds the rolling history: ingestion keeps only the most
// recent MaxSamples samples.
const MaxSamples = 1200

// Sample is one (time, value) observation. Times are seconds; duplicates
// at the same time are allowed and the later one wins visually.
type Sample struct {
	TimeSec float64
	Value   float64
}

// Buffer is a packed, time-sorted, bounded sample history. The engine owns
// its buffers for the lifetime of the chart and refills them from caller
// data each input update; caller slices are never retained or mutated.
type Buffer struct {
	data []Sample
}

// NewBuffer returns an empty buffer with full capacity pre-allocated.
func NewBuffer() *Buffer {
	return &Buffer{data: make([]Sample, 0, MaxSamples)}
}

// Len returns the number of retained samples.
func (b *Buffer) Len() int { return len(b.data) }

// At returns sample i. Callers index within [0, Len).
func (b *Buffer) At(i int) Sample { return b.data[i] }

// Samples exposes the packed sample slice, valid until the next mutation.
func (b *Buffer) Samples() []Sample { return b.data }

// SetSamples replaces the buffer contents with a filtered copy of src:
// non-finite times/values are dropped, and only the trailing MaxSamples
// survivors are kept. src is expected time-sorted and is read-only here.
func (b *Buffer) SetSamples(src []Sample) {
	b.data = b.data[:0]
	for _, s := range src {
		if !finite(s.TimeSec) || !finite(s.Value) {
			continue
		}
		if len(b.data) == MaxSamples {
			copy(b.data, b.data[1:])
			b.data = b.data[:MaxSamples-1]
		}
		b.data = append(b.data, s)
	}
}

// Append adds one sample, dropping the oldest when at capacity and
// ignoring non-finite input.
func (b *Buffer) Append(s Sample) {
	if !finite(s.TimeSec) || !finite(s.Value) {
		return
	}
	if len(b.data) == MaxSamples {
		copy(b.data, b.data[1:])
		b.data = b.data[:MaxSamples-1]
	}
	b.data = append(b.data, s)
}

// Visible returns the half-open index range [lo, hi) of samples inside
// [t0, t1], widened by pad extra samples on each side (clamped to the
// buffer) so spline segments entering the plot keep their true shape.
func (b *Buffer) Visible(t0, t1 float64, pad int) (lo, hi int) {
	n := len(b.data)
	lo = sort.Search(n, func(i int) bool { return b.data[i].TimeSec >= t0 })
	hi = sort.Search(n, func(i int) bool { return b.data[i].TimeSec > t1 })
	lo -= pad
	hi += pad
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}

// MinMax scans values in [lo, hi) and returns their extremes. ok is false
// when the range is empty.
func (b *Buffer) MinMax(lo, hi int) (mn, mx float64, ok bool) {
	if lo < 0 {
		lo = 0
	}
	if hi > len(b.data) {
		hi = len(b.data)
	}
	if lo >= hi {
		return 0, 0, false
	}
	mn, mx = b.data[lo].Value, b.data[lo].Value
	for i := lo + 1; i < hi; i++ {
		v := b.data[i].Value
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	return mn, mx, true
}

// Last returns the most recent sample and false on an empty buffer.
func (b *Buffer) Last() (Sample, bool) {
	if len(b.data) == 0 {
		return Sample{}, false
	}
	return b.data[len(b.data)-1], true
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
