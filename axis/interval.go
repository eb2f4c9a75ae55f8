package axis

import "math"

// niceLadder is the per-decade step ladder. 2.5 sits between 2 and 5 so
// spacing grows smoothly instead of jumping 2.5× at once.
var niceLadder = [...]float64{1, 2, 2.5, 5}

// hysteresisMaxPx: a previously chosen grid step survives while its pixel
// spacing stays within [MinGridSpacingPx, hysteresisMaxPx]. The upper
// bound is wide enough that a step must become clearly too sparse before
// the manager re-picks, which stops tick density from flickering while
// the range animates through the switch-over point.
const hysteresisMaxPx = 2.6 * MinGridSpacingPx

// NiceValueStep picks the grid interval for a value span rendered over
// heightPx pixels: the smallest ladder step whose spacing is at least
// MinGridSpacingPx. prev is the previously chosen step (0 when none);
// while prev still lands in the acceptable spacing band it is kept.
func NiceValueStep(span, heightPx, prev float64) float64 {
	if span <= 0 || heightPx <= 0 {
		return prev
	}
	pxPerUnit := heightPx / span
	if prev > 0 {
		if px := prev * pxPerUnit; px >= MinGridSpacingPx && px <= hysteresisMaxPx {
			return prev
		}
	}

	// Scan ladder steps from the decade below the minimum upward.
	minStep := MinGridSpacingPx / pxPerUnit
	exp := math.Floor(math.Log10(minStep))
	for decade := math.Pow(10, exp); ; decade *= 10 {
		for _, m := range niceLadder {
			step := m * decade
			if step*pxPerUnit >= MinGridSpacingPx {
				return step
			}
		}
	}
}

// timeSteps is the calendar-friendly ladder for the time axis, seconds.
var timeSteps = [...]float64{
	1, 2, 5, 10, 15, 30, // seconds
	60, 120, 300, 600, 900, 1800, // minutes
	3600, 7200, 14400, 43200, // hours
	86400, 172800, // days
	604800, // one week
}

// NiceTimeStep picks the time-axis interval for a window of windowSec
// seconds over widthPx pixels: the smallest table step whose spacing is at
// least MinTimeSpacingPx, doubled if even that projects too tight (only
// possible past the end of the table).
func NiceTimeStep(windowSec, widthPx float64) float64 {
	if windowSec <= 0 || widthPx <= 0 {
		return 0
	}
	pxPerSec := widthPx / windowSec
	for _, step := range timeSteps {
		if step*pxPerSec >= MinTimeSpacingPx {
			return step
		}
	}
	// Window longer than the table covers: double weeks until it fits.
	step := timeSteps[len(timeSteps)-1]
	for step*pxPerSec < MinTimeSpacingPx {
		step *= 2
	}
	return step
}
