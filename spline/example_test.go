package spline_test

import (
	"fmt"

	"github.com/katalvlaran/lvlchart/geom"
	"github.com/katalvlaran/lvlchart/spline"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEvalAt
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Four price samples with a dip in the middle. The Hermite basis is
//	exact at every knot, and the Fritsch–Carlson tangent clamp keeps the
//	curve between its neighboring samples everywhere else, so a hover
//	readout never shows a price the series did not contain.
//
// Complexity: O(log n) per evaluation.
func ExampleEvalAt() {
	pts := []geom.Point{
		{X: 0, Y: 100},
		{X: 1, Y: 103},
		{X: 2, Y: 101},
		{X: 3, Y: 104},
	}
	knot, _ := spline.EvalAt(pts, 2)
	mid, _ := spline.EvalAt(pts, 0.5)
	fmt.Printf("knot=%.2f\n", knot)
	fmt.Printf("mid within band=%v\n", mid >= 100 && mid <= 103)
	// Output:
	// knot=101.00
	// mid within band=true
}
