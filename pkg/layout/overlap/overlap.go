package overlap

import (
	"math"

	"github.com/seatforge/seatforge/pkg/geo"
)

// Pair identifies two overlapping elements by their input indices, with
// A < B.
type Pair struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Report is the structural result of an overlap scan.
type Report struct {
	Pairs       []Pair `json:"pairs,omitempty"`
	Count       int    `json:"count"`
	HasOverlaps bool   `json:"hasOverlaps"`
}

// RectsOverlap reports whether two rectangles, each padded by minSpacing/2
// on all sides, intersect. The underlying test is half-open: rectangles
// whose padded forms share only a boundary edge do not overlap.
func RectsOverlap(a, b geo.Rect, minSpacing float64) bool {
	return a.Inflate(minSpacing / 2).Intersects(b.Inflate(minSpacing / 2))
}

// Detect scans all pairs of rectangles for overlaps under the given minimum
// spacing. The scan is exhaustive, O(n²).
func Detect(rects []geo.Rect, minSpacing float64) Report {
	var rep Report
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			if RectsOverlap(rects[i], rects[j], minSpacing) {
				rep.Pairs = append(rep.Pairs, Pair{A: i, B: j})
			}
		}
	}
	rep.Count = len(rep.Pairs)
	rep.HasOverlaps = rep.Count > 0
	return rep
}

// MinimumGridGap returns the smallest gap between uniform grid cells that
// honors minSpacing. Uniform cells need only uniform spacing, so this is
// minSpacing itself.
func MinimumGridGap(minSpacing float64) float64 {
	return minSpacing
}

// AdjustGridGap returns the grid gap to use: the caller's requested gap,
// widened to the computed minimum if necessary. It never shrinks.
func AdjustGridGap(gap, minSpacing float64) float64 {
	return math.Max(gap, MinimumGridGap(minSpacing))
}

// MinimumArcRadius returns the smallest radius at which adjacent seats on
// an arc keep a chord length of at least cellWidth+minSpacing, using
// chord = 2·r·sin(Δθ/2) with Δθ = sweep/(seatCount-1), padded by
// cellWidth/2 for the seat's own extent.
//
// With one seat or fewer no spacing constraint applies and the seat's own
// width is returned. For a fixed sweep the result grows monotonically with
// seatCount.
func MinimumArcRadius(seatCount int, cellWidth, sweepDegrees, minSpacing float64) float64 {
	if seatCount <= 1 {
		return cellWidth
	}
	step := sweepDegrees * math.Pi / 180 / float64(seatCount-1)
	chord := cellWidth + minSpacing
	r := chord / (2 * math.Sin(step/2))
	return r + cellWidth/2
}

// AdjustArcRadius returns the radius to use for an arc layout: the caller's
// requested radius, grown to the computed minimum if necessary.
func AdjustArcRadius(radius float64, seatCount int, cellWidth, sweepDegrees, minSpacing float64) float64 {
	return math.Max(radius, MinimumArcRadius(seatCount, cellWidth, sweepDegrees, minSpacing))
}
