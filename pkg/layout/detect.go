package layout

import (
	"github.com/seatforge/seatforge/pkg/geo"
	"github.com/seatforge/seatforge/pkg/layout/overlap"
)

// OverlapPair is one overlapping cell pair found by DetectOverlaps.
type OverlapPair struct {
	A Cell `json:"a"`
	B Cell `json:"b"`
}

// OverlapReport summarizes a cell-level overlap scan.
type OverlapReport struct {
	Pairs       []OverlapPair `json:"pairs,omitempty"`
	Count       int           `json:"count"`
	HasOverlaps bool          `json:"hasOverlaps"`
}

// CellsOverlap reports whether two cells' rectangles, padded by
// minSpacing/2, intersect.
func CellsOverlap(a, b Cell, minSpacing float64) bool {
	return overlap.RectsOverlap(a.Rect(), b.Rect(), minSpacing)
}

// DetectOverlaps scans every pair of cells for overlaps under minSpacing.
// The scan is exhaustive, O(n²); realistic seat counts keep it cheap.
func DetectOverlaps(cells []Cell, minSpacing float64) OverlapReport {
	rects := make([]geo.Rect, len(cells))
	for i, c := range cells {
		rects[i] = c.Rect()
	}
	rep := overlap.Detect(rects, minSpacing)

	out := OverlapReport{Count: rep.Count, HasOverlaps: rep.HasOverlaps}
	for _, p := range rep.Pairs {
		out.Pairs = append(out.Pairs, OverlapPair{A: cells[p.A], B: cells[p.B]})
	}
	return out
}
