package nav

import (
	"testing"

	"github.com/seatforge/seatforge/pkg/geo"
	"github.com/seatforge/seatforge/pkg/layout"
)

func grid3x3(t *testing.T) []layout.Cell {
	t.Helper()
	return layout.Generate(layout.Config{
		Kind: layout.KindGrid, Rows: 3, Cols: 3, CellSize: 30, Gap: 4,
	}).Cells
}

func arc5(t *testing.T) []layout.Cell {
	t.Helper()
	return layout.Generate(layout.Config{
		Kind: layout.KindArc, Count: 5, Radius: 200, SweepDegrees: 120, CellSize: 30,
	}).Cells
}

func TestFindGridNeighbor(t *testing.T) {
	cells := grid3x3(t)
	center := cells[4] // (1,1)

	tests := []struct {
		dir     Direction
		wantRow int
		wantCol int
	}{
		{DirUp, 0, 1},
		{DirDown, 2, 1},
		{DirLeft, 1, 0},
		{DirRight, 1, 2},
	}
	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			got := FindGridNeighbor(cells, center, tt.dir, false)
			if got == nil {
				t.Fatalf("no neighbor %s of center", tt.dir)
			}
			if got.ID.Row != tt.wantRow || got.ID.Col != tt.wantCol {
				t.Errorf("neighbor = (%d, %d), want (%d, %d)", got.ID.Row, got.ID.Col, tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestFindGridNeighborBoundary(t *testing.T) {
	cells := grid3x3(t)
	corner := cells[0] // (0,0)
	if got := FindGridNeighbor(cells, corner, DirUp, false); got != nil {
		t.Errorf("neighbor above top-left = %+v, want nil", got.ID)
	}
	if got := FindGridNeighbor(cells, corner, DirLeft, false); got != nil {
		t.Errorf("neighbor left of top-left = %+v, want nil", got.ID)
	}
}

// Right-to-left traversal mirrors left and right but leaves the vertical
// axis alone.
func TestFindGridNeighborRTL(t *testing.T) {
	cells := grid3x3(t)
	center := cells[4]

	ltr := FindGridNeighbor(cells, center, DirRight, false)
	rtl := FindGridNeighbor(cells, center, DirLeft, true)
	if ltr == nil || rtl == nil || ltr.ID != rtl.ID {
		t.Errorf("rtl left != ltr right: %+v vs %+v", rtl, ltr)
	}

	down := FindGridNeighbor(cells, center, DirDown, true)
	if down == nil || down.ID.Row != 2 {
		t.Errorf("rtl down moved to %+v, want row 2", down)
	}
}

func TestFindGridNeighborSections(t *testing.T) {
	cells := layout.Generate(layout.Config{
		Kind: layout.KindSections,
		Sections: []layout.SectionBlock{
			{ID: "a", Rows: 2, Cols: 2, CellSize: 30, Gap: 4},
			{ID: "b", Origin: geo.Point{X: 200}, Rows: 2, Cols: 2, CellSize: 30, Gap: 4},
		},
	}).Cells

	// (0,1) in section a: stepping right leaves the grid; there is no (0,2)
	// in a, and b's cells belong to another section.
	var aTopRight layout.Cell
	for _, c := range cells {
		if c.ID.Section == "a" && c.ID.Row == 0 && c.ID.Col == 1 {
			aTopRight = c
		}
	}
	if got := FindGridNeighbor(cells, aTopRight, DirRight, false); got != nil {
		t.Errorf("crossed section boundary to %+v", got.ID)
	}
}

// Cells without row/column identity reaching the grid API take the spatial
// fallback, which must still honor the rtl swap.
func TestFindGridNeighborSpatialFallbackRTL(t *testing.T) {
	cells := arc5(t)
	mid := cells[2] // top of the arc

	ltr := FindGridNeighbor(cells, mid, DirRight, false)
	rtl := FindGridNeighbor(cells, mid, DirLeft, true)
	if ltr == nil || rtl == nil {
		t.Fatalf("missing fallback neighbor: ltr=%v rtl=%v", ltr, rtl)
	}
	if ltr.ID != rtl.ID {
		t.Errorf("rtl left = index %d, ltr right = index %d; want equal", rtl.ID.Index, ltr.ID.Index)
	}
}

func TestFindAngularNeighbor(t *testing.T) {
	cells := arc5(t)
	mid := cells[2]

	left := FindAngularNeighbor(cells, mid, DirLeft, false)
	if left == nil || left.ID.Index != 1 {
		t.Fatalf("left of index 2 = %+v, want index 1", left)
	}
	right := FindAngularNeighbor(cells, mid, DirRight, false)
	if right == nil || right.ID.Index != 3 {
		t.Fatalf("right of index 2 = %+v, want index 3", right)
	}

	// No wraparound at either end.
	if got := FindAngularNeighbor(cells, cells[0], DirLeft, false); got != nil {
		t.Errorf("left of index 0 = %+v, want nil", got.ID)
	}
	if got := FindAngularNeighbor(cells, cells[4], DirRight, false); got != nil {
		t.Errorf("right of last index = %+v, want nil", got.ID)
	}
}

func TestFindAngularNeighborVerticalFallsBackToSpatial(t *testing.T) {
	// Two stacked arcs; moving down from the top arc's middle seat should
	// land on the nearer arc below.
	top := arc5(t)
	bottom := layout.Generate(layout.Config{
		Kind: layout.KindArc, Count: 5, Radius: 120, SweepDegrees: 120, CellSize: 30,
	}).Cells
	cells := append(append([]layout.Cell{}, top...), bottom...)

	got := FindAngularNeighbor(cells, top[2], DirDown, false)
	if got == nil {
		t.Fatal("no seat below outer arc's middle")
	}
	if got.Y <= top[2].Y {
		t.Errorf("moved up to y=%v from y=%v", got.Y, top[2].Y)
	}
}

func TestFindNeighborInDirection(t *testing.T) {
	cells := grid3x3(t)
	center := cells[4]

	// Spatial search from the center agrees with the structural one.
	got := FindNeighborInDirection(cells, center, DirRight)
	if got == nil || got.ID.Col != 2 || got.ID.Row != 1 {
		t.Errorf("spatial right neighbor = %+v, want (1,2)", got)
	}

	// Nothing strictly above the top row.
	if got := FindNeighborInDirection(cells, cells[1], DirUp); got != nil {
		t.Errorf("spatial neighbor above top row = %+v, want nil", got.ID)
	}
}
