package layout

import (
	"testing"

	"github.com/seatforge/seatforge/pkg/geo"
)

func TestGenerateObjects(t *testing.T) {
	cfg := Config{
		Kind:     KindGrid,
		Rows:     1,
		Cols:     1,
		CellSize: 30,
		Objects: []Object{
			{ID: "stage-1", Kind: ObjectStage, X: 100, Y: -50, Width: 200, Height: 40, Label: "Stage"},
			{X: 0, Y: 0, Width: 10, Height: 10},
		},
	}
	res := Generate(cfg)

	if len(res.Objects) != 2 {
		t.Fatalf("got %d objects, want 2", len(res.Objects))
	}
	if res.Objects[0] != cfg.Objects[0] {
		t.Errorf("declared object changed: %+v", res.Objects[0])
	}
	if res.Objects[1].ID == "" {
		t.Error("object without ID did not receive one")
	}
	if res.Objects[1].Kind != ObjectCustom {
		t.Errorf("object without kind = %q, want custom", res.Objects[1].Kind)
	}
	// The input slice stays untouched.
	if cfg.Objects[1].ID != "" {
		t.Error("input object mutated")
	}
}

func TestGenerateUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unknown kind did not panic")
		}
	}()
	Generate(Config{Kind: "hexagon"})
}

func TestCellRect(t *testing.T) {
	c := Cell{X: 50, Y: 60, W: 30, H: 20}
	want := geo.Rect{X: 35, Y: 50, Width: 30, Height: 20}
	if got := c.Rect(); got != want {
		t.Errorf("Rect = %+v, want %+v", got, want)
	}
}

func TestBoundingBoxCells(t *testing.T) {
	cells := []Cell{
		{X: 15, Y: 15, W: 30, H: 30},
		{X: 115, Y: 65, W: 30, H: 30},
	}
	want := geo.Rect{X: 0, Y: 0, Width: 130, Height: 80}
	if got := BoundingBox(cells); got != want {
		t.Errorf("BoundingBox = %+v, want %+v", got, want)
	}
	if got := BoundingBox(nil); got != (geo.Rect{}) {
		t.Errorf("BoundingBox(nil) = %+v, want zero", got)
	}
}

func TestCellsOverlap(t *testing.T) {
	a := Cell{X: 15, Y: 15, W: 30, H: 30}
	b := Cell{X: 40, Y: 15, W: 30, H: 30}
	if !CellsOverlap(a, b, 0) {
		t.Error("intersecting cells not reported")
	}
	c := Cell{X: 100, Y: 15, W: 30, H: 30}
	if CellsOverlap(a, c, 0) {
		t.Error("distant cells reported overlapping")
	}
	if !CellsOverlap(a, c, 60) {
		t.Error("spacing not honored")
	}
}

func TestDetectOverlaps(t *testing.T) {
	cfg := Config{Kind: KindGrid, Rows: 2, Cols: 2, CellSize: 30, Gap: 4}
	res := Generate(cfg)
	if rep := DetectOverlaps(res.Cells, 0); rep.HasOverlaps {
		t.Errorf("gapped grid reported overlaps: %+v", rep.Pairs)
	}

	rep := DetectOverlaps(res.Cells, 10)
	if !rep.HasOverlaps {
		t.Fatal("tight spacing not detected")
	}
	for _, p := range rep.Pairs {
		if p.A.ID == p.B.ID {
			t.Errorf("self pair %+v", p)
		}
	}
}
