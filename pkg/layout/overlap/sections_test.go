package overlap

import (
	"math"
	"testing"

	"github.com/seatforge/seatforge/pkg/geo"
)

func section(id string, x, y float64, rows, cols int) Section {
	return Section{ID: id, Origin: geo.Point{X: x, Y: y}, Rows: rows, Cols: cols, CellSize: 30, Gap: 4}
}

func TestSectionBounds(t *testing.T) {
	s := section("a", 10, 20, 2, 3)
	got := s.Bounds(0)
	want := geo.Rect{X: 10, Y: 20, Width: 3*30 + 2*4, Height: 2*30 + 1*4}
	if got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}

	inflated := s.Bounds(10)
	if inflated.X != want.X-5 || inflated.Width != want.Width+10 {
		t.Errorf("Bounds(10) = %+v, want half spacing on each side", inflated)
	}
}

func TestDetectSections(t *testing.T) {
	apart := []Section{section("a", 0, 0, 2, 2), section("b", 500, 0, 2, 2)}
	if DetectSections(apart, 20).HasOverlaps {
		t.Error("distant sections reported overlapping")
	}

	stacked := []Section{section("a", 0, 0, 2, 2), section("b", 0, 0, 2, 2)}
	rep := DetectSections(stacked, 20)
	if !rep.HasOverlaps || rep.Pairs[0] != (Pair{A: 0, B: 1}) {
		t.Errorf("stacked sections report = %+v", rep)
	}
}

// Identical origins are full overlap; every strategy must separate them.
func TestAutoAdjustResolvesIdenticalOrigins(t *testing.T) {
	for _, strategy := range []Strategy{StrategyCompact, StrategyDistribute, StrategyPreserveRelative} {
		t.Run(string(strategy), func(t *testing.T) {
			in := []Section{
				section("a", 100, 100, 3, 4),
				section("b", 100, 100, 3, 4),
				section("c", 100, 100, 2, 2),
			}
			out := AutoAdjustPositions(in, 20, strategy, DirectionHorizontal)
			if len(out) != len(in) {
				t.Fatalf("got %d sections, want %d", len(out), len(in))
			}
			for i := range out {
				if out[i].ID != in[i].ID {
					t.Fatalf("input order broken: out[%d] = %q", i, out[i].ID)
				}
			}
			if rep := DetectSections(out, 20); rep.HasOverlaps {
				t.Errorf("residual overlaps after %s: %+v", strategy, rep.Pairs)
			}
		})
	}
}

func TestAutoAdjustNoOverlapsIsNoop(t *testing.T) {
	in := []Section{section("a", 0, 0, 2, 2), section("b", 500, 0, 2, 2)}
	out := AutoAdjustPositions(in, 20, StrategyCompact, DirectionHorizontal)
	for i := range in {
		if out[i].Origin != in[i].Origin {
			t.Errorf("section %q moved without overlap: %v", in[i].ID, out[i].Origin)
		}
	}
}

func TestDistributeSpacing(t *testing.T) {
	in := []Section{
		section("a", 0, 40, 2, 2),
		section("b", 10, 0, 3, 3),
		section("c", 20, 10, 1, 4),
	}
	out := AutoAdjustPositions(in, 20, StrategyDistribute, DirectionHorizontal)

	for i := range out {
		if out[i].Origin.Y != 0 {
			t.Errorf("section %q y = %v, want aligned to minimum y 0", out[i].ID, out[i].Origin.Y)
		}
	}
	for i := 1; i < len(out); i++ {
		gap := out[i].Origin.X - out[i-1].Bounds(0).Right()
		if math.Abs(gap-20) > 1e-9 {
			t.Errorf("gap between %q and %q = %v, want 20", out[i-1].ID, out[i].ID, gap)
		}
	}

	vert := AutoAdjustPositions(in, 20, StrategyDistribute, DirectionVertical)
	for i := 1; i < len(vert); i++ {
		gap := vert[i].Origin.Y - vert[i-1].Bounds(0).Bottom()
		if math.Abs(gap-20) > 1e-9 {
			t.Errorf("vertical gap between %q and %q = %v, want 20", vert[i-1].ID, vert[i].ID, gap)
		}
	}
}

func TestPreserveRelativeKeepsOrder(t *testing.T) {
	// b starts right of a but too close; after relaxation it must still be
	// to the right.
	in := []Section{
		section("a", 0, 0, 2, 2),
		section("b", 30, 0, 2, 2),
	}
	out := AutoAdjustPositions(in, 10, StrategyPreserveRelative, DirectionHorizontal)
	if rep := DetectSections(out, 10); rep.HasOverlaps {
		t.Fatalf("residual overlaps: %+v", rep.Pairs)
	}
	if out[1].Origin.X <= out[0].Origin.X {
		t.Errorf("relative order flipped: a at %v, b at %v", out[0].Origin.X, out[1].Origin.X)
	}
}

func TestStrategyValid(t *testing.T) {
	for _, s := range []Strategy{StrategyCompact, StrategyDistribute, StrategyPreserveRelative} {
		if !s.Valid() {
			t.Errorf("%q not valid", s)
		}
	}
	if Strategy("spiral").Valid() {
		t.Error("unknown strategy reported valid")
	}
}
