package layout

import (
	"testing"

	"github.com/seatforge/seatforge/pkg/geo"
	"github.com/seatforge/seatforge/pkg/layout/overlap"
)

func sectionsConfig() Config {
	return Config{
		Kind: KindSections,
		Sections: []SectionBlock{
			{ID: "orchestra", Origin: geo.Point{X: 0, Y: 0}, Rows: 3, Cols: 6, CellSize: 30, Gap: 4},
			{ID: "mezzanine", Origin: geo.Point{X: 0, Y: 300}, Rows: 2, Cols: 8, CellSize: 30, Gap: 4},
			{ID: "balcony", Origin: geo.Point{X: 0, Y: 500}, Rows: 2, Cols: 4, CellSize: 30, Gap: 4},
		},
	}
}

func TestGenerateSections(t *testing.T) {
	cfg := sectionsConfig()
	res := Generate(cfg)

	if want := 3*6 + 2*8 + 2*4; len(res.Cells) != want {
		t.Fatalf("got %d cells, want %d", len(res.Cells), want)
	}

	// Cells come out in input block order, each block's cells contiguous.
	wantSections := []struct {
		id    string
		count int
	}{
		{"orchestra", 18},
		{"mezzanine", 16},
		{"balcony", 8},
	}
	i := 0
	for _, ws := range wantSections {
		for j := 0; j < ws.count; j++ {
			if res.Cells[i].ID.Section != ws.id {
				t.Fatalf("cell %d section = %q, want %q", i, res.Cells[i].ID.Section, ws.id)
			}
			i++
		}
	}

	// (section, row, col) is unique across the whole result.
	seen := map[CellID]bool{}
	for _, c := range res.Cells {
		if seen[c.ID] {
			t.Errorf("duplicate cell ID %+v", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestGenerateSectionsAutoAdjust(t *testing.T) {
	cfg := sectionsConfig()
	// Pile every block on the same origin.
	for i := range cfg.Sections {
		cfg.Sections[i].Origin = geo.Point{X: 50, Y: 50}
	}
	cfg.AutoPreventOverlap = true

	res := Generate(cfg)

	if want := 3*6 + 2*8 + 2*4; len(res.Cells) != want {
		t.Fatalf("got %d cells, want %d", len(res.Cells), want)
	}
	if rep := overlap.Detect(cellRects(res.Cells), 0); rep.HasOverlaps {
		t.Errorf("adjusted sections still have overlapping cells: %d pairs", rep.Count)
	}
	// Ordering is by input block, not by adjusted position.
	if res.Cells[0].ID.Section != "orchestra" {
		t.Errorf("first cell from section %q, want orchestra", res.Cells[0].ID.Section)
	}
}

// Repositioning must judge each block's widened footprint, not its declared
// gap: blocks that only collide once the minimum spacing inflates them still
// get moved apart, and no two cells end closer than the minimum spacing.
func TestGenerateSectionsMinSpacingWidensBounds(t *testing.T) {
	cfg := Config{
		Kind: KindSections,
		Sections: []SectionBlock{
			{ID: "a", Origin: geo.Point{X: 0, Y: 0}, Rows: 1, Cols: 3, CellSize: 10},
			{ID: "b", Origin: geo.Point{X: 100, Y: 0}, Rows: 1, Cols: 3, CellSize: 10},
		},
		AutoPreventOverlap: true,
		MinSpacing:         40,
		SectionSpacing:     40,
	}
	res := Generate(cfg)

	if want := 6; len(res.Cells) != want {
		t.Fatalf("got %d cells, want %d", len(res.Cells), want)
	}
	if rep := overlap.Detect(cellRects(res.Cells), cfg.MinSpacing); rep.HasOverlaps {
		t.Errorf("cells closer than minimum spacing: %d pairs", rep.Count)
	}

	// The widened footprints also show up in the pre-adjustment scan.
	if rep := DetectSectionOverlaps(cfg); !rep.HasOverlaps {
		t.Error("declared blocks not reported as colliding under widened gaps")
	}
}

func TestGenerateSectionsEmpty(t *testing.T) {
	cfg := Config{Kind: KindSections}
	if cells := Generate(cfg).Cells; len(cells) != 0 {
		t.Errorf("no blocks produced %d cells", len(cells))
	}
}

func TestDetectSectionOverlaps(t *testing.T) {
	cfg := sectionsConfig()
	if rep := DetectSectionOverlaps(cfg); rep.HasOverlaps {
		t.Errorf("separated blocks reported overlapping: %+v", rep.Pairs)
	}

	for i := range cfg.Sections {
		cfg.Sections[i].Origin = geo.Point{}
	}
	rep := DetectSectionOverlaps(cfg)
	if !rep.HasOverlaps || rep.Count != 3 {
		t.Errorf("stacked blocks report = %+v, want all 3 pairs", rep)
	}
}
