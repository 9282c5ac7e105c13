package layout

import "github.com/seatforge/seatforge/pkg/layout/overlap"

// generateSections generates each block independently with the grid loop,
// optionally repositioning blocks first so no two blocks' bounds overlap.
// Per-block cells are concatenated in the original input block order (not
// post-adjustment order), so the result ordering is stable regardless of
// how blocks were moved.
func generateSections(cfg Config) []Cell {
	blocks := cfg.Sections
	if len(blocks) == 0 {
		return nil
	}

	sections := effectiveSections(cfg)
	if cfg.AutoPreventOverlap {
		sections = overlap.AutoAdjustPositions(sections, cfg.sectionSpacing(), cfg.Strategy, cfg.Direction)
	}

	var cells []Cell
	for i, b := range blocks {
		cells = append(cells, gridCells(gridParams{
			section:   b.ID,
			rows:      b.Rows,
			cols:      b.Cols,
			cellSize:  b.CellSize,
			gap:       sections[i].Gap,
			originX:   sections[i].Origin.X,
			originY:   sections[i].Origin.Y,
			numbering: b.Numbering,
			prefix:    b.LabelPrefix,
		})...)
	}
	return cells
}

// effectiveSections converts the blocks to the overlap engine's geometric
// view. With AutoPreventOverlap each block's gap is widened to the minimum
// spacing first, so the bounds the adjustment engine judges and the cells
// the grid loop emits agree on the block's real footprint.
func effectiveSections(cfg Config) []overlap.Section {
	sections := make([]overlap.Section, len(cfg.Sections))
	for i, b := range cfg.Sections {
		s := b.section()
		if cfg.AutoPreventOverlap {
			s.Gap = overlap.AdjustGridGap(s.Gap, cfg.MinSpacing)
		}
		sections[i] = s
	}
	return sections
}

// DetectSectionOverlaps runs the pairwise bounds scan over the blocks as
// declared, using the same effective gaps generation would, and reports
// whether the configured placements collide before any adjustment. Residual
// overlaps after a best-effort adjustment are observable via
// [overlap.DetectSections] on the adjusted sections or via [DetectOverlaps]
// on the generated cells.
func DetectSectionOverlaps(cfg Config) overlap.Report {
	return overlap.DetectSections(effectiveSections(cfg), cfg.sectionSpacing())
}
