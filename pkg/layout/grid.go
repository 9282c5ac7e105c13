package layout

import (
	"github.com/seatforge/seatforge/pkg/layout/numbering"
	"github.com/seatforge/seatforge/pkg/layout/overlap"
)

// generateGrid emits rows*cols cells in row-major order. Cell (row, col)
// is centered at origin + (col, row)·(cellSize+gap) + cellSize/2. With
// AutoPreventOverlap the gap is first widened to the minimum spacing.
func generateGrid(cfg Config) []Cell {
	gap := cfg.Gap
	if cfg.AutoPreventOverlap {
		gap = overlap.AdjustGridGap(gap, cfg.MinSpacing)
	}
	return gridCells(gridParams{
		rows:      cfg.Rows,
		cols:      cfg.Cols,
		cellSize:  cfg.CellSize,
		gap:       gap,
		originX:   cfg.Origin.X,
		originY:   cfg.Origin.Y,
		numbering: cfg.Numbering,
		prefix:    cfg.LabelPrefix,
	})
}

// gridParams is the shared input of the grid cell loop, used both for
// plain grids and for each block of a sections layout.
type gridParams struct {
	section   string
	rows      int
	cols      int
	cellSize  float64
	gap       float64
	originX   float64
	originY   float64
	numbering numbering.Config
	prefix    string
}

func gridCells(p gridParams) []Cell {
	if p.rows <= 0 || p.cols <= 0 {
		return nil
	}

	cells := make([]Cell, 0, p.rows*p.cols)
	pitch := p.cellSize + p.gap
	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			label, rowLabel, colLabel := numbering.Label(row, col, p.cols, p.numbering, p.prefix)
			cells = append(cells, Cell{
				ID: CellID{
					Section: p.section,
					Row:     row,
					Col:     col,
					Index:   row*p.cols + col,
				},
				Kind: KindSeat,
				X:    p.originX + float64(col)*pitch + p.cellSize/2,
				Y:    p.originY + float64(row)*pitch + p.cellSize/2,
				W:    p.cellSize,
				H:    p.cellSize,
				Meta: CellMeta{
					Label:    label,
					RowLabel: rowLabel,
					ColLabel: colLabel,
					Status:   StatusAvailable,
				},
			})
		}
	}
	return cells
}
