package layout

import (
	"github.com/seatforge/seatforge/pkg/geo"
	"github.com/seatforge/seatforge/pkg/layout/numbering"
	"github.com/seatforge/seatforge/pkg/layout/overlap"
)

// generateArc places cfg.Count seats at equal angular steps across sweep
// degrees, symmetric about -90° (the top of the circle). Each seat is
// rotated by angle+90° so it faces the arc center. With AutoPreventOverlap
// the radius is first grown until adjacent chord lengths honor MinSpacing.
func generateArc(cfg Config, sweep float64) []Cell {
	if cfg.Count <= 0 {
		return nil
	}

	radius := cfg.Radius
	if cfg.AutoPreventOverlap {
		radius = overlap.AdjustArcRadius(radius, cfg.Count, cfg.CellSize, sweep, cfg.MinSpacing)
	}

	startAngle := -90 - sweep/2
	var angleStep float64
	if cfg.Count > 1 {
		angleStep = sweep / float64(cfg.Count-1)
	}

	cells := make([]Cell, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		angle := startAngle + float64(i)*angleStep
		pos := geo.PolarToCartesian(cfg.Origin, radius, angle)
		cells = append(cells, Cell{
			ID: CellID{
				Row:   -1,
				Col:   -1,
				Index: i,
			},
			Kind:     KindSeat,
			X:        pos.X,
			Y:        pos.Y,
			W:        cfg.CellSize,
			H:        cfg.CellSize,
			Rotation: angle + 90,
			Meta: CellMeta{
				Label:  numbering.AngularLabel(i, cfg.Numbering, cfg.LabelPrefix),
				Status: StatusAvailable,
			},
		})
	}
	return cells
}
