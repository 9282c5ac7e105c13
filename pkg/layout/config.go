package layout

import (
	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/geo"
	"github.com/seatforge/seatforge/pkg/layout/numbering"
	"github.com/seatforge/seatforge/pkg/layout/overlap"
)

// Kind discriminates the layout config union.
type Kind string

const (
	KindGrid     Kind = "grid"
	KindArc      Kind = "arc"
	KindCircle   Kind = "circle"
	KindSections Kind = "sections"
)

// Config is the declarative description of a venue shape.
//
// This is a discriminated union - check Kind to determine which fields
// are meaningful:
//
//	Grid ("grid"):
//	  - Rows, Cols, CellSize, Gap, Origin, Numbering, LabelPrefix
//
//	Arc ("arc"):
//	  - Count, Radius, SweepDegrees, CellSize, Origin (arc center),
//	    Numbering, LabelPrefix
//
//	Circle ("circle"):
//	  - Same as Arc; SweepDegrees is forced to 360
//
//	Sections ("sections"):
//	  - Sections: independent grid blocks
//	  - Strategy, Direction, SectionSpacing: inter-section placement
//
// Shared fields (all kinds):
//   - Objects: decorative rectangles carried through generation
//   - AutoPreventOverlap, MinSpacing: overlap prevention knobs
type Config struct {
	// Discriminator
	Kind Kind `json:"kind" toml:"kind"`

	// Grid-specific (also per-block via SectionBlock)
	Rows int     `json:"rows,omitempty" toml:"rows"`
	Cols int     `json:"cols,omitempty" toml:"cols"`
	Gap  float64 `json:"gap,omitempty" toml:"gap"`

	// Arc/circle-specific
	Count        int     `json:"count,omitempty" toml:"count"`
	Radius       float64 `json:"radius,omitempty" toml:"radius"`
	SweepDegrees float64 `json:"sweepDegrees,omitempty" toml:"sweep_degrees"`

	// Shared geometry. Origin is the grid's top-left anchor or the arc's
	// center; it defaults to (0,0) when omitted.
	CellSize float64   `json:"cellSize,omitempty" toml:"cell_size"`
	Origin   geo.Point `json:"origin,omitempty" toml:"origin"`

	// Labeling
	Numbering   numbering.Config `json:"numbering,omitempty" toml:"numbering"`
	LabelPrefix string           `json:"labelPrefix,omitempty" toml:"label_prefix"`

	// Sections-specific
	Sections       []SectionBlock    `json:"sections,omitempty" toml:"sections"`
	Strategy       overlap.Strategy  `json:"strategy,omitempty" toml:"strategy"`
	Direction      overlap.Direction `json:"direction,omitempty" toml:"direction"`
	SectionSpacing float64           `json:"sectionSpacing,omitempty" toml:"section_spacing"`

	// Shared
	Objects            []Object `json:"objects,omitempty" toml:"objects"`
	AutoPreventOverlap bool     `json:"autoPreventOverlap,omitempty" toml:"auto_prevent_overlap"`
	MinSpacing         float64  `json:"minSpacing,omitempty" toml:"min_spacing"`
}

// SectionBlock is an independently parameterized grid sub-layout within a
// multi-section venue. Cells generated from a block carry its ID in their
// CellID.Section.
type SectionBlock struct {
	ID          string           `json:"id" toml:"id"`
	Origin      geo.Point        `json:"origin,omitempty" toml:"origin"`
	Rows        int              `json:"rows" toml:"rows"`
	Cols        int              `json:"cols" toml:"cols"`
	CellSize    float64          `json:"cellSize" toml:"cell_size"`
	Gap         float64          `json:"gap,omitempty" toml:"gap"`
	Numbering   numbering.Config `json:"numbering,omitempty" toml:"numbering"`
	LabelPrefix string           `json:"labelPrefix,omitempty" toml:"label_prefix"`
}

// section converts the block to the overlap engine's geometric view.
func (b SectionBlock) section() overlap.Section {
	return overlap.Section{
		ID:       b.ID,
		Origin:   b.Origin,
		Rows:     b.Rows,
		Cols:     b.Cols,
		CellSize: b.CellSize,
		Gap:      b.Gap,
	}
}

// DefaultSectionSpacing is the inter-section gap used when a sections
// config leaves SectionSpacing zero.
const DefaultSectionSpacing = 20

// Validate checks the config at the configuration boundary. The generators
// themselves are total functions and do not re-check; callers feeding
// untrusted configs should validate first.
func (c Config) Validate() error {
	switch c.Kind {
	case KindGrid:
		if c.Rows < 0 || c.Cols < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "grid dimensions cannot be negative (rows=%d, cols=%d)", c.Rows, c.Cols)
		}
		if c.Rows*c.Cols > 0 && c.CellSize <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "cell size must be positive, got %v", c.CellSize)
		}
	case KindArc, KindCircle:
		if c.Count < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "seat count cannot be negative, got %d", c.Count)
		}
		if c.Count > 0 && c.CellSize <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "cell size must be positive, got %v", c.CellSize)
		}
		if c.Radius < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "radius cannot be negative, got %v", c.Radius)
		}
	case KindSections:
		for _, b := range c.Sections {
			if b.Rows < 0 || b.Cols < 0 {
				return errors.New(errors.ErrCodeInvalidConfig, "section %q: dimensions cannot be negative (rows=%d, cols=%d)", b.ID, b.Rows, b.Cols)
			}
			if b.Rows*b.Cols > 0 && b.CellSize <= 0 {
				return errors.New(errors.ErrCodeInvalidConfig, "section %q: cell size must be positive, got %v", b.ID, b.CellSize)
			}
		}
		if c.Strategy != "" && !c.Strategy.Valid() {
			return errors.New(errors.ErrCodeInvalidStrategy, "unknown section strategy %q", c.Strategy)
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown layout kind %q", c.Kind)
	}

	if c.Numbering.Scheme != "" && !c.Numbering.Scheme.Valid() {
		return errors.New(errors.ErrCodeInvalidScheme, "unknown numbering scheme %q", c.Numbering.Scheme)
	}
	for _, b := range c.Sections {
		if b.Numbering.Scheme != "" && !b.Numbering.Scheme.Valid() {
			return errors.New(errors.ErrCodeInvalidScheme, "section %q: unknown numbering scheme %q", b.ID, b.Numbering.Scheme)
		}
	}
	return nil
}

// sectionSpacing returns the effective inter-section spacing.
func (c Config) sectionSpacing() float64 {
	if c.SectionSpacing > 0 {
		return c.SectionSpacing
	}
	return DefaultSectionSpacing
}
