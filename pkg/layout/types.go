package layout

import "github.com/seatforge/seatforge/pkg/geo"

// Status tags a cell's availability. The engine assigns no semantics to
// these values beyond the default; they exist for renderers and booking
// layers to interpret.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
	StatusHeld        Status = "held"
	StatusSold        Status = "sold"
	StatusBooked      Status = "booked"
)

// CellKind distinguishes ordinary seats from booth cells.
type CellKind string

const (
	KindSeat  CellKind = "seat"
	KindBooth CellKind = "booth"
)

// CellID locates a cell within the coordinate scheme of the generator that
// produced it. Grid-style generators populate Row and Col (plus a row-major
// Index); angular generators populate only Index and set Row and Col to -1.
// IDs are unique within a single generation call, with Section
// disambiguating cells in multi-section layouts.
type CellID struct {
	Section string `json:"sectionId,omitempty"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Index   int    `json:"index"`
}

// HasRowCol reports whether the ID carries grid row/column identity.
func (id CellID) HasRowCol() bool { return id.Row >= 0 && id.Col >= 0 }

// CellMeta carries the non-geometric attributes of a cell.
type CellMeta struct {
	Label    string         `json:"label"`
	RowLabel string         `json:"rowLabel,omitempty"`
	ColLabel string         `json:"colLabel,omitempty"`
	Price    float64        `json:"price,omitempty"`
	Status   Status         `json:"status"`
	Extra    map[string]any `json:"extra,omitempty"`
}

// Cell is one renderable seat or booth. X and Y are the center of the cell
// in user units (pixels); Rotation is in degrees, clockwise.
type Cell struct {
	ID       CellID   `json:"id"`
	Kind     CellKind `json:"kind"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	W        float64  `json:"w"`
	H        float64  `json:"h"`
	Rotation float64  `json:"rotation,omitempty"`
	Meta     CellMeta `json:"meta"`
}

// Rect returns the cell's axis-aligned bounding rectangle (ignoring
// rotation), anchored at its top-left corner.
func (c Cell) Rect() geo.Rect {
	return geo.Rect{
		X:      c.X - c.W/2,
		Y:      c.Y - c.H/2,
		Width:  c.W,
		Height: c.H,
	}
}

// ObjectKind distinguishes the built-in decorative object types.
type ObjectKind string

const (
	ObjectStage  ObjectKind = "stage"
	ObjectScreen ObjectKind = "screen"
	ObjectCustom ObjectKind = "custom"
)

// Object is a non-seat decorative rectangle (stage, screen, or custom shape)
// carried through generation untouched. X and Y are center coordinates.
// Objects declared without an ID receive a generated one so renderers have
// a stable key within the generation result.
type Object struct {
	ID       string     `json:"id,omitempty" toml:"id"`
	Kind     ObjectKind `json:"kind" toml:"kind"`
	X        float64    `json:"x" toml:"x"`
	Y        float64    `json:"y" toml:"y"`
	Width    float64    `json:"width" toml:"width"`
	Height   float64    `json:"height" toml:"height"`
	Rotation float64    `json:"rotation,omitempty" toml:"rotation"`
	Label    string     `json:"label,omitempty" toml:"label"`
}

// BoundingBox returns the minimal axis-aligned box enclosing all cells.
// An empty slice yields a zero-size box at the origin.
func BoundingBox(cells []Cell) geo.Rect {
	rects := make([]geo.Rect, len(cells))
	for i, c := range cells {
		rects[i] = c.Rect()
	}
	return geo.BoundingBox(rects)
}
