// Package svg renders a generated seat map as a standalone SVG document.
//
// This is the renderer collaborator of the layout engine: it consumes cells
// and decorative objects, maps each cell's status to a purely cosmetic
// fill color, and assigns no further meaning to statuses. The engine's
// geometry is used as-is; only the viewBox framing is computed here.
package svg

import (
	"bytes"
	"fmt"

	"github.com/seatforge/seatforge/pkg/geo"
	"github.com/seatforge/seatforge/pkg/layout"
)

// Theme maps cell statuses and object kinds to fill colors.
type Theme struct {
	Background string
	Stroke     string
	LabelColor string
	ObjectFill string
	Status     map[layout.Status]string
}

// DefaultTheme returns the standard color mapping.
func DefaultTheme() Theme {
	return Theme{
		Background: "#ffffff",
		Stroke:     "#374151",
		LabelColor: "#111827",
		ObjectFill: "#9ca3af",
		Status: map[layout.Status]string{
			layout.StatusAvailable:   "#4ade80",
			layout.StatusUnavailable: "#d1d5db",
			layout.StatusHeld:        "#facc15",
			layout.StatusSold:        "#f87171",
			layout.StatusBooked:      "#60a5fa",
		},
	}
}

// Option configures the renderer.
type Option func(*renderer)

type renderer struct {
	theme      Theme
	margin     float64
	showLabels bool
	objects    []layout.Object
}

// WithTheme overrides the default color theme.
func WithTheme(t Theme) Option { return func(r *renderer) { r.theme = t } }

// WithMargin sets the frame margin around the content bounding box.
func WithMargin(m float64) Option { return func(r *renderer) { r.margin = m } }

// WithLabels draws each cell's label at its center.
func WithLabels() Option { return func(r *renderer) { r.showLabels = true } }

// WithObjects draws the decorative objects beneath the cells.
func WithObjects(objects []layout.Object) Option {
	return func(r *renderer) { r.objects = objects }
}

// Render produces a complete SVG document for the given cells.
func Render(cells []layout.Cell, opts ...Option) []byte {
	r := renderer{theme: DefaultTheme(), margin: 20}
	for _, opt := range opts {
		opt(&r)
	}

	box := frame(cells, r.objects).Inflate(r.margin)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		box.X, box.Y, box.Width, box.Height, box.Width, box.Height)
	fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		box.X, box.Y, box.Width, box.Height, r.theme.Background)

	for _, o := range r.objects {
		renderObject(&buf, &r, o)
	}
	for _, c := range cells {
		renderCell(&buf, &r, c)
	}
	if r.showLabels {
		for _, c := range cells {
			renderLabel(&buf, &r, c)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// frame computes the content bounding box over cells and objects.
func frame(cells []layout.Cell, objects []layout.Object) geo.Rect {
	rects := make([]geo.Rect, 0, len(cells)+len(objects))
	for _, c := range cells {
		rects = append(rects, c.Rect())
	}
	for _, o := range objects {
		rects = append(rects, geo.Rect{
			X:      o.X - o.Width/2,
			Y:      o.Y - o.Height/2,
			Width:  o.Width,
			Height: o.Height,
		})
	}
	return geo.BoundingBox(rects)
}

func renderCell(buf *bytes.Buffer, r *renderer, c layout.Cell) {
	fill, ok := r.theme.Status[c.Meta.Status]
	if !ok {
		fill = r.theme.Status[layout.StatusAvailable]
	}

	rx := c.W * 0.15 // booths get square corners
	if c.Kind == layout.KindBooth {
		rx = 0
	}

	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill="%s" stroke="%s"%s/>`+"\n",
		c.X-c.W/2, c.Y-c.H/2, c.W, c.H, rx, fill, r.theme.Stroke, rotation(c.Rotation, c.X, c.Y))
}

func renderLabel(buf *bytes.Buffer, r *renderer, c layout.Cell) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle" dominant-baseline="central" fill="%s">%s</text>`+"\n",
		c.X, c.Y, c.H*0.35, r.theme.LabelColor, escape(c.Meta.Label))
}

func renderObject(buf *bytes.Buffer, r *renderer, o layout.Object) {
	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" opacity="0.8"%s/>`+"\n",
		o.X-o.Width/2, o.Y-o.Height/2, o.Width, o.Height, r.theme.ObjectFill, rotation(o.Rotation, o.X, o.Y))
	if o.Label != "" {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle" dominant-baseline="central" fill="%s">%s</text>`+"\n",
			o.X, o.Y, o.Height*0.3, r.theme.LabelColor, escape(o.Label))
	}
}

// rotation returns an SVG transform attribute for a rotation about
// (cx, cy), or the empty string for an unrotated element.
func rotation(deg, cx, cy float64) string {
	if deg == 0 {
		return ""
	}
	return fmt.Sprintf(` transform="rotate(%.2f %.2f %.2f)"`, deg, cx, cy)
}

// escape replaces characters with special meaning in XML text nodes.
func escape(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
