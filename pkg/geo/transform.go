package geo

// Transform is the affine view transform applied by the renderer:
// screen = world*zoom + pan. Zoom must be strictly positive.
type Transform struct {
	Zoom float64
	PanX float64
	PanY float64
}

// Apply maps a world-space point to screen space.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: p.X*t.Zoom + t.PanX,
		Y: p.Y*t.Zoom + t.PanY,
	}
}

// Invert maps a screen-space point back to world space.
// The result is undefined when Zoom is zero.
func (t Transform) Invert(p Point) Point {
	return Point{
		X: (p.X - t.PanX) / t.Zoom,
		Y: (p.Y - t.PanY) / t.Zoom,
	}
}

// BoundingBox returns the minimal axis-aligned rectangle enclosing all
// input rectangles. An empty input yields a zero-size box at the origin.
func BoundingBox(rects []Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}
	box := rects[0]
	for _, r := range rects[1:] {
		right, bottom := box.Right(), box.Bottom()
		if r.X < box.X {
			box.X = r.X
		}
		if r.Y < box.Y {
			box.Y = r.Y
		}
		if r.Right() > right {
			right = r.Right()
		}
		if r.Bottom() > bottom {
			bottom = r.Bottom()
		}
		box.Width = right - box.X
		box.Height = bottom - box.Y
	}
	return box
}
