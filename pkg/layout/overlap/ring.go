package overlap

import "github.com/seatforge/seatforge/pkg/geo"

// Square-ring search constants. These bound the compact placement search
// and are part of the engine's observable behavior; keep them stable.
const (
	// RingStep is the distance between successive candidate rings.
	RingStep = 50

	// RingCap is the maximum ring radius searched before giving up.
	RingCap = 5000
)

// ringOffsets returns a lazy generator of candidate offsets expanding out
// from (0,0) in square rings. The first call yields the zero offset; each
// subsequent ring of radius r (r = step, 2·step, ... up to cap) is
// traversed top edge, then right, then bottom, then left. Once the cap is
// exhausted ok is false on every further call.
func ringOffsets(step, cap float64) func() (offset geo.Point, ok bool) {
	var (
		radius      float64
		pending     []geo.Point
		yieldedZero bool
	)

	return func() (geo.Point, bool) {
		if !yieldedZero {
			yieldedZero = true
			return geo.Point{}, true
		}
		for len(pending) == 0 {
			radius += step
			if radius > cap {
				return geo.Point{}, false
			}
			pending = ringPoints(radius, step)
		}
		p := pending[0]
		pending = pending[1:]
		return p, true
	}
}

// ringPoints builds one square ring of radius r with candidate spacing
// step, ordered top edge (left to right), right edge (top to bottom),
// bottom edge (right to left), left edge (bottom to top). Corners are
// produced exactly once.
func ringPoints(r, step float64) []geo.Point {
	var pts []geo.Point
	for x := -r; x <= r; x += step { // top, both corners
		pts = append(pts, geo.Point{X: x, Y: -r})
	}
	for y := -r + step; y <= r; y += step { // right, bottom corner
		pts = append(pts, geo.Point{X: r, Y: y})
	}
	for x := r - step; x >= -r; x -= step { // bottom, left corner
		pts = append(pts, geo.Point{X: x, Y: r})
	}
	for y := r - step; y >= -r+step; y -= step { // left, no corners
		pts = append(pts, geo.Point{X: -r, Y: y})
	}
	return pts
}
