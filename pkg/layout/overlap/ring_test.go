package overlap

import (
	"testing"

	"github.com/seatforge/seatforge/pkg/geo"
)

func TestRingOffsetsZeroFirst(t *testing.T) {
	next := ringOffsets(50, 5000)
	p, ok := next()
	if !ok || p != (geo.Point{}) {
		t.Fatalf("first offset = %v, %v; want origin, true", p, ok)
	}
}

func TestRingOffsetsOrdering(t *testing.T) {
	next := ringOffsets(50, 5000)
	next() // skip zero

	// The first ring has radius 50 and 8 points; all must sit on the ring,
	// start at the top-left corner, and be distinct.
	seen := map[geo.Point]bool{}
	first, _ := next()
	if first != (geo.Point{X: -50, Y: -50}) {
		t.Fatalf("ring start = %v, want top-left corner", first)
	}
	seen[first] = true
	for i := 0; i < 7; i++ {
		p, ok := next()
		if !ok {
			t.Fatalf("ring ended early at point %d", i)
		}
		if max(abs(p.X), abs(p.Y)) != 50 {
			t.Errorf("point %v not on ring radius 50", p)
		}
		if seen[p] {
			t.Errorf("duplicate point %v", p)
		}
		seen[p] = true
	}

	// Next point starts the second ring.
	p, ok := next()
	if !ok || max(abs(p.X), abs(p.Y)) != 100 {
		t.Errorf("ninth point = %v, %v; want on ring radius 100", p, ok)
	}
}

func TestRingOffsetsCap(t *testing.T) {
	next := ringOffsets(50, 100)
	count := 0
	for {
		_, ok := next()
		if !ok {
			break
		}
		count++
		if count > 1000 {
			t.Fatal("generator did not terminate")
		}
	}
	// 1 zero offset + ring(50) with 8 points + ring(100) with 16 points.
	if count != 25 {
		t.Errorf("yielded %d offsets, want 25", count)
	}
	if _, ok := next(); ok {
		t.Error("generator yielded after exhaustion")
	}
}

func TestRingPointsCounts(t *testing.T) {
	// A ring of radius n·step has 8n points.
	for n := 1; n <= 4; n++ {
		r := float64(n) * 50
		pts := ringPoints(r, 50)
		if len(pts) != 8*n {
			t.Errorf("ringPoints(%v) = %d points, want %d", r, len(pts), 8*n)
		}
		seen := map[geo.Point]bool{}
		for _, p := range pts {
			if seen[p] {
				t.Errorf("ringPoints(%v): duplicate %v", r, p)
			}
			seen[p] = true
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
