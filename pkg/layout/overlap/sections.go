package overlap

import (
	"math"
	"sort"

	"github.com/seatforge/seatforge/pkg/geo"
)

// Strategy selects how overlapping section blocks are repositioned.
type Strategy string

const (
	// StrategyCompact places blocks largest-first, searching expanding
	// square rings of offsets around each block's original origin for the
	// first collision-free spot.
	StrategyCompact Strategy = "compact"

	// StrategyDistribute lays blocks out in a line, preserving input order,
	// with exactly the minimum spacing between consecutive bounds.
	StrategyDistribute Strategy = "distribute"

	// StrategyPreserveRelative iteratively nudges overlapping pairs apart,
	// keeping the original arrangement as intact as possible. Best effort:
	// pathological inputs may retain residual overlaps after the iteration
	// cap.
	StrategyPreserveRelative Strategy = "preserve-relative"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyCompact, StrategyDistribute, StrategyPreserveRelative:
		return true
	}
	return false
}

// Direction orients the distribute strategy.
type Direction string

const (
	DirectionHorizontal Direction = "horizontal"
	DirectionVertical   Direction = "vertical"
)

// relaxIterations caps the preserve-relative relaxation loop. Together
// with RingCap these are the engine's only circuit breakers against
// unbounded work.
const relaxIterations = 100

// Section is the overlap engine's geometric view of one grid block: enough
// to compute the block's occupied bounds without knowing anything about
// labeling or cell metadata.
type Section struct {
	ID       string
	Origin   geo.Point
	Rows     int
	Cols     int
	CellSize float64
	Gap      float64
}

// Bounds returns the rectangle a section's cells occupy, inflated by
// spacing/2 on all sides so two sections tested with [geo.Rect.Intersects]
// keep a full spacing gap between their contents.
func (s Section) Bounds(spacing float64) geo.Rect {
	w := float64(s.Cols)*s.CellSize + float64(max(0, s.Cols-1))*s.Gap
	h := float64(s.Rows)*s.CellSize + float64(max(0, s.Rows-1))*s.Gap
	return geo.Rect{X: s.Origin.X, Y: s.Origin.Y, Width: w, Height: h}.Inflate(spacing / 2)
}

// DetectSections scans all pairs of sections for intersecting bounds under
// the given spacing. Section counts are small, so the O(n²) scan is fine.
func DetectSections(sections []Section, spacing float64) Report {
	var rep Report
	for i := 0; i < len(sections); i++ {
		for j := i + 1; j < len(sections); j++ {
			if sections[i].Bounds(spacing).Intersects(sections[j].Bounds(spacing)) {
				rep.Pairs = append(rep.Pairs, Pair{A: i, B: j})
			}
		}
	}
	rep.Count = len(rep.Pairs)
	rep.HasOverlaps = rep.Count > 0
	return rep
}

// AutoAdjustPositions repositions sections so their bounds no longer
// intersect and returns the adjusted copies, input order preserved. When no
// overlaps exist the input is returned unchanged. An unknown strategy falls
// back to compact. The function never fails; preserve-relative may leave
// residual overlaps detectable via [DetectSections].
func AutoAdjustPositions(sections []Section, spacing float64, strategy Strategy, dir Direction) []Section {
	if !DetectSections(sections, spacing).HasOverlaps {
		return sections
	}

	switch strategy {
	case StrategyDistribute:
		return distribute(sections, spacing, dir)
	case StrategyPreserveRelative:
		return preserveRelative(sections, spacing)
	default:
		return compact(sections, spacing)
	}
}

// compact sorts blocks by area descending and places each at the first
// square-ring offset from its original origin whose bounds clear every
// block already placed. If the ring cap is exhausted the block is parked to
// the right of everything placed so far.
func compact(sections []Section, spacing float64) []Section {
	order := make([]int, len(sections))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra := sections[order[a]].Bounds(0)
		rb := sections[order[b]].Bounds(0)
		return ra.Width*ra.Height > rb.Width*rb.Height
	})

	out := make([]Section, len(sections))
	copy(out, sections)

	var placed []geo.Rect
	for _, idx := range order {
		s := out[idx]
		next := ringOffsets(RingStep, RingCap)

		found := false
		for {
			off, ok := next()
			if !ok {
				break
			}
			cand := s
			cand.Origin = geo.Point{X: s.Origin.X + off.X, Y: s.Origin.Y + off.Y}
			if clears(cand.Bounds(spacing), placed) {
				out[idx] = cand
				found = true
				break
			}
		}
		if !found {
			// Search cap exhausted: park far to the right of everything
			// already placed.
			right := s.Origin.X
			for _, r := range placed {
				right = math.Max(right, r.Right())
			}
			s.Origin.X = right + spacing
			out[idx] = s
		}
		placed = append(placed, out[idx].Bounds(spacing))
	}
	return out
}

// clears reports whether r intersects none of the rects.
func clears(r geo.Rect, rects []geo.Rect) bool {
	for _, other := range rects {
		if r.Intersects(other) {
			return false
		}
	}
	return true
}

// distribute lays sections out linearly in input order with exactly spacing
// between consecutive bounds, aligned to the minimum y (horizontal) or
// minimum x (vertical) of the original arrangement.
func distribute(sections []Section, spacing float64, dir Direction) []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	if len(out) == 0 {
		return out
	}

	minX, minY := math.Inf(1), math.Inf(1)
	for _, s := range sections {
		minX = math.Min(minX, s.Origin.X)
		minY = math.Min(minY, s.Origin.Y)
	}

	if dir == DirectionVertical {
		y := minY
		for i := range out {
			out[i].Origin = geo.Point{X: minX, Y: y}
			y += out[i].Bounds(0).Height + spacing
		}
		return out
	}

	x := minX
	for i := range out {
		out[i].Origin = geo.Point{X: x, Y: minY}
		x += out[i].Bounds(0).Width + spacing
	}
	return out
}

// preserveRelative relaxes overlapping pairs for up to relaxIterations
// rounds. Each round nudges both members of every overlapping pair apart
// along the axis of lesser penetration by overlap/2 + spacing, direction
// chosen by relative origin order, and stops early once nothing overlaps.
func preserveRelative(sections []Section, spacing float64) []Section {
	out := make([]Section, len(sections))
	copy(out, sections)

	for iter := 0; iter < relaxIterations; iter++ {
		rep := DetectSections(out, spacing)
		if !rep.HasOverlaps {
			break
		}
		for _, pair := range rep.Pairs {
			a, b := &out[pair.A], &out[pair.B]
			ra, rb := a.Bounds(spacing), b.Bounds(spacing)

			overlapX := math.Min(ra.Right(), rb.Right()) - math.Max(ra.X, rb.X)
			overlapY := math.Min(ra.Bottom(), rb.Bottom()) - math.Max(ra.Y, rb.Y)

			if overlapX < overlapY {
				shift := overlapX/2 + spacing
				if a.Origin.X <= b.Origin.X {
					a.Origin.X -= shift
					b.Origin.X += shift
				} else {
					a.Origin.X += shift
					b.Origin.X -= shift
				}
			} else {
				shift := overlapY/2 + spacing
				if a.Origin.Y <= b.Origin.Y {
					a.Origin.Y -= shift
					b.Origin.Y += shift
				} else {
					a.Origin.Y += shift
					b.Origin.Y -= shift
				}
			}
		}
	}
	return out
}
