// Package nav finds spatial neighbors for keyboard traversal of a seat
// map. Grid layouts step by row/column identity, angular layouts step by
// seat index, and both fall back to a purely spatial search when no
// structural identity applies. All lookups return nil at a boundary; there
// is no wraparound.
package nav

import (
	"math"

	"github.com/seatforge/seatforge/pkg/layout"
)

// Direction is a keyboard traversal direction.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// dominanceThreshold is the minimum displacement (px) along the requested
// axis before a cell counts as lying in that direction.
const dominanceThreshold = 5

// FindGridNeighbor returns the neighbor of current in the given direction
// for grid-identified cells: it steps the target row or column and scans
// for a cell in the same section with exactly that position. rtl swaps
// left and right, on the structural step and the spatial fallback alike.
// Cells without row/column identity fall back to the spatial search.
// Returns nil at a grid boundary.
func FindGridNeighbor(cells []layout.Cell, current layout.Cell, dir Direction, rtl bool) *layout.Cell {
	if !current.ID.HasRowCol() {
		return FindNeighborInDirection(cells, current, effectiveDirection(dir, rtl))
	}

	row, col := current.ID.Row, current.ID.Col
	switch effectiveDirection(dir, rtl) {
	case DirUp:
		row--
	case DirDown:
		row++
	case DirLeft:
		col--
	case DirRight:
		col++
	}

	for i := range cells {
		c := &cells[i]
		if c.ID.Section == current.ID.Section && c.ID.Row == row && c.ID.Col == col {
			return c
		}
	}
	return nil
}

// FindAngularNeighbor returns the neighbor of current for index-identified
// cells (arc/circle layouts): left and right shift the index by one (swapped
// under rtl), while up and down fall back to the spatial search. Returns
// nil at a sequence boundary; the sequence does not wrap.
func FindAngularNeighbor(cells []layout.Cell, current layout.Cell, dir Direction, rtl bool) *layout.Cell {
	var target int
	switch effectiveDirection(dir, rtl) {
	case DirLeft:
		target = current.ID.Index - 1
	case DirRight:
		target = current.ID.Index + 1
	default:
		return FindNeighborInDirection(cells, current, dir)
	}

	for i := range cells {
		c := &cells[i]
		if c.ID.Section == current.ID.Section && c.ID.Index == target {
			return c
		}
	}
	return nil
}

// FindNeighborInDirection is the spatial fallback: among cells whose
// displacement from current is dominated by the requested direction, it
// returns the nearest by Euclidean distance, or nil when none qualify.
func FindNeighborInDirection(cells []layout.Cell, current layout.Cell, dir Direction) *layout.Cell {
	var best *layout.Cell
	bestDist := math.Inf(1)

	for i := range cells {
		c := &cells[i]
		if c.ID == current.ID {
			continue
		}
		dx := c.X - current.X
		dy := c.Y - current.Y
		if !matchesDirection(dx, dy, dir) {
			continue
		}
		if d := math.Hypot(dx, dy); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

// matchesDirection reports whether the displacement (dx, dy) lies
// dominantly in dir: past the threshold along that axis and larger there
// than on the cross axis.
func matchesDirection(dx, dy float64, dir Direction) bool {
	switch dir {
	case DirUp:
		return dy < -dominanceThreshold && math.Abs(dx) < math.Abs(dy)
	case DirDown:
		return dy > dominanceThreshold && math.Abs(dx) < math.Abs(dy)
	case DirLeft:
		return dx < -dominanceThreshold && math.Abs(dy) < math.Abs(dx)
	case DirRight:
		return dx > dominanceThreshold && math.Abs(dy) < math.Abs(dx)
	}
	return false
}

// effectiveDirection swaps left and right under right-to-left traversal.
func effectiveDirection(dir Direction, rtl bool) Direction {
	if !rtl {
		return dir
	}
	switch dir {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return dir
}
