// Package pkg provides the core libraries for Seatforge seat map generation.
//
// # Overview
//
// Seatforge turns declarative venue descriptions into positioned, labeled
// seat layouts. The pkg directory is organized into four main areas:
//
//  1. [layout] - Domain logic (generators, numbering, overlap engine)
//  2. [geo] - Geometric primitives (points, rectangles, polar math, transforms)
//  3. [nav] / [viewport] - Interaction (keyboard traversal, zoom/pan state)
//  4. [render/svg] / [cache] - Output (SVG rendering, render memoization)
//
// # Architecture
//
// The typical data flow through Seatforge:
//
//	Layout Config (JSON/TOML)
//	         ↓
//	    [layout] package (generate cells + objects)
//	         ↓
//	    [render/svg] package (SVG document)
//	         ↓
//	    [cache] package (memoized artifacts)
//
// # Quick Start
//
// Generate a grid and render it:
//
//	import (
//	    "github.com/seatforge/seatforge/pkg/layout"
//	    "github.com/seatforge/seatforge/pkg/render/svg"
//	)
//
//	cfg := layout.Config{
//	    Kind:     layout.KindGrid,
//	    Rows:     10,
//	    Cols:     12,
//	    CellSize: 30,
//	    Gap:      4,
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	res := layout.Generate(cfg)
//	doc := svg.Render(res.Cells, svg.WithObjects(res.Objects), svg.WithLabels())
//
// # Main Packages
//
// [layout] - Layout generation. Grid, arc, circle, and multi-section venue
// shapes, each a pure function of its config. Subpackages:
//
//   - [layout/numbering]: Seat labeling schemes (row-col, snake, index,
//     alpha-rows)
//   - [layout/overlap]: Collision detection and automatic prevention
//     (grid gap widening, arc radius growth, section repositioning)
//
// [geo] - Points, axis-aligned rectangles, polar/cartesian conversion, and
// the affine view transform shared by the renderer and the viewport.
//
// [nav] - Spatial neighbor lookup for keyboard traversal of a generated
// seat map, with structural stepping for grids and arcs and a spatial
// fallback.
//
// [viewport] - Stateful zoom/pan controller: clamped zoom, cursor-anchored
// wheel zoom, fit-to-view, and two-phase drag panning.
//
// [render/svg] - Standalone SVG documents from generated cells and
// decorative objects.
//
// [cache] - Render memoization with file, Redis, and null backends.
//
// [errors] - Structured errors with machine-readable codes, shared by the
// library and the CLI.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/layout/...       # Specific package
//	go test -run Example           # Examples only
//
// [layout]: https://pkg.go.dev/github.com/seatforge/seatforge/pkg/layout
// [layout/numbering]: https://pkg.go.dev/github.com/seatforge/seatforge/pkg/layout/numbering
// [layout/overlap]: https://pkg.go.dev/github.com/seatforge/seatforge/pkg/layout/overlap
// [geo]: https://pkg.go.dev/github.com/seatforge/seatforge/pkg/geo
// [nav]: https://pkg.go.dev/github.com/seatforge/seatforge/pkg/nav
// [viewport]: https://pkg.go.dev/github.com/seatforge/seatforge/pkg/viewport
// [render/svg]: https://pkg.go.dev/github.com/seatforge/seatforge/pkg/render/svg
// [cache]: https://pkg.go.dev/github.com/seatforge/seatforge/pkg/cache
// [errors]: https://pkg.go.dev/github.com/seatforge/seatforge/pkg/errors
package pkg
