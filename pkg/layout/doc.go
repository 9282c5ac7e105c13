// Package layout converts a declarative venue description into positioned,
// labeled, collision-free cells.
//
// # Overview
//
// A [Config] describes a venue shape as one of four variants: a rectangular
// grid, an arc, a full circle, or a multi-section plan composed of
// independent grid blocks. [Generate] dispatches on the variant and emits an
// ordered slice of [Cell] values plus the pass-through decorative [Object]s.
//
// Generation is a pure function of the configuration: no state survives
// between calls and cells have no cross-call identity. Consumers key on
// Meta.Label, which the numbering subpackage keeps deterministic.
//
// # Overlap Prevention
//
// When Config.AutoPreventOverlap is set, each generator routes its spacing
// parameters through the overlap subpackage before placing cells: grids can
// only widen their gap, arcs can only grow their radius, and section blocks
// are repositioned so no two blocks' bounds intersect. Spacing never shrinks
// below what the caller asked for.
//
// # Degenerate Inputs
//
// Zero rows, columns, or counts yield zero cells rather than an error.
// Negative dimensions are a caller-contract violation the generators do not
// check; [Config.Validate] rejects them at the configuration boundary.
package layout
