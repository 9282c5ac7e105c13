// Package overlap implements the collision engine behind automatic overlap
// prevention: rectangle intersection tests, minimum-spacing solvers for
// grids and arcs, and multi-strategy repositioning for section blocks.
//
// # Guarantees
//
// The engine guarantees a configurable minimum visual gap between elements
// without manual spacing tuning. Adjusters only ever grow spacing - a gap or
// radius is never reduced below what the caller requested.
//
// Detection is an exhaustive all-pairs scan, O(n²) in the element count.
// There is no spatial index: realistic seat counts stay in the hundreds to
// low thousands, where the quadratic scan is cheap and simple.
//
// # Failure Semantics
//
// Nothing in this package returns an error. The preserve-relative strategy
// is best-effort: after its iteration cap it may leave residual overlaps,
// which callers can detect by re-running [DetectSections] on the result.
package overlap
