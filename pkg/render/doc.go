// Package render groups the output renderers for generated seat maps.
//
// # Overview
//
// Renderers live on the consumer side of the engine boundary: they take the
// cells and decorative objects produced by the layout package and turn them
// into concrete artifacts, without feeding anything back into generation.
//
// # SVG
//
// The [svg] subpackage renders a standalone SVG document. Cell statuses map
// to purely cosmetic fill colors; labels and decorative objects are
// optional:
//
//	doc := svg.Render(res.Cells,
//	    svg.WithObjects(res.Objects),
//	    svg.WithLabels(),
//	)
//
// [svg]: https://pkg.go.dev/github.com/seatforge/seatforge/pkg/render/svg
package render
