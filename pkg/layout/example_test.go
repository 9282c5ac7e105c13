package layout_test

import (
	"fmt"

	"github.com/seatforge/seatforge/pkg/layout"
)

func ExampleGenerate() {
	res := layout.Generate(layout.Config{
		Kind:     layout.KindGrid,
		Rows:     2,
		Cols:     3,
		CellSize: 30,
		Gap:      4,
	})

	for _, c := range res.Cells {
		fmt.Printf("%s at (%.0f, %.0f)\n", c.Meta.Label, c.X, c.Y)
	}
	// Output:
	// A1 at (15, 15)
	// A2 at (49, 15)
	// A3 at (83, 15)
	// B1 at (15, 49)
	// B2 at (49, 49)
	// B3 at (83, 49)
}
