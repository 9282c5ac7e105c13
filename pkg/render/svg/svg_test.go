package svg

import (
	"strings"
	"testing"

	"github.com/seatforge/seatforge/pkg/layout"
)

func testCells(t *testing.T) []layout.Cell {
	t.Helper()
	return layout.Generate(layout.Config{
		Kind: layout.KindGrid, Rows: 2, Cols: 2, CellSize: 30, Gap: 4,
	}).Cells
}

func TestRender(t *testing.T) {
	out := string(Render(testCells(t)))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("output does not start with an svg element:\n%s", out[:80])
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("output not closed")
	}
	// Background plus one rect per cell.
	if got := strings.Count(out, "<rect"); got != 5 {
		t.Errorf("rect count = %d, want 5", got)
	}
	if !strings.Contains(out, DefaultTheme().Status[layout.StatusAvailable]) {
		t.Error("available status color missing")
	}
	// Labels are off by default.
	if strings.Contains(out, "<text") {
		t.Error("labels rendered without WithLabels")
	}
}

func TestRenderWithLabels(t *testing.T) {
	cells := testCells(t)
	out := string(Render(cells, WithLabels()))
	for _, c := range cells {
		if !strings.Contains(out, ">"+c.Meta.Label+"<") {
			t.Errorf("label %q missing from output", c.Meta.Label)
		}
	}
}

func TestRenderWithObjects(t *testing.T) {
	objects := []layout.Object{
		{ID: "s", Kind: layout.ObjectStage, X: 50, Y: -40, Width: 100, Height: 30, Label: "Stage & Rig"},
	}
	out := string(Render(testCells(t), WithObjects(objects)))

	if !strings.Contains(out, "Stage &amp; Rig") {
		t.Error("object label not escaped/rendered")
	}
	// The viewBox must cover the object above the cells.
	if !strings.Contains(out, `viewBox="-20.0 -75.0`) {
		t.Errorf("viewBox does not frame the stage:\n%s", out[:120])
	}
}

func TestRenderRotation(t *testing.T) {
	cells := layout.Generate(layout.Config{
		Kind: layout.KindArc, Count: 3, Radius: 100, SweepDegrees: 90, CellSize: 20,
	}).Cells
	out := string(Render(cells))
	if !strings.Contains(out, `transform="rotate(`) {
		t.Error("rotated arc seats missing rotate transform")
	}
}

func TestRenderTheme(t *testing.T) {
	theme := DefaultTheme()
	theme.Background = "#000000"
	out := string(Render(testCells(t), WithTheme(theme)))
	if !strings.Contains(out, `fill="#000000"`) {
		t.Error("custom background not applied")
	}
}

func TestEscape(t *testing.T) {
	if got := escape(`<a & b>`); got != "&lt;a &amp; b&gt;" {
		t.Errorf("escape = %q", got)
	}
}
