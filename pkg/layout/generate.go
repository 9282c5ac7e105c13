package layout

import (
	"fmt"

	"github.com/google/uuid"
)

// Result is the output of one generation call: the ordered cells plus the
// pass-through decorative objects.
type Result struct {
	Cells   []Cell   `json:"cells"`
	Objects []Object `json:"objects,omitempty"`
}

// Generate converts a layout config into positioned, labeled cells. It
// dispatches exhaustively on the config kind; an unknown kind panics,
// which keeps new variants from silently generating nothing. Callers
// feeding untrusted configs should run [Config.Validate] first.
func Generate(cfg Config) Result {
	var cells []Cell
	switch cfg.Kind {
	case KindGrid:
		cells = generateGrid(cfg)
	case KindArc:
		cells = generateArc(cfg, cfg.SweepDegrees)
	case KindCircle:
		// A circle is an arc with a full sweep; no distinct algorithm.
		cells = generateArc(cfg, 360)
	case KindSections:
		cells = generateSections(cfg)
	default:
		panic(fmt.Sprintf("layout: unknown config kind %q", cfg.Kind))
	}

	return Result{Cells: cells, Objects: passThroughObjects(cfg.Objects)}
}

// passThroughObjects copies the decorative objects, assigning a generated
// ID to any object declared without one.
func passThroughObjects(objects []Object) []Object {
	if len(objects) == 0 {
		return nil
	}
	out := make([]Object, len(objects))
	copy(out, objects)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
		if out[i].Kind == "" {
			out[i].Kind = ObjectCustom
		}
	}
	return out
}
