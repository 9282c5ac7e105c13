// Package numbering generates deterministic seat labels for the layout
// generators. A label is a pure function of the seat's position and the
// numbering configuration: identical inputs always produce identical labels.
package numbering

import (
	"fmt"
	"strings"
)

// Scheme selects how seat labels are derived from grid positions.
type Scheme string

const (
	// SchemeRowCol labels seats as row letter (or prefixed row number)
	// followed by the column number, e.g. "A1", "B12".
	SchemeRowCol Scheme = "row-col"

	// SchemeSnake numbers seats continuously, reversing direction on every
	// other row so consecutive numbers stay physically adjacent.
	SchemeSnake Scheme = "snake"

	// SchemeIndex numbers seats continuously in row-major order.
	SchemeIndex Scheme = "index"

	// SchemeAlphaRows labels rows with caller-supplied names (falling back
	// to alphabetic encoding) followed by the column number.
	SchemeAlphaRows Scheme = "alpha-rows"
)

// Valid reports whether s is a known scheme.
func (s Scheme) Valid() bool {
	switch s {
	case SchemeRowCol, SchemeSnake, SchemeIndex, SchemeAlphaRows:
		return true
	}
	return false
}

// Config governs label text. It never affects seat positions.
//
// StartIndex and ColStart default to 1 when left zero, so the zero value
// produces conventional 1-based seat numbers.
type Config struct {
	Scheme     Scheme   `json:"scheme" toml:"scheme"`
	StartIndex int      `json:"startIndex,omitempty" toml:"start_index"`
	RowLabels  []string `json:"rowLabels,omitempty" toml:"row_labels"`
	ColStart   int      `json:"colStart,omitempty" toml:"col_start"`
}

// normalized returns cfg with defaults applied: scheme row-col,
// StartIndex 1, ColStart 1.
func (cfg Config) normalized() Config {
	if cfg.Scheme == "" {
		cfg.Scheme = SchemeRowCol
	}
	if cfg.StartIndex == 0 {
		cfg.StartIndex = 1
	}
	if cfg.ColStart == 0 {
		cfg.ColStart = 1
	}
	return cfg
}

// Label returns the label, row label, and column label for the seat at
// (row, col) in a grid with cols columns. cols is required by the snake and
// index schemes to keep per-row numbering collision-free; callers must
// always pass the real column count.
//
// prefix overrides the alphabetic row encoding for row-col numbering:
// with a prefix, rows are named prefix + row number instead of letters.
func Label(row, col, cols int, cfg Config, prefix string) (label, rowLabel, colLabel string) {
	cfg = cfg.normalized()

	switch cfg.Scheme {
	case SchemeSnake:
		var n int
		if row%2 == 0 {
			n = row*cols + col + cfg.StartIndex
		} else {
			n = row*cols + (cols - 1 - col) + cfg.StartIndex
		}
		label = prefix + fmt.Sprint(n)
		return label, "", ""

	case SchemeIndex:
		n := row*cols + col + cfg.StartIndex
		label = prefix + fmt.Sprint(n)
		return label, "", ""

	case SchemeAlphaRows:
		if row < len(cfg.RowLabels) && cfg.RowLabels[row] != "" {
			rowLabel = cfg.RowLabels[row]
		} else {
			rowLabel = Alphabetic(row)
		}
		colLabel = fmt.Sprint(col + cfg.ColStart)
		return rowLabel + colLabel, rowLabel, colLabel

	default: // SchemeRowCol
		if prefix != "" {
			rowLabel = prefix + fmt.Sprint(row+cfg.StartIndex)
		} else {
			rowLabel = Alphabetic(row)
		}
		colLabel = fmt.Sprint(col + cfg.ColStart)
		return rowLabel + colLabel, rowLabel, colLabel
	}
}

// AngularLabel returns the label for seat index in an arc or circle layout,
// where no row/column structure exists: prefix + (index + StartIndex).
func AngularLabel(index int, cfg Config, prefix string) string {
	cfg = cfg.normalized()
	return prefix + fmt.Sprint(index+cfg.StartIndex)
}

// Alphabetic encodes a zero-based row number as spreadsheet-style letters:
// 0 → "A", 25 → "Z", 26 → "AA", 27 → "AB". There is no zero digit.
func Alphabetic(n int) string {
	var b strings.Builder
	for n >= 0 {
		b.WriteByte(byte('A' + n%26))
		n = n/26 - 1
	}
	// Digits were produced least-significant first.
	s := b.String()
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[len(s)-1-i]
	}
	return string(out)
}
