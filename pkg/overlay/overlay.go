// Package overlay composites ANSI-styled text layers on a cell grid.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place composites layer on top of base with its top-left corner at cell
// (x, y). The result is clipped to width x height; x and y may be negative,
// in which case the part of the layer outside the grid is dropped.
func Place(base, layer string, x, y, width, height int) string {
	baseLines := splitLines(base)
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	if height > 0 && len(baseLines) > height {
		baseLines = baseLines[:height]
	}

	layerLines := splitLines(layer)
	layerWidth := MaxLineWidth(layerLines)

	for i, line := range layerLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}

		line = PadRight(line, layerWidth)
		col := x
		if col < 0 {
			line = ansi.TruncateLeft(line, -col, "")
			col = 0
		}
		avail := width - col
		if avail <= 0 {
			continue
		}
		if ansi.StringWidth(line) > avail {
			line = ansi.Truncate(line, avail, "")
		}
		if line == "" {
			continue
		}

		target := PadRight(baseLines[row], width)
		left := ansi.Truncate(target, col, "")
		if w := ansi.StringWidth(left); w < col {
			left += strings.Repeat(" ", col-w)
		}
		right := ansi.TruncateLeft(target, col+ansi.StringWidth(line), "")

		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

// Extract returns the plain text of the width x height block of base whose
// top-left corner is (x, y). Styling is stripped and missing cells are
// filled with spaces.
func Extract(base string, x, y, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	baseLines := splitLines(base)
	out := make([]string, height)
	for i := range out {
		row := y + i
		line := ""
		if row >= 0 && row < len(baseLines) {
			line = ansi.Strip(baseLines[row])
			if x > 0 {
				line = ansi.TruncateLeft(line, x, "")
			}
			line = ansi.Truncate(line, width, "")
		}
		out[i] = PadRight(line, width)
	}
	return out
}

// Blank returns a width x height grid of spaces.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// MaxLineWidth returns the visual width of the widest line.
func MaxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// PadRight pads s with spaces so its visual width equals width.
func PadRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
