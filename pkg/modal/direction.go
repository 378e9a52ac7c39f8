package modal

import (
	"fmt"
	"strings"

	"github.com/marcus/swipemodal/pkg/mouse"
)

// Direction is the screen edge a modal enters from.
type Direction int

const (
	Left Direction = iota
	Right
	Top
	Bottom
)

// Axis is the layout axis of a direction.
type Axis int

const (
	Horizontal Axis = iota // row
	Vertical               // column
)

func (a Axis) String() string {
	if a == Vertical {
		return "column"
	}
	return "row"
}

type directionInfo struct {
	name         string
	axis         Axis
	sign         float64 // sign of the off-screen offset
	contentFirst bool    // content precedes the backdrop in the layout
}

var directionTable = [...]directionInfo{
	Left:   {name: "left", axis: Horizontal, sign: -1, contentFirst: true},
	Right:  {name: "right", axis: Horizontal, sign: 1, contentFirst: false},
	Top:    {name: "top", axis: Vertical, sign: -1, contentFirst: true},
	Bottom: {name: "bottom", axis: Vertical, sign: 1, contentFirst: false},
}

// Directions returns every direction.
func Directions() []Direction {
	return []Direction{Left, Right, Top, Bottom}
}

// ParseDirection parses a direction name. Unknown names are an error.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, info := range directionTable {
		if info.name == name {
			return Direction(d), nil
		}
	}
	return Left, fmt.Errorf("invalid direction %q (want left, right, top or bottom)", s)
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Left && d <= Bottom
}

func (d Direction) info() directionInfo {
	return directionTable[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return d.info().name
}

// Axis returns the slide axis.
func (d Direction) Axis() Axis {
	return d.info().axis
}

// ContentFirst reports whether the content is laid out before the backdrop.
func (d Direction) ContentFirst() bool {
	return d.info().contentFirst
}

// Offscreen returns the offset along the slide axis that places content of
// extent e just outside the entry edge. An unknown extent counts as zero.
func (d Direction) Offscreen(e *Extent) float64 {
	if e == nil {
		return 0
	}
	size := e.Width
	if d.Axis() == Vertical {
		size = e.Height
	}
	return d.info().sign * float64(size)
}

// Dismisses reports whether a press at origin released at end travels more
// than threshold cells toward the entry edge.
func (d Direction) Dismisses(origin, end mouse.Point, threshold int) bool {
	delta := end.X - origin.X
	if d.Axis() == Vertical {
		delta = end.Y - origin.Y
	}
	return d.info().sign*float64(delta) > float64(threshold)
}

// CellAspect is the number of columns that span the height of one row.
const CellAspect = 2

// SwipeCells converts a swipe threshold, measured in columns, to cells along
// the slide axis of a screen of the given size. Vertical thresholds are
// divided by CellAspect. The result is capped at half the screen along the
// axis so the gesture stays reachable, and is at least one cell.
func (d Direction) SwipeCells(threshold int, screen Extent) int {
	cells, size := threshold, screen.Width
	if d.Axis() == Vertical {
		cells = (threshold + CellAspect - 1) / CellAspect
		size = screen.Height
	}
	if size > 0 {
		cells = min(cells, size/2)
	}
	return max(cells, 1)
}

// Extent is the measured size of the content container in cells.
type Extent struct {
	Width  int
	Height int
}
