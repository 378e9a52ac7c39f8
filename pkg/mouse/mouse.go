// Package mouse provides hit regions and press/release tracking for terminal
// mouse input.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Rect is a cell rectangle. W and H are exclusive extents.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Region is a named rectangle with optional attached data.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds regions in paint order. Regions added later win.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Empty rectangles are skipped.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	r := Rect{X: x, Y: y, W: w, H: h}
	if r.Empty() {
		return
	}
	hm.regions = append(hm.regions, Region{ID: id, Rect: r, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Regions returns the registered regions in paint order.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// Clear removes all regions.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// ActionType classifies a mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionPress
	ActionRelease
	ActionDrag
	ActionHover
)

func (a ActionType) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionDrag:
		return "drag"
	case ActionHover:
		return "hover"
	default:
		return "none"
	}
}

// Action is the interpreted result of a mouse event.
type Action struct {
	Type   ActionType
	Region *Region // region under the pointer, nil on a miss
	X, Y   int

	// Set on ActionRelease and ActionDrag.
	Origin      Point
	PressRegion string
	DX, DY      int
}

// Handler tracks a single press/release gesture against a HitMap.
type Handler struct {
	HitMap *HitMap

	pressed     bool
	origin      Point
	pressRegion string
}

// NewHandler creates a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// Pressed reports whether a press is being tracked.
func (h *Handler) Pressed() bool {
	return h.pressed
}

// Origin returns the coordinates of the tracked press, (0,0) when idle.
func (h *Handler) Origin() Point {
	return h.origin
}

// HandleMouse interprets a Bubble Tea mouse message. Only the left button
// starts a gesture.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	region := h.HitMap.Test(msg.X, msg.Y)
	action := Action{Region: region, X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return action
		}
		h.pressed = true
		h.origin = Point{X: msg.X, Y: msg.Y}
		h.pressRegion = ""
		if region != nil {
			h.pressRegion = region.ID
		}
		action.Type = ActionPress

	case tea.MouseActionRelease:
		action.Type = ActionRelease
		action.Origin = h.origin
		action.PressRegion = h.pressRegion
		if h.pressed {
			action.DX = msg.X - h.origin.X
			action.DY = msg.Y - h.origin.Y
		}
		h.Reset()

	case tea.MouseActionMotion:
		if h.pressed {
			action.Type = ActionDrag
			action.Origin = h.origin
			action.PressRegion = h.pressRegion
			action.DX = msg.X - h.origin.X
			action.DY = msg.Y - h.origin.Y
		} else {
			action.Type = ActionHover
		}
	}

	return action
}

// Reset drops the tracked press and returns the origin to (0,0).
func (h *Handler) Reset() {
	h.pressed = false
	h.origin = Point{}
	h.pressRegion = ""
}

// Clear resets tracking and removes all regions.
func (h *Handler) Clear() {
	h.Reset()
	h.HitMap.Clear()
}
