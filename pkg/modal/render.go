package modal

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/swipemodal/pkg/mouse"
	"github.com/marcus/swipemodal/pkg/overlay"
)

// ElementKind identifies a laid-out part of the modal.
type ElementKind int

const (
	ElementContent ElementKind = iota
	ElementBackdrop
)

func (k ElementKind) String() string {
	if k == ElementBackdrop {
		return "backdrop"
	}
	return "content"
}

// Element is a laid-out part of the modal in screen cells. The content rect
// includes the live translation.
type Element struct {
	Kind ElementKind
	Rect mouse.Rect
}

// Elements returns the modal's parts in paint order: content before backdrop
// for left and top, backdrop before content for right and bottom. It is empty
// while the modal is closed.
func (m *Model) Elements() []Element {
	if !m.Visible() {
		return nil
	}

	size := m.contentSize()
	screenMain, contentMain := m.width, size.Width
	if m.dir.Axis() == Vertical {
		screenMain, contentMain = m.height, size.Height
	}
	backdropMain := max(screenMain-contentMain, 0)

	contentStart, backdropStart := 0, contentMain
	if !m.dir.ContentFirst() {
		contentStart, backdropStart = screenMain-contentMain, 0
	}

	var content, backdrop mouse.Rect
	if m.dir.Axis() == Horizontal {
		content = mouse.Rect{X: contentStart, Y: 0, W: size.Width, H: size.Height}
		backdrop = mouse.Rect{X: backdropStart, Y: 0, W: backdropMain, H: m.height}
	} else {
		content = mouse.Rect{X: 0, Y: contentStart, W: size.Width, H: size.Height}
		backdrop = mouse.Rect{X: 0, Y: backdropStart, W: m.width, H: backdropMain}
	}

	x, y := m.Offset()
	content.X += int(math.Round(x))
	content.Y += int(math.Round(y))

	if m.dir.ContentFirst() {
		return []Element{{Kind: ElementContent, Rect: content}, {Kind: ElementBackdrop, Rect: backdrop}}
	}
	return []Element{{Kind: ElementBackdrop, Rect: backdrop}, {Kind: ElementContent, Rect: content}}
}

// View renders the modal on its own over a blank screen. It renders nothing
// while the modal is closed.
func (m *Model) View() string {
	if !m.Visible() {
		return ""
	}
	return m.Overlay(overlay.Blank(m.width, m.height))
}

// Overlay composites the modal over base, the owner's rendered screen. The
// backdrop stays transparent until revealed and the content is skipped while
// its opacity is zero.
func (m *Model) Overlay(base string) string {
	if !m.Visible() {
		return base
	}

	out := base
	for _, el := range m.Elements() {
		switch el.Kind {
		case ElementBackdrop:
			if !m.backdropRevealed || el.Rect.Empty() {
				continue
			}
			out = overlay.Place(out, m.renderBackdrop(base, el.Rect), el.Rect.X, el.Rect.Y, m.width, m.height)
		case ElementContent:
			if m.opacity.Get() <= 0 {
				continue
			}
			out = overlay.Place(out, m.renderContainer(), el.Rect.X, el.Rect.Y, m.width, m.height)
		}
	}
	return out
}

// containerStyle sizes the default style to its share of the screen, then
// applies the owner's overrides.
func (m *Model) containerStyle() lipgloss.Style {
	style := DefaultContainerStyle()
	share := func(n int) int { return int(float64(n) * m.props.Flex) }

	if m.dir.Axis() == Horizontal {
		if w := share(m.width); w > 0 {
			style = style.Width(w)
		}
		if m.height > 0 {
			style = style.Height(m.height)
		}
	} else {
		if m.width > 0 {
			style = style.Width(m.width)
		}
		if h := share(m.height); h > 0 {
			style = style.Height(h)
		}
	}

	if m.props.ContainerStyle != nil {
		style = m.props.ContainerStyle(style)
	}
	return style
}

func (m *Model) renderContainer() string {
	return m.containerStyle().Render(m.props.Content)
}

func (m *Model) contentSize() Extent {
	if m.extent != nil {
		return *m.extent
	}
	return m.measureNow()
}

func (m *Model) renderBackdrop(base string, r mouse.Rect) string {
	lines := overlay.Extract(base, r.X, r.Y, r.W, r.H)
	for i, line := range lines {
		lines[i] = BackdropStyle.Render(line)
	}
	return strings.Join(lines, "\n")
}
