package showcase

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/swipemodal/pkg/modal"
	"github.com/marcus/swipemodal/pkg/mouse"
	"github.com/marcus/swipemodal/pkg/overlay"
)

const (
	buttonWidth  = 12
	buttonGap    = 1
	footerHeight = 1
)

var (
	buttonStyle = lipgloss.NewStyle().
			Width(buttonWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Foreground(lipgloss.Color("33"))

	focusedButtonStyle = buttonStyle.
				BorderForeground(lipgloss.Color("255")).
				Foreground(lipgloss.Color("255")).
				Bold(true)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	footerStyle   = lipgloss.NewStyle().Padding(0, 1)
)

type button struct {
	dir  modal.Direction
	rect mouse.Rect
}

// buttonLayout centers the button column in the area above the footer.
func (m Model) buttonLayout() []button {
	w := lipgloss.Width(buttonStyle.Render(""))
	h := lipgloss.Height(buttonStyle.Render(""))
	n := len(buttonOrder)
	total := n*h + (n-1)*buttonGap

	x := max((m.width-w)/2, 0)
	y := max((m.height-footerHeight-total)/2, 0)

	buttons := make([]button, n)
	for i, dir := range buttonOrder {
		buttons[i] = button{dir: dir, rect: mouse.Rect{X: x, Y: y + i*(h+buttonGap), W: w, H: h}}
	}
	return buttons
}

func buttonLabel(d modal.Direction) string {
	s := d.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	screen := overlay.Blank(m.width, m.height)
	for i, b := range m.buttonLayout() {
		style := buttonStyle
		if i == m.focus {
			style = focusedButtonStyle
		}
		screen = overlay.Place(screen, style.Render(buttonLabel(b.dir)), b.rect.X, b.rect.Y, m.width, m.height)
	}
	screen = overlay.Place(screen, m.renderFooter(), 0, m.height-footerHeight, m.width, m.height)

	return m.modal.Overlay(screen)
}

func (m Model) renderFooter() string {
	bindings := m.keys.closedHelp()
	if m.modal.Visible() {
		bindings = m.keys.openHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, renderBinding(b))
	}
	content := footerStyle.Render(strings.Join(parts, "  "))
	return ansi.Truncate(content, m.width, "")
}

func renderBinding(b key.Binding) string {
	help := b.Help()
	return helpKeyStyle.Render(help.Key) + " " + helpDescStyle.Render(help.Desc)
}
