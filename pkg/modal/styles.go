package modal

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ContainerBackground = lipgloss.Color("25")  // blue
	ContainerForeground = lipgloss.Color("255") // white
	BackdropForeground  = lipgloss.Color("240")
	BackdropBackground  = lipgloss.Color("234")
)

// DefaultContainerStyle returns the base style of the content container.
func DefaultContainerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(ContainerBackground).
		Foreground(ContainerForeground).
		Align(lipgloss.Center, lipgloss.Center)
}

// BackdropStyle dims whatever sits under the backdrop.
var BackdropStyle = lipgloss.NewStyle().
	Foreground(BackdropForeground).
	Background(BackdropBackground).
	Faint(true)
