package showcase

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// DefaultBody is the modal body shown when no body file is given.
const DefaultBody = "Hello Everyone to the custom Modal!"

// bodyRenderedMsg carries a markdown body rendered for a wrap width.
type bodyRenderedMsg struct {
	width   int
	content string
}

// renderMarkdown renders markdown for the terminal, falling back to the
// source text when glamour fails.
func renderMarkdown(text string, width int) string {
	if text == "" {
		return ""
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	// Glamour pads with blank lines; the container does its own spacing.
	rendered = strings.TrimRight(rendered, "\n\r\t ")
	return strings.TrimLeft(rendered, "\n")
}

// renderBodyAsync renders the body off the update loop.
func renderBodyAsync(text string, width int) tea.Cmd {
	return func() tea.Msg {
		return bodyRenderedMsg{width: width, content: renderMarkdown(text, width)}
	}
}
