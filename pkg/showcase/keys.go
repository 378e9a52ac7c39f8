package showcase

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Top    key.Binding
	Bottom key.Binding
	Next   key.Binding
	Prev   key.Binding
	Press  key.Binding
	Close  key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Top:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "top")),
		Bottom: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "bottom")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next button")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev button")),
		Press:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) closedHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Top, k.Bottom, k.Press, k.Quit}
}

func (k keyMap) openHelp() []key.Binding {
	return []key.Binding{k.Close, k.Quit}
}
