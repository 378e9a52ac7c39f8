package modal

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultDuration is the length of the entrance and exit animations.
	DefaultDuration = 100 * time.Millisecond
	// DefaultSwipeThreshold is the distance in cells a swipe must travel
	// toward the entry edge to request a close.
	DefaultSwipeThreshold = 50
	// DefaultFlex is the share of the screen the content takes along the
	// slide axis.
	DefaultFlex = 0.5
)

// Props is the owner's view of the modal.
type Props struct {
	// Visible requests the modal to be shown.
	Visible bool
	// Direction is the edge the modal enters from.
	Direction Direction
	// OnClose is invoked on a qualifying swipe or backdrop press. The owner
	// decides whether to close by clearing Visible. Nil is a no-op.
	OnClose func() tea.Cmd
	// Content is the rendered body placed inside the container.
	Content string
	// ContainerStyle adjusts the default container style. It runs after the
	// defaults are applied, so anything it sets wins.
	ContainerStyle func(lipgloss.Style) lipgloss.Style
	// CloseOnBackdropPress gates backdrop-press dismissal.
	CloseOnBackdropPress bool
	// SwipeToClose enables swipe dismissal.
	SwipeToClose bool
	// SwipeThreshold overrides DefaultSwipeThreshold when positive.
	SwipeThreshold int
	// Duration is the length of the slide animations. Zero disables the
	// animation; a negative value selects DefaultDuration.
	Duration time.Duration
	// Flex overrides DefaultFlex when in (0, 1].
	Flex float64
}

// DefaultProps returns a fresh default configuration: hidden, entering from
// the left, with backdrop and swipe dismissal enabled.
func DefaultProps() Props {
	return Props{
		Direction:            Left,
		CloseOnBackdropPress: true,
		SwipeToClose:         true,
		SwipeThreshold:       DefaultSwipeThreshold,
		Duration:             DefaultDuration,
		Flex:                 DefaultFlex,
	}
}

func (p Props) normalized() Props {
	if p.SwipeThreshold <= 0 {
		p.SwipeThreshold = DefaultSwipeThreshold
	}
	if p.Duration < 0 {
		p.Duration = DefaultDuration
	}
	if p.Flex <= 0 || p.Flex > 1 {
		p.Flex = DefaultFlex
	}
	return p
}
