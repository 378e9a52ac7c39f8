// Package showcase is the demo screen that owns a swipeable modal. It shows
// one button per edge; each opens the modal sliding in from that edge, and the
// modal's close callback resets the screen to its defaults.
package showcase

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/swipemodal/pkg/anim"
	"github.com/marcus/swipemodal/pkg/modal"
	"github.com/marcus/swipemodal/pkg/mouse"
)

// ModalState is what the screen asks of its modal.
type ModalState struct {
	Visible              bool
	Direction            modal.Direction
	CloseOnBackdropPress bool
}

// DefaultModalState returns the resting state: hidden, left edge, backdrop
// press closes.
func DefaultModalState() ModalState {
	return ModalState{
		Direction:            modal.Left,
		CloseOnBackdropPress: true,
	}
}

// closeRequestedMsg is produced by the modal's close callback.
type closeRequestedMsg struct{}

func requestClose() tea.Cmd {
	return func() tea.Msg { return closeRequestedMsg{} }
}

// buttonOrder is the top-to-bottom order of the edge buttons.
var buttonOrder = []modal.Direction{modal.Left, modal.Right, modal.Bottom, modal.Top}

// Options configures the showcase.
type Options struct {
	// Props is the base modal configuration. Visibility, direction, the
	// close callback and content are owned by the screen.
	Props modal.Props
	// Body is the markdown source of the modal body.
	Body string
	// FPS is the animation frame rate.
	FPS int
	// Logger receives screen and modal logs.
	Logger *slog.Logger
	// ModalOptions are passed through to the modal.
	ModalOptions []modal.Option
}

// Model is the showcase screen.
type Model struct {
	keys keyMap

	defaults ModalState
	state    ModalState
	base     modal.Props

	body      string
	rendered  string
	bodyWidth int

	modal   *modal.Model
	buttons *mouse.Handler
	focus   int

	width  int
	height int

	logger *slog.Logger
}

// New creates the screen with the modal hidden.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	body := opts.Body
	if body == "" {
		body = DefaultBody
	}

	defaults := DefaultModalState()
	if opts.Props.Direction.Valid() {
		defaults.Direction = opts.Props.Direction
	}
	defaults.CloseOnBackdropPress = opts.Props.CloseOnBackdropPress

	m := Model{
		keys:     newKeyMap(),
		defaults: defaults,
		state:    defaults,
		base:     opts.Props,
		body:     body,
		rendered: body,
		buttons:  mouse.NewHandler(),
		logger:   logger,
	}
	for i, dir := range buttonOrder {
		if dir == defaults.Direction {
			m.focus = i
		}
	}

	mopts := []modal.Option{modal.WithLogger(logger)}
	if opts.FPS > 0 {
		mopts = append(mopts, modal.WithFPS(opts.FPS))
	}
	mopts = append(mopts, opts.ModalOptions...)
	m.modal = modal.New(m.props(), mopts...)
	return m
}

// State returns what the screen currently asks of the modal.
func (m Model) State() ModalState { return m.state }

// Modal returns the owned modal.
func (m Model) Modal() *modal.Model { return m.modal }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.modal.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		cmd := m.modal.SetSize(msg.Width, msg.Height)
		if w := m.wrapWidth(); w != m.bodyWidth {
			m.bodyWidth = w
			return m, batch(cmd, renderBodyAsync(m.body, w))
		}
		return m, cmd

	case bodyRenderedMsg:
		if msg.width != m.bodyWidth {
			return m, nil
		}
		m.rendered = msg.content
		cmd := m.modal.SetProps(m.props())
		return m, batch(cmd, m.modal.SetSize(m.width, m.height))

	case closeRequestedMsg:
		return m.close()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.modal.Visible() {
			return m, m.modal.Update(msg)
		}
		return m.handleButtonMouse(msg)

	case anim.FrameMsg, anim.DoneMsg, modal.LayoutMsg:
		return m, m.modal.Update(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.modal.Visible() {
		if key.Matches(msg, m.keys.Close) {
			return m.close()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		return m.open(modal.Left)
	case key.Matches(msg, m.keys.Right):
		return m.open(modal.Right)
	case key.Matches(msg, m.keys.Top):
		return m.open(modal.Top)
	case key.Matches(msg, m.keys.Bottom):
		return m.open(modal.Bottom)
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % len(buttonOrder)
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + len(buttonOrder) - 1) % len(buttonOrder)
	case key.Matches(msg, m.keys.Press):
		return m.open(buttonOrder[m.focus])
	}
	return m, nil
}

func (m Model) handleButtonMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	hm := m.buttons.HitMap
	hm.Clear()
	for _, b := range m.buttonLayout() {
		hm.AddRect(b.dir.String(), b.rect.X, b.rect.Y, b.rect.W, b.rect.H, b.dir)
	}

	action := m.buttons.HandleMouse(msg)
	if action.Type != mouse.ActionRelease || action.Region == nil || action.Region.ID != action.PressRegion {
		return m, nil
	}
	dir, ok := action.Region.Data.(modal.Direction)
	if !ok {
		return m, nil
	}
	for i, d := range buttonOrder {
		if d == dir {
			m.focus = i
		}
	}
	return m.open(dir)
}

// open asks for the modal from dir.
func (m Model) open(dir modal.Direction) (tea.Model, tea.Cmd) {
	m.state = ModalState{
		Visible:              true,
		Direction:            dir,
		CloseOnBackdropPress: m.defaults.CloseOnBackdropPress,
	}
	m.logger.Debug("modal requested", "direction", dir)
	return m, m.modal.SetProps(m.props())
}

// close resets to the defaults, keeping the last direction.
func (m Model) close() (tea.Model, tea.Cmd) {
	if !m.state.Visible {
		return m, nil
	}
	dir := m.state.Direction
	m.state = m.defaults
	m.state.Direction = dir
	m.logger.Debug("modal dismissed", "direction", dir)
	return m, m.modal.SetProps(m.props())
}

func (m Model) props() modal.Props {
	p := m.base
	p.Visible = m.state.Visible
	p.Direction = m.state.Direction
	p.CloseOnBackdropPress = m.state.CloseOnBackdropPress
	p.OnClose = requestClose
	p.Content = m.rendered
	return p
}

// batch combines commands, returning a lone command unwrapped.
func batch(a, b tea.Cmd) tea.Cmd {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return tea.Batch(a, b)
}

// wrapWidth is the body wrap width for the narrowest container, the
// horizontal one.
func (m Model) wrapWidth() int {
	w := int(float64(m.width)*m.modal.Props().Flex) - 4
	return max(w, 10)
}
