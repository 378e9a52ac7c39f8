package modal

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/marcus/swipemodal/pkg/anim"
	"github.com/marcus/swipemodal/pkg/mouse"
)

// Phase is the lifecycle phase of a modal.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Hit region IDs.
const (
	regionContainer = "container"
	regionBackdrop  = "backdrop"
	regionContent   = "content"
)

// LayoutMsg carries the measured extent of a modal's content container. It
// is the first-layout event that starts the entrance animation.
type LayoutMsg struct {
	ID     string
	Extent Extent
}

// Model is a directional swipeable modal. It is driven entirely from the
// owning program's Update and is not safe for concurrent use.
type Model struct {
	id    string
	props Props

	phase Phase
	dir   Direction // latched for one open/close cycle

	extent  *Extent // nil until measured
	offsetX *anim.Value
	offsetY *anim.Value
	opacity *anim.Value

	backdropRevealed bool

	width  int
	height int

	mouse  *mouse.Handler
	logger *slog.Logger

	animOpts []anim.Option
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for transitions and ignored presses.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock sets the time source of the modal's animations.
func WithClock(c anim.Clock) Option {
	return func(m *Model) {
		m.animOpts = append(m.animOpts, anim.WithClock(c))
	}
}

// WithFPS sets the animation frame rate.
func WithFPS(fps int) Option {
	return func(m *Model) {
		m.animOpts = append(m.animOpts, anim.WithFPS(fps))
	}
}

// WithSize sets the initial screen size.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.width = width
		m.height = height
	}
}

// New creates a closed modal. If props.Visible is set the modal opens on
// Init.
func New(props Props, opts ...Option) *Model {
	m := &Model{
		id:     uuid.NewString(),
		props:  props.normalized(),
		dir:    Left,
		mouse:  mouse.NewHandler(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.offsetX = anim.NewValue(0, m.animOpts...)
	m.offsetY = anim.NewValue(0, m.animOpts...)
	m.opacity = anim.NewValue(0, m.animOpts...)
	return m
}

// Init opens the modal when it was created visible.
func (m *Model) Init() tea.Cmd {
	if m.props.Visible {
		return m.open()
	}
	return nil
}

// ID returns the instance identifier carried by its LayoutMsg.
func (m *Model) ID() string { return m.id }

// Props returns the current props.
func (m *Model) Props() Props { return m.props }

// Phase returns the lifecycle phase.
func (m *Model) Phase() Phase { return m.phase }

// Visible reports whether the modal is mounted. It stays true through the
// exit animation.
func (m *Model) Visible() bool { return m.phase != PhaseClosed }

// Direction returns the direction of the current cycle.
func (m *Model) Direction() Direction { return m.dir }

// Extent returns the measured content extent, if any.
func (m *Model) Extent() (Extent, bool) {
	if m.extent == nil {
		return Extent{}, false
	}
	return *m.extent, true
}

// Offset returns the live translation of the content.
func (m *Model) Offset() (x, y float64) {
	return m.offsetX.Get(), m.offsetY.Get()
}

// Opacity returns the content opacity, 0 or 1.
func (m *Model) Opacity() float64 { return m.opacity.Get() }

// BackdropRevealed reports whether the backdrop is visible and pressable.
func (m *Model) BackdropRevealed() bool { return m.backdropRevealed }

// Animating reports whether an entrance or exit animation is in flight.
func (m *Model) Animating() bool {
	return m.offsetX.IsAnimating() || m.offsetY.IsAnimating()
}

// SetSize sets the screen size the modal lays out against. A measured modal
// is re-measured; during an exit the returned command retargets it to the new
// off-screen position.
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	if m.phase == PhaseClosed || m.extent == nil {
		return nil
	}

	ext := m.measureNow()
	m.extent = &ext
	if m.phase != PhaseClosing {
		return nil
	}
	target := m.dir.Offscreen(m.extent)
	if v := m.axisValue(); v.IsAnimating() && v.Target() != target {
		return v.AnimateTo(target, m.props.Duration)
	}
	return nil
}

// SetProps applies new props. A change of Visible starts the matching
// transition and returns its command.
func (m *Model) SetProps(p Props) tea.Cmd {
	prev := m.props
	m.props = p.normalized()

	switch {
	case p.Visible && !prev.Visible:
		return m.open()
	case !p.Visible && prev.Visible:
		return m.close()
	}
	return nil
}

// Update handles layout, animation and mouse messages.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height)

	case LayoutMsg:
		return m.handleLayout(msg)

	case anim.FrameMsg:
		if cmd := m.offsetX.Update(msg); cmd != nil {
			return cmd
		}
		return m.offsetY.Update(msg)

	case anim.DoneMsg:
		return m.handleDone(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return nil
}

// axisValue returns the offset cell driven by the current direction.
func (m *Model) axisValue() *anim.Value {
	if m.dir.Axis() == Vertical {
		return m.offsetY
	}
	return m.offsetX
}

func (m *Model) open() tea.Cmd {
	switch m.phase {
	case PhaseOpening, PhaseOpen:
		return nil

	case PhaseClosing:
		if m.extent != nil {
			// Turn the exit around from wherever it is.
			m.phase = PhaseOpening
			m.logger.Debug("modal reopening", "id", m.id, "direction", m.dir)
			return m.axisValue().AnimateTo(0, m.props.Duration)
		}
		m.axisValue().Stop()
	}

	if !m.props.Direction.Valid() {
		m.logger.Warn("modal not opened: invalid direction", "id", m.id, "direction", m.props.Direction)
		return nil
	}

	m.phase = PhaseOpening
	m.dir = m.props.Direction
	m.extent = nil
	m.backdropRevealed = false
	m.offsetX.Set(0)
	m.offsetY.Set(0)
	m.opacity.Set(0)
	m.mouse.Reset()
	m.logger.Debug("modal opening", "id", m.id, "direction", m.dir)
	return m.measure()
}

func (m *Model) close() tea.Cmd {
	if m.phase == PhaseClosed || m.phase == PhaseClosing {
		return nil
	}

	m.phase = PhaseClosing
	m.backdropRevealed = false
	m.mouse.Reset()

	v := m.axisValue()
	target := m.dir.Offscreen(m.extent)
	m.logger.Debug("modal closing", "id", m.id, "direction", m.dir, "from", v.Get(), "to", target)
	return v.AnimateTo(target, m.props.Duration)
}

// measure renders the container at its current size and reports the result
// as a LayoutMsg.
func (m *Model) measure() tea.Cmd {
	id := m.id
	rendered := m.renderContainer()
	return func() tea.Msg {
		return LayoutMsg{
			ID:     id,
			Extent: Extent{Width: lipgloss.Width(rendered), Height: lipgloss.Height(rendered)},
		}
	}
}

func (m *Model) measureNow() Extent {
	rendered := m.renderContainer()
	return Extent{Width: lipgloss.Width(rendered), Height: lipgloss.Height(rendered)}
}

func (m *Model) handleLayout(msg LayoutMsg) tea.Cmd {
	if msg.ID != m.id || m.phase != PhaseOpening || m.extent != nil {
		return nil
	}

	ext := msg.Extent
	m.extent = &ext

	v := m.axisValue()
	v.Set(m.dir.Offscreen(m.extent))
	m.opacity.Set(1)
	m.logger.Debug("modal measured", "id", m.id, "width", ext.Width, "height", ext.Height)
	return v.AnimateTo(0, m.props.Duration)
}

func (m *Model) handleDone(msg anim.DoneMsg) tea.Cmd {
	if !m.axisValue().Completed(msg) {
		return nil
	}

	switch m.phase {
	case PhaseOpening:
		if m.extent == nil {
			return nil
		}
		m.phase = PhaseOpen
		m.backdropRevealed = true
		m.logger.Debug("modal open", "id", m.id)
	case PhaseClosing:
		m.teardown()
		m.logger.Debug("modal closed", "id", m.id)
	}
	return nil
}

func (m *Model) teardown() {
	m.offsetX.Set(0)
	m.offsetY.Set(0)
	m.extent = nil
	m.opacity.Set(0)
	m.backdropRevealed = false
	m.mouse.Reset()
	m.phase = PhaseClosed
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.phase != PhaseOpening && m.phase != PhaseOpen {
		return nil
	}

	m.registerRegions()
	action := m.mouse.HandleMouse(msg)
	if action.Type != mouse.ActionRelease || action.PressRegion == "" {
		return nil
	}

	if m.props.SwipeToClose {
		end := mouse.Point{X: action.X, Y: action.Y}
		threshold := m.dir.SwipeCells(m.props.SwipeThreshold, Extent{Width: m.width, Height: m.height})
		if m.dir.Dismisses(action.Origin, end, threshold) {
			return m.requestClose("swipe")
		}
	}

	if action.PressRegion == regionBackdrop && action.Region != nil && action.Region.ID == regionBackdrop {
		if !m.props.CloseOnBackdropPress {
			m.logger.Info("backdrop pressed, close on backdrop press disabled", "id", m.id)
			return nil
		}
		return m.requestClose("backdrop")
	}
	return nil
}

// registerRegions rebuilds the hit map from the current layout. The backdrop
// only takes presses once revealed.
func (m *Model) registerRegions() {
	hm := m.mouse.HitMap
	hm.Clear()
	hm.AddRect(regionContainer, 0, 0, m.width, m.height, nil)
	for _, el := range m.Elements() {
		switch el.Kind {
		case ElementBackdrop:
			if m.backdropRevealed {
				hm.AddRect(regionBackdrop, el.Rect.X, el.Rect.Y, el.Rect.W, el.Rect.H, nil)
			}
		case ElementContent:
			hm.AddRect(regionContent, el.Rect.X, el.Rect.Y, el.Rect.W, el.Rect.H, nil)
		}
	}
}

func (m *Model) requestClose(reason string) tea.Cmd {
	m.logger.Debug("modal close requested", "id", m.id, "reason", reason)
	if m.props.OnClose == nil {
		return nil
	}
	return m.props.OnClose()
}
