package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// DefaultFPS is the frame rate of a Value created without WithFPS.
const DefaultFPS = 60

// FrameMsg advances the running animation of the Value with the matching ID.
type FrameMsg struct {
	ID   string
	Time time.Time
	tag  int
}

// DoneMsg reports that a run reached its target. Exactly one DoneMsg is
// produced per run that is not cancelled.
type DoneMsg struct {
	ID  string
	tag int
}

// Value is an animated scalar cell. It is owned by a single component and is
// only touched from that component's Update.
type Value struct {
	id    string
	value float64

	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	running  bool
	tag      int

	curve Curve
	clock Clock
	fps   int
}

// Option configures a Value.
type Option func(*Value)

// WithClock sets the time source used to stamp the start of a run.
func WithClock(c Clock) Option {
	return func(v *Value) {
		if c != nil {
			v.clock = c
		}
	}
}

// WithCurve sets the easing curve.
func WithCurve(c Curve) Option {
	return func(v *Value) {
		if c != nil {
			v.curve = c
		}
	}
}

// WithFPS sets the frame rate of the frame loop.
func WithFPS(fps int) Option {
	return func(v *Value) {
		if fps > 0 {
			v.fps = fps
		}
	}
}

// NewValue creates a cell holding initial.
func NewValue(initial float64, opts ...Option) *Value {
	v := &Value{
		id:    uuid.NewString(),
		value: initial,
		curve: EaseInOut,
		clock: SystemClock(),
		fps:   DefaultFPS,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ID returns the identifier carried by this cell's frame and done messages.
func (v *Value) ID() string {
	return v.id
}

// Get returns the current value.
func (v *Value) Get() float64 {
	return v.value
}

// Target returns the target of the current or last run.
func (v *Value) Target() float64 {
	return v.to
}

// IsAnimating reports whether a run is in flight.
func (v *Value) IsAnimating() bool {
	return v.running
}

// Set cancels any run and jumps to x.
func (v *Value) Set(x float64) {
	v.Stop()
	v.value = x
	v.to = x
}

// Stop cancels the current run, leaving the value where it is. Pending frames
// and completions of the cancelled run are ignored.
func (v *Value) Stop() {
	v.running = false
	v.tag++
}

// AnimateTo starts a run from the current value to target over d and returns
// the command driving it. A run already in flight is cancelled first.
func (v *Value) AnimateTo(target float64, d time.Duration) tea.Cmd {
	v.tag++
	v.from = v.value
	v.to = target
	v.duration = d
	v.start = v.clock.Now()
	v.running = true

	if d <= 0 {
		return v.finish()
	}
	return v.nextFrame()
}

// Update advances the cell on a matching FrameMsg. It returns the next frame
// command while running and a DoneMsg command when the run completes.
func (v *Value) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != v.id || !v.running {
		return nil
	}
	if frame.tag != v.tag {
		return nil
	}

	progress := float64(frame.Time.Sub(v.start)) / float64(v.duration)
	if progress >= 1 {
		return v.finish()
	}
	if progress < 0 {
		progress = 0
	}
	v.value = v.from + (v.to-v.from)*v.curve(progress)
	return v.nextFrame()
}

// Frame returns the frame message for the current run at time t. The frame
// loop builds these itself; Frame lets callers step a run by hand.
func (v *Value) Frame(t time.Time) FrameMsg {
	return FrameMsg{ID: v.id, Time: t, tag: v.tag}
}

// Completed reports whether msg is the completion of this cell's latest run.
func (v *Value) Completed(msg DoneMsg) bool {
	return msg.ID == v.id && msg.tag == v.tag && !v.running
}

func (v *Value) finish() tea.Cmd {
	v.value = v.to
	v.running = false
	done := DoneMsg{ID: v.id, tag: v.tag}
	return func() tea.Msg {
		return done
	}
}

func (v *Value) nextFrame() tea.Cmd {
	id, tag := v.id, v.tag
	return tea.Tick(time.Second/time.Duration(v.fps), func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t, tag: tag}
	})
}
