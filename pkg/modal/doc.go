// Package modal provides a directional swipeable modal for Bubble Tea
// programs.
//
// The modal slides in from one edge of the screen, dims the rest of the
// screen with a backdrop once it has docked, and slides back out when the
// owner stops requesting it. A press-and-drag across the modal toward its
// edge, or a press on the backdrop, asks the owner to close it.
//
// # Quick Start
//
//	props := modal.DefaultProps()
//	props.Direction = modal.Bottom
//	props.Content = "Hello"
//	props.OnClose = func() tea.Cmd { return closeRequested }
//	m := modal.New(props)
//
//	// open
//	props.Visible = true
//	cmd := m.SetProps(props)
//
//	// In Update(): forward everything while the modal is visible
//	cmd = m.Update(msg)
//
//	// In View():
//	screen = m.Overlay(screen)
//
// # Lifecycle
//
// A modal moves through four phases:
//
//	Closed ──► Opening ──► Open ──► Closing ──► Closed
//
// Opening starts when Props.Visible turns true. The content is measured
// first (a [LayoutMsg]), then placed just outside its edge and animated to
// rest. The backdrop is revealed only when that animation completes.
// Closing hides the backdrop at once, animates the content back out, then
// resets offsets, opacity and the measured extent.
//
// The modal never closes itself. OnClose is only a request; the owner closes
// the modal by passing props with Visible set to false.
//
// # Options
//
//   - WithLogger(l *slog.Logger) - transition and backdrop logging
//   - WithClock(c anim.Clock) - time source for animations
//   - WithFPS(fps int) - animation frame rate
//   - WithSize(w, h int) - initial screen size
package modal
