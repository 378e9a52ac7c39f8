// Package anim provides animated value cells for Bubble Tea components.
//
// A [Value] holds a single float64. It can be set immediately with
// [Value.Set] or driven toward a target with [Value.AnimateTo], which returns
// a [tea.Cmd] that starts a frame loop. Frames arrive back in the program's
// Update as [FrameMsg] and must be forwarded to [Value.Update]. When the run
// finishes, Update returns a command producing a single [DoneMsg].
//
// # Quick Start
//
//	v := anim.NewValue(0)
//
//	// start a run
//	cmd := v.AnimateTo(-30, 100*time.Millisecond)
//
//	// in Update
//	case anim.FrameMsg:
//	    return m, v.Update(msg)
//	case anim.DoneMsg:
//	    if v.Completed(msg) {
//	        // the run finished
//	    }
//
// Every call to Set, Stop or AnimateTo starts a new run tag. Frames and
// completions carrying an older tag are ignored, so a run can be cancelled at
// any point without stray completions.
package anim
