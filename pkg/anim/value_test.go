package anim

import (
	"math"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestValue(initial float64) (*Value, *fakeClock) {
	clk := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewValue(initial, WithClock(clk), WithCurve(Linear)), clk
}

func TestAnimateToProgress(t *testing.T) {
	v, clk := newTestValue(0)

	if cmd := v.AnimateTo(100, 100*time.Millisecond); cmd == nil {
		t.Fatal("expected frame command")
	}
	if !v.IsAnimating() {
		t.Fatal("expected value to be animating")
	}

	cmd := v.Update(FrameMsg{ID: v.ID(), Time: clk.now.Add(50 * time.Millisecond), tag: v.tag})
	if cmd == nil {
		t.Fatal("expected next frame command mid-run")
	}
	if got := v.Get(); math.Abs(got-50) > 1e-9 {
		t.Errorf("value at 50%% = %v, want 50", got)
	}

	cmd = v.Update(FrameMsg{ID: v.ID(), Time: clk.now.Add(100 * time.Millisecond), tag: v.tag})
	if cmd == nil {
		t.Fatal("expected done command at end of run")
	}
	done, ok := cmd().(DoneMsg)
	if !ok {
		t.Fatalf("expected DoneMsg, got %T", cmd())
	}
	if !v.Completed(done) {
		t.Error("expected Completed to accept the run's DoneMsg")
	}
	if v.Get() != 100 {
		t.Errorf("final value = %v, want 100", v.Get())
	}
	if v.IsAnimating() {
		t.Error("expected run to be finished")
	}
}

func TestFrameAfterCompletionIgnored(t *testing.T) {
	v, clk := newTestValue(0)
	v.AnimateTo(10, 100*time.Millisecond)
	v.Update(v.Frame(clk.now.Add(time.Second)))

	if cmd := v.Update(v.Frame(clk.now.Add(2 * time.Second))); cmd != nil {
		t.Error("expected no command after run finished")
	}
}

func TestStaleFrameIgnored(t *testing.T) {
	v, clk := newTestValue(0)
	v.AnimateTo(100, 100*time.Millisecond)
	oldTag := v.tag

	v.AnimateTo(-100, 100*time.Millisecond)

	if cmd := v.Update(FrameMsg{ID: v.ID(), Time: clk.now.Add(50 * time.Millisecond), tag: oldTag}); cmd != nil {
		t.Error("expected stale frame to be ignored")
	}
	if v.Get() != 0 {
		t.Errorf("value moved on stale frame: %v", v.Get())
	}
}

func TestUntaggedFrameIgnored(t *testing.T) {
	v, clk := newTestValue(0)
	v.AnimateTo(100, 100*time.Millisecond)

	if cmd := v.Update(FrameMsg{ID: v.ID(), Time: clk.now.Add(50 * time.Millisecond)}); cmd != nil {
		t.Error("expected frame without a run tag to be ignored")
	}
	if v.Get() != 0 {
		t.Errorf("value moved on untagged frame: %v", v.Get())
	}

	if cmd := v.Update(v.Frame(clk.now.Add(50 * time.Millisecond))); cmd == nil {
		t.Error("expected frame for the current run to advance it")
	}
}

func TestFrameForOtherValueIgnored(t *testing.T) {
	v, clk := newTestValue(0)
	other := NewValue(0)
	v.AnimateTo(100, 100*time.Millisecond)

	if cmd := v.Update(other.Frame(clk.now.Add(50 * time.Millisecond))); cmd != nil {
		t.Error("expected frame for another value to be ignored")
	}
}

func TestSetCancelsCompletion(t *testing.T) {
	v, clk := newTestValue(0)
	v.AnimateTo(100, 100*time.Millisecond)
	cmd := v.Update(v.Frame(clk.now.Add(100 * time.Millisecond)))
	done := cmd().(DoneMsg)

	v.Set(5)

	if v.Completed(done) {
		t.Error("expected completion of a superseded run to be rejected")
	}
	if v.Get() != 5 {
		t.Errorf("value = %v, want 5", v.Get())
	}
}

func TestStopHoldsInterpolatedValue(t *testing.T) {
	v, clk := newTestValue(0)
	v.AnimateTo(-40, 100*time.Millisecond)
	v.Update(v.Frame(clk.now.Add(25 * time.Millisecond)))

	v.Stop()

	if v.IsAnimating() {
		t.Error("expected Stop to end the run")
	}
	if got := v.Get(); math.Abs(got+10) > 1e-9 {
		t.Errorf("value after stop = %v, want -10", got)
	}
}

func TestZeroDurationCompletesImmediately(t *testing.T) {
	v, _ := newTestValue(3)

	cmd := v.AnimateTo(3, 0)
	if cmd == nil {
		t.Fatal("expected done command")
	}
	if done, ok := cmd().(DoneMsg); !ok || !v.Completed(done) {
		t.Error("expected immediate completion")
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	curves := map[string]Curve{
		"ease-in-out": EaseInOut,
		"ease-out":    EaseOut,
	}
	for name, c := range curves {
		if c(0) != 0 || c(1) != 1 {
			t.Errorf("%s: endpoints = (%v, %v), want (0, 1)", name, c(0), c(1))
		}
		prev := 0.0
		for i := 1; i <= 20; i++ {
			got := c(float64(i) / 20)
			if got < prev-1e-9 {
				t.Errorf("%s: not monotonic at step %d (%v < %v)", name, i, got, prev)
			}
			prev = got
		}
	}
}
