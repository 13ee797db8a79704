package host

import (
	"testing"
	"time"
)

func TestSurfaceUnavailableUntilMounted(t *testing.T) {
	w := NewWindow()
	if _, ok := w.Surface(); ok {
		t.Fatal("expected no surface before SetSurface")
	}
	w.SetSurface(Surface{Width: 0, Height: 600, Scale: 1})
	if _, ok := w.Surface(); ok {
		t.Fatal("zero-width surface reported as available")
	}
	w.SetSurface(Surface{Width: 800, Height: 600, Scale: 1})
	if s, ok := w.Surface(); !ok || s.Width != 800 {
		t.Fatalf("expected mounted 800px surface, got %+v ok=%v", s, ok)
	}
	w.Unmount()
	if _, ok := w.Surface(); ok {
		t.Fatal("surface still available after Unmount")
	}
}

func TestFramesRunOnce(t *testing.T) {
	w := NewWindow()
	calls := 0
	w.RequestFrame(func(time.Duration) { calls++ })

	if n := w.Advance(16 * time.Millisecond); n != 1 {
		t.Fatalf("expected 1 frame, ran %d", n)
	}
	w.Advance(32 * time.Millisecond)
	if calls != 1 {
		t.Fatalf("expected callback to run once, ran %d times", calls)
	}
}

func TestFrameRequestedInsideCallbackRunsNextAdvance(t *testing.T) {
	w := NewWindow()
	var stamps []time.Duration
	var loop FrameFunc
	loop = func(now time.Duration) {
		stamps = append(stamps, now)
		w.RequestFrame(loop)
	}
	w.RequestFrame(loop)

	for i := 1; i <= 3; i++ {
		if n := w.Advance(time.Duration(i) * time.Second); n != 1 {
			t.Fatalf("advance %d ran %d frames, want 1", i, n)
		}
	}
	if len(stamps) != 3 || stamps[2] != 3*time.Second {
		t.Fatalf("unexpected frame timestamps %v", stamps)
	}
	if w.Pending() != 1 {
		t.Fatalf("expected the next frame queued, pending=%d", w.Pending())
	}
}

func TestCancelFrame(t *testing.T) {
	w := NewWindow()
	ran := false
	h := w.RequestFrame(func(time.Duration) { ran = true })
	w.CancelFrame(h)
	w.CancelFrame(h)
	w.CancelFrame(Handle(999))

	if n := w.Advance(time.Second); n != 0 || ran {
		t.Fatalf("cancelled frame ran (n=%d, ran=%v)", n, ran)
	}
}

func TestListenersAddRemove(t *testing.T) {
	w := NewWindow()
	var gotX, gotY float64
	var sizes []Surface
	removePtr := w.OnPointerMove(func(x, y float64) { gotX, gotY = x, y })
	removeResize := w.OnResize(func(s Surface) { sizes = append(sizes, s) })
	if w.Listeners() != 2 {
		t.Fatalf("expected 2 listeners, got %d", w.Listeners())
	}

	w.MovePointer(10, 20)
	w.SetSurface(Surface{Width: 100, Height: 50, Scale: 1})
	w.SetSurface(Surface{Width: 100, Height: 50, Scale: 1})
	if gotX != 10 || gotY != 20 {
		t.Errorf("pointer listener got (%f,%f)", gotX, gotY)
	}
	if len(sizes) != 1 {
		t.Errorf("expected one resize notification for an unchanged surface, got %d", len(sizes))
	}

	removePtr()
	removeResize()
	removePtr()
	if w.Listeners() != 0 {
		t.Fatalf("expected no listeners, got %d", w.Listeners())
	}
	w.MovePointer(99, 99)
	if gotX != 10 {
		t.Error("removed pointer listener still called")
	}
}
