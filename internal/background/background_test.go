package background

import (
	"image/color"
	"testing"
	"time"

	"github.com/iburimskiy/hackpage/internal/config"
	"github.com/iburimskiy/hackpage/internal/host"
)

const frame = time.Second / 60

type segment struct {
	x0, y0, x1, y1 float64
	c              color.RGBA
}

type recorder struct {
	rects, circles, lines int
	segments              []segment
}

func (r *recorder) FillRect(x, y, w, h float64, c color.RGBA)  { r.rects++ }
func (r *recorder) FillCircle(x, y, rad float64, c color.RGBA) { r.circles++ }
func (r *recorder) Line(x0, y0, x1, y1, width float64, c color.RGBA) {
	r.lines++
	r.segments = append(r.segments, segment{x0, y0, x1, y1, c})
}

func newBackground(t *testing.T) *Background {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	bg, err := New(cfg, 99)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return bg
}

func TestMountWithoutSurfaceIsNoop(t *testing.T) {
	bg := newBackground(t)
	win := host.NewWindow()

	if bg.Mount(win) {
		t.Fatal("mount succeeded without a surface")
	}
	if bg.State() != Uninitialized {
		t.Errorf("expected uninitialized, got %v", bg.State())
	}
	if win.Pending() != 0 || win.Listeners() != 0 {
		t.Errorf("no-op mount left work behind: pending=%d listeners=%d", win.Pending(), win.Listeners())
	}
	if bg.Field().Len() != 0 {
		t.Errorf("particles created without a surface: %d", bg.Field().Len())
	}

	rec := &recorder{}
	bg.Draw(rec)
	if rec.circles+rec.rects+rec.lines != 0 {
		t.Error("unmounted background drew something")
	}
}

func TestMountRunsFrames(t *testing.T) {
	bg := newBackground(t)
	win := host.NewWindow()
	win.SetSurface(host.Surface{Width: 1000, Height: 800, Scale: 1})

	if !bg.Mount(win) {
		t.Fatal("mount failed")
	}
	if bg.State() != Running || bg.Field().Len() != 100 {
		t.Fatalf("unexpected state %v with %d particles", bg.State(), bg.Field().Len())
	}
	for i := 1; i <= 5; i++ {
		win.Advance(time.Duration(i) * frame)
	}
	if bg.Frames() != 5 {
		t.Errorf("expected 5 frames, got %d", bg.Frames())
	}

	rec := &recorder{}
	bg.Draw(rec)
	if rec.circles < 100 {
		t.Errorf("expected at least one circle per particle, got %d", rec.circles)
	}
	if bg.Draws() != 1 {
		t.Errorf("expected 1 draw, got %d", bg.Draws())
	}
}

func TestGradientRunsCornerToCorner(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Effects.Grid, cfg.Effects.Blobs, cfg.Effects.Glow = false, false, false
	bg, err := New(cfg, 3)
	if err != nil {
		t.Fatal(err)
	}
	win := host.NewWindow()
	win.SetSurface(host.Surface{Width: 600, Height: 400, Scale: 1})
	bg.Mount(win)
	win.Advance(3 * time.Second)

	rec := &recorder{}
	bg.Draw(rec)
	if len(rec.segments) == 0 {
		t.Fatal("no gradient drawn after the fade in")
	}
	for _, s := range rec.segments {
		if s.x0+s.y0 != s.x1+s.y1 {
			t.Fatalf("gradient stroke is not an anti-diagonal: %+v", s)
		}
	}
	first, last := rec.segments[0], rec.segments[len(rec.segments)-1]
	if first.x0+first.y0 > 10 || last.x0+last.y0 < 990 {
		t.Errorf("gradient does not span the diagonal: first %+v last %+v", first, last)
	}
	// Purple at the top-left corner, cyan at the bottom-right one.
	if first.c.R <= first.c.B/2 || last.c.G <= last.c.R {
		t.Errorf("unexpected corner colours: top-left %v bottom-right %v", first.c, last.c)
	}
}

func TestTeardownStopsFrames(t *testing.T) {
	bg := newBackground(t)
	win := host.NewWindow()
	win.SetSurface(host.Surface{Width: 800, Height: 600, Scale: 1})
	bg.Mount(win)

	// Exactly one frame is scheduled by Mount; tear down before it runs.
	if win.Pending() != 1 {
		t.Fatalf("expected one scheduled frame, got %d", win.Pending())
	}
	bg.Unmount()

	for i := 1; i <= 10; i++ {
		win.Advance(time.Duration(i) * frame)
	}
	if bg.Frames() != 0 {
		t.Errorf("frame callback ran %d times after teardown", bg.Frames())
	}
	rec := &recorder{}
	bg.Draw(rec)
	if bg.Draws() != 0 || rec.circles != 0 {
		t.Error("draw ran after teardown")
	}
	if win.Pending() != 0 || win.Listeners() != 0 {
		t.Errorf("teardown leaked: pending=%d listeners=%d", win.Pending(), win.Listeners())
	}
	if bg.State() != TornDown {
		t.Errorf("expected torn down, got %v", bg.State())
	}

	bg.Unmount()
	if bg.Mount(win) {
		t.Error("a torn down background must not remount")
	}
}

func TestTeardownAfterRunning(t *testing.T) {
	bg := newBackground(t)
	win := host.NewWindow()
	win.SetSurface(host.Surface{Width: 800, Height: 600, Scale: 1})
	bg.Mount(win)
	win.Advance(frame)
	win.Advance(2 * frame)
	bg.Unmount()
	win.Advance(3 * frame)
	if bg.Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", bg.Frames())
	}
}

func TestResizeReinitializes(t *testing.T) {
	bg := newBackground(t)
	win := host.NewWindow()
	win.SetSurface(host.Surface{Width: 1400, Height: 900, Scale: 1})
	bg.Mount(win)
	if bg.Field().Len() != 140 {
		t.Fatalf("expected 140 particles, got %d", bg.Field().Len())
	}

	win.SetSurface(host.Surface{Width: 400, Height: 300, Scale: 1})
	if bg.Field().Len() != 40 {
		t.Fatalf("expected 40 particles after resize, got %d", bg.Field().Len())
	}
	if !bg.Field().InBounds() {
		t.Error("particles outside the resized surface")
	}
}

func TestDeviceScale(t *testing.T) {
	bg := newBackground(t)
	win := host.NewWindow()
	win.SetSurface(host.Surface{Width: 2000, Height: 1600, Scale: 2})
	bg.Mount(win)

	// Density is computed on logical pixels.
	if bg.Field().Len() != 100 {
		t.Fatalf("expected 100 particles at 2x, got %d", bg.Field().Len())
	}
	win.MovePointer(400, 300)
	if p := bg.Pointer(); !p.Known || p.X != 200 || p.Y != 150 {
		t.Errorf("pointer not converted to logical pixels: %+v", p)
	}
}

func TestEndToEndSixtyFrames(t *testing.T) {
	bg := newBackground(t)
	win := host.NewWindow()
	win.SetSurface(host.Surface{Width: 1000, Height: 800, Scale: 1})
	bg.Mount(win)

	n := bg.Field().Len()
	if n != 100 || n > 150 {
		t.Fatalf("expected 100 particles within the cap of 150, got %d", n)
	}
	for i := 0; i < 60; i++ {
		// Circle the pointer around the centre of the surface.
		x := 500 + 300*float64(i%20-10)/10
		y := 400 + 200*float64((i+5)%20-10)/10
		win.MovePointer(x, y)
		win.Advance(time.Duration(i+1) * frame)
		if !bg.Field().InBounds() {
			t.Fatalf("particle left the surface on frame %d", i)
		}
	}
	if bg.Frames() != 60 {
		t.Errorf("expected 60 frames, got %d", bg.Frames())
	}
}

func TestLevelSourceFeedsGlow(t *testing.T) {
	bg := newBackground(t)
	calls := 0
	bg.SetLevelSource(func() float64 { calls++; return 1 })
	win := host.NewWindow()
	win.SetSurface(host.Surface{Width: 800, Height: 600, Scale: 1})
	bg.Mount(win)
	win.MovePointer(100, 100)
	win.Advance(frame)
	if calls != 1 {
		t.Errorf("expected level source polled once per frame, got %d", calls)
	}
}
