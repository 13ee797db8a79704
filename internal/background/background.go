// Package background is the animated backdrop of the landing page: gradient,
// grid, floating blobs, pointer glow and the interactive particle field.
//
// A Background is mounted on a host.Window, drives itself from the window's
// frame scheduler and must be unmounted when the view goes away.
package background

import (
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	"github.com/iburimskiy/hackpage/internal/config"
	"github.com/iburimskiy/hackpage/internal/effects"
	"github.com/iburimskiy/hackpage/internal/host"
	"github.com/iburimskiy/hackpage/internal/particles"
)

// State is the lifecycle of a Background.
type State int

const (
	Uninitialized State = iota
	Running
	TornDown
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case TornDown:
		return "torn down"
	}
	return "unknown"
}

// Canvas is what the backdrop draws on. Coordinates are device pixels and
// colours are premultiplied.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.RGBA)
	FillCircle(x, y, r float64, c color.RGBA)
	Line(x0, y0, x1, y1, width float64, c color.RGBA)
}

// Background owns the particle field and the decorative layers for one window.
type Background struct {
	cfg    config.EffectsConfig
	field  *particles.Field
	blobs  *effects.Blobs
	glow   effects.Glow
	grid   effects.Grid
	glowSt effects.GlowState

	level func() float64

	win      *host.Window
	handle   host.Handle
	removers []func()
	state    State

	surface   host.Surface
	pointer   particles.Pointer
	mountedAt time.Duration
	elapsed   float64

	frames uint64
	draws  uint64
}

// New builds an unmounted background.
func New(cfg *config.Config, seed int64) (*Background, error) {
	params, err := cfg.Particles.Params()
	if err != nil {
		return nil, err
	}
	tps := cfg.Window.TPS
	if tps <= 0 {
		tps = 60
	}
	return &Background{
		cfg:   cfg.Effects,
		field: particles.NewField(params, rand.New(rand.NewSource(seed))),
		blobs: effects.NewBlobs(effects.DefaultBlobs, seed),
		glow:  effects.NewGlow(tps, cfg.Effects.GlowFrequency, cfg.Effects.GlowDamping),
		grid:  effects.Grid{Period: cfg.Effects.GridPeriod},
	}, nil
}

// SetLevelSource installs a loudness source in [0,1] that makes the glow breathe.
func (b *Background) SetLevelSource(fn func() float64) { b.level = fn }

// State returns the lifecycle state.
func (b *Background) State() State { return b.state }

// Field exposes the particle field.
func (b *Background) Field() *particles.Field { return b.field }

// Frames returns how many update callbacks have run.
func (b *Background) Frames() uint64 { return b.frames }

// Draws returns how many times Draw rendered something.
func (b *Background) Draws() uint64 { return b.draws }

// Pointer returns the last pointer position in logical pixels.
func (b *Background) Pointer() particles.Pointer { return b.pointer }

// Mount starts the background on win. When the window has no usable surface
// the background stays uninitialized: nothing is set up or scheduled.
func (b *Background) Mount(win *host.Window) bool {
	if b.state != Uninitialized {
		return b.state == Running
	}
	s, ok := win.Surface()
	if !ok {
		slog.Debug("background: no drawing surface, skipping")
		return false
	}

	b.win = win
	b.mountedAt = win.Now()
	b.resize(s)
	b.removers = append(b.removers,
		win.OnResize(b.resize),
		win.OnPointerMove(b.movePointer),
	)
	b.state = Running
	b.handle = win.RequestFrame(b.frame)

	slog.Info("background mounted",
		"width", s.Width, "height", s.Height, "scale", s.Scale,
		"particles", b.field.Len(), "boundary", b.field.Params().Boundary)
	return true
}

// Unmount cancels the pending frame and removes every listener. It is safe to call twice.
func (b *Background) Unmount() {
	if b.state != Running {
		b.state = TornDown
		return
	}
	if b.handle != 0 {
		b.win.CancelFrame(b.handle)
		b.handle = 0
	}
	for _, remove := range b.removers {
		remove()
	}
	b.removers = nil
	b.state = TornDown
	slog.Info("background unmounted", "frames", b.frames)
}

func (b *Background) resize(s host.Surface) {
	if s.Scale <= 0 {
		s.Scale = 1
	}
	b.surface = s
	w, h := logical(s)
	b.field.Reset(w, h)
	if b.state == Running {
		slog.Debug("background resized", "width", s.Width, "height", s.Height, "particles", b.field.Len())
	}
}

func (b *Background) movePointer(x, y float64) {
	scale := b.surface.Scale
	if scale <= 0 {
		scale = 1
	}
	b.pointer = particles.Pointer{X: x / scale, Y: y / scale, Known: true}
}

func (b *Background) frame(now time.Duration) {
	b.handle = 0
	if b.state != Running {
		return
	}
	b.Step(now)
	b.handle = b.win.RequestFrame(b.frame)
}

// Step advances the animation to now. The frame loop calls it; tests may too.
func (b *Background) Step(now time.Duration) {
	b.elapsed = (now - b.mountedAt).Seconds()
	b.field.Step(particles.FrameContext{Pointer: b.pointer})

	boost := 0.0
	if b.level != nil {
		boost = b.level()
	}
	b.glowSt = b.glow.Step(b.glowSt, b.pointer.X, b.pointer.Y, b.pointer.Known, boost)
	b.frames++
}

// Elapsed returns seconds since mount as of the last frame.
func (b *Background) Elapsed() float64 { return b.elapsed }

func logical(s host.Surface) (int, int) {
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	return int(float64(s.Width) / scale), int(float64(s.Height) / scale)
}
