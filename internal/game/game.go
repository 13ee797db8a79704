// Package game hosts the landing page in an ebiten window.
package game

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/hackpage/internal/audio"
	"github.com/iburimskiy/hackpage/internal/background"
	"github.com/iburimskiy/hackpage/internal/config"
	"github.com/iburimskiy/hackpage/internal/hero"
	"github.com/iburimskiy/hackpage/internal/host"
)

// Options configure a Game.
type Options struct {
	Seed      int64
	MusicPath string // overrides audio.path
}

// Game implements ebiten.Game.
type Game struct {
	cfg    *config.Config
	win    *host.Window
	bg     *background.Background
	hero   *hero.Hero
	player *audio.Player
	labels map[string]*ebiten.Image
	start  time.Time

	// surface reported by Layout, applied on the next Update
	layoutW, layoutH int
	scale            float64

	// input
	prevKey    map[ebiten.Key]bool
	cursorX    int
	cursorY    int
	cursorSeen bool
	hovered    int
	pressed    int

	// dialogs
	dialogs    chan dialogResult
	dialogOpen bool

	lastErr error
	closed  bool
}

// New builds the page. Nothing is drawn until ebiten reports a surface.
func New(cfg *config.Config, opts Options) (*Game, error) {
	bg, err := background.New(cfg, opts.Seed)
	if err != nil {
		return nil, err
	}
	h, err := hero.New(cfg.Hero)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		win:     host.NewWindow(),
		bg:      bg,
		hero:    h,
		player:  audio.NewPlayer(cfg.Audio.RingSize, cfg.Audio.Loop, cfg.Audio.Smoothing),
		labels:  map[string]*ebiten.Image{},
		start:   time.Now(),
		scale:   1,
		prevKey: map[ebiten.Key]bool{},
		hovered: -1,
		pressed: -1,
		dialogs: make(chan dialogResult, 1),
	}
	bg.SetLevelSource(g.player.Level)

	music := cfg.Audio.Path
	if opts.MusicPath != "" {
		music = opts.MusicPath
	}
	if music != "" {
		g.playSoundtrack(music)
	}
	return g, nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		paused := g.player.TogglePause()
		slog.Debug("soundtrack toggled", "paused", paused)
	}
	if justPressed(ebiten.KeyM) {
		g.pickSoundtrack()
	}
	g.pollDialogs()

	g.win.SetSurface(host.Surface{Width: g.layoutW, Height: g.layoutH, Scale: g.scale})
	if g.bg.State() == background.Uninitialized {
		g.bg.Mount(g.win)
	}
	g.hero.Layout(float64(g.layoutW)/g.scale, float64(g.layoutH)/g.scale)

	g.updatePointer()
	g.win.Advance(time.Since(g.start))
	return nil
}

// updatePointer forwards cursor moves to the window and handles hero clicks.
func (g *Game) updatePointer() {
	x, y := ebiten.CursorPosition()
	if !g.cursorSeen || x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY, g.cursorSeen = x, y, true
		g.win.MovePointer(float64(x), float64(y))
	}

	lx, ly := float64(x)/g.scale, float64(y)/g.scale
	g.hovered = -1
	for i, e := range g.hero.Elements() {
		if e.Clickable() && e.Rect.Contains(lx, ly) {
			g.hovered = i
			break
		}
	}

	if g.hovered >= 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = g.hovered
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressed >= 0 && g.pressed == g.hovered {
			g.activate(g.hero.Elements()[g.pressed])
		}
		g.pressed = -1
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.bg.Draw(canvas{dst: screen})
	g.drawHero(screen, time.Since(g.start).Seconds())
	g.drawStatusLine(screen)
}

func (g *Game) drawStatusLine(screen *ebiten.Image) {
	status := "M: soundtrack  Esc/Q: quit"
	if g.player.Playing() {
		status = "Space: pause  " + status
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, screen.Bounds().Dy()-20)
}

// Layout renders at device pixel density when crisp rendering is on.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if g.cfg.Window.Crisp {
		if m := ebiten.Monitor(); m != nil {
			scale = m.DeviceScaleFactor()
		}
	}
	if scale <= 0 {
		scale = 1
	}
	g.scale = scale
	g.layoutW = int(float64(outsideWidth) * scale)
	g.layoutH = int(float64(outsideHeight) * scale)
	return g.layoutW, g.layoutH
}

// Close tears the page down. It is safe to call more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.bg.Unmount()
	g.win.Unmount()
	g.player.Close()
	slog.Info("page closed", "uptime", formatDuration(time.Since(g.start)))
}
