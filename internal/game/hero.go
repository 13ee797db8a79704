package game

import (
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/hackpage/internal/effects"
	"github.com/iburimskiy/hackpage/internal/hero"
	"github.com/iburimskiy/hackpage/internal/particles"
)

var (
	cyan400   = color.RGBA{R: 0x22, G: 0xD3, B: 0xEE, A: 255}
	cyan300   = color.RGBA{R: 0x67, G: 0xE8, B: 0xF9, A: 255}
	cyan200   = color.RGBA{R: 0xA5, G: 0xF3, B: 0xFC, A: 255}
	purple500 = color.RGBA{R: 0xA8, G: 0x55, B: 0xF7, A: 255}
	purple400 = color.RGBA{R: 0xC0, G: 0x84, B: 0xFC, A: 255}
	pink500   = color.RGBA{R: 0xEC, G: 0x48, B: 0x99, A: 255}
	green400  = color.RGBA{R: 0x4A, G: 0xDE, B: 0x80, A: 255}
	gray300   = color.RGBA{R: 0xD1, G: 0xD5, B: 0xDB, A: 255}
	white     = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	socialColors = []color.RGBA{
		{R: 0x60, G: 0xA5, B: 0xFA, A: 255}, // blue-400
		{R: 0xEC, G: 0x48, B: 0x99, A: 255}, // pink-500
		{R: 0x25, G: 0x63, B: 0xEB, A: 255}, // blue-600
		{R: 0xEF, G: 0x44, B: 0x44, A: 255}, // red-500
	}
)

// label returns a cached white bitmap of s drawn with the 7x13 face.
func (g *Game) label(s string) *ebiten.Image {
	if img, ok := g.labels[s]; ok {
		return img
	}
	w := max(1, len(s)*hero.GlyphWidth)
	img := ebiten.NewImage(w, hero.GlyphHeight)
	text.Draw(img, s, basicfont.Face7x13, 0, basicfont.Face7x13.Ascent, white)
	g.labels[s] = img
	return img
}

// drawText draws s with its top-left corner at (x, y) in logical pixels.
func (g *Game) drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.RGBA, alpha float64) {
	if alpha <= 0 || s == "" {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale*g.scale, scale*g.scale)
	op.GeoM.Translate(x*g.scale, y*g.scale)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.label(s), op)
}

func (g *Game) drawHero(screen *ebiten.Image, elapsed float64) {
	for i, e := range g.hero.Elements() {
		alpha := e.Opacity(elapsed)
		if alpha <= 0 {
			continue
		}
		r := e.Rect
		switch e.Kind {
		case hero.Title:
			// Blurred gradient layers under a bright face.
			pulse := effects.Pulse(elapsed, 0)
			g.drawText(screen, e.Text, r.X-2, r.Y, e.Scale, cyan400, alpha*0.35*pulse)
			g.drawText(screen, e.Text, r.X+2, r.Y, e.Scale, purple500, alpha*0.35*pulse)
			g.drawText(screen, e.Text, r.X, r.Y, e.Scale, blend(white, cyan200, effects.Yoyo(elapsed, 0, 3)), alpha)
		case hero.Version:
			g.drawText(screen, e.Text, r.X-2, r.Y-2, e.Scale, cyan400, alpha*0.4*effects.Pulse(elapsed, 0))
			g.drawText(screen, e.Text, r.X+1, r.Y+1, e.Scale, purple500, alpha*0.4*effects.Pulse(elapsed, 1))
			g.drawText(screen, e.Text, r.X+2, r.Y-1, e.Scale, pink500, alpha*0.4*effects.Pulse(elapsed, 2))
			g.drawText(screen, e.Text, r.X, r.Y, e.Scale, hueColor(elapsed*60, 0.35, 1), alpha)
		case hero.Tagline:
			g.drawText(screen, e.Text, r.X, r.Y, e.Scale, hueColor(190+elapsed*20+float64(i)*40, 0.55, 1), alpha)
		case hero.Highlight:
			g.drawText(screen, e.Text, r.X, r.Y, e.Scale, hueColor(300+elapsed*30, 0.5, 1), alpha*effects.Blink(elapsed, 1.5))
		case hero.Countdown:
			s := g.hero.CountdownText(time.Now())
			w := float64(len(s)) * hero.GlyphWidth * e.Scale
			g.drawText(screen, s, r.X+r.W/2-w/2, r.Y, e.Scale, cyan300, alpha)
		case hero.Button:
			g.drawButton(screen, e, i == g.hovered, alpha)
		case hero.Social:
			g.drawSocial(screen, e, i, i == g.hovered, alpha)
		case hero.Status:
			g.drawStatus(screen, e, elapsed, alpha)
		}
	}
}

func (g *Game) drawButton(screen *ebiten.Image, e hero.Element, hovered bool, alpha float64) {
	s := float32(g.scale)
	r := e.Rect
	x, y, w, h := float32(r.X)*s, float32(r.Y)*s, float32(r.W)*s, float32(r.H)*s

	accent, halo := cyan400, cyan400
	switch e.Variant {
	case "secondary":
		accent, halo = purple400, purple400
	case "accent":
		accent, halo = green400, cyan400
	}
	glow := 0.2
	fill := 0.5
	textColor := gray300
	if hovered {
		glow, fill, textColor = 0.4, 0.7, white
	}
	// Glow halo fading from accent to halo colour outward, then the dark glass body and its border.
	for k := 3; k > 0; k-- {
		pad := float32(k) * 6 * s
		vector.DrawFilledRect(screen, x-pad, y-pad, w+2*pad, h+2*pad,
			particles.WithAlpha(blend(accent, halo, float64(k)/3), alpha*glow/float64(k+1)), true)
	}
	vector.DrawFilledRect(screen, x, y, w, h, particles.WithAlpha(color.RGBA{A: 255}, alpha*fill), true)
	vector.StrokeRect(screen, x, y, w, h, 2*s, particles.WithAlpha(accent, alpha*0.5), true)

	tw := e.TextWidth()
	g.drawText(screen, e.Text, r.X+r.W/2-tw/2, r.Y+r.H/2-hero.GlyphHeight*e.Scale/2, e.Scale, textColor, alpha)
}

func (g *Game) drawSocial(screen *ebiten.Image, e hero.Element, i int, hovered bool, alpha float64) {
	s := float32(g.scale)
	r := e.Rect
	cx, cy := float32(r.X+r.W/2)*s, float32(r.Y+r.H/2)*s
	rad := float32(r.W/2) * s
	border := 0.2
	if hovered {
		border = 0.5
		rad *= 1.2
	}
	vector.StrokeCircle(screen, cx, cy, rad, 2*s, particles.WithAlpha(white, alpha*border), true)

	mark := socialMark(e.Text)
	scale := 1.5
	tw := float64(len(mark)) * hero.GlyphWidth * scale
	clr := socialColors[i%len(socialColors)]
	g.drawText(screen, mark, r.X+r.W/2-tw/2, r.Y+r.H/2-hero.GlyphHeight*scale/2, scale, clr, alpha)
}

func (g *Game) drawStatus(screen *ebiten.Image, e hero.Element, elapsed, alpha float64) {
	s := float32(g.scale)
	r := e.Rect
	const padX, padY, dot = 28, 8, 5
	x, y := float32(r.X-padX)*s, float32(r.Y-padY)*s
	w, h := float32(r.W+padX+12)*s, float32(r.H+2*padY)*s
	vector.DrawFilledRect(screen, x, y, w, h, particles.WithAlpha(color.RGBA{A: 255}, alpha*0.5), true)
	vector.StrokeRect(screen, x, y, w, h, 2*s, particles.WithAlpha(cyan400, alpha*0.3), true)

	// Pulsing dot with an expanding ping ring.
	dx, dy := float32(r.X-padX/2)*s, float32(r.Y+r.H/2)*s
	ping := effects.Yoyo(elapsed, 0, 0.5)
	vector.StrokeCircle(screen, dx, dy, float32(dot+6*ping)*s, 1*s, particles.WithAlpha(cyan400, alpha*(1-ping)), true)
	vector.DrawFilledCircle(screen, dx, dy, dot*s, particles.WithAlpha(blend(cyan400, purple500, 0.5), alpha*effects.Pulse(elapsed, 0)), true)

	g.drawText(screen, e.Text, r.X, r.Y, e.Scale, cyan300, alpha)
}

// socialMark is the short glyph shown inside a social icon.
func socialMark(name string) string {
	switch strings.ToLower(name) {
	case "twitter", "x":
		return "X"
	case "instagram":
		return "IG"
	case "linkedin":
		return "in"
	case "youtube":
		return "YT"
	}
	if len(name) > 2 {
		return name[:2]
	}
	return name
}

func blend(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
