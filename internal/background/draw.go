package background

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/hackpage/internal/effects"
	"github.com/iburimskiy/hackpage/internal/particles"
)

const (
	gradientBand = 6  // px between gradient strokes along x+y
	glowRings    = 24 // concentric discs approximating the radial glow
	blobRings    = 8
	lineWidth    = 1
)

var (
	gradientTop    = colorful.Color{R: 0x58 / 255.0, G: 0x1C / 255.0, B: 0x87 / 255.0} // purple-900
	gradientBottom = colorful.Color{R: 0x16 / 255.0, G: 0x4E / 255.0, B: 0x63 / 255.0} // cyan-900
	glowInner      = colorful.Color{R: 0, G: 217 / 255.0, B: 1}
	glowOuter      = colorful.Color{R: 168 / 255.0, G: 85 / 255.0, B: 247 / 255.0}
	gridColor      = color.RGBA{R: 0, G: 217, B: 255, A: 255}
)

// Draw renders the backdrop. It draws nothing unless the background is running.
func (b *Background) Draw(c Canvas) {
	if b.state != Running {
		return
	}
	s := b.surface.Scale
	w, h := float64(b.surface.Width), float64(b.surface.Height)
	lw, _ := logical(b.surface)

	b.drawGradient(c, w, h)
	if b.cfg.Grid {
		b.drawGrid(c, w, h, s)
	}
	if b.cfg.Blobs {
		b.drawBlobs(c, s)
	}
	if b.cfg.Glow && b.glowSt.Primed {
		b.drawGlow(c, s, float64(lw))
	}
	b.drawParticles(c, s)
	b.draws++
}

// drawGradient fades in over two seconds a purple/black/cyan wash running
// from the top-left corner to the bottom-right one. Each stroke covers the
// anti-diagonal x+y = k.
func (b *Background) drawGradient(c Canvas, w, h float64) {
	fade := effects.FadeIn(b.elapsed, 0, 2)
	if fade <= 0 || w+h <= 0 {
		return
	}
	black := colorful.Color{}
	width := gradientBand / math.Sqrt2
	for k := 0.0; k < w+h; k += gradientBand {
		t := (k + gradientBand/2) / (w + h)
		var col colorful.Color
		if t < 0.5 {
			col = gradientTop.BlendRgb(black, t*2)
		} else {
			col = black.BlendRgb(gradientBottom, (t-0.5)*2)
		}
		c.Line(k, 0, 0, k, width, particles.WithAlpha(toRGBA(col), 0.2*fade))
	}
}

func (b *Background) drawGrid(c Canvas, w, h, s float64) {
	cell := b.grid.Cell(w/s) * s
	off := b.grid.Offset(b.elapsed, cell)
	clr := particles.WithAlpha(gridColor, 0.1*0.3)
	for _, x := range b.grid.Lines(w, cell, off) {
		c.Line(x, 0, x, h, lineWidth, clr)
	}
	for _, y := range b.grid.Lines(h, cell, off) {
		c.Line(0, y, w, y, lineWidth, clr)
	}
}

// drawBlobs fakes the blur with stacked translucent discs.
func (b *Background) drawBlobs(c Canvas, s float64) {
	lw, lh := logical(b.surface)
	for i := 0; i < b.blobs.Len(); i++ {
		st := b.blobs.State(i, b.elapsed, float64(lw), float64(lh))
		if st.Alpha <= 0 {
			continue
		}
		base := float64(st.Color.A) / 255 * st.Alpha
		for k := blobRings; k > 0; k-- {
			f := float64(k) / blobRings
			r := st.Radius * (0.6 + 0.8*f) * s
			c.FillCircle(st.X*s, st.Y*s, r, particles.WithAlpha(st.Color, base/blobRings*1.5))
		}
	}
}

func (b *Background) drawGlow(c Canvas, s, width float64) {
	radius := b.glow.Radius(width) * s
	intensity := effects.Clamp(b.glowSt.Intensity, 0, 1.5)
	if intensity <= 0.001 {
		return
	}
	// Outer rings first so the bright core ends on top; stops at 70% like the CSS gradient.
	for k := glowRings; k > 0; k-- {
		f := float64(k) / glowRings
		col := glowInner.BlendRgb(glowOuter, f)
		alpha := 0.2 * 0.3 * intensity / glowRings * 2
		c.FillCircle(b.glowSt.X*s, b.glowSt.Y*s, radius*0.7*f, particles.WithAlpha(toRGBA(col), alpha))
	}
}

func (b *Background) drawParticles(c Canvas, s float64) {
	opacity := b.cfg.CanvasOpacity
	ps := b.field.Particles()
	// Connection lines go first so particles sit above them.
	b.field.Connections(func(conn particles.Connection) {
		pa, pb := ps[conn.A], ps[conn.B]
		c.Line(pa.X*s, pa.Y*s, pb.X*s, pb.Y*s, lineWidth*s,
			particles.WithAlpha(conn.Color, conn.Alpha*0.4*opacity))
	})
	for _, p := range ps {
		c.FillCircle(p.X*s, p.Y*s, p.Size*s, particles.WithAlpha(p.Color, p.Opacity*opacity))
	}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, bl := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}
