package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas adapts an ebiten image to background.Canvas.
type canvas struct {
	dst *ebiten.Image
}

func (c canvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	if clr.A == 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c canvas) FillCircle(x, y, r float64, clr color.RGBA) {
	if clr.A == 0 || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), clr, true)
}

func (c canvas) Line(x0, y0, x1, y1, width float64, clr color.RGBA) {
	if clr.A == 0 {
		return
	}
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}
