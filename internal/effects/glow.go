package effects

import "github.com/charmbracelet/harmonica"

// GlowState is the smoothed pointer glow.
type GlowState struct {
	X, Y      float64
	VX, VY    float64
	Intensity float64
	VI        float64
	Primed    bool // false until the pointer has been seen once
}

// Glow follows the pointer with a damped spring.
type Glow struct {
	spring harmonica.Spring
}

// NewGlow returns a glow stepped fps times per second.
func NewGlow(fps int, frequency, damping float64) Glow {
	return Glow{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Radius of the glow for a surface width: 30% of the width, kept within [250, 600].
func (Glow) Radius(width float64) float64 {
	return Clamp(width*0.3, 250, 600)
}

// Step advances s one frame toward the pointer. boost in [0,1] raises the
// target intensity (the soundtrack level).
func (g Glow) Step(s GlowState, px, py float64, known bool, boost float64) GlowState {
	target := 0.0
	if known {
		if !s.Primed {
			// Appear where the pointer is instead of sweeping in from the origin.
			s.X, s.Y, s.Primed = px, py, true
		}
		target = 1 + 0.5*clamp01(boost)
		s.X, s.VX = g.spring.Update(s.X, s.VX, px)
		s.Y, s.VY = g.spring.Update(s.Y, s.VY, py)
	}
	s.Intensity, s.VI = g.spring.Update(s.Intensity, s.VI, target)
	if s.Intensity < 0 {
		s.Intensity = 0
	}
	return s
}
