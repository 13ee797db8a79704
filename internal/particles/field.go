// Package particles implements the interactive particle field drawn behind the hero section.
package particles

import (
	"image/color"
	"math"
	"math/rand"
)

// bounceNudge is the largest random kick added on a soft bounce so particles do not stick to an edge.
const bounceNudge = 0.05

// Particle is one point of the field.
type Particle struct {
	X, Y           float64
	VX, VY         float64
	BaseVX, BaseVY float64 // resting velocity the particle relaxes toward
	Size           float64
	Opacity        float64
	Color          color.RGBA
}

// Pointer is the last known cursor position. Known is false until the first move.
type Pointer struct {
	X, Y  float64
	Known bool
}

// FrameContext carries the per-frame inputs of Step.
type FrameContext struct {
	Pointer Pointer
}

// Connection is a line between two particles closer than the connection distance.
type Connection struct {
	A, B  int
	Alpha float64
	Color color.RGBA
}

// Field owns the particle set for one drawing surface.
type Field struct {
	params    Params
	rng       *rand.Rand
	particles []Particle
	width     float64
	height    float64
}

// NewField returns an empty field. Call Reset once the surface size is known.
func NewField(params Params, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if len(params.Palette) == 0 {
		params.Palette = DefaultPalette
	}
	return &Field{params: params, rng: rng}
}

// Params returns the parameters the field was built with.
func (f *Field) Params() Params { return f.params }

// Particles exposes the current set. The slice is replaced on every Reset.
func (f *Field) Particles() []Particle { return f.particles }

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.particles) }

// Size returns the surface size the field was last reset for.
func (f *Field) Size() (width, height float64) { return f.width, f.height }

// Reset replaces the whole particle set for a surface of the given size.
// A non-positive dimension leaves the field empty.
func (f *Field) Reset(width, height int) {
	f.width, f.height = math.Max(0, float64(width)), math.Max(0, float64(height))
	n := f.params.Count(width, height)
	set := make([]Particle, n)
	for i := range set {
		set[i] = f.spawn()
	}
	f.particles = set
}

func (f *Field) spawn() Particle {
	p := f.params
	size := p.MinSize + f.rng.Float64()*(p.MaxSize-p.MinSize)
	opacity := p.MinOpacity + f.rng.Float64()*(p.MaxOpacity-p.MinOpacity)
	return Particle{
		X:       f.rng.Float64() * f.width,
		Y:       f.rng.Float64() * f.height,
		VX:      (f.rng.Float64() - 0.5) * p.SpeedRange,
		VY:      (f.rng.Float64() - 0.5) * p.SpeedRange,
		BaseVX:  (f.rng.Float64() - 0.5) * p.SpeedRange,
		BaseVY:  (f.rng.Float64() - 0.5) * p.SpeedRange,
		Size:    math.Max(0, size),
		Opacity: clamp(opacity, 0, 1),
		Color:   p.Palette[f.rng.Intn(len(p.Palette))],
	}
}

// Step advances every particle by one frame.
func (f *Field) Step(ctx FrameContext) {
	for i := range f.particles {
		p := &f.particles[i]
		f.applyPointer(p, ctx.Pointer)
		p.X += p.VX
		p.Y += p.VY
		switch f.params.Boundary {
		case SoftBounce:
			f.softBounce(p)
		default:
			f.reflect(p)
		}
	}
}

func (f *Field) applyPointer(p *Particle, ptr Pointer) {
	if ptr.Known {
		dx := p.X - ptr.X
		dy := p.Y - ptr.Y
		dist := math.Hypot(dx, dy)
		if dist < f.params.InteractionRadius {
			force := f.params.Repulsion(dist)
			angle := math.Atan2(dy, dx)
			p.VX = math.Cos(angle) * force
			p.VY = math.Sin(angle) * force
			return
		}
	}
	p.VX += (p.BaseVX - p.VX) * f.params.RelaxationFactor
	p.VY += (p.BaseVY - p.VY) * f.params.RelaxationFactor
}

// reflect turns the velocity and the resting velocity back inward and clamps to the surface.
func (f *Field) reflect(p *Particle) {
	if p.X < 0 {
		p.VX, p.BaseVX = math.Abs(p.VX), math.Abs(p.BaseVX)
	} else if p.X > f.width {
		p.VX, p.BaseVX = -math.Abs(p.VX), -math.Abs(p.BaseVX)
	}
	if p.Y < 0 {
		p.VY, p.BaseVY = math.Abs(p.VY), math.Abs(p.BaseVY)
	} else if p.Y > f.height {
		p.VY, p.BaseVY = -math.Abs(p.VY), -math.Abs(p.BaseVY)
	}
	p.X = clamp(p.X, 0, f.width)
	p.Y = clamp(p.Y, 0, f.height)
}

// softBounce keeps the whole disc inside the surface. When the surface is
// narrower than the particle the margin collapses to the centre line.
func (f *Field) softBounce(p *Particle) {
	d := f.params.BounceDamping
	p.X, p.VX, p.BaseVX = f.bounceAxis(p.X, p.VX, p.BaseVX, p.Size, f.width, d)
	p.Y, p.VY, p.BaseVY = f.bounceAxis(p.Y, p.VY, p.BaseVY, p.Size, f.height, d)
}

func (f *Field) bounceAxis(pos, v, base, size, extent, damping float64) (float64, float64, float64) {
	lo, hi := size, extent-size
	if hi < lo {
		lo, hi = extent/2, extent/2
	}
	switch {
	case pos < lo:
		return lo, math.Abs(v)*damping + f.rng.Float64()*bounceNudge, math.Abs(base)
	case pos > hi:
		return hi, -(math.Abs(v)*damping + f.rng.Float64()*bounceNudge), -math.Abs(base)
	}
	return pos, v, base
}

// Connections calls fn for every unique pair closer than the connection distance.
// Alpha decays linearly from 1 at distance zero to 0 at the threshold.
func (f *Field) Connections(fn func(Connection)) {
	limit := f.params.ConnectionDistance
	if limit <= 0 {
		return
	}
	limit2 := limit * limit
	for i := 0; i < len(f.particles); i++ {
		a := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := &f.particles[j]
			dx, dy := a.X-b.X, a.Y-b.Y
			d2 := dx*dx + dy*dy
			if d2 >= limit2 {
				continue
			}
			fn(Connection{A: i, B: j, Alpha: 1 - math.Sqrt(d2)/limit, Color: a.Color})
		}
	}
}

// InBounds reports whether every particle lies inside the surface.
func (f *Field) InBounds() bool {
	for _, p := range f.particles {
		if p.X < 0 || p.X > f.width || p.Y < 0 || p.Y > f.height {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
