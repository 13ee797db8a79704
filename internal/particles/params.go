package particles

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// BoundaryPolicy selects how a particle reacts when it reaches the edge of the surface.
type BoundaryPolicy int

const (
	// Reflect inverts the velocity component and clamps the position to the surface.
	Reflect BoundaryPolicy = iota
	// SoftBounce clamps to a margin inset by the particle size and bounces with damping.
	SoftBounce
)

func (b BoundaryPolicy) String() string {
	switch b {
	case Reflect:
		return "reflect"
	case SoftBounce:
		return "soft-bounce"
	default:
		return fmt.Sprintf("BoundaryPolicy(%d)", int(b))
	}
}

// ParseBoundaryPolicy maps a config name to a BoundaryPolicy.
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reflect":
		return Reflect, nil
	case "soft-bounce", "soft_bounce", "softbounce":
		return SoftBounce, nil
	}
	return Reflect, fmt.Errorf("unknown boundary policy %q", s)
}

// DensityMode selects the density function mapping surface size to particle count.
type DensityMode int

const (
	// DensityWidth uses floor(width / DensityDivisor).
	DensityWidth DensityMode = iota
	// DensityArea uses floor(width * height / AreaDivisor).
	DensityArea
)

func (d DensityMode) String() string {
	if d == DensityArea {
		return "area"
	}
	return "width"
}

// ParseDensityMode maps a config name to a DensityMode.
func ParseDensityMode(s string) (DensityMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "width":
		return DensityWidth, nil
	case "area":
		return DensityArea, nil
	}
	return DensityWidth, fmt.Errorf("unknown density mode %q", s)
}

// Params holds every tunable of the particle field.
type Params struct {
	DensityMode    DensityMode
	DensityDivisor float64 // pixels of width per particle
	AreaDivisor    float64 // square pixels per particle
	Cap            int     // hard upper bound on particle count

	InteractionRadius float64 // pointer influence distance in pixels
	RepulsionStrength float64 // force at distance zero
	RelaxationFactor  float64 // fraction of (base - v) recovered per frame

	Boundary      BoundaryPolicy
	BounceDamping float64 // soft-bounce only

	ConnectionDistance float64 // 0 disables connection lines

	SpeedRange float64 // velocities are drawn from (-SpeedRange/2, SpeedRange/2)
	MinSize    float64
	MaxSize    float64
	MinOpacity float64
	MaxOpacity float64 // may exceed 1; draws above 1 are clamped, biasing toward fully opaque
	Palette    []color.RGBA
}

// DefaultParams returns the canonical parameter set.
func DefaultParams() Params {
	return Params{
		DensityMode:        DensityWidth,
		DensityDivisor:     10,
		AreaDivisor:        2500,
		Cap:                150,
		InteractionRadius:  150,
		RepulsionStrength:  5,
		RelaxationFactor:   0.05,
		Boundary:           Reflect,
		BounceDamping:      0.8,
		ConnectionDistance: 0,
		SpeedRange:         0.5,
		MinSize:            2,
		MaxSize:            5,
		MinOpacity:         0.7,
		MaxOpacity:         1.6,
		Palette:            append([]color.RGBA(nil), DefaultPalette...),
	}
}

// Count is the density function: the number of particles for a surface of the given size.
func (p Params) Count(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	var n float64
	switch p.DensityMode {
	case DensityArea:
		if p.AreaDivisor <= 0 {
			return 0
		}
		n = math.Floor(float64(width) * float64(height) / p.AreaDivisor)
	default:
		if p.DensityDivisor <= 0 {
			return 0
		}
		n = math.Floor(float64(width) / p.DensityDivisor)
	}
	if n >= float64(p.Cap) {
		return p.Cap
	}
	return int(n)
}

// Repulsion returns the force magnitude applied to a particle at the given distance
// from the pointer. It peaks at RepulsionStrength for distance zero, falls off
// linearly and is zero at or beyond InteractionRadius.
func (p Params) Repulsion(distance float64) float64 {
	if p.InteractionRadius <= 0 || distance >= p.InteractionRadius {
		return 0
	}
	if distance < 0 {
		distance = 0
	}
	return p.RepulsionStrength * (p.InteractionRadius - distance) / p.InteractionRadius
}

// Validate reports the first parameter that would break the field invariants.
func (p Params) Validate() error {
	switch {
	case p.DensityMode == DensityWidth && p.DensityDivisor <= 0:
		return fmt.Errorf("density divisor must be positive, got %v", p.DensityDivisor)
	case p.DensityMode == DensityArea && p.AreaDivisor <= 0:
		return fmt.Errorf("area divisor must be positive, got %v", p.AreaDivisor)
	case p.Cap <= 0:
		return fmt.Errorf("particle cap must be positive, got %d", p.Cap)
	case p.InteractionRadius <= 0:
		return fmt.Errorf("interaction radius must be positive, got %v", p.InteractionRadius)
	case p.RepulsionStrength < 0:
		return fmt.Errorf("repulsion strength must not be negative, got %v", p.RepulsionStrength)
	case p.RelaxationFactor <= 0 || p.RelaxationFactor > 1:
		return fmt.Errorf("relaxation factor must be in (0,1], got %v", p.RelaxationFactor)
	case p.BounceDamping < 0 || p.BounceDamping > 1:
		return fmt.Errorf("bounce damping must be in [0,1], got %v", p.BounceDamping)
	case p.ConnectionDistance < 0:
		return fmt.Errorf("connection distance must not be negative, got %v", p.ConnectionDistance)
	case p.MinSize <= 0 || p.MaxSize < p.MinSize:
		return fmt.Errorf("invalid size range [%v,%v]", p.MinSize, p.MaxSize)
	case p.MinOpacity < 0 || p.MinOpacity > 1 || p.MaxOpacity < p.MinOpacity:
		return fmt.Errorf("invalid opacity range [%v,%v]", p.MinOpacity, p.MaxOpacity)
	case len(p.Palette) == 0:
		return fmt.Errorf("palette is empty")
	}
	return nil
}
