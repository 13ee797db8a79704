package effects

import (
	"image/color"

	"github.com/aquilax/go-perlin"
)

// driftAmplitude is the extra noise wander of a blob, in pixels.
const driftAmplitude = 6.0

// Blob is one floating, blurred gradient disc.
type Blob struct {
	AnchorX, AnchorY float64 // fraction of the surface
	Diameter         float64
	Color            color.RGBA // straight alpha is the peak opacity
	Duration, Delay  float64
	ShiftX, ShiftY   float64 // tween target offset in pixels
}

// DefaultBlobs are the four background blobs.
var DefaultBlobs = []Blob{
	{AnchorX: 0.25, AnchorY: 0.25, Diameter: 100, Color: color.RGBA{R: 0x6B, G: 0x21, B: 0xA8, A: 51}, Duration: 6, Delay: 0},
	{AnchorX: 0.75, AnchorY: 0.66, Diameter: 120, Color: color.RGBA{R: 0x93, G: 0x33, B: 0xEA, A: 51}, Duration: 8, Delay: 2, ShiftX: 10, ShiftY: -20},
	{AnchorX: 0.33, AnchorY: 0.75, Diameter: 80, Color: color.RGBA{R: 0xEC, G: 0x48, B: 0x99, A: 51}, Duration: 7, Delay: 4, ShiftX: -10},
	{AnchorX: 0.80, AnchorY: 0.33, Diameter: 60, Color: color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 38}, Duration: 9, Delay: 1},
}

// BlobState is where and how a blob is drawn on a given frame.
type BlobState struct {
	X, Y   float64
	Radius float64
	Alpha  float64 // 0..1, multiplies Color.A
	Color  color.RGBA
}

// Blobs animates a fixed set of blobs.
type Blobs struct {
	blobs []Blob
	noise *perlin.Perlin
}

// NewBlobs builds the animator. The seed only affects the noise drift.
func NewBlobs(blobs []Blob, seed int64) *Blobs {
	return &Blobs{
		blobs: blobs,
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Len returns the number of blobs.
func (b *Blobs) Len() int { return len(b.blobs) }

// State returns blob i at the given elapsed time on a surface of width x height.
func (b *Blobs) State(i int, elapsed, width, height float64) BlobState {
	bl := b.blobs[i]
	t := Yoyo(elapsed, bl.Delay, bl.Duration)
	scale := lerp(0.8, 1, t)
	dx := b.noise.Noise2D(float64(i)*7.3, elapsed*0.15) * driftAmplitude
	dy := b.noise.Noise2D(elapsed*0.15, float64(i)*3.1) * driftAmplitude
	return BlobState{
		X:      bl.AnchorX*width + bl.ShiftX*t + dx,
		Y:      bl.AnchorY*height + bl.ShiftY*t + dy,
		Radius: bl.Diameter / 2 * scale,
		Alpha:  t,
		Color:  bl.Color,
	}
}
