package telemetry

import (
	"math"
	"time"

	"github.com/iburimskiy/hackpage/internal/background"
	"github.com/iburimskiy/hackpage/internal/host"
)

// PointerPath returns the scripted pointer position for a frame.
type PointerPath func(frame int, width, height float64) (x, y float64, ok bool)

// Lissajous sweeps the pointer over the whole surface in a figure-eight.
func Lissajous(frame int, width, height float64) (float64, float64, bool) {
	t := float64(frame) / 60
	x := width/2 + width*0.4*math.Sin(t*1.3)
	y := height/2 + height*0.4*math.Sin(t*2.1)
	return x, y, true
}

// NoPointer never moves the pointer.
func NoPointer(int, float64, float64) (float64, float64, bool) { return 0, 0, false }

// Simulate mounts bg on a fresh window of the given size, runs frames
// simulated frames at tps and returns one row per frame.
func Simulate(bg *background.Background, surface host.Surface, frames, tps int, path PointerPath) []FrameStats {
	win := host.NewWindow()
	win.SetSurface(surface)
	if !bg.Mount(win) {
		return nil
	}
	defer bg.Unmount()

	if tps <= 0 {
		tps = 60
	}
	tick := time.Second / time.Duration(tps)
	rows := make([]FrameStats, 0, frames)
	w, h := float64(surface.Width), float64(surface.Height)
	for i := 0; i < frames; i++ {
		if x, y, ok := path(i, w, h); ok {
			win.MovePointer(x, y)
		}
		win.Advance(time.Duration(i+1) * tick)
		rows = append(rows, Sample(i, bg.Field(), bg.Pointer()))
	}
	return rows
}
