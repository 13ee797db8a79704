// Package telemetry records per-frame statistics of the particle field for headless runs.
package telemetry

import (
	"fmt"
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/iburimskiy/hackpage/internal/particles"
)

// FrameStats is one CSV row.
type FrameStats struct {
	Frame       int     `csv:"frame"`
	Particles   int     `csv:"particles"`
	Connections int     `csv:"connections"`
	MeanSpeed   float64 `csv:"mean_speed"`
	SpeedStdDev float64 `csv:"speed_stddev"`
	MaxSpeed    float64 `csv:"max_speed"`
	OutOfBounds int     `csv:"out_of_bounds"`
	PointerX    float64 `csv:"pointer_x"`
	PointerY    float64 `csv:"pointer_y"`
}

// Sample measures the field as it is now.
func Sample(frame int, f *particles.Field, ptr particles.Pointer) FrameStats {
	ps := f.Particles()
	w, h := f.Size()
	s := FrameStats{Frame: frame, Particles: len(ps), PointerX: math.NaN(), PointerY: math.NaN()}
	if ptr.Known {
		s.PointerX, s.PointerY = ptr.X, ptr.Y
	}
	if len(ps) == 0 {
		return s
	}
	speeds := make([]float64, len(ps))
	for i, p := range ps {
		speeds[i] = math.Hypot(p.VX, p.VY)
		if p.X < 0 || p.X > w || p.Y < 0 || p.Y > h {
			s.OutOfBounds++
		}
	}
	s.MeanSpeed, s.SpeedStdDev = stat.MeanStdDev(speeds, nil)
	if len(speeds) < 2 {
		s.SpeedStdDev = 0
	}
	s.MaxSpeed = floats.Max(speeds)
	f.Connections(func(particles.Connection) { s.Connections++ })
	return s
}

// Summary aggregates a run.
type Summary struct {
	Frames          int
	MeanSpeed       float64
	PeakSpeed       float64
	MeanConnections float64
	Violations      int // frames with at least one particle out of bounds
}

// Summarize aggregates rows.
func Summarize(rows []FrameStats) Summary {
	if len(rows) == 0 {
		return Summary{}
	}
	means := make([]float64, len(rows))
	peaks := make([]float64, len(rows))
	conns := make([]float64, len(rows))
	sum := Summary{Frames: len(rows)}
	for i, r := range rows {
		means[i], peaks[i], conns[i] = r.MeanSpeed, r.MaxSpeed, float64(r.Connections)
		if r.OutOfBounds > 0 {
			sum.Violations++
		}
	}
	sum.MeanSpeed = stat.Mean(means, nil)
	sum.PeakSpeed = floats.Max(peaks)
	sum.MeanConnections = stat.Mean(conns, nil)
	return sum
}

// WriteCSV writes rows with a header to path.
func WriteCSV(path string, rows []FrameStats) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := gocsv.Marshal(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("writing frame stats: %w", err)
	}
	return f.Close()
}
