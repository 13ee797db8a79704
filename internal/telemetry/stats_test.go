package telemetry

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iburimskiy/hackpage/internal/background"
	"github.com/iburimskiy/hackpage/internal/config"
	"github.com/iburimskiy/hackpage/internal/host"
	"github.com/iburimskiy/hackpage/internal/particles"
)

func TestSample(t *testing.T) {
	p := particles.DefaultParams()
	p.ConnectionDistance = 50
	f := particles.NewField(p, rand.New(rand.NewSource(3)))
	f.Reset(200, 100)
	ps := f.Particles()
	for i := range ps {
		ps[i].X, ps[i].Y = float64(i)*60, 50
		ps[i].VX, ps[i].VY = 3, 4
	}
	ps[1].X = 20

	s := Sample(7, f, particles.Pointer{})
	if s.Frame != 7 || s.Particles != 20 {
		t.Errorf("unexpected header fields %+v", s)
	}
	if math.Abs(s.MeanSpeed-5) > 1e-9 || math.Abs(s.MaxSpeed-5) > 1e-9 || s.SpeedStdDev > 1e-9 {
		t.Errorf("unexpected speed stats %+v", s)
	}
	// Particles 4..19 sit beyond x=200.
	if s.OutOfBounds != 16 {
		t.Errorf("expected 16 out of bounds, got %d", s.OutOfBounds)
	}
	if s.Connections != 1 {
		t.Errorf("expected 1 connection, got %d", s.Connections)
	}
	if !math.IsNaN(s.PointerX) {
		t.Errorf("unknown pointer should be NaN, got %f", s.PointerX)
	}
}

func TestSimulateEndToEnd(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	bg, err := background.New(cfg, 11)
	if err != nil {
		t.Fatal(err)
	}
	rows := Simulate(bg, host.Surface{Width: 1000, Height: 800, Scale: 1}, 60, 60, Lissajous)
	if len(rows) != 60 {
		t.Fatalf("expected 60 rows, got %d", len(rows))
	}
	sum := Summarize(rows)
	if sum.Violations != 0 {
		t.Errorf("%d frames had particles out of bounds", sum.Violations)
	}
	if rows[0].Particles != 100 {
		t.Errorf("expected 100 particles, got %d", rows[0].Particles)
	}
	if sum.PeakSpeed <= 0.25*math.Sqrt2 {
		t.Errorf("pointer sweep never pushed a particle, peak speed %f", sum.PeakSpeed)
	}
	if bg.State() != background.TornDown {
		t.Errorf("Simulate should unmount, state %v", bg.State())
	}
}

func TestSimulateWithoutSurface(t *testing.T) {
	cfg, _ := config.Load("")
	bg, _ := background.New(cfg, 1)
	if rows := Simulate(bg, host.Surface{}, 10, 60, NoPointer); rows != nil {
		t.Errorf("expected no rows without a surface, got %d", len(rows))
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.csv")
	rows := []FrameStats{{Frame: 0, Particles: 3}, {Frame: 1, Particles: 3, Connections: 2}}
	if err := WriteCSV(path, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "frame,particles,connections") {
		t.Errorf("unexpected header %q", lines[0])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s.Frames != 0 {
		t.Errorf("expected empty summary, got %+v", s)
	}
}
