package effects

import (
	"math"
	"testing"
)

func TestFadeInMonotonic(t *testing.T) {
	if got := FadeIn(0.1, 0.2, 1); got != 0 {
		t.Errorf("expected 0 before delay, got %f", got)
	}
	if got := FadeIn(5, 0.2, 1); got != 1 {
		t.Errorf("expected 1 after fade, got %f", got)
	}
	prev := 0.0
	for e := 0.2; e <= 1.2; e += 0.01 {
		v := FadeIn(e, 0.2, 1)
		if v < prev {
			t.Fatalf("fade-in decreased at %f: %f < %f", e, v, prev)
		}
		prev = v
	}
	if got := FadeIn(1, 0, 0); got != 1 {
		t.Errorf("zero duration should be fully visible, got %f", got)
	}
}

func TestYoyo(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 0},
		{2, 0},   // still in delay
		{5, 0.5}, // halfway up
		{8, 1},   // top
		{11, 0.5},
		{14, 0}, // back down
	}
	for _, tc := range tests {
		if got := Yoyo(tc.elapsed, 2, 6); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Yoyo(%f) = %f, want %f", tc.elapsed, got, tc.want)
		}
	}
}

func TestBlinkRange(t *testing.T) {
	for e := 0.0; e < 3; e += 0.05 {
		v := Blink(e, 1.5)
		if v < 0.7-1e-9 || v > 1+1e-9 {
			t.Fatalf("Blink(%f) = %f outside [0.7, 1]", e, v)
		}
	}
	if math.Abs(Blink(0.75, 1.5)-0.7) > 1e-9 {
		t.Errorf("expected minimum opacity mid-period")
	}
}

func TestGrid(t *testing.T) {
	g := Grid{Period: 20}
	cases := map[float64]float64{500: 30, 1200: 36, 4000: 50}
	for w, want := range cases {
		if got := g.Cell(w); math.Abs(got-want) > 1e-9 {
			t.Errorf("Cell(%f) = %f, want %f", w, got, want)
		}
	}
	if got := g.Offset(10, 40); math.Abs(got-20) > 1e-9 {
		t.Errorf("Offset at half period = %f, want 20", got)
	}
	if got := g.Offset(20, 40); math.Abs(got) > 1e-9 {
		t.Errorf("Offset wraps after one period, got %f", got)
	}
	lines := g.Lines(100, 40, 10)
	want := []float64{10, 50, 90}
	if len(lines) != len(want) {
		t.Fatalf("Lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Lines[%d] = %f, want %f", i, lines[i], want[i])
		}
	}
}

func TestBlobsStayNearAnchor(t *testing.T) {
	b := NewBlobs(DefaultBlobs, 7)
	if b.Len() != 4 {
		t.Fatalf("expected 4 blobs, got %d", b.Len())
	}
	for i := 0; i < b.Len(); i++ {
		for e := 0.0; e < 30; e += 0.5 {
			s := b.State(i, e, 1000, 800)
			ax, ay := DefaultBlobs[i].AnchorX*1000, DefaultBlobs[i].AnchorY*800
			if math.Abs(s.X-ax) > 10+driftAmplitude*2 || math.Abs(s.Y-ay) > 20+driftAmplitude*2 {
				t.Fatalf("blob %d wandered to (%f,%f) from anchor (%f,%f)", i, s.X, s.Y, ax, ay)
			}
			if s.Alpha < 0 || s.Alpha > 1 {
				t.Fatalf("blob %d alpha %f outside [0,1]", i, s.Alpha)
			}
			min, max := DefaultBlobs[i].Diameter/2*0.8, DefaultBlobs[i].Diameter/2
			if s.Radius < min-1e-9 || s.Radius > max+1e-9 {
				t.Fatalf("blob %d radius %f outside [%f,%f]", i, s.Radius, min, max)
			}
		}
	}
}

func TestGlowFollowsPointer(t *testing.T) {
	g := NewGlow(60, 4, 1)
	var s GlowState
	s = g.Step(s, 0, 0, false, 0)
	if s.Primed || s.Intensity != 0 {
		t.Fatalf("glow should stay dark without a pointer, got %+v", s)
	}

	s = g.Step(s, 400, 300, true, 0)
	if s.X != 400 || s.Y != 300 {
		t.Errorf("first sighting should snap to the pointer, got (%f,%f)", s.X, s.Y)
	}
	for i := 0; i < 240; i++ {
		s = g.Step(s, 600, 100, true, 0)
	}
	if math.Abs(s.X-600) > 1 || math.Abs(s.Y-100) > 1 {
		t.Errorf("glow did not settle on the pointer: (%f,%f)", s.X, s.Y)
	}
	if math.Abs(s.Intensity-1) > 0.01 {
		t.Errorf("expected full intensity, got %f", s.Intensity)
	}
	if r := g.Radius(1000); r != 300 {
		t.Errorf("Radius(1000) = %f, want 300", r)
	}
}
