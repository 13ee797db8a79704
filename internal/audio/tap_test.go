package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// counter streams samples whose left channel counts up from 1.
func counter(limit int) beep.Streamer {
	next := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if next >= limit {
			return 0, false
		}
		n := 0
		for i := range samples {
			if next >= limit {
				break
			}
			next++
			samples[i] = [2]float64{float64(next), 0}
			n++
		}
		return n, true
	})
}

func TestTapSnapshotOrder(t *testing.T) {
	tap := NewTap(counter(10), 4)
	buf := make([][2]float64, 3)
	for i := 0; i < 3; i++ {
		tap.Stream(buf)
	}

	got := tap.Snapshot(8)
	want := []float64{6, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i][0] != w {
			t.Errorf("sample %d = %f, want %f", i, got[i][0], w)
		}
	}
}

func TestTapSnapshotPartiallyFilled(t *testing.T) {
	tap := NewTap(counter(2), 16)
	tap.Stream(make([][2]float64, 4))
	got := tap.Snapshot(10)
	if len(got) != 2 || got[0][0] != 1 || got[1][0] != 2 {
		t.Fatalf("unexpected snapshot %v", got)
	}
}

func TestRMS(t *testing.T) {
	silent := NewTap(beep.Silence(-1), 64)
	silent.Stream(make([][2]float64, 64))
	if got := silent.RMS(64); got != 0 {
		t.Errorf("silence RMS = %f, want 0", got)
	}

	full := NewTap(beep.StreamerFunc(func(s [][2]float64) (int, bool) {
		for i := range s {
			s[i] = [2]float64{1, 1}
		}
		return len(s), true
	}), 64)
	full.Stream(make([][2]float64, 64))
	if got := full.RMS(64); math.Abs(got-1) > 1e-9 {
		t.Errorf("full-scale RMS = %f, want 1", got)
	}

	empty := NewTap(beep.Silence(0), 8)
	if got := empty.RMS(8); got != 0 {
		t.Errorf("empty tap RMS = %f, want 0", got)
	}
}

func TestMeterSmoothing(t *testing.T) {
	m := Meter{Smoothing: 0.5}
	if got := m.Update(1); got != 0.5 {
		t.Errorf("first update = %f, want 0.5", got)
	}
	if got := m.Update(1); got != 0.75 {
		t.Errorf("second update = %f, want 0.75", got)
	}
	if m.Level() != 0.75 {
		t.Errorf("Level() = %f, want 0.75", m.Level())
	}
}

func TestDecoderByExtension(t *testing.T) {
	for _, name := range []string{"a.wav", "b.MP3", "c.flac"} {
		if _, err := Decoder(name); err != nil {
			t.Errorf("Decoder(%q): %v", name, err)
		}
	}
	if _, err := Decoder("song.ogg"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestTrackLoadAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Silence(44100/10), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	track, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d := track.Duration(); d != 100*time.Millisecond {
		t.Errorf("Duration() = %v, want 100ms", d)
	}
	if err := track.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}

func TestPlayerIdle(t *testing.T) {
	p := NewPlayer(1024, true, 0.6)
	if p.Playing() {
		t.Error("idle player reports playing")
	}
	if p.TogglePause() {
		t.Error("toggling an idle player should report not paused")
	}
	if got := p.Level(); got != 0 {
		t.Errorf("idle level = %f, want 0", got)
	}
	if err := p.Play("missing.ogg"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	p.Close()
}
