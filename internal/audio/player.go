// Package audio plays the optional ambient soundtrack and meters its loudness.
package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// ErrUnsupported is returned for files that are not wav, mp3 or flac.
var ErrUnsupported = errors.New("unsupported audio format")

// meterWindow is how many recent samples feed one level reading.
const meterWindow = 2048

// Track is a decoded file ready for playback.
type Track struct {
	Path     string
	Streamer beep.StreamSeekCloser
	Format   beep.Format
}

// Duration returns the playing time of the track.
func (t *Track) Duration() time.Duration {
	return t.Format.SampleRate.D(t.Streamer.Len())
}

// Close releases the decoder. Every beep decoder closes the file it was given.
func (t *Track) Close() error {
	return t.Streamer.Close()
}

// Decoder picks a beep decoder by file extension.
func Decoder(path string) (func(f *os.File) (beep.StreamSeekCloser, beep.Format, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }, nil
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }, nil
	case ".flac":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupported, filepath.Ext(path))
}

// Load opens and decodes an audio file.
func Load(path string) (*Track, error) {
	decode, err := Decoder(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &Track{Path: path, Streamer: streamer, Format: format}, nil
}

// Player owns the speaker and at most one playing track.
type Player struct {
	RingSize int
	Loop     bool

	track    *Track
	tap      *Tap
	ctrl     *beep.Ctrl
	rate     beep.SampleRate
	initDone bool
	meter    Meter
}

// NewPlayer returns an idle player.
func NewPlayer(ringSize int, loop bool, smoothing float64) *Player {
	return &Player{RingSize: ringSize, Loop: loop, meter: Meter{Smoothing: smoothing}}
}

// Play stops whatever is playing and starts path.
func (p *Player) Play(path string) error {
	track, err := Load(path)
	if err != nil {
		return err
	}

	bufferSize := track.Format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone:
		if err := speaker.Init(track.Format.SampleRate, bufferSize); err != nil {
			_ = track.Close()
			return fmt.Errorf("initialising speaker: %w", err)
		}
		p.initDone = true
	case p.rate != track.Format.SampleRate:
		// Re-init when sample rate changes
		speaker.Clear()
		if err := speaker.Init(track.Format.SampleRate, bufferSize); err != nil {
			_ = track.Close()
			return fmt.Errorf("initialising speaker: %w", err)
		}
	default:
		speaker.Clear()
	}
	p.closeTrack()

	var src beep.Streamer = track.Streamer
	if p.Loop {
		src = beep.Loop(-1, track.Streamer)
	}
	tap := NewTap(src, p.RingSize)
	ctrl := &beep.Ctrl{Streamer: tap}

	speaker.Lock()
	p.track, p.tap, p.ctrl, p.rate = track, tap, ctrl, track.Format.SampleRate
	speaker.Unlock()

	speaker.Play(ctrl)
	slog.Info("soundtrack started", "path", path, "duration", track.Duration().Round(time.Second), "loop", p.Loop)
	return nil
}

// TogglePause pauses or resumes playback. It is a no-op with nothing loaded.
func (p *Player) TogglePause() bool {
	if p.ctrl == nil {
		return false
	}
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	paused := p.ctrl.Paused
	speaker.Unlock()
	return paused
}

// Playing reports whether a track is loaded and not paused.
func (p *Player) Playing() bool {
	if p.ctrl == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !p.ctrl.Paused
}

// Level returns the smoothed loudness in [0,1]. Call once per frame.
func (p *Player) Level() float64 {
	if p.tap == nil {
		return p.meter.Update(0)
	}
	return p.meter.Update(p.tap.RMS(meterWindow))
}

// Close stops playback and releases the track.
func (p *Player) Close() {
	if p.initDone {
		speaker.Clear()
	}
	p.closeTrack()
}

func (p *Player) closeTrack() {
	if p.track == nil {
		return
	}
	if err := p.track.Close(); err != nil {
		slog.Warn("closing soundtrack", "path", p.track.Path, "error", err)
	}
	p.track, p.tap, p.ctrl = nil, nil, nil
}
