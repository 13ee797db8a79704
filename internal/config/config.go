// Package config loads the page configuration: embedded defaults overlaid by an optional YAML file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/hackpage/internal/particles"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Fallback window size when neither the defaults nor the user set one.
const (
	WindowWidth  = 1280
	WindowHeight = 800
)

// Config holds everything the page can be tuned with.
type Config struct {
	Window    WindowConfig   `yaml:"window"`
	Particles ParticleConfig `yaml:"particles"`
	Effects   EffectsConfig  `yaml:"effects"`
	Hero      HeroConfig     `yaml:"hero"`
	Audio     AudioConfig    `yaml:"audio"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Crisp      bool   `yaml:"crisp"` // render at device pixel density
	Fullscreen bool   `yaml:"fullscreen"`
	TPS        int    `yaml:"tps"`
}

// ParticleConfig mirrors particles.Params in YAML-friendly form.
type ParticleConfig struct {
	DensityMode        string   `yaml:"density_mode"`
	DensityDivisor     float64  `yaml:"density_divisor"`
	AreaDivisor        float64  `yaml:"area_divisor"`
	Cap                int      `yaml:"cap"`
	InteractionRadius  float64  `yaml:"interaction_radius"`
	RepulsionStrength  float64  `yaml:"repulsion_strength"`
	RelaxationFactor   float64  `yaml:"relaxation_factor"`
	BoundaryPolicy     string   `yaml:"boundary_policy"`
	BounceDamping      float64  `yaml:"bounce_damping"`
	ConnectionDistance float64  `yaml:"connection_distance"`
	SpeedRange         float64  `yaml:"speed_range"`
	MinSize            float64  `yaml:"min_size"`
	MaxSize            float64  `yaml:"max_size"`
	MinOpacity         float64  `yaml:"min_opacity"`
	MaxOpacity         float64  `yaml:"max_opacity"`
	Palette            []string `yaml:"palette"`
	Seed               int64    `yaml:"seed"` // 0 = time based
}

// EffectsConfig toggles the decorative layers.
type EffectsConfig struct {
	CanvasOpacity float64 `yaml:"canvas_opacity"`
	Grid          bool    `yaml:"grid"`
	GridPeriod    float64 `yaml:"grid_period"` // seconds per cell
	Blobs         bool    `yaml:"blobs"`
	Glow          bool    `yaml:"glow"`
	GlowFrequency float64 `yaml:"glow_frequency"`
	GlowDamping   float64 `yaml:"glow_damping"`
}

// HeroConfig is the text content of the hero section.
type HeroConfig struct {
	Title      string         `yaml:"title"`
	Version    string         `yaml:"version"`
	Taglines   []string       `yaml:"taglines"`
	Highlight  string         `yaml:"highlight"`
	Status     string         `yaml:"status"`
	EventStart string         `yaml:"event_start"` // RFC 3339, empty disables the countdown
	Buttons    []ButtonConfig `yaml:"buttons"`
	Socials    []LinkConfig   `yaml:"socials"`
}

// ButtonConfig is one call-to-action.
type ButtonConfig struct {
	Label string `yaml:"label"`
	Kind  string `yaml:"kind"` // primary | secondary | accent
	URL   string `yaml:"url"`
}

// LinkConfig is one social link.
type LinkConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// AudioConfig configures the optional soundtrack.
type AudioConfig struct {
	Path      string  `yaml:"path"`
	Loop      bool    `yaml:"loop"`
	RingSize  int     `yaml:"ring_size"`
	Smoothing float64 `yaml:"smoothing"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults returns the embedded configuration.
func Defaults() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if cfg.Window.Width <= 0 {
		cfg.Window.Width = WindowWidth
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = WindowHeight
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalid, c.Window.TPS)
	}
	if _, err := c.Particles.Params(); err != nil {
		return err
	}
	if c.Effects.CanvasOpacity < 0 || c.Effects.CanvasOpacity > 1 {
		return fmt.Errorf("%w: canvas opacity %v", ErrInvalid, c.Effects.CanvasOpacity)
	}
	if c.Effects.GridPeriod <= 0 {
		return fmt.Errorf("%w: grid period must be positive, got %v", ErrInvalid, c.Effects.GridPeriod)
	}
	if c.Effects.GlowFrequency <= 0 {
		return fmt.Errorf("%w: glow frequency must be positive, got %v", ErrInvalid, c.Effects.GlowFrequency)
	}
	if _, err := c.Hero.Countdown(); err != nil {
		return err
	}
	for _, b := range c.Hero.Buttons {
		switch b.Kind {
		case "primary", "secondary", "accent":
		default:
			return fmt.Errorf("%w: button %q has kind %q", ErrInvalid, b.Label, b.Kind)
		}
	}
	if c.Audio.RingSize <= 0 {
		return fmt.Errorf("%w: audio ring size must be positive, got %d", ErrInvalid, c.Audio.RingSize)
	}
	if c.Audio.Smoothing < 0 || c.Audio.Smoothing >= 1 {
		return fmt.Errorf("%w: audio smoothing %v", ErrInvalid, c.Audio.Smoothing)
	}
	return nil
}

// Params converts the section into simulator parameters.
func (p ParticleConfig) Params() (particles.Params, error) {
	mode, err := particles.ParseDensityMode(p.DensityMode)
	if err != nil {
		return particles.Params{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	policy, err := particles.ParseBoundaryPolicy(p.BoundaryPolicy)
	if err != nil {
		return particles.Params{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	palette, err := particles.ParsePalette(p.Palette)
	if err != nil {
		return particles.Params{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	out := particles.Params{
		DensityMode:        mode,
		DensityDivisor:     p.DensityDivisor,
		AreaDivisor:        p.AreaDivisor,
		Cap:                p.Cap,
		InteractionRadius:  p.InteractionRadius,
		RepulsionStrength:  p.RepulsionStrength,
		RelaxationFactor:   p.RelaxationFactor,
		Boundary:           policy,
		BounceDamping:      p.BounceDamping,
		ConnectionDistance: p.ConnectionDistance,
		SpeedRange:         p.SpeedRange,
		MinSize:            p.MinSize,
		MaxSize:            p.MaxSize,
		MinOpacity:         p.MinOpacity,
		MaxOpacity:         p.MaxOpacity,
		Palette:            palette,
	}
	if err := out.Validate(); err != nil {
		return particles.Params{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return out, nil
}

// Countdown parses EventStart. The zero time means no countdown.
func (h HeroConfig) Countdown() (time.Time, error) {
	if h.EventStart == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, h.EventStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: event_start: %v", ErrInvalid, err)
	}
	return t, nil
}

// SeedOrNow returns the configured particle seed, or a time based one.
func (p ParticleConfig) SeedOrNow() int64 {
	if p.Seed != 0 {
		return p.Seed
	}
	return time.Now().UnixNano()
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// WriteYAML saves the effective configuration.
func (c *Config) WriteYAML(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
