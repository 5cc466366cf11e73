// Package config loads the vib3demo configuration.
//
// Values come from three layers, later ones winning: built-in defaults, an
// optional TOML file, and VIB3_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/vib3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Host names.
const (
	HostHeadless = "headless"
	HostEbiten   = "ebiten"
	HostGoGPU    = "gogpu"
)

// Fog modes.
const (
	FogNone   = "none"
	FogLinear = "linear"
	FogExp2   = "exp2"
)

// Config is the demo configuration.
type Config struct {
	Host       string  `toml:"host" env:"VIB3_HOST"`
	Title      string  `toml:"title" env:"VIB3_TITLE"`
	Width      int     `toml:"width" env:"VIB3_WIDTH"`
	Height     int     `toml:"height" env:"VIB3_HEIGHT"`
	PixelRatio float64 `toml:"pixel_ratio" env:"VIB3_PIXEL_RATIO"`
	LogLevel   string  `toml:"log_level" env:"VIB3_LOG_LEVEL"`

	Scene    Scene    `toml:"scene" envPrefix:"VIB3_SCENE_"`
	Headless Headless `toml:"headless" envPrefix:"VIB3_HEADLESS_"`
}

// Scene configures what the demo draws.
type Scene struct {
	Background   string   `toml:"background" env:"BACKGROUND"`
	Fog          string   `toml:"fog" env:"FOG"`
	FogColor     string   `toml:"fog_color" env:"FOG_COLOR"`
	FogDensity   float32  `toml:"fog_density" env:"FOG_DENSITY"`
	SplitView    bool     `toml:"split_view" env:"SPLIT_VIEW"`
	OrbitControl bool     `toml:"orbit_controls" env:"ORBIT_CONTROLS"`
	Stats        bool     `toml:"stats" env:"STATS"`
	LineWidth    float64  `toml:"line_width" env:"LINE_WIDTH"`
	CameraSwitch Duration `toml:"camera_switch" env:"CAMERA_SWITCH"`
	GridSize     float32  `toml:"grid_size" env:"GRID_SIZE"`
	GridDivision int      `toml:"grid_divisions" env:"GRID_DIVISIONS"`
}

// Headless configures the offscreen host.
type Headless struct {
	Frames int     `toml:"frames" env:"FRAMES"`
	FPS    float64 `toml:"fps" env:"FPS"`
	Dump   string  `toml:"dump" env:"DUMP"`
}

// Duration is a time.Duration written as text, e.g. "5s".
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Host:       HostHeadless,
		Title:      "vib3",
		Width:      960,
		Height:     540,
		PixelRatio: 1,
		LogLevel:   "info",
		Scene: Scene{
			Background:   vib3.DefaultFogColor.String(),
			Fog:          FogLinear,
			FogColor:     vib3.DefaultFogColor.String(),
			FogDensity:   vib3.DefaultFogDensity,
			OrbitControl: true,
			LineWidth:    1,
			CameraSwitch: Duration(5 * time.Second),
			GridSize:     100,
			GridDivision: 20,
		},
		Headless: Headless{
			Frames: 60,
			FPS:    30,
		},
	}
}

// Load reads the configuration. An empty path skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	switch c.Host {
	case HostHeadless, HostEbiten, HostGoGPU:
	default:
		return fmt.Errorf("%w: unknown host %q", ErrInvalid, c.Host)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.PixelRatio <= 0 {
		return fmt.Errorf("%w: pixel ratio %v", ErrInvalid, c.PixelRatio)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.Scene.Fog {
	case FogNone, FogLinear, FogExp2:
	default:
		return fmt.Errorf("%w: unknown fog %q", ErrInvalid, c.Scene.Fog)
	}
	for _, s := range []string{c.Scene.Background, c.Scene.FogColor} {
		if _, err := vib3.ParseColor(s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if c.Scene.LineWidth <= 0 {
		return fmt.Errorf("%w: line width %v", ErrInvalid, c.Scene.LineWidth)
	}
	if c.Headless.FPS <= 0 || c.Headless.Frames < 0 {
		return fmt.Errorf("%w: headless fps %v frames %d", ErrInvalid, c.Headless.FPS, c.Headless.Frames)
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}

// BackgroundColor returns the parsed scene background.
func (c Config) BackgroundColor() vib3.Color {
	col, _ := vib3.ParseColor(c.Scene.Background)
	return col
}

// FogColor returns the parsed fog colour.
func (c Config) FogColor() vib3.Color {
	col, _ := vib3.ParseColor(c.Scene.FogColor)
	return col
}
