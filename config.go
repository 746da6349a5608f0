package slingshot

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed configs/slingshot.yaml
var defaultConfigYAML []byte

// ElasticConfig parameterizes ElasticOut.
type ElasticConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"`
}

// DragConfig tunes the drag input mapper.
type DragConfig struct {
	// Threshold is the pull length at which a drag becomes a launch.
	Threshold float64 `yaml:"threshold"`
	// VelocityRatio scales pull length by the mean container extent.
	VelocityRatio float64 `yaml:"velocity_ratio"`
	// MaxSpeed caps the launch speed in units per second.
	MaxSpeed float64 `yaml:"max_speed"`
	// ResetDuration is how long the handle springs back to rest, in seconds.
	ResetDuration float64       `yaml:"reset_duration"`
	ResetElastic  ElasticConfig `yaml:"reset_elastic"`
	// LineFade is the connector fade-out time after release, in seconds.
	LineFade float64 `yaml:"line_fade"`
	// DeadZone is the pointer movement before drag events start, in pixels.
	DeadZone float64 `yaml:"dead_zone"`
}

// FlightConfig tunes the projectile simulator.
type FlightConfig struct {
	// Resistance is the exponential velocity decay rate per second.
	Resistance float64 `yaml:"resistance"`
	// RestSpeed is the speed below which the projectile is considered at rest.
	RestSpeed float64 `yaml:"rest_speed"`
	// FadeDuration is the fade-out time once at rest, in seconds.
	FadeDuration float64 `yaml:"fade_duration"`
}

// WanderConfig tunes wandering targets.
type WanderConfig struct {
	// Duration is the range of per-leg travel times, in seconds.
	Duration Range `yaml:"duration"`
	// TurnDuration is how long a target takes to face its next waypoint.
	TurnDuration float64       `yaml:"turn_duration"`
	TurnElastic  ElasticConfig `yaml:"turn_elastic"`
}

// HitConfig tunes the fade applied to a target when it is hit.
type HitConfig struct {
	Duration float64 `yaml:"duration"`
	Alpha    float64 `yaml:"alpha"`
	Scale    float64 `yaml:"scale"`
}

// BurstConfig tunes the confetti burst fired on every hit.
type BurstConfig struct {
	Count        Range    `yaml:"count"`
	Speed        Range    `yaml:"speed"`
	Scale        Range    `yaml:"scale"`
	Gravity      float64  `yaml:"gravity"`
	Lifetime     float64  `yaml:"lifetime"`
	GrowDuration float64  `yaml:"grow_duration"`
	Size         float64  `yaml:"size"`
	MaxParticles int      `yaml:"max_particles"`
	Colors       []string `yaml:"colors"`
}

// RectConfig places a sprite in container-local coordinates.
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Hidden sprites are drawn nowhere and never registered as targets.
	Hidden bool   `yaml:"hidden,omitempty"`
	Color  string `yaml:"color,omitempty"`
}

// Rect returns the configured rectangle.
func (r RectConfig) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// LayoutConfig positions the game's sprites.
type LayoutConfig struct {
	Projectile  RectConfig   `yaml:"projectile"`
	Handle      RectConfig   `yaml:"handle"`
	ResetButton RectConfig   `yaml:"reset_button"`
	Targets     []RectConfig `yaml:"targets"`
	Wanderers   []RectConfig `yaml:"wanderers"`
	Background  string       `yaml:"background"`
}

// Config is the full game configuration.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// Seed fixes the random source; 0 picks one from the clock.
	Seed    uint64 `yaml:"seed"`
	ShowFPS bool   `yaml:"show_fps"`
	// ResizeDebounce coalesces resize bursts, in seconds.
	ResizeDebounce float64 `yaml:"resize_debounce"`

	Drag   DragConfig   `yaml:"drag"`
	Flight FlightConfig `yaml:"flight"`
	Wander WanderConfig `yaml:"wander"`
	Hit    HitConfig    `yaml:"hit"`
	Burst  BurstConfig  `yaml:"burst"`
	Layout LayoutConfig `yaml:"layout"`
}

// DefaultConfig returns the built-in configuration. It matches the embedded
// configs/slingshot.yaml and is used when that cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Title:          "slingshot",
		Width:          960,
		Height:         540,
		ResizeDebounce: 0.25,
		Drag: DragConfig{
			Threshold:     24,
			VelocityRatio: 0.01,
			MaxSpeed:      2000,
			ResetDuration: 0.8,
			ResetElastic:  ElasticConfig{Amplitude: 1, Period: 0.5},
			LineFade:      0.2,
			DeadZone:      2,
		},
		Flight: FlightConfig{
			Resistance:   2.5,
			RestSpeed:    8,
			FadeDuration: 0.5,
		},
		Wander: WanderConfig{
			Duration:     Range{Min: 1.5, Max: 3},
			TurnDuration: 1,
			TurnElastic:  ElasticConfig{Amplitude: 1, Period: 0.75},
		},
		Hit: HitConfig{Duration: 0.2, Alpha: 0.1, Scale: 0.95},
		Burst: BurstConfig{
			Count:        Range{Min: 10, Max: 20},
			Speed:        Range{Min: 500, Max: 1000},
			Scale:        Range{Min: 0.3, Max: 1},
			Gravity:      500,
			Lifetime:     2,
			GrowDuration: 0.3,
			Size:         10,
			MaxParticles: 256,
			Colors:       []string{"#2960F7", "#1e1e1e", "#858585", "#2960F7"},
		},
		Layout: LayoutConfig{
			Projectile:  RectConfig{X: 468, Y: 440, Width: 24, Height: 40, Color: "#1e1e1e"},
			Handle:      RectConfig{X: 460, Y: 440, Width: 40, Height: 40, Color: "#2960F7"},
			ResetButton: RectConfig{X: 848, Y: 16, Width: 96, Height: 32, Color: "#858585"},
			Targets: []RectConfig{
				{X: 160, Y: 120, Width: 56, Height: 56, Color: "#1e1e1e"},
				{X: 440, Y: 80, Width: 56, Height: 56, Color: "#1e1e1e"},
				{X: 760, Y: 160, Width: 56, Height: 56, Color: "#1e1e1e"},
			},
			Wanderers: []RectConfig{
				{Width: 32, Height: 32, Color: "#2960F7"},
				{Width: 32, Height: 32, Color: "#2960F7"},
			},
			Background: "#f4f4f4",
		},
	}
}

// LoadConfig loads the game configuration.
// Search order: customPath -> ~/.slingshot/config.yaml -> ./configs/slingshot.yaml -> embedded default
func LoadConfig(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseConfig(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseConfig(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/slingshot.yaml"); err == nil {
		if cfg, err := ParseConfig(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseConfig(defaultConfigYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slingshot", filename)
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	check(c.Width > 0 && c.Height > 0, "window size %dx%d must be positive", c.Width, c.Height)
	check(c.ResizeDebounce >= 0, "resize_debounce %v must not be negative", c.ResizeDebounce)
	check(c.Drag.Threshold >= 0, "drag.threshold %v must not be negative", c.Drag.Threshold)
	check(c.Drag.VelocityRatio > 0, "drag.velocity_ratio %v must be positive", c.Drag.VelocityRatio)
	check(c.Drag.MaxSpeed > 0, "drag.max_speed %v must be positive", c.Drag.MaxSpeed)
	check(c.Flight.Resistance > 0, "flight.resistance %v must be positive", c.Flight.Resistance)
	check(c.Flight.RestSpeed > 0, "flight.rest_speed %v must be positive", c.Flight.RestSpeed)
	check(c.Wander.Duration.Min > 0 && c.Wander.Duration.Min <= c.Wander.Duration.Max,
		"wander.duration [%v, %v] must be a positive range", c.Wander.Duration.Min, c.Wander.Duration.Max)
	check(c.Burst.Count.Min >= 0 && c.Burst.Count.Min <= c.Burst.Count.Max,
		"burst.count [%v, %v] must be a non-negative range", c.Burst.Count.Min, c.Burst.Count.Max)
	for _, s := range c.Burst.Colors {
		if _, err := ParseHexColor(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
