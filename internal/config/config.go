// Package config provides YAML (or TOML) based tuning for the paints game:
// play area size, bucket speed and spawn cap, the fixed tick rate and the
// nozzle layout.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/paints/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// PaintsConfig contains all configuration for the game.
type PaintsConfig struct {
	Screen     ScreenConfig     `yaml:"screen" toml:"screen"`
	Bucket     BucketConfig     `yaml:"bucket" toml:"bucket"`
	Simulation SimulationConfig `yaml:"simulation" toml:"simulation"`
	Nozzles    NozzlesConfig    `yaml:"nozzles" toml:"nozzles"`
}

// ScreenConfig defines the play area in world units.
// The origin sits at the center of the area.
type ScreenConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BucketConfig defines bucket geometry, speed and the per-round cap.
type BucketConfig struct {
	Width    float64 `yaml:"width" toml:"width"`
	Speed    float64 `yaml:"speed" toml:"speed"` // World units per second
	SpawnMax int     `yaml:"spawn_max" toml:"spawn_max"`
	Y        float64 `yaml:"y" toml:"y"`
}

// SimulationConfig defines the fixed timestep and RNG seeding.
type SimulationConfig struct {
	TickRate int   `yaml:"tick_rate" toml:"tick_rate"` // Fixed ticks per second
	Seed     int64 `yaml:"seed" toml:"seed"`           // 0 = time based
}

// NozzlesConfig defines the nozzle row above the conveyor.
type NozzlesConfig struct {
	Y       float64      `yaml:"y" toml:"y"`
	MixRate float64      `yaml:"mix_rate" toml:"mix_rate"` // Fraction of the nozzle color mixed in per shot
	List    []NozzleSpec `yaml:"list" toml:"list"`
}

// NozzleSpec places a single nozzle.
type NozzleSpec struct {
	X     float64 `yaml:"x" toml:"x"`
	Color string  `yaml:"color" toml:"color"` // "#rrggbb"
}

// SpawnCadence returns the seconds between two bucket spawns: the time it
// takes two bucket widths to pass a point.
func (c PaintsConfig) SpawnCadence() float64 {
	return c.Bucket.Width / c.Bucket.Speed * 2
}

// Runtime returns the core runtime settings derived from this config.
func (c PaintsConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: c.Simulation.TickRate,
		Seed:     c.Simulation.Seed,
	}
}

// Nozzle is a validated nozzle with a parsed color.
type Nozzle struct {
	X     float64
	Color core.Color
}

// ParsedNozzles returns the nozzle list with colors decoded.
func (c PaintsConfig) ParsedNozzles() ([]Nozzle, error) {
	out := make([]Nozzle, 0, len(c.Nozzles.List))
	for i, n := range c.Nozzles.List {
		col, err := core.ParseHex(n.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: nozzles.list[%d]: %w", ErrInvalid, i, err)
		}
		out = append(out, Nozzle{X: n.X, Color: col})
	}
	return out, nil
}

// Validate checks every field the simulation depends on.
func (c PaintsConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size must be positive, got %gx%g", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Bucket.Width <= 0:
		return fmt.Errorf("%w: bucket.width must be positive, got %g", ErrInvalid, c.Bucket.Width)
	case c.Bucket.Speed <= 0:
		return fmt.Errorf("%w: bucket.speed must be positive, got %g", ErrInvalid, c.Bucket.Speed)
	case c.Bucket.SpawnMax <= 0:
		return fmt.Errorf("%w: bucket.spawn_max must be positive, got %d", ErrInvalid, c.Bucket.SpawnMax)
	case c.Simulation.TickRate <= 0:
		return fmt.Errorf("%w: simulation.tick_rate must be positive, got %d", ErrInvalid, c.Simulation.TickRate)
	case c.Nozzles.MixRate <= 0 || c.Nozzles.MixRate > 1:
		return fmt.Errorf("%w: nozzles.mix_rate must be in (0, 1], got %g", ErrInvalid, c.Nozzles.MixRate)
	case len(c.Nozzles.List) > len(core.NozzleActions):
		return fmt.Errorf("%w: at most %d nozzles are supported, got %d", ErrInvalid, len(core.NozzleActions), len(c.Nozzles.List))
	}

	_, err := c.ParsedNozzles()
	return err
}
