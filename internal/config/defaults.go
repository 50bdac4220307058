package config

import (
	_ "embed"
)

//go:embed defaults/paints.yaml
var defaultPaintsYAML []byte

// DefaultPaintsConfig returns the built-in configuration. It mirrors the
// embedded defaults/paints.yaml and is used when that fails to parse.
func DefaultPaintsConfig() PaintsConfig {
	return PaintsConfig{
		Screen: ScreenConfig{
			Width:  1280,
			Height: 720,
		},
		Bucket: BucketConfig{
			Width:    168,
			Speed:    300,
			SpawnMax: 5,
			Y:        0,
		},
		Simulation: SimulationConfig{
			TickRate: 60,
			Seed:     0,
		},
		Nozzles: NozzlesConfig{
			Y:       200,
			MixRate: 0.25,
			List: []NozzleSpec{
				{X: -200, Color: "#ff0000"},
				{X: 0, Color: "#00ff00"},
				{X: 200, Color: "#0000ff"},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPaintsYAML
}
