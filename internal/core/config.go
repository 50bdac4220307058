package core

// RuntimeConfig contains settings passed to the simulation at construction.
type RuntimeConfig struct {
	TickRate int   // Fixed simulation ticks per second (default 60)
	Seed     int64 // RNG seed for label colors; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time
	}
}

// Step returns the fixed simulation step in seconds.
func (c RuntimeConfig) Step() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// AssetID is an opaque handle to a texture or font. The simulation passes
// it through to the entities it spawns and never looks inside.
type AssetID string

// Assets bundles every handle the simulation hands out to entities.
type Assets struct {
	Bucket AssetID
	Paint  AssetID
	Label  AssetID
	Nozzle AssetID
	Icon   AssetID
	Font   AssetID
}

// DefaultAssets returns the handles understood by the terminal renderer.
func DefaultAssets() Assets {
	return Assets{
		Bucket: "bucket",
		Paint:  "paint",
		Label:  "label",
		Nozzle: "nozzle",
		Icon:   "icon",
		Font:   "font",
	}
}
