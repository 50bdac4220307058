package sim

import (
	"math/rand"

	"github.com/vovakirdan/paints/internal/config"
	"github.com/vovakirdan/paints/internal/core"
	"github.com/vovakirdan/paints/internal/ecs"
)

// labelJitter scales the random phase offset of each label channel.
const labelJitter = 10.0

// Spawner releases buckets at a fixed cadence up to a per-round cap.
type Spawner struct {
	cadence float64
	max     uint
	origin  core.Vec3
	speed   float64
	assets  core.Assets
	rng     *rand.Rand
}

// NewSpawner creates a spawner for the given config. Buckets enter just off
// the left edge of the play area.
func NewSpawner(cfg config.PaintsConfig, assets core.Assets, rng *rand.Rand) *Spawner {
	return &Spawner{
		cadence: cfg.SpawnCadence(),
		max:     uint(cfg.Bucket.SpawnMax),
		origin: core.Vec3{
			X: -cfg.Screen.Width/2 - cfg.Bucket.Width/2,
			Y: cfg.Bucket.Y,
		},
		speed:  cfg.Bucket.Speed,
		assets: assets,
		rng:    rng,
	}
}

// Cadence returns the seconds between two spawns.
func (s *Spawner) Cadence() float64 {
	return s.cadence
}

// Max returns the per-round bucket cap.
func (s *Spawner) Max() uint {
	return s.max
}

// Update advances the spawn timer by dt and spawns at most one bucket.
// elapsed is the time since start, used to shape the label color.
// Nothing happens while paused.
func (s *Spawner) Update(gs *GameState, w *ecs.World, dt, elapsed float64) (ecs.Bucket, bool) {
	if gs.Paused {
		return ecs.Bucket{}, false
	}
	gs.TimeSinceLastSpawn += dt

	if gs.BucketsSpawned >= s.max || gs.TimeSinceLastSpawn <= s.cadence {
		return ecs.Bucket{}, false
	}

	b := w.SpawnBucket(ecs.BucketSpec{
		Position: s.origin,
		Speed:    s.speed,
		Paint:    core.ColorWhite,
		Label:    s.labelColor(elapsed),
		Assets:   s.assets,
	})

	// Keep the overshoot for the next cycle
	gs.TimeSinceLastSpawn -= s.cadence
	gs.BucketsSpawned++
	return b, true
}

// labelColor draws a target color: the same oscillation as the animator,
// each channel shifted by a random phase.
func (s *Spawner) labelColor(elapsed float64) core.Color {
	return core.Oscillate(elapsed, [3]float64{
		labelJitter * s.rng.Float64(),
		labelJitter * s.rng.Float64(),
		labelJitter * s.rng.Float64(),
	})
}
