package sim

import (
	"math"

	"github.com/vovakirdan/paints/internal/config"
	"github.com/vovakirdan/paints/internal/core"
	"github.com/vovakirdan/paints/internal/ecs"
)

// Nozzle is a paint source above the conveyor.
type Nozzle struct {
	ID     ecs.Entity
	Swatch ecs.Entity // Child showing the nozzle color
	X      float64
	Color  core.Color
}

// Nozzles fires paint into the bucket passing beneath a nozzle.
type Nozzles struct {
	list      []Nozzle
	y         float64
	mixRate   float64
	halfWidth float64 // Half a bucket width: how far off-center a shot still lands
	assets    core.Assets
	specs     []config.Nozzle
}

// NewNozzles creates the nozzle row; call Spawn to place the entities.
func NewNozzles(cfg config.PaintsConfig, specs []config.Nozzle, assets core.Assets) *Nozzles {
	return &Nozzles{
		y:         cfg.Nozzles.Y,
		mixRate:   cfg.Nozzles.MixRate,
		halfWidth: cfg.Bucket.Width / 2,
		assets:    assets,
		specs:     specs,
	}
}

// Spawn creates one entity per nozzle, each owning a label swatch in the
// nozzle color.
func (n *Nozzles) Spawn(w *ecs.World) {
	n.list = n.list[:0]
	for _, spec := range n.specs {
		id := w.Spawn()
		w.AddTag(id, ecs.TagNozzle)
		w.SetPosition(id, core.Vec3{X: spec.X, Y: n.y})
		w.SetSprite(id, ecs.Sprite{Asset: n.assets.Nozzle})

		swatch := w.SpawnChild(id)
		w.SetPosition(swatch, core.Vec3{Z: 1})
		w.SetLabel(swatch, spec.Color)
		w.SetSprite(swatch, ecs.Sprite{Asset: n.assets.Label})

		n.list = append(n.list, Nozzle{ID: id, Swatch: swatch, X: spec.X, Color: spec.Color})
	}
}

// Clear forgets the spawned nozzles. The entities are despawned by the
// round exit.
func (n *Nozzles) Clear() {
	n.list = n.list[:0]
}

// List returns the spawned nozzles in order.
func (n *Nozzles) List() []Nozzle {
	return n.list
}

// Nearest returns the index of the nozzle closest to world X, or -1 when
// there are none.
func (n *Nozzles) Nearest(x float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, nz := range n.list {
		if d := math.Abs(nz.X - x); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Fire sprays nozzle i into the lowest-id bucket beneath it and returns
// that bucket. ok is false for an unknown nozzle or when nothing is below.
func (n *Nozzles) Fire(w *ecs.World, i int) (ecs.Bucket, bool) {
	if i < 0 || i >= len(n.list) {
		return ecs.Bucket{}, false
	}
	nz := n.list[i]

	for _, b := range w.Buckets() {
		pos, ok := w.Position(b.ID)
		if !ok || math.Abs(pos.X-nz.X) > n.halfWidth {
			continue
		}
		paint, ok := w.Paint(b.Paint)
		if !ok {
			continue
		}
		*paint = paint.Lerp(nz.Color, n.mixRate)
		return b, true
	}
	return ecs.Bucket{}, false
}
