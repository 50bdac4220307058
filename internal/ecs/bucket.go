package ecs

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/paints/internal/core"
)

// BucketSpec describes a bucket to spawn.
type BucketSpec struct {
	Position core.Vec3
	Speed    float64
	Paint    core.Color
	Label    core.Color
	Assets   core.Assets
}

// Swatch offsets inside a bucket, in world units relative to the bucket.
var (
	paintOffset = core.Vec3{Y: 10, Z: 1}
	labelOffset = core.Vec3{Y: -30, Z: 1}
)

// SpawnBucket creates a moving bucket with its paint and label swatches
// and registers the composite.
func (w *World) SpawnBucket(spec BucketSpec) Bucket {
	id := w.Spawn()
	w.AddTag(id, TagBucket)
	w.SetPosition(id, spec.Position)
	w.SetVelocity(id, Velocity{Speed: spec.Speed})
	w.SetSprite(id, Sprite{Asset: spec.Assets.Bucket})

	paint := w.SpawnChild(id)
	w.SetPosition(paint, paintOffset)
	w.SetPaint(paint, spec.Paint)
	w.SetSprite(paint, Sprite{Asset: spec.Assets.Paint})

	label := w.SpawnChild(id)
	w.SetPosition(label, labelOffset)
	w.SetLabel(label, spec.Label)
	w.SetSprite(label, Sprite{Asset: spec.Assets.Label})

	b := Bucket{ID: id, Paint: paint, Label: label}
	w.buckets[id] = &b
	return b
}

// Buckets returns every bucket composite in ascending id order.
func (w *World) Buckets() []Bucket {
	out := make([]Bucket, 0, len(w.buckets))
	for _, b := range w.buckets {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b Bucket) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// BucketColors returns the current paint and the target label of a bucket.
// ok is false when either swatch is gone.
func (w *World) BucketColors(b Bucket) (paint, label core.Color, ok bool) {
	p, hasPaint := w.Paint(b.Paint)
	l, hasLabel := w.Label(b.Label)
	if !hasPaint || !hasLabel {
		return core.Color{}, core.Color{}, false
	}
	return *p, l, true
}
