package sim

import (
	"testing"

	"github.com/vovakirdan/paints/internal/core"
	"github.com/vovakirdan/paints/internal/ecs"
)

func TestIntegrateLinearMotion(t *testing.T) {
	w := ecs.NewWorld()
	b := w.SpawnBucket(ecs.BucketSpec{
		Position: core.Vec3{X: -724, Y: 0},
		Speed:    300,
		Paint:    core.ColorWhite,
		Label:    core.ColorBlack,
	})
	still := w.Spawn()
	w.SetPosition(still, core.Vec3{X: 5})

	const step = 0.25
	for n := 1; n <= 8; n++ {
		Integrate(w, step)
		pos, _ := w.Position(b.ID)
		if want := -724 + 300*step*float64(n); pos.X != want {
			t.Fatalf("after %d steps x = %f, expected %f", n, pos.X, want)
		}
		if pos.Y != 0 {
			t.Fatalf("y changed to %f", pos.Y)
		}
	}

	// Swatches move with the bucket through the hierarchy, not on their own
	local, _ := w.Position(b.Paint)
	if local.X != 0 {
		t.Errorf("paint swatch local x = %f, expected 0", local.X)
	}
	abs, _ := w.WorldPosition(b.Paint)
	if abs.X != -124 {
		t.Errorf("paint swatch world x = %f, expected -124", abs.X)
	}
	if pos, _ := w.Position(still); pos.X != 5 {
		t.Errorf("entity without velocity moved to %f", pos.X)
	}
}
