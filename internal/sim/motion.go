package sim

import "github.com/vovakirdan/paints/internal/ecs"

// Integrate advances every moving entity by one fixed step along +X.
// Entities only touch their own position, so order does not matter.
func Integrate(w *ecs.World, step float64) {
	for _, e := range w.Moving() {
		pos, _ := w.Position(e)
		vel, _ := w.Velocity(e)
		pos.X += vel.Speed * step
	}
}
