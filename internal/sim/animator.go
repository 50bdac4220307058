package sim

import (
	"github.com/vovakirdan/paints/internal/core"
	"github.com/vovakirdan/paints/internal/ecs"
)

// NameOffset derives a stable time offset from an entity name: the sum of
// its bytes, wrapped to 8 bits.
func NameOffset(name string) float64 {
	var sum uint8
	for i := 0; i < len(name); i++ {
		sum += name[i]
	}
	return float64(sum)
}

// AnimatedColor returns the color of a named decorative entity at time t.
func AnimatedColor(name string, t float64) core.Color {
	return core.Oscillate(t+NameOffset(name), [3]float64{})
}

// Animate recolors every named entity carrying all bits of mask plus
// TagAnimated. Entities without a name are left alone.
func Animate(w *ecs.World, mask ecs.Tag, elapsed float64) {
	for _, e := range w.Tagged(mask | ecs.TagAnimated) {
		name, ok := w.Name(e)
		if !ok {
			continue
		}
		w.SetPaint(e, AnimatedColor(name, elapsed))
	}
}
