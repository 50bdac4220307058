package sim

import (
	"math"

	"github.com/vovakirdan/paints/internal/core"
)

// Autopilot presses, for every nozzle, the fire key when one shot would
// bring the bucket beneath it closer to its label. It only reads the world,
// the shots happen in the next Frame.
func Autopilot(s *Simulation, in *core.InputFrame) {
	if s.Phase() != PhaseInGame || s.Game().Paused {
		return
	}
	w := s.World()
	halfWidth := s.cfg.Bucket.Width / 2
	mix := s.cfg.Nozzles.MixRate

	for i, nz := range s.Nozzles() {
		for _, b := range w.Buckets() {
			pos, ok := w.Position(b.ID)
			if !ok || math.Abs(pos.X-nz.X) > halfWidth {
				continue
			}
			paint, label, ok := w.BucketColors(b)
			if ok && paint.Lerp(nz.Color, mix).Distance(label) < paint.Distance(label) {
				in.Set(core.NozzleActions[i])
			}
			// Only the lowest-id bucket under a nozzle can be hit
			break
		}
	}
}
