package sim

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paints/internal/config"
	"github.com/vovakirdan/paints/internal/ecs"
)

// ScoreText formats the final score shown at the end of a round.
func ScoreText(score float64) string {
	return fmt.Sprintf("Score: %03d\n[Return] to go to main menu", int(math.Round(score*1000)))
}

// ScoredBucket reports one bucket that left the play area.
type ScoredBucket struct {
	Bucket   ecs.Bucket
	Distance float64
}

// Scorer removes buckets that left the play area and accumulates how far
// their paint was from the label.
type Scorer struct {
	exitX  float64
	max    uint
	logger *log.Logger
	warned map[ecs.Entity]bool // Broken buckets already reported
}

// NewScorer creates a scorer. A bucket counts as gone once its center is
// past the right edge by half a bucket width.
func NewScorer(cfg config.PaintsConfig, logger *log.Logger) *Scorer {
	return &Scorer{
		exitX:  cfg.Screen.Width/2 + cfg.Bucket.Width/2,
		max:    uint(cfg.Bucket.SpawnMax),
		logger: logger,
		warned: make(map[ecs.Entity]bool),
	}
}

// Reset forgets the buckets reported in the previous round.
func (s *Scorer) Reset() {
	clear(s.warned)
}

// ExitX returns the X coordinate a bucket must exceed to be scored.
func (s *Scorer) ExitX() float64 {
	return s.exitX
}

// Update scores every bucket past the exit line, in id order. complete is
// true exactly when this call brought BucketsScored up to the cap; ShowScore
// is set at the same moment.
func (s *Scorer) Update(gs *GameState, w *ecs.World) (scored []ScoredBucket, complete bool) {
	for _, b := range w.Buckets() {
		pos, ok := w.Position(b.ID)
		if !ok || pos.X <= s.exitX {
			continue
		}

		paint, label, ok := w.BucketColors(b)
		if !ok {
			if !s.warned[b.ID] {
				s.warned[b.ID] = true
				s.logger.Warn("bucket left the screen without paint or label", "bucket", b.ID)
			}
			continue
		}

		distance := paint.Distance(label)
		gs.Score += distance
		gs.BucketsScored++
		w.Despawn(b.ID)

		s.logger.Debug("bucket scored",
			"bucket", b.ID,
			"paint", paint,
			"label", label,
			"distance", distance,
			"total", gs.Score,
		)
		scored = append(scored, ScoredBucket{Bucket: b, Distance: distance})

		if gs.BucketsScored == s.max && !gs.ShowScore {
			gs.ShowScore = true
			complete = true
		}
	}
	return scored, complete
}
