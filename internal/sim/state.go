// Package sim implements the paints game simulation: the phase state
// machine, the fixed-step motion integrator, the bucket spawner, the color
// animator, nozzles and the scorer. It is driven one frame at a time by a
// frontend and never blocks.
package sim

import "fmt"

// Phase is a top-level game phase.
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhaseInGame
	PhaseScoreDisplay
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "MainMenu"
	case PhaseInGame:
		return "InGame"
	case PhaseScoreDisplay:
		return "ScoreDisplay"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is the machine state: the phase plus the pause flag of a round.
type State struct {
	Phase  Phase
	Paused bool
}

// GameState is the per-round bookkeeping. It is reset every time a round
// starts.
type GameState struct {
	Paused             bool
	TimeSinceLastSpawn float64 // Seconds
	BucketsSpawned     uint
	BucketsScored      uint
	Score              float64 // Sum of color distances, lower is better
	ShowScore          bool
}

// newGameState returns the state a fresh round starts with. The spawn timer
// starts one cadence in so the first bucket appears immediately.
func newGameState(cadence float64) GameState {
	return GameState{
		TimeSinceLastSpawn: cadence,
	}
}
