package sim

import "fmt"

// Event is a transition request fed to the state machine.
type Event int

const (
	EventPlay          Event = iota // Space
	EventBack                       // Escape
	EventConfirm                    // Return
	EventRoundComplete              // Raised by the scorer
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventPlay:
		return "Play"
	case EventBack:
		return "Back"
	case EventConfirm:
		return "Confirm"
	case EventRoundComplete:
		return "RoundComplete"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Effect is a side effect the simulation performs for a transition.
type Effect int

const (
	EffectEnterMenu   Effect = iota // Spawn menu decorations
	EffectExitMenu                  // Despawn menu decorations
	EffectEnterGame                 // Reset GameState, spawn nozzles, banner and hidden labels
	EffectExitGame                  // Despawn buckets, nozzles and labels
	EffectTogglePause               // Flip the pause flag and the pause label
	EffectShowScore                 // Reveal the final score
	EffectQuit                      // Leave the program
)

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectEnterMenu:
		return "EnterMenu"
	case EffectExitMenu:
		return "ExitMenu"
	case EffectEnterGame:
		return "EnterGame"
	case EffectExitGame:
		return "ExitGame"
	case EffectTogglePause:
		return "TogglePause"
	case EffectShowScore:
		return "ShowScore"
	case EffectQuit:
		return "Quit"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// Transition computes the next state for an event. accepted is false when
// the event means nothing in the current state; next is then equal to s and
// effects is nil. Exit effects always precede enter effects.
//
// A phase outside the known set panics: the phase set is closed, so such a
// value can only come from a programming error.
func Transition(s State, ev Event) (next State, effects []Effect, accepted bool) {
	switch s.Phase {
	case PhaseMainMenu:
		switch ev {
		case EventPlay:
			return State{Phase: PhaseInGame}, []Effect{EffectExitMenu, EffectEnterGame}, true
		case EventBack:
			return s, []Effect{EffectQuit}, true
		}

	case PhaseInGame:
		switch ev {
		case EventBack:
			return State{Phase: PhaseInGame, Paused: !s.Paused}, []Effect{EffectTogglePause}, true
		case EventConfirm:
			if s.Paused {
				return State{Phase: PhaseMainMenu}, []Effect{EffectExitGame, EffectEnterMenu}, true
			}
		case EventRoundComplete:
			return State{Phase: PhaseScoreDisplay}, []Effect{EffectShowScore}, true
		}

	case PhaseScoreDisplay:
		if ev == EventConfirm {
			return State{Phase: PhaseMainMenu}, []Effect{EffectExitGame, EffectEnterMenu}, true
		}

	default:
		panic(fmt.Sprintf("sim: invalid phase %v", s.Phase))
	}

	return s, nil, false
}
