package sim

import (
	"slices"
	"testing"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     State
		event    Event
		want     State
		effects  []Effect
		accepted bool
	}{
		{"menu play", State{Phase: PhaseMainMenu}, EventPlay, State{Phase: PhaseInGame}, []Effect{EffectExitMenu, EffectEnterGame}, true},
		{"menu back quits", State{Phase: PhaseMainMenu}, EventBack, State{Phase: PhaseMainMenu}, []Effect{EffectQuit}, true},
		{"menu confirm ignored", State{Phase: PhaseMainMenu}, EventConfirm, State{Phase: PhaseMainMenu}, nil, false},
		{"menu round complete ignored", State{Phase: PhaseMainMenu}, EventRoundComplete, State{Phase: PhaseMainMenu}, nil, false},
		{"game pause", State{Phase: PhaseInGame}, EventBack, State{Phase: PhaseInGame, Paused: true}, []Effect{EffectTogglePause}, true},
		{"game unpause", State{Phase: PhaseInGame, Paused: true}, EventBack, State{Phase: PhaseInGame}, []Effect{EffectTogglePause}, true},
		{"game confirm needs pause", State{Phase: PhaseInGame}, EventConfirm, State{Phase: PhaseInGame}, nil, false},
		{"paused confirm leaves", State{Phase: PhaseInGame, Paused: true}, EventConfirm, State{Phase: PhaseMainMenu}, []Effect{EffectExitGame, EffectEnterMenu}, true},
		{"game play ignored", State{Phase: PhaseInGame}, EventPlay, State{Phase: PhaseInGame}, nil, false},
		{"round complete", State{Phase: PhaseInGame}, EventRoundComplete, State{Phase: PhaseScoreDisplay}, []Effect{EffectShowScore}, true},
		{"score confirm", State{Phase: PhaseScoreDisplay}, EventConfirm, State{Phase: PhaseMainMenu}, []Effect{EffectExitGame, EffectEnterMenu}, true},
		{"score back ignored", State{Phase: PhaseScoreDisplay}, EventBack, State{Phase: PhaseScoreDisplay}, nil, false},
		{"score play ignored", State{Phase: PhaseScoreDisplay}, EventPlay, State{Phase: PhaseScoreDisplay}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, effects, ok := Transition(tt.from, tt.event)
			if ok != tt.accepted {
				t.Fatalf("accepted = %v, expected %v", ok, tt.accepted)
			}
			if next != tt.want {
				t.Errorf("next = %+v, expected %+v", next, tt.want)
			}
			if !slices.Equal(effects, tt.effects) {
				t.Errorf("effects = %v, expected %v", effects, tt.effects)
			}
		})
	}
}

func TestTransitionInvalidPhasePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Transition() with an unknown phase should panic")
		}
	}()
	Transition(State{Phase: Phase(42)}, EventPlay)
}

func TestPhaseString(t *testing.T) {
	if PhaseScoreDisplay.String() != "ScoreDisplay" {
		t.Errorf("String() = %q", PhaseScoreDisplay.String())
	}
	if Phase(9).String() != "Phase(9)" {
		t.Errorf("String() = %q", Phase(9).String())
	}
}
