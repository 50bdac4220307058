package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionPlay           // Space - start a round from the main menu
	ActionBack           // Escape - pause/unpause, or exit from the main menu
	ActionConfirm        // Return - leave a paused or finished round
	ActionNozzle1        // 1 - fire the first nozzle
	ActionNozzle2        // 2 - fire the second nozzle
	ActionNozzle3        // 3 - fire the third nozzle
	ActionPointer        // Left mouse button - fire the nozzle nearest to the pointer
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPlay:
		return "Play"
	case ActionBack:
		return "Back"
	case ActionConfirm:
		return "Confirm"
	case ActionNozzle1:
		return "Nozzle1"
	case ActionNozzle2:
		return "Nozzle2"
	case ActionNozzle3:
		return "Nozzle3"
	case ActionPointer:
		return "Pointer"
	default:
		return "Unknown"
	}
}

// NozzleActions lists the per-nozzle fire actions in nozzle order.
var NozzleActions = []Action{ActionNozzle1, ActionNozzle2, ActionNozzle3}

// InputFrame holds the "just pressed" edges collected during one frame.
// The simulation consumes a press once it has acted on it so that no two
// systems react to the same edge.
type InputFrame struct {
	// Actions maps action types to whether they were pressed this frame.
	Actions map[Action]bool

	// PointerX is the world X coordinate of the last ActionPointer press.
	PointerX float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetPointer records a pointer press at world coordinate x.
func (f *InputFrame) SetPointer(x float64) {
	f.Set(ActionPointer)
	f.PointerX = x
}

// Has returns true if the given action was pressed this frame and has not
// been consumed.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Consume reports whether the action was pressed and clears it.
func (f *InputFrame) Consume(a Action) bool {
	if !f.Has(a) {
		return false
	}
	delete(f.Actions, a)
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerX = 0
}

// Empty reports whether no action is pending.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}
