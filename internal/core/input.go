package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the game only sees intents.
type Action int

const (
	ActionNone      Action = iota
	ActionBounce           // Trigger the next bounce arc; also starts from idle
	ActionForceOver        // End the current game immediately
	ActionRestart          // Restart after game over
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionBounce:
		return "Bounce"
	case ActionForceOver:
		return "ForceOver"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered since the last consumed
// simulation step. All actions here are discrete triggers, not held
// states, so the platform latches them until a fixed step runs.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
