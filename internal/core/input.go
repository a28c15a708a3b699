package core

// Action represents a semantic input, abstracted from physical key presses.
// The flow controller only reacts to the four flow-control actions; the
// rest are consumed by the host to drive demo gameplay and menus.
type Action int

const (
	ActionNone           Action = iota
	ActionQuit                  // Esc - quit request
	ActionForceGameOver         // End - jump straight to game over
	ActionForceDeath            // Delete - raise the death signal
	ActionForceBeatLevel        // Home - treat the level as beaten
	ActionConfirm               // Enter - start from the main menu
	ActionBack                  // B - back to the main menu after game over
	ActionRestart               // R - restart the whole session after game over
	ActionCollect               // Space - demo gameplay: pick up points
	ActionHit                   // X - demo gameplay: the player gets hit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	case ActionForceGameOver:
		return "ForceGameOver"
	case ActionForceDeath:
		return "ForceDeath"
	case ActionForceBeatLevel:
		return "ForceBeatLevel"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionCollect:
		return "Collect"
	case ActionHit:
		return "Hit"
	default:
		return "Unknown"
	}
}

// IsFlowControl reports whether the action is one of the debounced
// flow-control inputs sampled by the controller.
func (a Action) IsFlowControl() bool {
	switch a {
	case ActionQuit, ActionForceGameOver, ActionForceDeath, ActionForceBeatLevel:
		return true
	}
	return false
}

// InputFrame represents the input state sampled for one controller tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
