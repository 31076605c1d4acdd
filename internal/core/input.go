package core

// Action represents a semantic game action, abstracted from physical input.
// Keyboard keys, on-screen buttons and touch gestures all reduce to these.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // ArrowLeft, left button, swipe left
	ActionRight            // ArrowRight, right button, swipe right
	ActionSoftDrop         // ArrowDown, down button, swipe down
	ActionRotateCCW        // Q
	ActionRotateCW         // W, tap
	ActionQuit             // ctrl+c, esc - leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionRotateCW:
		return "RotateCW"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction is the inverse of String. Unknown names yield ActionNone, false.
func ParseAction(name string) (Action, bool) {
	for a := ActionNone; a <= ActionQuit; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return ActionNone, false
}

// IsGameplay reports whether the action mutates the playfield.
func (a Action) IsGameplay() bool {
	switch a {
	case ActionLeft, ActionRight, ActionSoftDrop, ActionRotateCCW, ActionRotateCW:
		return true
	}
	return false
}

// InputFrame holds the actions triggered during one simulation tick.
// Actions are kept in arrival order: two presses of the same key between
// ticks are two moves, not one.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
