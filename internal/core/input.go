package core

// Action represents a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Held: move left (level-triggered)
	ActionRight          // Held: move right (level-triggered)
	ActionConfirm        // Space/Enter: start, restart
	ActionPause          // P/Esc: pause toggle while playing
	ActionQuit           // Q/Ctrl+C: leave the game from any state
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
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
// Left and Right report whether the direction is currently held;
// the other actions report whether they were triggered this frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
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

// Direction folds the held directions into -1, 0 or +1.
// Right wins when both are held.
func (f InputFrame) Direction() int {
	switch {
	case f.Has(ActionRight):
		return 1
	case f.Has(ActionLeft):
		return -1
	default:
		return 0
	}
}
