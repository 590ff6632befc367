package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow - move paddle left (held)
	ActionRight            // Right arrow - move paddle right (held)
	ActionConfirm          // Enter - start / retry
	ActionBackspace        // Backspace - delete last name character
	ActionQuit             // Esc - quit key of the current screen
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
	case ActionBackspace:
		return "Backspace"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input for one simulation tick: the actions active this
// tick plus any printable characters typed since the previous tick.
type InputFrame struct {
	Actions map[Action]bool
	Text    []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
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

// Type appends typed characters to the frame.
func (f *InputFrame) Type(runes ...rune) {
	f.Text = append(f.Text, runes...)
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = f.Text[:0]
}
