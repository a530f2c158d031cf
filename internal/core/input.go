package core

// Action represents a semantic scene action, abstracted from physical key presses.
// This allows scenes to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionPause              // P, Space - pause/unpause scrolling
	ActionFaster             // + - raise base speed
	ActionSlower             // - - lower base speed
	ActionScrollUp           // Up arrow, K - switch direction
	ActionScrollDown         // Down arrow, J
	ActionScrollLeft         // Left arrow, H
	ActionScrollRight        // Right arrow, L
	ActionBack               // B, Escape - go back to menu
	ActionQuit               // Q, Ctrl+C - exit scene/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionScrollUp:
		return "ScrollUp"
	case ActionScrollDown:
		return "ScrollDown"
	case ActionScrollLeft:
		return "ScrollLeft"
	case ActionScrollRight:
		return "ScrollRight"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
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
