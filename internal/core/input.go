package core

// Action represents a semantic game control, abstracted from physical keys.
// Hosts translate keyboard state into actions; games never see keys.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow, A - move left
	ActionRight         // Right arrow, D - move right
	ActionRun           // H, Shift - run modifier
	ActionJump          // Up arrow, W, Space - jump
	ActionFire          // X - fire thunder / shooting pose
	ActionPause         // P - pause/unpause
	ActionEscape        // Escape - leave the game
	ActionQuit          // Q, Ctrl+C, window close - quit request
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
	case ActionRun:
		return "Run"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionEscape:
		return "Escape"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick.
//
// Held is the continuous state: controls currently held down.
// Pressed holds the discrete, edge-triggered events of this tick
// (a control going from released to pressed, or a quit request).
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Press records an edge-triggered event for this frame.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Has returns true if the action is held this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Held[a]
}

// WasPressed returns true if the action's edge event fired this frame.
func (f InputFrame) WasPressed(a Action) bool {
	return f.Pressed[a]
}
