package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, k - move up
	ActionDown           // S, Down arrow, j - move down
	ActionLeft           // A, Left arrow, h - move left
	ActionRight          // D, Right arrow, l - move right
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Vec is a 2D input vector with components in [-1, 1].
// Used for analog stick input; (0, 0) means the stick is centered.
type Vec struct {
	X, Y float64
}

// IsZero reports whether both components are exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// InputFrame represents the input state for a single simulation tick.
//
// Input is capability-based: digital actions are always present; an analog
// axis vector is optional and only meaningful when HasAxis is set. Games
// that support analog movement read Axis first and fall back to the digital
// directions when the vector is zero. The terminal platform only produces
// digital input, but the analog path keeps the engine testable against
// arbitrary stick vectors.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Axis is the analog stick vector, components in [-1, 1].
	Axis Vec

	// HasAxis reports whether an analog source populated Axis this frame.
	HasAxis bool
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

// SetAxis records an analog stick vector for this frame.
func (f *InputFrame) SetAxis(x, y float64) {
	f.Axis = Vec{X: x, Y: y}
	f.HasAxis = true
}

// Clear resets all actions and the axis for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Axis = Vec{}
	f.HasAxis = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Axis = f.Axis
	clone.HasAxis = f.HasAxis
	return clone
}

// DigitalVec converts the frame's 4-directional actions to a unit-component
// vector. Opposite directions cancel out.
func (f InputFrame) DigitalVec() Vec {
	var v Vec
	if f.Has(ActionLeft) {
		v.X -= 1
	}
	if f.Has(ActionRight) {
		v.X += 1
	}
	if f.Has(ActionUp) {
		v.Y -= 1
	}
	if f.Has(ActionDown) {
		v.Y += 1
	}
	return v
}
