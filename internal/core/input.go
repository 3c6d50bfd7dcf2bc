package core

// Action is a semantic input event, abstracted from physical keys and mouse
// buttons. All actions carry no payload.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, W, K, left click - nudge the bird up
	ActionStart          // Enter - leave the title screen
	ActionRestart        // R - back to the title screen after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame queues the actions received between two simulation ticks.
// Input handlers append to it; the simulation drains it exactly once at the
// start of the next tick, so input is never applied mid-tick. Arrival order
// is preserved.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 4)}
}

// Set queues an action for this frame. ActionNone is dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns the queued actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear empties the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
