package core

// Action is a player intent decoded from a key press.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart
	ActionQuit
	ActionPause
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame collects the actions pressed between two ticks.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a as pressed. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= 32 {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was pressed during the frame.
func (f InputFrame) Has(a Action) bool {
	return a < 32 && f.bits&(1<<a) != 0
}

// Empty reports whether no action was pressed.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear forgets all pressed actions.
func (f *InputFrame) Clear() {
	f.bits = 0
}
