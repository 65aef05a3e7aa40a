package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionUp) {
		t.Fatal("zero InputFrame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionPause)
	for a := ActionNone; a <= ActionPause; a++ {
		want := a == ActionLeft || a == ActionPause
		if got := f.Has(a); got != want {
			t.Errorf("Has(%v) = %v, want %v", a, got, want)
		}
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame not empty after Clear")
	}
}

func TestInputFrameIgnoresNone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)
	f.Set(Action(200))

	if !f.Empty() {
		t.Error("ActionNone and out-of-range actions should not be recorded")
	}
	if f.Has(Action(200)) {
		t.Error("Has(200) = true")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionDown:    "Down",
		ActionRight:   "Right",
		ActionQuit:    "Quit",
		ActionPause:   "Pause",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}

	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", a, got, want)
		}
	}
}
