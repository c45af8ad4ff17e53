package core

import "testing"

func TestInputFrameHeldAndPressed(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Press(ActionFire)

	if !f.Has(ActionLeft) {
		t.Error("Left should be held")
	}
	if f.Has(ActionFire) {
		t.Error("Fire was only pressed, not held")
	}
	if !f.WasPressed(ActionFire) {
		t.Error("Fire edge should be recorded")
	}
	if f.WasPressed(ActionLeft) {
		t.Error("Left was only held, not pressed")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionJump) || f.WasPressed(ActionQuit) {
		t.Error("zero frame should report nothing")
	}

	f.Set(ActionJump)
	f.Press(ActionQuit)
	if !f.Has(ActionJump) || !f.WasPressed(ActionQuit) {
		t.Error("zero frame should lazily allocate on Set/Press")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should print Unknown")
	}
}
