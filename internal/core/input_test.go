package core

import "testing"

func TestInputFrameConsume(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPlay)

	if !f.Consume(ActionPlay) {
		t.Fatal("first Consume should report the press")
	}
	if f.Consume(ActionPlay) {
		t.Error("second Consume should not fire again")
	}
	if f.Has(ActionPlay) {
		t.Error("consumed action should be gone")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionBack) {
		t.Error("zero frame should have no actions")
	}
	if f.Consume(ActionBack) {
		t.Error("zero frame Consume should be false")
	}
	f.Set(ActionBack)
	if !f.Has(ActionBack) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	f.SetPointer(-150)

	if !f.Has(ActionPointer) || f.PointerX != -150 {
		t.Errorf("pointer not recorded: %+v", f)
	}

	f.Clear()
	if !f.Empty() || f.PointerX != 0 {
		t.Errorf("Clear should reset the frame: %+v", f)
	}
}

func TestActionString(t *testing.T) {
	if ActionConfirm.String() != "Confirm" {
		t.Errorf("ActionConfirm.String() = %q", ActionConfirm.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(99).String())
	}
}

func TestRuntimeConfigStep(t *testing.T) {
	if got := DefaultConfig().Step(); got != 1.0/60.0 {
		t.Errorf("default step = %f", got)
	}
	if got := (RuntimeConfig{TickRate: 30}).Step(); got != 1.0/30.0 {
		t.Errorf("30Hz step = %f", got)
	}
	if got := (RuntimeConfig{}).Step(); got != 1.0/60.0 {
		t.Errorf("zero tick rate should fall back to 60Hz, got %f", got)
	}
}
