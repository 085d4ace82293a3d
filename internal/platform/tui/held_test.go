package tui

import (
	"testing"

	"github.com/vovakirdan/tui-kokaton/internal/core"
)

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionLeft)

	for tick := 0; tick < 3; tick++ {
		if !h.Held(core.ActionLeft) {
			t.Fatalf("left should be held on tick %d", tick)
		}
		h.Tick()
	}
	if h.Held(core.ActionLeft) {
		t.Error("left should be released after the window")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(core.ActionUp)
	h.Tick()
	h.Press(core.ActionUp)
	h.Tick()

	if !h.Held(core.ActionUp) {
		t.Error("a repeat press should restart the window")
	}
}

func TestHeldKeysOpposites(t *testing.T) {
	tests := []struct {
		first, second core.Action
	}{
		{core.ActionLeft, core.ActionRight},
		{core.ActionRight, core.ActionLeft},
		{core.ActionUp, core.ActionDown},
		{core.ActionDown, core.ActionUp},
	}

	for _, tt := range tests {
		t.Run(tt.first.String()+"->"+tt.second.String(), func(t *testing.T) {
			h := NewHeldKeys(5)
			h.Press(tt.first)
			h.Press(tt.second)
			if h.Held(tt.first) {
				t.Errorf("%v should be released by %v", tt.first, tt.second)
			}
			if !h.Held(tt.second) {
				t.Errorf("%v should be held", tt.second)
			}
		})
	}
}

func TestHeldKeysDiagonal(t *testing.T) {
	h := NewHeldKeys(5)
	h.Press(core.ActionUp)
	h.Press(core.ActionRight)

	frame := core.NewInputFrame()
	h.Apply(&frame)

	if dx, dy := frame.Displacement(); dx != 1 || dy != -1 {
		t.Errorf("Displacement() = (%d, %d), expected (1, -1)", dx, dy)
	}
}

func TestHeldKeysIgnoresEvents(t *testing.T) {
	h := NewHeldKeys(5)
	h.Press(core.ActionFire)
	h.Press(core.ActionQuit)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionFire) || frame.Has(core.ActionQuit) {
		t.Error("events must not be held")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(0)
	h.Press(core.ActionDown)
	if !h.Held(core.ActionDown) {
		t.Fatal("a zero window should still hold for one tick")
	}
	h.Release()
	if h.Held(core.ActionDown) {
		t.Error("Release should drop every action")
	}
}
