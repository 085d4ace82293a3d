package tui

import "github.com/vovakirdan/tui-kokaton/internal/core"

// HeldKeys emulates held movement keys on top of a terminal, which only
// reports presses and auto-repeats. A direction stays held for a fixed
// number of ticks after its most recent press.
type HeldKeys struct {
	window int
	ttl    map[core.Action]int
}

// NewHeldKeys creates a tracker that holds each press for window ticks.
// A window below one is treated as one.
func NewHeldKeys(window int) *HeldKeys {
	return &HeldKeys{
		window: core.Max(window, 1),
		ttl:    make(map[core.Action]int),
	}
}

// Press marks a movement action as held and releases the opposite
// direction, which the player cannot be holding at the same time.
func (h *HeldKeys) Press(a core.Action) {
	if opp, ok := opposite(a); ok {
		delete(h.ttl, opp)
		h.ttl[a] = h.window
	}
}

// Apply sets every held action on frame.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a, n := range h.ttl {
		if n > 0 {
			frame.Set(a)
		}
	}
}

// Held reports whether a is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	return h.ttl[a] > 0
}

// Tick ages every held action by one tick.
func (h *HeldKeys) Tick() {
	for a, n := range h.ttl {
		if n <= 1 {
			delete(h.ttl, a)
			continue
		}
		h.ttl[a] = n - 1
	}
}

// Release drops all held actions.
func (h *HeldKeys) Release() {
	clear(h.ttl)
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	default:
		return core.ActionNone, false
	}
}
