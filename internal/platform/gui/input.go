package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-kokaton/internal/core"
)

// KeySource reports keyboard state for the current update.
type KeySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// moveKeys are polled as held state every frame.
var moveKeys = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// eventKeys only count on the frame they go down.
var eventKeys = map[core.Action][]ebiten.Key{
	core.ActionFire: {ebiten.KeySpace},
	core.ActionQuit: {ebiten.KeyEscape, ebiten.KeyQ},
}

// pollInput builds the input frame for one update.
func pollInput(keys KeySource) core.InputFrame {
	frame := core.NewInputFrame()
	for action, ks := range moveKeys {
		for _, k := range ks {
			if keys.Pressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	for action, ks := range eventKeys {
		for _, k := range ks {
			if keys.JustPressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}
