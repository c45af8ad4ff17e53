// Package gui hosts games in a desktop window using Ebitengine.
// Unlike terminals, a window reports real key-up events, so held controls
// are read directly from the keyboard every tick.
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/ninja-leopard/internal/core"
)

// keySource reports keyboard state for one tick.
type keySource interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
}

// ebitenKeys polls the live keyboard.
type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// bindings maps window keys to actions.
var bindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionRun, []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight, ebiten.KeyH}},
	{core.ActionJump, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}},
	{core.ActionFire, []ebiten.Key{ebiten.KeyX}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionEscape, []ebiten.Key{ebiten.KeyEscape}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// readFrame builds the input frame for one tick. A held key sets the
// action in Held; a key that went down this tick also records a press.
// closing reports a window close request, which becomes a quit press.
func readFrame(src keySource, closing bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if src.IsKeyPressed(k) {
				frame.Set(b.action)
			}
			if src.IsKeyJustPressed(k) {
				frame.Press(b.action)
			}
		}
	}
	if closing {
		frame.Press(core.ActionQuit)
	}
	return frame
}
