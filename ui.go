package main

import (
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"

	"github.com/nathanKramer/kepler3d/kepler3d"
)

var heldBindings = []struct {
	action kepler3d.Action
	button pixelgl.Button
}{
	{kepler3d.ActionForward, pixelgl.KeyW},
	{kepler3d.ActionBack, pixelgl.KeyS},
	{kepler3d.ActionLeft, pixelgl.KeyA},
	{kepler3d.ActionRight, pixelgl.KeyD},
	{kepler3d.ActionUp, pixelgl.KeyE},
	{kepler3d.ActionDown, pixelgl.KeyQ},
	{kepler3d.ActionFast, pixelgl.KeyLeftControl},
	{kepler3d.ActionSlow, pixelgl.KeyLeftShift},
	{kepler3d.ActionLook, pixelgl.MouseButtonRight},
}

var pressBindings = []struct {
	action kepler3d.Action
	button pixelgl.Button
}{
	{kepler3d.ActionToggleLock, pixelgl.KeyEscape},
	{kepler3d.ActionReset, pixelgl.KeyR},
	{kepler3d.ActionToggleCrosshair, pixelgl.KeyH},
	{kepler3d.ActionToggleSort, pixelgl.KeyT},
	{kepler3d.ActionRegenerate, pixelgl.KeyG},
	{kepler3d.ActionCycleColors, pixelgl.KeyC},
	{kepler3d.ActionPause, pixelgl.KeySpace},
}

// uiContext adapts the window to kepler3d.Input. pixelgl puts the origin at
// the bottom-left; the engine wants top-left with y down.
type uiContext struct {
	win *pixelgl.Window
}

func NewUi(win *pixelgl.Window) *uiContext {
	return &uiContext{win: win}
}

func (ui *uiContext) flip(v pixel.Vec) pixel.Vec {
	return pixel.V(v.X, ui.win.Bounds().H()-v.Y)
}

func (ui *uiContext) Held(a kepler3d.Action) bool {
	for _, b := range heldBindings {
		if b.action == a {
			return ui.win.Pressed(b.button)
		}
	}
	return false
}

func (ui *uiContext) MousePosition() pixel.Vec {
	return ui.flip(ui.win.MousePosition())
}

func (ui *uiContext) SetMousePosition(p pixel.Vec) {
	ui.win.SetMousePosition(ui.flip(p))
}

func (ui *uiContext) SetCursorVisible(visible bool) {
	ui.win.SetCursorVisible(visible)
}

// Events collects this frame's discrete input.
func (ui *uiContext) Events() []kepler3d.Event {
	var events []kepler3d.Event
	for _, b := range pressBindings {
		if ui.win.JustPressed(b.button) {
			events = append(events, kepler3d.KeyPressed{Action: b.action})
		}
	}

	if scroll := ui.win.MouseScroll(); scroll.Y != 0 {
		events = append(events, kepler3d.MouseScrolled{Delta: scroll.Y})
	}

	if ui.win.JustPressed(pixelgl.MouseButtonRight) {
		events = append(events, kepler3d.MouseButtonPressed{
			Button:   kepler3d.ActionLook,
			Position: ui.MousePosition(),
		})
	}
	return events
}
