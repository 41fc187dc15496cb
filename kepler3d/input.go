package kepler3d

import "github.com/faiface/pixel"

// Action names an input the engine reacts to. The window layer decides which
// physical key or button produces it.
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionFast
	ActionSlow
	ActionLook

	ActionToggleLock
	ActionReset
	ActionToggleCrosshair

	ActionToggleSort
	ActionRegenerate
	ActionCycleColors
	ActionPause
)

var actionNames = map[Action]string{
	ActionForward:         "forward",
	ActionBack:            "back",
	ActionLeft:            "left",
	ActionRight:           "right",
	ActionUp:              "up",
	ActionDown:            "down",
	ActionFast:            "fast",
	ActionSlow:            "slow",
	ActionLook:            "look",
	ActionToggleLock:      "toggle-lock",
	ActionReset:           "reset",
	ActionToggleCrosshair: "toggle-crosshair",
	ActionToggleSort:      "toggle-sort",
	ActionRegenerate:      "regenerate",
	ActionCycleColors:     "cycle-colors",
	ActionPause:           "pause",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Event is one discrete input: KeyPressed, MouseScrolled or
// MouseButtonPressed.
type Event interface {
	event()
}

type KeyPressed struct {
	Action Action
}

type MouseScrolled struct {
	Delta float64
}

// MouseButtonPressed carries the cursor position at the moment of the press,
// in surface coordinates.
type MouseButtonPressed struct {
	Button   Action
	Position pixel.Vec
}

func (KeyPressed) event()         {}
func (MouseScrolled) event()      {}
func (MouseButtonPressed) event() {}

// Input is the continuous input state polled once per frame. Positions are in
// surface coordinates: origin top-left, y down.
type Input interface {
	Held(a Action) bool
	MousePosition() pixel.Vec
	SetMousePosition(p pixel.Vec)
	SetCursorVisible(visible bool)
}

// Viewport reports the drawable area. *pixelgl.Window satisfies it.
type Viewport interface {
	Bounds() pixel.Rect
}

func viewportCenter(viewport Viewport) pixel.Vec {
	b := viewport.Bounds()
	return pixel.V(b.W()/2, b.H()/2)
}
