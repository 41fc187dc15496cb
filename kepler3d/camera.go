package kepler3d

import (
	"math"

	"github.com/faiface/pixel"
	"github.com/nathanKramer/kepler3d/math4"
)

const zoomFactor = 1.2

const crosshairSize = 20.0
const crosshairThickness = 2.0

// Camera is a free-flying first person camera. Pose is its rigid transform in
// world space; the rotation part is rebuilt from Yaw and Pitch every Update.
type Camera struct {
	Pose  math4.Mat4
	Yaw   float64
	Pitch float64

	FOV         float64
	Sensitivity float64
	Near        float64

	SpeedNormal float64
	SpeedFast   float64
	SpeedSlow   float64

	MouseLocked       bool
	AllowMouseLocking bool
	CrosshairEnabled  bool

	// Anchor is where the cursor is held while the look button is down.
	Anchor pixel.Vec

	initialFOV         float64
	initialSensitivity float64
}

func NewCamera(config CameraConfig) *Camera {
	return &Camera{
		Pose:               math4.Translation(0, 0, -200),
		FOV:                config.FOV,
		Sensitivity:        config.Sensitivity,
		Near:               config.Near,
		SpeedNormal:        config.SpeedNormal,
		SpeedFast:          config.SpeedFast,
		SpeedSlow:          config.SpeedSlow,
		AllowMouseLocking:  config.AllowMouseLocking,
		CrosshairEnabled:   true,
		initialFOV:         config.FOV,
		initialSensitivity: config.Sensitivity,
	}
}

func (c *Camera) Position() math4.Vec4 {
	return c.Pose.Position()
}

func (c *Camera) HandleEvent(ev Event) {
	switch e := ev.(type) {
	case KeyPressed:
		switch e.Action {
		case ActionToggleLock:
			if c.AllowMouseLocking {
				c.MouseLocked = !c.MouseLocked
			} else {
				c.MouseLocked = false
			}
		case ActionReset:
			c.FOV = c.initialFOV
			c.Sensitivity = c.initialSensitivity
		case ActionToggleCrosshair:
			c.CrosshairEnabled = !c.CrosshairEnabled
		}

	case MouseScrolled:
		// Zooming in slows the mouse down by the same factor so a pixel of
		// motion sweeps the same part of the image.
		if e.Delta > 0 {
			c.FOV *= zoomFactor
			c.Sensitivity /= zoomFactor
		} else if e.Delta < 0 {
			c.FOV /= zoomFactor
			c.Sensitivity *= zoomFactor
		}

	case MouseButtonPressed:
		if e.Button == ActionLook {
			c.Anchor = e.Position
		}
	}
}

var cameraMoves = []struct {
	action  Action
	x, y, z float64
}{
	{ActionForward, 0, 0, 1},
	{ActionBack, 0, 0, -1},
	{ActionLeft, -1, 0, 0},
	{ActionRight, 1, 0, 0},
	{ActionUp, 0, 1, 0},
	{ActionDown, 0, -1, 0},
}

func (c *Camera) speed(in Input) float64 {
	if in.Held(ActionFast) {
		return c.SpeedFast
	} else if in.Held(ActionSlow) {
		return c.SpeedSlow
	}
	return c.SpeedNormal
}

// Update applies one frame of held movement keys and mouse look.
func (c *Camera) Update(in Input, viewport Viewport) {
	speed := c.speed(in)
	for _, move := range cameraMoves {
		if in.Held(move.action) {
			c.Pose = c.Pose.Mul(math4.Translation(move.x*speed, move.y*speed, move.z*speed))
		}
	}

	if c.MouseLocked || in.Held(ActionLook) {
		in.SetCursorVisible(false)

		origin := c.Anchor
		if c.MouseLocked {
			origin = viewportCenter(viewport)
		}
		delta := in.MousePosition().Sub(origin)

		c.Yaw += delta.X * c.Sensitivity
		c.Pitch = pixel.Clamp(c.Pitch+delta.Y*c.Sensitivity, -math.Pi/2, math.Pi/2)

		// Put the cursor back so next frame only measures new motion.
		in.SetMousePosition(origin)
	} else {
		in.SetCursorVisible(true)
	}

	c.Pose = c.Pose.WithoutRotation().
		Mul(math4.RotationY(c.Yaw)).
		Mul(math4.RotationX(c.Pitch))
}

// Crosshair returns the two bars marking the look origin, or nothing while
// the cursor is free.
func (c *Camera) Crosshair(in Input, viewport Viewport) []Line2D {
	lookHeld := in.Held(ActionLook)
	if !c.CrosshairEnabled || !(c.MouseLocked || lookHeld) {
		return nil
	}

	p := viewportCenter(viewport)
	if lookHeld {
		p = c.Anchor
	}

	half := crosshairSize / 2
	return []Line2D{
		{A: pixel.V(p.X-half, p.Y), B: pixel.V(p.X+half, p.Y), Thickness: crosshairThickness},
		{A: pixel.V(p.X, p.Y-half), B: pixel.V(p.X, p.Y+half), Thickness: crosshairThickness},
	}
}

// Projection snapshots what the primitives need to project themselves this
// frame.
func (c *Camera) Projection(viewport Viewport) Projection {
	b := viewport.Bounds()
	return Projection{
		View:   c.Pose.InverseRigid(),
		Eye:    c.Pose.Position(),
		FOV:    c.FOV,
		Near:   c.Near,
		Width:  b.W(),
		Height: b.H(),
	}
}
