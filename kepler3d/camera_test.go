package kepler3d

import (
	"math"
	"testing"

	"github.com/faiface/pixel"
	"github.com/nathanKramer/kepler3d/math4"
)

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera(DefaultCameraConfig())

	if cam.Pose != math4.Translation(0, 0, -200) {
		t.Errorf("default pose = %v", cam.Pose)
	}
	if cam.MouseLocked {
		t.Error("camera should start unlocked")
	}
	if !cam.AllowMouseLocking || !cam.CrosshairEnabled {
		t.Error("locking and crosshair should start enabled")
	}
	if cam.FOV != 500 || cam.Near != 0.01 {
		t.Errorf("FOV=%f Near=%f", cam.FOV, cam.Near)
	}
}

func TestHandleEventToggleLock(t *testing.T) {
	cam := NewCamera(DefaultCameraConfig())

	cam.HandleEvent(KeyPressed{ActionToggleLock})
	if !cam.MouseLocked {
		t.Fatal("toggle should lock the mouse")
	}
	cam.HandleEvent(KeyPressed{ActionToggleLock})
	if cam.MouseLocked {
		t.Fatal("second toggle should unlock the mouse")
	}

	cam.AllowMouseLocking = false
	cam.MouseLocked = true
	cam.HandleEvent(KeyPressed{ActionToggleLock})
	if cam.MouseLocked {
		t.Error("toggle must force unlocked when locking is not allowed")
	}
	cam.HandleEvent(KeyPressed{ActionToggleLock})
	if cam.MouseLocked {
		t.Error("toggle must stay inert when locking is not allowed")
	}
}

func TestHandleEventZoomAndReset(t *testing.T) {
	cam := NewCamera(DefaultCameraConfig())

	cam.HandleEvent(MouseScrolled{Delta: 1})
	if !approxEqual(cam.FOV, 600, 1e-9) || !approxEqual(cam.Sensitivity, 0.001/1.2, 1e-12) {
		t.Errorf("zoom in: FOV=%f sensitivity=%f", cam.FOV, cam.Sensitivity)
	}

	cam.HandleEvent(MouseScrolled{Delta: -1})
	cam.HandleEvent(MouseScrolled{Delta: -1})
	if !approxEqual(cam.FOV, 500/1.2, 1e-9) || !approxEqual(cam.Sensitivity, 0.001*1.2, 1e-12) {
		t.Errorf("zoom out: FOV=%f sensitivity=%f", cam.FOV, cam.Sensitivity)
	}

	// FOV*sensitivity stays constant across zooms.
	if !approxEqual(cam.FOV*cam.Sensitivity, 0.5, 1e-9) {
		t.Errorf("FOV*sensitivity = %f, want 0.5", cam.FOV*cam.Sensitivity)
	}

	cam.HandleEvent(MouseScrolled{Delta: 0})
	if !approxEqual(cam.FOV, 500/1.2, 1e-9) {
		t.Error("zero scroll should not zoom")
	}

	cam.HandleEvent(KeyPressed{ActionReset})
	if cam.FOV != 500 || cam.Sensitivity != 0.001 {
		t.Errorf("reset: FOV=%f sensitivity=%f", cam.FOV, cam.Sensitivity)
	}
}

func TestHandleEventCrosshairAndAnchor(t *testing.T) {
	cam := NewCamera(DefaultCameraConfig())

	cam.HandleEvent(KeyPressed{ActionToggleCrosshair})
	if cam.CrosshairEnabled {
		t.Error("crosshair should toggle off")
	}

	cam.HandleEvent(MouseButtonPressed{Button: ActionLook, Position: pixel.V(120, 80)})
	if cam.Anchor != pixel.V(120, 80) {
		t.Errorf("anchor = %v", cam.Anchor)
	}

	cam.HandleEvent(MouseButtonPressed{Button: ActionForward, Position: pixel.V(1, 1)})
	if cam.Anchor != pixel.V(120, 80) {
		t.Error("only the look button should move the anchor")
	}
}

func TestUpdateSpeedPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		held  []Action
		wantZ float64
	}{
		{"normal", []Action{ActionForward}, -195},
		{"fast", []Action{ActionForward, ActionFast}, -100},
		{"slow", []Action{ActionForward, ActionSlow}, -198},
		{"fast wins over slow", []Action{ActionForward, ActionFast, ActionSlow}, -100},
		{"back", []Action{ActionBack}, -205},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(DefaultCameraConfig())
			cam.Update(newFakeInput(tt.held...), viewport800x600)

			if got := cam.Position(); !approxEqual(got.Z, tt.wantZ, 1e-9) {
				t.Errorf("z = %f, want %f", got.Z, tt.wantZ)
			}
		})
	}
}

func TestUpdateMovesAlongAllAxes(t *testing.T) {
	cam := NewCamera(DefaultCameraConfig())
	cam.Pose = math4.Identity()

	cam.Update(newFakeInput(ActionRight, ActionUp), viewport800x600)
	if got := cam.Position(); got != math4.Point(5, 5, 0) {
		t.Errorf("right+up = %v", got)
	}

	cam.Update(newFakeInput(ActionLeft, ActionDown, ActionLeft), viewport800x600)
	if got := cam.Position(); got != math4.Point(0, 0, 0) {
		t.Errorf("left+down = %v", got)
	}
}

func TestUpdateMovesInCameraSpace(t *testing.T) {
	cam := NewCamera(DefaultCameraConfig())
	cam.Yaw = math.Pi / 2

	// First update rebuilds the rotation from the angles.
	cam.Update(newFakeInput(), viewport800x600)
	cam.Update(newFakeInput(ActionForward), viewport800x600)

	got := cam.Position()
	if !approxEqual(got.X, 5, 1e-9) || !approxEqual(got.Z, -200, 1e-9) {
		t.Errorf("forward after quarter yaw moved to %v, want (5 0 -200)", got)
	}
}

func TestUpdateLockedLook(t *testing.T) {
	cam := NewCamera(DefaultCameraConfig())
	cam.MouseLocked = true

	in := newFakeInput()
	in.mouse = pixel.V(500, 350)
	cam.Update(in, viewport800x600)

	if !approxEqual(cam.Yaw, 0.1, 1e-12) || !approxEqual(cam.Pitch, 0.05, 1e-12) {
		t.Errorf("yaw=%f pitch=%f, want 0.1 0.05", cam.Yaw, cam.Pitch)
	}
	if in.cursorVisible {
		t.Error("cursor should be hidden while looking")
	}
	if len(in.warps) != 1 || in.warps[0] != pixel.V(400, 300) {
		t.Errorf("cursor warps = %v, want one warp to center", in.warps)
	}

	// Nothing moved since the warp.
	cam.Update(in, viewport800x600)
	if !approxEqual(cam.Yaw, 0.1, 1e-12) || !approxEqual(cam.Pitch, 0.05, 1e-12) {
		t.Errorf("second frame changed angles: yaw=%f pitch=%f", cam.Yaw, cam.Pitch)
	}
}

func TestUpdateFreeLookUsesAnchor(t *testing.T) {
	cam := NewCamera(DefaultCameraConfig())
	cam.Anchor = pixel.V(100, 100)

	in := newFakeInput(ActionLook)
	in.mouse = pixel.V(90, 130)
	cam.Update(in, viewport800x600)

	if !approxEqual(cam.Yaw, -0.01, 1e-12) || !approxEqual(cam.Pitch, 0.03, 1e-12) {
		t.Errorf("yaw=%f pitch=%f, want -0.01 0.03", cam.Yaw, cam.Pitch)
	}
	if in.mouse != cam.Anchor {
		t.Errorf("cursor at %v, want anchor %v", in.mouse, cam.Anchor)
	}
}

func TestUpdateWithoutLookShowsCursor(t *testing.T) {
	cam := NewCamera(DefaultCameraConfig())

	in := newFakeInput()
	in.cursorVisible = false
	in.mouse = pixel.V(700, 10)
	cam.Update(in, viewport800x600)

	if !in.cursorVisible {
		t.Error("cursor should be visible when not looking")
	}
	if cam.Yaw != 0 || cam.Pitch != 0 || len(in.warps) != 0 {
		t.Errorf("no look expected: yaw=%f pitch=%f warps=%v", cam.Yaw, cam.Pitch, in.warps)
	}
}

func TestUpdateClampsPitchOnly(t *testing.T) {
	cam := NewCamera(DefaultCameraConfig())
	cam.MouseLocked = true

	in := newFakeInput()
	in.mouse = pixel.V(400+100000, 300+1000000)
	cam.Update(in, viewport800x600)

	if cam.Pitch != math.Pi/2 {
		t.Errorf("pitch = %f, want pi/2", cam.Pitch)
	}
	if !approxEqual(cam.Yaw, 100, 1e-9) {
		t.Errorf("yaw = %f, want 100 (never wrapped)", cam.Yaw)
	}

	in.mouse = pixel.V(400, 300-10000000)
	cam.Update(in, viewport800x600)
	if cam.Pitch != -math.Pi/2 {
		t.Errorf("pitch = %f, want -pi/2", cam.Pitch)
	}
}

func TestUpdateRebuildsRotationFromAngles(t *testing.T) {
	cam := NewCamera(DefaultCameraConfig())
	cam.MouseLocked = true

	in := newFakeInput(ActionForward, ActionRight)
	for i := 0; i < 50; i++ {
		in.mouse = pixel.V(400+float64(i%7), 300-float64(i%5))
		cam.Update(in, viewport800x600)
	}

	want := cam.Pose.WithoutRotation().
		Mul(math4.RotationY(cam.Yaw)).
		Mul(math4.RotationX(cam.Pitch))
	if !cam.Pose.ApproxEqual(want, 1e-12) {
		t.Errorf("pose rotation drifted from yaw/pitch")
	}

	inv := cam.Pose.InverseRigid()
	if !inv.Mul(cam.Pose).ApproxEqual(math4.Identity(), 1e-9) {
		t.Errorf("pose is no longer rigid")
	}
}

func TestCrosshair(t *testing.T) {
	cam := NewCamera(DefaultCameraConfig())

	if got := cam.Crosshair(newFakeInput(), viewport800x600); got != nil {
		t.Errorf("free cursor should have no crosshair, got %v", got)
	}

	cam.MouseLocked = true
	bars := cam.Crosshair(newFakeInput(), viewport800x600)
	if len(bars) != 2 {
		t.Fatalf("got %d bars, want 2", len(bars))
	}
	if bars[0].A != pixel.V(390, 300) || bars[0].B != pixel.V(410, 300) {
		t.Errorf("horizontal bar = %v", bars[0])
	}
	if bars[1].A != pixel.V(400, 290) || bars[1].B != pixel.V(400, 310) {
		t.Errorf("vertical bar = %v", bars[1])
	}

	cam.Anchor = pixel.V(50, 60)
	bars = cam.Crosshair(newFakeInput(ActionLook), viewport800x600)
	if len(bars) != 2 || bars[0].A != pixel.V(40, 60) || bars[1].B != pixel.V(50, 70) {
		t.Errorf("look crosshair should sit on the anchor: %v", bars)
	}

	cam.CrosshairEnabled = false
	if got := cam.Crosshair(newFakeInput(), viewport800x600); got != nil {
		t.Error("disabled crosshair should not draw")
	}
}

func TestCameraProjectionSnapshot(t *testing.T) {
	cam := NewCamera(DefaultCameraConfig())
	p := cam.Projection(viewport800x600)

	if p.Width != 800 || p.Height != 600 || p.FOV != 500 || p.Near != 0.01 {
		t.Errorf("projection = %+v", p)
	}
	if p.Eye != math4.Point(0, 0, -200) {
		t.Errorf("eye = %v", p.Eye)
	}
	if got := p.View.MulVec(math4.Point(0, 0, 0)); got != math4.Point(0, 0, 200) {
		t.Errorf("origin in camera space = %v, want 200 ahead", got)
	}
}
