package kepler3d

import (
	"image/color"
	"math"

	"github.com/faiface/pixel"
)

type fakeInput struct {
	held          map[Action]bool
	mouse         pixel.Vec
	cursorVisible bool
	warps         []pixel.Vec
}

func newFakeInput(held ...Action) *fakeInput {
	in := &fakeInput{held: map[Action]bool{}, cursorVisible: true}
	for _, a := range held {
		in.held[a] = true
	}
	return in
}

func (f *fakeInput) Held(a Action) bool       { return f.held[a] }
func (f *fakeInput) MousePosition() pixel.Vec { return f.mouse }
func (f *fakeInput) SetCursorVisible(v bool)  { f.cursorVisible = v }

func (f *fakeInput) SetMousePosition(p pixel.Vec) {
	f.mouse = p
	f.warps = append(f.warps, p)
}

type testViewport struct {
	rect pixel.Rect
}

func (v testViewport) Bounds() pixel.Rect { return v.rect }

var viewport800x600 = testViewport{pixel.R(0, 0, 800, 600)}

type drawCall struct {
	kind  string
	a, b  pixel.Vec
	size  float64
	label string
	color color.Color
}

type recordingSurface struct {
	calls []drawCall
}

func (r *recordingSurface) DrawLine(a, b pixel.Vec, thickness float64, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "line", a: a, b: b, size: thickness, color: c})
}

func (r *recordingSurface) DrawCircle(center pixel.Vec, radius float64, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "circle", a: center, size: radius, color: c})
}

func (r *recordingSurface) DrawText(dot pixel.Vec, label string, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "text", a: dot, label: label, color: c})
}

type recordingSounds struct {
	played []string
}

func (r *recordingSounds) PlaySound(name string) {
	r.played = append(r.played, name)
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func vecApprox(a, b pixel.Vec, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}
