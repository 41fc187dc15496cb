package kepler3d

import (
	"image/color"
	"math"

	"github.com/faiface/pixel"
	"golang.org/x/image/font/basicfont"
)

// lineHitMargin widens thin lines so they can be picked with a mouse.
const lineHitMargin = 20.0

// Surface is where projected shapes end up. All points are in surface
// coordinates: origin top-left, y down.
type Surface interface {
	DrawLine(a, b pixel.Vec, thickness float64, c color.Color)
	DrawCircle(center pixel.Vec, radius float64, c color.Color)
	DrawText(dot pixel.Vec, label string, c color.Color)
}

// Shape2D is a projected shape: Line2D, Circle2D or Text2D. Shapes are
// rebuilt every frame.
type Shape2D interface {
	Draw(s Surface, c color.Color)
	Contains(point pixel.Vec) bool

	shape2D()
}

// Line2D keeps a constant on-screen thickness regardless of depth.
type Line2D struct {
	A, B      pixel.Vec
	Thickness float64
}

func (Line2D) shape2D() {}

func (l Line2D) Draw(s Surface, c color.Color) {
	s.DrawLine(l.A, l.B, l.Thickness, c)
}

func (l Line2D) Contains(point pixel.Vec) bool {
	return distanceToLineSegment(point, l.A, l.B) <= l.Thickness+lineHitMargin
}

type Circle2D struct {
	Center pixel.Vec
	Radius float64
}

func (Circle2D) shape2D() {}

func (ci Circle2D) Draw(s Surface, c color.Color) {
	s.DrawCircle(ci.Center, ci.Radius, c)
}

func (ci Circle2D) Contains(point pixel.Vec) bool {
	diff := point.Sub(ci.Center)
	return diff.Dot(diff) <= ci.Radius*ci.Radius
}

// Text2D is a label whose baseline starts at Dot. It is measured with the
// 7x13 fixed face.
type Text2D struct {
	Dot   pixel.Vec
	Label string
}

func (Text2D) shape2D() {}

func (t Text2D) Draw(s Surface, c color.Color) {
	s.DrawText(t.Dot, t.Label, c)
}

func (t Text2D) Bounds() pixel.Rect {
	face := basicfont.Face7x13
	w := float64(face.Advance * len(t.Label))
	return pixel.R(t.Dot.X, t.Dot.Y-float64(face.Ascent), t.Dot.X+w, t.Dot.Y+float64(face.Descent))
}

func (t Text2D) Contains(point pixel.Vec) bool {
	return t.Bounds().Contains(point)
}

func distanceToLineSegment(point, a, b pixel.Vec) float64 {
	ab := b.Sub(a)
	ap := point.Sub(a)

	abLengthSq := ab.Dot(ab)
	if abLengthSq == 0 {
		return ap.Len()
	}

	// Clamp the projection to stay on the segment.
	t := math.Max(0, math.Min(1, ap.Dot(ab)/abLengthSq))
	closest := a.Add(ab.Scaled(t))
	return point.Sub(closest).Len()
}
