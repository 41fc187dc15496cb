package kepler3d

import (
	"image/color"
	"math"

	"github.com/faiface/pixel"
	"github.com/nathanKramer/kepler3d/math4"
)

// lineResolution is how many pieces a line is cut into when estimating its
// distance to the eye. Sorting only needs an estimate.
const lineResolution = 3

// Projection is a per-frame snapshot of the camera used to project
// primitives. View takes world space to camera space, where +z is forward.
type Projection struct {
	View   math4.Mat4
	Eye    math4.Vec4
	FOV    float64
	Near   float64
	Width  float64
	Height float64
}

// Perspective divides a camera space point by its depth. The result is
// centered on the viewport with y up.
func (p Projection) Perspective(v math4.Vec4) pixel.Vec {
	return pixel.V(p.FOV*v.X/v.Z, p.FOV*v.Y/v.Z)
}

// ToSurface moves a centered, y-up point to surface coordinates: origin
// top-left, y down.
func (p Projection) ToSurface(raw pixel.Vec) pixel.Vec {
	return pixel.V(raw.X+p.Width/2, p.Height/2-raw.Y)
}

// Object3D is a world space primitive: a *Line3D or a *Sphere3D.
type Object3D interface {
	// Distance to the eye, used only for ordering.
	Distance(eye math4.Vec4) float64
	// Project returns false when nothing of the primitive is visible.
	Project(p Projection) (Shape2D, bool)

	object3D()
}

type Line3D struct {
	A, B      math4.Vec4
	Thickness float64
}

func NewLine3D(a, b math4.Vec4, thickness float64) *Line3D {
	return &Line3D{A: a, B: b, Thickness: thickness}
}

func (*Line3D) object3D() {}

// Distance is the smallest eye distance over lineResolution+1 evenly spaced
// samples along the segment.
func (l *Line3D) Distance(eye math4.Vec4) float64 {
	minDist := math.MaxFloat64
	for i := 0; i <= lineResolution; i++ {
		sample := l.A.Lerp(l.B, float64(i)/lineResolution)
		if d := eye.Sub(sample).Len(); d < minDist {
			minDist = d
		}
	}
	return minDist
}

func (l *Line3D) Project(p Projection) (Shape2D, bool) {
	a := p.View.MulVec(l.A)
	b := p.View.MulVec(l.B)

	if a.Z <= 0 && b.Z <= 0 {
		return nil, false
	}

	// At most one end is behind the camera; pull it up to the near plane.
	if a.Z <= 0 {
		t := (p.Near - a.Z) / (b.Z - a.Z)
		a.X = a.X + t*(b.X-a.X)
		a.Y = a.Y + t*(b.Y-a.Y)
		a.Z = p.Near
	}
	if b.Z <= 0 {
		t := (p.Near - a.Z) / (b.Z - a.Z)
		b.X = a.X + t*(b.X-a.X)
		b.Y = a.Y + t*(b.Y-a.Y)
		b.Z = p.Near
	}

	return Line2D{
		A:         p.ToSurface(p.Perspective(a)),
		B:         p.ToSurface(p.Perspective(b)),
		Thickness: l.Thickness,
	}, true
}

type Sphere3D struct {
	Center math4.Vec4
	Radius float64
}

func NewSphere3D(center math4.Vec4, radius float64) *Sphere3D {
	return &Sphere3D{Center: center, Radius: radius}
}

func (*Sphere3D) object3D() {}

// Distance is measured to the near surface rather than the center, so a big
// close sphere sorts in front of a small one at a similar center distance.
func (s *Sphere3D) Distance(eye math4.Vec4) float64 {
	return eye.Sub(s.Center).Len() - s.Radius
}

// Project drops the whole sphere once its center reaches the near plane;
// spheres are never partially clipped.
func (s *Sphere3D) Project(p Projection) (Shape2D, bool) {
	view := p.View.MulVec(s.Center)
	if view.Z <= p.Near {
		return nil, false
	}

	return Circle2D{
		Center: p.ToSurface(p.Perspective(view)),
		Radius: p.FOV * s.Radius / view.Z,
	}, true
}

// Draw projects obj and draws it if any of it is visible.
func Draw(obj Object3D, p Projection, s Surface, c color.Color) bool {
	shape, ok := obj.Project(p)
	if !ok {
		return false
	}
	shape.Draw(s, c)
	return true
}

func DrawSphere(s Surface, p Projection, center math4.Vec4, radius float64, c color.Color) bool {
	return Draw(NewSphere3D(center, radius), p, s, c)
}

func DrawLine3D(s Surface, p Projection, a, b math4.Vec4, thickness float64, c color.Color) bool {
	return Draw(NewLine3D(a, b, thickness), p, s, c)
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // vertical edges
}

func cubeVertices(center math4.Vec4, edge float64) [8]math4.Vec4 {
	h := edge / 2
	return [8]math4.Vec4{
		math4.Point(center.X-h, center.Y-h, center.Z-h),
		math4.Point(center.X+h, center.Y-h, center.Z-h),
		math4.Point(center.X+h, center.Y+h, center.Z-h),
		math4.Point(center.X-h, center.Y+h, center.Z-h),
		math4.Point(center.X-h, center.Y-h, center.Z+h),
		math4.Point(center.X+h, center.Y-h, center.Z+h),
		math4.Point(center.X+h, center.Y+h, center.Z+h),
		math4.Point(center.X-h, center.Y+h, center.Z+h),
	}
}

// CubeEdges returns the 12 edges of an axis aligned cube as separate lines,
// so each edge is sorted on its own.
func CubeEdges(center math4.Vec4, edge float64, thickness float64) []*Line3D {
	vertices := cubeVertices(center, edge)
	lines := make([]*Line3D, 0, len(cubeEdges))
	for _, e := range cubeEdges {
		lines = append(lines, NewLine3D(vertices[e[0]], vertices[e[1]], thickness))
	}
	return lines
}
