// Package math4 holds the homogeneous vectors and 4x4 transforms used to
// place things in 3D space.
package math4

import (
	"fmt"
	"math"
)

// Vec4 is a homogeneous 3D quantity. W is 1 for points and 0 for free
// directions.
type Vec4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

func Point(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 1.0}
}

func Direction(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 0.0}
}

// Add combines W as well, so point+direction stays a point and
// direction+direction stays a direction.
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub of two points is the direction between them.
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

func (a Vec4) Mul(b float64) Vec4 {
	return Vec4{a.X * b, a.Y * b, a.Z * b, a.W}
}

func (a Vec4) Div(b float64) Vec4 {
	return a.Mul(1.0 / b)
}

func (a Vec4) Dot(b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec4) Cross(b Vec4) Vec4 {
	return Direction(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

func (a Vec4) Len() float64 {
	return math.Sqrt(a.LengthSquared())
}

func (a Vec4) LengthSquared() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Unit returns a vector of length 1 pointing the same way. A zero vector has
// no direction and comes back as the zero direction.
func (a Vec4) Unit() Vec4 {
	l := a.Len()
	if l == 0 {
		return Direction(0, 0, 0)
	}
	return Vec4{a.X / l, a.Y / l, a.Z / l, a.W}
}

// Lerp moves t of the way from a to b.
func (a Vec4) Lerp(b Vec4, t float64) Vec4 {
	return b.Sub(a).Mul(t).Add(a)
}

func (a Vec4) String() string {
	return fmt.Sprintf("(%f %f %f)", a.X, a.Y, a.Z)
}
