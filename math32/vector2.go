// Package math32 provides the float32 vector, matrix, rectangle, color, and
// affine-transform primitives used throughout the zap scene graph, layout
// engine, and shader system.
package math32

import "github.com/chewxy/math32"

// Vector2 is a 2D vector or point, used throughout the layout box engine and
// for instance rect positions/sizes.
type Vector2 struct {
	X, Y float32
}

// Vec2 returns a new Vector2 with the given components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Scalar returns a Vector2 with both components set to v.
func Vector2Scalar(v float32) Vector2 {
	return Vector2{X: v, Y: v}
}

// Add returns a + b.
func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vector2) Sub(b Vector2) Vector2 {
	return Vector2{a.X - b.X, a.Y - b.Y}
}

// MulScalar returns a * s.
func (a Vector2) MulScalar(s float32) Vector2 {
	return Vector2{a.X * s, a.Y * s}
}

// Max returns the component-wise maximum of a and b.
func (a Vector2) Max(b Vector2) Vector2 {
	return Vector2{math32.Max(a.X, b.X), math32.Max(a.Y, b.Y)}
}

// Min returns the component-wise minimum of a and b.
func (a Vector2) Min(b Vector2) Vector2 {
	return Vector2{math32.Min(a.X, b.X), math32.Min(a.Y, b.Y)}
}

// Floor returns the component-wise floor of a.
func (a Vector2) Floor() Vector2 {
	return Vector2{math32.Floor(a.X), math32.Floor(a.Y)}
}

// IsZero reports whether both components are exactly zero.
func (a Vector2) IsZero() bool {
	return a.X == 0 && a.Y == 0
}

// Len returns the Euclidean length of the vector.
func (a Vector2) Len() float32 {
	return math32.Sqrt(a.X*a.X + a.Y*a.Y)
}

// DistanceTo returns the Euclidean distance between a and b.
func (a Vector2) DistanceTo(b Vector2) float32 {
	return a.Sub(b).Len()
}
