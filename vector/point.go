// Package vector implements path geometry and the trapezoidator used to
// rasterize glyph outlines into the font atlas.
package vector

import "github.com/chewxy/math32"

// Point is a 2D point in path/outline space.
type Point struct {
	X, Y float32
}

// NewPoint returns a Point with the given coordinates.
func NewPoint(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Lerp returns the point t of the way from p to q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Compare orders points lexicographically by X then Y, the sweep order the
// trapezoidator's event queue advances in. ok is false if either coordinate
// is NaN.
func (p Point) Compare(q Point) (ordering int, ok bool) {
	if math32.IsNaN(p.X) || math32.IsNaN(p.Y) || math32.IsNaN(q.X) || math32.IsNaN(q.Y) {
		return 0, false
	}
	switch {
	case p.X < q.X:
		return -1, true
	case p.X > q.X:
		return 1, true
	case p.Y < q.Y:
		return -1, true
	case p.Y > q.Y:
		return 1, true
	default:
		return 0, true
	}
}

// Less reports whether p sorts before q in sweep order.
func (p Point) Less(q Point) bool {
	c, _ := p.Compare(q)
	return c < 0
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}
