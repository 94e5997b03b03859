package vector

// LineSegment is a directed segment between two points, the unit the
// trapezoidator's active-segment list and event queue operate on.
type LineSegment struct {
	P0, P1 Point
}

// NewLineSegment returns a LineSegment from p0 to p1.
func NewLineSegment(p0, p1 Point) LineSegment {
	return LineSegment{P0: p0, P1: p1}
}

// CompareToPoint compares p against the (possibly extended) line through the
// segment's endpoints at p's X coordinate: -1 if the line passes below p, 1
// if above, 0 if through it. ok is false for a vertical segment (P0.X ==
// P1.X), which can't be queried at an arbitrary X.
func (s LineSegment) CompareToPoint(p Point) (ordering int, ok bool) {
	if s.P0.X == s.P1.X {
		return 0, false
	}
	t := (p.X - s.P0.X) / (s.P1.X - s.P0.X)
	y := s.P0.Y + t*(s.P1.Y-s.P0.Y)
	switch {
	case y < p.Y:
		return -1, true
	case y > p.Y:
		return 1, true
	default:
		return 0, true
	}
}

// IntersectWithVerticalLine returns the point where the segment's line
// crosses the vertical line X == x. ok is false for a vertical segment.
func (s LineSegment) IntersectWithVerticalLine(x float32) (Point, bool) {
	if s.P0.X == s.P1.X {
		return Point{}, false
	}
	t := (x - s.P0.X) / (s.P1.X - s.P0.X)
	return Point{X: x, Y: s.P0.Y + t*(s.P1.Y-s.P0.Y)}, true
}
