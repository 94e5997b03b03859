package vector

import "github.com/chewxy/math32"

// PathCommandKind identifies a curve-path command variant.
type PathCommandKind int

const (
	PathMoveTo PathCommandKind = iota
	PathQuadraticTo
	PathClose
)

// PathCommand is one command of a curve path: a sequence of these commands
// defines a set of closed contours made of line and quadratic Bezier
// segments, the outline representation glyph contours are supplied in.
type PathCommand struct {
	Kind PathCommandKind
	// P1 is the control point, valid only for PathQuadraticTo.
	P1 Point
	// P is the destination point.
	P Point
}

// MoveTo returns a command starting a new contour at p.
func MoveTo(p Point) PathCommand { return PathCommand{Kind: PathMoveTo, P: p} }

// QuadraticTo returns a command adding a quadratic Bezier segment with
// control point p1 ending at p.
func QuadraticTo(p1, p Point) PathCommand {
	return PathCommand{Kind: PathQuadraticTo, P1: p1, P: p}
}

// Close returns a command closing the current contour.
func Close() PathCommand { return PathCommand{Kind: PathClose} }

// LinePathCommandKind identifies a linearized-path command variant.
type LinePathCommandKind int

const (
	LineMoveTo LinePathCommandKind = iota
	LineLineTo
	LineClose
)

// LinePathCommand is one command of a linearized path: MoveTo/LineTo/Close
// only, the form the Trapezoidator consumes.
type LinePathCommand struct {
	Kind LinePathCommandKind
	P    Point
}

// LinePathIterator is implemented by anything that can push a sequence of
// LinePathCommand values through a callback, stopping early if f returns
// false. It mirrors the original's InternalIterator-over-LinePathCommand
// contract so Trapezoidate can consume a path without materializing it.
type LinePathIterator interface {
	ForEach(f func(LinePathCommand) bool) bool
}

// LinePath is a concrete, materialized LinePathIterator.
type LinePath []LinePathCommand

// ForEach implements LinePathIterator.
func (p LinePath) ForEach(f func(LinePathCommand) bool) bool {
	for _, cmd := range p {
		if !f(cmd) {
			return false
		}
	}
	return true
}

// Linearize flattens a curve path (moves, quadratics, closes) into a
// LinePath, subdividing each quadratic segment until its control point
// deviates from the chord by no more than tolerance.
func Linearize(cmds []PathCommand, tolerance float32) LinePath {
	var out LinePath
	var current Point
	for _, cmd := range cmds {
		switch cmd.Kind {
		case PathMoveTo:
			current = cmd.P
			out = append(out, LinePathCommand{Kind: LineMoveTo, P: cmd.P})
		case PathQuadraticTo:
			out = appendLinearizedQuadratic(out, current, cmd.P1, cmd.P, tolerance)
			current = cmd.P
		case PathClose:
			out = append(out, LinePathCommand{Kind: LineClose})
		}
	}
	return out
}

func appendLinearizedQuadratic(out LinePath, p0, p1, p2 Point, tolerance float32) LinePath {
	if quadraticFlatEnough(p0, p1, p2, tolerance) {
		return append(out, LinePathCommand{Kind: LineLineTo, P: p2})
	}
	// De Casteljau split at t=0.5.
	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	mid := p01.Lerp(p12, 0.5)
	out = appendLinearizedQuadratic(out, p0, p01, mid, tolerance)
	return appendLinearizedQuadratic(out, mid, p12, p2, tolerance)
}

// quadraticFlatEnough reports whether the control point p1 deviates from the
// chord p0-p2 by no more than tolerance.
func quadraticFlatEnough(p0, p1, p2 Point, tolerance float32) bool {
	chord := p2.Sub(p0)
	chordLenSq := chord.X*chord.X + chord.Y*chord.Y
	if chordLenSq == 0 {
		d := p1.Sub(p0)
		return math32.Sqrt(d.X*d.X+d.Y*d.Y) <= tolerance
	}
	// Perpendicular distance from p1 to the line through p0,p2.
	toP1 := p1.Sub(p0)
	cross := chord.X*toP1.Y - chord.Y*toP1.X
	dist := math32.Abs(cross) / math32.Sqrt(chordLenSq)
	return dist <= tolerance
}
