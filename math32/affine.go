package math32

import "github.com/chewxy/math32"

// Transform is a 2D affine transform (scale/rotate/skew + translate),
// applied to glyph outlines before trapezoidation the way the original's
// affine_transformation.rs composes font-size and DPI scaling.
type Transform struct {
	A, B, C, D float32 // linear part, column-major: [A C; B D]
	Tx, Ty     float32 // translation
}

// IdentityTransform returns the identity affine transform.
func IdentityTransform() Transform {
	return Transform{A: 1, D: 1}
}

// ScaleTransform returns a transform that scales by (sx, sy).
func ScaleTransform(sx, sy float32) Transform {
	return Transform{A: sx, D: sy}
}

// TranslateTransform returns a transform that translates by (tx, ty).
func TranslateTransform(tx, ty float32) Transform {
	return Transform{A: 1, D: 1, Tx: tx, Ty: ty}
}

// Apply transforms p by t.
func (t Transform) Apply(p Vector2) Vector2 {
	return Vector2{
		X: t.A*p.X + t.C*p.Y + t.Tx,
		Y: t.B*p.X + t.D*p.Y + t.Ty,
	}
}

// Then composes t followed by next (next applied after t), i.e. the result
// applies t first, then next.
func (t Transform) Then(next Transform) Transform {
	return Transform{
		A:  next.A*t.A + next.C*t.B,
		B:  next.B*t.A + next.D*t.B,
		C:  next.A*t.C + next.C*t.D,
		D:  next.B*t.C + next.D*t.D,
		Tx: next.A*t.Tx + next.C*t.Ty + next.Tx,
		Ty: next.B*t.Tx + next.D*t.Ty + next.Ty,
	}
}

// RotateTransform returns a transform that rotates by radians.
func RotateTransform(radians float32) Transform {
	s, c := math32.Sin(radians), math32.Cos(radians)
	return Transform{A: c, B: s, C: -s, D: c}
}
