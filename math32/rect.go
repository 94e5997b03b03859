package math32

// Rect is an axis-aligned rectangle in pos/size form, the layout of the
// rect_pos/rect_size instance slots every DrawQuad-derived shader carries.
type Rect struct {
	Pos  Vector2
	Size Vector2
}

// NewRect returns a Rect from pos and size.
func NewRect(pos, size Vector2) Rect {
	return Rect{Pos: pos, Size: size}
}

// Contains reports whether p lies within the rect, inclusive of the edges,
// matching the original's Rect::contains used by PointerScroll/PointerHover
// hit-testing.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.Pos.X && p.X <= r.Pos.X+r.Size.X &&
		p.Y >= r.Pos.Y && p.Y <= r.Pos.Y+r.Size.Y
}

// BottomRight returns pos + size.
func (r Rect) BottomRight() Vector2 {
	return r.Pos.Add(r.Size)
}

// Translate returns r shifted by d.
func (r Rect) Translate(d Vector2) Rect {
	return Rect{Pos: r.Pos.Add(d), Size: r.Size}
}
