package zap

import "zaplib.dev/core/math32"

// negInf is a very large negative sentinel used to seed BoundRightBottom so
// the first widening comparison always replaces it; a true -Inf isn't
// needed since every box's content is finite.
const negInf = -1e30

// sizeKind selects how a Width or Height derives a box's extent along an axis.
type sizeKind int

const (
	sizeCompute sizeKind = iota
	sizeFix
	sizeFill
	sizeFillUntil
)

// Width describes a box's horizontal extent.
type Width struct {
	kind  sizeKind
	value float32
}

// Height describes a box's vertical extent.
type Height struct {
	kind  sizeKind
	value float32
}

func ComputeWidth() Width           { return Width{kind: sizeCompute} }
func FixWidth(v float32) Width      { return Width{kind: sizeFix, value: v} }
func FillWidth() Width              { return Width{kind: sizeFill} }
func FillUntilWidth(v float32) Width { return Width{kind: sizeFillUntil, value: v} }

func ComputeHeight() Height            { return Height{kind: sizeCompute} }
func FixHeight(v float32) Height       { return Height{kind: sizeFix, value: v} }
func FillHeight() Height               { return Height{kind: sizeFill} }
func FillUntilHeight(v float32) Height { return Height{kind: sizeFillUntil, value: v} }

// Direction is the axis new boxes are appended along inside a parent.
type Direction int

const (
	DirRight Direction = iota
	DirDown
)

// LineWrap selects whether content overflowing the available width starts
// a new line.
type LineWrap int

const (
	LineWrapNone LineWrap = iota
	LineWrapOverflow
)

// Padding is inset space reserved on all four edges of a box's content.
type Padding struct {
	L, T, R, B float32
}

// AlignX and AlignY are fractional alignment positions in [0,1]; 0.5 is
// center, matching the original's f32 align fields.
type AlignX float32
type AlignY float32

const (
	AlignXCenter AlignX = 0.5
	AlignYCenter AlignY = 0.5
)

// LayoutSize bundles a box's Width and Height.
type LayoutSize struct {
	Width  Width
	Height Height
}

// Layout is the full set of parameters a begin_*_box call may configure.
type Layout struct {
	Direction  Direction
	LayoutSize LayoutSize
	Padding    Padding
	Absolute   bool
	AbsSize    math32.Vector2
	HasAbsSize bool
	LineWrap   LineWrap
}

// BoxKind discriminates the layout-box stack entries, mirroring CxBoxType.
type BoxKind int

const (
	boxNormal BoxKind = iota
	boxRightBox
	boxBottomBox
	boxCenterXAlign
	boxCenterYAlign
	boxCenterXYAlign
	boxPaddingBox
	boxRow
	boxColumn
	boxAbsoluteBox
	boxWrappingBox
	boxView
)

// layoutBox is one entry of Context.LayoutBoxes, mirroring CxLayoutBox.
type layoutBox struct {
	BoxKind BoxKind
	ViewID  int

	Direction Direction
	LineWrap  LineWrap
	Padding   Padding
	Absolute  bool

	Pos    math32.Vector2
	Origin math32.Vector2

	Width  Width
	Height Height

	AbsSize    math32.Vector2
	HasAbsSize bool

	BoundRightBottom math32.Vector2

	AvailableWidth  float32
	AvailableHeight float32

	// Biggest tracks the largest cross-axis extent seen on the current
	// line (height when walking Right, width when walking Down), so a
	// line wrap or DrawNewLine knows how far to advance the turtle across
	// the main axis to the next line. Reset to 0 every time a line wrap
	// happens.
	Biggest float32

	AlignListXStartIndex int
	AlignListYStartIndex int
}

func maxZeroKeepNaN(v float32) float32 {
	if v != v { // NaN
		return v
	}
	if v < 0 {
		return 0
	}
	return v
}

func minKeepNaN(a, b float32) float32 {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if a < b {
		return a
	}
	return b
}

// evalWidth resolves a Width against the available width of the box it is
// placed in; walking boxes may not use Compute, matching the original's
// assertion that a walking Width::Compute is a programmer error.
func evalWidth(w Width, availableWidth float32, isWalking bool) float32 {
	switch w.kind {
	case sizeFix:
		return w.value
	case sizeFill:
		return maxZeroKeepNaN(availableWidth)
	case sizeFillUntil:
		return minKeepNaN(w.value, maxZeroKeepNaN(availableWidth))
	default:
		if isWalking {
			panic("zap: walking box width cannot be Compute")
		}
		return 0
	}
}

func evalHeight(h Height, availableHeight float32, isWalking bool) float32 {
	switch h.kind {
	case sizeFix:
		return h.value
	case sizeFill:
		return maxZeroKeepNaN(availableHeight)
	case sizeFillUntil:
		return minKeepNaN(h.value, maxZeroKeepNaN(availableHeight))
	default:
		if isWalking {
			panic("zap: walking box height cannot be Compute")
		}
		return 0
	}
}

// beginTypedBox pushes a new layout box of the given kind, computing its
// origin/available space from the box currently being walked (the parent).
func (cx *Context) beginTypedBox(kind BoxKind, layout Layout) {
	if !cx.InRedrawCycle {
		panic("zap: begin_*_box called outside a redraw cycle")
	}
	if layout.Direction == DirDown && layout.LineWrap != LineWrapNone {
		panic("zap: LineWrap is only supported for Direction Right")
	}

	var origin, availSpace math32.Vector2
	if parent := cx.topBox(); parent != nil {
		origin = parent.Pos
		availSpace = math32.Vec2(parent.GetWidthLeft(), parent.GetHeightLeft())
	}

	width := layout.LayoutSize.Width
	height := layout.LayoutSize.Height

	b := &layoutBox{
		BoxKind:              kind,
		Direction:            layout.Direction,
		LineWrap:             layout.LineWrap,
		Padding:              layout.Padding,
		Absolute:             layout.Absolute,
		AbsSize:              layout.AbsSize,
		HasAbsSize:           layout.HasAbsSize,
		Width:                width,
		Height:               height,
		Origin:               origin,
		Pos:                  math32.Vec2(origin.X+layout.Padding.L, origin.Y+layout.Padding.T),
		BoundRightBottom:     math32.Vec2(negInf, negInf),
		AlignListXStartIndex: len(cx.LayoutAlignList),
		AlignListYStartIndex: len(cx.LayoutAlignList),
	}

	if layout.HasAbsSize {
		b.AvailableWidth = layout.AbsSize.X
		b.AvailableHeight = layout.AbsSize.Y
	} else {
		b.AvailableWidth = evalWidth(width, availSpace.X, false) - layout.Padding.L - layout.Padding.R
		b.AvailableHeight = evalHeight(height, availSpace.Y, false) - layout.Padding.T - layout.Padding.B
	}

	cx.LayoutBoxes = append(cx.LayoutBoxes, b)
}

func (cx *Context) topBox() *layoutBox {
	if len(cx.LayoutBoxes) == 0 {
		return nil
	}
	return cx.LayoutBoxes[len(cx.LayoutBoxes)-1]
}

// GetWidthLeft reports the box's remaining available width.
func (b *layoutBox) GetWidthLeft() float32 {
	return maxZeroKeepNaN(b.AvailableWidth - (b.Pos.X - b.Origin.X - b.Padding.L))
}

// GetHeightLeft reports the box's remaining available height.
func (b *layoutBox) GetHeightLeft() float32 {
	return maxZeroKeepNaN(b.AvailableHeight - (b.Pos.Y - b.Origin.Y - b.Padding.T))
}

// assertLastBoxTypeMatches panics if the top of the layout stack is not of
// the expected kind, guarding against mismatched begin/end pairs.
func (cx *Context) assertLastBoxTypeMatches(kind BoxKind) {
	top := cx.topBox()
	if top == nil {
		panic("zap: end_*_box called with an empty layout box stack")
	}
	if top.BoxKind != kind {
		panic("zap: end_*_box kind does not match the box it is closing")
	}
}

// endTypedBox pops the layout box stack, resolves the box's final rect
// against its parent (folding in Compute sizing and the alignment list),
// and returns that rect.
func (cx *Context) endTypedBox(kind BoxKind) math32.Rect {
	cx.assertLastBoxTypeMatches(kind)
	b := cx.LayoutBoxes[len(cx.LayoutBoxes)-1]
	cx.LayoutBoxes = cx.LayoutBoxes[:len(cx.LayoutBoxes)-1]

	width := b.Width
	height := b.Height

	w := b.AvailableWidth + b.Padding.L + b.Padding.R
	if width.kind == sizeCompute {
		computed := b.BoundRightBottom.X - b.Origin.X
		if computed < 0 || computed != computed {
			computed = 0
		}
		w = computed + b.Padding.R
	}
	h := b.AvailableHeight + b.Padding.T + b.Padding.B
	if height.kind == sizeCompute {
		computed := b.BoundRightBottom.Y - b.Origin.Y
		if computed < 0 || computed != computed {
			computed = 0
		}
		h = computed + b.Padding.B
	}

	rect := math32.NewRect(b.Origin, math32.Vec2(w, h))

	if parent := cx.topBox(); parent != nil {
		cx.moveBoxWithOld(parent, b, w, h)
	}

	return rect
}

// moveBoxWithOld advances the parent turtle's walking position by a box of
// size w,h just closed inside it (old), and widens the parent's bound rect.
func (cx *Context) moveBoxWithOld(parent *layoutBox, old *layoutBox, w, h float32) {
	switch old.BoxKind {
	case boxRightBox, boxBottomBox, boxCenterXAlign, boxCenterYAlign, boxCenterXYAlign, boxAbsoluteBox:
		// Non-walking boxes don't advance the parent's turtle.
		right := parent.Origin.X + w
		bottom := parent.Origin.Y + h
		if right > parent.BoundRightBottom.X {
			parent.BoundRightBottom.X = right
		}
		if bottom > parent.BoundRightBottom.Y {
			parent.BoundRightBottom.Y = bottom
		}
	default:
		cx.walkParent(parent, old, w, h)
	}
}

// walkParent advances b's turtle by a box of size w,h, wrapping to a new
// line first if b's LineWrap is Overflow and the box doesn't fit in the
// remaining width (mirroring the original's move_box_with_old). old, if
// non-nil, is the box that was just closed inside b; a wrap correction
// retroactively shifts every Area recorded in old's alignment lists by the
// same delta, since they were positioned before b decided to wrap.
func (cx *Context) walkParent(b *layoutBox, old *layoutBox, w, h float32) math32.Rect {
	var alignDX, alignDY float32

	if b.Direction == DirRight && b.LineWrap == LineWrapOverflow &&
		b.Pos.X+w > b.Origin.X+b.AvailableWidth+0.01 {
		oldX, oldY := b.Pos.X, b.Pos.Y
		b.Pos.X = b.Origin.X + b.Padding.L
		b.Pos.Y += b.Biggest
		b.Biggest = 0
		alignDX = b.Pos.X - oldX
		alignDY = b.Pos.Y - oldY
	}

	oldPos := b.Pos
	switch b.Direction {
	case DirRight:
		b.Pos.X += w
		if h > b.Biggest {
			b.Biggest = h
		}
	case DirDown:
		b.Pos.Y += h
		if w > b.Biggest {
			b.Biggest = w
		}
	}

	right := oldPos.X + w
	bottom := oldPos.Y + h
	if right > b.BoundRightBottom.X {
		b.BoundRightBottom.X = right
	}
	if bottom > b.BoundRightBottom.Y {
		b.BoundRightBottom.Y = bottom
	}

	if old != nil {
		if alignDX != 0 {
			cx.moveByX(old.AlignListXStartIndex, alignDX)
		}
		if alignDY != 0 {
			cx.moveByY(old.AlignListYStartIndex, alignDY)
		}
	}

	return math32.NewRect(oldPos, math32.Vec2(w, h))
}

// doAlignX translates every Area recorded in the alignment list since
// startIndex by dx along X, snapped to the current DPI factor. Only
// forward (non-negative) moves are applied here; wrap-driven moves go
// through moveByX/moveByY directly.
func (cx *Context) doAlignX(b *layoutBox, dx float32) {
	if dx <= 0 {
		return
	}
	cx.moveByX(b.AlignListXStartIndex, dx)
}

func (cx *Context) doAlignY(b *layoutBox, dy float32) {
	if dy <= 0 {
		return
	}
	cx.moveByY(b.AlignListYStartIndex, dy)
}

// dpiSnap rounds v to the nearest physical pixel at the current DPI factor,
// matching the original's DPI-snapped move_by_x/move_by_y.
func (cx *Context) dpiSnap(v float32) float32 {
	if cx.CurrentDPIFactor <= 0 {
		return v
	}
	scaled := v * cx.CurrentDPIFactor
	rounded := float32(int32(scaled + signOf(scaled)*0.5))
	return rounded / cx.CurrentDPIFactor
}

func signOf(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

// moveByX/moveByY nudge the instance rects referenced by every Area in the
// alignment list from startIndex onward; used both for forward alignment
// and for negative line-wrap corrections.
func (cx *Context) moveByX(startIndex int, dx float32) {
	dx = cx.dpiSnap(dx)
	for i := startIndex; i < len(cx.LayoutAlignList); i++ {
		cx.LayoutAlignList[i].nudgeRect(cx, dx, 0)
	}
}

func (cx *Context) moveByY(startIndex int, dy float32) {
	dy = cx.dpiSnap(dy)
	for i := startIndex; i < len(cx.LayoutAlignList); i++ {
		cx.LayoutAlignList[i].nudgeRect(cx, 0, dy)
	}
}

// computeAlignBoxX resolves how far a box's content should move to satisfy
// a fractional AlignX within its available width.
func computeAlignBoxX(align AlignX, availableWidth, usedWidth float32) float32 {
	return (availableWidth - usedWidth) * float32(align)
}

func computeAlignBoxY(align AlignY, availableHeight, usedHeight float32) float32 {
	return (availableHeight - usedHeight) * float32(align)
}

// addToBoxAlignList records area in the current box's alignment list so a
// later doAlignX/doAlignY call can retroactively translate it.
func (cx *Context) addToBoxAlignList(area Area) {
	cx.LayoutAlignList = append(cx.LayoutAlignList, area)
}

// ---- public begin/end helpers (layout_api.rs) ----

func (cx *Context) BeginRow(layout Layout) {
	layout.Direction = DirRight
	cx.beginTypedBox(boxRow, layout)
}
func (cx *Context) EndRow() math32.Rect { return cx.endTypedBox(boxRow) }

func (cx *Context) BeginColumn(layout Layout) {
	layout.Direction = DirDown
	cx.beginTypedBox(boxColumn, layout)
}
func (cx *Context) EndColumn() math32.Rect { return cx.endTypedBox(boxColumn) }

func (cx *Context) BeginPaddingBox(layout Layout) { cx.beginTypedBox(boxPaddingBox, layout) }
func (cx *Context) EndPaddingBox() math32.Rect    { return cx.endTypedBox(boxPaddingBox) }

func (cx *Context) BeginAbsoluteBox(layout Layout) {
	layout.Absolute = true
	cx.beginTypedBox(boxAbsoluteBox, layout)
}
func (cx *Context) EndAbsoluteBox() math32.Rect { return cx.endTypedBox(boxAbsoluteBox) }

func (cx *Context) BeginWrappingBox(layout Layout) {
	if parent := cx.topBox(); parent != nil && parent.Direction != DirRight {
		panic("zap: begin_wrapping_box is only supported for Direction Right")
	}
	layout.LineWrap = LineWrapOverflow
	cx.beginTypedBox(boxWrappingBox, layout)
}
func (cx *Context) EndWrappingBox() math32.Rect { return cx.endTypedBox(boxWrappingBox) }

func (cx *Context) BeginRightBox(layout Layout) { cx.beginTypedBox(boxRightBox, layout) }
func (cx *Context) EndRightBox() math32.Rect    { return cx.endTypedBox(boxRightBox) }

func (cx *Context) BeginBottomBox(layout Layout) { cx.beginTypedBox(boxBottomBox, layout) }
func (cx *Context) EndBottomBox() math32.Rect    { return cx.endTypedBox(boxBottomBox) }

func (cx *Context) BeginCenterXAlign(layout Layout) { cx.beginTypedBox(boxCenterXAlign, layout) }
func (cx *Context) EndCenterXAlign() math32.Rect {
	b := cx.LayoutBoxes[len(cx.LayoutBoxes)-1]
	used := b.Pos.X - b.Origin.X - b.Padding.L
	dx := computeAlignBoxX(AlignXCenter, b.AvailableWidth, used)
	cx.doAlignX(b, dx)
	return cx.endTypedBox(boxCenterXAlign)
}

func (cx *Context) BeginCenterYAlign(layout Layout) { cx.beginTypedBox(boxCenterYAlign, layout) }
func (cx *Context) EndCenterYAlign() math32.Rect {
	b := cx.LayoutBoxes[len(cx.LayoutBoxes)-1]
	used := b.Pos.Y - b.Origin.Y - b.Padding.T
	dy := computeAlignBoxY(AlignYCenter, b.AvailableHeight, used)
	cx.doAlignY(b, dy)
	return cx.endTypedBox(boxCenterYAlign)
}

func (cx *Context) BeginCenterXAndYAlign(layout Layout) {
	cx.beginTypedBox(boxCenterXYAlign, layout)
}
func (cx *Context) EndCenterXAndYAlign() math32.Rect {
	b := cx.LayoutBoxes[len(cx.LayoutBoxes)-1]
	usedW := b.Pos.X - b.Origin.X - b.Padding.L
	usedH := b.Pos.Y - b.Origin.Y - b.Padding.T
	cx.doAlignX(b, computeAlignBoxX(AlignXCenter, b.AvailableWidth, usedW))
	cx.doAlignY(b, computeAlignBoxY(AlignYCenter, b.AvailableHeight, usedH))
	return cx.endTypedBox(boxCenterXYAlign)
}

// GetBoxRect returns the rectangle the current box occupies so far.
func (cx *Context) GetBoxRect() math32.Rect {
	b := cx.topBox()
	if b == nil {
		return math32.Rect{}
	}
	return math32.NewRect(b.Origin, math32.Vec2(b.AvailableWidth+b.Padding.L+b.Padding.R, b.AvailableHeight+b.Padding.T+b.Padding.B))
}

// GetWidthLeft/GetHeightLeft report the current box's remaining space.
func (cx *Context) GetWidthLeft() float32 {
	if b := cx.topBox(); b != nil {
		return b.GetWidthLeft()
	}
	return 0
}
func (cx *Context) GetHeightLeft() float32 {
	if b := cx.topBox(); b != nil {
		return b.GetHeightLeft()
	}
	return 0
}
func (cx *Context) GetWidthTotal() float32 {
	if b := cx.topBox(); b != nil {
		return b.AvailableWidth
	}
	return 0
}
func (cx *Context) GetHeightTotal() float32 {
	if b := cx.topBox(); b != nil {
		return b.AvailableHeight
	}
	return 0
}

// GetBoxBounds returns the furthest bottom-right point reached by content
// in the current box so far.
func (cx *Context) GetBoxBounds() math32.Vector2 {
	if b := cx.topBox(); b != nil {
		return b.BoundRightBottom
	}
	return math32.Vector2{}
}

func (cx *Context) GetBoxOrigin() math32.Vector2 {
	if b := cx.topBox(); b != nil {
		return b.Origin
	}
	return math32.Vector2{}
}

// GetDrawPos returns the current walking position (the "turtle") of the
// box being filled.
func (cx *Context) GetDrawPos() math32.Vector2 {
	if b := cx.topBox(); b != nil {
		return b.Pos
	}
	return math32.Vector2{}
}

// SetDrawPos overrides the walking position directly, used by callers that
// manage their own sub-layout.
func (cx *Context) SetDrawPos(pos math32.Vector2) {
	if b := cx.topBox(); b != nil {
		b.Pos = pos
	}
}

// MoveDrawPos nudges the walking position by a delta without registering
// it against the alignment list.
func (cx *Context) MoveDrawPos(dx, dy float32) {
	if b := cx.topBox(); b != nil {
		b.Pos.X += dx
		b.Pos.Y += dy
	}
}

// AddBox advances the turtle by a fixed-size box of w,h without opening a
// nested layout box, wrapping to a new line first if the box's LineWrap is
// Overflow and w doesn't fit in the remaining width.
func (cx *Context) AddBox(w, h float32) math32.Rect {
	b := cx.topBox()
	if b == nil {
		return math32.Rect{}
	}
	return cx.walkParent(b, nil, w, h)
}

// DrawNewLine resets the walking X back to the box's left edge and advances
// Y by the tallest element seen on the line so far (LineWrap support). Only
// valid on a box walking Direction Right.
func (cx *Context) DrawNewLine() {
	cx.DrawNewLineMinHeight(0)
}

func (cx *Context) DrawNewLineMinHeight(minHeight float32) {
	b := cx.topBox()
	if b == nil {
		return
	}
	if b.Direction != DirRight {
		panic("zap: draw_new_line is only supported for Direction Right")
	}
	lineHeight := b.Biggest
	if lineHeight < minHeight {
		lineHeight = minHeight
	}
	b.Pos.X = b.Origin.X + b.Padding.L
	b.Pos.Y += lineHeight
	b.Biggest = 0
}
