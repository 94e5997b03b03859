package zap

import "zaplib.dev/core/math32"

// view is the retained per-slot state behind a public View handle: a list
// of draw calls plus the bookkeeping needed to decide whether a redraw can
// reuse last frame's draw-call list unchanged.
type view struct {
	DrawCalls     []*drawCall
	PassID        int
	Rect          math32.Rect
	ParentScroll  math32.Vector2
	RedrawID      uint64
	inputHash     uint64
	hasInputHash  bool
}

// View is a handle into Context.Views, created when first used and stable
// across frames thereafter (its slot index never changes).
type View struct {
	id    int
	hasID bool
}

// Begin claims this View's slot (allocating one on first use), truncating
// its draw-call list so the caller rebuilds it this frame. layoutSize
// gives the box engine the View's inherent size.
//
// Go has no cheap "input hash" short-circuit over arbitrary draw args the
// way the original's `clean` flag does (that needs call-site value
// hashing we can't derive generically), so Begin never skips a rebuild:
// the slot's draw-call list is always truncated-and-rebuilt here, matching
// the "otherwise" branch of the original's begin_view.
func (v *View) Begin(cx *Context, width Width, height Height) {
	if !v.hasID {
		v.id = len(cx.Views)
		v.hasID = true
		cx.Views = append(cx.Views, &view{})
	}
	cv := cx.Views[v.id]
	cv.DrawCalls = cv.DrawCalls[:0]
	if len(cx.PassStack) > 0 {
		cv.PassID = cx.PassStack[len(cx.PassStack)-1]
	}
	cx.beginTypedBox(boxView, Layout{
		LayoutSize: LayoutSize{Width: width, Height: height},
	})
	cx.LayoutBoxes[len(cx.LayoutBoxes)-1].ViewID = v.id
}

// End records the View's rectangle from the layout box it was opened with,
// stamps its redraw generation, and returns an Area of kind View.
func (v *View) End(cx *Context) Area {
	rect := cx.endTypedBox(boxView)
	cv := cx.Views[v.id]
	cv.Rect = rect
	cv.RedrawID = cx.RedrawID
	return Area{kind: areaView, viewID: v.id, redrawID: cx.RedrawID}
}

// SetScrollPos sets the View's parent-relative scroll offset.
func (v *View) SetScrollPos(cx *Context, pos math32.Vector2) {
	if !v.hasID {
		return
	}
	cx.Views[v.id].ParentScroll = pos
}
