package zap

import "zaplib.dev/core/math32"

// window is the retained per-slot state behind a public Window handle,
// grounded on CxWindow in the original: a free-list-reused slot holding
// geometry and the id of its main Pass.
type window struct {
	InnerSize  math32.Vector2
	Position   math32.Vector2
	MainPassID int
	HasMain    bool
}

// Window is a handle into Context.Windows, created on first use and reused
// via a free list thereafter (its slot index is stable across frames).
type Window struct {
	id    int
	hasID bool
}

// Begin opens the window, pushing it onto the window stack. The first call
// allocates a slot (reusing one from the free list if available); later
// calls reuse the same slot.
func (w *Window) Begin(cx *Context, innerSize math32.Vector2) {
	if !w.hasID {
		var id int
		if n := len(cx.WindowsFree); n > 0 {
			id = cx.WindowsFree[n-1]
			cx.WindowsFree = cx.WindowsFree[:n-1]
			cx.Windows[id] = &window{InnerSize: innerSize}
		} else {
			id = len(cx.Windows)
			cx.Windows = append(cx.Windows, &window{InnerSize: innerSize})
		}
		w.id = id
		w.hasID = true
	}
	cx.Windows[w.id].MainPassID = 0
	cx.Windows[w.id].HasMain = false
	cx.WindowStack = append(cx.WindowStack, w.id)
}

// End pops the window off the window stack.
func (w *Window) End(cx *Context) Area {
	cx.WindowStack = cx.WindowStack[:len(cx.WindowStack)-1]
	return Area{}
}

// InnerSize returns the window's current logical-pixel size.
func (w *Window) InnerSize(cx *Context) math32.Vector2 {
	if !w.hasID {
		return math32.Vector2{}
	}
	return cx.Windows[w.id].InnerSize
}
