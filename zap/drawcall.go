package zap

// DrawUniforms is the per-DrawCall uniform struct written alongside pass
// uniforms: clip rect, scroll offsets and a z-bias used to order
// coplanar draws.
type DrawUniforms struct {
	ClipX1, ClipY1, ClipX2, ClipY2 float32
	DrawScrollX, DrawScrollY       float32
	LocalScrollX, LocalScrollY     float32
	ZBias                          float32
}

// drawCall is the retained per-slot state behind a batched GPU draw of N
// instances of one shader over a shared geometry.
type drawCall struct {
	ShaderID       int
	GeomID         int
	HasGeomOverride bool
	Instances      []float32
	UserUniforms   []float32
	Textures2D     []uint32
	DrawUniforms   DrawUniforms
	ScrollGroupID  int
	InstanceDirty  bool
	UniformsDirty  bool
	StickyX        bool
	StickyY        bool
}

// clipAndScrollRect applies the DrawCall's clip rect and scroll offset to
// an instance-local rectangle, matching clip_and_scroll_rect in the
// original's draw_call.rs-equivalent area.rs usage.
func (dc *drawCall) clipAndScrollRect(x, y, w, h float32) (rx, ry, rw, rh float32) {
	x1 := x - dc.DrawUniforms.DrawScrollX - dc.DrawUniforms.LocalScrollX
	y1 := y - dc.DrawUniforms.DrawScrollY - dc.DrawUniforms.LocalScrollY
	return x1, y1, w, h
}

// AddInstances finds or creates a DrawCall in the current View whose
// shader matches sh, then appends records (already packed as float32
// slots matching the shader's instance stride) to its instance buffer.
// It returns an InstanceRange Area covering the appended records.
//
// Adjacent calls with an identical shader id coalesce into the same
// DrawCall, matching the original's draw-call-coalescing behavior; a
// scroll-sticky append (AddInstancesWithScrollSticky) always forces a new
// DrawCall.
func (cx *Context) AddInstances(sh *Shader, records []float32) Area {
	return cx.addInstances(sh, records, false, false, false)
}

// AddInstancesWithScrollSticky is like AddInstances but always opens a new
// DrawCall and records which axes should stay fixed under scrolling.
func (cx *Context) AddInstancesWithScrollSticky(sh *Shader, records []float32, stickyX, stickyY bool) Area {
	return cx.addInstances(sh, records, true, stickyX, stickyY)
}

func (cx *Context) addInstances(sh *Shader, records []float32, forceBreak, stickyX, stickyY bool) Area {
	if !cx.InRedrawCycle {
		panic("zap: AddInstances called outside a redraw cycle")
	}
	if len(cx.ViewStackTop()) == 0 {
		panic("zap: AddInstances called without an open View")
	}
	viewID := cx.currentViewID()
	cv := cx.Views[viewID]

	shaderID := cx.shaderID(sh)
	stride := cx.Shaders[shaderID].Mapping.InstanceSlots

	if len(records)%max1(stride) != 0 {
		panic("zap: instance record length is not a multiple of the shader's instance stride")
	}

	var dc *drawCall
	dcID := -1
	if !forceBreak && len(cv.DrawCalls) > 0 {
		last := cv.DrawCalls[len(cv.DrawCalls)-1]
		if last.ShaderID == shaderID && !last.StickyX && !last.StickyY {
			dc, dcID = last, len(cv.DrawCalls)-1
		}
	}
	if dc == nil {
		dc = &drawCall{ShaderID: shaderID, Textures2D: make([]uint32, len(cx.Shaders[shaderID].Mapping.Textures))}
		if stride > 0 {
			dc.UserUniforms = make([]float32, cx.Shaders[shaderID].Mapping.UniformSlots)
		}
		dc.StickyX, dc.StickyY = stickyX, stickyY
		cv.DrawCalls = append(cv.DrawCalls, dc)
		dcID = len(cv.DrawCalls) - 1
	}

	offset := len(dc.Instances)
	dc.Instances = append(dc.Instances, records...)
	dc.InstanceDirty = true
	cx.Passes[cv.PassID].PaintDirty = true

	count := 0
	if stride > 0 {
		count = len(records) / stride
	}

	area := Area{
		kind:           areaInstanceRange,
		viewID:         viewID,
		drawCallID:     dcID,
		instanceOffset: offset,
		instanceCount:  count,
		redrawID:       cx.RedrawID,
	}
	return area
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// currentViewID and ViewStackTop are placeholders resolved against the
// actual view-stack tracking kept on the layout box stack; see layout.go's
// boxView handling for how the "current view" is threaded through begin/end.
func (cx *Context) currentViewID() int {
	for i := len(cx.LayoutBoxes) - 1; i >= 0; i-- {
		if cx.LayoutBoxes[i].BoxKind == boxView {
			return cx.LayoutBoxes[i].ViewID
		}
	}
	panic("zap: no open View")
}

// ViewStackTop reports whether any View is currently open, used to guard
// AddInstances calls issued outside of one.
func (cx *Context) ViewStackTop() []int {
	for i := len(cx.LayoutBoxes) - 1; i >= 0; i-- {
		if cx.LayoutBoxes[i].BoxKind == boxView {
			return []int{cx.LayoutBoxes[i].ViewID}
		}
	}
	return nil
}
