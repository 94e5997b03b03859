package zap

import (
	"unsafe"

	"zaplib.dev/core/math32"
)

type areaKind int

const (
	areaEmpty areaKind = iota
	areaView
	areaInstanceRange
)

// Area is a lightweight reference to a View or a range of instances inside
// a DrawCall, stamped with the redraw generation it was created in so a
// later access can detect staleness without a pointer, mirroring the
// original's Area enum (Empty/View/InstanceRange folded into one struct
// with a discriminant field instead of Rust's closed enum).
type Area struct {
	kind areaKind

	viewID int

	drawCallID     int
	instanceOffset int
	instanceCount  int

	redrawID uint64
}

// IsEmpty reports whether the Area carries no reference at all.
func (a Area) IsEmpty() bool { return a.kind == areaEmpty }

// IsFirstInstance reports whether this Area's range starts at instance 0
// of its DrawCall.
func (a Area) IsFirstInstance() bool {
	return a.kind == areaInstanceRange && a.instanceOffset == 0
}

// IsValid reports whether the Area's view is still live at its stored
// redraw generation: a stale Area (its View wasn't begun this frame, or
// was begun at a later generation) is never safely dereferenced.
func (a Area) IsValid(cx *Context) bool {
	switch a.kind {
	case areaView:
		if a.viewID < 0 || a.viewID >= len(cx.Views) {
			return false
		}
		return cx.Views[a.viewID].RedrawID == a.redrawID
	case areaInstanceRange:
		if a.viewID < 0 || a.viewID >= len(cx.Views) {
			return false
		}
		return cx.Views[a.viewID].RedrawID == a.redrawID
	default:
		return false
	}
}

func (a Area) drawCall(cx *Context) *drawCall {
	if a.kind != areaInstanceRange {
		return nil
	}
	v := cx.Views[a.viewID]
	if a.drawCallID < 0 || a.drawCallID >= len(v.DrawCalls) {
		return nil
	}
	return v.DrawCalls[a.drawCallID]
}

// GetScrollPos returns the parent-relative scroll offset of the View a
// valid View or InstanceRange Area belongs to, or the zero vector for an
// empty or stale Area.
func (a Area) GetScrollPos(cx *Context) math32.Vector2 {
	if a.kind == areaView && a.IsValid(cx) {
		return cx.Views[a.viewID].ParentScroll
	}
	if a.kind == areaInstanceRange && a.IsValid(cx) {
		return cx.Views[a.viewID].ParentScroll
	}
	return math32.Vector2{}
}

// GetRectForFirstInstance returns the screen rect of the Area's first
// instance, read from its shader's rect_pos/rect_size instance slots
// (present on every DrawQuad-derived shader), adjusted by the draw call's
// clip-and-scroll transform.
func (a Area) GetRectForFirstInstance(cx *Context) (math32.Rect, bool) {
	if !a.IsValid(cx) || a.kind != areaInstanceRange {
		return math32.Rect{}, false
	}
	dc := a.drawCall(cx)
	if dc == nil {
		return math32.Rect{}, false
	}
	mapping := cx.Shaders[dc.ShaderID].Mapping
	if !mapping.RectInstanceProps.Present {
		return math32.Rect{}, false
	}
	base := a.instanceOffset
	posOff := base + mapping.RectInstanceProps.RectPosSlot
	sizeOff := base + mapping.RectInstanceProps.RectSizeSlot
	if sizeOff+1 >= len(dc.Instances) || posOff+1 >= len(dc.Instances) {
		return math32.Rect{}, false
	}
	x, y, w, h := dc.clipAndScrollRect(dc.Instances[posOff], dc.Instances[posOff+1], dc.Instances[sizeOff], dc.Instances[sizeOff+1])
	return math32.NewRect(math32.Vec2(x, y), math32.Vec2(w, h)), true
}

// nudgeRect translates the rect_pos slot of every instance in the Area's
// range by dx,dy in place; this is how the layout alignment list retroactively repositions
// already-emitted instances once a box's final alignment is known.
func (a Area) nudgeRect(cx *Context, dx, dy float32) {
	if a.kind != areaInstanceRange {
		return
	}
	dc := a.drawCall(cx)
	if dc == nil {
		return
	}
	mapping := cx.Shaders[dc.ShaderID].Mapping
	if !mapping.RectInstanceProps.Present {
		return
	}
	stride := mapping.InstanceSlots
	for i := 0; i < a.instanceCount; i++ {
		base := a.instanceOffset + i*stride + mapping.RectInstanceProps.RectPosSlot
		if base+1 >= len(dc.Instances) {
			return
		}
		dc.Instances[base] += dx
		dc.Instances[base+1] += dy
	}
	dc.InstanceDirty = true
}

// GetSlice reinterprets the Area's instance range as a slice of T, asserting
// the shader's per-instance slot count matches T's size in float32 slots.
// The original does this with an unsafe raw-pointer cast over its instance
// Vec<f32>; Go's type system needs the same unsafe escape hatch for a
// structurally-identical reinterpret-cast, which is the one place this
// package uses the unsafe package.
func GetSlice[T any](a Area, cx *Context) []T {
	dc := a.drawCall(cx)
	if dc == nil || !a.IsValid(cx) {
		return nil
	}
	var zero T
	tSlots := int(unsafe.Sizeof(zero)) / 4
	mapping := cx.Shaders[dc.ShaderID].Mapping
	if tSlots != mapping.InstanceSlots {
		panic("zap: GetSlice type size does not match the draw call's instance stride")
	}
	base := a.instanceOffset
	end := base + a.instanceCount*mapping.InstanceSlots
	if end > len(dc.Instances) {
		return nil
	}
	sub := dc.Instances[base:end]
	if len(sub) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&sub[0])), a.instanceCount)
}

// GetSliceMut is GetSlice for a caller that mutates the returned slice in
// place; mutation writes directly into the draw call's instance buffer, so
// it marks the draw call's instances dirty and its pass paint-dirty, which
// is enough for the next paint to pick the change up without a redraw.
func GetSliceMut[T any](a Area, cx *Context) []T {
	s := GetSlice[T](a, cx)
	if s != nil {
		if dc := a.drawCall(cx); dc != nil {
			dc.InstanceDirty = true
			cx.Passes[cx.Views[a.viewID].PassID].PaintDirty = true
		}
	}
	return s
}

// GetFirst returns a pointer to the Area's first instance reinterpreted as
// T, falling back to Context.TempDefaultData for a stale or empty Area so
// callers can always dereference the result.
func GetFirst[T any](a Area, cx *Context) *T {
	s := GetSlice[T](a, cx)
	if len(s) > 0 {
		return &s[0]
	}
	var zero T
	cx.TempDefaultData = append(cx.TempDefaultData, &zero)
	return cx.TempDefaultData[len(cx.TempDefaultData)-1].(*T)
}

// GetFirstMut is GetFirst for a caller that intends to mutate the result.
func GetFirstMut[T any](a Area, cx *Context) *T {
	s := GetSliceMut[T](a, cx)
	if len(s) > 0 {
		return &s[0]
	}
	return GetFirst[T](a, cx)
}

// WriteUserUniforms copies uniforms into the Area's DrawCall user-uniform
// buffer, asserting the struct's slot size matches the shader's uniform
// slot count, and marks both the draw call and its pass dirty.
func WriteUserUniforms[T any](a Area, cx *Context, uniforms T) {
	if !a.IsValid(cx) {
		return
	}
	dc := a.drawCall(cx)
	if dc == nil {
		return
	}
	tSlots := int(unsafe.Sizeof(uniforms)) / 4
	mapping := cx.Shaders[dc.ShaderID].Mapping
	if tSlots != mapping.UniformSlots {
		panic("zap: WriteUserUniforms type size does not match the shader's uniform slot count")
	}
	src := unsafe.Slice((*float32)(unsafe.Pointer(&uniforms)), tSlots)
	copy(dc.UserUniforms, src)
	dc.UniformsDirty = true
	cx.Passes[cx.Views[a.viewID].PassID].PaintDirty = true
}

// WriteTexture2D binds handle to the named texture slot of the Area's
// DrawCall's shader, panicking if the shader declares no texture by that
// name (matching the original's behavior on an unknown texture binding).
func WriteTexture2D(a Area, cx *Context, name string, handle TextureHandle) {
	if !a.IsValid(cx) {
		return
	}
	dc := a.drawCall(cx)
	if dc == nil {
		return
	}
	mapping := cx.Shaders[dc.ShaderID].Mapping
	idx := -1
	for i, t := range mapping.Textures {
		if t.Ident == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic("zap: WriteTexture2D: shader has no texture named " + name)
	}
	if idx >= len(dc.Textures2D) {
		grown := make([]uint32, idx+1)
		copy(grown, dc.Textures2D)
		dc.Textures2D = grown
	}
	dc.Textures2D[idx] = uint32(handle.TextureID)
	cx.Passes[cx.Views[a.viewID].PassID].PaintDirty = true
}
