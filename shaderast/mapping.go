package shaderast

// PropSlot is one named property's position within a packed float32 buffer.
type PropSlot struct {
	Ident  string
	Ty     TyLit
	Offset int // in float32 slots
}

// TextureSlot is one named texture binding, carrying no buffer offset since
// textures bind out of band from the instance/uniform buffers.
type TextureSlot struct {
	Ident string
	Ty    TyLit
}

// RectInstanceProps records the slot offsets of the rect_pos/rect_size
// instance properties every DrawQuad-derived shader is expected to declare,
// used by Area.GetRectForFirstInstance and the layout engine's
// DPI-snapped-translate pass to locate a draw call's rect in its instance
// buffer without a name lookup per call.
type RectInstanceProps struct {
	Present      bool
	RectPosSlot  int
	RectSizeSlot int
}

// ShaderMapping is the stable, typed binding between a ShaderAst's
// declarations and the packed buffers the Go side writes into: ordered
// geometry/instance/uniform property vectors with slot offsets, a texture
// list, and the total slot counts used to size buffers and validate writes
// (Area.GetSlice/GetSliceMut assert against InstanceSlots).
type ShaderMapping struct {
	GeometryProps     []PropSlot
	InstanceProps     []PropSlot
	UniformProps      []PropSlot
	Textures          []TextureSlot
	RectInstanceProps RectInstanceProps

	GeometrySlots int
	InstanceSlots int
	UniformSlots  int
}

// DeriveShaderMapping walks ast's declarations in order and assigns packed
// slot offsets within each category, the way the original's ShaderMapping
// is built once per compiled shader and then compared across recompiles to
// decide whether existing instance data can be kept.
func DeriveShaderMapping(ast *ShaderAst) ShaderMapping {
	var m ShaderMapping
	for _, d := range ast.Decls {
		switch d.Kind {
		case DeclGeometry:
			m.GeometryProps = append(m.GeometryProps, PropSlot{Ident: d.Ident, Ty: d.Ty, Offset: m.GeometrySlots})
			m.GeometrySlots += d.Ty.Slots()
		case DeclInstance:
			m.InstanceProps = append(m.InstanceProps, PropSlot{Ident: d.Ident, Ty: d.Ty, Offset: m.InstanceSlots})
			m.InstanceSlots += d.Ty.Slots()
		case DeclUniform:
			m.UniformProps = append(m.UniformProps, PropSlot{Ident: d.Ident, Ty: d.Ty, Offset: m.UniformSlots})
			m.UniformSlots += d.Ty.Slots()
		case DeclTexture:
			m.Textures = append(m.Textures, TextureSlot{Ident: d.Ident, Ty: d.Ty})
		}
	}

	var rectPos, rectSize *PropSlot
	for i := range m.InstanceProps {
		switch m.InstanceProps[i].Ident {
		case "rect_pos":
			rectPos = &m.InstanceProps[i]
		case "rect_size":
			rectSize = &m.InstanceProps[i]
		}
	}
	if rectPos != nil && rectSize != nil {
		m.RectInstanceProps = RectInstanceProps{Present: true, RectPosSlot: rectPos.Offset, RectSizeSlot: rectSize.Offset}
	}
	return m
}

// FindInstanceProp returns the instance prop named ident, if any.
func (m ShaderMapping) FindInstanceProp(ident string) (PropSlot, bool) {
	for _, p := range m.InstanceProps {
		if p.Ident == ident {
			return p, true
		}
	}
	return PropSlot{}, false
}

// FindUniformProp returns the uniform prop named ident, if any.
func (m ShaderMapping) FindUniformProp(ident string) (PropSlot, bool) {
	for _, p := range m.UniformProps {
		if p.Ident == ident {
			return p, true
		}
	}
	return PropSlot{}, false
}

// FindTexture returns the texture slot named ident, if any.
func (m ShaderMapping) FindTexture(ident string) (TextureSlot, bool) {
	for _, t := range m.Textures {
		if t.Ident == ident {
			return t, true
		}
	}
	return TextureSlot{}, false
}

// CompatibleWith reports whether m and other describe buffers with the same
// slot layout — same props, same types, same offsets, in the same order —
// so a shader recompile can keep existing instance/uniform data instead of
// discarding draw calls built against the old mapping.
func (m ShaderMapping) CompatibleWith(other ShaderMapping) bool {
	return propsEqual(m.GeometryProps, other.GeometryProps) &&
		propsEqual(m.InstanceProps, other.InstanceProps) &&
		propsEqual(m.UniformProps, other.UniformProps) &&
		texturesEqual(m.Textures, other.Textures)
}

func propsEqual(a, b []PropSlot) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func texturesEqual(a, b []TextureSlot) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
