package zap

// geometry is the retained per-slot state behind a Geometry handle: a
// vertex buffer and index buffer shared across every DrawCall that uses a
// given mesh, indexed separately from the Shader's per-instance buffers.
type geometry struct {
	Vertices   []float32
	Indices    []uint32
	UpdateID   uint64
	VertexSlots int
}

// Geometry is a handle into Context.Geoms, created on first use.
type Geometry struct {
	id    int
	hasID bool
}

// Set replaces the geometry's vertex/index buffers, bumping UpdateID so the
// platform backend knows to re-upload.
func (g *Geometry) Set(cx *Context, vertexSlots int, vertices []float32, indices []uint32) {
	if !g.hasID {
		g.id = len(cx.Geoms)
		g.hasID = true
		cx.Geoms = append(cx.Geoms, &geometry{})
	}
	gm := cx.Geoms[g.id]
	gm.VertexSlots = vertexSlots
	gm.Vertices = vertices
	gm.Indices = indices
	gm.UpdateID++
}

// ID returns the geometry's slot index, or -1 if it has never been set.
func (g *Geometry) ID() int {
	if !g.hasID {
		return -1
	}
	return g.id
}
