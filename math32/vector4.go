package math32

// Vector4 is a 4-component vector. It doubles as an RGBA color (R,G,B,A
// mapped to X,Y,Z,W) the way the original keeps a single Vec4 for both uses.
type Vector4 struct {
	X, Y, Z, W float32
}

// Vec4 returns a new Vector4 with the given components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Color returns a Vector4 from 0-1 RGBA components.
func Color(r, g, b, a float32) Vector4 {
	return Vector4{X: r, Y: g, Z: b, W: a}
}

// RGBA returns the four color components.
func (v Vector4) RGBA() (r, g, b, a float32) {
	return v.X, v.Y, v.Z, v.W
}

// Add returns a + b.
func (a Vector4) Add(b Vector4) Vector4 {
	return Vector4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// MulScalar returns a * s.
func (a Vector4) MulScalar(s float32) Vector4 {
	return Vector4{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// AsSlice returns the components as a 4-element slice, matching the way
// shader uniform data is written into instance/uniform buffers.
func (a Vector4) AsSlice() []float32 {
	return []float32{a.X, a.Y, a.Z, a.W}
}
