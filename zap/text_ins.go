package zap

import "zaplib.dev/core/math32"

// TextIns is one glyph instance: the atlas UV rect, color, screen rect and
// a handful of fields (char_depth/base/font_size/char_offset/marker) the
// standard text shader and text-selection hit-testing both read. Its field
// order and types mirror the instance declarations of the text shader
// fragment below exactly, since Area.GetSlice reinterprets
// a DrawCall's instance buffer as a []TextIns via an unsafe size check.
type TextIns struct {
	FontT1     math32.Vector2
	FontT2     math32.Vector2
	Color      math32.Vector4
	RectPos    math32.Vector2
	RectSize   math32.Vector2
	CharDepth  float32
	Base       math32.Vector2
	FontSize   float32
	CharOffset float32
	Marker     float32
}

// TextInsUniforms is the per-DrawCall uniform block the text shader reads.
type TextInsUniforms struct {
	Brightness float32
	Curve      float32
}

// textInsFragmentSource declares the text shader's uniform/texture/instance
// layout; it is concatenated after stdShaderSource (for the pass/draw
// uniforms and its own rect_pos/rect_size instance pair) when building the
// text Shader.
const textInsFragmentSource = `
uniform brightness: float;
uniform curve: float;

texture texture: texture2D;

instance font_t1: vec2;
instance font_t2: vec2;
instance color: vec4;
instance rect_pos: vec2;
instance rect_size: vec2;
instance char_depth: float;
instance base: vec2;
instance font_size: float;
instance char_offset: float;
instance marker: float;

geometry geom: vec2;
`

// NewTextShader returns the standard text-drawing Shader, ready for its
// first AddInstances call to trigger compilation.
func NewTextShader() *Shader {
	return newQuadShader(textInsFragmentSource)
}
