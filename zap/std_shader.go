package zap

import "zaplib.dev/core/shaderast"

// stdShaderSource declares the uniforms every shader concatenates first:
// the fixed PassUniforms block and the per-DrawCall DrawUniforms block,
// plus the rect_pos/rect_size instance pair every DrawQuad-derived shader
// carries (shaderast.DeriveShaderMapping looks for exactly this pair to
// populate RectInstanceProps). shaderast's parser only understands
// declaration forms, not expressions or function bodies, so unlike the
// original's STD_SHADER this carries no distance-field helper-function
// library — that text would only ever be consumed by a real GPU-backend
// compiler, which is out of this module's scope (see shaderast.Backend).
const stdShaderSource = `
uniform camera_projection: mat4;
uniform camera_view: mat4;
uniform inv_camera_rot: mat4;
uniform dpi_factor: float;
uniform dpi_dilate: float;

uniform draw_clip: vec4;
uniform draw_scroll: vec2;
uniform draw_local_scroll: vec2;
uniform draw_zbias: float;

instance rect_pos: vec2;
instance rect_size: vec2;
`

// newQuadShader returns a *Shader whose fragments are stdShaderSource
// followed by extra, ready to be compiled on first AddInstances call. This
// is the usual way to build a DrawQuad-derived shader: std uniforms/rect
// instance pair plus whatever instance/uniform/texture declarations the
// caller's draw primitive needs.
func newQuadShader(extra string) *Shader {
	sh := &Shader{}
	sh.Fragments(
		shaderast.Fragment{Name: "std", Source: stdShaderSource},
		shaderast.Fragment{Name: "quad", Source: extra},
	)
	return sh
}
