package zap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zaplib.dev/core/math32"
	"zaplib.dev/core/shaderast"
	"zaplib.dev/core/zap"
)

func TestShaderCompilesOnFirstUse(t *testing.T) {
	cx := zap.NewContext()
	sh := quadShader()
	var win zap.Window
	var pass zap.Pass
	var v zap.View

	cx.BeginRedrawCycle()
	win.Begin(cx, math32.Vec2(400, 300))
	pass.Begin(cx, math32.Vector4{})
	v.Begin(cx, zap.FillWidth(), zap.FillHeight())
	area := drawOneQuad(t, cx, sh)
	v.End(cx)
	pass.End(cx)
	win.End(cx)
	cx.EndRedrawCycle()

	assert.True(t, area.IsFirstInstance())
}

func TestShaderRecompileWithIncompatibleMappingIsRejectedNotApplied(t *testing.T) {
	cx := zap.NewContext()
	sh := quadShader()
	var win zap.Window
	var pass zap.Pass
	var v zap.View

	cx.BeginRedrawCycle()
	win.Begin(cx, math32.Vec2(400, 300))
	pass.Begin(cx, math32.Vector4{})
	v.Begin(cx, zap.FillWidth(), zap.FillHeight())
	area := drawOneQuad(t, cx, sh)
	v.End(cx)
	pass.End(cx)
	win.End(cx)
	cx.EndRedrawCycle()

	_, ok := area.GetRectForFirstInstance(cx)
	require.True(t, ok)

	// Swap in a fragment list whose instance layout is incompatible (an
	// extra leading float slot shifts rect_pos/rect_size off their original
	// offsets) — this must be rejected, leaving the shader's compiled
	// mapping in place. The frame-1 Area goes stale once v is redrawn, so
	// the check below reads the Area recorded in frame 2.
	sh.Fragments(
		shaderast.Fragment{Name: "std", Source: `
			uniform camera_projection: mat4;
			instance extra_lead: float;
			instance rect_pos: vec2;
			instance rect_size: vec2;
		`},
		shaderast.Fragment{Name: "quad", Source: `
			instance color: vec4;
		`},
	)

	cx.BeginRedrawCycle()
	win.Begin(cx, math32.Vec2(400, 300))
	pass.Begin(cx, math32.Vector4{})
	v.Begin(cx, zap.FillWidth(), zap.FillHeight())
	// Same stride (8) as the original compiled mapping: the rejected
	// recompile left the shader's mapping (and stride) unchanged.
	areaAfter := cx.AddInstances(sh, []float32{50, 60, 70, 80, 0, 1, 0, 1})
	v.End(cx)
	pass.End(cx)
	win.End(cx)
	cx.EndRedrawCycle()

	// The old mapping reads rect_pos/rect_size from slots 0-3; the rejected
	// one would have read them one slot later.
	rectAfter, ok := areaAfter.GetRectForFirstInstance(cx)
	require.True(t, ok)
	assert.Equal(t, math32.NewRect(math32.Vec2(50, 60), math32.Vec2(70, 80)), rectAfter)
}
