package zap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zaplib.dev/core/math32"
	"zaplib.dev/core/shaderast"
	"zaplib.dev/core/zap"
)

func quadShader() *zap.Shader {
	return (&zap.Shader{}).Fragments(
		shaderast.Fragment{Name: "std", Source: `
			uniform camera_projection: mat4;
			instance rect_pos: vec2;
			instance rect_size: vec2;
		`},
		shaderast.Fragment{Name: "quad", Source: `
			instance color: vec4;
		`},
	)
}

func drawOneQuad(t *testing.T, cx *zap.Context, sh *zap.Shader) zap.Area {
	t.Helper()
	// slots: rect_pos(2) + rect_size(2) + color(4) = 8
	records := []float32{10, 20, 30, 40, 1, 0, 0, 1}
	return cx.AddInstances(sh, records)
}

func TestAreaIsValidTracksViewRedrawGeneration(t *testing.T) {
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

	require.True(t, area.IsValid(cx))

	// A second redraw cycle that reopens the same View stamps a new
	// RedrawID on it, invalidating the Area captured against the old one —
	// even though the View's slot index is unchanged.
	cx.BeginRedrawCycle()
	win.Begin(cx, math32.Vec2(400, 300))
	pass.Begin(cx, math32.Vector4{})
	v.Begin(cx, zap.FillWidth(), zap.FillHeight())
	v.End(cx)
	pass.End(cx)
	win.End(cx)
	cx.EndRedrawCycle()

	assert.False(t, area.IsValid(cx))
}

func TestGetRectForFirstInstanceReadsRectSlots(t *testing.T) {
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

	rect, ok := area.GetRectForFirstInstance(cx)
	require.True(t, ok)
	assert.Equal(t, float32(10), rect.Pos.X)
	assert.Equal(t, float32(20), rect.Pos.Y)
	assert.Equal(t, float32(30), rect.Size.X)
	assert.Equal(t, float32(40), rect.Size.Y)
}

func texturedQuadShader() *zap.Shader {
	return (&zap.Shader{}).Fragments(
		shaderast.Fragment{Name: "std", Source: `
			uniform camera_projection: mat4;
			instance rect_pos: vec2;
			instance rect_size: vec2;
			texture tex: texture2D;
		`},
	)
}

func TestWriteTexture2DIsANoOpOnAStaleArea(t *testing.T) {
	cx := zap.NewContext()
	var win zap.Window
	var pass zap.Pass
	var v zap.View

	cx.BeginRedrawCycle()
	win.Begin(cx, math32.Vec2(400, 300))
	pass.Begin(cx, math32.Vector4{})
	v.Begin(cx, zap.FillWidth(), zap.FillHeight())
	area := cx.AddInstances(texturedQuadShader(), []float32{0, 0, 10, 10})
	v.End(cx)
	pass.End(cx)
	win.End(cx)
	cx.EndRedrawCycle()

	// A later frame reuses the view's DrawCalls slot 0 for a plain quad
	// shader with no texture slot at all; the first frame's Area is now
	// stale (its View was reopened at a newer RedrawID).
	cx.BeginRedrawCycle()
	win.Begin(cx, math32.Vec2(400, 300))
	pass.Begin(cx, math32.Vector4{})
	v.Begin(cx, zap.FillWidth(), zap.FillHeight())
	cx.AddInstances(quadShader(), []float32{5, 5, 10, 10, 1, 0, 0, 1})
	v.End(cx)
	pass.End(cx)
	win.End(cx)
	cx.EndRedrawCycle()

	require.False(t, area.IsValid(cx))

	// Without the IsValid guard this would resolve to the new frame's
	// textureless DrawCall and panic looking up "tex" on it.
	assert.NotPanics(t, func() {
		zap.WriteTexture2D(area, cx, "tex", zap.TextureHandle{TextureID: 1, HasID: true})
	})
}

func TestIsFirstInstanceAndIsEmpty(t *testing.T) {
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
	assert.True(t, (zap.Area{}).IsEmpty())
}
