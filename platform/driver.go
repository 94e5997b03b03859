package platform

import "zaplib.dev/core/zap"

// EventLoopDriver is the core-to-platform contract (spec §6): everything a
// concrete OS backend (X11, Win32, Cocoa, a browser host, …) implements so
// Run can pump its native events into a zap.Context without this package
// knowing anything about a specific windowing system.
type EventLoopDriver interface {
	// PumpOnce blocks until at least one native event is available and
	// sends it (and anything else ready without blocking) onto q. It
	// returns false once the driver has no more windows and the loop
	// should stop.
	PumpOnce(q *Queue) bool

	// CopyTextToClipboard puts text on the OS clipboard.
	CopyTextToClipboard(text string)

	// ShowTextIME / HideTextIME position or hide the IME composition
	// window at the given point in window-local coordinates.
	ShowTextIME(x, y float32)
	HideTextIME()

	// StartTimer arms a timer that fires a zap.TimerEvent onto q every
	// interval (or once, if repeats is false) and returns its id.
	StartTimer(q *Queue, interval float64, repeats bool) uint64
	// StopTimer cancels a timer started with StartTimer.
	StopTimer(id uint64)

	// UpdateMenu applies an application-menu description.
	UpdateMenu(menu Menu)
}

// GPUBackend is the core-to-backend contract (spec §6): everything a
// concrete GPU backend (OpenGL, Metal, WebGPU, …) implements to turn
// compiled shaders and the Context's retained resources into pixels. Run
// only calls the two canvas-lifecycle methods around each Paint; per-pass
// and per-draw-call iteration over the Context's retained resources is the
// backend's own responsibility once it has a paint target.
type GPUBackend struct {
	// CompileShader compiles source (the concatenated fragment text a
	// zap.Shader produces) against mapping and returns an opaque handle.
	CompileShader func(source string, mapping ShaderMappingView) (any, error)
	// UploadGeometry replaces geomID's vertex/index buffers.
	UploadGeometry func(geomID int, vertices []float32, indices []uint32) error
	// UploadInstances replaces drawCallID's packed instance buffer.
	UploadInstances func(drawCallID int, bytes []float32) error
	// UploadTexture replaces texID's pixel contents.
	UploadTexture func(texID int, pixels []byte, width, height int, format zap.TextureFormat) error

	// BeginRenderTarget/EndRenderTarget bracket rendering into an
	// off-screen pass's color/depth textures.
	BeginRenderTarget func(passID int, colorTextureIDs []int, depthTextureID int) error
	EndRenderTarget   func() error
	// BeginMainCanvas brackets rendering directly to a window's surface.
	BeginMainCanvas func(clearColor [4]float32, clearDepth float32) error

	// Draw issues one batched draw call.
	Draw func(shaderHandle any, drawCallID int, passUniforms zap.PassUniforms, drawUniforms zap.DrawUniforms, userUniforms []float32, textureIDs []int) error
}

// ShaderMappingView is the subset of a compiled zap.Shader's layout a GPU
// backend needs to bind attributes/uniforms correctly; it is passed to
// CompileShader instead of shaderast.ShaderMapping directly so this package
// doesn't need to re-export shaderast's internals wholesale.
type ShaderMappingView struct {
	GeometrySlots, InstanceSlots, UniformSlots int
	TextureCount                              int
}

// Run drives cx's redraw cycle from q, following the original's
// event_loop_core shape: drain whatever native events are ready, deliver
// them to handler in order, then — if the batch requested a draw or the
// caller is animating — synthesize a Draw dispatch (via cx.Dispatch) and a
// Paint bracket through gpu, and block for the next native wakeup. Run
// returns once driver.PumpOnce reports no windows remain.
func Run(cx *zap.Context, driver EventLoopDriver, gpu GPUBackend, handler func(zap.Event)) {
	q := &Queue{}
	for driver.PumpOnce(q) {
		batch := q.DrainAvailable()

		// Dispatch delivers the batch and, if any event in it called
		// RequestDraw, synthesizes and dispatches System(Draw) itself.
		drew := false
		cx.Dispatch(batch, func(ev zap.Event) {
			handler(ev)
			if se, ok := ev.(zap.SystemEvent); ok && se.Kind == zap.SystemDraw {
				drew = true
			}
		})

		if (drew || cx.RequestedNextFrame) && gpu.BeginMainCanvas != nil {
			_ = gpu.BeginMainCanvas([4]float32{}, 1.0)
			handler(zap.SystemEvent{Kind: zap.SystemPaint})
			if gpu.EndRenderTarget != nil {
				_ = gpu.EndRenderTarget()
			}
		}
	}
}
