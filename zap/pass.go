package zap

import "zaplib.dev/core/math32"

// PassMatrixMode selects how Pass.setMatrix derives its camera uniforms.
type PassMatrixMode int

const (
	// MatrixOrtho is a pixel-space orthographic projection over the pass's size.
	MatrixOrtho PassMatrixMode = iota
	// MatrixProjection is a perspective projection using the given camera.
	MatrixProjection
)

// ProjectionParams carries the parameters for PassMatrixMode MatrixProjection.
type ProjectionParams struct {
	FovY, Near, Far float32
	Camera          math32.Matrix4
}

// ClearColorMode selects whether a color texture is cleared with a color
// only on first use, or on every paint.
type ClearColorMode int

const (
	ClearColorInitWith ClearColorMode = iota
	ClearColorClearWith
)

type passDepKind int

const (
	depNone passDepKind = iota
	depWindow
	depPass
)

type passColorTexture struct {
	TextureID   int
	ClearMode   ClearColorMode
	ClearColor  math32.Vector4
}

// pass is the retained per-slot state behind a public Pass handle.
type pass struct {
	MatrixMode       PassMatrixMode
	Projection       ProjectionParams
	ColorTextures    []passColorTexture
	DepthTextureID   int
	HasDepthTexture  bool
	OverrideDPI      float32
	HasOverrideDPI   bool
	MainViewID       int
	HasMainView      bool
	DepKind          passDepKind
	DepID            int
	PaintDirty       bool
	Stale            bool
	Size             math32.Vector2
	ZBiasStep        float32
	Uniforms         PassUniforms
}

// PassUniforms mirrors the fixed per-pass uniform block every shader's
// "pass" uniform block reads from (spec §3's "Pass uniforms").
type PassUniforms struct {
	CameraProjection math32.Matrix4
	CameraView       math32.Matrix4
	InvCameraRot     math32.Matrix4
	DPIFactor        float32
	DPIDilate        float32
}

// AsSlice packs the uniform block into a flat float32 buffer for upload,
// 16 slots per matrix plus the two trailing scalars.
func (u PassUniforms) AsSlice() []float32 {
	out := make([]float32, 0, 16*3+2)
	out = append(out, u.CameraProjection.AsSlice()...)
	out = append(out, u.CameraView.AsSlice()...)
	out = append(out, u.InvCameraRot.AsSlice()...)
	out = append(out, u.DPIFactor, u.DPIDilate)
	return out
}

// Pass is a handle into Context.Passes, providing an alternate render
// target configuration (a different camera, or rendering into a Texture).
type Pass struct {
	id    int
	hasID bool
}

// Begin opens the pass, automatically adding a default color and depth
// texture if none were added yet.
func (p *Pass) Begin(cx *Context, backgroundColor math32.Vector4) {
	p.BeginWithoutTextures(cx)
	cp := cx.Passes[p.id]
	if len(cp.ColorTextures) == 0 {
		colorTex := (&Texture{}).GetColor(cx)
		p.AddColorTexture(cx, colorTex, ClearColorClearWith, backgroundColor)
		depthTex := (&Texture{}).GetDepth(cx)
		p.SetDepthTexture(cx, depthTex)
	}
}

// BeginWithoutTextures opens the pass without adding default textures.
func (p *Pass) BeginWithoutTextures(cx *Context) {
	if !p.hasID {
		p.id = len(cx.Passes)
		p.hasID = true
		cx.Passes = append(cx.Passes, &pass{ZBiasStep: 0.001})
	}
	cx.seenPassesThisFrame = append(cx.seenPassesThisFrame, p.id)

	cp := cx.Passes[p.id]
	switch {
	case len(cx.WindowStack) > 0:
		winID := cx.WindowStack[len(cx.WindowStack)-1]
		win := cx.Windows[winID]
		if !win.HasMain {
			win.MainPassID = p.id
			win.HasMain = true
			cp.DepKind = depWindow
			cp.DepID = winID
			cp.Size = win.InnerSize
			cx.CurrentDPIFactor = cx.delegatedDPIFactor(p.id)
		} else if len(cx.PassStack) > 0 {
			depID := cx.PassStack[len(cx.PassStack)-1]
			cp.DepKind = depPass
			cp.DepID = depID
			cp.Size = cx.Passes[depID].Size
			cx.CurrentDPIFactor = cx.delegatedDPIFactor(depID)
		} else {
			cp.DepKind = depNone
			cp.OverrideDPI, cp.HasOverrideDPI = 1.0, true
			cx.CurrentDPIFactor = 1.0
		}
	default:
		cp.DepKind = depNone
		cp.OverrideDPI, cp.HasOverrideDPI = 1.0, true
		cx.CurrentDPIFactor = 1.0
	}

	cp.HasMainView = false
	cp.ColorTextures = cp.ColorTextures[:0]
	cx.PassStack = append(cx.PassStack, p.id)
}

// delegatedDPIFactor resolves the DPI factor a pass should use: its own
// override if set, otherwise the delegated factor of its dependency chain.
func (cx *Context) delegatedDPIFactor(passID int) float32 {
	cp := cx.Passes[passID]
	if cp.HasOverrideDPI {
		return cp.OverrideDPI
	}
	switch cp.DepKind {
	case depWindow:
		return 1.0
	case depPass:
		return cx.delegatedDPIFactor(cp.DepID)
	default:
		return 1.0
	}
}

// OverrideDPIFactor pins the pass's DPI factor regardless of its delegation
// chain.
func (p *Pass) OverrideDPIFactor(cx *Context, dpiFactor float32) {
	if !p.hasID {
		return
	}
	cx.Passes[p.id].OverrideDPI, cx.Passes[p.id].HasOverrideDPI = dpiFactor, true
	cx.CurrentDPIFactor = dpiFactor
}

// SetSize sets the pass's render-target size, clamped to a minimum of 1 on
// each axis.
func (p *Pass) SetSize(cx *Context, size math32.Vector2) {
	if size.X < 1 {
		size.X = 1
	}
	if size.Y < 1 {
		size.Y = 1
	}
	cx.Passes[p.id].Size = size
}

// AddColorTexture registers a color-texture binding for the pass.
func (p *Pass) AddColorTexture(cx *Context, handle TextureHandle, mode ClearColorMode, color math32.Vector4) {
	if !p.hasID {
		panic("zap: AddColorTexture called before Begin")
	}
	cp := cx.Passes[p.id]
	cp.ColorTextures = append(cp.ColorTextures, passColorTexture{TextureID: handle.TextureID, ClearMode: mode, ClearColor: color})
}

// SetDepthTexture registers the pass's depth-texture binding.
func (p *Pass) SetDepthTexture(cx *Context, handle TextureHandle) {
	if !p.hasID {
		panic("zap: SetDepthTexture called before Begin")
	}
	cp := cx.Passes[p.id]
	cp.DepthTextureID, cp.HasDepthTexture = handle.TextureID, true
}

// SetMatrixMode switches the pass's camera projection, marking it dirty.
func (p *Pass) SetMatrixMode(cx *Context, mode PassMatrixMode, proj ProjectionParams) {
	if !p.hasID {
		return
	}
	cp := cx.Passes[p.id]
	cp.PaintDirty = true
	cp.MatrixMode = mode
	cp.Projection = proj
}

// IsStale reports whether the pass was not begun during the most recently
// completed redraw cycle — its index may still be referenced by an Area,
// but a platform backend should skip painting it.
func (p *Pass) IsStale(cx *Context) bool {
	if !p.hasID {
		return true
	}
	return cx.Passes[p.id].Stale
}

// End closes the pass, restoring the enclosing pass's DPI factor.
func (p *Pass) End(cx *Context) {
	cx.PassStack = cx.PassStack[:len(cx.PassStack)-1]
	if len(cx.PassStack) > 0 {
		cx.CurrentDPIFactor = cx.delegatedDPIFactor(cx.PassStack[len(cx.PassStack)-1])
	}
}

// setMatrix fills the pass's camera uniforms for the given viewport offset
// and size, following MatrixMode.
func (cp *pass) setMatrix(offset, size math32.Vector2) {
	switch cp.MatrixMode {
	case MatrixOrtho:
		cp.Uniforms.CameraProjection = math32.Ortho4(offset.X, offset.X+size.X, offset.Y, offset.Y+size.Y, 100, -100)
		cp.Uniforms.CameraView = math32.Identity4()
		cp.Uniforms.InvCameraRot = math32.Identity4()
	case MatrixProjection:
		proj := cp.Projection
		cp.Uniforms.CameraProjection = math32.Perspective4(proj.FovY, size.X/size.Y, proj.Near, proj.Far)
		cp.Uniforms.CameraView = proj.Camera
		cp.Uniforms.InvCameraRot = proj.Camera.Transpose()
	}
}

func (cp *pass) setDPIFactor(dpiFactor float32) {
	dilate := 2 - dpiFactor
	if dilate < 0 {
		dilate = 0
	}
	if dilate > 1 {
		dilate = 1
	}
	cp.Uniforms.DPIFactor = dpiFactor
	cp.Uniforms.DPIDilate = dilate
}
