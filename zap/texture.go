package zap

// TextureFormat selects the pixel layout and usage of a texture.
type TextureFormat int

const (
	TextureFormatDefault TextureFormat = iota
	TextureFormatDepth32
	TextureFormatRenderTargetRGBA
	TextureFormatSharedBGRA
)

// texture is the retained per-slot state behind a public Texture handle.
type texture struct {
	Format    TextureFormat
	Width     int
	Height    int
	UpdateID  uint64
}

// TextureHandle is a lightweight copyable reference to a texture slot,
// passed to Pass.AddColorTexture/SetDepthTexture and Area.WriteTexture2D.
type TextureHandle struct {
	TextureID int
	HasID     bool
}

// Texture is a handle into Context.Textures, created on first use.
type Texture struct {
	id    int
	hasID bool
}

func (t *Texture) alloc(cx *Context, format TextureFormat) TextureHandle {
	if !t.hasID {
		t.id = len(cx.Textures)
		t.hasID = true
		cx.Textures = append(cx.Textures, &texture{Format: format})
	}
	return TextureHandle{TextureID: t.id, HasID: true}
}

// GetColor returns (allocating on first use) this Texture as a render
// target color attachment, matching the original's default color texture
// auto-added to a Pass with no explicit color texture.
func (t *Texture) GetColor(cx *Context) TextureHandle {
	return t.alloc(cx, TextureFormatRenderTargetRGBA)
}

// GetDepth returns (allocating on first use) this Texture as a depth
// attachment.
func (t *Texture) GetDepth(cx *Context) TextureHandle {
	return t.alloc(cx, TextureFormatDepth32)
}

// SetSize resizes the texture, invalidating any GPU-side allocation (the
// platform backend is expected to notice UpdateID changed and reallocate).
func (t *Texture) SetSize(cx *Context, width, height int) {
	h := t.alloc(cx, TextureFormatDefault)
	tex := cx.Textures[h.TextureID]
	if tex.Width != width || tex.Height != height {
		tex.Width, tex.Height = width, height
		tex.UpdateID++
	}
}
