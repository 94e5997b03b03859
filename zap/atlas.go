package zap

import "log/slog"

// atlasSubpixelSlots is the number of subpixel-offset variants cached per
// glyph/size/DPI combination, matching the original's
// ATLAS_SUBPIXEL_SLOTS constant — enough granularity that hinting error
// from snapping a glyph's subpixel x-offset to the nearest slot is
// imperceptible.
const atlasSubpixelSlots = 64

// atlasTextureSize is the fixed size (in texels, both axes) of the shared
// glyph atlas texture.
const atlasTextureSize = 2048

// fontAtlasGlyph is a glyph's normalized UV rect within the shared atlas
// texture.
type fontAtlasGlyph struct {
	TX1, TY1, TX2, TY2 float32
}

// fontAtlas is the bump-allocated shelf packer backing every font's
// rasterized glyphs, shared across all fonts and sizes in the registry.
type fontAtlas struct {
	TextureSize int
	AllocXPos   int
	AllocYPos   int
	AllocHMax   int
	Full        bool
}

func newFontAtlas() *fontAtlas {
	return &fontAtlas{TextureSize: atlasTextureSize}
}

// allocGlyph reserves a w x h texel rect in the atlas using a shelf bump
// allocator: it packs left-to-right along the current shelf, starting a
// new shelf (reset x, advance y by the tallest glyph on the outgoing
// shelf) when a glyph doesn't fit on the current row. Once the atlas is
// exhausted it stops allocating and reports full, matching the original's
// "FONT ATLAS FULL" log-and-continue behavior rather than an error return.
func (a *fontAtlas) allocGlyph(w, h int) (x, y int, ok bool) {
	if a.Full {
		return 0, 0, false
	}
	if a.AllocXPos+w > a.TextureSize {
		a.AllocXPos = 0
		a.AllocYPos += a.AllocHMax
		a.AllocHMax = 0
	}
	if a.AllocYPos+h > a.TextureSize {
		a.Full = true
		slog.Warn("zap: font atlas full", slog.Int("width", w), slog.Int("height", h))
		return 0, 0, false
	}
	x, y = a.AllocXPos, a.AllocYPos
	a.AllocXPos += w
	if h > a.AllocHMax {
		a.AllocHMax = h
	}
	return x, y, true
}
