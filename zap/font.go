package zap

import (
	"sync"

	"golang.org/x/image/font/sfnt"

	"zaplib.dev/core/vector"
)

// glyphKey identifies one cached rasterization: a font, a pixel size
// (already DPI-scaled), a glyph index, and a subpixel slot.
type glyphKey struct {
	FontID      int
	FontSizePx  float32
	GlyphIndex  sfnt.GlyphIndex
	SubpixelSlot int
}

// fontAtlasPage caches every glyph rasterized at one font/size/DPI
// combination, mirroring CxFontAtlasPage: a fixed 64-slot subpixel table
// per glyph so repeated draws at slightly different fractional x offsets
// reuse an already-rasterized glyph instead of re-rasterizing.
type fontAtlasPage struct {
	DPIFactor float32
	FontSize  float32
	Glyphs    map[sfnt.GlyphIndex][atlasSubpixelSlots]*fontAtlasGlyph
}

// registeredFont is one parsed font file plus its atlas pages, one page per
// distinct (dpiFactor, fontSize) combination drawn with it so far.
type registeredFont struct {
	Face  *sfnt.Font
	Pages []*fontAtlasPage
}

// fontRegistry owns every loaded font and the glyph atlas they share,
// mirroring the original's Fonts/CxFontsAtlas split: font parsing and page
// lookup are guarded by a single RWMutex since nothing in this module
// loads fonts from more than one goroutine, unlike the original's
// web-worker-driven font loading which needed the same RwLock for a
// genuinely concurrent reason.
type fontRegistry struct {
	mu     sync.RWMutex
	fonts  []*registeredFont
	atlas  *fontAtlas
	todo   []glyphKey
}

func newFontRegistry() *fontRegistry {
	return &fontRegistry{atlas: newFontAtlas()}
}

// LoadFont parses ttf as an sfnt font and returns its registry id.
func (r *fontRegistry) LoadFont(ttf []byte) (int, error) {
	face, err := sfnt.Parse(ttf)
	if err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	id := len(r.fonts)
	r.fonts = append(r.fonts, &registeredFont{Face: face})
	return id, nil
}

// getPage returns (creating on first use) the atlas page for fontID at
// dpiFactor/fontSize, matching get_font_atlas_page_id's read-lock-first,
// write-lock-to-add pattern.
func (r *fontRegistry) getPage(fontID int, dpiFactor, fontSize float32) *fontAtlasPage {
	r.mu.RLock()
	f := r.fonts[fontID]
	for _, p := range f.Pages {
		if p.DPIFactor == dpiFactor && p.FontSize == fontSize {
			r.mu.RUnlock()
			return p
		}
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range f.Pages {
		if p.DPIFactor == dpiFactor && p.FontSize == fontSize {
			return p
		}
	}
	page := &fontAtlasPage{DPIFactor: dpiFactor, FontSize: fontSize, Glyphs: make(map[sfnt.GlyphIndex][atlasSubpixelSlots]*fontAtlasGlyph)}
	f.Pages = append(f.Pages, page)
	return page
}

// subpixelSlot snaps a fractional pixel x-offset in [0,1) to one of the
// registry's fixed subpixel slots.
func subpixelSlot(fractionalX float32) int {
	slot := int(fractionalX * atlasSubpixelSlots)
	if slot < 0 {
		slot = 0
	}
	if slot >= atlasSubpixelSlots {
		slot = atlasSubpixelSlots - 1
	}
	return slot
}

// GetGlyph returns the cached atlas rect for glyph at the given page and
// subpixel slot, rasterizing (and atlas-allocating) it on first request.
// rasterize receives the allocated atlas offset (x, y) and the glyph's
// w x h size and produces the glyph's pixels there itself; it returns
// nothing. This package owns packing and caching, not pixel production.
// When the atlas is full GetGlyph returns nil without calling rasterize.
func (r *fontRegistry) GetGlyph(fontID int, dpiFactor, fontSize float32, glyph sfnt.GlyphIndex, fractionalX float32, w, h int, rasterize func(x, y, w, h int)) *fontAtlasGlyph {
	page := r.getPage(fontID, dpiFactor, fontSize)
	slot := subpixelSlot(fractionalX)

	r.mu.Lock()
	defer r.mu.Unlock()
	slots, ok := page.Glyphs[glyph]
	if ok && slots[slot] != nil {
		return slots[slot]
	}

	x, y, fit := r.atlas.allocGlyph(w, h)
	if !fit {
		return nil
	}
	rasterize(x, y, w, h)

	ts := float32(r.atlas.TextureSize)
	g := &fontAtlasGlyph{
		TX1: float32(x) / ts,
		TY1: float32(y) / ts,
		TX2: float32(x+w) / ts,
		TY2: float32(y+h) / ts,
	}
	slots[slot] = g
	page.Glyphs[glyph] = slots
	return g
}

// trapezoidateOutline is a small helper wiring a glyph's linearized path
// through vector.Trapezoidator. It is unexported and nothing in this
// module calls it.
func trapezoidateOutline(path vector.LinePath, f func(vector.Trapezoid) bool) bool {
	return vector.NewTrapezoidator().Trapezoidate(path, f)
}
