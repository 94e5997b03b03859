package zap

import "testing"

func TestAllocGlyphPacksShelvesLeftToRightThenWraps(t *testing.T) {
	a := newFontAtlas()
	a.TextureSize = 100

	x1, y1, ok := a.allocGlyph(40, 10)
	if !ok || x1 != 0 || y1 != 0 {
		t.Fatalf("first alloc = (%d,%d,%v), want (0,0,true)", x1, y1, ok)
	}

	x2, y2, ok := a.allocGlyph(40, 15)
	if !ok || x2 != 40 || y2 != 0 {
		t.Fatalf("second alloc = (%d,%d,%v), want (40,0,true)", x2, y2, ok)
	}

	// Doesn't fit on the current shelf (40+40+30 > 100): wraps to a new
	// shelf below the tallest glyph seen on the outgoing one (15).
	x3, y3, ok := a.allocGlyph(30, 5)
	if !ok || x3 != 0 || y3 != 15 {
		t.Fatalf("third alloc = (%d,%d,%v), want (0,15,true)", x3, y3, ok)
	}
}

func TestAllocGlyphReportsFullOnceExhausted(t *testing.T) {
	a := newFontAtlas()
	a.TextureSize = 20

	_, _, ok := a.allocGlyph(20, 15)
	if !ok {
		t.Fatalf("expected first alloc to fit")
	}
	_, _, ok = a.allocGlyph(20, 10)
	if ok {
		t.Fatalf("expected second alloc to overflow and fail")
	}
	if !a.Full {
		t.Fatalf("expected atlas to be marked Full after overflow")
	}
}

func TestGetGlyphCachesPerSubpixelSlotWithoutRerasterizing(t *testing.T) {
	r := newFontRegistry()
	r.fonts = append(r.fonts, &registeredFont{})

	rasterizeCalls := 0
	rasterize := func(x, y, w, h int) { rasterizeCalls++ }

	g1 := r.GetGlyph(0, 1.0, 16, 5, 0.1, 8, 10, rasterize)
	if g1 == nil {
		t.Fatalf("expected a non-nil glyph on first request")
	}
	if rasterizeCalls != 1 {
		t.Fatalf("rasterizeCalls = %d, want 1 after first request", rasterizeCalls)
	}

	g2 := r.GetGlyph(0, 1.0, 16, 5, 0.1, 8, 10, rasterize)
	if rasterizeCalls != 1 {
		t.Fatalf("rasterizeCalls = %d, want still 1 after repeat request at the same subpixel slot", rasterizeCalls)
	}
	if g1 != g2 {
		t.Fatalf("expected the cached glyph pointer to be reused")
	}

	// A different subpixel slot for the same glyph rasterizes again; it's a
	// distinct cache entry.
	g3 := r.GetGlyph(0, 1.0, 16, 5, 0.9, 8, 10, rasterize)
	if rasterizeCalls != 2 {
		t.Fatalf("rasterizeCalls = %d, want 2 after a new subpixel slot", rasterizeCalls)
	}
	if g3 == g1 {
		t.Fatalf("expected a distinct glyph for a distinct subpixel slot")
	}
}
