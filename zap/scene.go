// Package zap implements the process-wide scene graph, layout engine, draw
// API, font atlas and event dispatch of the runtime: everything that hangs
// off a single *Context per process.
package zap

import (
	"log/slog"
)

// Context owns every other entity in the runtime: windows, passes, views,
// draw calls, shaders, textures, geometries and fonts, plus the layout box
// stack and event-dispatch state threaded through one redraw cycle.
//
// There is exactly one Context per process. It is passed explicitly to
// every operation rather than stored in a global, so tests can run several
// independent instances.
type Context struct {
	Windows     []*window
	WindowsFree []int
	WindowStack []int

	Passes    []*pass
	PassStack []int

	Views []*view

	Shaders         []*shader
	ShaderRecompile []int

	Textures []*texture
	Geoms    []*geometry

	Fonts *fontRegistry

	LayoutBoxes      []*layoutBox
	LayoutAlignList  []Area
	InRedrawCycle    bool
	RedrawID         uint64
	RequestedDraw    bool
	RequestedNextFrame bool

	CurrentDPIFactor float32

	Pointers  [maxPointerDigits]pointerState
	KeyFocus  ComponentID
	HasFocus  bool
	keepFocus bool

	// TempDefaultData backs Area.GetFirst/GetFirstMut for stale Areas;
	// cleared every redraw, mirroring temp_default_data in the original.
	TempDefaultData []any

	DebugLogEnabled bool
	DebugLogs       []DebugLogEntry

	Log *slog.Logger

	seenPassesThisFrame []int
}

// NewContext returns a Context ready for its first redraw cycle.
func NewContext() *Context {
	return &Context{
		CurrentDPIFactor: 1.0,
		Fonts:            newFontRegistry(),
		Log:              slog.Default(),
	}
}

// ComponentID identifies a caller-level widget/component for pointer
// capture, hover and focus bookkeeping. The runtime never interprets it
// beyond equality.
type ComponentID uint64

const maxPointerDigits = 16

// RequestDraw schedules a redraw for the next frame.
func (cx *Context) RequestDraw() { cx.RequestedDraw = true }

// RequestNextFrame sets RequestedNextFrame, which the platform driver loop
// reads to paint again after the current event batch, for continuous
// animation. No event is delivered for it.
func (cx *Context) RequestNextFrame() { cx.RequestedNextFrame = true }

// BeginRedrawCycle advances the redraw generation and opens the draw phase.
// Re-entrant calls are a programmer error.
func (cx *Context) BeginRedrawCycle() {
	if cx.InRedrawCycle {
		panic("zap: BeginRedrawCycle called while already in a redraw cycle")
	}
	cx.InRedrawCycle = true
	cx.RedrawID++
	cx.RequestedDraw = false
	cx.TempDefaultData = cx.TempDefaultData[:0]
}

// EndRedrawCycle closes the draw phase. All layout boxes and pass/window
// stacks must have been balanced by matching end_* calls.
func (cx *Context) EndRedrawCycle() {
	if !cx.InRedrawCycle {
		panic("zap: EndRedrawCycle called outside a redraw cycle")
	}
	if len(cx.LayoutBoxes) != 0 {
		panic("zap: layout box stack not empty at end of redraw cycle")
	}
	if len(cx.PassStack) != 0 {
		panic("zap: pass stack not empty at end of redraw cycle")
	}
	if len(cx.WindowStack) != 0 {
		panic("zap: window stack not empty at end of redraw cycle")
	}
	cx.LayoutAlignList = cx.LayoutAlignList[:0]
	cx.markStalePasses()
	cx.InRedrawCycle = false
}

// markStalePasses implements the "seen this frame" pass GC sweep: a pass
// not begun during this redraw is marked stale (see Pass.IsStale), but
// never deleted (its index may still be referenced by an Area).
func (cx *Context) markStalePasses() {
	seen := make(map[int]bool, len(cx.PassStack))
	for _, id := range cx.seenPassesThisFrame {
		seen[id] = true
	}
	for i, p := range cx.Passes {
		p.Stale = !seen[i]
	}
	cx.seenPassesThisFrame = cx.seenPassesThisFrame[:0]
}

