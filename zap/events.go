package zap

import "zaplib.dev/core/math32"

// pointerState is the per-digit (multi-touch slot) retained state behind
// hit-testing and capture, mirroring the original's per-pointer fields
// tracked alongside CxWindow.
type pointerState struct {
	Captured    ComponentID
	HasCaptured bool

	OverLast    ComponentID
	HasOverLast bool

	DownAbsStart math32.Vector2
	DownRelStart math32.Vector2
}

// HoverState distinguishes the three phases of PointerHoverEvent delivery.
type HoverState int

const (
	HoverIn HoverState = iota
	HoverOver
	HoverOut
)

// KeyModifiers bundles the modifier keys held during a keyboard or pointer
// event.
type KeyModifiers struct {
	Shift, Control, Alt, Logo bool
}

// KeyCode enumerates the recognized keys: the non-printable keys the
// runtime routes specially (arrows, Escape, Tab, Return, …) plus KeyA,
// KeyZ, Key0 and Key9. The other letters and digits have no KeyCode.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyTab
	KeyReturn
	KeyBackspace
	KeyDelete
	KeySpace
	KeyShift
	KeyControl
	KeyAlt
	KeyLogo
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyA
	KeyZ // directly follows KeyA; no constants exist for B through Y.
	Key0
	Key9 // directly follows Key0; no constants exist for 1 through 8.
)

// Signal is an opaque caller-defined identifier used to coalesce
// cross-thread notifications into SignalEvent.
type Signal uint64

// StatusID is an opaque caller-defined sub-identifier carried alongside a
// Signal, letting one Signal value carry several distinct status codes
// that coalesce into the same dispatched SignalEvent.
type StatusID uint64

// Event is the closed set of input/system notifications Context.Dispatch
// delivers to the application's event handler. Go has no sum type, so this
// is a marker interface implemented by each concrete event payload below,
// the same role the original's Event enum variants play.
type Event interface {
	isEvent()
}

type PointerDownEvent struct {
	Abs      math32.Vector2
	Digit    int
	Modifiers KeyModifiers
}

type PointerMoveEvent struct {
	Abs       math32.Vector2
	Digit     int
	Modifiers KeyModifiers
}

type PointerUpEvent struct {
	Abs       math32.Vector2
	Digit     int
	Modifiers KeyModifiers
}

type PointerHoverEvent struct {
	Abs        math32.Vector2
	Digit      int
	HoverState HoverState
}

type PointerScrollEvent struct {
	Abs   math32.Vector2
	Scroll math32.Vector2
}

type TimerEvent struct {
	Timer uint64
}

type SignalEvent struct {
	Signals map[Signal]map[StatusID]bool
}

type KeyEvent struct {
	KeyCode   KeyCode
	Modifiers KeyModifiers
	IsRepeat  bool
	IsDown    bool
}

type KeyFocusEvent struct {
	Prev        ComponentID
	HasPrev     bool
	Focus       ComponentID
	HasFocus    bool
}

type TextInputEvent struct {
	Input     string
	Replace   bool
}

type TextCopyEvent struct{}

type WindowGeomChangeEvent struct {
	Size     math32.Vector2
	Position math32.Vector2
	DPIFactor float32
}

type WindowResizeLoopEvent struct {
	Started bool
}

type WindowDragQueryEvent struct {
	Abs math32.Vector2
}

type WebSocketMessageEvent struct {
	Data []byte
}

type AppOpenFilesEvent struct {
	Paths []string
}

// SystemEventKind discriminates SystemEvent, mirroring the original's
// SystemEvent variants that don't carry enough distinct payload shape to
// warrant their own top-level Event implementation.
type SystemEventKind int

const (
	SystemWebRustCall SystemEventKind = iota
	SystemDraw
	SystemPaint
	SystemWindowSetHoverCursor
)

type SystemEvent struct {
	Kind SystemEventKind
	Name string
}

func (PointerDownEvent) isEvent()       {}
func (PointerMoveEvent) isEvent()       {}
func (PointerUpEvent) isEvent()         {}
func (PointerHoverEvent) isEvent()      {}
func (PointerScrollEvent) isEvent()     {}
func (TimerEvent) isEvent()             {}
func (SignalEvent) isEvent()            {}
func (KeyEvent) isEvent()               {}
func (KeyFocusEvent) isEvent()          {}
func (TextInputEvent) isEvent()         {}
func (TextCopyEvent) isEvent()          {}
func (WindowGeomChangeEvent) isEvent()  {}
func (WindowResizeLoopEvent) isEvent()  {}
func (WindowDragQueryEvent) isEvent()   {}
func (WebSocketMessageEvent) isEvent()  {}
func (AppOpenFilesEvent) isEvent()      {}
func (SystemEvent) isEvent()            {}

// HitsPointer is the core hit-test/capture routine, ported from the
// original's Event::hits_pointer: PointerDown captures component if the
// event is unhandled, rect (when given) contains the point, and no other
// component already holds the digit's capture; PointerMove/PointerUp only
// route to the component already holding capture; PointerHover derives
// In/Over/Out transitions from the digit's last-seen "over" component;
// PointerScroll is filtered purely by rect containment.
//
// handled restricts which event kinds the "already handled" short-circuit
// applies to: exactly PointerDown, PointerHover and PointerScroll, matching
// the resolved behavior for events whose delivery order across overlapping
// components matters (PointerMove/PointerUp bypass it entirely since they
// only ever go to the captured component).
func (cx *Context) HitsPointer(ev Event, component ComponentID, rect *math32.Rect, handled *bool) Event {
	switch e := ev.(type) {
	case PointerDownEvent:
		if handled != nil && *handled {
			return nil
		}
		if rect != nil && !rect.Contains(e.Abs) {
			return nil
		}
		ps := &cx.Pointers[e.Digit]
		if ps.HasCaptured {
			return nil
		}
		ps.Captured, ps.HasCaptured = component, true
		ps.DownAbsStart = e.Abs
		if handled != nil {
			*handled = true
		}
		return e

	case PointerMoveEvent:
		ps := &cx.Pointers[e.Digit]
		if !ps.HasCaptured || ps.Captured != component {
			return nil
		}
		return e

	case PointerUpEvent:
		ps := &cx.Pointers[e.Digit]
		if !ps.HasCaptured || ps.Captured != component {
			return nil
		}
		ps.HasCaptured = false
		return e

	case PointerHoverEvent:
		if handled != nil && *handled {
			return nil
		}
		ps := &cx.Pointers[e.Digit]
		inRect := rect != nil && rect.Contains(e.Abs)
		wasOver := ps.HasOverLast && ps.OverLast == component
		switch {
		case inRect && !wasOver:
			ps.OverLast, ps.HasOverLast = component, true
			e.HoverState = HoverIn
			return e
		case inRect && wasOver:
			e.HoverState = HoverOver
			return e
		case !inRect && wasOver:
			ps.HasOverLast = false
			e.HoverState = HoverOut
			return e
		default:
			return nil
		}

	case PointerScrollEvent:
		if handled != nil && *handled {
			return nil
		}
		if rect != nil && !rect.Contains(e.Abs) {
			return nil
		}
		return e

	default:
		return nil
	}
}

// HitsKeyboard routes keyboard-shaped events only to the component that
// currently holds KeyFocus, ported from the original's Event::hits_keyboard.
func (cx *Context) HitsKeyboard(ev Event, component ComponentID) Event {
	switch e := ev.(type) {
	case KeyEvent, TextInputEvent, TextCopyEvent:
		if !cx.HasFocus || cx.KeyFocus != component {
			return nil
		}
		return e
	case KeyFocusEvent:
		if e.HasFocus && e.Focus == component {
			return e
		}
		if e.HasPrev && e.Prev == component {
			return e
		}
		return nil
	default:
		return nil
	}
}

// SetKeyFocus moves keyboard focus to component, emitting a KeyFocusEvent
// the caller is expected to dispatch.
func (cx *Context) SetKeyFocus(component ComponentID) KeyFocusEvent {
	ev := KeyFocusEvent{Focus: component, HasFocus: true}
	if cx.HasFocus {
		ev.Prev, ev.HasPrev = cx.KeyFocus, true
	}
	cx.KeyFocus = component
	cx.HasFocus = true
	return ev
}

// KeepKeyFocus tells Dispatch not to reset key focus to None after the
// PointerDown event currently being handled — called by a handler that
// examined the PointerDown but deliberately left focus where it was.
func (cx *Context) KeepKeyFocus() { cx.keepFocus = true }

// Dispatch delivers one batch of platform-sourced events to handler in
// order. Afterwards, if a draw was requested via RequestDraw (and no redraw
// cycle is already open), it opens a BeginRedrawCycle/EndRedrawCycle pair
// around one synthesized SystemDraw event delivered to handler. This is the
// seam a platform driver loop calls into once per wake-up.
//
// Every PointerDownEvent could change which component holds key focus, so
// before delivering one Dispatch clears keepFocus; if the handler doesn't
// call KeepKeyFocus while processing it, focus resets to None once the
// event returns.
func (cx *Context) Dispatch(events []Event, handler func(Event)) {
	for _, ev := range events {
		_, isPointerDown := ev.(PointerDownEvent)
		if isPointerDown {
			cx.keepFocus = false
		}
		handler(ev)
		if isPointerDown && !cx.keepFocus {
			cx.HasFocus = false
		}
	}
	if cx.RequestedDraw && !cx.InRedrawCycle {
		cx.BeginRedrawCycle()
		handler(SystemEvent{Kind: SystemDraw})
		cx.EndRedrawCycle()
	}
}

// PostSignal coalesces status into the pending set for signal, creating the
// SignalEvent's map entry if this is the first status posted for it this
// cycle. Callers drain pending signals once per dispatch pass.
func PostSignal(pending *SignalEvent, signal Signal, status StatusID) {
	if pending.Signals == nil {
		pending.Signals = make(map[Signal]map[StatusID]bool)
	}
	set, ok := pending.Signals[signal]
	if !ok {
		set = make(map[StatusID]bool)
		pending.Signals[signal] = set
	}
	set[status] = true
}
