package zap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"zaplib.dev/core/math32"
	"zaplib.dev/core/zap"
)

func TestHitsPointerCapturesUnhandledDown(t *testing.T) {
	cx := zap.NewContext()
	rect := math32.NewRect(math32.Vec2(0, 0), math32.Vec2(100, 100))
	ev := zap.PointerDownEvent{Abs: math32.Vec2(10, 10), Digit: 0}

	handled := false
	got := cx.HitsPointer(ev, 1, &rect, &handled)

	assert.NotNil(t, got)
	assert.True(t, handled)
}

func TestHitsPointerDoesNotStealAlreadyCapturedDigit(t *testing.T) {
	cx := zap.NewContext()
	rect := math32.NewRect(math32.Vec2(0, 0), math32.Vec2(100, 100))
	down := zap.PointerDownEvent{Abs: math32.Vec2(10, 10), Digit: 0}

	h1 := false
	first := cx.HitsPointer(down, 1, &rect, &h1)
	assert.NotNil(t, first)

	h2 := false
	second := cx.HitsPointer(down, 2, &rect, &h2)
	assert.Nil(t, second)
	assert.False(t, h2)
}

func TestHitsPointerRoutesMoveAndUpOnlyToCaptor(t *testing.T) {
	cx := zap.NewContext()
	rect := math32.NewRect(math32.Vec2(0, 0), math32.Vec2(100, 100))
	down := zap.PointerDownEvent{Abs: math32.Vec2(10, 10), Digit: 3}
	handled := false
	require := cx.HitsPointer(down, 42, &rect, &handled)
	assert.NotNil(t, require)

	move := zap.PointerMoveEvent{Abs: math32.Vec2(20, 20), Digit: 3}
	assert.NotNil(t, cx.HitsPointer(move, 42, nil, nil))
	assert.Nil(t, cx.HitsPointer(move, 99, nil, nil))

	up := zap.PointerUpEvent{Abs: math32.Vec2(20, 20), Digit: 3}
	assert.NotNil(t, cx.HitsPointer(up, 42, nil, nil))

	// Capture released after Up: a later Move for the same digit hits no one.
	assert.Nil(t, cx.HitsPointer(move, 42, nil, nil))
}

func TestHitsPointerHoverTransitionsInOverOut(t *testing.T) {
	cx := zap.NewContext()
	rect := math32.NewRect(math32.Vec2(0, 0), math32.Vec2(100, 100))

	inside := zap.PointerHoverEvent{Abs: math32.Vec2(10, 10)}
	handled := false
	got := cx.HitsPointer(inside, 7, &rect, &handled)
	require := got.(zap.PointerHoverEvent)
	assert.Equal(t, zap.HoverIn, require.HoverState)

	handled = false
	got = cx.HitsPointer(inside, 7, &rect, &handled)
	over := got.(zap.PointerHoverEvent)
	assert.Equal(t, zap.HoverOver, over.HoverState)

	outside := zap.PointerHoverEvent{Abs: math32.Vec2(500, 500)}
	handled = false
	got = cx.HitsPointer(outside, 7, &rect, &handled)
	out := got.(zap.PointerHoverEvent)
	assert.Equal(t, zap.HoverOut, out.HoverState)

	// Once marked out, a further outside hover for the same component is
	// simply not delivered (no repeated Out).
	handled = false
	assert.Nil(t, cx.HitsPointer(outside, 7, &rect, &handled))
}

func TestHitsPointerHoverTracksOverLastSeparatelyPerDigit(t *testing.T) {
	cx := zap.NewContext()
	rect := math32.NewRect(math32.Vec2(0, 0), math32.Vec2(100, 100))

	touch0 := zap.PointerHoverEvent{Abs: math32.Vec2(10, 10), Digit: 0}
	touch1 := zap.PointerHoverEvent{Abs: math32.Vec2(20, 20), Digit: 1}

	handled := false
	got0 := cx.HitsPointer(touch0, 7, &rect, &handled).(zap.PointerHoverEvent)
	assert.Equal(t, zap.HoverIn, got0.HoverState)

	// A second digit entering the same component's rect is a fresh In, not
	// aliased onto digit 0's already-"over" state.
	handled = false
	got1 := cx.HitsPointer(touch1, 7, &rect, &handled).(zap.PointerHoverEvent)
	assert.Equal(t, zap.HoverIn, got1.HoverState)

	// Digit 0 stays tracked as Over independently of digit 1's state.
	handled = false
	got0Again := cx.HitsPointer(touch0, 7, &rect, &handled).(zap.PointerHoverEvent)
	assert.Equal(t, zap.HoverOver, got0Again.HoverState)
}

func TestDispatchResetsKeyFocusAfterUnclaimedPointerDown(t *testing.T) {
	cx := zap.NewContext()
	cx.SetKeyFocus(5)
	assert.True(t, cx.HasFocus)

	cx.Dispatch([]zap.Event{zap.PointerDownEvent{Abs: math32.Vec2(1, 1), Digit: 0}}, func(ev zap.Event) {})
	assert.False(t, cx.HasFocus)
}

func TestDispatchKeepsKeyFocusWhenHandlerCallsKeepKeyFocus(t *testing.T) {
	cx := zap.NewContext()
	cx.SetKeyFocus(5)

	cx.Dispatch([]zap.Event{zap.PointerDownEvent{Abs: math32.Vec2(1, 1), Digit: 0}}, func(ev zap.Event) {
		if _, ok := ev.(zap.PointerDownEvent); ok {
			cx.KeepKeyFocus()
		}
	})
	assert.True(t, cx.HasFocus)
	assert.Equal(t, zap.ComponentID(5), cx.KeyFocus)
}

func TestHitsKeyboardRoutesOnlyToFocusedComponent(t *testing.T) {
	cx := zap.NewContext()
	ev := cx.SetKeyFocus(5)
	assert.True(t, ev.HasFocus)
	assert.Equal(t, zap.ComponentID(5), ev.Focus)
	assert.False(t, ev.HasPrev)

	key := zap.KeyEvent{KeyCode: zap.KeyReturn, IsDown: true}
	assert.NotNil(t, cx.HitsKeyboard(key, 5))
	assert.Nil(t, cx.HitsKeyboard(key, 6))

	moved := cx.SetKeyFocus(6)
	assert.True(t, moved.HasPrev)
	assert.Equal(t, zap.ComponentID(5), moved.Prev)
	assert.Equal(t, zap.ComponentID(6), moved.Focus)
}

func TestPostSignalCoalescesStatusesForSameSignal(t *testing.T) {
	var pending zap.SignalEvent
	zap.PostSignal(&pending, 100, 1)
	zap.PostSignal(&pending, 100, 2)
	zap.PostSignal(&pending, 200, 1)

	assert.Len(t, pending.Signals, 2)
	assert.Len(t, pending.Signals[100], 2)
	assert.True(t, pending.Signals[100][1])
	assert.True(t, pending.Signals[100][2])
	assert.True(t, pending.Signals[200][1])
}

func TestDispatchDrawsOnlyWhenDrawWasRequested(t *testing.T) {
	cx := zap.NewContext()
	var sawDraw bool
	cx.Dispatch([]zap.Event{zap.TimerEvent{Timer: 1}}, func(ev zap.Event) {
		if _, ok := ev.(zap.SystemEvent); ok {
			sawDraw = true
		}
	})
	assert.False(t, sawDraw)

	cx.RequestDraw()
	cx.Dispatch([]zap.Event{zap.TimerEvent{Timer: 2}}, func(ev zap.Event) {
		if se, ok := ev.(zap.SystemEvent); ok && se.Kind == zap.SystemDraw {
			sawDraw = true
		}
	})
	assert.True(t, sawDraw)
}
