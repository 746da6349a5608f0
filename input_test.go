package slingshot

import (
	"slices"
	"testing"
)

// recorder attaches callbacks to s that log event names.
func recorder(s *Sprite, log *[]string) {
	s.Interactable = true
	s.OnPointerDown = func(PointerContext) { *log = append(*log, s.Name+":down") }
	s.OnPointerUp = func(PointerContext) { *log = append(*log, s.Name+":up") }
	s.OnClick = func(PointerContext) { *log = append(*log, s.Name+":click") }
	s.OnDragStart = func(DragContext) { *log = append(*log, s.Name+":dragstart") }
	s.OnDrag = func(DragContext) { *log = append(*log, s.Name+":drag") }
	s.OnDragEnd = func(DragContext) { *log = append(*log, s.Name+":dragend") }
}

func newTestInput(sprites ...*Sprite) *Input {
	in := NewInput(0)
	in.live = false
	in.SetSprites(sprites)
	return in
}

func assertEvents(t *testing.T, got []string, want ...string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestInputClick(t *testing.T) {
	var log []string
	s := NewSprite("btn", 0, 0, 50, 50)
	recorder(s, &log)
	in := newTestInput(s)

	in.processPointer(0, 10, 10, true)
	in.processPointer(0, 11, 10, true) // inside the dead zone
	in.processPointer(0, 11, 10, false)

	assertEvents(t, log, "btn:down", "btn:click", "btn:up")
}

func TestInputDragSequence(t *testing.T) {
	var log []string
	s := NewSprite("handle", 0, 0, 50, 50)
	recorder(s, &log)
	in := newTestInput(s)

	var last DragContext
	s.OnDrag = func(ctx DragContext) {
		log = append(log, "handle:drag")
		last = ctx
	}

	in.processPointer(0, 10, 10, true)
	in.processPointer(0, 20, 10, true)
	in.processPointer(0, 30, 15, true)
	in.processPointer(0, 30, 15, false)

	assertEvents(t, log, "handle:down", "handle:dragstart", "handle:drag", "handle:drag", "handle:dragend", "handle:up")
	if last.GlobalX != 30 || last.GlobalY != 15 || last.DeltaX != 10 || last.DeltaY != 5 {
		t.Errorf("last drag = %+v", last)
	}
	if last.StartX != 10 || last.StartY != 10 {
		t.Errorf("drag start = (%v, %v), want (10, 10)", last.StartX, last.StartY)
	}
}

func TestInputCapturesPressedSprite(t *testing.T) {
	var log []string
	s := NewSprite("handle", 0, 0, 20, 20)
	recorder(s, &log)
	in := newTestInput(s)

	in.processPointer(0, 10, 10, true)
	in.processPointer(0, 200, 200, true)
	in.processPointer(0, 300, 300, false)

	assertEvents(t, log, "handle:down", "handle:dragstart", "handle:drag", "handle:dragend", "handle:up")
}

func TestInputNoClickWhenReleasedElsewhere(t *testing.T) {
	var log []string
	a := NewSprite("a", 0, 0, 20, 20)
	b := NewSprite("b", 100, 0, 20, 20)
	recorder(a, &log)
	recorder(b, &log)
	in := newTestInput(a, b)

	// Jump straight to b on release, no intermediate move.
	in.processPointer(0, 10, 10, true)
	in.processPointer(0, 110, 10, false)

	assertEvents(t, log, "a:down", "a:up")
}

func TestInputHitTestOrder(t *testing.T) {
	var log []string
	below := NewSprite("below", 0, 0, 50, 50)
	above := NewSprite("above", 0, 0, 50, 50)
	recorder(below, &log)
	recorder(above, &log)
	in := newTestInput(below, above)

	if got := in.hitTest(10, 10); got != above {
		t.Fatalf("hitTest = %v, want the topmost sprite", got)
	}

	above.Interactable = false
	if got := in.hitTest(10, 10); got != below {
		t.Errorf("non-interactable sprite was hit")
	}
	above.Interactable = true
	above.Visible = false
	if got := in.hitTest(10, 10); got != below {
		t.Errorf("invisible sprite was hit")
	}
	if got := in.hitTest(100, 100); got != nil {
		t.Errorf("hitTest on empty space = %v", got.Name)
	}
}

func TestInputPressOnEmptySpace(t *testing.T) {
	var log []string
	s := NewSprite("s", 0, 0, 10, 10)
	recorder(s, &log)
	in := newTestInput(s)

	in.processPointer(0, 100, 100, true)
	in.processPointer(0, 5, 5, true)
	in.processPointer(0, 5, 5, false)

	assertEvents(t, log)
}

func TestInputLocalCoordinates(t *testing.T) {
	s := NewSprite("s", 100, 50, 40, 20)
	s.Interactable = true
	var ctx PointerContext
	s.OnPointerDown = func(c PointerContext) { ctx = c }
	in := newTestInput(s)

	in.processPointer(0, 110, 55, true)
	if ctx.Sprite != s || ctx.LocalX != 10 || ctx.LocalY != 5 || ctx.PointerID != 0 {
		t.Errorf("context = %+v", ctx)
	}
}
