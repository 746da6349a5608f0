package slingshot

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 2.0 // pixels
)

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hit      *Sprite // captured from press until release
	dragging bool
}

// syntheticPointerEvent is a single injected pointer event in container
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// Input runs the pointer state machine for mouse and touch and delivers
// events to sprite callbacks. The sprite a press lands on captures that
// pointer until release: it receives the drag and up events even once the
// pointer has left it.
type Input struct {
	sprites      []*Sprite // draw order; hit testing walks it back to front
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent

	// live enables polling ebiten's mouse and touch state.
	live bool
}

// NewInput creates a pointer state machine. A non-positive deadZone uses
// the default.
func NewInput(deadZone float64) *Input {
	if deadZone <= 0 {
		deadZone = defaultDragDeadZone
	}
	return &Input{dragDeadZone: deadZone, live: true}
}

// SetSprites replaces the hit-testable sprites, in draw order.
func (in *Input) SetSprites(sprites []*Sprite) {
	in.sprites = sprites
}

// Update consumes one injected event if any are queued; otherwise it polls
// the real mouse and touch pointers.
func (in *Input) Update() {
	if in.processInjectedInput() {
		return
	}
	if !in.live {
		return
	}
	in.processMousePointer()
	in.processTouchPointers()
}

// hitTest returns the topmost visible, interactable sprite under (x, y).
func (in *Input) hitTest(x, y float64) *Sprite {
	for i := len(in.sprites) - 1; i >= 0; i-- {
		s := in.sprites[i]
		if s.Visible && s.Interactable && s.HitTest(x, y) {
			return s
		}
	}
	return nil
}

// processMousePointer handles mouse input (pointer 0).
func (in *Input) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (in *Input) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		in.processPointer(slot, float64(tx), float64(ty), true)
	}

	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			ps := &in.pointers[i]
			if ps.down {
				in.processPointer(i, ps.lastX, ps.lastY, false)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *Input) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
func (in *Input) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &in.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.hit = in.hitTest(x, y)
		ps.dragging = false
		in.firePointer(EventPointerDown, ps.hit, pointerID, x, y)

	case !pressed && ps.down:
		target := ps.hit
		if ps.dragging {
			in.fireDrag(EventDragEnd, target, pointerID, x, y, ps.startX, ps.startY, x-ps.lastX, y-ps.lastY)
		} else if target != nil && target == in.hitTest(x, y) {
			in.firePointer(EventClick, target, pointerID, x, y)
		}
		in.firePointer(EventPointerUp, target, pointerID, x, y)

		ps.down = false
		ps.hit = nil
		ps.dragging = false
		ps.lastX, ps.lastY = x, y

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		if !ps.dragging && math.Hypot(x-ps.startX, y-ps.startY) > in.dragDeadZone {
			ps.dragging = true
			in.fireDrag(EventDragStart, ps.hit, pointerID, x, y, ps.startX, ps.startY, x-ps.startX, y-ps.startY)
		}
		if ps.dragging {
			in.fireDrag(EventDrag, ps.hit, pointerID, x, y, ps.startX, ps.startY, x-ps.lastX, y-ps.lastY)
		}
		ps.lastX, ps.lastY = x, y

	default:
		ps.lastX, ps.lastY = x, y
	}
}

// --- Event dispatch ---

func (in *Input) firePointer(ev EventType, s *Sprite, pointerID int, x, y float64) {
	if s == nil {
		return
	}
	var fn func(PointerContext)
	switch ev {
	case EventPointerDown:
		fn = s.OnPointerDown
	case EventPointerUp:
		fn = s.OnPointerUp
	case EventClick:
		fn = s.OnClick
	}
	if fn == nil {
		return
	}
	lx, ly := s.ContainerToLocal(x, y)
	fn(PointerContext{
		Sprite: s, GlobalX: x, GlobalY: y, LocalX: lx, LocalY: ly,
		PointerID: pointerID,
	})
}

func (in *Input) fireDrag(ev EventType, s *Sprite, pointerID int, x, y, startX, startY, deltaX, deltaY float64) {
	if s == nil {
		return
	}
	var fn func(DragContext)
	switch ev {
	case EventDragStart:
		fn = s.OnDragStart
	case EventDrag:
		fn = s.OnDrag
	case EventDragEnd:
		fn = s.OnDragEnd
	}
	if fn == nil {
		return
	}
	fn(DragContext{
		Sprite: s, GlobalX: x, GlobalY: y,
		StartX: startX, StartY: startY, DeltaX: deltaX, DeltaY: deltaY,
		PointerID: pointerID,
	})
}
