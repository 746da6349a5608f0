package slingshot

import (
	"math"

	"github.com/tanema/gween/ease"
)

// DragGesture lives between a press on the handle and its release.
type DragGesture struct {
	// Origin is the projectile's rest center at press time.
	Origin Vec2
	// Start is the handle's center at press time.
	Start Vec2
	// Pull is the handle's current center minus Origin.
	Pull Vec2
	// Exceeded latches once |Pull| reaches the drag threshold.
	Exceeded bool

	pointer  Vec2 // pointer position at press
	grabFrom Vec2 // handle top-left at press
}

// DragMapper turns a drag of the handle sprite into a launch vector. It also
// owns the connector line drawn between the projectile and the handle.
type DragMapper struct {
	anim   Animator
	handle *Sprite
	line   *Sprite
	rest   Vec2
	cfg    DragConfig

	resetEase ease.TweenFunc
	gesture   *DragGesture
	ret       Handle // handle spring-back
	lineFade  Handle
}

// NewDragMapper creates a mapper for handle. The handle's current position is
// taken as its rest position.
func NewDragMapper(anim Animator, handle *Sprite, cfg DragConfig) *DragMapper {
	line := NewSprite("connector", 0, 0, 0, 2)
	line.Alpha = 0
	line.Color = handle.Color
	return &DragMapper{
		anim:      anim,
		handle:    handle,
		line:      line,
		rest:      handle.Position(),
		cfg:       cfg,
		resetEase: ElasticOut(cfg.ResetElastic.Amplitude, cfg.ResetElastic.Period),
	}
}

// Line returns the connector sprite. Its center sits halfway along the pull
// and its width is the pull length.
func (m *DragMapper) Line() *Sprite { return m.line }

// Gesture returns the gesture in progress, or nil.
func (m *DragMapper) Gesture() *DragGesture { return m.gesture }

// Dragging reports whether a gesture is in progress.
func (m *DragMapper) Dragging() bool { return m.gesture != nil }

// Returning reports whether the handle is springing back to rest.
func (m *DragMapper) Returning() bool { return m.anim.Active(m.ret) }

// Press begins a gesture. origin is the projectile's rest center and pointer
// the container-local pointer position.
func (m *DragMapper) Press(origin, pointer Vec2) {
	m.anim.Cancel(m.ret)
	m.anim.Cancel(m.lineFade)
	m.ret, m.lineFade = 0, 0

	m.gesture = &DragGesture{
		Origin:   origin,
		Start:    m.handle.Center(),
		pointer:  pointer,
		grabFrom: m.handle.Position(),
	}
	m.line.SetCenter(origin)
	m.line.Width = 0
	m.line.Rotation = 0
	m.line.Alpha = 0
}

// Move drags the handle with the pointer, keeping it inside container, and
// updates the pull, the connector and the threshold latch.
func (m *DragMapper) Move(pointer Vec2, container Rect) {
	g := m.gesture
	if g == nil {
		return
	}
	to := g.grabFrom.Add(pointer.Sub(g.pointer))
	m.handle.X = Clamp(to.X, container.X, container.Right()-m.handle.Width)
	m.handle.Y = Clamp(to.Y, container.Y, container.Bottom()-m.handle.Height)

	g.Pull = m.handle.Center().Sub(g.Origin)
	length := g.Pull.Len()
	if length >= m.cfg.Threshold {
		g.Exceeded = true
	}

	angle := g.Pull.Angle()
	m.line.Width = length
	m.line.Rotation = angle
	m.line.SetCenter(g.Origin.Add(g.Pull.Scale(0.5)))
	m.line.Alpha = 1
	m.handle.Rotation = angle - math.Pi/2
}

// Release ends the gesture. When the pull crossed the threshold and canLaunch
// is true it returns the clamped launch vector and true. The handle always
// springs back to rest.
func (m *DragMapper) Release(container Rect, canLaunch bool) (Vec2, bool) {
	g := m.gesture
	if g == nil {
		return Vec2{}, false
	}
	m.gesture = nil

	var v Vec2
	launch := g.Exceeded && canLaunch
	if launch {
		v = LaunchVector(g.Start, m.handle.Center(), container, m.cfg.VelocityRatio, m.cfg.MaxSpeed)
	}
	m.fadeLine()
	m.springBack()
	return v, launch
}

// Abort drops the gesture without launching and sends the handle home.
func (m *DragMapper) Abort() {
	m.gesture = nil
	m.fadeLine()
	m.springBack()
}

// Reset cancels every handle animation and snaps the handle to rest.
func (m *DragMapper) Reset() {
	m.anim.Cancel(m.ret)
	m.anim.Cancel(m.lineFade)
	m.ret, m.lineFade = 0, 0
	m.gesture = nil

	m.handle.SetPosition(m.rest)
	m.handle.Rotation = 0
	m.handle.Alpha = 1
	m.line.Width = 0
	m.line.Alpha = 0
}

func (m *DragMapper) springBack() {
	m.anim.Cancel(m.ret)
	m.ret = m.anim.Play(TweenTransform(m.handle, m.rest.X, m.rest.Y, 0,
		float32(m.cfg.ResetDuration), m.resetEase), nil)
}

func (m *DragMapper) fadeLine() {
	m.anim.Cancel(m.lineFade)
	m.lineFade = m.anim.Play(TweenAlpha(m.line, 0, float32(m.cfg.LineFade), ease.Linear), nil)
}

// LaunchVector converts a drag from start to end into a velocity. The pull is
// reversed (slingshot style), scaled by ratio times the mean container
// extent, and clamped to maxSpeed without changing direction.
func LaunchVector(start, end Vec2, container Rect, ratio, maxSpeed float64) Vec2 {
	k := ratio * (container.Width + container.Height) / 2
	return ClampLength(start.Sub(end).Scale(k), maxSpeed)
}
