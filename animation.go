package slingshot

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Motion is a time-driven interpolation advanced once per frame by an
// Animator. Finished must stay true once it has reported true.
type Motion interface {
	Update(dt float32)
	Finished() bool
}

// Handle identifies a motion started on an Animator. The zero Handle refers
// to nothing and is safe to cancel.
type Handle uint32

// Animator schedules motions: request an interpolation, get a cancellable
// handle, and have it advanced once per frame on the caller's goroutine.
type Animator interface {
	// Play starts m on the next frame. onComplete, if non-nil, runs once when
	// m finishes on its own; it never runs for a cancelled motion.
	Play(m Motion, onComplete func()) Handle
	// Cancel stops the motion identified by h. Unknown or finished handles
	// are ignored.
	Cancel(h Handle)
	// Active reports whether h is still running.
	Active(h Handle) bool
}

// TweenGroup animates up to 4 float64 fields on a Sprite simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenAlpha, TweenRotation) and hand it to an Animator, or call Update(dt)
// yourself.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Finished reports whether every tween in the group reached its end value.
func (g *TweenGroup) Finished() bool { return g.Done }

// TweenPosition creates a TweenGroup that animates s.X and s.Y to the given
// top-left coordinates over the specified duration using the easing function.
func TweenPosition(s *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(s.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(s.Y), float32(toY), duration, fn)
	g.fields[0] = &s.X
	g.fields[1] = &s.Y
	return g
}

// TweenScale creates a TweenGroup that animates s.ScaleX and s.ScaleY.
func TweenScale(s *Sprite, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(s.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(s.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &s.ScaleX
	g.fields[1] = &s.ScaleY
	return g
}

// TweenAlpha creates a TweenGroup that animates s.Alpha.
func TweenAlpha(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(s.Alpha), float32(to), duration, fn)
	g.fields[0] = &s.Alpha
	return g
}

// TweenRotation creates a TweenGroup that animates s.Rotation (radians).
func TweenRotation(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(s.Rotation), float32(to), duration, fn)
	g.fields[0] = &s.Rotation
	return g
}

// TweenTransform creates a TweenGroup that animates s.X, s.Y and s.Rotation
// together. Used to spring the drag handle back to rest.
func TweenTransform(s *Sprite, toX, toY, toRot float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3}
	g.tweens[0] = gween.New(float32(s.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(s.Y), float32(toY), duration, fn)
	g.tweens[2] = gween.New(float32(s.Rotation), float32(toRot), duration, fn)
	g.fields[0] = &s.X
	g.fields[1] = &s.Y
	g.fields[2] = &s.Rotation
	return g
}

// TweenFade creates a TweenGroup that animates s.Alpha, s.ScaleX and s.ScaleY
// together. Used for the hit effect.
func TweenFade(s *Sprite, alpha, scale float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3}
	g.tweens[0] = gween.New(float32(s.Alpha), float32(alpha), duration, fn)
	g.tweens[1] = gween.New(float32(s.ScaleX), float32(scale), duration, fn)
	g.tweens[2] = gween.New(float32(s.ScaleY), float32(scale), duration, fn)
	g.fields[0] = &s.Alpha
	g.fields[1] = &s.ScaleX
	g.fields[2] = &s.ScaleY
	return g
}

// Delay is a motion that finishes after a fixed time. Paired with an
// onComplete callback it is a cancellable timer.
type Delay struct {
	tween *gween.Tween
	done  bool
}

// NewDelay returns a Delay that finishes after seconds.
func NewDelay(seconds float32) *Delay {
	return &Delay{tween: gween.New(0, 1, seconds, ease.Linear)}
}

// Update advances the timer.
func (d *Delay) Update(dt float32) {
	if d.done {
		return
	}
	_, d.done = d.tween.Update(dt)
}

// Finished reports whether the delay has elapsed.
func (d *Delay) Finished() bool { return d.done }

// ElasticOut returns a damped-spring ease-out. amplitude >= 1 overshoots
// further; period is the oscillation period as a fraction of the duration.
func ElasticOut(amplitude, period float64) ease.TweenFunc {
	if amplitude < 1 {
		amplitude = 1
	}
	if period <= 0 {
		period = 0.3
	}
	shift := period / (2 * math.Pi) * math.Asin(1/amplitude)
	w := 2 * math.Pi / period
	return func(t, b, c, d float32) float32 {
		if d <= 0 || t >= d {
			return b + c
		}
		p := float64(t / d)
		v := amplitude*math.Pow(2, -10*p)*math.Sin((p-shift)*w) + 1
		return b + c*float32(v)
	}
}

// --- Tweener ---

type activeMotion struct {
	id         Handle
	motion     Motion
	onComplete func()
}

// Tweener is the default Animator. Motions advance in play order; motions
// played during an Update start on the following frame, and cancellation
// from inside a callback takes effect immediately.
//
// There is no global instance; the owner calls Update once per frame.
type Tweener struct {
	active []activeMotion
	nextID Handle
}

// NewTweener creates an empty Tweener.
func NewTweener() *Tweener {
	return &Tweener{}
}

// Play implements Animator.
func (t *Tweener) Play(m Motion, onComplete func()) Handle {
	t.nextID++
	t.active = append(t.active, activeMotion{id: t.nextID, motion: m, onComplete: onComplete})
	return t.nextID
}

// Cancel implements Animator. The slot is cleared and compacted after the
// current Update.
func (t *Tweener) Cancel(h Handle) {
	if h == 0 {
		return
	}
	for i := range t.active {
		if t.active[i].id == h {
			t.active[i].motion = nil
			t.active[i].onComplete = nil
			return
		}
	}
}

// Active implements Animator.
func (t *Tweener) Active(h Handle) bool {
	if h == 0 {
		return false
	}
	for i := range t.active {
		if t.active[i].id == h {
			return t.active[i].motion != nil
		}
	}
	return false
}

// Len returns the number of running motions.
func (t *Tweener) Len() int {
	n := 0
	for i := range t.active {
		if t.active[i].motion != nil {
			n++
		}
	}
	return n
}

// CancelAll stops every running motion.
func (t *Tweener) CancelAll() {
	for i := range t.active {
		t.active[i].motion = nil
		t.active[i].onComplete = nil
	}
}

// Update advances every running motion by dt seconds and fires completion
// callbacks for those that finished.
func (t *Tweener) Update(dt float32) {
	n := len(t.active)
	for i := 0; i < n; i++ {
		m := t.active[i].motion
		if m == nil {
			continue
		}
		m.Update(dt)
		// The motion's own callbacks may have cancelled it.
		if t.active[i].motion == nil || !m.Finished() {
			continue
		}
		done := t.active[i].onComplete
		t.active[i].motion = nil
		t.active[i].onComplete = nil
		if done != nil {
			done()
		}
	}
	t.compact()
}

// compact drops cleared slots, preserving play order.
func (t *Tweener) compact() {
	j := 0
	for i := range t.active {
		if t.active[i].motion != nil {
			t.active[j] = t.active[i]
			j++
		}
	}
	for k := j; k < len(t.active); k++ {
		t.active[k] = activeMotion{}
	}
	t.active = t.active[:j]
}
