package slingshot

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// WanderGenerator drives wandering targets along an endless chain of random
// waypoints. Each target owns at most one running wander motion, tracked by
// its motion handle.
type WanderGenerator struct {
	anim      Animator
	rng       *rand.Rand
	container func() Rect

	legDuration  Range
	turnDuration float32
	turnEase     ease.TweenFunc
}

// NewWanderGenerator creates a generator that reads the container bounds
// through container each time it picks a waypoint.
func NewWanderGenerator(anim Animator, rng *rand.Rand, container func() Rect, cfg WanderConfig) *WanderGenerator {
	return &WanderGenerator{
		anim:         anim,
		rng:          rng,
		container:    container,
		legDuration:  cfg.Duration,
		turnDuration: float32(cfg.TurnDuration),
		turnEase:     ElasticOut(cfg.TurnElastic.Amplitude, cfg.TurnElastic.Period),
	}
}

// Waypoint returns a random top-left position for s that keeps the whole
// sprite inside the container.
func (w *WanderGenerator) Waypoint(s *Sprite) Vec2 {
	c := w.container()
	maxX := math.Max(0, c.Width-s.Width)
	maxY := math.Max(0, c.Height-s.Height)
	return Vec2{
		X: c.X + w.rng.Float64()*maxX,
		Y: c.Y + w.rng.Float64()*maxY,
	}
}

// Seed stops t's motion and places it at a fresh random position, unrotated.
func (w *WanderGenerator) Seed(t *Target) {
	w.Stop(t)
	t.Sprite.SetPosition(w.Waypoint(t.Sprite))
	t.Sprite.Rotation = 0
}

// Start (re)starts t's wander motion. Any previous motion is cancelled first
// so two sequences never drive the same sprite.
func (w *WanderGenerator) Start(t *Target) {
	w.Stop(t)
	t.motion = w.anim.Play(&wanderMotion{gen: w, sprite: t.Sprite}, nil)
}

// Stop cancels t's wander motion, if any.
func (w *WanderGenerator) Stop(t *Target) {
	w.anim.Cancel(t.motion)
	t.motion = 0
}

// Moving reports whether t currently has a running wander motion.
func (w *WanderGenerator) Moving(t *Target) bool {
	return w.anim.Active(t.motion)
}

// wanderMotion never finishes on its own; it is stopped by cancellation.
type wanderMotion struct {
	gen    *WanderGenerator
	sprite *Sprite
	move   *TweenGroup
	turn   *TweenGroup
}

func (m *wanderMotion) Update(dt float32) {
	if m.move == nil || m.move.Done {
		m.nextLeg()
	}
	if !m.turn.Done {
		m.turn.Update(dt)
	}
	m.move.Update(dt)
}

func (m *wanderMotion) Finished() bool { return false }

// nextLeg picks the next waypoint, turns to face it (sprites point up, hence
// the quarter turn), and starts the translation.
func (m *wanderMotion) nextLeg() {
	g := m.gen
	to := g.Waypoint(m.sprite)
	heading := Angle(m.sprite.Position(), to) + math.Pi/2
	rot := m.sprite.Rotation + ShortestArc(m.sprite.Rotation, heading)

	m.turn = TweenRotation(m.sprite, rot, g.turnDuration, g.turnEase)
	m.move = TweenPosition(m.sprite, to.X, to.Y, float32(g.legDuration.Random(g.rng)), ease.InOutQuad)
}
