package slingshot

import (
	"math"

	"github.com/tanema/gween/ease"
)

// ProjectileSimulator flies the single projectile sprite. A flight starts at
// the rest position and ends when the projectile leaves the container or
// decays to rest.
type ProjectileSimulator struct {
	anim      Animator
	sprite    *Sprite
	rest      Vec2
	cfg       FlightConfig
	container func() Rect

	// CheckHits runs on every flight frame with the projectile's bounds,
	// before the terminal checks.
	CheckHits func(bounds Rect)

	state  FlightState
	motion *InertiaMotion
	flight Handle
	fade   Handle
}

// NewProjectileSimulator creates a simulator for sprite. The sprite's current
// position is its rest position.
func NewProjectileSimulator(anim Animator, sprite *Sprite, cfg FlightConfig, container func() Rect) *ProjectileSimulator {
	return &ProjectileSimulator{
		anim:      anim,
		sprite:    sprite,
		rest:      sprite.Position(),
		cfg:       cfg,
		container: container,
	}
}

// State returns the current flight state.
func (p *ProjectileSimulator) State() FlightState { return p.state }

// Flying reports whether a flight is in progress.
func (p *ProjectileSimulator) Flying() bool { return p.state == FlightFlying }

// RestCenter returns the projectile's center at its rest position.
func (p *ProjectileSimulator) RestCenter() Vec2 {
	return p.rest.Add(p.sprite.Size().Scale(0.5))
}

// Velocity returns the current flight velocity, or zero when idle.
func (p *ProjectileSimulator) Velocity() Vec2 {
	if p.state != FlightFlying || p.motion == nil {
		return Vec2{}
	}
	return p.motion.Velocity
}

// Launch starts a flight with velocity v. It returns false, leaving the
// current flight untouched, if one is already in progress.
//
// The heading is fixed at launch and is not re-derived during the flight.
func (p *ProjectileSimulator) Launch(v Vec2) bool {
	if p.state == FlightFlying {
		return false
	}
	p.anim.Cancel(p.fade)
	p.fade = 0

	p.sprite.SetPosition(p.rest)
	p.sprite.Rotation = v.Angle() + math.Pi/2
	p.sprite.Alpha = 1
	p.sprite.Visible = true

	p.state = FlightFlying
	p.motion = &InertiaMotion{
		Sprite:     p.sprite,
		Velocity:   v,
		Resistance: p.cfg.Resistance,
		RestSpeed:  p.cfg.RestSpeed,
		OnStep:     p.step,
	}
	p.flight = p.anim.Play(p.motion, p.land)
	return true
}

// Stop cancels any flight or fade and puts the projectile back at rest.
func (p *ProjectileSimulator) Stop() {
	p.anim.Cancel(p.flight)
	p.anim.Cancel(p.fade)
	p.flight, p.fade = 0, 0
	p.state = FlightIdle
	p.motion = nil

	p.sprite.SetPosition(p.rest)
	p.sprite.Rotation = 0
	p.sprite.Alpha = 1
	p.sprite.Visible = true
}

// step runs once per flight frame: hits first, then the bounds check, so a
// hit in the frame the projectile exits is still counted.
func (p *ProjectileSimulator) step() {
	b := p.sprite.Bounds()
	if p.CheckHits != nil {
		p.CheckHits(b)
	}
	if p.state != FlightFlying {
		return
	}
	if !b.Overlaps(p.container()) {
		p.anim.Cancel(p.flight)
		p.flight = 0
		p.state = FlightIdle
		p.sprite.Alpha = 0
	}
}

// land runs when the flight decays to rest.
func (p *ProjectileSimulator) land() {
	p.flight = 0
	p.state = FlightIdle
	p.fade = p.anim.Play(TweenAlpha(p.sprite, 0, float32(p.cfg.FadeDuration), ease.Linear), nil)
}
