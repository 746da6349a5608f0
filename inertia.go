package slingshot

import "math"

// InertiaMotion moves a sprite with a velocity that decays exponentially at
// Resistance per second. It finishes once the speed drops below RestSpeed;
// velocity never reaches zero on its own, so RestSpeed must be positive.
type InertiaMotion struct {
	Sprite     *Sprite
	Velocity   Vec2
	Resistance float64
	RestSpeed  float64
	// OnStep runs after each position update, before the motion reports
	// whether it finished.
	OnStep func()

	done bool
}

// Update integrates one frame of decaying motion.
//
// For v(t) = v0·e^(−r·t) the displacement over dt is v0·(1 − e^(−r·dt))/r,
// which keeps the path independent of the frame rate.
func (m *InertiaMotion) Update(dt float32) {
	if m.done {
		return
	}
	step := float64(dt)
	var travel float64
	var decay float64
	if m.Resistance > 0 {
		decay = math.Exp(-m.Resistance * step)
		travel = (1 - decay) / m.Resistance
	} else {
		decay = 1
		travel = step
	}
	m.Sprite.X += m.Velocity.X * travel
	m.Sprite.Y += m.Velocity.Y * travel
	m.Velocity = m.Velocity.Scale(decay)

	if m.OnStep != nil {
		m.OnStep()
	}
	if m.Velocity.Len() < m.RestSpeed {
		m.done = true
	}
}

// Finished reports whether the motion has come to rest.
func (m *InertiaMotion) Finished() bool { return m.done }
