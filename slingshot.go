package slingshot

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" into a Color.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// Range is a general-purpose min/max range.
// Used by the wander durations and the confetti burst.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Random returns a random float64 in [Min, Max] drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// RandomInt returns a random integer in [Min, Max] (both rounded toward zero).
func (r Range) RandomInt(rng *rand.Rand) int {
	lo, hi := int(r.Min), int(r.Max)
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// Status is the game session state, mirrored to the container's status
// attribute as "ready", "running" or "finished".
type Status uint8

const (
	StatusReady    Status = iota // initial state and reset target
	StatusRunning                // after the first valid drag press
	StatusFinished               // every target hit; terminal until Reset
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// TargetKind distinguishes targets that stay put from ones that wander.
type TargetKind uint8

const (
	TargetStatic    TargetKind = iota // fixed position
	TargetWandering                   // continuously repositions via random waypoints
)

func (k TargetKind) String() string {
	if k == TargetWandering {
		return "wandering"
	}
	return "static"
}

// FlightState is the projectile's flight state.
type FlightState uint8

const (
	FlightIdle   FlightState = iota // at rest or hidden
	FlightFlying                    // an inertia motion is driving it
)

// EventType identifies a kind of pointer event delivered to a Sprite.
type EventType uint8

const (
	EventPointerDown EventType = iota // fires when a pointer button is pressed
	EventPointerUp                    // fires when a pointer button is released
	EventClick                        // fires on press then release over the same sprite
	EventDragStart                    // fires when movement exceeds the drag dead zone
	EventDrag                         // fires each frame while dragging
	EventDragEnd                      // fires when the pointer is released after dragging
)
