package slingshot

import "github.com/google/uuid"

//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . EventSink

// EventSink is the interface for optional ECS integration.
// When set on a Game, lifecycle events are forwarded to it.
type EventSink interface {
	EmitEvent(event GameEvent)
}

// GameEventType identifies a game lifecycle event.
type GameEventType uint8

const (
	EventReset  GameEventType = iota // session reset to ready
	EventStart                       // first valid press of a session
	EventLaunch                      // projectile launched
	EventHit                         // a target was hit
	EventFinish                      // every target hit
)

func (t GameEventType) String() string {
	switch t {
	case EventReset:
		return "reset"
	case EventStart:
		return "start"
	case EventLaunch:
		return "launch"
	case EventHit:
		return "hit"
	case EventFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// GameEvent carries lifecycle data for the event sink.
type GameEvent struct {
	Type     GameEventType
	Session  uuid.UUID
	TargetID uint32 // EventHit only
	X, Y     float64 // hit center for EventHit, velocity for EventLaunch
	HitCount int
	Total    int
	Score    string // EventFinish only
}
