package ecs

import (
	"github.com/phanxgames/slingshot"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GameEventType is the Donburi event type for slingshot game events.
// Subscribe to this in your ECS systems to receive hits, launches and
// session transitions.
var GameEventType = events.NewEventType[slingshot.GameEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Game events are published to GameEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) slingshot.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event slingshot.GameEvent) {
	GameEventType.Publish(s.world, event)
}
