// Package ecs provides ECS adapters for slingshot's game events.
//
// The primary adapter is [NewDonburiSink], which bridges game lifecycle
// events (reset, start, launch, hit, finish) into a [Donburi] world as typed
// events. Subscribe to [GameEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	stage, err := slingshot.NewStage(cfg, slingshot.Options{Sink: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
