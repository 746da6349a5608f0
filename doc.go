// Package slingshot is a drag-to-launch target minigame for [Ebitengine].
//
// The player drags a handle away from a resting projectile and lets go; the
// projectile flies opposite to the pull, slows under resistance and clears
// every target it touches. The session clock starts on the first press and
// stops when the last target is hit, giving a score in seconds.
//
// # Quick start
//
// The simplest way to play is [Run], which opens a window around a [Stage]:
//
//	cfg, _ := slingshot.LoadConfig("")
//	stage, err := slingshot.NewStage(cfg, slingshot.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	slingshot.Run(stage)
//
// For full control, build a [Game] around your own sprites and drive it
// yourself. Press, Move and Release take container-local points; every
// motion runs on the [Animator] passed in [Options], or on a [Tweener] the
// game owns and advances in [Game.Update]:
//
//	g, err := slingshot.NewGame(cfg, slingshot.Rect{Width: 640, Height: 480},
//		slingshot.Anchors{Handle: handle, Projectile: ball, Targets: boxes},
//		slingshot.Options{})
//	g.Press(p)
//	g.Move(q)
//	g.Release()
//	g.Update(1.0 / 60)
//
// # Geometry
//
// A [Sprite] is a rectangle positioned by its unrotated top-left corner and
// rotated and scaled about its center. [Sprite.Bounds] is the live
// axis-aligned box of the transformed rectangle and is what collisions use.
// Two boxes that share only an edge overlap.
//
// # Motions
//
// Everything that changes over time is a [Motion] played on an [Animator]:
// tweens built with [TweenPosition], [TweenTransform], [TweenFade] and
// friends, the projectile's [InertiaMotion] and the endless wander of roaming
// targets. A cancelled motion never runs its completion callback.
//
// # Events
//
// An [EventSink] in [Options] receives every reset, start, launch, hit and
// finish. The ecs submodule forwards them into a donburi world. A
// [BurstSpawner] plays the hit effect; [ConfettiBurst] is the built-in one.
//
// # Configuration
//
// [LoadConfig] reads YAML from an explicit path, ~/.slingshot/config.yaml,
// ./configs/slingshot.yaml or the embedded default, in that order. Omitted
// keys keep their [DefaultConfig] values.
//
// [Ebitengine]: https://ebitengine.org
package slingshot
