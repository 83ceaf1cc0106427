// Package ecs bridges kuiper physics events into a [Donburi] world.
//
// The adapters publish collisions and trigger transitions as typed Donburi
// events, so ECS systems consume physics the same way they consume any
// other event stream:
//
//	unbind := ecs.BindCollisions(world, physics)
//	ecs.CollisionEventType.Subscribe(world, func(w donburi.World, c kuiper.Collision) {
//		// react to the collision
//	})
//
// Publish queues; nothing reaches subscribers until ProcessEvents runs.
// Call it once per frame after [kuiper.PhysicsSystem.Step]:
//
//	physics.Step(dt)
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
