// Package kuiper is a frame-stepped 2D simulation core for small games.
//
// Kuiper provides the three pieces a real-time 2D game is built around: a
// hierarchical [Transform] model, an [Object] lifecycle graph with update and
// destroy hooks, and a [PhysicsSystem] that resolves elastic collisions and
// trigger overlaps among circle-shaped bodies. Rendering, input, and
// windowing stay outside the core: the kuiper/render package binds
// simulations to [Ebitengine], and any other front end can drive one by
// reading transforms and registering destroy hooks.
//
// # Quick start
//
// A simulation is a [Scene], a [PhysicsSystem], and usually a [Clock], all
// stepped once per frame by the host loop:
//
//	scene := kuiper.NewScene()
//	physics := kuiper.NewPhysicsSystem()
//	clock := kuiper.NewClock()
//
//	obj := scene.NewObject()
//	tr := kuiper.NewTransform()
//	body, _ := physics.NewBody(tr, 1, kuiper.Vec2{X: 40})
//	physics.AddCircleCollider(body, 10, kuiper.Vec2{})
//	body.BindTo(obj)
//
//	// Once per frame, in this order:
//	scene.Update(dt)
//	clock.Update(dt)
//	physics.Step(dt)
//
// # Objects and lifecycle
//
// An [Object] is a point in the game's lifecycle graph. It has no position
// of its own; a game entity is an Object plus a shared [Transform] plus
// whatever bodies, triggers, and drawables are bound to it. Destroying the
// Object cascades to its children and tears everything down through its
// destroy hooks:
//
//	obj := scene.NewObject()
//	obj.OnUpdate(func(dt float64) { /* per-frame logic */ })
//	obj.OnDestroy(func() { /* cleanup */ })
//	body.BindTo(obj) // removed from the physics system when obj dies
//
// # Transforms
//
// A [Transform] is shared mutable state by design: the physics system writes
// a body's transform during [PhysicsSystem.Step], and everything else reads
// it. Parenting a transform expresses "moves with": a turret transform
// parented to a ship transform follows the ship's position and rotation.
//
// # Physics
//
// Bodies collide elastically; kinetic energy and momentum along the contact
// normal are conserved, and overlapping pairs are pushed apart to exactly
// touching. A mass of math.Inf(1) makes a body immovable, which is how
// arena walls are built. [Trigger] zones detect overlap transitions without
// affecting motion. Pair testing is brute force by design; a spatial index
// can be swapped in through [BroadPhase] without touching the resolution
// math.
//
// # Coroutines and scheduling
//
// [Clock] schedules callbacks on simulation time, and [Routine] runs a
// function as a coroutine over an object's update loop:
//
//	kuiper.NewRoutine(obj, func(y *kuiper.Yielder) {
//		for i := 0; i < 3; i++ {
//			spawnWave()
//			if !y.Sleep(clock, 2.5) {
//				return
//			}
//		}
//	}).Start()
//
// Everything in this package is single-threaded and cooperative: one Step
// per frame from one goroutine, no locks, no atomics.
//
// [Ebitengine]: https://ebitengine.org
package kuiper
