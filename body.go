package kuiper

import "math"

// Collision describes one collision from the point of view of one body:
// Body is the body whose hook is running and Other is the body it hit. The
// response has already been applied when collision hooks run, so both
// velocities are post-bounce.
type Collision struct {
	Body  *Body
	Other *Body
}

// Body is a moving, collidable circle in a [PhysicsSystem].
//
// Each [PhysicsSystem.Step], a body moves its Transform by its velocity. It
// takes part in collisions only once a collider is attached with
// [PhysicsSystem.AddCircleCollider]. Create bodies with
// [PhysicsSystem.NewBody].
type Body struct {
	system    *PhysicsSystem
	transform *Transform
	velocity  Vec2
	mass      float64
	collider  *CircleCollider
	enabled   bool

	collisionHooks HookList[Collision]
	data           []any

	// unbinds removes the destroy hooks BindTo registered, so removing the
	// body does not leave stale hooks on its objects.
	unbinds []func()
	removed bool
}

// Transform returns the transform the body moves.
func (b *Body) Transform() *Transform { return b.transform }

// Velocity returns the body's velocity in world units per second.
func (b *Body) Velocity() Vec2 { return b.velocity }

// SetVelocity sets the body's velocity. Panics if v has a non-finite
// component. Immovable bodies integrate velocity like any other body (a
// moving wall is just an immovable body with velocity); collisions simply
// never change it.
func (b *Body) SetVelocity(v Vec2) {
	checkFinite(v, "velocity")
	b.velocity = v
}

// AddImpulse adds impulse divided by mass to the body's velocity. Panics if
// impulse has a non-finite component. Impulses have no effect on immovable
// bodies.
func (b *Body) AddImpulse(impulse Vec2) {
	checkFinite(impulse, "impulse")
	b.velocity = b.velocity.Add(impulse.Mul(1 / b.mass))
}

// Mass returns the body's mass. math.IsInf(mass, 1) means immovable.
func (b *Body) Mass() float64 { return b.mass }

// Immovable reports whether the body has infinite mass. Immovable bodies
// never change velocity in collisions and positional correction does not
// move them.
func (b *Body) Immovable() bool { return math.IsInf(b.mass, 1) }

// Speed returns the length of the body's velocity.
func (b *Body) Speed() float64 { return b.velocity.Len() }

// KineticEnergy returns mass times speed squared over two. Immovable bodies
// report zero: they are scenery, not energy carriers.
func (b *Body) KineticEnergy() float64 {
	if b.Immovable() {
		return 0
	}
	return 0.5 * b.mass * b.velocity.LenSq()
}

// Enabled reports whether the body participates in Step.
func (b *Body) Enabled() bool { return b.enabled }

// SetEnabled includes or excludes the body from integration, collisions,
// and trigger tests. A disabled body keeps its velocity and collider.
func (b *Body) SetEnabled(enabled bool) { b.enabled = enabled }

// Collider returns the body's collider, or nil if none is attached.
func (b *Body) Collider() *CircleCollider { return b.collider }

// OnCollision registers fn to run each time this body collides with
// another during Step. The returned function removes the hook; it is
// idempotent.
func (b *Body) OnCollision(fn func(Collision)) (remove func()) {
	return b.collisionHooks.Add(fn)
}

// AddData attaches a data value to the body. Order is preserved.
//
// Data is how game code recognizes what it hit: attach a marker value to
// the body and search for it in the other body's Data inside a collision or
// trigger hook.
func (b *Body) AddData(data any) {
	b.data = append(b.data, data)
}

// Data returns a copy of the data attached to the body, in the order added.
func (b *Body) Data() []any {
	if len(b.data) == 0 {
		return nil
	}
	d := make([]any, len(b.data))
	copy(d, b.data)
	return d
}

// BindTo removes the body from its system when obj is destroyed. The usual
// shape of an entity is one Object with its body, trigger, and drawables
// all bound to it. Binding to several objects removes the body when the
// first of them dies.
func (b *Body) BindTo(obj *Object) {
	b.unbinds = append(b.unbinds, obj.OnDestroy(func() {
		b.system.RemoveBody(b)
	}))
}
