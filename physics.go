package kuiper

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// BroadPhase enumerates candidate body pairs for collision testing.
//
// Implementations may skip pairs that cannot overlap, but must visit the
// rest in slice order: pair (i, j) before (k, l) when i < k, or when i == k
// and j < l. Detection order is what makes a Step deterministic.
type BroadPhase interface {
	ForEachPair(bodies []*Body, visit func(a, b *Body))
}

// bruteForce is the default BroadPhase: every unordered pair, no pruning.
// Quadratic, which is fine at the body counts this engine is for, and the
// easiest baseline to check a real spatial index against.
type bruteForce struct{}

func (bruteForce) ForEachPair(bodies []*Body, visit func(a, b *Body)) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			visit(bodies[i], bodies[j])
		}
	}
}

// PhysicsSystem owns the bodies and triggers it creates and advances them
// with [PhysicsSystem.Step]. Construct one per simulation with
// NewPhysicsSystem and pass it to whatever needs it; there is no ambient
// global system.
type PhysicsSystem struct {
	bodies   []*Body
	triggers []*Trigger

	broad          BroadPhase
	collisionHooks HookList[Collision]

	// Scratch slices reused across Steps.
	active    []*Body
	colliding []bodyPair

	log *zap.Logger
}

type bodyPair struct {
	a, b *Body
}

// NewPhysicsSystem creates an empty physics system using the brute-force
// pair test.
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{broad: bruteForce{}}
}

// SetBroadPhase replaces the candidate-pair source used by Step. The
// resolution math is unaffected; only the set of pairs tested changes. A
// nil bp restores the brute-force default.
func (s *PhysicsSystem) SetBroadPhase(bp BroadPhase) {
	if bp == nil {
		bp = bruteForce{}
	}
	s.broad = bp
}

// NewBody registers a body that moves transform at the given velocity, in
// world units per second.
//
// Mass must be positive; math.Inf(1) makes the body immovable. A zero,
// negative, or NaN mass returns ErrInvalidMass and registers nothing. The
// body takes part in collisions only once AddCircleCollider attaches a
// shape. Panics if transform is nil or velocity is not finite.
func (s *PhysicsSystem) NewBody(transform *Transform, mass float64, velocity Vec2) (*Body, error) {
	if transform == nil {
		panic("kuiper: nil transform")
	}
	checkFinite(velocity, "velocity")
	if math.IsNaN(mass) || mass <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMass, mass)
	}
	b := &Body{
		system:    s,
		transform: transform,
		velocity:  velocity,
		mass:      mass,
		enabled:   true,
	}
	s.bodies = append(s.bodies, b)
	if s.log != nil {
		s.warnDeepChain(transform)
	}
	return b, nil
}

// AddCircleCollider attaches a circular collider to b, centered on the
// body's transform plus offset. The offset is in the transform's local
// frame and rotates with it. It returns ErrDuplicateCollider if b already
// has a collider; b is unchanged on failure. Panics if the radius is
// negative or not finite.
func (s *PhysicsSystem) AddCircleCollider(b *Body, radius float64, offset Vec2) (*CircleCollider, error) {
	checkFiniteScalar(radius, "radius")
	checkFinite(offset, "offset")
	if radius < 0 {
		panic("kuiper: negative radius")
	}
	if b.collider != nil {
		return nil, ErrDuplicateCollider
	}
	c := &CircleCollider{body: b, radius: radius, offset: offset}
	b.collider = c
	return c, nil
}

// NewCircleTrigger registers a trigger zone of the given radius centered on
// transform. Panics if transform is nil or the radius is negative or not
// finite.
func (s *PhysicsSystem) NewCircleTrigger(transform *Transform, radius float64) *Trigger {
	if transform == nil {
		panic("kuiper: nil transform")
	}
	checkFiniteScalar(radius, "radius")
	if radius < 0 {
		panic("kuiper: negative radius")
	}
	t := &Trigger{
		system:    s,
		transform: transform,
		radius:    radius,
		enabled:   true,
	}
	s.triggers = append(s.triggers, t)
	if s.log != nil {
		s.warnDeepChain(transform)
	}
	return t
}

// RemoveBody unregisters b and its collider from the system and releases
// any BindTo hooks. Removing a removed (or nil) body is a no-op.
func (s *PhysicsSystem) RemoveBody(b *Body) {
	if b == nil || b.removed {
		return
	}
	b.removed = true
	for _, unbind := range b.unbinds {
		unbind()
	}
	b.unbinds = nil
	for i, cur := range s.bodies {
		if cur == b {
			copy(s.bodies[i:], s.bodies[i+1:])
			s.bodies[len(s.bodies)-1] = nil
			s.bodies = s.bodies[:len(s.bodies)-1]
			return
		}
	}
}

// RemoveTrigger unregisters t from the system and releases any BindTo
// hooks. Removing a removed (or nil) trigger is a no-op.
func (s *PhysicsSystem) RemoveTrigger(t *Trigger) {
	if t == nil || t.removed {
		return
	}
	t.removed = true
	for _, unbind := range t.unbinds {
		unbind()
	}
	t.unbinds = nil
	for i, cur := range s.triggers {
		if cur == t {
			copy(s.triggers[i:], s.triggers[i+1:])
			s.triggers[len(s.triggers)-1] = nil
			s.triggers = s.triggers[:len(s.triggers)-1]
			return
		}
	}
}

// NumBodies returns the number of registered bodies.
func (s *PhysicsSystem) NumBodies() int { return len(s.bodies) }

// NumTriggers returns the number of registered triggers.
func (s *PhysicsSystem) NumTriggers() int { return len(s.triggers) }

// OnCollision registers a system-wide observer that runs once per colliding
// pair, after both bodies' own collision hooks. The returned function
// removes it; it is idempotent.
func (s *PhysicsSystem) OnCollision(fn func(Collision)) (remove func()) {
	return s.collisionHooks.Add(fn)
}

// KineticEnergy returns the total kinetic energy of all bodies. Immovable
// bodies contribute nothing.
func (s *PhysicsSystem) KineticEnergy() float64 {
	var e float64
	for _, b := range s.bodies {
		e += b.KineticEnergy()
	}
	return e
}

// Momentum returns the vector sum of mass times velocity over all bodies.
// Immovable bodies contribute nothing.
func (s *PhysicsSystem) Momentum() Vec2 {
	var m Vec2
	for _, b := range s.bodies {
		if b.Immovable() {
			continue
		}
		m = m.Add(b.velocity.Mul(b.mass))
	}
	return m
}

// Step advances the simulation by dt seconds in four phases, each working
// on the state the previous one left behind:
//
//  1. Integrate: move every enabled body by velocity times dt.
//  2. Detect: gather overlapping collider pairs in registration order.
//  3. Resolve: bounce each pair elastically and separate it to touching.
//  4. Triggers: fire exit, enter, and stay transitions.
//
// dt must be non-negative and finite; a zero dt moves nothing but still
// detects, resolves, and fires triggers.
func (s *PhysicsSystem) Step(dt float64) {
	checkFiniteScalar(dt, "dt")
	if dt < 0 {
		panic("kuiper: negative dt")
	}

	var start time.Time
	if s.log != nil {
		start = time.Now()
	}

	s.integrate(dt)
	pairsTested := s.detect()
	s.resolve()
	events := s.runTriggers()

	if s.log != nil {
		s.log.Debug("physics step",
			zap.Float64("dt", dt),
			zap.Int("bodies", len(s.bodies)),
			zap.Int("triggers", len(s.triggers)),
			zap.Int("pairs_tested", pairsTested),
			zap.Int("collisions", len(s.colliding)),
			zap.Int("trigger_events", events),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

// integrate moves every enabled body by velocity times dt, written through
// TranslateWorld so parented transforms move correctly in world space.
func (s *PhysicsSystem) integrate(dt float64) {
	for _, b := range s.bodies {
		if !b.enabled || b.velocity == (Vec2{}) {
			continue
		}
		b.transform.TranslateWorld(b.velocity.Mul(dt))
	}
}

// detect collects colliding pairs among enabled, collider-bearing bodies.
// Pairs come from the broad phase in registration order; a pair collides
// when its collider circles overlap (strictly, so tangent circles do not
// collide).
func (s *PhysicsSystem) detect() (pairsTested int) {
	s.active = s.active[:0]
	for _, b := range s.bodies {
		if b.enabled && b.collider != nil {
			s.active = append(s.active, b)
		}
	}

	s.colliding = s.colliding[:0]
	s.broad.ForEachPair(s.active, func(a, b *Body) {
		pairsTested++
		if overlaps(a.collider.Center(), b.collider.Center(), a.collider.radius, b.collider.radius) {
			s.colliding = append(s.colliding, bodyPair{a, b})
		}
	})
	return pairsTested
}

// resolve applies the collision response to every pair detect found, in
// detection order. The pair list is fixed for the phase: hooks that remove
// bodies do not unqueue pairs already detected this Step.
func (s *PhysicsSystem) resolve() {
	for _, p := range s.colliding {
		s.resolvePair(p.a, p.b)
	}
}

// resolvePair bounces two overlapping bodies off each other.
//
// The response is a one-dimensional elastic collision along the collision
// normal: each body's normal velocity component changes by the impulse
//
//	j = -2 (vRel . n) / (1/mA + 1/mB)
//
// which conserves momentum and kinetic energy. Tangential components are
// untouched. Immovable bodies have zero inverse mass, so they absorb the
// impulse without moving and the partner reflects as off a wall. The pair
// is then separated to exactly touching so the overlap does not survive
// into the next Step.
func (s *PhysicsSystem) resolvePair(a, b *Body) {
	delta := a.collider.Center().Sub(b.collider.Center())
	distSq := delta.LenSq()
	if distSq == 0 {
		// Coincident centers have no collision normal. Leave the pair
		// alone rather than invent a direction.
		return
	}

	dist := math.Sqrt(distSq)
	normal := delta.Mul(1 / dist) // from b toward a
	invA := invMass(a)
	invB := invMass(b)

	approach := a.velocity.Sub(b.velocity).Dot(normal)
	if approach > 0 {
		// Overlapping but already separating: no bounce and no hooks, but
		// still separate the circles so the overlap clears this Step.
		s.correct(a, b, normal, dist, invA, invB)
		return
	}

	if invSum := invA + invB; invSum > 0 {
		j := -2 * approach / invSum
		a.velocity = a.velocity.Add(normal.Mul(j * invA))
		b.velocity = b.velocity.Sub(normal.Mul(j * invB))
	}

	s.correct(a, b, normal, dist, invA, invB)

	a.collisionHooks.Run(Collision{Body: a, Other: b})
	b.collisionHooks.Run(Collision{Body: b, Other: a})
	s.collisionHooks.Run(Collision{Body: a, Other: b})
}

// correct pushes a and b apart along the normal until their colliders just
// touch, split by inverse mass so heavier bodies move less and immovable
// bodies not at all. Two immovable bodies stay where they are.
func (s *PhysicsSystem) correct(a, b *Body, normal Vec2, dist float64, invA, invB float64) {
	invSum := invA + invB
	if invSum == 0 {
		return
	}
	penetration := a.collider.radius + b.collider.radius - dist
	if penetration <= 0 {
		return
	}
	a.transform.TranslateWorld(normal.Mul(penetration * invA / invSum))
	b.transform.TranslateWorld(normal.Mul(-penetration * invB / invSum))
}

// invMass returns 1/mass, with 0 for immovable bodies.
func invMass(b *Body) float64 {
	if b.Immovable() {
		return 0
	}
	return 1 / b.mass
}

// runTriggers scans every enabled trigger against every enabled collider
// and fires transition hooks. It returns the number of events for the step
// log.
//
// The scan completes for all triggers before any hook runs: a trigger's
// zone is itself a collider other triggers observe, so firing hooks
// mid-scan could move transforms out from under later tests.
func (s *PhysicsSystem) runTriggers() (events int) {
	for _, t := range s.triggers {
		if !t.enabled {
			continue
		}
		center := t.Center()
		for _, b := range s.bodies {
			if !b.enabled || b.collider == nil {
				continue
			}
			if overlaps(center, b.collider.Center(), t.radius, b.collider.radius) {
				t.observe(b.collider)
			}
		}
		for _, other := range s.triggers {
			if other == t || !other.enabled {
				continue
			}
			if overlaps(center, other.Center(), t.radius, other.radius) {
				t.observe(other)
			}
		}
	}

	// Snapshot so hooks may add and remove triggers freely.
	triggers := make([]*Trigger, len(s.triggers))
	copy(triggers, s.triggers)
	for _, t := range triggers {
		if !t.enabled || t.removed {
			continue
		}
		events += t.fire()
	}
	return events
}
