package kuiper

// Transform is a mutable 2D position and rotation, optionally expressed
// relative to a parent Transform.
//
// Transforms are shared by reference: the physics system moves a body by
// writing to its transform and the renderer reads the same transform to draw
// it. During [PhysicsSystem.Step] the physics system is the only writer of
// the transforms of the bodies it owns; everything else reads.
//
// Parenting composes coordinates, so a child placed at local (10, 0) with a
// parent at world (100, 100) rotated by a sits on the circle of radius 10
// around (100, 100). World coordinates are computed on demand by walking the
// parent chain; nothing is cached.
//
// A Transform has no destruction logic. Its lifetime belongs to whatever
// owns it, usually an [Object] through that object's destroy hooks.
type Transform struct {
	local  Vec2
	angle  float64
	parent *Transform
}

// NewTransform creates a transform at the world origin with no parent.
func NewTransform() *Transform {
	return &Transform{}
}

// NewChildTransform creates a transform at the parent's origin whose
// coordinates are relative to parent. A nil parent is the same as
// NewTransform.
func NewChildTransform(parent *Transform) *Transform {
	return &Transform{parent: parent}
}

// Parent returns the parent transform, or nil.
func (t *Transform) Parent() *Transform { return t.parent }

// SetParent reparents t, keeping its local coordinates (its world
// coordinates jump unless the new parent's frame matches the old one). It
// returns ErrCycle if p is t or a descendant of t; t is unchanged on
// failure. A nil p detaches t from its parent.
func (t *Transform) SetParent(p *Transform) error {
	for a := p; a != nil; a = a.parent {
		if a == t {
			return ErrCycle
		}
	}
	t.parent = p
	return nil
}

// LocalPosition returns t's position relative to its parent.
func (t *Transform) LocalPosition() Vec2 { return t.local }

// SetLocalPosition sets t's position relative to its parent. Panics if v
// has a non-finite component.
func (t *Transform) SetLocalPosition(v Vec2) {
	checkFinite(v, "position")
	t.local = v
}

// Translate adds d to t's local position.
func (t *Transform) Translate(d Vec2) {
	checkFinite(d, "translation")
	t.local = t.local.Add(d)
}

// LocalAngle returns t's rotation in radians relative to its parent.
func (t *Transform) LocalAngle() float64 { return t.angle }

// SetLocalAngle sets t's rotation relative to its parent, in radians,
// counterclockwise on screen. Panics if radians is not finite.
func (t *Transform) SetLocalAngle(radians float64) {
	checkFiniteScalar(radians, "angle")
	t.angle = radians
}

// Rotate adds radians to t's local rotation.
func (t *Transform) Rotate(radians float64) {
	checkFiniteScalar(radians, "rotation")
	t.angle += radians
}

// Position returns t's world position: the parent's world position plus t's
// local position rotated by the parent's world angle.
func (t *Transform) Position() Vec2 {
	if t.parent == nil {
		return t.local
	}
	return t.parent.Position().Add(t.local.Rotated(t.parent.Angle()))
}

// Angle returns t's world rotation in radians: its local angle plus the
// angles of all ancestors.
func (t *Transform) Angle() float64 {
	if t.parent == nil {
		return t.angle
	}
	return t.parent.Angle() + t.angle
}

// TranslateWorld moves t's world position by d regardless of parenting, by
// writing the equivalent delta into local coordinates. The physics
// integrator uses this so parented bodies move correctly in world space.
func (t *Transform) TranslateWorld(d Vec2) {
	checkFinite(d, "translation")
	if t.parent == nil {
		t.local = t.local.Add(d)
		return
	}
	t.local = t.local.Add(d.Rotated(-t.parent.Angle()))
}
