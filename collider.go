package kuiper

// Collider is the identity shared by body colliders and trigger zones.
// Trigger events report the overlapping shape through this interface so game
// code can handle bodies and other triggers uniformly, usually by searching
// Data for a marker it recognizes.
type Collider interface {
	// Center returns the collider's center in world coordinates.
	Center() Vec2
	// Radius returns the collider's radius.
	Radius() float64
	// Body returns the body the collider is attached to, or nil for a
	// trigger zone.
	Body() *Body
	// Data returns the data attached to the owning body or trigger.
	Data() []any
}

// CircleCollider is the circular collision shape of a [Body]. Attach one
// with [PhysicsSystem.AddCircleCollider]; a body has at most one.
type CircleCollider struct {
	body   *Body
	radius float64
	offset Vec2
}

// Center returns the collider's center in world coordinates: the body
// transform's world position plus the offset rotated by its world angle.
func (c *CircleCollider) Center() Vec2 {
	t := c.body.transform
	if c.offset == (Vec2{}) {
		return t.Position()
	}
	return t.Position().Add(c.offset.Rotated(t.Angle()))
}

// Radius returns the collider's radius.
func (c *CircleCollider) Radius() float64 { return c.radius }

// Offset returns the collider's center offset from the body's transform, in
// the transform's local frame.
func (c *CircleCollider) Offset() Vec2 { return c.offset }

// Body returns the body the collider is attached to.
func (c *CircleCollider) Body() *Body { return c.body }

// Data returns the data attached to the owning body.
func (c *CircleCollider) Data() []any { return c.body.Data() }

// overlaps reports whether two circles overlap. The comparison is strict:
// tangent circles do not overlap.
func overlaps(c1, c2 Vec2, r1, r2 float64) bool {
	rsum := r1 + r2
	return c1.Sub(c2).LenSq() < rsum*rsum
}
