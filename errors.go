package kuiper

import "errors"

// Sentinel errors returned by transform, object, and physics operations.
// Test for them with errors.Is; some are returned wrapped with detail.
var (
	// ErrCycle is returned when reparenting a Transform or Object would make
	// it its own ancestor.
	ErrCycle = errors.New("kuiper: parenting would create a cycle")

	// ErrDestroyed is returned when operating on a destroyed Object or
	// parenting to one.
	ErrDestroyed = errors.New("kuiper: object is destroyed")

	// ErrDuplicateCollider is returned by AddCircleCollider when the body
	// already has a collider.
	ErrDuplicateCollider = errors.New("kuiper: body already has a collider")

	// ErrInvalidMass is returned by NewBody for a zero, negative, or NaN
	// mass. Positive infinity is a valid mass and makes the body immovable.
	ErrInvalidMass = errors.New("kuiper: mass must be positive")
)
