package kuiper

import "math"

// Vec2 is a 2D vector used for positions, velocities, offsets, and impulses
// throughout the API.
//
// Coordinates follow the screen convention: the origin is at the top left
// with Y increasing downward, and positive angles rotate counterclockwise as
// seen on screen.
type Vec2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// LenSq returns the squared length of v. Prefer it over Len for distance
// comparisons; it avoids the square root.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Normalized returns v scaled to length 1, or the zero vector if v is the
// zero vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotated returns v rotated counterclockwise on screen by angle radians.
// With Y pointing down, that is (x cos a + y sin a, -x sin a + y cos a).
func (v Vec2) Rotated(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos + v.Y*sin, -v.X*sin + v.Y*cos}
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// checkFinite panics if v has a NaN or infinite component. Setters use it to
// reject values that would silently poison every later frame.
func checkFinite(v Vec2, what string) {
	if !v.IsFinite() {
		panic("kuiper: non-finite " + what)
	}
}

// checkFiniteScalar is checkFinite for plain float64 inputs.
func checkFiniteScalar(f float64, what string) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("kuiper: non-finite " + what)
	}
}
