package kuiper

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates a [Transform]'s local position or rotation over time.
//
// Build a group with [TweenPosition] or [TweenAngle] and feed it dt every
// frame, directly or through DriveOn. There is no global animation manager;
// a group is plain state advanced by whoever owns it.
type TweenGroup struct {
	tweens [2]*gween.Tween
	apply  [2]func(float64)
	count  int
	obj    *Object

	// Done is set once every tween finished or the bound object died.
	// Further Updates do nothing.
	Done bool
}

// TweenPosition animates t's local position to the given value over
// duration seconds.
func TweenPosition(t *Transform, to Vec2, duration float64, easing ease.TweenFunc) *TweenGroup {
	checkFinite(to, "position")
	from := t.LocalPosition()
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(from.X), float32(to.X), float32(duration), easing)
	g.apply[0] = func(v float64) {
		t.SetLocalPosition(Vec2{X: v, Y: t.LocalPosition().Y})
	}
	g.tweens[1] = gween.New(float32(from.Y), float32(to.Y), float32(duration), easing)
	g.apply[1] = func(v float64) {
		t.SetLocalPosition(Vec2{X: t.LocalPosition().X, Y: v})
	}
	return g
}

// TweenAngle animates t's local rotation to the given angle in radians over
// duration seconds.
func TweenAngle(t *Transform, to float64, duration float64, easing ease.TweenFunc) *TweenGroup {
	checkFiniteScalar(to, "angle")
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(t.LocalAngle()), float32(to), float32(duration), easing)
	g.apply[0] = func(v float64) { t.SetLocalAngle(v) }
	return g
}

// StopOn makes the group stop once obj is destroyed, so a tween never
// writes to the transform of a dead entity. Returns g for chaining.
func (g *TweenGroup) StopOn(obj *Object) *TweenGroup {
	g.obj = obj
	return g
}

// DriveOn advances the group from obj's update hook and detaches once it is
// done. Returns g for chaining.
func (g *TweenGroup) DriveOn(obj *Object) *TweenGroup {
	var remove func()
	remove = obj.OnUpdate(func(dt float64) {
		g.Update(dt)
		if g.Done {
			remove()
		}
	})
	return g
}

// Update advances the tweens by dt seconds and writes the values to the
// transform.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}
	if g.obj != nil && !g.obj.Alive() {
		g.Done = true
		return
	}
	finished := true
	for i := 0; i < g.count; i++ {
		v, done := g.tweens[i].Update(float32(dt))
		g.apply[i](float64(v))
		if !done {
			finished = false
		}
	}
	g.Done = finished
}
