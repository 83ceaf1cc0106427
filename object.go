package kuiper

// Object is an entity in a [Scene]: a node in the game's lifecycle graph
// that update and destroy hooks attach to.
//
// Objects carry no spatial data. A game entity is typically an Object plus a
// shared [Transform] plus whatever bodies, triggers, and drawables are bound
// to the object through its hooks; destroying the Object tears all of that
// down.
//
// Parenting expresses ownership, not coordinates: destroying a parent
// destroys its children first. It is independent of [Transform] parenting;
// tie the two together when an entity should both move with and die with
// another.
//
// Create Objects with [Scene.NewObject].
type Object struct {
	scene    *Scene
	parent   *Object
	children []*Object

	updateHooks  HookList[float64]
	destroyHooks HookList[struct{}]

	// destroying is set on entry to Destroy and makes it re-entrant;
	// destroyed flips only after the destroy hooks have run, so Alive holds
	// during an object's own destruction.
	destroying bool
	destroyed  bool
}

// Alive reports whether the object has not been destroyed. During an
// object's own destroy hooks Alive still reports true; it flips once the
// hooks finish.
func (o *Object) Alive() bool { return !o.destroyed }

// Scene returns the scene the object was created in.
func (o *Object) Scene() *Scene { return o.scene }

// OnUpdate registers fn to run once per update pass with the frame's
// elapsed seconds, until the object is destroyed or the returned function
// removes it. The removal function is idempotent.
func (o *Object) OnUpdate(fn func(dt float64)) (remove func()) {
	return o.updateHooks.Add(fn)
}

// OnDestroy registers fn to run when the object is destroyed, after its
// children are gone and before it detaches from its parent. The returned
// function removes the hook; it is idempotent. Hooks registered during
// destruction never run.
func (o *Object) OnDestroy(fn func()) (remove func()) {
	return o.destroyHooks.Add(func(struct{}) { fn() })
}

// Update runs the object's update hooks in registration order with dt, the
// frame's elapsed seconds. Destroyed objects do nothing. Hooks run over a
// snapshot, so a hook may destroy this object or any other; once the object
// dies mid-pass its remaining hooks are skipped.
//
// [Scene.Update] calls this for every live object; call it directly only
// when driving an object by hand.
func (o *Object) Update(dt float64) {
	if o.destroying {
		return
	}
	for _, e := range o.updateHooks.snapshot() {
		if o.destroying {
			break
		}
		e.fn(dt)
	}
}

// Destroy removes the object from its scene: children are destroyed first,
// depth-first in registration order, then the object's own destroy hooks run
// in registration order, then the object is marked not alive and detaches
// from its parent. Destroy hooks can therefore rely on the children being
// gone already. Destroying a destroyed object is a no-op, including from
// within its own destroy hooks.
func (o *Object) Destroy() {
	if o.destroying {
		return
	}
	o.destroying = true

	// Children detach themselves as they die, so iterate a snapshot.
	children := make([]*Object, len(o.children))
	copy(children, o.children)
	for _, c := range children {
		c.Destroy()
	}

	o.destroyHooks.Run(struct{}{})
	o.destroyed = true

	if o.parent != nil {
		o.parent.removeChildByPtr(o)
		o.parent = nil
	}
	if o.scene != nil {
		o.scene.remove(o)
	}
}

// Parent returns the object's parent, or nil.
func (o *Object) Parent() *Object { return o.parent }

// NumChildren returns the number of children.
func (o *Object) NumChildren() int { return len(o.children) }

// Children returns a copy of the object's children in registration order.
func (o *Object) Children() []*Object {
	if len(o.children) == 0 {
		return nil
	}
	c := make([]*Object, len(o.children))
	copy(c, o.children)
	return c
}

// SetParent makes o a child of p, so that destroying p destroys o. A nil p
// detaches o from its parent. It returns ErrDestroyed if o or p is
// destroyed and ErrCycle if p is o or a descendant of o; o is unchanged on
// failure.
func (o *Object) SetParent(p *Object) error {
	if o.destroying {
		return ErrDestroyed
	}
	if p != nil {
		if p.destroying {
			return ErrDestroyed
		}
		for a := p; a != nil; a = a.parent {
			if a == o {
				return ErrCycle
			}
		}
	}
	if o.parent != nil {
		o.parent.removeChildByPtr(o)
	}
	o.parent = p
	if p != nil {
		p.children = append(p.children, o)
	}
	return nil
}

// removeChildByPtr removes child from o.children without touching
// child.parent. Uses copy+nil so the backing array does not retain a
// dangling pointer.
func (o *Object) removeChildByPtr(child *Object) {
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			return
		}
	}
}
