package kuiper

import "go.uber.org/zap"

// Scene owns the live set of Objects and drives their update hooks.
//
// A Scene is deliberately small: a registry plus an update loop. Physics,
// scheduling, and rendering live in their own systems that objects bind to
// through hooks, so a scene never knows what its objects are made of.
type Scene struct {
	objects []*Object
	log     *zap.Logger
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// NewObject creates a live object registered in the scene.
func (s *Scene) NewObject() *Object {
	o := &Object{scene: s}
	s.objects = append(s.objects, o)
	return o
}

// Len returns the number of live objects.
func (s *Scene) Len() int { return len(s.objects) }

// Update runs the update hooks of every live object with dt, the frame's
// elapsed seconds. Objects are visited in creation order over a snapshot,
// so hooks may create and destroy objects freely: objects created during
// the pass first update on the next pass, and objects destroyed during the
// pass are skipped for the rest of it.
func (s *Scene) Update(dt float64) {
	checkFiniteScalar(dt, "dt")
	snapshot := make([]*Object, len(s.objects))
	copy(snapshot, s.objects)
	for _, o := range snapshot {
		o.Update(dt)
	}
	if s.log != nil {
		s.log.Debug("scene update",
			zap.Float64("dt", dt),
			zap.Int("objects", len(s.objects)),
		)
	}
}

// remove unregisters a destroyed object. Uses copy+nil so the backing array
// does not retain a dangling pointer.
func (s *Scene) remove(o *Object) {
	for i, cur := range s.objects {
		if cur == o {
			copy(s.objects[i:], s.objects[i+1:])
			s.objects[len(s.objects)-1] = nil
			s.objects = s.objects[:len(s.objects)-1]
			return
		}
	}
}
