package kuiper

import (
	"errors"
	"testing"
)

// --- Basics ---

func TestNewObjectDefaults(t *testing.T) {
	s := NewScene()
	o := s.NewObject()
	if !o.Alive() {
		t.Error("new object is not alive")
	}
	if o.Parent() != nil {
		t.Error("new object has a parent")
	}
	if o.NumChildren() != 0 {
		t.Error("new object has children")
	}
	if o.Scene() != s {
		t.Error("Scene() does not return the creating scene")
	}
}

func TestUpdateRunsHooksInOrderWithDT(t *testing.T) {
	s := NewScene()
	o := s.NewObject()
	var order []string
	var got float64
	o.OnUpdate(func(dt float64) { order = append(order, "a"); got = dt })
	o.OnUpdate(func(float64) { order = append(order, "b") })

	o.Update(0.25)

	if joinOrder(order) != "ab" {
		t.Errorf("hook order = %q, want %q", joinOrder(order), "ab")
	}
	assertNear(t, "dt", got, 0.25)
}

func TestOnUpdateRemove(t *testing.T) {
	s := NewScene()
	o := s.NewObject()
	calls := 0
	remove := o.OnUpdate(func(float64) { calls++ })

	o.Update(1)
	remove()
	remove()
	o.Update(1)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

// --- Destroy ---

func TestDestroyMarksNotAlive(t *testing.T) {
	s := NewScene()
	o := s.NewObject()
	o.Destroy()
	if o.Alive() {
		t.Error("destroyed object is alive")
	}
}

func TestDestroyRunsHooksInRegistrationOrder(t *testing.T) {
	s := NewScene()
	o := s.NewObject()
	var order []string
	o.OnDestroy(func() { order = append(order, "a") })
	o.OnDestroy(func() { order = append(order, "b") })

	o.Destroy()

	if joinOrder(order) != "ab" {
		t.Errorf("destroy hook order = %q, want %q", joinOrder(order), "ab")
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	s := NewScene()
	o := s.NewObject()
	calls := 0
	o.OnDestroy(func() { calls++ })

	o.Destroy()
	o.Destroy()

	if calls != 1 {
		t.Errorf("destroy hook calls = %d, want 1", calls)
	}
}

func TestDestroyFromOwnDestroyHookIsNoOp(t *testing.T) {
	s := NewScene()
	o := s.NewObject()
	calls := 0
	o.OnDestroy(func() {
		calls++
		o.Destroy()
	})

	o.Destroy()

	if calls != 1 {
		t.Errorf("destroy hook calls = %d, want 1", calls)
	}
}

func TestDestroyCascadesChildrenFirst(t *testing.T) {
	s := NewScene()
	parent := s.NewObject()
	childA := s.NewObject()
	childB := s.NewObject()
	grandchild := s.NewObject()
	mustSetParent(t, childA, parent)
	mustSetParent(t, childB, parent)
	mustSetParent(t, grandchild, childA)

	var order []string
	parent.OnDestroy(func() { order = append(order, "p") })
	childA.OnDestroy(func() { order = append(order, "a") })
	childB.OnDestroy(func() { order = append(order, "b") })
	grandchild.OnDestroy(func() { order = append(order, "g") })

	parent.Destroy()

	// Depth-first, children in registration order, parent last.
	if joinOrder(order) != "gabp" {
		t.Errorf("cascade order = %q, want %q", joinOrder(order), "gabp")
	}
	for _, o := range []*Object{parent, childA, childB, grandchild} {
		if o.Alive() {
			t.Error("object survived the cascade")
		}
	}
}

func TestDestroyHooksSeeChildrenGoneAndSelfAlive(t *testing.T) {
	s := NewScene()
	parent := s.NewObject()
	child := s.NewObject()
	mustSetParent(t, child, parent)

	parent.OnDestroy(func() {
		if parent.NumChildren() != 0 {
			t.Error("children still attached during parent's destroy hooks")
		}
		if child.Alive() {
			t.Error("child still alive during parent's destroy hooks")
		}
		if !parent.Alive() {
			t.Error("object already marked dead during its own destroy hooks")
		}
	})

	parent.Destroy()
	if parent.Alive() {
		t.Error("object alive after Destroy returned")
	}
}

func TestDestroyDetachesFromParent(t *testing.T) {
	s := NewScene()
	parent := s.NewObject()
	child := s.NewObject()
	mustSetParent(t, child, parent)

	child.Destroy()

	if parent.NumChildren() != 0 {
		t.Errorf("parent children = %d, want 0", parent.NumChildren())
	}
	if child.Parent() != nil {
		t.Error("destroyed child still has a parent")
	}
	if !parent.Alive() {
		t.Error("destroying a child destroyed the parent")
	}
}

func TestDestroyHookAddedDuringDestroyNeverRuns(t *testing.T) {
	s := NewScene()
	o := s.NewObject()
	lateRan := false
	o.OnDestroy(func() {
		o.OnDestroy(func() { lateRan = true })
	})

	o.Destroy()

	if lateRan {
		t.Error("hook registered during destruction ran")
	}
}

func TestUpdateSkipsDestroyedObject(t *testing.T) {
	s := NewScene()
	o := s.NewObject()
	calls := 0
	o.OnUpdate(func(float64) { calls++ })

	o.Destroy()
	o.Update(1)

	if calls != 0 {
		t.Errorf("update hook calls = %d, want 0", calls)
	}
}

func TestDestroySelfMidUpdateSkipsRemainingHooks(t *testing.T) {
	s := NewScene()
	o := s.NewObject()
	var order []string
	o.OnUpdate(func(float64) {
		order = append(order, "a")
		o.Destroy()
	})
	o.OnUpdate(func(float64) { order = append(order, "b") })

	o.Update(1)

	if joinOrder(order) != "a" {
		t.Errorf("hooks after self-destroy = %q, want %q", joinOrder(order), "a")
	}
}

// --- Object parenting ---

func TestSetParentAndDetach(t *testing.T) {
	s := NewScene()
	parent := s.NewObject()
	child := s.NewObject()

	mustSetParent(t, child, parent)
	if child.Parent() != parent {
		t.Error("parent not set")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("parent children = %d, want 1", parent.NumChildren())
	}

	mustSetParent(t, child, nil)
	if child.Parent() != nil {
		t.Error("parent not cleared")
	}
	if parent.NumChildren() != 0 {
		t.Errorf("parent children = %d, want 0", parent.NumChildren())
	}
}

func TestSetParentMovesBetweenParents(t *testing.T) {
	s := NewScene()
	p1 := s.NewObject()
	p2 := s.NewObject()
	child := s.NewObject()

	mustSetParent(t, child, p1)
	mustSetParent(t, child, p2)

	if p1.NumChildren() != 0 {
		t.Errorf("old parent children = %d, want 0", p1.NumChildren())
	}
	if p2.NumChildren() != 1 {
		t.Errorf("new parent children = %d, want 1", p2.NumChildren())
	}
}

func TestSetParentRejectsDestroyedTarget(t *testing.T) {
	s := NewScene()
	parent := s.NewObject()
	child := s.NewObject()
	parent.Destroy()

	if err := child.SetParent(parent); !errors.Is(err, ErrDestroyed) {
		t.Errorf("SetParent(destroyed) = %v, want ErrDestroyed", err)
	}
	if child.Parent() != nil {
		t.Error("failed SetParent changed the parent")
	}
}

func TestSetParentRejectsDestroyedSelf(t *testing.T) {
	s := NewScene()
	parent := s.NewObject()
	child := s.NewObject()
	child.Destroy()

	if err := child.SetParent(parent); !errors.Is(err, ErrDestroyed) {
		t.Errorf("SetParent on destroyed object = %v, want ErrDestroyed", err)
	}
}

func TestSetParentRejectsObjectCycle(t *testing.T) {
	s := NewScene()
	a := s.NewObject()
	b := s.NewObject()
	c := s.NewObject()
	mustSetParent(t, b, a)
	mustSetParent(t, c, b)

	if err := a.SetParent(c); !errors.Is(err, ErrCycle) {
		t.Errorf("SetParent(descendant) = %v, want ErrCycle", err)
	}
	if err := a.SetParent(a); !errors.Is(err, ErrCycle) {
		t.Errorf("SetParent(self) = %v, want ErrCycle", err)
	}
	if a.Parent() != nil {
		t.Error("failed SetParent changed the parent")
	}
}

func TestChildrenReturnsCopy(t *testing.T) {
	s := NewScene()
	parent := s.NewObject()
	child := s.NewObject()
	mustSetParent(t, child, parent)

	kids := parent.Children()
	kids[0] = nil

	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Error("mutating the returned slice changed the object")
	}
}

func mustSetParent(t *testing.T, child, parent *Object) {
	t.Helper()
	if err := child.SetParent(parent); err != nil {
		t.Fatalf("SetParent: %v", err)
	}
}
