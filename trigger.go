package kuiper

// TriggerEvent is the payload of trigger hooks: Other entered, left, or
// stayed inside Trigger's zone.
type TriggerEvent struct {
	Trigger *Trigger
	Other   Collider
}

// Trigger is a circular zone that reports overlap transitions without
// affecting motion. Pickups, goal areas, and proximity sensors are
// triggers. Create triggers with [PhysicsSystem.NewCircleTrigger].
//
// Each [PhysicsSystem.Step] compares the set of colliders overlapping the
// trigger with the previous Step's set: colliders only in the new set fire
// enter hooks, colliders only in the old set fire exit hooks, and colliders
// in both fire stay hooks. Other triggers' zones count as colliders, so
// two overlapping triggers each see the other enter.
//
// A Trigger is itself a [Collider] with a nil Body.
type Trigger struct {
	system    *PhysicsSystem
	transform *Transform
	radius    float64
	enabled   bool

	enterHooks HookList[TriggerEvent]
	exitHooks  HookList[TriggerEvent]
	stayHooks  HookList[TriggerEvent]

	// Overlap sets for the previous and current Step, ordered by collider
	// registration so events fire deterministically. Small and scanned
	// linearly, like everything else in the pipeline.
	previous []Collider
	current  []Collider

	data    []any
	unbinds []func()
	removed bool
}

// Transform returns the transform the trigger zone is centered on.
func (t *Trigger) Transform() *Transform { return t.transform }

// Center returns the zone's center: the transform's world position.
func (t *Trigger) Center() Vec2 { return t.transform.Position() }

// Radius returns the zone's radius.
func (t *Trigger) Radius() float64 { return t.radius }

// Body returns nil; a trigger zone has no body.
func (t *Trigger) Body() *Body { return nil }

// Enabled reports whether the trigger participates in Step.
func (t *Trigger) Enabled() bool { return t.enabled }

// SetEnabled includes or excludes the trigger from Step. A disabled trigger
// neither tests overlaps nor fires hooks, and its overlap sets are frozen:
// after re-enabling, transitions are computed against the sets from before
// it was disabled, so a collider that never left fires stay rather than a
// second enter.
func (t *Trigger) SetEnabled(enabled bool) { t.enabled = enabled }

// OnEnter registers fn to run when a collider starts overlapping the zone.
// The returned function removes the hook; it is idempotent.
func (t *Trigger) OnEnter(fn func(TriggerEvent)) (remove func()) {
	return t.enterHooks.Add(fn)
}

// OnExit registers fn to run when a collider stops overlapping the zone.
// The returned function removes the hook; it is idempotent.
func (t *Trigger) OnExit(fn func(TriggerEvent)) (remove func()) {
	return t.exitHooks.Add(fn)
}

// OnStay registers fn to run every Step a collider remains in the zone,
// starting the Step after it entered. The returned function removes the
// hook; it is idempotent.
func (t *Trigger) OnStay(fn func(TriggerEvent)) (remove func()) {
	return t.stayHooks.Add(fn)
}

// AddData attaches a data value to the trigger. Order is preserved.
func (t *Trigger) AddData(data any) {
	t.data = append(t.data, data)
}

// Data returns a copy of the data attached to the trigger, in the order
// added.
func (t *Trigger) Data() []any {
	if len(t.data) == 0 {
		return nil
	}
	d := make([]any, len(t.data))
	copy(d, t.data)
	return d
}

// BindTo removes the trigger from its system when obj is destroyed.
func (t *Trigger) BindTo(obj *Object) {
	t.unbinds = append(t.unbinds, obj.OnDestroy(func() {
		t.system.RemoveTrigger(t)
	}))
}

// observe records a collider overlapping the trigger this Step.
func (t *Trigger) observe(c Collider) {
	t.current = append(t.current, c)
}

// fire diffs this Step's overlap set against the previous Step's and runs
// exit, enter, and stay hooks, in that order. It returns the number of
// transition events for the step log. The sets then rotate so the next
// Step diffs against this one.
func (t *Trigger) fire() (events int) {
	for _, c := range t.previous {
		if !containsCollider(t.current, c) {
			events++
			t.exitHooks.Run(TriggerEvent{Trigger: t, Other: c})
		}
	}
	for _, c := range t.current {
		if !containsCollider(t.previous, c) {
			events++
			t.enterHooks.Run(TriggerEvent{Trigger: t, Other: c})
		}
	}
	for _, c := range t.current {
		if containsCollider(t.previous, c) {
			events++
			t.stayHooks.Run(TriggerEvent{Trigger: t, Other: c})
		}
	}
	t.previous = t.current
	t.current = nil
	return events
}

func containsCollider(list []Collider, c Collider) bool {
	for _, cur := range list {
		if cur == c {
			return true
		}
	}
	return false
}
