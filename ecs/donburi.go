package ecs

import (
	"github.com/timoffex/kuiper"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for body collisions.
var CollisionEventType = events.NewEventType[kuiper.Collision]()

// TriggerEventType is the Donburi event type for trigger transitions.
var TriggerEventType = events.NewEventType[TriggerEvent]()

// Transition is the phase of a trigger overlap: a collider entering the
// zone, staying inside it, or leaving it.
type Transition int

const (
	TransitionEnter Transition = iota
	TransitionExit
	TransitionStay
)

func (tr Transition) String() string {
	switch tr {
	case TransitionEnter:
		return "enter"
	case TransitionExit:
		return "exit"
	case TransitionStay:
		return "stay"
	}
	return "unknown"
}

// TriggerEvent is a trigger transition published to a Donburi world. It
// wraps [kuiper.TriggerEvent] with the transition that produced it, since
// enter, exit, and stay land in the same event stream here.
type TriggerEvent struct {
	Transition Transition
	Trigger    *kuiper.Trigger
	Other      kuiper.Collider
}

// BindCollisions publishes every collision sys resolves to world, one event
// per colliding pair. The returned function unbinds; it is idempotent.
func BindCollisions(world donburi.World, sys *kuiper.PhysicsSystem) (unbind func()) {
	return sys.OnCollision(func(c kuiper.Collision) {
		CollisionEventType.Publish(world, c)
	})
}

// BindBody publishes b's collisions to world. Unlike BindCollisions this
// follows one body, with the event's Body field always b. The returned
// function unbinds; it is idempotent.
func BindBody(world donburi.World, b *kuiper.Body) (unbind func()) {
	return b.OnCollision(func(c kuiper.Collision) {
		CollisionEventType.Publish(world, c)
	})
}

// BindTrigger publishes t's enter, exit, and stay transitions to world as
// [TriggerEvent]s. The returned function unbinds all three; it is
// idempotent.
func BindTrigger(world donburi.World, t *kuiper.Trigger) (unbind func()) {
	publish := func(tr Transition) func(kuiper.TriggerEvent) {
		return func(e kuiper.TriggerEvent) {
			TriggerEventType.Publish(world, TriggerEvent{
				Transition: tr,
				Trigger:    e.Trigger,
				Other:      e.Other,
			})
		}
	}
	removes := []func(){
		t.OnEnter(publish(TransitionEnter)),
		t.OnExit(publish(TransitionExit)),
		t.OnStay(publish(TransitionStay)),
	}
	return func() {
		for _, remove := range removes {
			remove()
		}
	}
}
