package kuiper

import "container/heap"

// Clock schedules callbacks on simulation time. It has no relation to wall
// time: Update(dt) is what advances it, typically once per frame alongside
// [Scene.Update] and [PhysicsSystem.Step]. Pausing the game is as simple as
// not calling Update.
//
// Callbacks fire during Update in due-time order; ties fire in schedule
// order. A callback may schedule and cancel other callbacks freely,
// including ones due immediately, which then fire in the same Update.
type Clock struct {
	now    float64
	events eventHeap
	seq    int
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the clock's current simulation time in seconds.
func (c *Clock) Now() float64 { return c.now }

// Len returns the number of pending callbacks. Cancelled callbacks count
// until their due time passes; cancellation only marks them.
func (c *Clock) Len() int { return len(c.events) }

// Update advances the clock by dt seconds and fires every callback that
// has come due. Panics if dt is negative or not finite.
func (c *Clock) Update(dt float64) {
	checkFiniteScalar(dt, "dt")
	if dt < 0 {
		panic("kuiper: negative dt")
	}
	c.now += dt
	for len(c.events) > 0 && c.events[0].at <= c.now {
		e := heap.Pop(&c.events).(*scheduledEvent)
		if e.cancelled {
			continue
		}
		e.fn()
	}
}

// After schedules fn to run once, delay seconds from now. The returned
// function cancels it; cancelling after it fired is a no-op. A zero delay
// fires on the next Update. Panics if delay is negative or not finite.
func (c *Clock) After(delay float64, fn func()) (cancel func()) {
	checkFiniteScalar(delay, "delay")
	if delay < 0 {
		panic("kuiper: negative delay")
	}
	e := &scheduledEvent{at: c.now + delay, seq: c.seq, fn: fn}
	c.seq++
	heap.Push(&c.events, e)
	return func() { e.cancelled = true }
}

// Every schedules fn to run every interval seconds, starting one interval
// from now. The returned function stops it. Panics if interval is zero,
// negative, or not finite.
func (c *Clock) Every(interval float64, fn func()) (cancel func()) {
	checkFiniteScalar(interval, "interval")
	if interval <= 0 {
		panic("kuiper: interval must be positive")
	}
	stopped := false
	var schedule func()
	schedule = func() {
		c.After(interval, func() {
			if stopped {
				return
			}
			fn()
			// fn may have stopped the ticker; only then skip rescheduling.
			if !stopped {
				schedule()
			}
		})
	}
	schedule()
	return func() { stopped = true }
}

type scheduledEvent struct {
	at        float64
	seq       int
	fn        func()
	cancelled bool
}

// eventHeap is a min-heap on (at, seq): earliest due time first, schedule
// order for ties.
type eventHeap []*scheduledEvent

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(*scheduledEvent)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}
