package kuiper

import "iter"

// Routine runs a function as a coroutine over an [Object]'s update loop.
//
// The body runs on the object's update hook, a slice per frame, and gives
// control back through its [Yielder]: Next resumes it on the next update,
// Sleep parks it until a [Clock] delay passes. The routine ends when the
// body returns, Stop is called, or the object is destroyed.
//
// Routines replace the hand-rolled state machines that multi-frame behavior
// otherwise turns into:
//
//	r := kuiper.NewRoutine(obj, func(y *kuiper.Yielder) {
//		for {
//			if !y.Sleep(clock, 3) {
//				return
//			}
//			spawnAsteroid()
//		}
//	})
//	r.Start()
//
// A new routine is suspended; nothing runs until Start. Everything is
// single-threaded: the body only ever executes inside Start or an update,
// never concurrently with the host loop.
type Routine struct {
	obj      *Object
	next     func() (yieldInstruction, bool)
	stopIter func()

	lastDT     float64
	suspended  bool
	parked     bool
	started    bool
	done       bool
	running    bool
	removeHook func()
	unbind     func()
}

// Yielder is the body's handle for giving up control. It is only valid
// inside the routine body it was passed to.
//
// Every method reports ok=false once the routine has been stopped; the body
// must then return without calling the yielder again.
type Yielder struct {
	r       *Routine
	yield   func(yieldInstruction) bool
	stopped bool
}

type yieldInstruction interface {
	apply(r *Routine)
}

// nextUpdate resumes the body on the object's next update; the update hook
// stays attached.
type nextUpdate struct{}

func (nextUpdate) apply(*Routine) {}

// resumeLater detaches the routine from updates and hands a resume
// function to game code to call later.
type resumeLater struct {
	schedule func(resume func())
}

func (ri resumeLater) apply(r *Routine) {
	r.park()
	resumed := false
	ri.schedule(func() {
		if resumed {
			return
		}
		resumed = true
		r.unpark()
	})
}

// NewRoutine creates a suspended routine whose body runs over obj's update
// hook once started. The routine stops automatically when obj is
// destroyed. Panics if obj or body is nil.
func NewRoutine(obj *Object, body func(y *Yielder)) *Routine {
	if obj == nil {
		panic("kuiper: nil object")
	}
	if body == nil {
		panic("kuiper: nil routine body")
	}
	r := &Routine{obj: obj, suspended: true}
	r.next, r.stopIter = iter.Pull(func(yield func(yieldInstruction) bool) {
		body(&Yielder{r: r, yield: yield})
	})
	r.unbind = obj.OnDestroy(r.Stop)
	return r
}

// Done reports whether the routine has ended, either because its body
// returned or because it was stopped.
func (r *Routine) Done() bool { return r.done }

// Start runs a new routine's body up to its first yield and then resumes it
// on the object's updates, or resumes a suspended routine. Starting a
// running or finished routine is a no-op.
func (r *Routine) Start() {
	if r.done || !r.suspended {
		return
	}
	r.suspended = false
	if r.parked {
		// Still waiting on an external resume; it will reattach us.
		return
	}
	r.attach()
	if !r.started {
		r.started = true
		r.advance()
	}
}

// Suspend detaches the routine from its object's updates without ending
// it; Start resumes it where it left off. A parked routine can be
// suspended too: its external resume then completes without reattaching,
// and Start picks it up from there.
func (r *Routine) Suspend() {
	if r.done {
		return
	}
	r.suspended = true
	r.detach()
}

// Stop ends the routine for good. The body's pending yield reports
// ok=false and the body runs to its return before Stop comes back, so
// deferred cleanup inside the body happens here. Stopping a finished
// routine is a no-op.
func (r *Routine) Stop() {
	if r.done {
		return
	}
	r.done = true
	r.detach()
	if r.unbind != nil {
		r.unbind()
		r.unbind = nil
	}
	// If the body itself triggered the stop (say by destroying its own
	// object) it is still on the stack; advance releases the iterator once
	// the body yields or returns.
	if !r.running {
		r.stopIter()
	}
}

// advance resumes the body until its next yield and applies the
// instruction it produced.
func (r *Routine) advance() {
	if r.done {
		return
	}
	r.running = true
	instr, ok := r.next()
	r.running = false
	if r.done {
		// Stopped from inside the body; see Stop.
		r.stopIter()
		return
	}
	if !ok {
		r.done = true
		r.detach()
		if r.unbind != nil {
			r.unbind()
			r.unbind = nil
		}
		return
	}
	instr.apply(r)
}

func (r *Routine) attach() {
	if r.removeHook != nil {
		return
	}
	r.removeHook = r.obj.OnUpdate(func(dt float64) {
		r.lastDT = dt
		r.advance()
	})
}

func (r *Routine) detach() {
	if r.removeHook != nil {
		r.removeHook()
		r.removeHook = nil
	}
}

func (r *Routine) park() {
	r.detach()
	r.parked = true
}

func (r *Routine) unpark() {
	if r.done {
		return
	}
	r.parked = false
	if !r.suspended {
		r.attach()
	}
}

// Next suspends the routine until the next update of its object and
// returns that update's elapsed seconds.
func (y *Yielder) Next() (dt float64, ok bool) {
	if y.stopped || !y.yield(nextUpdate{}) {
		y.stopped = true
		return 0, false
	}
	return y.r.lastDT, true
}

// Park suspends the routine until the resume function is called. schedule
// receives resume and arranges for something to call it later: a clock, an
// animation's completion, a trigger hook. resume is idempotent, and the
// parked routine actually continues on its object's first update after
// resume. Suspend and Stop win over resume.
func (y *Yielder) Park(schedule func(resume func())) (ok bool) {
	if y.stopped || !y.yield(resumeLater{schedule: schedule}) {
		y.stopped = true
		return false
	}
	return true
}

// Sleep parks the routine until delay seconds pass on c, then continues it
// on its object's next update.
func (y *Yielder) Sleep(c *Clock, delay float64) (ok bool) {
	return y.Park(func(resume func()) {
		c.After(delay, resume)
	})
}
