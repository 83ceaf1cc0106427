package kuiper

// HookList is an ordered list of callbacks sharing an argument type.
//
// The zero value is ready to use. Add returns a removal function that is
// safe to call more than once. Run iterates a snapshot, so hooks may add and
// remove hooks (or destroy objects) freely: changes take effect on the next
// Run, and a hook removed mid-run still fires in the pass that started
// before its removal.
//
// Object update and destroy hooks are built on HookList. Game code can use
// it for its own listener lists.
type HookList[T any] struct {
	entries []*hookEntry[T]
}

type hookEntry[T any] struct {
	fn func(T)
}

// Add appends fn to the list and returns a function that removes it. The
// removal function is idempotent.
func (l *HookList[T]) Add(fn func(T)) (remove func()) {
	e := &hookEntry[T]{fn: fn}
	l.entries = append(l.entries, e)

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		for i, cur := range l.entries {
			if cur == e {
				copy(l.entries[i:], l.entries[i+1:])
				l.entries[len(l.entries)-1] = nil
				l.entries = l.entries[:len(l.entries)-1]
				return
			}
		}
	}
}

// Run calls every hook in registration order with v.
func (l *HookList[T]) Run(v T) {
	for _, e := range l.snapshot() {
		e.fn(v)
	}
}

// Len returns the number of registered hooks.
func (l *HookList[T]) Len() int { return len(l.entries) }

// snapshot copies the entry slice so hooks can mutate the list mid-run.
func (l *HookList[T]) snapshot() []*hookEntry[T] {
	if len(l.entries) == 0 {
		return nil
	}
	s := make([]*hookEntry[T], len(l.entries))
	copy(s, l.entries)
	return s
}
