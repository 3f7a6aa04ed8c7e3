package event

// Handle identifies a registered listener. The zero Handle is never issued.
type Handle uint64

// Listener receives events of type E.
type Listener[E any] func(E)

type entry[E any] struct {
	handle   Handle
	listener Listener[E]
}

// Listeners is an ordered listener list owned by the component that emits
// the events. Listeners are invoked in registration order.
//
// Listeners is not safe for concurrent use. Components that share one list
// across goroutines must serialize access themselves.
type Listeners[E any] struct {
	entries []entry[E]
	next    Handle
}

// Add registers a listener and returns its handle.
// A nil listener is ignored and the zero Handle is returned.
func (l *Listeners[E]) Add(fn Listener[E]) Handle {
	if fn == nil {
		return 0
	}
	l.next++
	l.entries = append(l.entries, entry[E]{handle: l.next, listener: fn})
	return l.next
}

// Remove unregisters the listener with the given handle.
// Returns false if no such listener is registered.
func (l *Listeners[E]) Remove(h Handle) bool {
	for i, e := range l.entries {
		if e.handle == h {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered listeners.
func (l *Listeners[E]) Len() int {
	return len(l.entries)
}

// Notify delivers ev to every listener in registration order.
// Listeners added or removed during delivery take effect on the next Notify.
func (l *Listeners[E]) Notify(ev E) {
	if len(l.entries) == 0 {
		return
	}
	snapshot := make([]entry[E], len(l.entries))
	copy(snapshot, l.entries)
	for _, e := range snapshot {
		e.listener(ev)
	}
}

// Clear removes all listeners.
func (l *Listeners[E]) Clear() {
	l.entries = nil
}
