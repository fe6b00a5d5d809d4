// Package events provides the in-process publish/subscribe hub that wires
// the application state to its views. Dispatch is synchronous: handlers run
// in subscription order before Emit returns, and a handler may emit further
// events, which complete depth-first before control returns to the outer
// emit.
package events

import "sync"

// Event is a named payload travelling through the bus.
type Event struct {
	Name    string
	Payload any
}

// Handler consumes a published event.
type Handler func(Event)

type entry struct {
	id      uint64
	name    string            // exact-name match, used when match is nil and all is false
	match   func(string) bool // predicate match
	all     bool              // receives everything
	handler Handler
}

// Bus dispatches events to exact-name, predicate and catch-all subscribers.
// The zero value is not usable; call NewBus.
type Bus struct {
	mu      sync.RWMutex
	nextID  uint64
	entries []*entry
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscription undoes a single Subscribe/Match/SubscribeAll call.
type Subscription struct {
	bus *Bus
	id  uint64
}

// Unsubscribe removes the handler. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.remove(s.id)
	s.bus = nil
}

// Subscribe registers a handler for one exact event name.
func (b *Bus) Subscribe(name string, h Handler) *Subscription {
	return b.add(&entry{name: name, handler: h})
}

// Match registers a handler for every event whose name satisfies the
// predicate. Predicates replace the regex subscriptions of a classic
// emitter: a short routing table consulted for each emitted name.
func (b *Bus) Match(pred func(name string) bool, h Handler) *Subscription {
	return b.add(&entry{match: pred, handler: h})
}

// SubscribeAll registers a handler for every event, whatever its name.
// Used for diagnostic logging.
func (b *Bus) SubscribeAll(h Handler) *Subscription {
	return b.add(&entry{all: true, handler: h})
}

// Emit delivers the event to every matching handler, synchronously and in
// subscription order. An event nobody listens to is a silent no-op.
func (b *Bus) Emit(name string, payload any) {
	b.mu.RLock()
	matched := make([]Handler, 0, len(b.entries))
	for _, e := range b.entries {
		switch {
		case e.all:
			matched = append(matched, e.handler)
		case e.match != nil:
			if e.match(name) {
				matched = append(matched, e.handler)
			}
		case e.name == name:
			matched = append(matched, e.handler)
		}
	}
	b.mu.RUnlock()

	// The lock is released before handlers run, so handlers are free to
	// emit, subscribe and unsubscribe re-entrantly.
	ev := Event{Name: name, Payload: payload}
	for _, h := range matched {
		h(ev)
	}
}

func (b *Bus) add(e *entry) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	e.id = b.nextID
	b.entries = append(b.entries, e)
	return &Subscription{bus: b, id: e.id}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, e := range b.entries {
		if e.id == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}
