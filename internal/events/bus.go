// Package events provides a small in-memory publish/subscribe bus.
//
// Listeners are keyed by event name and invoked synchronously, in
// registration order, on the goroutine that calls Emit. Subscriptions from
// concurrent emitters are safe; a listener that blocks stalls the emitter.
package events

import (
	"sync"
	"time"
)

// Event is what a channel subscriber receives: the event name plus the
// payload that was emitted.
type Event struct {
	Name string
	At   time.Time
	Data any
}

// Listener receives the payload passed to Emit.
type Listener func(data any)

type subscription struct {
	id int
	fn Listener
}

// Bus is a string-keyed broadcast registry. The zero value is not usable;
// call NewBus.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string][]subscription
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string][]subscription)}
}

// Subscribe registers fn for the named event and returns a cancel function.
// Cancel is idempotent and safe to call concurrently with Emit.
func (b *Bus) Subscribe(name string, fn Listener) (cancel func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[name] = append(b.subs[name], subscription{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[name]
		for i, s := range list {
			if s.id == id {
				b.subs[name] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// SubscribeChan registers a buffered channel listener for the named event
// and returns the receive side plus a cancel function. Emissions that would
// block are dropped so slow consumers cannot stall webhook handling.
func (b *Bus) SubscribeChan(name string, buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 128
	}
	ch := make(chan Event, buffer)
	cancel := b.Subscribe(name, func(data any) {
		select {
		case ch <- Event{Name: name, At: time.Now().UTC(), Data: data}:
		default:
		}
	})
	return ch, cancel
}

// Emit invokes every listener registered for the named event, in
// registration order, on the calling goroutine.
func (b *Bus) Emit(name string, data any) {
	b.mu.RLock()
	list := make([]subscription, len(b.subs[name]))
	copy(list, b.subs[name])
	b.mu.RUnlock()

	for _, s := range list {
		s.fn(data)
	}
}

// ListenerCount reports how many listeners are registered for the named event.
func (b *Bus) ListenerCount(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[name])
}
