package testutil

import (
	"context"
	"sync"

	"github.com/KurtErsin/perfume/internal/event"
)

// Recorder captures every event published on a bus.
type Recorder struct {
	mu     sync.Mutex
	events []event.Event
	unsub  func()
}

// Record subscribes a Recorder to all topics on bus.
func Record(bus *event.Bus) *Recorder {
	r := &Recorder{}
	r.unsub = bus.SubscribeAll(func(_ context.Context, e event.Event) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, e)
	})
	return r
}

// Events returns a copy of all recorded events.
func (r *Recorder) Events() []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]event.Event, len(r.events))
	copy(cp, r.events)
	return cp
}

// Topic returns the recorded events with the given topic.
func (r *Recorder) Topic(topic string) []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.Event
	for _, e := range r.events {
		if e.Topic == topic {
			out = append(out, e)
		}
	}
	return out
}

// Reset clears recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Stop unsubscribes from the bus.
func (r *Recorder) Stop() {
	r.unsub()
}
