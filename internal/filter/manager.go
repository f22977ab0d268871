package filter

import (
	"sync"

	"github.com/KurtErsin/perfume/pkg/models"
)

// Change kinds reported to listeners.
const (
	KindGender    = "gender"
	KindBrand     = "brand"
	KindSearch    = "search"
	KindNote      = "note"
	KindSize100ml = "size100ml"
	KindNiche     = "niche"
	KindNew       = "new"
	KindClear     = "clear"
)

// Change describes one state transition.
type Change struct {
	Kind     string
	Previous State
	Current  State
}

// Listener is notified after the managed state changes.
type Listener func(Change)

// Manager is the single owner of one session's State. Reads return copies;
// all writes go through the mutators, which notify listeners synchronously
// when the state actually changed.
type Manager struct {
	mu        sync.Mutex
	state     State
	listeners map[int]Listener
	nextID    int
}

// NewManager returns a Manager holding the default state.
func NewManager() *Manager {
	return NewManagerWith(Default())
}

// NewManagerWith returns a Manager seeded with initial.
func NewManagerWith(initial State) *Manager {
	return &Manager{state: initial.clone(), listeners: make(map[int]Listener)}
}

// State returns a copy of the current state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

// Subscribe registers l and returns a function that removes it.
func (m *Manager) Subscribe(l Listener) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

func (m *Manager) ToggleGender(g GenderFilter) State {
	return m.apply(KindGender, func(s State) State { return s.ToggleGender(g) })
}

func (m *Manager) SetGender(g GenderFilter) State {
	return m.apply(KindGender, func(s State) State { return s.SetGender(g) })
}

func (m *Manager) SetBrand(b string) State {
	return m.apply(KindBrand, func(s State) State { return s.SetBrand(b) })
}

func (m *Manager) SetSearch(q string) State {
	return m.apply(KindSearch, func(s State) State { return s.SetSearch(q) })
}

func (m *Manager) ToggleNote(n models.Note) State {
	return m.apply(KindNote, func(s State) State { return s.ToggleNote(n) })
}

func (m *Manager) SetSize100ml(on bool) State {
	return m.apply(KindSize100ml, func(s State) State { return s.SetSize100ml(on) })
}

func (m *Manager) SetNiche(on bool) State {
	return m.apply(KindNiche, func(s State) State { return s.SetNiche(on) })
}

func (m *Manager) SetNew(on bool) State {
	return m.apply(KindNew, func(s State) State { return s.SetNew(on) })
}

// Clear resets the selections and all three toggles.
func (m *Manager) Clear() State {
	return m.apply(KindClear, func(s State) State { return s.Clear() })
}

// apply runs fn under the lock, then notifies listeners outside it so a
// listener may read the manager again.
func (m *Manager) apply(kind string, fn func(State) State) State {
	m.mu.Lock()
	prev := m.state
	next := fn(prev)
	changed := !prev.Equal(next)
	if changed {
		m.state = next
	}
	var listeners []Listener
	if changed {
		listeners = make([]Listener, 0, len(m.listeners))
		for _, l := range m.listeners {
			listeners = append(listeners, l)
		}
	}
	m.mu.Unlock()

	for _, l := range listeners {
		l(Change{Kind: kind, Previous: prev.clone(), Current: next.clone()})
	}
	return next.clone()
}
