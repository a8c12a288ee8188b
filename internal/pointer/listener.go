// Package pointer provides the process-wide pointer-down listener registry
// and the screen geometry used for containment tests.
package pointer

import (
	"sync"
)

// Point is a terminal cell position
type Point struct {
	X int
	Y int
}

// Rect is a rectangle of terminal cells
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether p lies inside r. Empty rectangles contain nothing.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Event is a pointer-down notification
type Event struct {
	Target Point
}

// Listener receives pointer-down events
type Listener func(Event)

// Registry holds listeners for pointer-down events
type Registry struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[uint64]Listener
	order     []uint64
}

// Default is the process-wide registry
var Default = NewRegistry()

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		listeners: make(map[uint64]Listener),
	}
}

// Subscribe registers l and returns the subscription that owns it
func (r *Registry) Subscribe(l Listener) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.listeners[id] = l
	r.order = append(r.order, id)

	return &Subscription{registry: r, id: id}
}

func (r *Registry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listeners[id]; !ok {
		return
	}
	delete(r.listeners, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
}

// Dispatch calls every registered listener in registration order.
// Listeners run outside the lock so they may subscribe or release.
func (r *Registry) Dispatch(ev Event) {
	r.mu.Lock()
	snapshot := make([]Listener, 0, len(r.order))
	for _, id := range r.order {
		snapshot = append(snapshot, r.listeners[id])
	}
	r.mu.Unlock()

	for _, l := range snapshot {
		l(ev)
	}
}

// Len returns the number of registered listeners
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listeners)
}

// Subscription is the capability to deregister one listener
type Subscription struct {
	registry *Registry
	id       uint64
	once     sync.Once
}

// Release deregisters the listener. Only the first call has an effect.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.registry.remove(s.id)
	})
}
