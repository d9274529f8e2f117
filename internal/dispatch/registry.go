package dispatch

import "sync"

// Registry maintains the ordered set of active subscribers.
//
// Insertion order determines priority: the most recently subscribed entity is
// tried first. A subscriber appears at most once; re-subscribing an already
// present subscriber is a no-op so that repeated activation cannot reshuffle
// priorities. Membership is tracked in a set alongside the order slice, so
// presence checks stay O(1) as subscriber counts grow.
type Registry struct {
	mu      sync.RWMutex
	order   []Subscriber
	present map[Subscriber]struct{}
}

// NewRegistry creates an empty subscriber registry.
func NewRegistry() *Registry {
	return &Registry{
		present: make(map[Subscriber]struct{}),
	}
}

// Subscribe inserts a subscriber at the front of the priority order.
// Returns false without reordering if the subscriber is already present.
func (r *Registry) Subscribe(s Subscriber) bool {
	if s == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.present[s]; ok {
		return false
	}

	r.order = append([]Subscriber{s}, r.order...)
	r.present[s] = struct{}{}
	return true
}

// Unsubscribe removes a subscriber by identity.
// Returns false if the subscriber was not present; absence is not an error.
func (r *Registry) Unsubscribe(s Subscriber) bool {
	if s == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.present[s]; !ok {
		return false
	}

	delete(r.present, s)
	for i, existing := range r.order {
		if existing == s {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Snapshot returns a copy of the current priority order.
// The copy is safe to iterate while subscribers mutate the registry.
func (r *Registry) Snapshot() []Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Subscriber, len(r.order))
	copy(out, r.order)
	return out
}

// Contains returns true if the subscriber is currently registered.
func (r *Registry) Contains(s Subscriber) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.present[s]
	return ok
}

// Len returns the number of registered subscribers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Clear removes all subscribers.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
	r.present = make(map[Subscriber]struct{})
}
