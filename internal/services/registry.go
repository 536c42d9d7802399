package services

import (
	"sync"
)

// Registry hands out one Tracker per owner, creating it on first use.
// Trackers live for the lifetime of the process.
type Registry struct {
	mu       sync.Mutex
	trackers map[string]*Tracker
	opts     []Option
}

// NewRegistry creates a registry. The options are applied to every
// tracker it creates.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		trackers: make(map[string]*Tracker),
		opts:     opts,
	}
}

// GetOrCreate returns the tracker for an owner, creating an empty one on
// first access. Concurrent callers for the same owner get the same
// instance.
func (r *Registry) GetOrCreate(ownerID string) *Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.trackers[ownerID]; ok {
		return t
	}
	t := NewTracker(ownerID, r.opts...)
	r.trackers[ownerID] = t
	return t
}

// Len reports how many trackers exist.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.trackers)
}
