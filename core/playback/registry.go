// ABOUTME: Registry of per-item playback keyed by video ID

package playback

import (
	"sync"
	"time"
)

// Registry owns one Playback per item
type Registry struct {
	mu    sync.Mutex
	items map[string]*Playback
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*Playback)}
}

// Get returns the playback for id, creating it on first use
func (r *Registry) Get(id string, duration time.Duration) *Playback {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.items[id]; ok {
		return p
	}
	p := New(duration)
	r.items[id] = p
	return p
}

// Lookup returns the playback for id if one exists
func (r *Registry) Lookup(id string) (*Playback, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	return p, ok
}

// Clear drops all playback state
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]*Playback)
}
