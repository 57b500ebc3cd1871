package workspace

import (
	"sync"

	"github.com/scrawl/scrawl-cli/pkg/debug"
)

// Registry holds the close guard for every live window, keyed by window
// id. It is the owning reference: a guard is registered before its window
// becomes visible and released when the window closes, so a guard's
// lifetime never outlives its window.
//
// The registry is safe for concurrent use; command goroutines may look up
// guards while the event loop registers and releases them.
type Registry struct {
	mu     sync.Mutex
	guards map[int]*CloseGuard
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{guards: make(map[int]*CloseGuard)}
}

// Register stores the guard for a window id. Registering an id twice is a
// caller bug: the registry logs it and keeps the existing guard.
func (r *Registry) Register(id int, g *CloseGuard) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.guards[id]; exists {
		debug.Log("registry: window %d already registered", id)
		return
	}
	r.guards[id] = g
}

// Release removes the guard for a closed window. Releasing an unknown id
// is logged and ignored.
func (r *Registry) Release(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.guards[id]; !exists {
		debug.Log("registry: release of unknown window %d", id)
		return
	}
	delete(r.guards, id)
}

// Lookup returns the guard registered for a window id.
func (r *Registry) Lookup(id int) (*CloseGuard, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.guards[id]
	return g, ok
}

// Len returns the number of registered guards.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.guards)
}
