package chat

import (
	"net/url"
	"sync"
)

// Endpoint describes one registered external relay server.
type Endpoint struct {
	URI      string `json:"uri"`
	APIKey   string `json:"apiKey,omitempty"`
	Protocol string `json:"protocol"`
}

func (e Endpoint) Valid() bool {
	if e.URI == "" || e.Protocol == "" {
		return false
	}
	u, err := url.Parse(e.URI)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Registry holds the known relay endpoints. It is constructed once at
// process start and handed to the relay; nothing else mutates it. The
// registry is not persisted, so a restart empties it.
type Registry struct {
	mu        sync.RWMutex
	endpoints map[string]Endpoint
	order     []string
}

func NewRegistry() *Registry {
	return &Registry{
		endpoints: make(map[string]Endpoint),
	}
}

func (r *Registry) Register(e Endpoint) bool {
	if !e.Valid() {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.endpoints[e.URI]; !exists {
		r.order = append(r.order, e.URI)
	}
	r.endpoints[e.URI] = e
	return true
}

// First returns the endpoint registered earliest, which is the only one
// the relay ever routes to.
func (r *Registry) First() (Endpoint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) == 0 {
		return Endpoint{}, false
	}
	return r.endpoints[r.order[0]], true
}

func (r *Registry) List() []Endpoint {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Endpoint, 0, len(r.order))
	for _, uri := range r.order {
		out = append(out, r.endpoints[uri])
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.endpoints)
}
