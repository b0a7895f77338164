// Package runtime wires the registry, the room collections, the session
// negotiator and the workers that feed them. It orchestrates the system
// without containing wire-format or UI logic.
package runtime

import (
	"sync"

	"peerchat/contract"
	"peerchat/domain"
)

// Registry maps opaque connection handles to client records and their
// notifiers. Sinks are attached by reader goroutines at accept time;
// records are created and mutated only on the dispatch goroutine. The
// mutex keeps snapshot readers (reporter, heartbeat lookups) consistent
// with that single writer.
type Registry struct {
	mu      sync.RWMutex
	clients map[domain.Handle]*domain.Client
	sinks   map[domain.Handle]contract.Notifier
	byName  map[string]domain.Handle // latest registration wins
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[domain.Handle]*domain.Client),
		sinks:   make(map[domain.Handle]contract.Notifier),
		byName:  make(map[string]domain.Handle),
	}
}

// Attach binds the write side of a freshly accepted connection to its
// handle, before the registration command is dispatched.
func (r *Registry) Attach(handle domain.Handle, sink contract.Notifier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks[handle] = sink
}

// Register inserts the client record. A username already present is
// shadowed: the most recently registered record becomes authoritative
// for lookups. The old record stays reachable by handle until its
// connection goes away. Documented behavior, not corrected here.
func (r *Registry) Register(client *domain.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[client.Handle] = client
	r.byName[client.Username] = client.Handle
}

func (r *Registry) Get(handle domain.Handle) (*domain.Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clients[handle]
	return c, ok
}

func (r *Registry) FindByUsername(name string) (domain.Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.byName[name]
	return h, ok
}

func (r *Registry) FindByEndpoint(host string, port int) (domain.Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for h, c := range r.clients {
		if c.Host == host && c.ListenPort == port {
			return h, true
		}
	}
	return domain.Handle{}, false
}

func (r *Registry) Sink(handle domain.Handle) (contract.Notifier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sinks[handle]
	return s, ok
}

// Update mutates the record under the write lock. Every field write
// after registration must pass through here: snapshot readers copy
// records under the read lock, so an unguarded write would race them.
func (r *Registry) Update(handle domain.Handle, mutate func(*domain.Client)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[handle]
	if !ok {
		return false
	}
	mutate(c)
	return true
}

// Remove drops the record and its sink. The username index is cleaned
// only when it still points at this handle, so removing a shadowed
// record never unregisters its successor.
func (r *Registry) Remove(handle domain.Handle) (*domain.Client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[handle]
	if ok {
		delete(r.clients, handle)
		if r.byName[c.Username] == handle {
			delete(r.byName, c.Username)
		}
	}
	delete(r.sinks, handle)
	return c, ok
}

// Snapshot copies the live records for observers that must not hold the
// lock while rendering.
func (r *Registry) Snapshot() []domain.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out
}
