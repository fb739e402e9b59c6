// Package anchor keeps the world positions resolved for catalog buildings.
// An anchor is resolved once and never moves afterwards.
package anchor

import (
	"sync"

	"github.com/golang/geo/r3"

	"landmark/internal/models"
	geo "landmark/models"
)

// Resolver turns a geodetic coordinate into a world position. It reports
// false while the tracking backend cannot resolve coordinates yet.
type Resolver interface {
	Resolve(c geo.Coordinates) (r3.Vector, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(c geo.Coordinates) (r3.Vector, bool)

func (f ResolverFunc) Resolve(c geo.Coordinates) (r3.Vector, bool) { return f(c) }

// Status is the outcome of a registration attempt.
type Status int

const (
	// Unresolved means the resolver could not place the building yet; the
	// caller retries on a later tick.
	Unresolved Status = iota
	Registered
	AlreadyPresent
)

func (s Status) String() string {
	switch s {
	case Registered:
		return "registered"
	case AlreadyPresent:
		return "already-present"
	default:
		return "unresolved"
	}
}

// Entry pairs a building with its resolved world position.
type Entry struct {
	Building models.Building
	Position r3.Vector
}

// Registry maps building names to anchors. Entries are append-only and keep
// insertion order. Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	resolver Resolver
	index    map[string]int
	entries  []Entry
}

func NewRegistry(resolver Resolver) *Registry {
	return &Registry{
		resolver: resolver,
		index:    make(map[string]int),
	}
}

// Register resolves and stores an anchor for b. Registering a name that is
// already present is a no-op.
func (r *Registry) Register(b models.Building) Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(b)
}

func (r *Registry) register(b models.Building) Status {
	if _, ok := r.index[b.Name]; ok {
		return AlreadyPresent
	}
	pos, ok := r.resolver.Resolve(b.Coordinates)
	if !ok {
		return Unresolved
	}
	r.index[b.Name] = len(r.entries)
	r.entries = append(r.entries, Entry{Building: b, Position: pos})
	return Registered
}

// RegisterAll attempts every building in order and returns how many were
// newly registered.
func (r *Registry) RegisterAll(buildings []models.Building) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, b := range buildings {
		if r.register(b) == Registered {
			n++
		}
	}
	return n
}

// Lookup returns the anchor position of the named building.
func (r *Registry) Lookup(name string) (r3.Vector, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return r3.Vector{}, false
	}
	return r.entries[i].Position, true
}

// Contains reports whether name has an anchor.
func (r *Registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[name]
	return ok
}

// Entries returns a snapshot of all anchors in insertion order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
