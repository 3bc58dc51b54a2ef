// Package registry implements the process-wide mapping from identity token
// to canonical sentinel instance. It's the one piece of shared mutable
// state in the module, and the thing that lets copies and deserialized
// envelopes resolve back to the instance they came from.
package registry

import (
	"errors"
	"fmt"
	"sync"
)

// ErrAlreadyRegistered is returned by Register when a key has been
// registered before. Keys identify canonical instances, so a double
// registration always indicates a bug in the caller.
var ErrAlreadyRegistered = errors.New("registry: key already registered")

// Registry is a concurrent-safe mapping from key to canonical instance
// that also remembers registration order. Entries are never removed;
// canonical instances live as long as the process.
type Registry[K comparable, V any] struct {
	items map[K]V
	mu    sync.RWMutex
	order []K
}

func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{items: make(map[K]V)}
}

// Register stores val as the canonical instance for key, returning
// ErrAlreadyRegistered if key has been seen before.
func (r *Registry[K, V]) Register(key K, val V) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; exists {
		return fmt.Errorf("%w: %v", ErrAlreadyRegistered, key)
	}

	r.items[key] = val
	r.order = append(r.order, key)
	return nil
}

// Lookup returns the canonical instance for key.
func (r *Registry[K, V]) Lookup(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	val, ok := r.items[key]
	return val, ok
}

// Len returns the number of registered instances.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// All returns every registered instance in registration order.
func (r *Registry[K, V]) All() []V {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]V, len(r.order))
	for i, key := range r.order {
		all[i] = r.items[key]
	}
	return all
}
