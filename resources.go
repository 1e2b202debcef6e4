package kvantuma

import (
	"reflect"
	"sync"
)

// Resources stores at most one value per type: world-global singletons such
// as frame timing, input state, or asset caches. Safe for concurrent use.
type Resources struct {
	mu    sync.RWMutex
	items map[reflect.Type]any
}

// NewResources creates an empty store.
func NewResources() *Resources {
	return &Resources{items: make(map[reflect.Type]any)}
}

// PutResource stores value, replacing any previous value of the same type.
func PutResource[T any](r *Resources, value T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.Lock()
	r.items[t] = value
	r.mu.Unlock()
}

// GetResource returns the stored value of type T, or the zero value and
// false when absent.
func GetResource[T any](r *Resources) (T, bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.RLock()
	v, ok := r.items[t]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// RemoveResource drops the stored value of type T, if any.
func RemoveResource[T any](r *Resources) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.Lock()
	delete(r.items, t)
	r.mu.Unlock()
}

// Clear drops every stored value.
func (r *Resources) Clear() {
	r.mu.Lock()
	r.items = make(map[reflect.Type]any)
	r.mu.Unlock()
}
