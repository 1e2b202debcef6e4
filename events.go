package kvantuma

import (
	"reflect"
	"sync"
)

// EventBus is a type-keyed synchronous publish/subscribe channel letting
// engine modules communicate without direct dependencies. Handlers run in
// subscription order, on the publisher's goroutine.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[reflect.Type][]any
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[reflect.Type][]any)}
}

// Subscribe registers handler for events of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	bus.mu.Lock()
	bus.handlers[t] = append(bus.handlers[t], handler)
	bus.mu.Unlock()
}

// Publish delivers event to every handler subscribed for T. Publishing a
// type nobody subscribed to is a no-op.
func Publish[T any](bus *EventBus, event T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	bus.mu.RLock()
	hs := bus.handlers[t]
	bus.mu.RUnlock()
	for _, h := range hs {
		h.(func(T))(event)
	}
}
