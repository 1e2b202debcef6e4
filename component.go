package kvantuma

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// ComponentID is a process-stable integer identity for a component type.
// The zero value is a reserved sentinel and is never assigned.
type ComponentID uint32

// MaxComponentTypes is the hard ceiling on distinct component types a world
// can ever see. Schema masks are sized to it.
const MaxComponentTypes = 256

// ComponentKind classifies how a component's storage is torn down.
type ComponentKind uint8

const (
	// KindPod marks plain-data components; their bytes are released without
	// per-element cleanup.
	KindPod ComponentKind = iota
	// KindExtern marks components owning external resources; their drop
	// function runs once per live element on teardown.
	KindExtern
)

// DropFn releases the external resources of a single component element,
// given a pointer to its first byte in column storage.
type DropFn func(unsafe.Pointer)

// Layout describes the memory layout of one component element.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutOf returns the layout of T.
func LayoutOf[T any]() Layout {
	var zero T
	return Layout{Size: unsafe.Sizeof(zero), Align: unsafe.Alignof(zero)}
}

// ComponentMeta is everything a column needs to store and destroy one
// component type: identity, layout, classification, and an optional drop
// function (present iff Kind is KindExtern).
type ComponentMeta struct {
	ID     ComponentID
	Kind   ComponentKind
	Layout Layout
	Drop   DropFn
}

// Component is one concrete component value bound for column storage.
// Values are built with Pod or Extern, so the metadata a column receives
// always matches the bytes it copies.
type Component interface {
	Meta() ComponentMeta
	data() unsafe.Pointer
}

type componentValue[T any] struct {
	value T
	meta  ComponentMeta
}

func (c *componentValue[T]) Meta() ComponentMeta  { return c.meta }
func (c *componentValue[T]) data() unsafe.Pointer { return unsafe.Pointer(&c.value) }

// Pod wraps a plain-data component value for spawning. The value must not
// contain Go pointers; column memory is invisible to the garbage collector.
func Pod[T any](value T) Component {
	return &componentValue[T]{
		value: value,
		meta: ComponentMeta{
			ID:     ID[T](),
			Kind:   KindPod,
			Layout: LayoutOf[T](),
		},
	}
}

// Extern wraps a component value that owns external resources, such as a GPU
// buffer or file handle. The drop function runs exactly once per stored
// element when its archetype is torn down, receiving the element in place.
func Extern[T any](value T, drop func(*T)) Component {
	return &componentValue[T]{
		value: value,
		meta: ComponentMeta{
			ID:     ID[T](),
			Kind:   KindExtern,
			Layout: LayoutOf[T](),
			Drop: func(p unsafe.Pointer) {
				drop((*T)(p))
			},
		},
	}
}

// Erased is a component value known only by identity, bytes, and layout.
// It is the insertion form for call sites with no static component type,
// such as scene deserialization.
type Erased struct {
	ID     ComponentID
	Data   unsafe.Pointer
	Layout Layout
	Kind   ComponentKind
	Drop   DropFn
}

// ErasedOf builds a plain-data erased record over the value at p, using T's
// identity and layout. A convenience for call sites that erase a known type
// up front.
func ErasedOf[T any](p *T) Erased {
	return Erased{
		ID:     ID[T](),
		Data:   unsafe.Pointer(p),
		Layout: LayoutOf[T](),
		Kind:   KindPod,
	}
}

func (e *Erased) meta() ComponentMeta {
	return ComponentMeta{ID: e.ID, Kind: e.Kind, Layout: e.Layout, Drop: e.Drop}
}

// registry assigns component identities lazily, process-wide. Initialized on
// first use, never torn down during normal operation.
type registry struct {
	mu   sync.Mutex
	ids  map[reflect.Type]ComponentID
	next ComponentID
}

var typeRegistry = &registry{
	ids:  make(map[reflect.Type]ComponentID, MaxComponentTypes),
	next: 1,
}

// ID returns the identity for T, assigning the next free one on first use.
// Identities are stable for the process lifetime, never reused, and never 0.
func ID[T any]() ComponentID {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r := typeRegistry
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.ids[t]; ok {
		return id
	}
	if int(r.next) >= MaxComponentTypes {
		panic(fmt.Sprintf("ecs: cannot register component %s: maximum number of component types (%d) reached", t, MaxComponentTypes))
	}
	id := r.next
	r.ids[t] = id
	r.next++
	return id
}

// lookupID probes the registry without assigning an identity. The typed
// query layer uses it so that querying a never-registered type yields an
// empty result instead of registering the type.
func lookupID[T any]() (ComponentID, bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r := typeRegistry
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.ids[t]
	return id, ok
}

// ResetRegistry clears all identity assignments. It exists for tests that
// need a fresh identity space; worlds created before a reset must not be
// used afterwards.
func ResetRegistry() {
	r := typeRegistry
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = make(map[reflect.Type]ComponentID, MaxComponentTypes)
	r.next = 1
}
