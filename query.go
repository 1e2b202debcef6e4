package kvantuma

import (
	"fmt"
	"unsafe"
)

// Access selects how a query borrows a component's bytes.
type Access uint8

const (
	// AccessRead requests a shared view; holders must not mutate it.
	AccessRead Access = iota
	// AccessWrite requests an exclusive, mutable view. While it is live, no
	// other access to the same column is allowed; the embedding application
	// enforces that by running one phase at a time.
	AccessWrite
)

// ComponentRequest names one component and how it is borrowed. Read and
// Write are chosen per component, independently within a single query.
type ComponentRequest struct {
	ID     ComponentID
	Access Access
}

// View is one row's borrow of a single component's bytes in its column.
// Views are call-scoped; a later spawn into the archetype may move the
// underlying buffer.
type View struct {
	id     ComponentID
	access Access
	data   []byte
}

// ID returns the component identity the view covers.
func (v View) ID() ComponentID {
	return v.id
}

// Access returns the access mode the view was requested with.
func (v View) Access() Access {
	return v.access
}

// Bytes returns the row's bytes. Holders of a Read view must treat the
// slice as immutable.
func (v View) Bytes() []byte {
	return v.data
}

// MutableBytes returns the row's bytes for in-place mutation. Calling it on
// a Read view is a programming error and panics.
func (v View) MutableBytes() []byte {
	if v.access != AccessWrite {
		panic(fmt.Sprintf("ecs: component %d was requested read-only", v.id))
	}
	return v.data
}

// ErasedRow binds one entity to its requested component views, ordered as
// requested.
type ErasedRow struct {
	Entity EntityID
	Views  []View
}

// QueryErased scans every archetype whose schema is a superset of the
// requested identities and yields one row per entity. Identities no
// archetype holds yield no rows, never an error.
func (w *World) QueryErased(requests []ComponentRequest) []ErasedRow {
	ids := make([]ComponentID, len(requests))
	for i := range requests {
		ids[i] = requests[i].ID
	}
	probe := MaskFromIDs(ids)

	var rows []ErasedRow
	cols := make([]*column, len(requests))
	for _, a := range w.archetypes {
		if !a.mask.Contains(probe) {
			continue
		}
		for i := range requests {
			col, ok := a.columnFor(requests[i].ID)
			if !ok {
				panic(fmt.Sprintf("ecs: archetype matched schema but misses column for component %d", requests[i].ID))
			}
			cols[i] = col
		}
		for row, e := range a.entities {
			views := make([]View, len(requests))
			for i := range requests {
				views[i] = View{
					id:     requests[i].ID,
					access: requests[i].Access,
					data:   cols[i].bytesAt(row),
				}
			}
			rows = append(rows, ErasedRow{Entity: e, Views: views})
		}
	}
	return rows
}

// Row1 is one result of a single-component typed query.
type Row1[A any] struct {
	Entity EntityID
	A      *A
}

// Row2 is one result of a two-component typed query.
type Row2[A, B any] struct {
	Entity EntityID
	A      *A
	B      *B
}

// Row3 is one result of a three-component typed query.
type Row3[A, B, C any] struct {
	Entity EntityID
	A      *A
	B      *B
	C      *C
}

// Query1 returns a read view over every entity holding A. The returned
// pointers alias column memory and stay valid until the next spawn into the
// entity's archetype. A type that was never registered yields an empty
// result.
func Query1[A any](w *World) []Row1[A] {
	idA, ok := lookupID[A]()
	if !ok {
		return nil
	}
	rows := w.QueryErased([]ComponentRequest{{ID: idA, Access: AccessRead}})
	out := make([]Row1[A], len(rows))
	for i, r := range rows {
		out[i] = Row1[A]{Entity: r.Entity, A: viewPtr[A](r.Views[0])}
	}
	return out
}

// Query2 returns a read view over every entity holding both A and B.
func Query2[A, B any](w *World) []Row2[A, B] {
	idA, okA := lookupID[A]()
	idB, okB := lookupID[B]()
	if !okA || !okB {
		return nil
	}
	rows := w.QueryErased([]ComponentRequest{
		{ID: idA, Access: AccessRead},
		{ID: idB, Access: AccessRead},
	})
	out := make([]Row2[A, B], len(rows))
	for i, r := range rows {
		out[i] = Row2[A, B]{
			Entity: r.Entity,
			A:      viewPtr[A](r.Views[0]),
			B:      viewPtr[B](r.Views[1]),
		}
	}
	return out
}

// Query3 returns a read view over every entity holding A, B, and C.
func Query3[A, B, C any](w *World) []Row3[A, B, C] {
	idA, okA := lookupID[A]()
	idB, okB := lookupID[B]()
	idC, okC := lookupID[C]()
	if !okA || !okB || !okC {
		return nil
	}
	rows := w.QueryErased([]ComponentRequest{
		{ID: idA, Access: AccessRead},
		{ID: idB, Access: AccessRead},
		{ID: idC, Access: AccessRead},
	})
	out := make([]Row3[A, B, C], len(rows))
	for i, r := range rows {
		out[i] = Row3[A, B, C]{
			Entity: r.Entity,
			A:      viewPtr[A](r.Views[0]),
			B:      viewPtr[B](r.Views[1]),
			C:      viewPtr[C](r.Views[2]),
		}
	}
	return out
}

// viewPtr reinterprets a view's bytes as a typed reference. Sound only
// because the column's layout was established from the same type at
// insertion time.
func viewPtr[T any](v View) *T {
	if len(v.data) == 0 {
		return new(T) // zero-size components carry no bytes
	}
	return (*T)(unsafe.Pointer(&v.data[0]))
}
