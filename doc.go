// Package kvantuma implements the archetype-based entity/component storage
// core of the kvantuma engine: a runtime-typed, columnar in-memory store for
// small fixed-layout records.
//
// Entities sharing the same set of component types live in one Archetype,
// stored as one contiguous column per component type. Spawning routes a
// bundle of component values to the archetype holding exactly that schema,
// creating it on first use; queries scan every archetype whose schema covers
// the requested components and borrow column memory directly, without
// copying.
//
// The store is single-writer: one logical owner mutates the World at a time,
// and query views are call-scoped borrows that must not be retained across a
// spawn (growth may move a column's buffer). Component values must not
// contain Go pointers, because column memory is not scanned by the garbage
// collector; a component owning external resources keeps a plain handle and
// registers a drop function through Extern, which runs exactly once per
// stored element when the world is closed.
package kvantuma
