package kvantuma

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// EntityID is an opaque handle identifying one logical record across its
// archetype's columns. Identities increase monotonically and are never
// reused or reassigned.
type EntityID uint32

// World owns every archetype and the entity allocator, and routes each spawn
// to the archetype matching its exact schema. One logical owner mutates the
// world at a time; spawn and query take no internal locks.
type World struct {
	cfg        Config
	log        *zap.Logger
	archetypes []*Archetype
	bySchema   map[uint64][]int // schema digest -> archetype indices
	nextEntity EntityID
	resources  *Resources
	events     *EventBus
}

// NewWorld creates an empty world. An invalid Config panics; storage limits
// are configuration-time faults, not runtime errors.
func NewWorld(opts ...Option) *World {
	w := &World{
		cfg:       DefaultConfig(),
		log:       zap.NewNop(),
		resources: NewResources(),
		events:    NewEventBus(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.cfg.validate(); err != nil {
		panic(err)
	}
	w.bySchema = make(map[uint64][]int, w.cfg.ArchetypeTableSize)
	return w
}

// Spawn places one bundle of typed component values into the archetype
// matching the bundle's exact schema, creating the archetype on first use,
// and returns the new entity's identity. Bundle order does not matter; the
// sorted identity set defines the schema.
func (w *World) Spawn(components ...Component) EntityID {
	records := make([]Erased, len(components))
	for i, c := range components {
		m := c.Meta()
		records[i] = Erased{
			ID:     m.ID,
			Data:   c.data(),
			Layout: m.Layout,
			Kind:   m.Kind,
			Drop:   m.Drop,
		}
	}
	return w.SpawnErased(records)
}

// SpawnErased is the insertion path for records whose static types are not
// known at the call site. Same algorithm as Spawn. The records slice is
// sorted in place by identity.
func (w *World) SpawnErased(records []Erased) EntityID {
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	ids := make([]ComponentID, len(records))
	for i := range records {
		ids[i] = records[i].ID
		if i > 0 && records[i].ID == records[i-1].ID {
			panic(fmt.Sprintf("ecs: duplicate component %d in spawn bundle", records[i].ID))
		}
	}

	a := w.archetypeForSchema(ids, records)
	for i := range records {
		col, ok := a.columnFor(records[i].ID)
		if !ok {
			panic(fmt.Sprintf("ecs: archetype matched schema but misses column for component %d", records[i].ID))
		}
		col.pushErased(&records[i])
	}

	e := w.nextEntity
	w.nextEntity++
	a.addEntity(e)
	return e
}

// archetypeForSchema finds the archetype holding exactly this schema, or
// materializes it. Routing uses mask equality, never superset containment: a
// wider archetype absorbing a smaller bundle would leave its remaining
// columns short for that row and break row lockstep.
func (w *World) archetypeForSchema(sorted []ComponentID, records []Erased) *Archetype {
	digest := digestOfIDs(sorted)
	mask := MaskFromIDs(sorted)
	for _, idx := range w.bySchema[digest] {
		if w.archetypes[idx].mask == mask {
			return w.archetypes[idx]
		}
	}

	columns := make([]*column, len(records))
	for i := range records {
		columns[i] = newColumn(w.cfg.InitialColumnCapacity, records[i].meta())
	}
	a := newArchetype(mask, columns)
	w.archetypes = append(w.archetypes, a)
	w.bySchema[digest] = append(w.bySchema[digest], len(w.archetypes)-1)
	w.log.Debug("archetype created",
		zap.Int("index", len(w.archetypes)-1),
		zap.Int("components", len(sorted)),
	)
	return a
}

// Close tears down every archetype, running each externally-resourced
// element's drop function exactly once. The world must not be used after
// Close; calling it again is a no-op.
func (w *World) Close() {
	if w.archetypes == nil {
		return
	}
	for _, a := range w.archetypes {
		a.drop()
	}
	w.log.Debug("world closed",
		zap.Int("archetypes", len(w.archetypes)),
		zap.Uint32("entities", uint32(w.nextEntity)),
	)
	w.archetypes = nil
	w.bySchema = nil
}

// EntityCount returns how many entities have been spawned.
func (w *World) EntityCount() int {
	return int(w.nextEntity)
}

// ArchetypeCount returns how many distinct schemas have been materialized.
func (w *World) ArchetypeCount() int {
	return len(w.archetypes)
}

// Archetypes returns the materialized archetypes, in creation order. The
// slice is owned by the world; callers only inspect it.
func (w *World) Archetypes() []*Archetype {
	return w.archetypes
}

// Resources returns the world-global one-value-per-type store.
func (w *World) Resources() *Resources {
	return w.resources
}

// Events returns the world's event bus.
func (w *World) Events() *EventBus {
	return w.events
}
