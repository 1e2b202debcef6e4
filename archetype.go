package kvantuma

// Archetype holds every entity sharing one exact schema: the schema mask,
// one column per component identity, and the row-parallel entity list. A row
// index denotes the same logical entity across every column, and the schema
// never changes after creation.
type Archetype struct {
	mask     Mask
	columns  []*column // sorted by component identity
	entities []EntityID
}

// newArchetype pairs a mask with columns whose identities are exactly the
// mask's bits. The caller owns that correspondence; it is not re-derived.
func newArchetype(mask Mask, columns []*column) *Archetype {
	return &Archetype{mask: mask, columns: columns}
}

// Mask returns the schema mask.
func (a *Archetype) Mask() Mask {
	return a.mask
}

// Len returns the number of rows.
func (a *Archetype) Len() int {
	return len(a.entities)
}

// Entities returns the row-parallel entity list. Row i of every column
// belongs to the entity at index i.
func (a *Archetype) Entities() []EntityID {
	return a.entities
}

// HasComponents reports whether the schema covers every listed identity.
func (a *Archetype) HasComponents(ids []ComponentID) bool {
	return a.mask.Contains(MaskFromIDs(ids))
}

// columnFor linearly scans for the column holding id.
func (a *Archetype) columnFor(id ComponentID) (*column, bool) {
	if !a.mask.has(id) {
		return nil, false
	}
	for _, c := range a.columns {
		if c.meta.ID == id {
			return c, true
		}
	}
	return nil, false
}

// addEntity appends a row's entity identity. It must run exactly once per
// row, in the same placement that pushes one value onto every column, so the
// entity list and all columns advance in lockstep.
func (a *Archetype) addEntity(id EntityID) {
	a.entities = append(a.entities, id)
}

// drop tears down every column, running per-element destructors.
func (a *Archetype) drop() {
	for _, c := range a.columns {
		c.drop()
	}
	a.entities = nil
}
