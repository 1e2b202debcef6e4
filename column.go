package kvantuma

import "unsafe"

// defaultColumnCapacity is the element capacity a fresh column starts with
// when an archetype is first materialized for a schema.
const defaultColumnCapacity = 64

// column is the contiguous storage for one component type within one
// archetype: a manually grown buffer addressed by stride, the live element
// count, and the component's metadata. The backing []uint64 keeps the
// allocation alive for the garbage collector and 8-byte aligned, which
// satisfies every Go alignment class.
type column struct {
	buf  []uint64
	ptr  unsafe.Pointer
	len  int
	cap  int
	meta ComponentMeta
}

// newColumn allocates zeroed storage for capacity elements of meta's layout.
func newColumn(capacity int, meta ComponentMeta) *column {
	c := &column{cap: capacity, meta: meta}
	c.buf, c.ptr = allocElems(capacity, meta.Layout.Size)
	return c
}

// allocElems allocates zeroed storage for n elements of the given size.
func allocElems(n int, size uintptr) ([]uint64, unsafe.Pointer) {
	words := (uintptr(n)*size + 7) / 8
	if words == 0 {
		words = 1 // keep a valid base pointer for zero-size layouts
	}
	buf := make([]uint64, words)
	return buf, unsafe.Pointer(&buf[0])
}

// elem returns a pointer to the first byte of element i.
func (c *column) elem(i int) unsafe.Pointer {
	return unsafe.Add(c.ptr, uintptr(i)*c.meta.Layout.Size)
}

// push byte-copies one typed component value into the next free slot,
// growing first if at capacity. The caller guarantees the value's identity
// and layout match the column's metadata.
func (c *column) push(v Component) {
	c.pushRaw(v.data())
}

// pushErased is push for a record with no static type: an opaque byte
// pointer plus layout. Same contract, same growth policy.
func (c *column) pushErased(e *Erased) {
	c.pushRaw(e.Data)
}

func (c *column) pushRaw(src unsafe.Pointer) {
	if c.len == c.cap {
		c.grow()
	}
	memCopy(c.elem(c.len), src, c.meta.Layout.Size)
	c.len++
}

// grow doubles capacity, copying the live region into a fresh buffer and
// releasing the old one. O(len) per growth, amortized O(1) per push.
func (c *column) grow() {
	newCap := c.cap * 2
	if newCap == 0 {
		newCap = 1
	}
	buf, ptr := allocElems(newCap, c.meta.Layout.Size)
	memCopy(ptr, c.ptr, uintptr(c.len)*c.meta.Layout.Size)
	c.buf = buf
	c.ptr = ptr
	c.cap = newCap
}

// bytesAt returns the raw bytes of element i. Zero-size layouts carry no
// bytes and return nil.
func (c *column) bytesAt(i int) []byte {
	if c.meta.Layout.Size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(c.elem(i)), c.meta.Layout.Size)
}

// drop runs the drop function, if any, once per live element, then releases
// the buffer. This is the only path that runs per-element cleanup; a column
// that never reaches it leaks whatever its elements own.
func (c *column) drop() {
	if c.meta.Drop != nil {
		for i := 0; i < c.len; i++ {
			c.meta.Drop(c.elem(i))
		}
	}
	c.buf = nil
	c.ptr = nil
	c.len = 0
	c.cap = 0
}

// memCopy copies size bytes between non-overlapping buffers.
func memCopy(dst, src unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), size), unsafe.Slice((*byte)(src), size))
}
