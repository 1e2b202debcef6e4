package kvantuma

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

const (
	bitsPerWord = 64
	maskWords   = MaxComponentTypes / bitsPerWord
)

// Mask is a fixed 256-bit set over component identities describing an
// archetype's schema. Bit i set means component identity i is present.
type Mask [maskWords]uint64

// MaskFromIDs builds a mask from an identity list. An identity at or above
// MaxComponentTypes is a hard capacity violation and panics.
func MaskFromIDs(ids []ComponentID) Mask {
	var m Mask
	for _, id := range ids {
		word := int(id) / bitsPerWord
		if word >= maskWords {
			panic(fmt.Sprintf("ecs: component ID %d exceeds maximum (%d)", id, MaxComponentTypes))
		}
		m[word] |= 1 << (uint(id) % bitsPerWord)
	}
	return m
}

// Contains reports whether every bit set in other is also set in m.
// Word-wise, independent of how many bits are set.
func (m Mask) Contains(other Mask) bool {
	for i := range m {
		if m[i]&other[i] != other[i] {
			return false
		}
	}
	return true
}

// has reports whether the bit for id is set.
func (m Mask) has(id ComponentID) bool {
	word := int(id) / bitsPerWord
	if word >= maskWords {
		return false
	}
	return m[word]&(1<<(uint(id)%bitsPerWord)) != 0
}

// digestOfIDs hashes a sorted, duplicate-free identity list into the key of
// the exact-schema archetype index. Buckets are confirmed by mask equality,
// so a digest collision costs a comparison, not correctness.
func digestOfIDs(sorted []ComponentID) uint64 {
	var d xxhash.Digest
	d.Reset()
	var buf [4]byte
	for _, id := range sorted {
		binary.LittleEndian.PutUint32(buf[:], uint32(id))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
