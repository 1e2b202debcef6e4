package kvantuma_test

import "unsafe"

// ptrOf exposes a view's bytes as a raw pointer for reinterpretation in
// tests. Valid because every view aliases column storage of the same layout.
func ptrOf(b []byte) unsafe.Pointer {
	return unsafe.Pointer(&b[0])
}
