// Package remote lays out and manipulates the two heap representations of a
// Bytes value: SmallRemote (this file) and BigRemote (big.go).
package remote

import (
	"sync/atomic"
	"unsafe"

	"github.com/arloliu/bytesref/internal/rawmem"
)

// MaxSmallRefcount is the saturation ceiling for a SmallRemote allocation's
// refcount. The spec's trailer carries a single byte (u8) refcount; Go has
// no atomic 8-bit type, so the counter is stored in a 4-byte atomic.Uint32
// and pinned at this ceiling to preserve the narrow-counter saturation
// behavior the spec is built around.
const MaxSmallRefcount = 255

// smallTrailerSize is the padded trailer written after every SmallRemote
// payload: a 4-byte atomic refcount, a 1-byte length, and 3 reserved bytes
// bringing the trailer to an 8-byte multiple so it lands at an aligned
// offset from the (also padded) payload.
const smallTrailerSize = 8

// SmallAllocSize returns the number of bytes Alloc must reserve to hold a
// SmallRemote payload of the given length: the length rounded up to a
// multiple of 8, followed by the 8-byte trailer.
func SmallAllocSize(length int) int {
	return SmallPaddedLen(length) + smallTrailerSize
}

// SmallPaddedLen rounds length up to the nearest multiple of 8. The payload
// occupies the allocation's first paddedLen bytes; the trailer follows
// immediately, keeping the trailer's address 8-byte aligned.
func SmallPaddedLen(length int) int {
	if length%8 == 0 {
		return length
	}

	return length + (8 - length%8)
}

// SmallWrite copies payload into a fresh allocation at base and writes the
// trailer with refcount 1. It returns the trailer's address, which is the
// value stored (tagged) in the owning Bytes word.
func SmallWrite(base uintptr, payload []byte) uintptr {
	padded := SmallPaddedLen(len(payload))
	dst := rawmem.View(base, padded+smallTrailerSize)
	copy(dst, payload)

	trailerAddr := base + uintptr(padded)
	smallRefcount(trailerAddr).Store(1)
	dst[padded+4] = byte(len(payload))

	return trailerAddr
}

// SmallBase returns the payload's base address given the trailer address
// and the logical length.
func SmallBase(trailerAddr uintptr, length int) uintptr {
	return trailerAddr - uintptr(SmallPaddedLen(length))
}

// SmallLength reads the length byte from the trailer.
func SmallLength(trailerAddr uintptr) int {
	return int(rawmem.View(trailerAddr, smallTrailerSize)[4])
}

// SmallPayload returns a view of the payload bytes for a SmallRemote
// allocation, given its trailer address.
func SmallPayload(trailerAddr uintptr) []byte {
	length := SmallLength(trailerAddr)

	return rawmem.View(SmallBase(trailerAddr, length), length)
}

// SmallTryIncrement attempts to increment the refcount at trailerAddr. It
// reports false without incrementing when the refcount has already
// saturated at MaxSmallRefcount, signaling the caller to fall back to a deep
// copy instead.
func SmallTryIncrement(trailerAddr uintptr) bool {
	counter := smallRefcount(trailerAddr)
	for {
		cur := counter.Load()
		if cur >= MaxSmallRefcount {
			return false
		}

		if counter.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

// SmallRefcountLoad returns the current refcount, for use by MakeMut's
// uniqueness check.
func SmallRefcountLoad(trailerAddr uintptr) uint32 {
	return smallRefcount(trailerAddr).Load()
}

// SmallRelease decrements the refcount and reports whether this call dropped
// it to zero, meaning the caller must deallocate the backing allocation.
func SmallRelease(trailerAddr uintptr) bool {
	return smallRefcount(trailerAddr).Add(^uint32(0)) == 0
}

// SmallFree releases the allocation backing trailerAddr back to the raw
// allocator.
func SmallFree(trailerAddr uintptr, length int) {
	base := SmallBase(trailerAddr, length)
	rawmem.Free(base, SmallAllocSize(length))
}

func smallRefcount(trailerAddr uintptr) *atomic.Uint32 {
	return (*atomic.Uint32)(unsafe.Pointer(trailerAddr)) //nolint:govet // trailerAddr is an off-heap base address.
}
