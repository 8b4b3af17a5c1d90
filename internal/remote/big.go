package remote

import (
	"sync/atomic"
	"unsafe"

	"github.com/arloliu/bytesref/internal/rawmem"
)

// MaxBigRefcount is the saturation ceiling for a BigRemote allocation's
// refcount (a 16-bit counter, as in the spec's u16 header field).
const MaxBigRefcount = 0xFFFF

// bigHeaderSize is the fixed 8-byte header preceding every BigRemote
// payload.
const bigHeaderSize = 8

// The header's refcount (low 16 bits) and length (high 48 bits) share a
// single machine word so both can be read and the refcount updated with one
// atomic.Uint64, matching this header's in-memory layout on little-endian
// platforms: bytes 0-1 are the refcount, bytes 2-7 are the length.
const refcountBits = 16
const refcountMask = uint64(1)<<refcountBits - 1

// BigAllocSize returns the number of bytes Alloc must reserve for a
// BigRemote payload of the given length: the 8-byte header followed by the
// payload itself.
func BigAllocSize(length int) int {
	return bigHeaderSize + length
}

// BigWrite writes the header (refcount 1, length) and copies payload into a
// fresh allocation at base. It returns base, which is also the value stored
// (tagged) in the owning Bytes word — BigRemote tags the header's address
// directly, unlike SmallRemote's trailer.
func BigWrite(base uintptr, payload []byte) uintptr {
	word := uint64(len(payload))<<refcountBits | 1
	bigHeader(base).Store(word)

	dst := rawmem.View(base+bigHeaderSize, len(payload))
	copy(dst, payload)

	return base
}

// BigLength reads the length field from the header at headerAddr.
func BigLength(headerAddr uintptr) int {
	return int(bigHeader(headerAddr).Load() >> refcountBits)
}

// BigPayload returns a view of the payload bytes for a BigRemote allocation.
func BigPayload(headerAddr uintptr) []byte {
	return rawmem.View(headerAddr+bigHeaderSize, BigLength(headerAddr))
}

// BigTryIncrement attempts to increment the refcount at headerAddr. It
// reports false without incrementing when the refcount has already
// saturated at MaxBigRefcount.
func BigTryIncrement(headerAddr uintptr) bool {
	header := bigHeader(headerAddr)
	for {
		cur := header.Load()
		refcount := cur & refcountMask
		if refcount >= MaxBigRefcount {
			return false
		}

		next := (cur &^ refcountMask) | (refcount + 1)
		if header.CompareAndSwap(cur, next) {
			return true
		}
	}
}

// BigRefcountLoad returns the current refcount, for use by MakeMut's
// uniqueness check.
func BigRefcountLoad(headerAddr uintptr) uint64 {
	return bigHeader(headerAddr).Load() & refcountMask
}

// BigRelease decrements the refcount and reports whether this call dropped
// it to zero, meaning the caller must deallocate the backing allocation.
// The refcount occupies the low 16 bits, so a whole-word decrement cannot
// disturb the immutable length bits as long as the refcount is >= 1 before
// the call, which the clone/drop protocol guarantees.
func BigRelease(headerAddr uintptr) bool {
	return bigHeader(headerAddr).Add(^uint64(0))&refcountMask == 0
}

// BigFree releases the allocation backing headerAddr back to the raw
// allocator.
func BigFree(headerAddr uintptr) {
	rawmem.Free(headerAddr, BigAllocSize(BigLength(headerAddr)))
}

func bigHeader(addr uintptr) *atomic.Uint64 {
	return (*atomic.Uint64)(unsafe.Pointer(addr)) //nolint:govet // addr is an off-heap base address.
}
