//go:build unix

// Package rawmem allocates the off-Go-heap backing memory for SmallRemote
// and BigRemote allocations.
//
// The Go garbage collector requires every unsafe.Pointer it scans to point
// at the exact start of a tracked object; it cannot tolerate a pointer with
// spare tag bits dirtied into it. Bytes needs exactly that, so the heap
// variants' memory is carved out of an anonymous mmap mapping instead of the
// Go heap. The Go runtime never scans mmap'd memory, so the tagged address
// can be carried around as a plain uintptr.
package rawmem

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/arloliu/bytesref/errs"
	"github.com/arloliu/bytesref/internal/tagword"
)

var pageSize = unix.Getpagesize()

// Alloc reserves size bytes of zeroed, 8-byte-aligned memory outside the Go
// heap and returns its base address. The returned address always has its
// most significant byte clear (tagword.AddrFits), so it can be tagged by
// tagword.MakeTagged without losing information.
func Alloc(size int) (uintptr, error) {
	length := alignUp(size, pageSize)

	b, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return 0, errs.ErrAllocationFailed
	}

	addr := uintptr(unsafe.Pointer(&b[0]))
	if !tagword.AddrFits(addr) {
		_ = unix.Munmap(b)
		return 0, errs.ErrAllocationFailed
	}

	return addr, nil
}

// Free releases an allocation previously returned by Alloc. size must be the
// same value passed to Alloc.
func Free(addr uintptr, size int) {
	length := alignUp(size, pageSize)
	b := unsafe.Slice((*byte)(unsafe.Pointer(addr)), length) //nolint:govet // addr is a raw off-heap base, not a Go object.
	_ = unix.Munmap(b)
}

// View reinterprets size bytes starting at addr as a Go byte slice. The
// caller is responsible for ensuring addr+size stays within a live
// allocation for as long as the returned slice is used.
func View(addr uintptr, size int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size) //nolint:govet // see Free.
}

func alignUp(n, align int) int {
	if n <= 0 {
		return align
	}

	rem := n % align
	if rem == 0 {
		return n
	}

	return n + (align - rem)
}
