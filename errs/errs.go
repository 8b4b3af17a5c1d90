// Package errs defines the sentinel errors returned across bytesref.
//
// Callers should compare against these with errors.Is rather than string
// matching.
package errs

import "errors"

var (
	// ErrLengthOutOfRange is returned by construction when a requested
	// length does not fit in the BigRemote header's 48-bit length field.
	ErrLengthOutOfRange = errors.New("bytesref: length out of range")

	// ErrAllocationFailed is returned when the off-heap allocator cannot
	// satisfy a request for backing memory. Construction returns it; Clone's
	// saturation fallback and MakeMut's privatization path panic with it.
	ErrAllocationFailed = errors.New("bytesref: allocation failed")
)
