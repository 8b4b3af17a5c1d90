// Package bytesref provides Bytes, a compact immutable byte-array value
// optimized for workloads that pass around, share, compare and hash many
// short byte strings.
//
// A Bytes value occupies exactly one machine word (8 bytes) of stack space
// regardless of its logical length. Payloads of 8 bytes or more are stored
// on a heap allocation outside the Go garbage collector's reach and shared
// across clones through an atomic reference count; payloads of 7 bytes or
// fewer are packed directly into the 8-byte value itself.
//
// Assigning a Bytes value (b2 := b1) creates an alias that shares the same
// underlying allocation, not an independent copy — call Clone to obtain a
// value with its own reference on the allocation, and call Release exactly
// once per Clone (including the value returned by a constructor) when a
// Bytes value is no longer needed. The zero Bytes is the empty value and
// needs no Release call.
package bytesref
