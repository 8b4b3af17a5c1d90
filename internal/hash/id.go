// Package hash computes the byte-view hash used by Bytes.Hash.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 hashes a byte view with xxHash64. It must return the same value
// xxhash.Sum64 would for an equal-content []byte, so a Bytes and a raw
// []byte carrying the same bytes are interchangeable keys in an
// xxHash-keyed associative structure.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
