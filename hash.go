package bytesref

import "github.com/arloliu/bytesref/internal/hash"

// Hash returns the xxHash64 of b's byte view. It equals hashing an
// equal-content raw []byte, so a Bytes and a []byte carrying the same bytes
// are interchangeable keys in an xxHash-keyed associative structure.
func (b Bytes) Hash() uint64 {
	return hash.Sum64(b.View())
}
