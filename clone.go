package bytesref

import (
	"github.com/arloliu/bytesref/internal/remote"
	"github.com/arloliu/bytesref/internal/tagword"
)

// Clone returns a Bytes sharing the same allocation as b (incrementing its
// refcount) for heap variants, or a bit-copy for inline values.
//
// If the allocation's refcount has saturated at its maximum, Clone instead
// deep-copies the payload into a fresh allocation with refcount 1; b keeps
// pointing at the saturated allocation, so further clones of b will keep
// hitting this fallback. Clone panics if that fallback allocation fails —
// the only path by which Clone can fail, and one the narrow refcount makes
// vanishingly rare in practice.
func (b Bytes) Clone() Bytes {
	switch tagword.Tag(b.w) {
	case tagword.TagInline:
		return b
	case tagword.TagSmallRemote:
		trailer := tagword.Pointer(b.w)
		if remote.SmallTryIncrement(trailer) {
			return b
		}

		return mustFrom(remote.SmallPayload(trailer))
	default:
		header := tagword.Pointer(b.w)
		if remote.BigTryIncrement(header) {
			return b
		}

		return mustFrom(remote.BigPayload(header))
	}
}

func mustFrom(data []byte) Bytes {
	fresh, err := from(data)
	if err != nil {
		panic(err)
	}

	return fresh
}
