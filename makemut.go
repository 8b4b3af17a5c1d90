package bytesref

import (
	"github.com/arloliu/bytesref/internal/remote"
	"github.com/arloliu/bytesref/internal/tagword"
)

// MakeMut returns a mutable view of b's payload. If b's allocation is
// shared (refcount != 1), MakeMut first privatizes b by copying its payload
// into a fresh, uniquely-owned allocation, releasing the prior shared
// reference. The returned slice must not outlive b and must not be aliased
// by another live view.
//
// MakeMut panics if privatization needs to allocate and the allocation
// fails, matching Clone's allocation-failure behavior.
func (b *Bytes) MakeMut() []byte {
	tag := tagword.Tag(b.w)
	if tag == tagword.TagInline {
		return b.w.B[:tagword.InlineLen(b.w)]
	}

	addr := tagword.Pointer(b.w)

	var unique bool
	var payload []byte
	if tag == tagword.TagSmallRemote {
		unique = remote.SmallRefcountLoad(addr) == 1
		payload = remote.SmallPayload(addr)
	} else {
		unique = remote.BigRefcountLoad(addr) == 1
		payload = remote.BigPayload(addr)
	}

	if !unique {
		b.privatize(payload)
		tag = tagword.Tag(b.w)
		addr = tagword.Pointer(b.w)
	}

	if tag == tagword.TagSmallRemote {
		return remote.SmallPayload(addr)
	}

	return remote.BigPayload(addr)
}

// privatize replaces *b with a freshly allocated, uniquely-owned copy of
// payload and releases the previous allocation.
func (b *Bytes) privatize(payload []byte) {
	old := *b
	*b = mustFrom(payload)
	old.Release()
}
