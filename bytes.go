package bytesref

import (
	"github.com/arloliu/bytesref/internal/remote"
	"github.com/arloliu/bytesref/internal/tagword"
)

// Bytes is an immutable byte sequence stored either inline or on a
// reference-counted heap allocation. The zero value is the empty Bytes and
// requires no Release.
type Bytes struct {
	w tagword.Word
}

// View returns the bytes as a read-only slice. The slice is valid for as
// long as b is not Released and, for a heap variant, not mutated through
// MakeMut by a unique owner.
func (b Bytes) View() []byte {
	switch tagword.Tag(b.w) {
	case tagword.TagInline:
		return b.w.B[:tagword.InlineLen(b.w)]
	case tagword.TagSmallRemote:
		return remote.SmallPayload(tagword.Pointer(b.w))
	default:
		return remote.BigPayload(tagword.Pointer(b.w))
	}
}

// Len returns the number of bytes in the view.
func (b Bytes) Len() int {
	return len(b.View())
}

// IsEmpty reports whether the view has zero length.
func (b Bytes) IsEmpty() bool {
	return b.Len() == 0
}
