package bytesref

import (
	"github.com/arloliu/bytesref/internal/remote"
	"github.com/arloliu/bytesref/internal/tagword"
)

// Release drops b's reference to its allocation, deallocating it if b was
// the last owner. Inline values need no release. After Release, b is the
// empty value and must not be used as if it still held its former bytes.
//
// Release must be called exactly once per Clone (including the value
// returned by a constructor). A plain Go assignment does not Clone: the
// alias it produces must not be independently released.
func (b *Bytes) Release() {
	switch tagword.Tag(b.w) {
	case tagword.TagInline:
	case tagword.TagSmallRemote:
		trailer := tagword.Pointer(b.w)
		if remote.SmallRelease(trailer) {
			remote.SmallFree(trailer, remote.SmallLength(trailer))
		}
	default:
		header := tagword.Pointer(b.w)
		if remote.BigRelease(header) {
			remote.BigFree(header)
		}
	}

	*b = Bytes{}
}
