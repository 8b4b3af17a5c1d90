package bytesref

import (
	"iter"

	"github.com/arloliu/bytesref/errs"
	"github.com/arloliu/bytesref/internal/pool"
	"github.com/arloliu/bytesref/internal/rawmem"
	"github.com/arloliu/bytesref/internal/remote"
	"github.com/arloliu/bytesref/internal/tagword"
)

// maxLength is 2^48 - 1, the largest length a BigRemote header can encode.
const maxLength = 1<<48 - 1

// From builds a Bytes holding a copy of data. The returned value does not
// alias data; callers may reuse or mutate data after From returns.
func From(data []byte) (Bytes, error) {
	return from(data)
}

// FromString builds a Bytes holding a copy of s's bytes. The string's
// encoding is not validated; s need not be valid UTF-8.
func FromString(s string) (Bytes, error) {
	return from([]byte(s))
}

// FromArray builds a Bytes from a fixed-size array reference. Go cannot
// parameterize a function over an array length, so callers pass a slice of
// the array: FromArray(arr[:]).
func FromArray(arr []byte) (Bytes, error) {
	return from(arr)
}

// FromIter drains seq into a pooled scratch buffer and builds a Bytes from
// the collected contents.
func FromIter(seq iter.Seq[byte]) (Bytes, error) {
	buf := pool.GetIterBuffer()
	defer pool.PutIterBuffer(buf)

	for b := range seq {
		_ = buf.WriteByte(b)
	}

	return from(buf.Bytes())
}

func from(data []byte) (Bytes, error) {
	l := len(data)

	switch {
	case l <= tagword.MaxInlineLen:
		return Bytes{w: tagword.MakeInline(data)}, nil
	case l <= 255:
		return newSmall(data)
	case l <= maxLength:
		return newBig(data)
	default:
		return Bytes{}, errs.ErrLengthOutOfRange
	}
}

func newSmall(data []byte) (Bytes, error) {
	base, err := rawmem.Alloc(remote.SmallAllocSize(len(data)))
	if err != nil {
		return Bytes{}, err
	}

	trailer := remote.SmallWrite(base, data)

	return Bytes{w: tagword.MakeTagged(trailer, tagword.TagSmallRemote)}, nil
}

func newBig(data []byte) (Bytes, error) {
	base, err := rawmem.Alloc(remote.BigAllocSize(len(data)))
	if err != nil {
		return Bytes{}, err
	}

	header := remote.BigWrite(base, data)

	return Bytes{w: tagword.MakeTagged(header, tagword.TagBigRemote)}, nil
}
