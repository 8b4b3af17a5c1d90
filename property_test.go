package bytesref

import (
	"bytes"
	"testing"
	"testing/quick"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

// TestPropertyRoundTrip covers invariant 1: the view of a constructed Bytes
// equals the source slice. quick's default generator draws slices shorter
// than 50 bytes, so this covers the inline and SmallRemote ranges.
func TestPropertyRoundTrip(t *testing.T) {
	f := func(data []byte) bool {
		b, err := From(data)
		if err != nil {
			return false
		}
		defer b.Release()

		return bytes.Equal(b.View(), data) && b.Len() == len(data)
	}

	require.NoError(t, quick.Check(f, nil))
}

// TestPropertyViewAlignment covers invariant 2: every exposed view starts at
// an 8-byte-aligned address.
func TestPropertyViewAlignment(t *testing.T) {
	f := func(data []byte) bool {
		b, err := From(data)
		if err != nil {
			return false
		}
		defer b.Release()

		v := b.View()
		if len(v) == 0 {
			return true
		}

		return uintptr(unsafe.Pointer(&v[0]))%8 == 0
	}

	require.NoError(t, quick.Check(f, nil))
}

// TestPropertyCloneViewEqual covers invariant 3.
func TestPropertyCloneViewEqual(t *testing.T) {
	f := func(data []byte) bool {
		b, err := From(data)
		if err != nil {
			return false
		}
		defer b.Release()

		c := b.Clone()
		defer c.Release()

		return bytes.Equal(b.View(), c.View())
	}

	require.NoError(t, quick.Check(f, nil))
}

// TestPropertyCloneEqual covers invariant 4.
func TestPropertyCloneEqual(t *testing.T) {
	f := func(data []byte) bool {
		b, err := From(data)
		if err != nil {
			return false
		}
		defer b.Release()

		c := b.Clone()
		defer c.Release()

		return b.Equal(c)
	}

	require.NoError(t, quick.Check(f, nil))
}

// TestPropertyEqualityMatchesView covers invariant 5.
func TestPropertyEqualityMatchesView(t *testing.T) {
	f := func(a, b []byte) bool {
		va, err := From(a)
		if err != nil {
			return false
		}
		defer va.Release()

		vb, err := From(b)
		if err != nil {
			return false
		}
		defer vb.Release()

		return va.Equal(vb) == bytes.Equal(va.View(), vb.View())
	}

	require.NoError(t, quick.Check(f, nil))
}

// TestPropertyOrderingMatchesView covers invariant 6.
func TestPropertyOrderingMatchesView(t *testing.T) {
	f := func(a, b []byte) bool {
		va, err := From(a)
		if err != nil {
			return false
		}
		defer va.Release()

		vb, err := From(b)
		if err != nil {
			return false
		}
		defer vb.Release()

		got := va.Compare(vb)
		want := bytes.Compare(va.View(), vb.View())

		return (got < 0) == (want < 0) && (got == 0) == (want == 0) && (got > 0) == (want > 0)
	}

	require.NoError(t, quick.Check(f, nil))
}

// TestPropertyHashMatchesRawView covers invariant 7.
func TestPropertyHashMatchesRawView(t *testing.T) {
	f := func(data []byte) bool {
		b, err := From(data)
		if err != nil {
			return false
		}
		defer b.Release()

		return b.Hash() == xxhash.Sum64(data)
	}

	require.NoError(t, quick.Check(f, nil))
}

// TestPropertySizeofAndAlignof covers invariant 9.
func TestPropertySizeofAndAlignof(t *testing.T) {
	var b Bytes
	require.Equal(t, uintptr(8), unsafe.Sizeof(b))
	require.Equal(t, uintptr(8), unsafe.Alignof(b))
}

// TestPropertyMakeMutObservableThroughView covers invariant 10.
func TestPropertyMakeMutObservableThroughView(t *testing.T) {
	f := func(data []byte, fill byte) bool {
		b, err := From(data)
		if err != nil {
			return false
		}
		defer b.Release()

		mut := b.MakeMut()
		for i := range mut {
			mut[i] = fill
		}

		view := b.View()
		for i := range view {
			if view[i] != fill {
				return false
			}
		}

		return true
	}

	require.NoError(t, quick.Check(f, nil))
}
