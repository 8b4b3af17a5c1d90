package bytesref

import "bytes"

// Equal reports whether b and other carry the same bytes.
func (b Bytes) Equal(other Bytes) bool {
	return bytes.Equal(b.View(), other.View())
}

// EqualBytes reports whether b's view equals the raw byte slice other.
func (b Bytes) EqualBytes(other []byte) bool {
	return bytes.Equal(b.View(), other)
}

// Compare returns -1, 0 or +1 comparing b and other lexicographically by
// byte value, the same order bytes.Compare would give their views.
func (b Bytes) Compare(other Bytes) int {
	return bytes.Compare(b.View(), other.View())
}

// CompareBytes compares b's view against the raw byte slice other.
func (b Bytes) CompareBytes(other []byte) int {
	return bytes.Compare(b.View(), other)
}
