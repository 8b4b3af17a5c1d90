package bytesref

import "fmt"

// String returns the view interpreted as a string. The encoding is not
// validated; a non-UTF-8 view round-trips byte-for-byte but may not be
// printable.
func (b Bytes) String() string {
	return string(b.View())
}

// GoString implements fmt.GoStringer, printing the view rather than the
// internal tagged representation.
func (b Bytes) GoString() string {
	return fmt.Sprintf("bytesref.Bytes(%q)", b.View())
}

// MarshalText implements encoding.TextMarshaler, returning the raw view.
func (b Bytes) MarshalText() ([]byte, error) {
	v := b.View()
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}
