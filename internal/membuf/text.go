package membuf

import (
	"strings"

	"bytekit/internal/serial"
)

const hextable = "0123456789abcdef"

// String returns the whole buffer reinterpreted as text, byte for byte.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Text returns the bytes in [from, to) reinterpreted as text. No charset
// transcoding is applied.
func (b *Buffer) Text(from, to int) (string, error) {
	if from < 0 || to < from || to > b.Len() {
		return "", ErrIndexOutOfBounds
	}
	return string(b.v[from:to]), nil
}

// HexDump returns a bracketed diagnostic rendering of the buffer, two hex
// digits per byte, space separated. It is meant for logs, not for data
// interchange.
func (b *Buffer) HexDump() string {
	builder := strings.Builder{}
	builder.Grow(len("[Buffer:]") + 3*b.Len())
	builder.WriteString("[Buffer:")
	for _, c := range b.Bytes() {
		builder.WriteByte(' ')
		builder.WriteByte(hextable[c>>4])
		builder.WriteByte(hextable[c&0x0f])
	}
	builder.WriteByte(']')
	return builder.String()
}

// ConcatString renders the buffer and v to text and joins them. This is a
// display convenience; it does not produce a new Buffer.
func (b *Buffer) ConcatString(v interface{}) string {
	return serial.Concat(b, v)
}
