package stream

import (
	"encoding/binary"
	"io"

	"bytekit/internal/errors"
	"bytekit/internal/membuf"
)

// Writer emits Buffers as length-prefixed frames on an underlying stream.
type Writer struct {
	w   io.Writer
	hdr [2]byte
}

// NewWriter creates a Writer over w. The Writer does not take ownership of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteFrame writes b's contents as a single frame. It does not take
// ownership of b.
func (w *Writer) WriteFrame(b *membuf.Buffer) error {
	if b.Len() > MaxFramePayload {
		return errors.NewError("frame payload too large: ", b.Len()).Base(membuf.ErrInvalidArgument)
	}

	binary.BigEndian.PutUint16(w.hdr[:], uint16(b.Len()))
	if err := writeAll(w.w, w.hdr[:]); err != nil {
		return err
	}
	return writeAll(w.w, b.Bytes())
}

// writeAll ensures all bytes are written into the given writer.
func writeAll(writer io.Writer, payload []byte) error {
	for len(payload) > 0 {
		n, err := writer.Write(payload)
		if err != nil {
			return err
		}
		payload = payload[n:]
	}
	return nil
}
