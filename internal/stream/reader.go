// Package stream moves bytes between an octet stream and membuf Buffers.
// Frames are length-prefixed: a 2-byte big-endian payload length followed
// by the payload itself.
package stream

import (
	"encoding/binary"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bytekit/internal/errors"
	"bytekit/internal/logger"
	"bytekit/internal/membuf"
)

// MaxFramePayload is the largest payload a frame header can declare.
const MaxFramePayload = 0xFFFF

// Reader assembles frames from an underlying stream into freshly allocated
// Buffers. Ownership of every returned Buffer passes to the caller, which
// must Release it.
type Reader struct {
	r   io.Reader
	id  string
	log zerolog.Logger
	hdr [2]byte
}

// NewReader creates a Reader over r. The Reader does not take ownership of r.
func NewReader(r io.Reader) *Reader {
	id := uuid.NewString()
	return &Reader{
		r:   r,
		id:  id,
		log: logger.WithComponent("stream"),
	}
}

// SessionID returns the identifier attached to this reader's log output.
func (r *Reader) SessionID() string {
	return r.id
}

// ReadFrame reads one frame and returns its payload as a Buffer. A stream
// that ends cleanly on a frame boundary yields io.EOF; a stream that ends
// inside a frame yields an error describing the truncation.
func (r *Reader) ReadFrame() (*membuf.Buffer, error) {
	if _, err := io.ReadFull(r.r, r.hdr[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, io.EOF
		}
		return nil, errors.NewError("failed to read frame header").Base(err)
	}

	n := int(binary.BigEndian.Uint16(r.hdr[:]))
	b, err := membuf.New(n)
	if err != nil {
		return nil, err
	}

	if n > 0 {
		if _, err := io.ReadFull(r.r, b.Bytes()); err != nil {
			b.Release()
			return nil, errors.NewError("truncated frame, expected ", n, " bytes").Base(err)
		}
	}

	r.log.Debug().Str("session", r.id).Int("bytes", n).Msg("frame read")
	return b, nil
}
