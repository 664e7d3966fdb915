// Package membuf provides a fixed-length, exclusively owned byte buffer,
// the primitive container used to move bytes between native I/O and
// higher-level code. A Buffer's length is set at construction and never
// changes; every read and write is bounds-checked before memory is touched.
package membuf

import (
	"unsafe"

	"bytekit/internal/errors"
)

var (
	// ErrInvalidArgument is returned when a constructor is called with
	// input it does not recognize, such as a negative length.
	ErrInvalidArgument = errors.NewError("invalid argument")

	// ErrIndexOutOfBounds is returned when an offset, or the range implied
	// by a multi-byte access, falls outside the buffer.
	ErrIndexOutOfBounds = errors.NewError("index out of bounds")

	// ErrAllocationFailure is returned when the backing region could not
	// be obtained. It is not retried internally.
	ErrAllocationFailure = errors.NewError("allocation failure")
)

// Buffer is a fixed-length allocation of raw bytes. The region is owned by
// exactly one Buffer for its entire lifetime. Buffer.Release() returns the
// region to its origin exactly once; pooled regions are recycled so that a
// later Buffer can be created more quickly.
type Buffer struct {
	v    []byte
	free func([]byte)
}

// New creates a Buffer of exactly length zero-filled bytes.
func New(length int) (*Buffer, error) {
	if length < 0 {
		return nil, errors.NewError("negative length ", length).Base(ErrInvalidArgument)
	}

	v, free, err := alloc(length)
	if err != nil {
		return nil, err
	}

	return &Buffer{
		v:    v,
		free: free,
	}, nil
}

// FromBytes creates a Buffer of len(b) bytes holding a copy of b. The
// Buffer does not alias b.
func FromBytes(b []byte) (*Buffer, error) {
	buf, err := New(len(b))
	if err != nil {
		return nil, err
	}
	copy(buf.v, b)
	return buf, nil
}

// FromString creates a Buffer holding the bytes of s, unmodified.
func FromString(s string) (*Buffer, error) {
	buf, err := New(len(s))
	if err != nil {
		return nil, err
	}
	copy(buf.v, s)
	return buf, nil
}

// Release returns the backing region to its origin. Releasing twice, or
// releasing a nil Buffer, is a no-op; the region is never freed more than
// once. After Release the buffer is empty and every access fails its
// bounds check.
func (b *Buffer) Release() {
	if b == nil || b.v == nil {
		return
	}

	p := b.v
	f := b.free
	b.v = nil
	b.free = nil
	if f != nil {
		f(p)
	}
}

// Len returns the length of the buffer, fixed at construction. A released
// buffer has length 0.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.v)
}

// Byte returns the byte at offset off.
func (b *Buffer) Byte(off int) (byte, error) {
	if off < 0 || off >= b.Len() {
		return 0, ErrIndexOutOfBounds
	}
	return b.v[off], nil
}

// SetByte writes v at offset off.
func (b *Buffer) SetByte(off int, v byte) error {
	if off < 0 || off >= b.Len() {
		return ErrIndexOutOfBounds
	}
	b.v[off] = v
	return nil
}

// checkRange is the single bounds gate for multi-byte access. A range that
// would cross the end of the buffer is rejected before any byte is read or
// written, so multi-byte operations fail atomically.
func (b *Buffer) checkRange(off, n int) error {
	if off < 0 || off > b.Len()-n {
		return ErrIndexOutOfBounds
	}
	return nil
}

// Clone returns a deep copy of the buffer. The clone owns its own region;
// mutating one buffer never affects the other.
func (b *Buffer) Clone() (*Buffer, error) {
	return FromBytes(b.v)
}

// Bytes returns the backing region for handing to native I/O calls. The
// slice aliases the buffer's memory and must not be retained past Release.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.v
}

// Pointer returns the base address of the region for foreign calls. It is
// nil for released and zero-length buffers.
func (b *Buffer) Pointer() unsafe.Pointer {
	if b == nil || len(b.v) == 0 {
		return nil
	}
	return unsafe.Pointer(&b.v[0])
}
