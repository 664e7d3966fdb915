package membuf

import "encoding/binary"

// Fixed-width integer codecs. Every accessor addresses width/8 consecutive
// bytes starting at off and is bounds-checked as a whole before any byte is
// touched. Signed variants are the two's-complement reinterpretation of the
// unsigned bytes, so a stored 0xFFFF reads back as -1 through Int16 and as
// 65535 through Uint16.

// Uint8 reads the byte at off as an unsigned 8-bit integer.
func (b *Buffer) Uint8(off int) (uint8, error) {
	return b.Byte(off)
}

// SetUint8 writes v at off.
func (b *Buffer) SetUint8(off int, v uint8) error {
	return b.SetByte(off, v)
}

// Int8 reads the byte at off as a two's-complement signed 8-bit integer.
func (b *Buffer) Int8(off int) (int8, error) {
	v, err := b.Byte(off)
	return int8(v), err
}

// SetInt8 writes v at off as its unsigned 8-bit representation.
func (b *Buffer) SetInt8(off int, v int8) error {
	return b.SetByte(off, byte(v))
}

// Uint16LE reads a little-endian unsigned 16-bit integer at off.
func (b *Buffer) Uint16LE(off int) (uint16, error) {
	if err := b.checkRange(off, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b.v[off:]), nil
}

// Uint16BE reads a big-endian unsigned 16-bit integer at off.
func (b *Buffer) Uint16BE(off int) (uint16, error) {
	if err := b.checkRange(off, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b.v[off:]), nil
}

// SetUint16LE writes v at off in little-endian byte order.
func (b *Buffer) SetUint16LE(off int, v uint16) error {
	if err := b.checkRange(off, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b.v[off:], v)
	return nil
}

// SetUint16BE writes v at off in big-endian byte order.
func (b *Buffer) SetUint16BE(off int, v uint16) error {
	if err := b.checkRange(off, 2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b.v[off:], v)
	return nil
}

// Int16LE reads a little-endian two's-complement signed 16-bit integer at off.
func (b *Buffer) Int16LE(off int) (int16, error) {
	v, err := b.Uint16LE(off)
	return int16(v), err
}

// Int16BE reads a big-endian two's-complement signed 16-bit integer at off.
func (b *Buffer) Int16BE(off int) (int16, error) {
	v, err := b.Uint16BE(off)
	return int16(v), err
}

// SetInt16LE writes v at off as its unsigned 16-bit representation,
// little-endian.
func (b *Buffer) SetInt16LE(off int, v int16) error {
	return b.SetUint16LE(off, uint16(v))
}

// SetInt16BE writes v at off as its unsigned 16-bit representation,
// big-endian.
func (b *Buffer) SetInt16BE(off int, v int16) error {
	return b.SetUint16BE(off, uint16(v))
}

// Uint32LE reads a little-endian unsigned 32-bit integer at off.
func (b *Buffer) Uint32LE(off int) (uint32, error) {
	if err := b.checkRange(off, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b.v[off:]), nil
}

// Uint32BE reads a big-endian unsigned 32-bit integer at off.
func (b *Buffer) Uint32BE(off int) (uint32, error) {
	if err := b.checkRange(off, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b.v[off:]), nil
}

// SetUint32LE writes v at off in little-endian byte order.
func (b *Buffer) SetUint32LE(off int, v uint32) error {
	if err := b.checkRange(off, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b.v[off:], v)
	return nil
}

// SetUint32BE writes v at off in big-endian byte order.
func (b *Buffer) SetUint32BE(off int, v uint32) error {
	if err := b.checkRange(off, 4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b.v[off:], v)
	return nil
}

// Int32LE reads a little-endian two's-complement signed 32-bit integer at
// off. Stored values at or above 0x80000000 come back negative.
func (b *Buffer) Int32LE(off int) (int32, error) {
	v, err := b.Uint32LE(off)
	return int32(v), err
}

// Int32BE reads a big-endian two's-complement signed 32-bit integer at off.
func (b *Buffer) Int32BE(off int) (int32, error) {
	v, err := b.Uint32BE(off)
	return int32(v), err
}

// SetInt32LE writes v at off as its unsigned 32-bit representation,
// little-endian.
func (b *Buffer) SetInt32LE(off int, v int32) error {
	return b.SetUint32LE(off, uint32(v))
}

// SetInt32BE writes v at off as its unsigned 32-bit representation,
// big-endian.
func (b *Buffer) SetInt32BE(off int, v int32) error {
	return b.SetUint32BE(off, uint32(v))
}
