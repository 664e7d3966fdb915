package membuf

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuf(t *testing.T, data ...byte) *Buffer {
	t.Helper()
	b, err := FromBytes(data)
	require.NoError(t, err)
	t.Cleanup(b.Release)
	return b
}

func TestEndiannessCrossCheck(t *testing.T) {
	b := newBuf(t, 0x34, 0x12)

	le, err := b.Uint16LE(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0x1234, le)

	be, err := b.Uint16BE(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0x3412, be)
}

func TestSignedBoundary16(t *testing.T) {
	b := newBuf(t, 0, 0)
	require.NoError(t, b.SetInt16LE(0, -1))

	u, err := b.Uint16LE(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0xFFFF, u)

	s, err := b.Int16LE(0)
	require.NoError(t, err)
	assert.EqualValues(t, -1, s)
}

func TestWraparound32(t *testing.T) {
	b := newBuf(t, 0, 0, 0, 0)
	require.NoError(t, b.SetUint32BE(0, 0xFFFFFFFF))

	s, err := b.Int32BE(0)
	require.NoError(t, err)
	assert.EqualValues(t, -1, s)
}

func TestLittleEndianLayout32(t *testing.T) {
	b := newBuf(t, 0, 0, 0, 0)
	require.NoError(t, b.SetUint32LE(0, 0x01020304))
	assert.Equal(t, "[Buffer: 04 03 02 01]", b.HexDump())
}

func TestInt8TwosComplement(t *testing.T) {
	b := newBuf(t, 0x80, 0x7F, 0xFF)

	v, err := b.Int8(0)
	require.NoError(t, err)
	assert.EqualValues(t, -128, v)

	v, err = b.Int8(1)
	require.NoError(t, err)
	assert.EqualValues(t, 127, v)

	v, err = b.Int8(2)
	require.NoError(t, err)
	assert.EqualValues(t, -1, v)

	require.NoError(t, b.SetInt8(0, -2))
	raw, err := b.Byte(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0xFE, raw)
}

func TestCodecBoundsAtomic(t *testing.T) {
	b := newBuf(t, 0, 0, 0, 0)

	// Two bytes in range, two past the end: nothing may be written.
	assert.ErrorIs(t, b.SetUint32LE(2, 0xAABBCCDD), ErrIndexOutOfBounds)
	for off := 0; off < 4; off++ {
		c, err := b.Byte(off)
		require.NoError(t, err)
		assert.Zero(t, c, "byte at %d", off)
	}

	_, err := b.Uint32LE(1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = b.Uint16BE(3)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = b.Uint16BE(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	assert.ErrorIs(t, b.SetUint16LE(4, 1), ErrIndexOutOfBounds)
	assert.ErrorIs(t, b.SetInt32BE(-1, 0), ErrIndexOutOfBounds)
}

func TestRoundTripLaws(t *testing.T) {
	b, err := New(16)
	require.NoError(t, err)
	t.Cleanup(b.Release)

	// Deliberately misaligned offset.
	const off = 3

	conditions := map[string]interface{}{
		"uint8": func(v uint8) bool {
			require.NoError(t, b.SetUint8(off, v))
			r, err := b.Uint8(off)
			return err == nil && r == v
		},
		"int8": func(v int8) bool {
			require.NoError(t, b.SetInt8(off, v))
			r, err := b.Int8(off)
			return err == nil && r == v
		},
		"uint16le": func(v uint16) bool {
			require.NoError(t, b.SetUint16LE(off, v))
			r, err := b.Uint16LE(off)
			return err == nil && r == v
		},
		"uint16be": func(v uint16) bool {
			require.NoError(t, b.SetUint16BE(off, v))
			r, err := b.Uint16BE(off)
			return err == nil && r == v
		},
		"int16le": func(v int16) bool {
			require.NoError(t, b.SetInt16LE(off, v))
			r, err := b.Int16LE(off)
			return err == nil && r == v
		},
		"int16be": func(v int16) bool {
			require.NoError(t, b.SetInt16BE(off, v))
			r, err := b.Int16BE(off)
			return err == nil && r == v
		},
		"uint32le": func(v uint32) bool {
			require.NoError(t, b.SetUint32LE(off, v))
			r, err := b.Uint32LE(off)
			return err == nil && r == v
		},
		"uint32be": func(v uint32) bool {
			require.NoError(t, b.SetUint32BE(off, v))
			r, err := b.Uint32BE(off)
			return err == nil && r == v
		},
		"int32le": func(v int32) bool {
			require.NoError(t, b.SetInt32LE(off, v))
			r, err := b.Int32LE(off)
			return err == nil && r == v
		},
		"int32be": func(v int32) bool {
			require.NoError(t, b.SetInt32BE(off, v))
			r, err := b.Int32BE(off)
			return err == nil && r == v
		},
	}

	for name, condition := range conditions {
		if err := quick.Check(condition, &quick.Config{}); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestSignedUnsignedReinterpretation32(t *testing.T) {
	b := newBuf(t, 0, 0, 0, 0)

	require.NoError(t, b.SetInt32LE(0, -2))
	u, err := b.Uint32LE(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0xFFFFFFFE, u)

	require.NoError(t, b.SetUint32BE(0, 0x80000000))
	s, err := b.Int32BE(0)
	require.NoError(t, err)
	assert.EqualValues(t, -2147483648, s)
}
