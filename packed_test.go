package gif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitFieldGetSet(t *testing.T) {
	f := bitField{name: "ColorResolution", mask: 0x70, shift: 4}
	assert.Equal(t, byte(7), f.max())

	for v := byte(0); v <= 7; v++ {
		b, err := f.set(0x8F, v)
		require.NoError(t, err)
		assert.Equal(t, v, f.get(b))
		assert.Equal(t, byte(0x8F), b&^f.mask, "bits outside the field changed")
	}
}

func TestBitFieldSetOutOfRange(t *testing.T) {
	f := bitField{name: "GlobalColorTableSize", mask: 0x07, shift: 0}

	b, err := f.set(0xA5, 8)
	assert.Equal(t, byte(0xA5), b)

	var rerr *RangeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "GlobalColorTableSize", rerr.Field)
	assert.Equal(t, byte(8), rerr.Value)
	assert.Equal(t, byte(7), rerr.Max)
	assert.EqualError(t, err, "gif: GlobalColorTableSize value 8 out of range [0, 7]")
}

func TestBitFieldFlag(t *testing.T) {
	f := bitField{name: "Reserved", mask: 0x18, shift: 3}

	assert.False(t, f.isSet(0xE7))
	assert.True(t, f.isSet(0x08))
	assert.True(t, f.isSet(0x10))
	assert.Equal(t, byte(0xFF), f.setFlag(0xE7, true))
	assert.Equal(t, byte(0xE7), f.setFlag(0xFF, false))
}

func TestPackedFieldLayout(t *testing.T) {
	fields := [][]bitField{
		{lsdHasGlobalColorTable, lsdColorResolution, lsdSorted, lsdGlobalColorTableSize},
		{idHasLocalColorTable, idInterlaced, idSorted, idReserved, idLocalColorTableSize},
	}
	for _, fs := range fields {
		var union byte
		for _, f := range fs {
			assert.Zero(t, union&f.mask, "%s overlaps", f.name)
			union |= f.mask
		}
		assert.Equal(t, byte(0xFF), union)
	}
}
