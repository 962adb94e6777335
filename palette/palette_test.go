package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grays(n int) color.Palette {
	p := make(color.Palette, n)
	for i := range p {
		p[i] = color.RGBA{byte(i << 4), byte(i << 4), byte(i << 4), 0xff}
	}
	return p
}

func TestPackKnownValues(t *testing.T) {
	p := grays(Size)
	p[0] = color.RGBA{0x00, 0x00, 0x00, 0xff}
	p[1] = color.RGBA{0xff, 0xff, 0xff, 0xff}
	p[2] = color.RGBA{0xff, 0x00, 0x00, 0xff}
	p[3] = color.RGBA{0x00, 0xff, 0x00, 0xff}
	p[4] = color.RGBA{0x00, 0x00, 0xff, 0xff}

	packed, err := Pack(p)
	require.NoError(t, err)
	require.Len(t, packed, Size)

	assert.Equal(t, uint16(0x0000), packed[0])
	assert.Equal(t, uint16(0x0eee), packed[1])
	assert.Equal(t, uint16(0x000e), packed[2])
	assert.Equal(t, uint16(0x00e0), packed[3])
	assert.Equal(t, uint16(0x0e00), packed[4])
}

// Channels are truncated to 3 bits, never rounded
func TestPackTruncates(t *testing.T) {
	p := grays(Size)
	p[0] = color.RGBA{0x1f, 0x3f, 0x5f, 0xff} // just below 1, 2, 3
	p[1] = color.RGBA{0x20, 0x40, 0x60, 0xff} // exactly 1, 2, 3

	packed, err := Pack(p)
	require.NoError(t, err)

	assert.Equal(t, uint16(0<<1|1<<5|2<<9), packed[0])
	assert.Equal(t, uint16(1<<1|2<<5|3<<9), packed[1])
}

func TestPackPreservesOrder(t *testing.T) {
	packed, err := Pack(grays(Size))
	require.NoError(t, err)

	for i, v := range packed {
		c := uint16(i >> 1)
		assert.Equal(t, c<<1|c<<5|c<<9, v, "entry %d", i)
	}
}

func TestPackWrongSize(t *testing.T) {
	for _, n := range []int{1, 4, 15, 17, 32} {
		_, err := Pack(grays(n))
		assert.Equal(t, ErrInvalidSize, err, "%d entries", n)
	}
}

func TestPackMissing(t *testing.T) {
	_, err := Pack(nil)
	assert.Equal(t, ErrMissing, err)
}
