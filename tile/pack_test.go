package tile

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackNibbleOrder(t *testing.T) {
	var tl Tile
	tl[0] = 0x1 // (0, 0), even pixel, high nibble
	tl[1] = 0x2 // (1, 0), odd pixel, low nibble

	buf, err := Pack([]Tile{tl})
	require.NoError(t, err)
	require.Len(t, buf, Bytes)

	assert.Equal(t, byte(0x12), buf[0])
	assert.Equal(t, byte(0x00), buf[1])
}

func TestPackLayout(t *testing.T) {
	tiles := []Tile{fill(1), fill(2), fill(3)}

	buf, err := Pack(tiles)
	require.NoError(t, err)
	require.Len(t, buf, len(tiles)*Bytes)

	// Tile i occupies bytes [i*Bytes, (i+1)*Bytes)
	for i, tl := range tiles {
		assert.Equal(t, tl[0]<<4|tl[1], buf[i*Bytes])
	}
}

func TestPackRoundTrip(t *testing.T) {
	tiles := make([]Tile, 5)
	for i := range tiles {
		tiles[i] = fill(i)
	}

	buf, err := Pack(tiles)
	require.NoError(t, err)

	got, err := Unpack(buf)
	require.NoError(t, err)
	assert.Equal(t, tiles, got)
}

func TestPackEmpty(t *testing.T) {
	_, err := Pack(nil)
	assert.Equal(t, ErrEmptySet, err)

	_, err = Unpack(nil)
	assert.Equal(t, ErrEmptySet, err)
}

func TestImage(t *testing.T) {
	tiles := []Tile{fill(1), fill(2)}

	m, err := Image(tiles, testPalette())
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, Width, 2*Height), m.Bounds())

	// Re-splitting the combined image must reproduce the tiles
	got, err := Split(m)
	require.NoError(t, err)
	assert.Equal(t, tiles, got)
}

func TestImageEmpty(t *testing.T) {
	_, err := Image(nil, testPalette())
	assert.Equal(t, ErrEmptySet, err)
}
