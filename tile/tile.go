/*
Package tile implements 8 by 8 tile extraction, deduplication and packing
for Mega Drive backgrounds.

A background image is split into 8 by 8 pixel tiles, left-to-right,
top-to-bottom. Pixel-identical tiles are folded into a single unique tile
and the background becomes a map of 16-bit indices into the unique tile
set. The unique tiles are then packed into one contiguous 4bpp pixel
buffer; a 4-bit index for each pixel, two pixels per byte with the high
nibble first, matching how the hardware reads pattern data.
*/
package tile

import (
	"errors"
	"image"
)

const (
	// Width and Height are the fixed tile dimensions in pixels
	Width  = 8
	Height = Width

	pixels = Width * Height

	// Bytes is the size of one packed 4bpp tile
	Bytes = pixels >> 1

	bytesPerRow = Width >> 1
)

var (
	// ErrSizeMismatch is returned when the image dimensions are not an
	// exact multiple of the tile dimensions.
	ErrSizeMismatch = errors.New("tile: image size is not a multiple of the tile size")

	// ErrEmptySet is returned when there are no tiles to pack.
	ErrEmptySet = errors.New("tile: empty tile set")

	// ErrTooManyTiles is returned when the unique tile count no longer
	// fits the 16-bit tile map.
	ErrTooManyTiles = errors.New("tile: more than 65536 unique tiles")
)

// A Tile holds the 64 palette indices of one 8 by 8 pixel block in
// row-major order. Each index is in the range 0 to 15. Tiles compare
// equal when every pixel matches.
type Tile [pixels]byte

// Pixel returns the palette index at (x, y).
func (t *Tile) Pixel(x, y int) byte {
	return t[y*Width+x]
}

// Split slices m into a row-major sequence of tiles; tile (0, 0) first,
// then increasing x, wrapping to the next row of tiles. The image width
// and height must be exact multiples of the tile dimensions.
func Split(m *image.Paletted) ([]Tile, error) {
	b := m.Bounds()
	if b.Dx()%Width != 0 || b.Dy()%Height != 0 {
		return nil, ErrSizeMismatch
	}

	tx := b.Dx() / Width
	ty := b.Dy() / Height

	tiles := make([]Tile, 0, tx*ty)
	for j := 0; j < ty; j++ {
		for i := 0; i < tx; i++ {
			var t Tile
			for y := 0; y < Height; y++ {
				for x := 0; x < Width; x++ {
					t[y*Width+x] = m.ColorIndexAt(b.Min.X+i*Width+x, b.Min.Y+j*Height+y) & 0x0f
				}
			}
			tiles = append(tiles, t)
		}
	}

	return tiles, nil
}
