package tile

import (
	"image"
	"image/color"
)

// Pack encodes the tiles into one contiguous 4bpp pixel buffer. Tile i
// occupies bytes [i*Bytes, (i+1)*Bytes); within a tile each row is four
// bytes, two pixels per byte with the even pixel in the high nibble. The
// buffer decodes back to pixel-identical tiles with Unpack.
func Pack(tiles []Tile) ([]byte, error) {
	if len(tiles) == 0 {
		return nil, ErrEmptySet
	}

	buf := make([]byte, len(tiles)*Bytes)
	for i, t := range tiles {
		for y := 0; y < Height; y++ {
			for x := 0; x < bytesPerRow; x++ {
				buf[i*Bytes+y*bytesPerRow+x] = t[y*Width+x<<1]&0x0f<<4 | t[y*Width+x<<1+1]&0x0f
			}
		}
	}

	return buf, nil
}

// Unpack is the inverse of Pack.
func Unpack(buf []byte) ([]Tile, error) {
	if len(buf) == 0 || len(buf)%Bytes != 0 {
		return nil, ErrEmptySet
	}

	tiles := make([]Tile, len(buf)/Bytes)
	for i := range tiles {
		for y := 0; y < Height; y++ {
			for x := 0; x < bytesPerRow; x++ {
				b := buf[i*Bytes+y*bytesPerRow+x]
				tiles[i][y*Width+x<<1] = b >> 4
				tiles[i][y*Width+x<<1+1] = b & 0x0f
			}
		}
	}

	return tiles, nil
}

// Image renders the tiles as a single image of Width columns and
// len(tiles)*Height rows using the supplied palette, with tile i at rows
// [i*Height, (i+1)*Height). This is the combined tile set image written
// alongside the source output.
func Image(tiles []Tile, p color.Palette) (*image.Paletted, error) {
	if len(tiles) == 0 {
		return nil, ErrEmptySet
	}

	m := image.NewPaletted(image.Rect(0, 0, Width, len(tiles)*Height), p)
	for i, t := range tiles {
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				m.SetColorIndex(x, i*Height+y, t[y*Width+x])
			}
		}
	}

	return m, nil
}
