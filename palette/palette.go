/*
Package palette converts 16 entry RGB palettes to the Mega Drive packed
color format.

Each color is a 16-bit value holding 3 bits per channel; red in bits 1-3,
green in bits 5-7 and blue in bits 9-11, so a full palette entry is packed
as 0000BBB0GGG0RRR0. Channels are truncated, not rounded; the CRAM value
must match what the hardware would latch bit for bit.
*/
package palette

import (
	"errors"
	"image/color"
)

// Size is the number of colors in a hardware palette line
const Size = 16

var (
	// ErrMissing is returned when the source image carries no palette.
	ErrMissing = errors.New("palette: no palette")

	// ErrInvalidSize is returned when the palette does not have exactly
	// 16 entries.
	ErrInvalidSize = errors.New("palette: palette must have exactly 16 entries")
)

// Pack converts p to packed hardware colors, preserving entry order. The
// palette must have exactly Size entries.
func Pack(p color.Palette) ([]uint16, error) {
	if len(p) == 0 {
		return nil, ErrMissing
	}
	if len(p) != Size {
		return nil, ErrInvalidSize
	}

	packed := make([]uint16, Size)
	for i, c := range p {
		r, g, b, _ := c.RGBA()

		// RGBA returns 16-bit channels; keeping the top 3 bits is the
		// same truncation as an 8-bit channel >> 5
		packed[i] = uint16(r>>13&0x07<<1 | g>>13&0x07<<5 | b>>13&0x07<<9)
	}

	return packed, nil
}
