package bmp

import (
	"encoding/binary"
	"image"
	"io"
)

type encoder struct {
	w io.Writer
}

func (e *encoder) writeHeaders(m *image.Paletted) error {
	b := m.Bounds()
	stride := rowStride(b.Dx())
	offset := fileHeaderSize + infoHeaderSize + maxColors*4

	file := fileHeader{
		Magic:      [2]byte{'B', 'M'},
		FileSize:   uint32(offset + stride*b.Dy()),
		DataOffset: uint32(offset),
	}
	if err := binary.Write(e.w, binary.LittleEndian, &file); err != nil {
		return err
	}

	info := infoHeader{
		Size:        infoHeaderSize,
		Width:       int32(b.Dx()),
		Height:      int32(b.Dy()),
		Planes:      1,
		BitCount:    bitsPerPixel,
		ImageSize:   uint32(stride * b.Dy()),
		ColorsUsed:  maxColors,
	}
	return binary.Write(e.w, binary.LittleEndian, &info)
}

func (e *encoder) writePalette(m *image.Paletted) error {
	for i := 0; i < maxColors; i++ {
		var tmp [4]byte
		if i < len(m.Palette) {
			r, g, b, _ := m.Palette[i].RGBA()
			tmp[0] = byte(b >> 8)
			tmp[1] = byte(g >> 8)
			tmp[2] = byte(r >> 8)
		}
		if _, err := e.w.Write(tmp[:]); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) writePixels(m *image.Paletted) error {
	b := m.Bounds()
	row := make([]byte, rowStride(b.Dx()))

	// Rows are written bottom-up
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for i := range row {
			row[i] = 0
		}
		for x := 0; x < b.Dx(); x++ {
			p := m.ColorIndexAt(b.Min.X+x, y) & 0x0f
			if x&1 == 0 {
				row[x>>1] = p << 4
			} else {
				row[x>>1] |= p
			}
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes the image m to w as an uncompressed 4bpp indexed bitmap.
// The palette is padded to 16 entries with black; more than 16 colors is
// an error.
func Encode(w io.Writer, m *image.Paletted) error {
	if len(m.Palette) > maxColors {
		return errTooManyColors
	}

	e := encoder{w: w}

	if err := e.writeHeaders(m); err != nil {
		return err
	}
	if err := e.writePalette(m); err != nil {
		return err
	}
	return e.writePixels(m)
}
