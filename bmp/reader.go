package bmp

import (
	"encoding/binary"
	"image"
	"image/color"
	"io"
	"io/ioutil"
)

func upperNibble(b byte) byte {
	return b >> 4
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}

type decoder struct {
	r io.Reader

	file fileHeader
	info infoHeader

	palette color.Palette
	image   *image.Paletted
}

func (d *decoder) readHeaders() error {
	if err := binary.Read(d.r, binary.LittleEndian, &d.file); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errNotEnough
		}
		return err
	}
	if d.file.Magic != [2]byte{'B', 'M'} {
		return ErrUnsupported
	}

	if err := binary.Read(d.r, binary.LittleEndian, &d.info); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errNotEnough
		}
		return err
	}
	if d.info.Size < infoHeaderSize {
		return ErrUnsupported
	}
	if d.info.Planes != 1 || d.info.BitCount != bitsPerPixel || d.info.Compression != 0 {
		return ErrUnsupported
	}
	if d.info.Width <= 0 || d.info.Height == 0 {
		return ErrUnsupported
	}
	if d.info.Width > maxDimension || d.info.Height > maxDimension || d.info.Height < -maxDimension {
		return ErrUnsupported
	}

	// Skip any V4/V5 header extension; the color table follows it
	if d.info.Size > infoHeaderSize {
		if _, err := io.CopyN(ioutil.Discard, d.r, int64(d.info.Size-infoHeaderSize)); err != nil {
			return errNotEnough
		}
	}

	return nil
}

func (d *decoder) readPalette() error {
	// A 4bpp pixel cannot index past 16 colors
	if d.info.ColorsUsed > maxColors {
		return ErrUnsupported
	}

	n := int(d.info.ColorsUsed)
	if n == 0 {
		// No explicit count; infer from the gap between the headers and
		// the pixel data
		n = (int(d.file.DataOffset) - fileHeaderSize - int(d.info.Size)) / 4
		if n > maxColors {
			n = maxColors
		}
	}
	if n <= 0 {
		return ErrMissingPalette
	}

	d.palette = make(color.Palette, n)
	for i := range d.palette {
		var tmp [4]byte
		if _, err := io.ReadFull(d.r, tmp[:]); err != nil {
			return errNotEnough
		}
		// Entries are stored B, G, R, reserved
		d.palette[i] = color.RGBA{tmp[2], tmp[1], tmp[0], 0xff}
	}

	if skip := int64(d.file.DataOffset) - fileHeaderSize - int64(d.info.Size) - int64(n*4); skip > 0 {
		if _, err := io.CopyN(ioutil.Discard, d.r, skip); err != nil {
			return errNotEnough
		}
	}

	return nil
}

func (d *decoder) readPixels() error {
	width := int(d.info.Width)

	// A positive height means the rows are stored bottom-up
	height := int(d.info.Height)
	topDown := false
	if height < 0 {
		height = -height
		topDown = true
	}

	d.image = image.NewPaletted(image.Rect(0, 0, width, height), d.palette)

	row := make([]byte, rowStride(width))
	for i := 0; i < height; i++ {
		if _, err := io.ReadFull(d.r, row); err != nil {
			return errNotEnough
		}

		y := height - 1 - i
		if topDown {
			y = i
		}

		for x := 0; x < width; x++ {
			b := row[x>>1]
			if x&1 == 0 {
				d.image.SetColorIndex(x, y, upperNibble(b))
			} else {
				d.image.SetColorIndex(x, y, lowerNibble(b))
			}
		}
	}

	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := d.readHeaders(); err != nil {
		return err
	}
	if err := d.readPalette(); err != nil {
		return err
	}
	if configOnly {
		return nil
	}

	return d.readPixels()
}

// Decode reads a 4bpp indexed bitmap from r and returns it as an
// image.Paletted. The palette holds however many entries the color table
// declares, which need not be the full 16.
func Decode(r io.Reader) (*image.Paletted, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a 4bpp bitmap
// without decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	height := int(d.info.Height)
	if height < 0 {
		height = -height
	}
	return image.Config{
		ColorModel: d.palette,
		Width:      int(d.info.Width),
		Height:     height,
	}, nil
}
