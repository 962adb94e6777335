/*
Package bmp implements a decoder and encoder for uncompressed 4bpp
indexed Windows bitmaps.

The standard library and golang.org/x/image/bmp only handle 8, 24 and 32
bit images so the 4bpp layout used by background art is decoded here; a
BITMAPINFOHEADER, up to 16 BGRX palette entries and bottom-up pixel rows
holding two palette indices per byte with the high nibble first, each row
padded to a multiple of four bytes.
*/
package bmp

import "errors"

const (
	fileHeaderSize = 14
	infoHeaderSize = 40

	bitsPerPixel = 4
	maxColors    = 1 << bitsPerPixel

	// Headers are untrusted; refuse dimensions no background image
	// would ever have rather than sizing allocations from them
	maxDimension = 1 << 12
)

var (
	// ErrUnsupported is returned for anything other than an uncompressed
	// 4bpp indexed bitmap.
	ErrUnsupported = errors.New("bmp: not an uncompressed 4bpp indexed bitmap")

	// ErrMissingPalette is returned when the bitmap carries no color table.
	ErrMissingPalette = errors.New("bmp: no color table")

	errNotEnough     = errors.New("bmp: not enough image data")
	errTooManyColors = errors.New("bmp: image has more than 16 colors")
)

type fileHeader struct {
	Magic      [2]byte
	FileSize   uint32
	Reserved   uint32
	DataOffset uint32
}

type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

func rowStride(width int) int {
	return ((width+1)/2 + 3) &^ 3
}
