package genbg

import (
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
	_ "golang.org/x/image/bmp"

	"github.com/retrograde/genbg/bmp"
	"github.com/retrograde/genbg/emit"
	"github.com/retrograde/genbg/palette"
	"github.com/retrograde/genbg/tile"
)

// A Background holds the converted artifacts for one source image. All
// fields follow the hardware layout; the map and palette are 16-bit
// values, the tiles are packed 4bpp pixel data.
type Background struct {
	MapWidth  int // in tiles
	MapHeight int
	Map       []uint16
	Tiles     []byte
	Palette   []uint16

	image *image.Paletted
}

// TileCount returns the number of unique tiles in the set.
func (bg *Background) TileCount() int {
	return len(bg.Tiles) / tile.Bytes
}

// ConvertFile converts the image at file.
func (c *Converter) ConvertFile(file string) (*Background, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := c.load(f)
	if err != nil {
		return nil, err
	}

	return c.Convert(m)
}

func (c *Converter) load(f *os.File) (*image.Paletted, error) {
	m, err := bmp.Decode(f)
	if err == nil {
		return m, nil
	}
	if !c.quantize {
		return nil, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	c.logger.Printf("Quantizing %s input to %d colors\n", format, palette.Size)

	b := src.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, palette.Size), src))
	draw.Draw(pm, b, src, b.Min, draw.Src)
	pm.Palette = padPalette(pm.Palette)

	return pm, nil
}

// Pad palette to exactly 16 entries
func padPalette(p color.Palette) color.Palette {
	for len(p) < palette.Size {
		p = append(p, color.RGBA{0, 0, 0, 0xff})
	}
	return p
}

// Convert runs the single pass pipeline over m; split into tiles, fold
// identical tiles, pack the unique set and the palette. Any stage
// failing aborts the conversion.
func (c *Converter) Convert(m *image.Paletted) (*Background, error) {
	b := m.Bounds()

	tiles, err := tile.Split(m)
	if err != nil {
		return nil, err
	}
	c.logger.Printf("Extracted %d tiles\n", len(tiles))

	unique, tilemap, err := tile.Dedupe(tiles)
	if err != nil {
		return nil, err
	}
	c.logger.Printf("%d unique tiles\n", len(unique))

	packed, err := tile.Pack(unique)
	if err != nil {
		return nil, err
	}

	img, err := tile.Image(unique, m.Palette)
	if err != nil {
		return nil, err
	}

	pal, err := palette.Pack(m.Palette)
	if err != nil {
		return nil, err
	}

	return &Background{
		MapWidth:  b.Dx() / tile.Width,
		MapHeight: b.Dy() / tile.Height,
		Map:       tilemap,
		Tiles:     packed,
		Palette:   pal,
		image:     img,
	}, nil
}

// WriteSource emits the tile map, palette and tile set as source arrays
// to w, with symbols derived from name.
func (bg *Background) WriteSource(w io.Writer, name string, f emit.Format) error {
	e := emit.New(w, f)
	upper := strings.ToUpper(name)

	if err := e.Constant(upper+"_MAP_WIDTH", bg.MapWidth); err != nil {
		return err
	}
	if err := e.Constant(upper+"_MAP_HEIGHT", bg.MapHeight); err != nil {
		return err
	}
	if err := e.Constant(upper+"_TILES", bg.TileCount()); err != nil {
		return err
	}
	if err := e.Words(name+"_map", bg.Map); err != nil {
		return err
	}
	if err := e.Words(name+"_palette", bg.Palette); err != nil {
		return err
	}
	return e.Bytes(name+"_tiles", bg.Tiles)
}

// WriteImage writes the combined unique tile set to w as a 4bpp bitmap,
// one tile high per 8 rows in packed order.
func (bg *Background) WriteImage(w io.Writer) error {
	return bmp.Encode(w, bg.image)
}
