package main

import (
	"errors"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/retrograde/genbg"
	"github.com/retrograde/genbg/bmp"
	"github.com/retrograde/genbg/emit"
	"github.com/retrograde/genbg/palette"
	"github.com/retrograde/genbg/tile"
	"github.com/urfave/cli/v2"
)

// One exit status per failure cause so calling tooling can branch
const (
	exitUsage = iota + 2
	exitMissingInput
	exitUnsupportedFormat
	exitSizeMismatch
	exitEmptyTileset
	exitMissingPalette
	exitPaletteSize
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func exitStatus(err error) int {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return exitMissingInput
	case errors.Is(err, bmp.ErrUnsupported):
		return exitUnsupportedFormat
	case errors.Is(err, tile.ErrSizeMismatch):
		return exitSizeMismatch
	case errors.Is(err, tile.ErrEmptySet):
		return exitEmptyTileset
	case errors.Is(err, bmp.ErrMissingPalette), errors.Is(err, palette.ErrMissing):
		return exitMissingPalette
	case errors.Is(err, palette.ErrInvalidSize):
		return exitPaletteSize
	}
	return 1
}

// Symbols have to be plain identifiers regardless of the input filename
func symbol(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, s)
	if s == "" || s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s
}

func main() {
	app := cli.NewApp()

	app.Name = "genbg"
	app.Usage = "Convert indexed bitmaps to Mega Drive background data"
	app.ArgsUsage = "FILE"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			EnvVars: []string{"GENBG_FORMAT"},
			Value:   "asm",
			Usage:   "output syntax, asm or c",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "base path for output files, defaults to the input path",
		},
		&cli.BoolFlag{
			Name:    "quantize",
			Aliases: []string{"q"},
			Usage:   "accept true color input and reduce it to 16 colors",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.ShowAppHelpAndExit(c, exitUsage)
		}

		format, err := emit.ParseFormat(c.String("format"))
		if err != nil {
			return cli.NewExitError(err, exitUsage)
		}

		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		file := c.Args().First()

		base := c.String("output")
		if base == "" {
			base = strings.TrimSuffix(file, filepath.Ext(file))
		}
		name := symbol(filepath.Base(base))

		conv := genbg.New(c.Bool("quantize"), logger)

		bg, err := conv.ConvertFile(file)
		if err != nil {
			return cli.NewExitError(err, exitStatus(err))
		}
		logger.Printf("%dx%d map, %d unique tiles\n", bg.MapWidth, bg.MapHeight, bg.TileCount())

		ext := ".s"
		if format == emit.C {
			ext = ".c"
		}

		src, err := os.Create(base + ext)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer src.Close()

		if err := bg.WriteSource(src, name, format); err != nil {
			return cli.NewExitError(err, 1)
		}

		img, err := os.Create(base + "_tiles.bmp")
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer img.Close()

		if err := bg.WriteImage(img); err != nil {
			return cli.NewExitError(err, 1)
		}

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
