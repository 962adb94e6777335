/*
Package genbg converts indexed bitmap images into the deduplicated tile
set, tile map and palette data a Sega Mega Drive background is built
from.
*/
package genbg

import "log"

type Converter struct {
	quantize bool
	logger   *log.Logger
}

// New returns a Converter. When quantize is set, true color input is
// reduced to a 16 color palette instead of being rejected.
func New(quantize bool, logger *log.Logger) *Converter {
	return &Converter{
		quantize: quantize,
		logger:   logger,
	}
}
