package tile

import "math"

// Dedupe scans tiles in order and folds pixel-identical tiles together.
// It returns the unique tiles in order of first appearance together with
// a map of the same length as tiles where each entry is the index of the
// matching unique tile. Map entries are 16-bit, so more than 65536
// unique tiles fails with ErrTooManyTiles.
//
// The scan is a deliberately simple pairwise comparison; for each tile
// every unique tile seen so far is checked in order and the first exact
// match wins. This keeps the first-occurrence ordering stable which the
// packed tile set layout depends on. Content hashing would be faster but
// would need to preserve the same ordering to be a safe substitute.
func Dedupe(tiles []Tile) ([]Tile, []uint16, error) {
	unique := make([]Tile, 0, len(tiles))
	tilemap := make([]uint16, len(tiles))

	for i, t := range tiles {
		found := false
		for j, u := range unique {
			if t == u {
				tilemap[i] = uint16(j)
				found = true
				break
			}
		}
		if !found {
			if len(unique) > math.MaxUint16 {
				return nil, nil, ErrTooManyTiles
			}
			tilemap[i] = uint16(len(unique))
			unique = append(unique, t)
		}
	}

	return unique, tilemap, nil
}
