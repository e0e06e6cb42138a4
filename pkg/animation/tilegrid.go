// Package animation provides sprite-sheet frame arithmetic and
// playback: tile grids mapping frame indices to source rectangles,
// named animation clips over those frames, an animator stepping
// through them, and eased position tweens. Image decoding and
// rendering are out of scope; everything here is index and rectangle
// math over geometry types.
package animation

import (
	"fmt"

	"github.com/opd-ai/go-gamekit/pkg/geom"
)

// TileGrid describes a sprite sheet cut into equal tiles. Tiles are
// numbered row-major from the top-left.
type TileGrid struct {
	sheetW, sheetH int
	tileW, tileH   int
	srcW, srcH     int
	cols, rows     int
}

// NewTileGrid returns the grid for a sheet of the given pixel
// dimensions cut into tileW x tileH tiles. Partial tiles at the right
// and bottom edges are discarded.
func NewTileGrid(sheetW, sheetH, tileW, tileH int) (*TileGrid, error) {
	if sheetW <= 0 || sheetH <= 0 {
		return nil, fmt.Errorf("animation: invalid sheet size %dx%d", sheetW, sheetH)
	}
	if tileW <= 0 || tileH <= 0 {
		return nil, fmt.Errorf("animation: invalid tile size %dx%d", tileW, tileH)
	}
	return &TileGrid{
		sheetW: sheetW,
		sheetH: sheetH,
		tileW:  tileW,
		tileH:  tileH,
		srcW:   tileW,
		srcH:   tileH,
		cols:   sheetW / tileW,
		rows:   sheetH / tileH,
	}, nil
}

// Columns returns the number of tiles per row.
func (g *TileGrid) Columns() int { return g.cols }

// Rows returns the number of tile rows.
func (g *TileGrid) Rows() int { return g.rows }

// TileCount returns the total number of tiles.
func (g *TileGrid) TileCount() int { return g.cols * g.rows }

// TileSize returns the current tile extent.
func (g *TileGrid) TileSize() geom.Size {
	return geom.SizeOf(float64(g.tileW), float64(g.tileH))
}

// TileRect returns the source rectangle of the tile at index.
func (g *TileGrid) TileRect(index int) (geom.Rectangle, error) {
	if index < 0 || index >= g.TileCount() {
		return geom.Rectangle{}, fmt.Errorf("animation: tile index %d out of range [0, %d)", index, g.TileCount())
	}
	tx := index % g.cols
	ty := index / g.cols
	return geom.RectFromPosSize(
		float64(tx*g.tileW),
		float64(ty*g.tileH),
		float64(g.tileW),
		float64(g.tileH),
	), nil
}

// Resize changes the tile extent, keeping the grid's column and row
// counts. TileRect results scale accordingly.
func (g *TileGrid) Resize(tileW, tileH int) error {
	if tileW <= 0 || tileH <= 0 {
		return fmt.Errorf("animation: invalid tile size %dx%d", tileW, tileH)
	}
	g.tileW = tileW
	g.tileH = tileH
	return nil
}

// Scale returns the current tile size relative to the source tile
// size, per axis.
func (g *TileGrid) Scale() (sx, sy float64) {
	return float64(g.tileW) / float64(g.srcW), float64(g.tileH) / float64(g.srcH)
}
