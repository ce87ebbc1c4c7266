package raywalk

import (
	"fmt"
	"math"
)

// Tile identifies the occupancy kind of a single grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
)

// TileGrid is a rectangular occupancy map. Cell (c, r) covers the axis
// aligned square [c, c+1) x [r, r+1) in world units, one unit per cell.
// The grid is immutable once constructed, so casters and resolvers can
// share it without locking.
type TileGrid struct {
	width  int
	height int
	cells  []Tile
}

// NewTileGrid copies rows into an immutable grid. The input must be
// non-empty and rectangular; jagged rows are rejected.
func NewTileGrid(rows [][]Tile) (*TileGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("tile grid: empty input")
	}
	width := len(rows[0])
	g := &TileGrid{
		width:  width,
		height: len(rows),
		cells:  make([]Tile, width*len(rows)),
	}
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("tile grid: row %d has %d cells, want %d", r, len(row), width)
		}
		copy(g.cells[r*width:(r+1)*width], row)
	}
	return g, nil
}

// ParseTiles builds a grid from a string map where '#' marks a wall and any
// other rune is empty space.
func ParseTiles(rows []string) (*TileGrid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("tile grid: empty input")
	}
	tiles := make([][]Tile, len(rows))
	for r, line := range rows {
		tiles[r] = make([]Tile, len(line))
		for c, ch := range line {
			if ch == '#' {
				tiles[r][c] = TileWall
			}
		}
	}
	return NewTileGrid(tiles)
}

// Width returns the number of columns.
func (g *TileGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *TileGrid) Height() int { return g.height }

// wall reports whether the cell at integer coordinates is a wall.
// Out-of-bounds cells are open space.
func (g *TileGrid) wall(col, row int) bool {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return false
	}
	return g.cells[row*g.width+col] == TileWall
}

// PointBlocked reports whether the cell containing (x, y) is a wall.
// Coordinates outside the grid resolve to open space rather than an error;
// rays past the map edge simply miss.
func (g *TileGrid) PointBlocked(x, y float64) bool {
	return g.wall(int(math.Floor(x)), int(math.Floor(y)))
}

// CircleBlocked reports whether a circle of the given radius centered at
// (cx, cy) overlaps any wall cell. Candidate cells under the circle's
// bounding box are scanned in row-major order with an early exit on the
// first overlap.
func (g *TileGrid) CircleBlocked(cx, cy, radius float64) bool {
	minCol := int(math.Floor(cx - radius))
	maxCol := int(math.Floor(cx + radius))
	minRow := int(math.Floor(cy - radius))
	maxRow := int(math.Floor(cy + radius))
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !g.wall(col, row) {
				continue
			}
			if circleOverlapsCell(cx, cy, radius, col, row) {
				return true
			}
		}
	}
	return false
}

// circleOverlapsCell tests one wall cell against the circle: center strictly
// inside the cell, then perpendicular distance to an edge the center
// projects onto, then the four corner distances.
func circleOverlapsCell(cx, cy, radius float64, col, row int) bool {
	x0 := float64(col)
	y0 := float64(row)
	x1 := x0 + 1
	y1 := y0 + 1

	if cx > x0 && cx < x1 && cy > y0 && cy < y1 {
		return true
	}

	if cx >= x0 && cx <= x1 {
		if math.Min(math.Abs(cy-y0), math.Abs(cy-y1)) < radius {
			return true
		}
	}
	if cy >= y0 && cy <= y1 {
		if math.Min(math.Abs(cx-x0), math.Abs(cx-x1)) < radius {
			return true
		}
	}

	for _, corner := range [4][2]float64{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		if math.Hypot(cx-corner[0], cy-corner[1]) < radius {
			return true
		}
	}
	return false
}
