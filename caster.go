package raywalk

import (
	"fmt"
	"math"
)

// Face identifies which side of a unit cell a ray crossed into.
type Face uint8

const (
	FaceEast  Face = iota // +x side
	FaceSouth             // +y side
	FaceWest              // -x side
	FaceNorth             // -y side
)

// String returns the compass name of the face.
func (f Face) String() string {
	switch f {
	case FaceEast:
		return "east"
	case FaceSouth:
		return "south"
	case FaceWest:
		return "west"
	case FaceNorth:
		return "north"
	}
	return fmt.Sprintf("face(%d)", uint8(f))
}

// CastResult reports the first wall struck by a cast. A miss leaves Hit
// false and the remaining fields zero. Distance is the Euclidean ray length
// from the origin to the crossing point.
type CastResult struct {
	Hit      bool
	X, Y     float64
	Face     Face
	Distance float64
}

// Caster finds the first wall cell a ray strikes within a maximum range.
// It holds only the shared read-only grid, so one caster serves every
// screen column of a frame.
type Caster struct {
	grid        *TileGrid
	maxDistance float64
}

// NewCaster validates the tuning values and binds the caster to a grid.
func NewCaster(grid *TileGrid, cfg Config) (*Caster, error) {
	if grid == nil {
		return nil, fmt.Errorf("caster: nil grid")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Caster{grid: grid, maxDistance: cfg.MaxCastDistance}, nil
}

const (
	// coordEps snaps crossing coordinates solved through the line equation
	// back to the integer grid line they sit a hair off of.
	coordEps = 1e-9

	// axisEps decides when a heading component is too small to divide by
	// and the walk degrades to a single crossing sequence.
	axisEps = 1e-12
)

// snapInt rounds v to the nearest integer when it is within tolerance,
// reporting whether it snapped.
func snapInt(v float64) (float64, bool) {
	r := math.Round(v)
	if math.Abs(v-r) < coordEps {
		return r, true
	}
	return v, false
}

// nextGridLine returns the next integer grid line from v in the direction
// of travel. Starting exactly on a line steps a full unit.
func nextGridLine(v, dir float64) float64 {
	if r, ok := snapInt(v); ok {
		if dir < 0 {
			return r - 1
		}
		return r + 1
	}
	if dir < 0 {
		return math.Ceil(v) - 1
	}
	return math.Floor(v) + 1
}

// enteredCell maps coordinate v of a crossing point to the cell index on
// the far side of the crossing: an integral coordinate steps back one cell
// when travel along its axis is negative, so the cell the ray enters is
// tested rather than the boundary it sits on. This is what keeps corners
// from being stepped over.
func enteredCell(v, dir float64) int {
	if r, ok := snapInt(v); ok {
		if dir < 0 {
			return int(r) - 1
		}
		return int(r)
	}
	return int(math.Floor(v))
}

// finite rejects the NaN and Inf inputs that would otherwise walk the
// crossing loops forever.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Cast walks the pose's heading through the grid and returns the first wall
// crossing within the configured range. The walk advances between integer
// grid-line crossings, always taking the nearer of the next x-line and
// next y-line crossing; ties go to the y-line branch, matching the face
// tie-break. The pose is taken by value and never mutated. Non-finite
// origins strike nothing and report a miss.
func (c *Caster) Cast(origin Pose) CastResult {
	if !finite(origin.X) || !finite(origin.Y) || !finite(origin.Heading) {
		return CastResult{}
	}
	sc := math.Cos(origin.Heading)
	ss := math.Sin(origin.Heading)

	// Axis-aligned headings get explicit single-sequence walks instead of
	// dividing by a vanishing component.
	switch {
	case math.Abs(ss) <= axisEps:
		return c.castAxis(origin.X, origin.Y, math.Copysign(1, sc), 0)
	case math.Abs(sc) <= axisEps:
		return c.castAxis(origin.X, origin.Y, 0, math.Copysign(1, ss))
	}
	return c.castSkew(origin.X, origin.Y, sc, ss)
}

// castAxis walks a ray parallel to a grid axis. Exactly one of dx, dy is
// nonzero (and is ±1).
func (c *Caster) castAxis(x0, y0, dx, dy float64) CastResult {
	px, py := x0, y0
	for {
		if dx != 0 {
			px = nextGridLine(px, dx)
		} else {
			py = nextGridLine(py, dy)
		}
		dist := math.Abs(px-x0) + math.Abs(py-y0)
		if dist > c.maxDistance {
			return CastResult{}
		}
		if c.grid.wall(enteredCell(px, dx), enteredCell(py, dy)) {
			return CastResult{Hit: true, X: px, Y: py, Face: c.faceAt(px, py, dx, dy), Distance: dist}
		}
	}
}

// castSkew interleaves the two crossing sequences of a ray that is not
// axis-aligned, solving the partner coordinate of each crossing through the
// ray's line equation y = slope·x + b.
func (c *Caster) castSkew(x0, y0, sc, ss float64) CastResult {
	slope := ss / sc
	b := y0 - slope*x0

	nx := nextGridLine(x0, sc)
	nxY, _ := snapInt(slope*nx + b)
	ny := nextGridLine(y0, ss)
	nyX, _ := snapInt((ny - b) / slope)

	for {
		distX := math.Hypot(nx-x0, nxY-y0)
		distY := math.Hypot(nyX-x0, ny-y0)
		if distY <= distX {
			if distY > c.maxDistance {
				return CastResult{}
			}
			if c.grid.wall(enteredCell(nyX, sc), enteredCell(ny, ss)) {
				return CastResult{Hit: true, X: nyX, Y: ny, Face: c.faceAt(nyX, ny, sc, ss), Distance: distY}
			}
			ny = nextGridLine(ny, ss)
			nyX, _ = snapInt((ny - b) / slope)
		} else {
			if distX > c.maxDistance {
				return CastResult{}
			}
			if c.grid.wall(enteredCell(nx, sc), enteredCell(nxY, ss)) {
				return CastResult{Hit: true, X: nx, Y: nxY, Face: c.faceAt(nx, nxY, sc, ss), Distance: distX}
			}
			nx = nextGridLine(nx, sc)
			nxY, _ = snapInt(slope*nx + b)
		}
	}
}

// faceAt disambiguates which cell side the crossing at (x, y) struck, given
// the signs of the heading components.
func (c *Caster) faceAt(x, y, sc, ss float64) Face {
	_, xInt := snapInt(x)
	_, yInt := snapInt(y)
	switch {
	case xInt && yInt:
		return c.cornerFace(x, y, sc, ss)
	case xInt:
		if sc < 0 {
			return FaceWest
		}
		return FaceEast
	case yInt:
		if ss < 0 {
			return FaceNorth
		}
		return FaceSouth
	}
	// Both coordinates fractional cannot happen for a true crossing; fall
	// back to the horizontal rule rather than crash.
	if sc < 0 {
		return FaceWest
	}
	return FaceEast
}

// cornerFace resolves a hit exactly on a grid corner by probing the cells
// around it: when the cell horizontally ahead of the corner (on the near
// side vertically) is also a wall the horizontal face wins, otherwise the
// vertical face does. East/west and south/north follow the heading signs.
func (c *Caster) cornerFace(x, y, sc, ss float64) Face {
	aheadCol := enteredCell(x, sc)
	nearRow := enteredCell(y, -ss)
	if c.grid.wall(aheadCol, nearRow) {
		if sc < 0 {
			return FaceWest
		}
		return FaceEast
	}
	if ss < 0 {
		return FaceNorth
	}
	return FaceSouth
}
