package raywalk

import (
	"fmt"
	"math/rand"
)

// LevelSpec controls procedural level generation. Zero values are rejected;
// start from DefaultLevelSpec and override.
type LevelSpec struct {
	Width  int
	Height int

	// Segments is how many axis-aligned wall runs to scatter.
	Segments int

	// SegMinLen and SegMaxLen bound each run's cell count.
	SegMinLen int
	SegMaxLen int

	// ThicknessVariance adds up to this many extra cells on each side of
	// a run.
	ThicknessVariance int

	// SpawnX, SpawnY and SpawnClearance keep an open disc around the
	// player start so a level never generates the mover inside a wall.
	SpawnX, SpawnY float64
	SpawnClearance float64

	Seed int64
}

// DefaultLevelSpec returns generation parameters sized for the demos.
func DefaultLevelSpec() LevelSpec {
	return LevelSpec{
		Width:             24,
		Height:            24,
		Segments:          10,
		SegMinLen:         3,
		SegMaxLen:         8,
		ThicknessVariance: 1,
		SpawnX:            12,
		SpawnY:            12,
		SpawnClearance:    2.5,
		Seed:              1,
	}
}

// Validate reports the first unusable generation parameter.
func (s LevelSpec) Validate() error {
	if s.Width < 3 || s.Height < 3 {
		return fmt.Errorf("level: %dx%d grid, want at least 3x3", s.Width, s.Height)
	}
	if s.Segments < 0 {
		return fmt.Errorf("level: %d segments, want >= 0", s.Segments)
	}
	if s.SegMinLen < 1 || s.SegMaxLen < s.SegMinLen {
		return fmt.Errorf("level: segment length range [%d, %d] invalid", s.SegMinLen, s.SegMaxLen)
	}
	if s.ThicknessVariance < 0 {
		return fmt.Errorf("level: thickness variance %d, want >= 0", s.ThicknessVariance)
	}
	return nil
}

// GenerateLevel builds a bordered grid with randomly placed axis-aligned
// wall runs. The same spec always yields the same level.
func GenerateLevel(spec LevelSpec) (*TileGrid, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	w, h := spec.Width, spec.Height
	rows := make([][]Tile, h)
	for r := range rows {
		rows[r] = make([]Tile, w)
	}
	for x := 0; x < w; x++ {
		rows[0][x] = TileWall
		rows[h-1][x] = TileWall
	}
	for y := 0; y < h; y++ {
		rows[y][0] = TileWall
		rows[y][w-1] = TileWall
	}

	rng := rand.New(rand.NewSource(spec.Seed))
	for s := 0; s < spec.Segments; s++ {
		length := spec.SegMinLen + rng.Intn(spec.SegMaxLen-spec.SegMinLen+1)
		thickness := 0
		if spec.ThicknessVariance > 0 {
			thickness = rng.Intn(spec.ThicknessVariance + 1)
		}
		horizontal := rng.Intn(2) == 0
		cx := rng.Intn(w-2) + 1
		cy := rng.Intn(h-2) + 1
		dx, dy := 0, 1
		if horizontal {
			dx, dy = 1, 0
		}
		perpX, perpY := dy, dx
		for l := 0; l < length; l++ {
			if cx < 1 || cx >= w-1 || cy < 1 || cy >= h-1 {
				break
			}
			for t := -thickness; t <= thickness; t++ {
				trySetWall(rows, spec, cx+perpX*t, cy+perpY*t)
			}
			cx += dx
			cy += dy
		}
	}

	return NewTileGrid(rows)
}

// trySetWall marks an interior cell as a wall while keeping the spawn
// clearance disc open.
func trySetWall(rows [][]Tile, spec LevelSpec, x, y int) {
	if x < 1 || x >= spec.Width-1 || y < 1 || y >= spec.Height-1 {
		return
	}
	ddx := float64(x) + 0.5 - spec.SpawnX
	ddy := float64(y) + 0.5 - spec.SpawnY
	if ddx*ddx+ddy*ddy < spec.SpawnClearance*spec.SpawnClearance {
		return
	}
	rows[y][x] = TileWall
}
