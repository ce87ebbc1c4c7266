package raywalk

import (
	"fmt"
	"math"
)

// Projector derives per-column ray headings from the field of view and
// screen width, and removes the fisheye distortion from raw hit distances.
type Projector struct {
	screenWidth int
	planeDist   float64
}

// NewProjector builds a projector for a screen of the given pixel width and
// horizontal field of view in radians.
func NewProjector(screenWidth int, fov float64) (*Projector, error) {
	if screenWidth <= 0 {
		return nil, fmt.Errorf("projector: screen width %d, want > 0", screenWidth)
	}
	if fov <= 0 || fov >= math.Pi {
		return nil, fmt.Errorf("projector: fov %v rad, want in (0, pi)", fov)
	}
	return &Projector{
		screenWidth: screenWidth,
		planeDist:   1 / (2 * math.Tan(fov/2)),
	}, nil
}

// ScreenWidth returns the column count the projector was built for.
func (p *Projector) ScreenWidth() int { return p.screenWidth }

// ColumnAngle returns the angle of screen column i relative to the view
// axis. Columns left of center are negative, right of center positive, and
// the outermost columns land on ±fov/2.
func (p *Projector) ColumnAngle(i int) float64 {
	w := float64(p.screenWidth)
	return math.Atan((float64(i) - 0.5*w) / (p.planeDist * w))
}

// ColumnHeading returns the world heading of the ray for screen column i
// given the camera's base heading.
func (p *Projector) ColumnHeading(i int, base float64) float64 {
	return base + p.ColumnAngle(i)
}

// CorrectedDistance converts a raw radial hit distance into the
// perpendicular distance used for wall height, which keeps walls flat
// instead of bowing toward the viewer.
func (p *Projector) CorrectedDistance(raw, columnAngle float64) float64 {
	return raw * math.Cos(columnAngle)
}
