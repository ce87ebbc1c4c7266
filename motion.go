package raywalk

import (
	"fmt"
	"math"
)

// Resolver advances poses against a grid, sliding along walls instead of
// stopping dead.
type Resolver struct {
	grid        *TileGrid
	slideStep   float64
	boundRadius float64
}

// NewResolver validates the tuning values and binds the resolver to a grid.
func NewResolver(grid *TileGrid, cfg Config) (*Resolver, error) {
	if grid == nil {
		return nil, fmt.Errorf("resolver: nil grid")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{grid: grid, slideStep: cfg.SlideStep, boundRadius: cfg.BoundRadius}, nil
}

// Move returns p translated by the requested displacement, or by as much of
// it as fits. When the direct target is free the full displacement is
// applied exactly. Otherwise each axis slides independently in fixed
// increments, honoring the other axis's accepted offset, which lets motion
// continue along a wall-parallel axis while the perpendicular component is
// blocked. Heading is untouched; the result never overlaps a wall.
func (r *Resolver) Move(p Pose, dx, dy float64) Pose {
	if !finite(dx) || !finite(dy) {
		return p
	}
	if !r.grid.CircleBlocked(p.X+dx, p.Y+dy, r.boundRadius) {
		p.X += dx
		p.Y += dy
		return p
	}

	stepX := math.Copysign(r.slideStep, dx)
	stepY := math.Copysign(r.slideStep, dy)
	maxX := math.Abs(dx)
	maxY := math.Abs(dy)
	tx, ty := 0.0, 0.0
	xActive := dx != 0
	yActive := dy != 0

	// Iterations are bounded by |dx|/slideStep + |dy|/slideStep.
	for xActive || yActive {
		if xActive {
			next := tx + stepX
			if math.Abs(next) > maxX || r.grid.CircleBlocked(p.X+next, p.Y+ty, r.boundRadius) {
				xActive = false
			} else {
				tx = next
			}
		}
		if yActive {
			next := ty + stepY
			if math.Abs(next) > maxY || r.grid.CircleBlocked(p.X+tx, p.Y+next, r.boundRadius) {
				yActive = false
			} else {
				ty = next
			}
		}
	}

	p.X += tx
	p.Y += ty
	return p
}
