package main

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"raywalk"
)

// Game holds the camera pose, the engine components, and the cached minimap.
type Game struct {
	cfg demoConfig

	grid      *raywalk.TileGrid
	caster    *raywalk.Caster
	resolver  *raywalk.Resolver
	projector *raywalk.Projector

	pose raywalk.Pose

	minimap *ebiten.Image

	autoWalk           bool
	autoWalkRand       *rand.Rand
	autoWalkDirX       float64
	autoWalkDirY       float64
	autoWalkFrameCount int
}

// newGame builds the level and wires every engine component to it.
func newGame(cfg demoConfig) (*Game, error) {
	level := raywalk.DefaultLevelSpec()
	level.Width = cfg.LevelWidth
	level.Height = cfg.LevelHeight
	level.SpawnX = float64(cfg.LevelWidth) / 2
	level.SpawnY = float64(cfg.LevelHeight) / 2
	level.Seed = cfg.LevelSeed

	grid, err := raywalk.GenerateLevel(level)
	if err != nil {
		return nil, err
	}

	core := raywalk.Config{
		MaxCastDistance: cfg.MaxCastDistance,
		SlideStep:       cfg.SlideStep,
		BoundRadius:     cfg.BoundRadius,
	}
	caster, err := raywalk.NewCaster(grid, core)
	if err != nil {
		return nil, err
	}
	resolver, err := raywalk.NewResolver(grid, core)
	if err != nil {
		return nil, err
	}
	projector, err := raywalk.NewProjector(cfg.ScreenWidth, cfg.FOVDegrees*math.Pi/180)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:          cfg,
		grid:         grid,
		caster:       caster,
		resolver:     resolver,
		projector:    projector,
		pose:         raywalk.Pose{X: level.SpawnX, Y: level.SpawnY},
		autoWalk:     *autoWalkFlag,
		autoWalkRand: rand.New(rand.NewSource(cfg.LevelSeed + 1)),
	}
	g.buildMinimap()
	return g, nil
}

// Update advances one frame: turning, movement intent, collision response.
func (g *Game) Update() error {
	g.handleTurning()
	dx, dy := g.movementVector()
	if dx != 0 || dy != 0 {
		g.pose = g.resolver.Move(g.pose, dx, dy)
	}
	g.handleDebugControls()
	return nil
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
