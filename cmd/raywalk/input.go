package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"raywalk"
)

// handleTurning rotates the camera heading with the arrow keys.
func (g *Game) handleTurning() {
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.pose.Heading -= g.cfg.TurnSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.pose.Heading += g.cfg.TurnSpeed
	}
}

// movementVector selects either manual or automatic movement direction.
func (g *Game) movementVector() (float64, float64) {
	if g.autoWalk {
		return g.autoWalkVector()
	}
	return g.manualMovementVector()
}

// manualMovementVector returns WASD movement relative to the current
// heading scaled by the move speed. W/S (and up/down) walk along the
// heading, A/D strafe.
func (g *Game) manualMovementVector() (float64, float64) {
	forward, strafe := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		forward += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		forward -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe -= 1
	}
	if forward == 0 && strafe == 0 {
		return 0, 0
	}
	if forward != 0 && strafe != 0 {
		forward *= 0.7071
		strafe *= 0.7071
	}
	sin, cos := math.Sincos(g.pose.Heading)
	dx := (cos*forward - sin*strafe) * g.cfg.MoveSpeed
	dy := (sin*forward + cos*strafe) * g.cfg.MoveSpeed
	return dx, dy
}

// autoWalkVector returns a pseudo-random, collision-aware movement vector
// and keeps the camera facing the walk direction.
func (g *Game) autoWalkVector() (float64, float64) {
	for attempts := 0; attempts < 5; attempts++ {
		if g.autoWalkFrameCount <= 0 {
			g.randomizeAutoWalkDirection()
		}
		dx := g.autoWalkDirX * g.cfg.MoveSpeed
		dy := g.autoWalkDirY * g.cfg.MoveSpeed
		if !g.grid.CircleBlocked(g.pose.X+dx, g.pose.Y+dy, g.cfg.BoundRadius) {
			g.autoWalkFrameCount--
			g.pose.Heading = math.Atan2(g.autoWalkDirY, g.autoWalkDirX)
			return dx, dy
		}
		g.autoWalkFrameCount = 0
	}
	return 0, 0
}

// randomizeAutoWalkDirection chooses a new heading for automatic walking.
func (g *Game) randomizeAutoWalkDirection() {
	angle := g.autoWalkRand.Float64() * 2 * math.Pi
	g.autoWalkDirX = math.Cos(angle)
	g.autoWalkDirY = math.Sin(angle)
	g.autoWalkFrameCount = 20 + g.autoWalkRand.Intn(50)
}

// handleDebugControls processes the debug overlay hotkeys: +/- widen and
// narrow the field of view.
func (g *Game) handleDebugControls() {
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustFOV(-5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustFOV(5)
	}
}

// adjustFOV clamps the field of view within usable bounds and rebuilds the
// projector.
func (g *Game) adjustFOV(deltaDeg float64) {
	deg := g.cfg.FOVDegrees + deltaDeg
	if deg < 30 {
		deg = 30
	} else if deg > 150 {
		deg = 150
	}
	projector, err := raywalk.NewProjector(g.cfg.ScreenWidth, deg*math.Pi/180)
	if err != nil {
		return
	}
	g.cfg.FOVDegrees = deg
	g.projector = projector
}
