package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"raywalk"
)

const (
	minimapScale = 4

	// minPerpDist caps column height when the camera hugs a wall.
	minPerpDist = 1e-3
)

var (
	skyColor   = color.RGBA{28, 32, 46, 255}
	floorColor = color.RGBA{52, 48, 42, 255}

	// faceColors is indexed by raywalk.Face; the vertical faces are darker
	// so perpendicular walls read as distinct surfaces.
	faceColors = [4]color.RGBA{
		{198, 198, 198, 255}, // east
		{120, 120, 130, 255}, // south
		{170, 170, 178, 255}, // west
		{100, 100, 112, 255}, // north
	}
)

// Draw renders the first-person view, then the minimap and debug overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	w := float32(g.cfg.ScreenWidth)
	h := float32(g.cfg.ScreenHeight)
	vector.DrawFilledRect(screen, 0, 0, w, h/2, skyColor, false)
	vector.DrawFilledRect(screen, 0, h/2, w, h/2, floorColor, false)

	for x := 0; x < g.cfg.ScreenWidth; x++ {
		angle := g.projector.ColumnAngle(x)
		ray := raywalk.Pose{X: g.pose.X, Y: g.pose.Y, Heading: g.pose.Heading + angle}
		res := g.caster.Cast(ray)
		if !res.Hit {
			continue
		}
		perp := g.projector.CorrectedDistance(res.Distance, angle)
		if perp < minPerpDist {
			perp = minPerpDist
		}
		lineHeight := float64(g.cfg.ScreenHeight) / perp
		top := (float64(g.cfg.ScreenHeight) - lineHeight) / 2
		clr := shadeByDistance(faceColors[res.Face], perp, g.cfg.MaxCastDistance)
		vector.DrawFilledRect(screen, float32(x), float32(top), 1, float32(lineHeight), clr, false)
	}

	if *minimapFlag {
		g.drawMinimap(screen)
	}
	if *debugFlag {
		msg := fmt.Sprintf("FPS: %.1f\nPose: (%.2f, %.2f) heading %.2f\nFOV: %.0f deg (+/-)",
			ebiten.ActualFPS(), g.pose.X, g.pose.Y, g.pose.Heading, g.cfg.FOVDegrees)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// shadeByDistance darkens a face color as the wall recedes.
func shadeByDistance(clr color.RGBA, dist, maxDist float64) color.RGBA {
	f := 1 - dist/maxDist
	if f < 0.15 {
		f = 0.15
	} else if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(clr.R) * f),
		G: uint8(float64(clr.G) * f),
		B: uint8(float64(clr.B) * f),
		A: clr.A,
	}
}

// buildMinimap renders the level once into an offscreen image.
func (g *Game) buildMinimap() {
	g.minimap = ebiten.NewImage(g.grid.Width()*minimapScale, g.grid.Height()*minimapScale)
	for row := 0; row < g.grid.Height(); row++ {
		for col := 0; col < g.grid.Width(); col++ {
			clr := color.RGBA{140, 140, 140, 255}
			if g.grid.PointBlocked(float64(col)+0.5, float64(row)+0.5) {
				clr = color.RGBA{50, 50, 50, 255}
			}
			vector.DrawFilledRect(g.minimap,
				float32(col*minimapScale), float32(row*minimapScale),
				minimapScale, minimapScale, clr, false)
		}
	}
}

// drawMinimap overlays the cached level image, the player dot, and a short
// facing indicator in the top-right corner.
func (g *Game) drawMinimap(screen *ebiten.Image) {
	ox := g.cfg.ScreenWidth - g.grid.Width()*minimapScale - 10
	oy := 10
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(g.minimap, op)

	px := ox + int(g.pose.X*minimapScale)
	py := oy + int(g.pose.Y*minimapScale)
	fx := px + int(math.Cos(g.pose.Heading)*2*minimapScale)
	fy := py + int(math.Sin(g.pose.Heading)*2*minimapScale)
	drawLine(screen, px, py, fx, fy, color.RGBA{0, 255, 200, 220})
	vector.DrawFilledCircle(screen, float32(px), float32(py), 2, color.RGBA{255, 0, 0, 255}, false)
}

// drawLine plots a line segment using Bresenham's integer algorithm.
func drawLine(screen *ebiten.Image, x0, y0, x1, y1 int, clr color.Color) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		screen.Set(x0, y0, clr)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
