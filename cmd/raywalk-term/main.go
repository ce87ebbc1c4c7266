package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"raywalk"
)

const (
	tick      = 15 * time.Millisecond
	moveSpeed = 0.15
	turnSpeed = 0.08

	// stepSoundDelay is how many accepted steps pass between footstep
	// clicks.
	stepSoundDelay = 4
)

var (
	seedFlag       = flag.Int64("seed", 1, "level generation seed")
	fovDegreesFlag = flag.Float64("fov-deg", 66, "field of view in degrees")
	muteFlag       = flag.Bool("mute", false, "disable footstep audio")
)

var (
	wallStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkSlateBlue)
	skyStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	floorStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
)

// termGame carries the engine components and terminal render state.
type termGame struct {
	grid      *raywalk.TileGrid
	caster    *raywalk.Caster
	resolver  *raywalk.Resolver
	projector *raywalk.Projector
	pose      raywalk.Pose
	cfg       raywalk.Config
	fov       float64

	lastWidth int
	stepTimer int
	audio     *footsteps
}

func newTermGame() (*termGame, error) {
	level := raywalk.DefaultLevelSpec()
	level.Seed = *seedFlag

	grid, err := raywalk.GenerateLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := raywalk.DefaultConfig()
	caster, err := raywalk.NewCaster(grid, cfg)
	if err != nil {
		return nil, err
	}
	resolver, err := raywalk.NewResolver(grid, cfg)
	if err != nil {
		return nil, err
	}
	return &termGame{
		grid:     grid,
		caster:   caster,
		resolver: resolver,
		pose:     raywalk.Pose{X: level.SpawnX, Y: level.SpawnY},
		cfg:      cfg,
		fov:      *fovDegreesFlag * math.Pi / 180,
		audio:    newFootsteps(*muteFlag),
	}, nil
}

// step walks along (forward) or across (strafe) the heading, resolving
// collisions, and clicks the footstep sound every few accepted steps.
func (g *termGame) step(forward, strafe float64) {
	sin, cos := math.Sincos(g.pose.Heading)
	dx := (cos*forward - sin*strafe) * moveSpeed
	dy := (sin*forward + cos*strafe) * moveSpeed
	before := g.pose
	g.pose = g.resolver.Move(g.pose, dx, dy)
	if g.pose.X != before.X || g.pose.Y != before.Y {
		g.stepTimer++
		if g.stepTimer >= stepSoundDelay {
			g.stepTimer = 0
			g.audio.play()
		}
	}
}

// handleKey maps arrows and WASD onto movement and turning.
func (g *termGame) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		g.step(1, 0)
	case tcell.KeyDown:
		g.step(-1, 0)
	case tcell.KeyLeft:
		g.pose.Heading -= turnSpeed
	case tcell.KeyRight:
		g.pose.Heading += turnSpeed
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w':
			g.step(1, 0)
		case 's':
			g.step(-1, 0)
		case 'a':
			g.step(0, -1)
		case 'd':
			g.step(0, 1)
		}
	}
}

// wallRune picks a block shade for the wall distance fraction; vertical
// faces render one shade lighter so corners stay readable.
func wallRune(frac float64, face raywalk.Face) rune {
	if face == raywalk.FaceSouth || face == raywalk.FaceNorth {
		frac += 0.12
	}
	switch {
	case frac < 0.25:
		return '█'
	case frac < 0.45:
		return '▓'
	case frac < 0.7:
		return '▒'
	case frac < 0.95:
		return '░'
	}
	return ' '
}

// floorRune fades the floor toward the horizon.
func floorRune(depth float64) rune {
	switch {
	case depth < 0.25:
		return '#'
	case depth < 0.5:
		return 'x'
	case depth < 0.75:
		return '.'
	case depth < 0.9:
		return '-'
	}
	return ' '
}

// render casts one ray per terminal column and fills the column with sky,
// wall, and floor cells.
func (g *termGame) render(screen tcell.Screen) {
	width, height := screen.Size()
	if width < 1 || height < 1 {
		return
	}
	if width != g.lastWidth || g.projector == nil {
		projector, err := raywalk.NewProjector(width, g.fov)
		if err != nil {
			return
		}
		g.projector = projector
		g.lastWidth = width
	}

	for x := 0; x < width; x++ {
		angle := g.projector.ColumnAngle(x)
		res := g.caster.Cast(raywalk.Pose{X: g.pose.X, Y: g.pose.Y, Heading: g.pose.Heading + angle})

		ceiling := 0
		floor := height
		shade := ' '
		if res.Hit {
			perp := g.projector.CorrectedDistance(res.Distance, angle)
			if perp < 1e-3 {
				perp = 1e-3
			}
			lineHeight := float64(height) / perp
			ceiling = int((float64(height) - lineHeight) / 2)
			floor = int((float64(height) + lineHeight) / 2)
			shade = wallRune(perp/g.cfg.MaxCastDistance, res.Face)
		} else {
			ceiling = height / 2
			floor = height / 2
		}

		for y := 0; y < height; y++ {
			switch {
			case y < ceiling:
				screen.SetContent(x, y, ' ', nil, skyStyle)
			case y < floor:
				screen.SetContent(x, y, shade, nil, wallStyle)
			default:
				// 0 at the bottom edge, 1 at the horizon.
				fade := 1 - (float64(y)-float64(height)/2)/(float64(height)/2)
				screen.SetContent(x, y, floorRune(fade), nil, floorStyle)
			}
		}
	}
}

func main() {
	flag.Parse()

	g, err := newTermGame()
	if err != nil {
		log.Fatalf("Setup failed: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Terminal init failed: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Terminal init failed: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.SetStyle(skyStyle)
	screen.Clear()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC ||
					(e.Key() == tcell.KeyRune && e.Rune() == 'q') {
					return
				}
				g.handleKey(e)
			}
		case <-ticker.C:
			g.render(screen)
			screen.Show()
		}
	}
}
