package raywalk

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func newResolver(t *testing.T, g *TileGrid, cfg Config) *Resolver {
	t.Helper()
	r, err := NewResolver(g, cfg)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}

func TestMoveDirect(t *testing.T) {
	Convey("Given an open interior", t, func() {
		g := mustParse(t, []string{
			"#####",
			"#...#",
			"#...#",
			"#...#",
			"#####",
		})
		r := newResolver(t, g, DefaultConfig())

		Convey("An unobstructed move lands exactly on the target", func() {
			p := r.Move(Pose{X: 2.25, Y: 2.25, Heading: 1.0}, 0.25, -0.5)
			So(p.X, ShouldEqual, 2.5)
			So(p.Y, ShouldEqual, 1.75)
			So(p.Heading, ShouldEqual, 1.0)
		})

		Convey("A zero displacement returns the pose unchanged", func() {
			p := r.Move(Pose{X: 2.5, Y: 2.5}, 0, 0)
			So(p.X, ShouldEqual, 2.5)
			So(p.Y, ShouldEqual, 2.5)
		})

		Convey("A non-finite displacement returns the pose unchanged", func() {
			p := r.Move(Pose{X: 2.5, Y: 2.5}, math.NaN(), 0.1)
			So(p.X, ShouldEqual, 2.5)
			So(p.Y, ShouldEqual, 2.5)
		})
	})
}

func TestMoveBlockedSlides(t *testing.T) {
	Convey("Given a bordered 3x3 grid with an open center", t, func() {
		g := mustParse(t, []string{
			"###",
			"#.#",
			"###",
		})
		cfg := DefaultConfig()
		cfg.BoundRadius = 0.2
		r := newResolver(t, g, cfg)

		Convey("Pushing hard into the east wall stops short of it", func() {
			start := Pose{X: 1.5, Y: 1.5}
			p := r.Move(start, 2.0, 0)
			So(p.X, ShouldBeGreaterThan, 1.5)
			So(p.X, ShouldBeLessThan, 1.8) // wall face at x=2 minus the radius
			So(p.Y, ShouldEqual, 1.5)
			So(g.CircleBlocked(p.X, p.Y, cfg.BoundRadius), ShouldBeFalse)
		})

		Convey("A pose already against the wall does not advance", func() {
			cfgTight := DefaultConfig()
			cfgTight.BoundRadius = 0.3
			rt := newResolver(t, g, cfgTight)
			start := Pose{X: 1.7, Y: 1.5}
			p := rt.Move(start, 0.2, 0)
			So(p.X, ShouldEqual, 1.7)
			So(p.Y, ShouldEqual, 1.5)
		})
	})
}

func TestMoveWallSliding(t *testing.T) {
	Convey("Given a bordered 5x5 grid", t, func() {
		g := mustParse(t, []string{
			"#####",
			"#...#",
			"#...#",
			"#...#",
			"#####",
		})
		cfg := DefaultConfig()
		cfg.BoundRadius = 0.25
		r := newResolver(t, g, cfg)

		Convey("A diagonal into the north wall keeps its full east component", func() {
			start := Pose{X: 2.5, Y: 1.5}
			p := r.Move(start, 0.5, -0.5)
			So(p.X, ShouldAlmostEqual, 3.0, geomTol)
			So(p.Y, ShouldBeGreaterThan, 1.0)
			So(p.Y, ShouldBeLessThanOrEqualTo, 1.25)
			So(g.CircleBlocked(p.X, p.Y, cfg.BoundRadius), ShouldBeFalse)
		})

		Convey("The slid position stays between the origin and the target", func() {
			start := Pose{X: 2.5, Y: 1.5}
			p := r.Move(start, 0.5, -0.5)
			So(p.X, ShouldBeBetweenOrEqual, start.X, start.X+0.5)
			So(p.Y, ShouldBeBetweenOrEqual, start.Y-0.5, start.Y)
		})
	})
}

func TestResolverConstruction(t *testing.T) {
	Convey("Resolver construction fails fast on bad input", t, func() {
		g := mustParse(t, []string{"#.#"})

		_, err := NewResolver(nil, DefaultConfig())
		So(err, ShouldNotBeNil)

		bad := DefaultConfig()
		bad.SlideStep = 0
		_, err = NewResolver(g, bad)
		So(err, ShouldNotBeNil)

		bad = DefaultConfig()
		bad.BoundRadius = 0.5
		_, err = NewResolver(g, bad)
		So(err, ShouldNotBeNil)
	})
}
