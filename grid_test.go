package raywalk

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func mustParse(t *testing.T, rows []string) *TileGrid {
	t.Helper()
	g, err := ParseTiles(rows)
	if err != nil {
		t.Fatalf("ParseTiles: %v", err)
	}
	return g
}

func TestNewTileGrid(t *testing.T) {
	Convey("Given raw tile rows", t, func() {
		Convey("A rectangular grid constructs", func() {
			g, err := NewTileGrid([][]Tile{
				{TileWall, TileWall, TileWall},
				{TileWall, TileEmpty, TileWall},
				{TileWall, TileWall, TileWall},
			})
			So(err, ShouldBeNil)
			So(g.Width(), ShouldEqual, 3)
			So(g.Height(), ShouldEqual, 3)
		})

		Convey("Jagged rows are rejected", func() {
			_, err := NewTileGrid([][]Tile{
				{TileWall, TileWall},
				{TileWall},
			})
			So(err, ShouldNotBeNil)
		})

		Convey("Nil and empty input are rejected", func() {
			_, err := NewTileGrid(nil)
			So(err, ShouldNotBeNil)
			_, err = NewTileGrid([][]Tile{{}})
			So(err, ShouldNotBeNil)
		})

		Convey("The grid copies its input", func() {
			rows := [][]Tile{
				{TileEmpty, TileEmpty},
				{TileEmpty, TileEmpty},
			}
			g, err := NewTileGrid(rows)
			So(err, ShouldBeNil)
			rows[1][1] = TileWall
			So(g.PointBlocked(1.5, 1.5), ShouldBeFalse)
		})
	})
}

func TestParseTiles(t *testing.T) {
	Convey("Given a string map", t, func() {
		g := mustParse(t, []string{
			"###",
			"#.#",
			"###",
		})

		Convey("Hash runes become walls and dots stay open", func() {
			So(g.PointBlocked(0.5, 0.5), ShouldBeTrue)
			So(g.PointBlocked(1.5, 1.5), ShouldBeFalse)
			So(g.PointBlocked(2.5, 1.5), ShouldBeTrue)
		})

		Convey("Jagged lines are rejected", func() {
			_, err := ParseTiles([]string{"###", "##"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPointBlocked(t *testing.T) {
	Convey("Given a bordered 3x3 grid", t, func() {
		g := mustParse(t, []string{
			"###",
			"#.#",
			"###",
		})

		Convey("Interior queries match the cells", func() {
			So(g.PointBlocked(1.5, 1.5), ShouldBeFalse)
			So(g.PointBlocked(1.5, 0.5), ShouldBeTrue)
			So(g.PointBlocked(0.1, 2.9), ShouldBeTrue)
		})

		Convey("Every out-of-bounds coordinate is open space", func() {
			So(g.PointBlocked(-0.5, 1.5), ShouldBeFalse)
			So(g.PointBlocked(3.5, 1.5), ShouldBeFalse)
			So(g.PointBlocked(1.5, -2.0), ShouldBeFalse)
			So(g.PointBlocked(1.5, 3.0), ShouldBeFalse)
			So(g.PointBlocked(-100, -100), ShouldBeFalse)
		})
	})
}

func TestCircleBlocked(t *testing.T) {
	Convey("Given a grid with a single central wall cell", t, func() {
		g := mustParse(t, []string{
			"...",
			".#.",
			"...",
		})

		Convey("A center inside the wall cell overlaps at any radius", func() {
			So(g.CircleBlocked(1.5, 1.5, 0.0), ShouldBeTrue)
			So(g.CircleBlocked(1.2, 1.8, 0.1), ShouldBeTrue)
		})

		Convey("A circle reaching a flat edge overlaps, one short of it does not", func() {
			So(g.CircleBlocked(0.7, 1.5, 0.4), ShouldBeTrue)
			So(g.CircleBlocked(0.7, 1.5, 0.25), ShouldBeFalse)
			So(g.CircleBlocked(1.5, 2.4, 0.5), ShouldBeTrue)
			So(g.CircleBlocked(1.5, 2.4, 0.3), ShouldBeFalse)
		})

		Convey("A circle reaching only a corner overlaps by corner distance", func() {
			// Corner (1,1) is 0.283 away from (0.8, 0.8).
			So(g.CircleBlocked(0.8, 0.8, 0.3), ShouldBeTrue)
			So(g.CircleBlocked(0.8, 0.8, 0.25), ShouldBeFalse)
		})

		Convey("Zero radius behaves like a point test", func() {
			for _, p := range [][2]float64{
				{1.5, 1.5}, {0.5, 0.5}, {2.5, 1.5}, {1.3, 2.7}, {-1.0, 1.5},
			} {
				So(g.CircleBlocked(p[0], p[1], 0), ShouldEqual, g.PointBlocked(p[0], p[1]))
			}
		})

		Convey("Out-of-bounds circles clear of walls are open", func() {
			So(g.CircleBlocked(-5, -5, 0.4), ShouldBeFalse)
		})
	})
}
