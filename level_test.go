package raywalk

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerateLevel(t *testing.T) {
	Convey("Given the default level spec", t, func() {
		spec := DefaultLevelSpec()
		g, err := GenerateLevel(spec)
		So(err, ShouldBeNil)

		Convey("The grid has the requested dimensions", func() {
			So(g.Width(), ShouldEqual, spec.Width)
			So(g.Height(), ShouldEqual, spec.Height)
		})

		Convey("The border ring is solid", func() {
			for x := 0; x < spec.Width; x++ {
				So(g.wall(x, 0), ShouldBeTrue)
				So(g.wall(x, spec.Height-1), ShouldBeTrue)
			}
			for y := 0; y < spec.Height; y++ {
				So(g.wall(0, y), ShouldBeTrue)
				So(g.wall(spec.Width-1, y), ShouldBeTrue)
			}
		})

		Convey("The spawn point and its clearance disc stay open", func() {
			So(g.PointBlocked(spec.SpawnX, spec.SpawnY), ShouldBeFalse)
			So(g.CircleBlocked(spec.SpawnX, spec.SpawnY, 0.5), ShouldBeFalse)
		})

		Convey("The same seed reproduces the same level", func() {
			again, err := GenerateLevel(spec)
			So(err, ShouldBeNil)
			So(again.cells, ShouldResemble, g.cells)
		})
	})

	Convey("Generation fails fast on unusable parameters", t, func() {
		spec := DefaultLevelSpec()
		spec.Width = 2
		_, err := GenerateLevel(spec)
		So(err, ShouldNotBeNil)

		spec = DefaultLevelSpec()
		spec.SegMinLen = 0
		_, err = GenerateLevel(spec)
		So(err, ShouldNotBeNil)

		spec = DefaultLevelSpec()
		spec.SegMaxLen = spec.SegMinLen - 1
		_, err = GenerateLevel(spec)
		So(err, ShouldNotBeNil)
	})
}
