package raywalk

// Pose is a position and heading in world units. Heading is radians,
// unnormalized; callers wrap it if they care. Pose is a plain value:
// casters and resolvers never mutate a caller's copy, so the camera pose
// and a scanning ray pose stay independent even when they share a position.
type Pose struct {
	X, Y    float64
	Heading float64
}
