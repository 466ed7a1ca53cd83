package rotorcast

// Pixel colors are packed ARGB; the host swizzles to the presentation
// byte order when blitting.
const BackgroundColor uint32 = 0xFF111111

// FaceColors maps face ids to flat colors. The id is axis*2, plus one
// when the ray travels against the axis, so the pair per axis is a
// bright and a dark shade.
var FaceColors = [6]uint32{
	0xFFFF0000, // X, entering along +X (red)
	0xFF880000, // X, entering along -X (dark red)
	0xFF00FF00, // Y, entering along +Y (green)
	0xFF008800, // Y, entering along -Y (dark green)
	0xFF0000FF, // Z, entering along +Z (blue)
	0xFF000088, // Z, entering along -Z (dark blue)
}

// intersectCube runs the slab test against the box
// [-edge/2, edge/2]^3 in the cube's own frame. worldToCube is the
// inverse of the cube's world pose. It reports the entry distance
// along the ray and the face id entered through.
func intersectCube(origin, dir Vec3, worldToCube Pose, edge, far float32) (tNear float32, face int, hit bool) {
	o := worldToCube.Apply(origin)
	d := worldToCube.Ori.Rotate(dir)

	hs := edge * 0.5
	op := [3]float32{o.X, o.Y, o.Z}
	dp := [3]float32{d.X, d.Y, d.Z}

	tFar := far
	for axis := 0; axis < 3; axis++ {
		// A zero direction component divides to +/-Inf, which the
		// min/max comparisons propagate correctly under IEEE-754.
		t1 := (-hs - op[axis]) / dp[axis]
		t2 := (hs - op[axis]) / dp[axis]
		tMin, tMax := t1, t2
		if t2 < t1 {
			tMin, tMax = t2, t1
		}
		if tMin > tNear {
			tNear = tMin
			face = axis * 2
			if dp[axis] < 0 {
				face++
			}
		}
		if tMax < tFar {
			tFar = tMax
		}
		if tNear > tFar {
			return 0, 0, false
		}
	}
	return tNear, face, tNear < tFar
}

// TraceRay fires one world-space ray through the scene and returns the
// face color of the first cube in scene order that registers a hit, or
// the background color. This is deliberately first-hit-in-order, not
// nearest-hit: a cube listed earlier wins even when a later cube is
// closer along the ray.
func TraceRay(scene *Scene, origin, dir Vec3, far float32) uint32 {
	for i := 0; i < scene.CubeCount(); i++ {
		worldToCube := scene.CubePose(i).Inverse()
		if _, face, hit := intersectCube(origin, dir, worldToCube, scene.CubeEdge(i), far); hit {
			return FaceColors[face]
		}
	}
	return BackgroundColor
}
