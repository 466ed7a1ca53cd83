package rotorcast

// Viewport maps window pixel coordinates to camera-space ray
// directions for a perspective projection.
type Viewport struct {
	width      float32
	height     float32
	aspect     float32
	tanHalfFov float32
}

func NewViewport(width, height int, fovY float32) *Viewport {
	return &Viewport{
		width:      float32(width),
		height:     float32(height),
		aspect:     float32(width) / float32(height),
		tanHalfFov: tan32(fovY * 0.5),
	}
}

// RayDir returns the camera-space direction through the centre of
// pixel (x, y), with +Y up and depth fixed at 1. The direction is left
// unnormalized; its length never matters to the slab test.
func (vp *Viewport) RayDir(x, y int) Vec3 {
	xInNdc := 2*(float32(x)+0.5)/vp.width - 1
	yInNdc := 1 - 2*(float32(y)+0.5)/vp.height
	return Vec3{
		X: xInNdc * vp.aspect * vp.tanHalfFov,
		Y: yInNdc * vp.tanHalfFov,
		Z: 1,
	}
}

var (
	worldUp      = Vec3{Y: 1}
	worldForward = Vec3{Z: 1}
	worldRight   = Vec3{X: 1}
)

// Camera owns the view pose and advances it once per frame from the
// host's input snapshot.
type Camera struct {
	Pose Pose

	sensitivity float32
	step        float32
}

func NewCamera(camInWorld Pose, cfg Config) *Camera {
	return &Camera{
		Pose:        camInWorld,
		sensitivity: cfg.MouseSensitivity,
		step:        cfg.MoveStep,
	}
}

// InputState is the per-frame snapshot handed over by the host:
// accumulated horizontal mouse travel plus four latched movement keys.
type InputState struct {
	MouseDX  int
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Update applies yaw, then translation. The movement axes come from
// the orientation as of the start of the frame, and held keys compose
// additively, so diagonal movement is faster than a single key.
func (c *Camera) Update(in InputState) {
	ori := c.Pose.Ori

	if in.MouseDX != 0 {
		dq := RotorFromAngleAxis(c.sensitivity*float32(in.MouseDX), worldUp)
		c.Pose.Ori = ori.Mul(dq).Normalize()
	}

	forward := ori.Rotate(worldForward)
	right := ori.Rotate(worldRight)
	if in.Forward {
		c.Pose.Pos = c.Pose.Pos.Add(forward.Scale(c.step))
	}
	if in.Backward {
		c.Pose.Pos = c.Pose.Pos.Sub(forward.Scale(c.step))
	}
	if in.Left {
		c.Pose.Pos = c.Pose.Pos.Sub(right.Scale(c.step))
	}
	if in.Right {
		c.Pose.Pos = c.Pose.Pos.Add(right.Scale(c.step))
	}
}
