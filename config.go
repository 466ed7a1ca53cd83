package rotorcast

import "github.com/go-gl/mathgl/mgl32"

// Config carries the fixed tuning constants for a render session.
type Config struct {
	Width  int
	Height int

	// FovY is the vertical field of view in radians.
	FovY float32

	// SceneCapacity bounds the number of cubes a scene will accept.
	SceneCapacity int

	// MouseSensitivity is radians of yaw per count of mouse travel.
	MouseSensitivity float32

	// MoveStep is the distance moved per held key per tick.
	MoveStep float32

	// FarClip is the slab test's far sentinel.
	FarClip float32

	// Workers is the render worker count; 0 means one per CPU.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Width:            800,
		Height:           600,
		FovY:             mgl32.DegToRad(80),
		SceneCapacity:    1024,
		MouseSensitivity: 0.002,
		MoveStep:         0.1,
		FarClip:          4096,
	}
}
