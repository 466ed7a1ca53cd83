package rotorcast

import "errors"

// ErrSceneFull is returned by AddCube once the scene is at capacity.
var ErrSceneFull = errors.New("scene is at cube capacity")

// Scene is a fixed-capacity store of cube placements kept in
// structure-of-arrays form so the render kernel can walk plain float
// slices. Insertion order is also ray-test order.
type Scene struct {
	posX []float32
	posY []float32
	posZ []float32

	oriW   []float32
	oriE23 []float32
	oriE13 []float32
	oriE12 []float32

	size []float32

	capacity int
}

func NewScene(capacity int) *Scene {
	return &Scene{
		posX:     make([]float32, 0, capacity),
		posY:     make([]float32, 0, capacity),
		posZ:     make([]float32, 0, capacity),
		oriW:     make([]float32, 0, capacity),
		oriE23:   make([]float32, 0, capacity),
		oriE13:   make([]float32, 0, capacity),
		oriE12:   make([]float32, 0, capacity),
		size:     make([]float32, 0, capacity),
		capacity: capacity,
	}
}

// AddCube places a cube with the given world pose and edge length.
func (s *Scene) AddCube(cubeInWorld Pose, edge float32) error {
	if len(s.size) >= s.capacity {
		return ErrSceneFull
	}
	s.posX = append(s.posX, cubeInWorld.Pos.X)
	s.posY = append(s.posY, cubeInWorld.Pos.Y)
	s.posZ = append(s.posZ, cubeInWorld.Pos.Z)
	s.oriW = append(s.oriW, cubeInWorld.Ori.W)
	s.oriE23 = append(s.oriE23, cubeInWorld.Ori.E23)
	s.oriE13 = append(s.oriE13, cubeInWorld.Ori.E13)
	s.oriE12 = append(s.oriE12, cubeInWorld.Ori.E12)
	s.size = append(s.size, edge)
	return nil
}

func (s *Scene) CubeCount() int {
	return len(s.size)
}

func (s *Scene) CubePose(i int) Pose {
	return Pose{
		Pos: Vec3{X: s.posX[i], Y: s.posY[i], Z: s.posZ[i]},
		Ori: Rotor{W: s.oriW[i], E23: s.oriE23[i], E13: s.oriE13[i], E12: s.oriE12[i]},
	}
}

func (s *Scene) CubeEdge(i int) float32 {
	return s.size[i]
}
