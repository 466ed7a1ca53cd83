package rotorcast

import (
	"errors"
	"testing"
)

func TestSceneAddCubeCapacity(t *testing.T) {
	scene := NewScene(2)

	if err := scene.AddCube(IdentityPose(), 1); err != nil {
		t.Fatalf("first AddCube failed: %v", err)
	}
	if err := scene.AddCube(NewPose(NewVec3(2, 0, 0), IdentityRotor()), 1); err != nil {
		t.Fatalf("second AddCube failed: %v", err)
	}

	err := scene.AddCube(NewPose(NewVec3(4, 0, 0), IdentityRotor()), 1)
	if !errors.Is(err, ErrSceneFull) {
		t.Fatalf("third AddCube returned %v, want ErrSceneFull", err)
	}
	if scene.CubeCount() != 2 {
		t.Errorf("CubeCount = %d after rejected insert, want 2", scene.CubeCount())
	}
}

func TestScenePreservesInsertionOrder(t *testing.T) {
	scene := NewScene(8)

	poses := []Pose{
		NewPose(NewVec3(1, 0, 0), IdentityRotor()),
		NewPose(NewVec3(0, 2, 0), RotorFromAngleAxis(0.5, NewVec3(0, 1, 0))),
		NewPose(NewVec3(0, 0, 3), RotorFromAngleAxis(-1.2, NewVec3(1, 0, 1))),
	}
	edges := []float32{1, 2.5, 0.5}
	for i := range poses {
		if err := scene.AddCube(poses[i], edges[i]); err != nil {
			t.Fatalf("AddCube %d failed: %v", i, err)
		}
	}

	if scene.CubeCount() != len(poses) {
		t.Fatalf("CubeCount = %d, want %d", scene.CubeCount(), len(poses))
	}
	for i := range poses {
		got := scene.CubePose(i)
		if !vecAlmostEqual(got.Pos, poses[i].Pos) {
			t.Errorf("cube %d position %+v, want %+v", i, got.Pos, poses[i].Pos)
		}
		if !almostEqual(got.Ori.W, poses[i].Ori.W) {
			t.Errorf("cube %d orientation %+v, want %+v", i, got.Ori, poses[i].Ori)
		}
		if scene.CubeEdge(i) != edges[i] {
			t.Errorf("cube %d edge %f, want %f", i, scene.CubeEdge(i), edges[i])
		}
	}
}
