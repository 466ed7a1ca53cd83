package main

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/smasonuk/rotorcast"
)

func buildScene(cfg rotorcast.Config) *rotorcast.Scene {
	scene := rotorcast.NewScene(cfg.SceneCapacity)

	// Four unit cubes on the corners of a square around the origin.
	xs := []float32{2, 2, -2, -2}
	zs := []float32{2, -2, 2, -2}
	for i := range xs {
		cubeInWorld := rotorcast.NewPose(
			rotorcast.NewVec3(xs[i], 0, zs[i]),
			rotorcast.IdentityRotor(),
		)
		if err := scene.AddCube(cubeInWorld, 1); err != nil {
			log.Fatal(err)
		}
	}

	return scene
}

func main() {
	cfg := rotorcast.DefaultConfig()
	scene := buildScene(cfg)

	// Start to one side of the cubes, pitched to look at them.
	camInWorld := rotorcast.NewPose(
		rotorcast.NewVec3(0, -4, 0),
		rotorcast.RotorFromAngleAxis(math.Pi/2, rotorcast.NewVec3(-1, 0, 0)),
	)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("rotorcast")
	if err := ebiten.RunGame(rotorcast.NewGame(cfg, scene, camInWorld)); err != nil {
		log.Fatal(err)
	}
}
