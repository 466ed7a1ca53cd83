package rotorcast

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game hosts the renderer inside an ebiten window. It owns the pixel
// buffer, snapshots input at the start of each tick, advances the
// camera and renders one frame; Draw only presents the finished
// buffer.
type Game struct {
	cfg      Config
	scene    *Scene
	camera   *Camera
	renderer *Renderer

	frame []uint32
	rgba  []byte

	dragging bool
	lastX    int
}

func NewGame(cfg Config, scene *Scene, camInWorld Pose) *Game {
	return &Game{
		cfg:      cfg,
		scene:    scene,
		camera:   NewCamera(camInWorld, cfg),
		renderer: NewRenderer(cfg),
		frame:    make([]uint32, cfg.Width*cfg.Height),
		rgba:     make([]byte, cfg.Width*cfg.Height*4),
	}
}

func (g *Game) Update() error {
	g.camera.Update(g.pollInput())
	g.renderer.RenderFrame(g.frame, g.scene, g.camera.Pose)
	return nil
}

// pollInput latches the WASD keys and turns left-button mouse drags
// into the frame's accumulated horizontal delta.
func (g *Game) pollInput() InputState {
	in := InputState{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW),
		Backward: ebiten.IsKeyPressed(ebiten.KeyS),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD),
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, _ = ebiten.CursorPosition()
	}
	if g.dragging {
		x, _ := ebiten.CursorPosition()
		in.MouseDX = x - g.lastX
		g.lastX = x
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	for i, argb := range g.frame {
		g.rgba[i*4+0] = byte(argb >> 16)
		g.rgba[i*4+1] = byte(argb >> 8)
		g.rgba[i*4+2] = byte(argb)
		g.rgba[i*4+3] = byte(argb >> 24)
	}
	screen.WritePixels(g.rgba)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
