package rotorcast

import (
	"runtime"
	"sync"
)

// Renderer fills a caller-owned pixel buffer with one primary ray per
// pixel. The pixel loop is split across worker goroutines that each
// own a disjoint band of rows, so no synchronization is needed beyond
// the join at the end of the frame.
type Renderer struct {
	viewport *Viewport
	width    int
	height   int
	far      float32
	workers  int
}

func NewRenderer(cfg Config) *Renderer {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{
		viewport: NewViewport(cfg.Width, cfg.Height, cfg.FovY),
		width:    cfg.Width,
		height:   cfg.Height,
		far:      cfg.FarClip,
		workers:  workers,
	}
}

// RenderFrame renders the scene as seen from camInWorld into buf,
// which must hold width*height pixels, row-major, top to bottom. The
// scene and camera pose are read-only for the duration of the call.
func (r *Renderer) RenderFrame(buf []uint32, scene *Scene, camInWorld Pose) {
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		y0 := w * r.height / r.workers
		y1 := (w + 1) * r.height / r.workers
		if y0 == y1 {
			continue
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			r.renderRows(buf, scene, camInWorld, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

func (r *Renderer) renderRows(buf []uint32, scene *Scene, camInWorld Pose, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := buf[y*r.width : (y+1)*r.width]
		for x := 0; x < r.width; x++ {
			dirInWorld := camInWorld.Ori.Rotate(r.viewport.RayDir(x, y))
			row[x] = TraceRay(scene, camInWorld.Pos, dirInWorld, r.far)
		}
	}
}
