package world

import (
	"sketch3d/internal/components"
	"sketch3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws scene objects in passes so that lines and markers stay
// visible on top of the solids they belong to.
type Renderer struct {
	Background rl.Color
	// MarkersOnTop draws markers with the depth test disabled.
	MarkersOnTop bool

	ground  []engine.Drawable
	solids  []engine.Drawable
	lines   []engine.Drawable
	markers []engine.Drawable
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background:   rl.RayWhite,
		MarkersOnTop: true,
	}
}

func (r *Renderer) Draw(gameObjects []*engine.GameObject) {
	r.ground = r.ground[:0]
	r.solids = r.solids[:0]
	r.lines = r.lines[:0]
	r.markers = r.markers[:0]

	for _, g := range gameObjects {
		if !g.Active {
			continue
		}
		for _, c := range g.Components() {
			d, ok := c.(engine.Drawable)
			if !ok {
				continue
			}
			switch c.(type) {
			case *components.Ground:
				r.ground = append(r.ground, d)
			case *components.SolidMesh:
				r.solids = append(r.solids, d)
			case *components.Outline:
				r.lines = append(r.lines, d)
			default:
				r.markers = append(r.markers, d)
			}
		}
	}

	drawAll(r.ground)
	drawAll(r.solids)
	drawAll(r.lines)

	if r.MarkersOnTop {
		rl.DrawRenderBatchActive()
		rl.DisableDepthTest()
	}
	drawAll(r.markers)
	if r.MarkersOnTop {
		rl.DrawRenderBatchActive()
		rl.EnableDepthTest()
	}
}

func drawAll(ds []engine.Drawable) {
	for _, d := range ds {
		d.Draw()
	}
}
