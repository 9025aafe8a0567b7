package components

import (
	"sketch3d/internal/engine"
	"sketch3d/internal/geom"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var GroundColor = rl.NewColor(200, 200, 200, 255)

// Ground is the square sketch plane centred on the owning object.
type Ground struct {
	engine.BaseComponent
	Size  float32
	Color rl.Color
}

func NewGround(size float32) *Ground {
	return &Ground{Size: size, Color: GroundColor}
}

// Raycast implements engine.Collider against the bounded plane.
func (gr *Ground) Raycast(ray rl.Ray, maxDistance float32) (engine.RaycastResult, bool) {
	g := gr.GetGameObject()
	if g == nil {
		return engine.RaycastResult{}, false
	}
	center := g.Transform.Position
	up := rl.Vector3{Y: 1}
	d, ok := geom.RayPlane(ray, center, up)
	if !ok || d > maxDistance {
		return engine.RaycastResult{}, false
	}
	p := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, d))
	half := gr.Size / 2
	if math32.Abs(p.X-center.X) > half || math32.Abs(p.Z-center.Z) > half {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{GameObject: g, Point: p, Normal: up, Distance: d}, true
}

func (gr *Ground) Draw() {
	g := gr.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	rl.DrawPlane(g.Transform.Position, rl.Vector2{X: gr.Size, Y: gr.Size}, gr.Color)
	rl.PushMatrix()
	rl.Translatef(g.Transform.Position.X, g.Transform.Position.Y+0.005, g.Transform.Position.Z)
	rl.DrawGrid(int32(gr.Size), 1)
	rl.PopMatrix()
}
