package components

import (
	"sketch3d/internal/engine"
	"sketch3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var OutlineColor = rl.Red

// Outline draws a closed sketch ring as a polyline.
type Outline struct {
	engine.BaseComponent
	Points []rl.Vector3
	Color  rl.Color
}

func NewOutline(points []rl.Vector3) *Outline {
	pts := make([]rl.Vector3, len(points))
	copy(pts, points)
	return &Outline{Points: pts, Color: OutlineColor}
}

// Bake implements engine.Bakeable.
func (o *Outline) Bake(m rl.Matrix) {
	geom.TransformPoints(o.Points, m)
}

// WorldPoints returns the ring with the owning object's transform applied.
func (o *Outline) WorldPoints() []rl.Vector3 {
	out := make([]rl.Vector3, len(o.Points))
	copy(out, o.Points)
	if g := o.GetGameObject(); g != nil && !g.Transform.IsIdentity() {
		geom.TransformPoints(out, g.Transform.Matrix())
	}
	return out
}

func (o *Outline) Draw() {
	g := o.GetGameObject()
	if g == nil || !g.Active || len(o.Points) < 2 {
		return
	}
	pts := o.WorldPoints()
	for i := 0; i+1 < len(pts); i++ {
		rl.DrawLine3D(pts[i], pts[i+1], o.Color)
	}
}
