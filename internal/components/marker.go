package components

import (
	"sketch3d/internal/engine"
	"sketch3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MarkerShape int

const (
	MarkerSphere MarkerShape = iota
	MarkerBox
)

var (
	PointMarkerColor  = rl.NewColor(30, 144, 255, 255)
	VertexMarkerColor = rl.NewColor(230, 41, 55, 255)
)

// Marker is a small sphere or cube drawn at the owning object's position.
// Size is the diameter (sphere) or edge length (box).
type Marker struct {
	engine.BaseComponent
	Shape MarkerShape
	Size  float32
	Color rl.Color
}

func NewMarker(shape MarkerShape, size float32, color rl.Color) *Marker {
	return &Marker{Shape: shape, Size: size, Color: color}
}

func (m *Marker) position() rl.Vector3 {
	return m.GetGameObject().Transform.Position
}

// Raycast implements engine.Collider.
func (m *Marker) Raycast(ray rl.Ray, maxDistance float32) (engine.RaycastResult, bool) {
	g := m.GetGameObject()
	if g == nil {
		return engine.RaycastResult{}, false
	}
	pos := m.position()
	half := m.Size / 2

	var (
		d      float32
		normal rl.Vector3
		ok     bool
	)
	switch m.Shape {
	case MarkerBox:
		ext := rl.Vector3{X: half, Y: half, Z: half}
		d, normal, ok = geom.RayBox(ray, rl.Vector3Subtract(pos, ext), rl.Vector3Add(pos, ext))
	default:
		d, ok = geom.RaySphere(ray, pos, half)
		if ok {
			hit := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, d))
			normal = rl.Vector3Normalize(rl.Vector3Subtract(hit, pos))
		}
	}
	if !ok || d > maxDistance {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{
		GameObject: g,
		Point:      rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, d)),
		Normal:     normal,
		Distance:   d,
	}, true
}

func (m *Marker) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	pos := m.position()
	switch m.Shape {
	case MarkerBox:
		size := rl.Vector3{X: m.Size, Y: m.Size, Z: m.Size}
		rl.DrawCubeV(pos, size, m.Color)
		rl.DrawCubeWiresV(pos, size, rl.Black)
	default:
		rl.DrawSphere(pos, m.Size/2, m.Color)
	}
}
