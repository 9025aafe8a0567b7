package physics

import (
	"sketch3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// AABBFromPositions bounds a flat x, y, z vertex buffer.
func AABBFromPositions(positions []float32) AABB {
	min, max := geom.Bounds(positions)
	return AABB{Min: min, Max: max}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

// Translate returns the box moved by delta.
func (a AABB) Translate(delta rl.Vector3) AABB {
	return AABB{Min: rl.Vector3Add(a.Min, delta), Max: rl.Vector3Add(a.Max, delta)}
}
