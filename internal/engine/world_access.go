package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with the physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// PickFilter decides which objects a pick may hit. A nil filter accepts
// every Pickable object.
type PickFilter func(g *GameObject) bool

// Accepts applies the filter rules to g.
func (f PickFilter) Accepts(g *GameObject) bool {
	if g == nil || !g.Active {
		return false
	}
	if f == nil {
		return g.Pickable
	}
	return f(g)
}
