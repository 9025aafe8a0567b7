package world

import (
	"sketch3d/internal/components"
	"sketch3d/internal/engine"
	"sketch3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GroundName is the name of the sketch plane object.
const GroundName = "ground"

type World struct {
	Scene    *engine.Scene
	Ground   *engine.GameObject
	Renderer *Renderer

	groundSize  float32
	groundY     float32
	highlighted *engine.GameObject
}

// New creates a world holding only the ground plane, a groundSize square
// centred on the origin at height groundY.
func New(groundSize, groundY float32) *World {
	w := &World{
		Scene:      engine.NewScene("Main"),
		Renderer:   NewRenderer(),
		groundSize: groundSize,
		groundY:    groundY,
	}
	w.createGround()
	return w
}

func (w *World) createGround() {
	g := engine.NewGameObject(GroundName)
	g.Transform.Position = rl.Vector3{Y: w.groundY}
	g.Pickable = true
	g.AddComponent(components.NewGround(w.groundSize))
	w.Ground = g
	w.Scene.AddGameObject(g)
}

func (w *World) GroundSize() float32 {
	return w.groundSize
}

func (w *World) Spawn(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	g.Start()
}

// Destroy removes g from the scene. Destroying an object that is not in
// the scene does nothing.
func (w *World) Destroy(g *engine.GameObject) {
	if g == nil || !w.Scene.Contains(g) {
		return
	}
	if w.highlighted == g {
		w.ClearHighlight()
	}
	w.Scene.RemoveGameObject(g)
}

func (w *World) Find(name string) *engine.GameObject {
	return w.Scene.FindByName(name)
}

func (w *World) Exists(g *engine.GameObject) bool {
	return w.Scene.Contains(g)
}

// Pick casts ray against the scene and returns the closest accepted hit.
func (w *World) Pick(ray rl.Ray, filter engine.PickFilter) (engine.RaycastResult, bool) {
	return physics.Raycast(w.Scene.GameObjects, ray, physics.DefaultMaxDistance, filter)
}

// Highlight marks g as the single highlighted solid.
func (w *World) Highlight(g *engine.GameObject) {
	if w.highlighted == g {
		return
	}
	w.ClearHighlight()
	if solid := engine.GetComponent[*components.SolidMesh](g); solid != nil {
		solid.Highlighted = true
		w.highlighted = g
	}
}

func (w *World) ClearHighlight() {
	if solid := engine.GetComponent[*components.SolidMesh](w.highlighted); solid != nil {
		solid.Highlighted = false
	}
	w.highlighted = nil
}

func (w *World) Highlighted() *engine.GameObject {
	return w.highlighted
}

// Solids returns every object carrying a SolidMesh, in scene order.
func (w *World) Solids() []*engine.GameObject {
	var result []*engine.GameObject
	for _, g := range w.Scene.GameObjects {
		if engine.GetComponent[*components.SolidMesh](g) != nil {
			result = append(result, g)
		}
	}
	return result
}

// Bounds returns the world-space bounds of a solid.
func (w *World) Bounds(g *engine.GameObject) (physics.AABB, bool) {
	solid := engine.GetComponent[*components.SolidMesh](g)
	if solid == nil {
		return physics.AABB{}, false
	}
	return physics.AABBFromPositions(solid.Positions).Translate(g.Transform.Position), true
}

// Reset removes everything except the ground and restores its pickability.
func (w *World) Reset() {
	w.ClearHighlight()
	for _, g := range append([]*engine.GameObject(nil), w.Scene.GameObjects...) {
		if g != w.Ground {
			w.Scene.RemoveGameObject(g)
		}
	}
	w.Ground.Pickable = true
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Draw renders the scene; call between BeginMode3D and EndMode3D.
func (w *World) Draw() {
	w.Renderer.Draw(w.Scene.GameObjects)
}
