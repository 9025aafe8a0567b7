package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Drawable is implemented by components that render themselves.
// Call inside BeginMode3D/EndMode3D.
type Drawable interface {
	Draw()
}

// Collider is implemented by components that can be hit by a pick ray.
type Collider interface {
	Raycast(ray rl.Ray, maxDistance float32) (RaycastResult, bool)
}

// Bakeable is implemented by components whose geometry can absorb the owning
// object's transform, leaving the transform at identity.
type Bakeable interface {
	Bake(m rl.Matrix)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// BakeTransform pushes g's transform into every Bakeable component and
// resets the transform to identity.
func BakeTransform(g *GameObject) {
	if g == nil || g.Transform.IsIdentity() {
		return
	}
	m := g.Transform.Matrix()
	for _, c := range g.components {
		if b, ok := c.(Bakeable); ok {
			b.Bake(m)
		}
	}
	g.Transform = IdentityTransform()
}
