package sketch

import (
	"sketch3d/internal/engine"
	"sketch3d/internal/gizmo"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	// PointerTap is a press and release without significant movement.
	PointerTap
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// PointerEvent is a screen-space pointer event.
type PointerEvent struct {
	Kind   PointerKind
	Button Button
	Pos    rl.Vector2
}

// Bus carries pointer events to the listeners of the active mode.
type Bus = engine.EventWithArg[PointerEvent]

// Engine is the scene as seen by the interaction core.
type Engine interface {
	// Pick casts a ray through screen position pos.
	Pick(pos rl.Vector2, filter engine.PickFilter) (engine.RaycastResult, bool)
	Spawn(g *engine.GameObject)
	Destroy(g *engine.GameObject)
	Find(name string) *engine.GameObject
	Exists(g *engine.GameObject) bool
	Ground() *engine.GameObject
	Highlight(g *engine.GameObject)
	ClearHighlight()
	AttachCameraControl()
	DetachCameraControl()
	AttachGizmo(target *engine.GameObject, h gizmo.Handler)
	DetachGizmo()
	// ResetScene removes everything but the ground.
	ResetScene()
}

// Disposer tears down whatever a mode setup wired.
type Disposer interface {
	Dispose()
}

// DisposeFunc adapts a function to Disposer.
type DisposeFunc func()

func (f DisposeFunc) Dispose() {
	if f != nil {
		f()
	}
}
