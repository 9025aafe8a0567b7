package sketch

import (
	"sketch3d/internal/engine"
	"sketch3d/internal/gizmo"
	"sketch3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fakeEngine is a headless Engine. Screen position (x, y) picks straight
// down onto world (x, z).
type fakeEngine struct {
	w *world.World

	cameraAttached bool
	cameraDetaches int

	gizmoTarget   *engine.GameObject
	gizmoHandler  gizmo.Handler
	gizmoDragging bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{w: world.New(20, -0.01), cameraAttached: true}
}

func (f *fakeEngine) Pick(pos rl.Vector2, filter engine.PickFilter) (engine.RaycastResult, bool) {
	ray := rl.Ray{Position: rl.Vector3{X: pos.X, Y: 50, Z: pos.Y}, Direction: rl.Vector3{Y: -1}}
	return f.w.Pick(ray, filter)
}

func (f *fakeEngine) Spawn(g *engine.GameObject) { f.w.Spawn(g) }
func (f *fakeEngine) Destroy(g *engine.GameObject) { f.w.Destroy(g) }
func (f *fakeEngine) Find(name string) *engine.GameObject { return f.w.Find(name) }
func (f *fakeEngine) Exists(g *engine.GameObject) bool { return f.w.Exists(g) }
func (f *fakeEngine) Ground() *engine.GameObject { return f.w.Ground }
func (f *fakeEngine) Highlight(g *engine.GameObject) { f.w.Highlight(g) }
func (f *fakeEngine) ClearHighlight() { f.w.ClearHighlight() }
func (f *fakeEngine) ResetScene() { f.w.Reset() }

func (f *fakeEngine) AttachCameraControl() { f.cameraAttached = true }

func (f *fakeEngine) DetachCameraControl() {
	f.cameraAttached = false
	f.cameraDetaches++
}

// AttachGizmo and DetachGizmo finish a drag in progress like gizmo.Gizmo.
func (f *fakeEngine) AttachGizmo(target *engine.GameObject, h gizmo.Handler) {
	f.endDrag()
	f.gizmoTarget = target
	f.gizmoHandler = h
}

func (f *fakeEngine) DetachGizmo() {
	f.endDrag()
	f.gizmoTarget = nil
	f.gizmoHandler = gizmo.Handler{}
}

// beginDrag starts a gizmo drag and moves the target by delta without
// releasing.
func (f *fakeEngine) beginDrag(delta rl.Vector3) {
	f.gizmoHandler.OnDragStart()
	f.gizmoDragging = true
	f.gizmoTarget.Translate(delta)
	f.gizmoHandler.OnDrag(delta)
}

func (f *fakeEngine) endDrag() {
	if !f.gizmoDragging {
		return
	}
	f.gizmoDragging = false
	f.gizmoHandler.OnDragEnd()
}

// drag simulates one complete gizmo drag by delta.
func (f *fakeEngine) drag(delta rl.Vector3) {
	f.beginDrag(delta)
	f.endDrag()
}

func (f *fakeEngine) count(match func(*engine.GameObject) bool) int {
	n := 0
	for _, g := range f.w.Scene.GameObjects {
		if match(g) {
			n++
		}
	}
	return n
}

func isPointMarker(g *engine.GameObject) bool { return g.Name == PointMarkerName }

type harness struct {
	st       *State
	eng      *fakeEngine
	d        *Dispatcher
	messages []string
	modes    []Mode
}

func newHarness() *harness {
	h := &harness{st: NewState(DefaultOptions()), eng: newFakeEngine()}
	h.st.Instructions.AddListener(func(msg string) { h.messages = append(h.messages, msg) })
	h.st.ModeChanged.AddListener(func(m Mode) { h.modes = append(h.modes, m) })
	h.d = NewDispatcher(h.st, h.eng)
	h.d.Start()
	return h
}

func (h *harness) send(kind PointerKind, button Button, x, z float32) {
	h.d.Dispatch(PointerEvent{Kind: kind, Button: button, Pos: rl.Vector2{X: x, Y: z}})
}

func (h *harness) tap(x, z float32) { h.send(PointerTap, ButtonLeft, x, z) }
func (h *harness) rightTap() { h.send(PointerTap, ButtonRight, -9, -9) }
func (h *harness) down(x, z float32) { h.send(PointerDown, ButtonLeft, x, z) }
func (h *harness) move(x, z float32) { h.send(PointerMove, ButtonLeft, x, z) }
func (h *harness) up(x, z float32) { h.send(PointerUp, ButtonLeft, x, z) }
func (h *harness) lastMessage() string {
	if len(h.messages) == 0 {
		return ""
	}
	return h.messages[len(h.messages)-1]
}

// drawTriangle sketches and closes the triangle (0,0) (1,0) (1,1) offset
// by (ox, oz).
func (h *harness) drawTriangle(ox, oz float32) {
	h.tap(ox, oz)
	h.tap(ox+1, oz)
	h.tap(ox+1, oz+1)
	h.rightTap()
}
