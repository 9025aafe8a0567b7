// Package game is the desktop front end: a raylib window hosting the sketch
// modes, the toolbar and the inspector overlay.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sketch3d/internal/camera"
	"sketch3d/internal/config"
	"sketch3d/internal/engine"
	"sketch3d/internal/gizmo"
	"sketch3d/internal/sketch"
	"sketch3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GroundY sits just below the sketch plane so lifted points land on y = 0.
const GroundY float32 = -0.01

const DefaultSketchPath = "sketch.json"

var _ sketch.Engine = (*App)(nil)

type App struct {
	Config config.Config
	World  *world.World
	Camera *camera.Orbit
	Gizmo  *gizmo.Gizmo
	State  *sketch.State
	Modes  *sketch.Dispatcher

	SketchPath string
	ExportPath string
	PrefsPath  string
	// LogLevel follows log_level on config reloads when set.
	LogLevel *slog.LevelVar

	pointer       pointerTracker
	configUpdates <-chan config.Config
	showInspector bool
	instruction   string

	// Toolbar feedback
	flashMsg string
	flashErr bool
	flashAt  time.Time

	// Frame timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds the app without touching the window, so it can be driven
// headless.
func New(cfg config.Config) *App {
	a := &App{
		Config:     cfg,
		World:      world.New(cfg.GroundSize, GroundY),
		Camera:     camera.New(rl.Vector3{X: 10, Y: 10, Z: 10}, rl.Vector3{}),
		Gizmo:      gizmo.New(),
		State:      sketch.NewState(cfg.Options()),
		SketchPath: DefaultSketchPath,
		PrefsPath:  defaultPrefsFile,
	}
	a.State.Instructions.AddListener(func(msg string) { a.instruction = msg })
	a.Modes = sketch.NewDispatcher(a.State, a)
	a.Modes.Start()
	a.instruction = sketch.ModeInstruction(a.State.Mode)
	return a
}

// WatchConfig applies every config received on ch at the start of a frame.
func (a *App) WatchConfig(ch <-chan config.Config) {
	a.configUpdates = ch
}

// ApplyConfig takes over the tunables of cfg. Window settings only apply on
// the next start.
func (a *App) ApplyConfig(cfg config.Config) {
	a.Config = cfg
	a.State.Options = cfg.Options()
	if a.LogLevel != nil {
		if level, err := cfg.Level(); err == nil {
			a.LogLevel.Set(level)
		}
	}
	slog.Debug("config applied", "extrude_height", cfg.ExtrudeHeight, "vertex_precision", cfg.VertexPrecision)
}

func (a *App) Run(ctx context.Context) {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, "sketch3d")
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(a.Config.TargetFPS)

	initRayguiStyle()
	a.ApplyPrefs(LoadPrefs(a.PrefsPath))
	defer a.SavePrefs()

	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		a.Update(rl.GetFrameTime())
		a.Draw()
	}
}

func (a *App) Update(deltaTime float32) {
	updateStart := time.Now()

	a.drainConfig()
	a.handleKeys()
	a.handlePointer()
	a.World.Update(deltaTime)

	a.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (a *App) drainConfig() {
	for {
		select {
		case cfg, ok := <-a.configUpdates:
			if !ok {
				a.configUpdates = nil
				return
			}
			a.ApplyConfig(cfg)
			a.flash("Config reloaded", false)
		default:
			return
		}
	}
}

func (a *App) handleKeys() {
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper)

	// Ctrl+Z: undo
	if ctrl && rl.IsKeyPressed(rl.KeyZ) {
		sketch.Undo(a.State, a)
	}
	// Ctrl+S: save sketch
	if ctrl && rl.IsKeyPressed(rl.KeyS) {
		a.perform(actionSave)
	}
	// Ctrl+O: load sketch
	if ctrl && rl.IsKeyPressed(rl.KeyO) {
		a.perform(actionLoad)
	}
	if ctrl {
		return
	}

	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		a.perform(actionDraw)
	case rl.IsKeyPressed(rl.KeyTwo):
		a.perform(actionMove)
	case rl.IsKeyPressed(rl.KeyThree):
		a.perform(actionEdit)
	case rl.IsKeyPressed(rl.KeyEnter):
		a.perform(actionExtrude)
	case rl.IsKeyPressed(rl.KeyF):
		a.focusSelection()
	case rl.IsKeyPressed(rl.KeyF1):
		a.perform(actionInspector)
	}
}

func (a *App) handlePointer() {
	f := readMouse()
	overUI := a.mouseInUI(f.Pos)

	cam := a.Camera.GetRaylibCamera()
	ray := rl.GetScreenToWorldRay(f.Pos, cam)
	leftPressed := f.Pressed[sketch.ButtonLeft] && !overUI
	if a.Gizmo.Update(ray, cam.Position, leftPressed, f.Down[sketch.ButtonLeft]) {
		a.pointer.Reset()
		return
	}

	if overUI {
		f.Pressed = [buttonCount]bool{}
	}
	for _, ev := range a.pointer.Events(f) {
		a.Modes.Dispatch(ev)
	}

	wheel := rl.GetMouseWheelMove()
	if overUI {
		wheel = 0
	}
	a.Camera.Update(camera.Input{
		Delta:  rl.GetMouseDelta(),
		Rotate: a.pointer.Dragging(sketch.ButtonLeft) || a.pointer.Dragging(sketch.ButtonRight),
		Pan:    f.Down[sketch.ButtonMiddle],
		Wheel:  wheel,
	})
}

// focusSelection centres the camera on the selected solid.
func (a *App) focusSelection() {
	g := a.State.Selected
	if g == nil || !a.World.Exists(g) {
		return
	}
	if box, ok := a.World.Bounds(g); ok {
		a.Camera.Focus(box.Center())
	}
}

func (a *App) flash(msg string, isErr bool) {
	a.flashMsg = msg
	a.flashErr = isErr
	a.flashAt = time.Now()
}

func (a *App) flashError(what string, err error) {
	slog.Error(what, "error", err)
	a.flash(fmt.Sprintf("%s: %v", what, err), true)
}

func (a *App) Draw() {
	cam := a.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(a.World.Renderer.Background)

	drawStart := time.Now()
	rl.BeginMode3D(cam)
	a.World.Draw()
	a.Gizmo.Draw()
	rl.EndMode3D()
	a.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	a.drawToolbar()
	a.drawInstruction()
	if a.showInspector {
		a.drawInspector()
	}
	rl.EndDrawing()
}

// --- sketch.Engine ---

func (a *App) Pick(pos rl.Vector2, filter engine.PickFilter) (engine.RaycastResult, bool) {
	ray := rl.GetScreenToWorldRay(pos, a.Camera.GetRaylibCamera())
	return a.World.Pick(ray, filter)
}

func (a *App) Spawn(g *engine.GameObject) { a.World.Spawn(g) }

func (a *App) Destroy(g *engine.GameObject) {
	if a.Gizmo.Target() == g {
		a.Gizmo.Detach()
	}
	a.World.Destroy(g)
}

func (a *App) Find(name string) *engine.GameObject { return a.World.Find(name) }

func (a *App) Exists(g *engine.GameObject) bool { return a.World.Exists(g) }

func (a *App) Ground() *engine.GameObject { return a.World.Ground }

func (a *App) Highlight(g *engine.GameObject) { a.World.Highlight(g) }

func (a *App) ClearHighlight() { a.World.ClearHighlight() }

func (a *App) AttachCameraControl() { a.Camera.Attach() }

func (a *App) DetachCameraControl() { a.Camera.Detach() }

func (a *App) AttachGizmo(target *engine.GameObject, h gizmo.Handler) { a.Gizmo.Attach(target, h) }

func (a *App) DetachGizmo() { a.Gizmo.Detach() }

func (a *App) ResetScene() {
	a.Gizmo.Detach()
	a.World.Reset()
}
