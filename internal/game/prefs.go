package game

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Prefs holds window and view state saved between sessions.
type Prefs struct {
	WindowWidth    int        `json:"windowWidth"`
	WindowHeight   int        `json:"windowHeight"`
	WindowX        int        `json:"windowX"`
	WindowY        int        `json:"windowY"`
	CameraTarget   rl.Vector3 `json:"cameraTarget"`
	CameraDistance float32    `json:"cameraDistance"`
	CameraYaw      float32    `json:"cameraYaw"`
	CameraPitch    float32    `json:"cameraPitch"`
	SketchPath     string     `json:"sketchPath"`
	InspectorOpen  bool       `json:"inspectorOpen"`
}

const defaultPrefsFile = ".sketch_prefs.json"

// LoadPrefs reads prefs from path. A missing or broken file yields nil.
func LoadPrefs(path string) *Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var prefs Prefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		slog.Warn("failed to parse prefs", "path", path, "error", err)
		return nil
	}
	return &prefs
}

// WritePrefs saves prefs to path.
func WritePrefs(path string, prefs Prefs) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}

// capturePrefs records the current view. Window geometry comes from the
// caller since it needs a live window.
func (a *App) capturePrefs(width, height, x, y int) Prefs {
	return Prefs{
		WindowWidth:    width,
		WindowHeight:   height,
		WindowX:        x,
		WindowY:        y,
		CameraTarget:   a.Camera.Target,
		CameraDistance: a.Camera.Distance,
		CameraYaw:      a.Camera.Yaw,
		CameraPitch:    a.Camera.Pitch,
		SketchPath:     a.SketchPath,
		InspectorOpen:  a.showInspector,
	}
}

// SavePrefs saves the current window and camera to PrefsPath.
func (a *App) SavePrefs() {
	pos := rl.GetWindowPosition()
	prefs := a.capturePrefs(rl.GetScreenWidth(), rl.GetScreenHeight(), int(pos.X), int(pos.Y))
	if err := WritePrefs(a.PrefsPath, prefs); err != nil {
		slog.Error("failed to save prefs", "error", err)
	}
}

// ApplyPrefs applies loaded preferences. Window geometry is applied only
// when a window is open.
func (a *App) ApplyPrefs(prefs *Prefs) {
	if prefs == nil {
		return
	}
	a.Camera.Target = prefs.CameraTarget
	if prefs.CameraDistance > 0 {
		a.Camera.Distance = prefs.CameraDistance
		a.Camera.Yaw = prefs.CameraYaw
		a.Camera.Pitch = prefs.CameraPitch
	}
	if prefs.SketchPath != "" {
		a.SketchPath = prefs.SketchPath
	}
	a.showInspector = prefs.InspectorOpen

	if rl.IsWindowReady() && prefs.WindowWidth > 0 && prefs.WindowHeight > 0 {
		rl.SetWindowSize(prefs.WindowWidth, prefs.WindowHeight)
		rl.SetWindowPosition(prefs.WindowX, prefs.WindowY)
	}
}
