package game

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"sketch3d/internal/config"
	"sketch3d/internal/engine"
	"sketch3d/internal/gizmo"
	"sketch3d/internal/sketch"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a := New(config.Default())
	dir := t.TempDir()
	a.SketchPath = filepath.Join(dir, "sketch.json")
	a.ExportPath = filepath.Join(dir, "export", "shapes.stl")
	a.PrefsPath = filepath.Join(dir, "prefs.json")
	return a
}

// sketchTriangle closes a triangle at (ox, oz) without going through picking.
func sketchTriangle(t *testing.T, a *App, ox, oz float32) {
	t.Helper()
	sketch.AddPoint(a.State, a, rl.Vector3{X: ox, Z: oz})
	sketch.AddPoint(a.State, a, rl.Vector3{X: ox + 1, Z: oz})
	sketch.AddPoint(a.State, a, rl.Vector3{X: ox + 1, Z: oz + 1})
	require.NoError(t, sketch.CloseShape(a.State, a))
}

func TestNewStartsInDrawMode(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, sketch.ModeDraw, a.State.Mode)
	assert.Equal(t, sketch.MsgDrawMode, a.instruction)
	assert.Equal(t, 1, a.Modes.Bus.GetListenerCount())
	assert.True(t, a.Camera.Attached())
	assert.Equal(t, config.Default().ExtrudeHeight, a.State.ExtrudeHeight)
}

func TestModeButtons(t *testing.T) {
	a := newTestApp(t)

	a.perform(actionMove)
	assert.Equal(t, sketch.ModeMove, a.State.Mode)
	assert.Equal(t, sketch.MsgMoveMode, a.instruction)
	assert.True(t, a.active(actionMove))
	assert.False(t, a.active(actionDraw))

	a.perform(actionEdit)
	assert.Equal(t, sketch.MsgEditMode, a.instruction)
	assert.False(t, a.Ground().Pickable)

	a.perform(actionDraw)
	assert.Equal(t, sketch.MsgDrawMode, a.instruction)
	assert.True(t, a.Ground().Pickable)
}

func TestExtrudeButton(t *testing.T) {
	a := newTestApp(t)
	assert.False(t, a.enabled(actionExtrude))
	a.perform(actionExtrude)
	assert.Equal(t, sketch.MsgDrawMode, a.instruction, "disabled action does nothing")

	sketchTriangle(t, a, 0, 0)
	assert.True(t, a.enabled(actionExtrude))
	a.perform(actionExtrude)

	assert.NotNil(t, a.Find(sketch.SolidName(0)))
	assert.Equal(t, sketch.MsgExtruded, a.instruction)
	assert.Equal(t, []bool{true}, a.State.Extruded)
}

func TestSaveLoadButtons(t *testing.T) {
	a := newTestApp(t)
	sketchTriangle(t, a, 0, 0)
	a.perform(actionExtrude)

	a.perform(actionSave)
	assert.False(t, a.flashErr, a.flashMsg)
	_, err := os.Stat(a.SketchPath)
	require.NoError(t, err)

	a.perform(actionReset)
	assert.Nil(t, a.Find(sketch.SolidName(0)))
	assert.Empty(t, a.State.Shapes)

	a.perform(actionLoad)
	assert.False(t, a.flashErr, a.flashMsg)
	assert.NotNil(t, a.Find(sketch.SolidName(0)))
	assert.Equal(t, []bool{true}, a.State.Extruded)
}

func TestLoadMissingFlashesError(t *testing.T) {
	a := newTestApp(t)
	a.perform(actionLoad)
	assert.True(t, a.flashErr)
	assert.Contains(t, a.flashMsg, "Load failed")
}

func TestExportButton(t *testing.T) {
	a := newTestApp(t)
	a.perform(actionExport)
	assert.True(t, a.flashErr)
	assert.Equal(t, "Nothing to export", a.flashMsg)

	sketchTriangle(t, a, 0, 0)
	a.perform(actionExtrude)
	a.perform(actionExport)
	assert.False(t, a.flashErr, a.flashMsg)
	info, err := os.Stat(a.ExportPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestResetButton(t *testing.T) {
	a := newTestApp(t)
	sketchTriangle(t, a, 0, 0)
	a.perform(actionExtrude)
	a.perform(actionMove)

	a.perform(actionReset)

	assert.Equal(t, sketch.ModeDraw, a.State.Mode)
	assert.Len(t, a.World.Scene.GameObjects, 1)
	assert.Equal(t, sketch.MsgDrawMode, a.instruction)
}

func TestInspectorToggle(t *testing.T) {
	a := newTestApp(t)
	a.perform(actionInspector)
	assert.True(t, a.showInspector)
	assert.True(t, a.active(actionInspector))

	sketchTriangle(t, a, 0, 0)
	lines := a.inspectorLines()
	assert.Contains(t, lines, "Mode:      draw")
	assert.Contains(t, lines, "Shapes:    1 (1 pending)")
	assert.Contains(t, lines, describe(a.Find(sketch.OutlineName(0))))

	a.perform(actionInspector)
	assert.False(t, a.showInspector)
}

func TestApplyConfig(t *testing.T) {
	a := newTestApp(t)
	a.LogLevel = new(slog.LevelVar)
	cfg := config.Default()
	cfg.ExtrudeHeight = 6
	cfg.VertexPrecision = 1
	cfg.LogLevel = "debug"

	ch := make(chan config.Config, 1)
	ch <- cfg
	close(ch)
	a.WatchConfig(ch)
	a.drainConfig()

	assert.Equal(t, float32(6), a.State.ExtrudeHeight)
	assert.Equal(t, 1, a.State.Precision)
	assert.Equal(t, slog.LevelDebug, a.LogLevel.Level())
	assert.Equal(t, "Config reloaded", a.flashMsg)
	assert.Nil(t, a.configUpdates, "closed channel is dropped")
}

func TestDestroyDetachesGizmo(t *testing.T) {
	a := newTestApp(t)
	marker := engine.NewGameObject(sketch.VertexMarkerName(0))
	a.Spawn(marker)
	a.AttachGizmo(marker, gizmo.Handler{})
	require.True(t, a.Gizmo.Attached())

	a.Destroy(marker)

	assert.False(t, a.Gizmo.Attached())
	assert.False(t, a.Exists(marker))
}

func TestCameraControl(t *testing.T) {
	a := newTestApp(t)
	a.DetachCameraControl()
	assert.False(t, a.Camera.Attached())
	a.AttachCameraControl()
	assert.True(t, a.Camera.Attached())
}

func TestFocusSelection(t *testing.T) {
	a := newTestApp(t)
	sketchTriangle(t, a, 4, 4)
	a.perform(actionExtrude)
	a.State.Selected = a.Find(sketch.SolidName(0))

	a.focusSelection()

	assert.InDelta(t, 4.5, a.Camera.Target.X, 1e-4)
	assert.InDelta(t, 4.5, a.Camera.Target.Z, 1e-4)
}

func TestPrefsRoundTrip(t *testing.T) {
	a := newTestApp(t)
	a.Camera.Target = rl.Vector3{X: 1, Y: 2, Z: 3}
	a.Camera.Distance = 12
	a.showInspector = true
	require.NoError(t, WritePrefs(a.PrefsPath, a.capturePrefs(800, 600, 10, 20)))

	b := newTestApp(t)
	b.ApplyPrefs(LoadPrefs(a.PrefsPath))

	assert.Equal(t, a.Camera.Target, b.Camera.Target)
	assert.Equal(t, float32(12), b.Camera.Distance)
	assert.True(t, b.showInspector)
	assert.Equal(t, a.SketchPath, b.SketchPath)
}

func TestLoadPrefsBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	assert.Nil(t, LoadPrefs(path))
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	assert.Nil(t, LoadPrefs(path))
}
