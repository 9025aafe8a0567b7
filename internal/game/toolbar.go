package game

import (
	"errors"
	"fmt"
	"time"

	"sketch3d/internal/export"
	"sketch3d/internal/sketch"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type action int

const (
	actionDraw action = iota
	actionMove
	actionEdit
	actionExtrude
	actionSave
	actionLoad
	actionExport
	actionReset
	actionInspector
)

type toolbarButton struct {
	label  string
	action action
}

var toolbarButtons = []toolbarButton{
	{"Draw", actionDraw},
	{"Move", actionMove},
	{"Edit", actionEdit},
	{"Extrude", actionExtrude},
	{"Save", actionSave},
	{"Load", actionLoad},
	{"Export", actionExport},
	{"Reset", actionReset},
	{"Inspector", actionInspector},
}

const (
	toolbarHeight  = 40
	buttonWidth    = 84
	buttonHeight   = 28
	buttonSpacing  = 6
	flashDuration  = 2 * time.Second
	instructionGap = 8
)

var modeActions = map[action]sketch.Mode{
	actionDraw: sketch.ModeDraw,
	actionMove: sketch.ModeMove,
	actionEdit: sketch.ModeEdit,
}

func (a *App) enabled(act action) bool {
	if act == actionExtrude {
		return a.State.CanExtrude()
	}
	return true
}

func (a *App) active(act action) bool {
	if m, ok := modeActions[act]; ok {
		return a.State.Mode == m
	}
	return act == actionInspector && a.showInspector
}

// perform runs a toolbar action. Disabled actions do nothing.
func (a *App) perform(act action) {
	if !a.enabled(act) {
		return
	}
	if m, ok := modeActions[act]; ok {
		if a.State.Mode != m {
			a.Modes.SetMode(m)
			a.State.Notify(sketch.ModeInstruction(m))
		}
		return
	}

	switch act {
	case actionExtrude:
		sketch.Extrude(a.State, a)
	case actionSave:
		if err := sketch.Save(a.State, a.World.Scene.GameObjects, a.SketchPath); err != nil {
			a.flashError("Save failed", err)
			return
		}
		a.flash("Sketch saved!", false)
	case actionLoad:
		if err := sketch.Load(a.Modes, a.SketchPath); err != nil {
			a.flashError("Load failed", err)
			return
		}
		a.flash("Sketch loaded", false)
	case actionExport:
		path := a.ExportPath
		if path == "" {
			path = export.DefaultPath
		}
		n, err := export.SaveSTL(path, a.World.Solids())
		if errors.Is(err, export.ErrNothingToExport) {
			a.flash("Nothing to export", true)
			return
		}
		if err != nil {
			a.flashError("Export failed", err)
			return
		}
		a.flash(fmt.Sprintf("Exported %d triangles to %s", n, path), false)
	case actionReset:
		a.Modes.Reset()
		a.State.Notify(sketch.ModeInstruction(sketch.ModeDraw))
	case actionInspector:
		a.showInspector = !a.showInspector
	}
}

func buttonBounds(i int) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(buttonSpacing + i*(buttonWidth+buttonSpacing)),
		Y:      float32(toolbarHeight-buttonHeight) / 2,
		Width:  buttonWidth,
		Height: buttonHeight,
	}
}

// mouseInUI reports whether pos is over the toolbar or an open panel.
func (a *App) mouseInUI(pos rl.Vector2) bool {
	if pos.Y <= toolbarHeight {
		return true
	}
	return a.showInspector && rl.CheckCollisionPointRec(pos, inspectorBounds())
}

func (a *App) drawToolbar() {
	screenW := int32(rl.GetScreenWidth())
	rl.DrawRectangle(0, 0, screenW, toolbarHeight, colorBgDark)
	rl.DrawRectangle(0, toolbarHeight-1, screenW, 1, colorBorder)

	for i, b := range toolbarButtons {
		bounds := buttonBounds(i)
		if a.active(b.action) {
			rl.DrawRectangleRec(rl.Rectangle{X: bounds.X, Y: bounds.Y + bounds.Height, Width: bounds.Width, Height: 3}, colorAccent)
		}
		if !a.enabled(b.action) {
			gui.Disable()
		}
		if gui.Button(bounds, b.label) {
			a.perform(b.action)
		}
		gui.Enable()
	}

	if a.flashMsg != "" && time.Since(a.flashAt) < flashDuration {
		color := colorFlashOK
		if a.flashErr {
			color = colorFlashErr
		}
		x := int32(buttonBounds(len(toolbarButtons)).X) + 12
		rl.DrawText(a.flashMsg, x, 12, 16, color)
	}
}

func (a *App) drawInstruction() {
	if a.instruction == "" {
		return
	}
	const size = 18
	w := rl.MeasureText(a.instruction, size)
	x := (int32(rl.GetScreenWidth()) - w) / 2
	y := int32(rl.GetScreenHeight()) - size - 2*instructionGap
	rl.DrawRectangle(x-instructionGap, y-instructionGap/2, w+2*instructionGap, size+instructionGap, colorBgPanel)
	rl.DrawText(a.instruction, x, y, size, colorTextPrimary)
}
