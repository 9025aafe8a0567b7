package game

import (
	"fmt"

	"sketch3d/internal/components"
	"sketch3d/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	inspectorWidth   = 300
	inspectorLineH   = 18
	inspectorMaxRows = 24
)

func inspectorBounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(rl.GetScreenWidth() - inspectorWidth - 10),
		Y:      toolbarHeight + 10,
		Width:  inspectorWidth,
		Height: float32(rl.GetScreenHeight()) - toolbarHeight - 70,
	}
}

// inspectorLines summarizes the sketch state and lists the scene objects.
func (a *App) inspectorLines() []string {
	st := a.State
	selected := "-"
	if st.Selected != nil {
		selected = st.Selected.Name
	}
	lines := []string{
		fmt.Sprintf("Mode:      %s", st.Mode),
		fmt.Sprintf("Points:    %d", len(st.Points)),
		fmt.Sprintf("Shapes:    %d (%d pending)", len(st.Shapes), st.PendingCount()),
		fmt.Sprintf("Selected:  %s", selected),
		fmt.Sprintf("Undo:      %d", st.Undo.Len()),
		fmt.Sprintf("Update %.2f ms  Draw %.2f ms", a.updateMs, a.drawMs),
		"",
	}
	for _, g := range a.World.Scene.GameObjects {
		lines = append(lines, describe(g))
	}
	return lines
}

func describe(g *engine.GameObject) string {
	if mesh := engine.GetComponent[*components.SolidMesh](g); mesh != nil {
		return fmt.Sprintf("#%d %s  %d verts", g.UID, g.Name, mesh.VertexCount())
	}
	return fmt.Sprintf("#%d %s", g.UID, g.Name)
}

func (a *App) drawInspector() {
	bounds := inspectorBounds()
	gui.Panel(bounds, "Inspector")

	x := bounds.X + 10
	y := bounds.Y + 32
	sliderBounds := rl.Rectangle{X: x + 60, Y: y, Width: bounds.Width - 120, Height: 18}
	rl.DrawText("Height", int32(x), int32(y)+2, 14, colorTextSecondary)
	a.State.ExtrudeHeight = gui.Slider(sliderBounds, "", fmt.Sprintf("%.1f", a.State.ExtrudeHeight), a.State.ExtrudeHeight, 0.5, 10)
	y += 26

	checkBounds := rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}
	a.World.Renderer.MarkersOnTop = gui.CheckBox(checkBounds, "Markers on top", a.World.Renderer.MarkersOnTop)
	y += 28

	lines := a.inspectorLines()
	for i, line := range lines {
		if i >= inspectorMaxRows {
			rl.DrawText(fmt.Sprintf("... %d more", len(lines)-i), int32(x), int32(y), 14, colorTextMuted)
			break
		}
		color := colorTextSecondary
		if a.State.Selected != nil && line == describe(a.State.Selected) {
			color = colorAccentLight
		}
		rl.DrawText(line, int32(x), int32(y), 14, color)
		y += inspectorLineH
	}
}
