// Package gizmo implements a three-axis translate widget. The gizmo moves
// its target along one world axis at a time and reports the per-frame
// displacement to a Handler.
package gizmo

import (
	"sketch3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultLength    float32 = 1.2
	DefaultTipSize   float32 = 0.15
	DefaultHitDist   float32 = 0.3
	DefaultThickness float32 = 0.04
)

var axes = [3]rl.Vector3{
	{X: 1, Y: 0, Z: 0}, // X - red
	{X: 0, Y: 1, Z: 0}, // Y - green
	{X: 0, Y: 0, Z: 1}, // Z - blue
}

var axisColors = [3]rl.Color{rl.Red, rl.Green, rl.Blue}

// Handler receives drag notifications. Any field may be nil.
type Handler struct {
	OnDragStart func()
	// OnDrag receives the displacement since the previous drag frame.
	OnDrag    func(delta rl.Vector3)
	OnDragEnd func()
}

type Gizmo struct {
	Length    float32
	TipSize   float32
	HitDist   float32
	Thickness float32

	target  *engine.GameObject
	handler Handler

	hoveredAxis     int
	dragging        bool
	dragAxisIdx     int
	dragAxis        rl.Vector3
	dragOrigin      rl.Vector3
	dragPlaneNormal rl.Vector3
	dragStart       float32
	dragApplied     float32
}

func New() *Gizmo {
	return &Gizmo{
		Length:      DefaultLength,
		TipSize:     DefaultTipSize,
		HitDist:     DefaultHitDist,
		Thickness:   DefaultThickness,
		hoveredAxis: -1,
		dragAxisIdx: -1,
	}
}

// Attach shows the gizmo on target. A drag in progress on a previous
// target is finished first.
func (g *Gizmo) Attach(target *engine.GameObject, h Handler) {
	if g.dragging {
		g.End()
	}
	g.target = target
	g.handler = h
	g.hoveredAxis = -1
}

// Detach hides the gizmo, finishing any drag in progress.
func (g *Gizmo) Detach() {
	if g.dragging {
		g.End()
	}
	g.target = nil
	g.handler = Handler{}
	g.hoveredAxis = -1
}

func (g *Gizmo) Target() *engine.GameObject {
	return g.target
}

func (g *Gizmo) Attached() bool {
	return g.target != nil
}

func (g *Gizmo) Dragging() bool {
	return g.dragging
}

func (g *Gizmo) center() rl.Vector3 {
	return g.target.Transform.Position
}

// PickAxis returns the index of the gizmo axis closest to ray, or -1.
func (g *Gizmo) PickAxis(ray rl.Ray) int {
	if g.target == nil {
		return -1
	}

	center := g.center()
	bestDist := float32(999.0)
	bestAxis := -1
	for i, axis := range axes {
		_, t2, dist := closestPointBetweenRays(ray.Position, ray.Direction, center, axis)
		if t2 > 0 && t2 < g.Length+g.TipSize && dist < g.HitDist && dist < bestDist {
			bestDist = dist
			bestAxis = i
		}
	}
	return bestAxis
}

// Begin starts dragging along axis. camPos orients the drag plane so it
// contains the axis and faces the viewer.
func (g *Gizmo) Begin(axisIdx int, ray rl.Ray, camPos rl.Vector3) bool {
	if g.target == nil || axisIdx < 0 || axisIdx >= len(axes) {
		return false
	}

	g.dragAxisIdx = axisIdx
	g.dragAxis = axes[axisIdx]
	g.dragOrigin = g.center()

	viewDir := rl.Vector3Normalize(rl.Vector3Subtract(g.dragOrigin, camPos))
	cross1 := rl.Vector3CrossProduct(viewDir, g.dragAxis)
	if rl.Vector3Length(cross1) < 1e-4 {
		// looking straight down the axis
		return false
	}
	g.dragPlaneNormal = rl.Vector3Normalize(rl.Vector3CrossProduct(g.dragAxis, cross1))

	pt, ok := rayPlaneIntersect(ray.Position, ray.Direction, g.dragOrigin, g.dragPlaneNormal)
	if !ok {
		return false
	}
	g.dragStart = rl.Vector3DotProduct(rl.Vector3Subtract(pt, g.dragOrigin), g.dragAxis)
	g.dragApplied = 0
	g.dragging = true

	if g.handler.OnDragStart != nil {
		g.handler.OnDragStart()
	}
	return true
}

// Drag moves the target to follow ray and reports the frame delta.
func (g *Gizmo) Drag(ray rl.Ray) {
	if !g.dragging || g.target == nil {
		g.dragging = false
		return
	}

	pt, ok := rayPlaneIntersect(ray.Position, ray.Direction, g.dragOrigin, g.dragPlaneNormal)
	if !ok {
		return
	}

	currentT := rl.Vector3DotProduct(rl.Vector3Subtract(pt, g.dragOrigin), g.dragAxis)
	offset := currentT - g.dragStart
	step := offset - g.dragApplied
	if step == 0 {
		return
	}
	g.dragApplied = offset

	delta := rl.Vector3Scale(g.dragAxis, step)
	g.target.Translate(delta)
	if g.handler.OnDrag != nil {
		g.handler.OnDrag(delta)
	}
}

func (g *Gizmo) End() {
	if !g.dragging {
		return
	}
	g.dragging = false
	g.dragAxisIdx = -1
	if g.handler.OnDragEnd != nil {
		g.handler.OnDragEnd()
	}
}

// Update drives the gizmo from raw mouse state and reports whether it
// consumed the input this frame.
func (g *Gizmo) Update(ray rl.Ray, camPos rl.Vector3, pressed, down bool) bool {
	if g.target == nil {
		return false
	}
	if g.dragging {
		if down {
			g.Drag(ray)
		} else {
			g.End()
		}
		return true
	}

	g.hoveredAxis = g.PickAxis(ray)
	if pressed && g.hoveredAxis >= 0 {
		return g.Begin(g.hoveredAxis, ray, camPos)
	}
	return false
}

// Draw renders the axes on top of the scene. Call inside BeginMode3D/EndMode3D.
func (g *Gizmo) Draw() {
	if g.target == nil {
		return
	}

	rl.DrawRenderBatchActive()
	rl.DisableDepthTest()

	center := g.center()
	for i, axis := range axes {
		color := axisColors[i]
		if g.dragging && g.dragAxisIdx == i {
			color = rl.Yellow
		} else if !g.dragging && g.hoveredAxis == i {
			color = rl.Yellow
		}

		end := rl.Vector3Add(center, rl.Vector3Scale(axis, g.Length))
		rl.DrawCylinderEx(center, end, g.Thickness, g.Thickness, 8, color)
		rl.DrawCylinderEx(end, rl.Vector3Add(end, rl.Vector3Scale(axis, g.TipSize)), g.TipSize*0.6, 0, 8, color)
	}

	rl.DrawRenderBatchActive()
	rl.EnableDepthTest()
}
