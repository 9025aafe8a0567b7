package game

import (
	"sketch3d/internal/sketch"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// tapSlop is how far the mouse may travel, in pixels, between press and
// release for the click to count as a tap.
const tapSlop = 4

const buttonCount = 3

// mouseFrame is the mouse state sampled once per frame. Indices follow
// sketch.Button.
type mouseFrame struct {
	Pos      rl.Vector2
	Pressed  [buttonCount]bool
	Down     [buttonCount]bool
	Released [buttonCount]bool
}

func readMouse() mouseFrame {
	f := mouseFrame{Pos: rl.GetMousePosition()}
	buttons := [buttonCount]rl.MouseButton{rl.MouseLeftButton, rl.MouseRightButton, rl.MouseMiddleButton}
	for i, b := range buttons {
		f.Pressed[i] = rl.IsMouseButtonPressed(b)
		f.Down[i] = rl.IsMouseButtonDown(b)
		f.Released[i] = rl.IsMouseButtonReleased(b)
	}
	return f
}

// pointerTracker turns per-frame mouse state into pointer events.
type pointerTracker struct {
	last    rl.Vector2
	started bool
	down    [buttonCount]bool
	origin  [buttonCount]rl.Vector2
	dragged [buttonCount]bool
}

func (p *pointerTracker) Events(f mouseFrame) []sketch.PointerEvent {
	var out []sketch.PointerEvent
	for b := range buttonCount {
		if !f.Pressed[b] {
			continue
		}
		p.down[b] = true
		p.origin[b] = f.Pos
		p.dragged[b] = false
		out = append(out, sketch.PointerEvent{Kind: sketch.PointerDown, Button: sketch.Button(b), Pos: f.Pos})
	}

	if p.started && f.Pos != p.last {
		held := sketch.ButtonLeft
		for b := buttonCount - 1; b >= 0; b-- {
			if !p.down[b] {
				continue
			}
			held = sketch.Button(b)
			if rl.Vector2Distance(f.Pos, p.origin[b]) > tapSlop {
				p.dragged[b] = true
			}
		}
		out = append(out, sketch.PointerEvent{Kind: sketch.PointerMove, Button: held, Pos: f.Pos})
	}
	p.last = f.Pos
	p.started = true

	for b := range buttonCount {
		if !f.Released[b] || !p.down[b] {
			continue
		}
		out = append(out, sketch.PointerEvent{Kind: sketch.PointerUp, Button: sketch.Button(b), Pos: f.Pos})
		if !p.dragged[b] {
			out = append(out, sketch.PointerEvent{Kind: sketch.PointerTap, Button: sketch.Button(b), Pos: f.Pos})
		}
		p.down[b] = false
		p.dragged[b] = false
	}
	return out
}

// Dragging reports whether b is held and has moved past the tap slop.
func (p *pointerTracker) Dragging(b sketch.Button) bool {
	return p.down[b] && p.dragged[b]
}

// Reset forgets held buttons, e.g. after the gizmo took over a press.
func (p *pointerTracker) Reset() {
	p.down = [buttonCount]bool{}
	p.dragged = [buttonCount]bool{}
}
