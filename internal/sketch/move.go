package sketch

import (
	"sketch3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type moveDrag struct {
	st      *State
	eng     Engine
	target  *engine.GameObject
	outline *engine.GameObject
	last    rl.Vector3
	moved   rl.Vector3
}

// SetupMove wires move mode: drag a solid across the ground plane.
func SetupMove(st *State, eng Engine, bus *Bus) Disposer {
	d := &moveDrag{st: st, eng: eng}
	id := bus.AddListener(func(ev PointerEvent) {
		switch ev.Kind {
		case PointerDown:
			if ev.Button == ButtonLeft {
				d.begin(ev.Pos)
			}
		case PointerMove:
			d.drag(ev.Pos)
		case PointerUp:
			d.end()
		}
	})

	return DisposeFunc(func() {
		bus.RemoveListener(id)
		d.end()
	})
}

func (d *moveDrag) begin(pos rl.Vector2) {
	hit, ok := d.eng.Pick(pos, IsSolid)
	if !ok {
		return
	}
	ground, ok := d.eng.Pick(pos, OnlyGround(d.eng.Ground()))
	if !ok {
		return
	}

	d.target = hit.GameObject
	d.outline = outlineOf(d.eng, d.target)
	d.last = ground.Point
	d.moved = rl.Vector3{}
	d.st.Selected = d.target
	var ring []rl.Vector3
	if shape := shapeOf(d.st, d.target); shape != nil {
		ring = shape.Ring
	}
	d.st.Undo.PushMove(d.target, d.outline, ring)
	d.eng.DetachCameraControl()
}

func (d *moveDrag) drag(pos rl.Vector2) {
	if d.target == nil {
		return
	}
	if !d.eng.Exists(d.target) {
		d.target, d.outline = nil, nil
		d.eng.AttachCameraControl()
		return
	}
	ground, ok := d.eng.Pick(pos, OnlyGround(d.eng.Ground()))
	if !ok {
		return
	}
	delta := rl.Vector3Subtract(ground.Point, d.last)
	d.target.Translate(delta)
	if d.outline != nil {
		d.outline.Translate(delta)
	}
	d.last = ground.Point
	d.moved = rl.Vector3Add(d.moved, delta)
}

func (d *moveDrag) end() {
	if d.target == nil {
		return
	}
	engine.BakeTransform(d.target)
	if d.outline != nil {
		engine.BakeTransform(d.outline)
	}
	if shape := shapeOf(d.st, d.target); shape != nil {
		for i := range shape.Ring {
			shape.Ring[i] = rl.Vector3Add(shape.Ring[i], d.moved)
		}
	}
	d.target, d.outline = nil, nil
	d.eng.AttachCameraControl()
}
