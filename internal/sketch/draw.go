package sketch

import (
	"errors"
	"log/slog"

	"sketch3d/internal/components"
	"sketch3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrTooFewPoints = errors.New("sketch: a shape needs at least 3 points")

// SetupDraw wires draw mode: left taps on the ground add points and a right
// tap on the ground closes the current shape. Taps that land on a solid or
// miss the ground are ignored.
func SetupDraw(st *State, eng Engine, bus *Bus) Disposer {
	id := bus.AddListener(func(ev PointerEvent) {
		if ev.Kind != PointerTap {
			return
		}
		hit, ok := eng.Pick(ev.Pos, GroundOrSolid(eng.Ground()))
		if !ok || hit.GameObject != eng.Ground() {
			return
		}
		switch ev.Button {
		case ButtonLeft:
			AddPoint(st, eng, hit.Point)
		case ButtonRight:
			_ = CloseShape(st, eng)
		}
	})

	return DisposeFunc(func() {
		bus.RemoveListener(id)
		discardPoints(st, eng)
	})
}

// AddPoint places a point marker slightly above p and records it.
func AddPoint(st *State, eng Engine, p rl.Vector3) {
	p.Y += st.PointLift

	marker := engine.NewGameObject(PointMarkerName)
	marker.Transform.Position = p
	marker.AddComponent(components.NewMarker(components.MarkerSphere, st.MarkerSize, components.PointMarkerColor))
	eng.Spawn(marker)

	st.Points = append(st.Points, SketchPoint{Position: p, Marker: marker})
	st.PointCreated.Invoke(len(st.Points))
	st.Notify(PointInstruction(len(st.Points)))
}

// CloseShape turns the in-progress points into a closed outline.
func CloseShape(st *State, eng Engine) error {
	if len(st.Points) < 3 {
		st.Notify(MsgTooFewPoints)
		return ErrTooFewPoints
	}

	ring := append(st.PointPositions(), st.Points[0].Position)
	idx := len(st.Shapes)
	name := OutlineName(idx)

	outline := engine.NewGameObject(name)
	outline.AddComponent(components.NewOutline(ring))
	eng.Spawn(outline)

	st.Shapes = append(st.Shapes, PendingShape{Ring: ring, Outline: name})
	st.Extruded = append(st.Extruded, false)
	discardPoints(st, eng)

	slog.Debug("shape closed", "index", idx, "points", len(ring)-1)
	st.ShapeClosed.Invoke(idx)
	st.Notify(MsgShapeCreated)
	return nil
}

func discardPoints(st *State, eng Engine) {
	for _, p := range st.Points {
		eng.Destroy(p.Marker)
	}
	st.Points = nil
}
