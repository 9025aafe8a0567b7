package sketch

import (
	"log/slog"

	"sketch3d/internal/components"
	"sketch3d/internal/engine"
	"sketch3d/internal/geom"
)

// Extrude turns every closed shape that has not been extruded yet into a
// solid. Shapes that cannot be triangulated are logged and left pending.
// The created solids are returned in shape order.
func Extrude(st *State, eng Engine) []*engine.GameObject {
	for len(st.Extruded) < len(st.Shapes) {
		st.Extruded = append(st.Extruded, false)
	}

	var created []*engine.GameObject
	for i, shape := range st.Shapes {
		if st.Extruded[i] {
			continue
		}
		mesh, err := geom.Extrude(shape.Ring, st.ExtrudeHeight)
		if err != nil {
			slog.Warn("skipping shape", "index", i, "error", err)
			continue
		}

		solid := engine.NewGameObject(SolidName(i))
		solid.Pickable = true
		solid.AddComponent(components.NewSolidMesh(i, mesh))
		engine.BakeTransform(solid)
		eng.Spawn(solid)

		st.Extruded[i] = true
		created = append(created, solid)
	}

	if len(created) == 0 {
		st.Notify(MsgNothingToExtrude)
		return nil
	}
	slog.Info("extruded shapes", "count", len(created))
	st.ShapesExtruded.Invoke(created)
	st.Notify(MsgExtruded)
	return created
}
