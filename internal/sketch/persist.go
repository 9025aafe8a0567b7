package sketch

import (
	"fmt"
	"log/slog"

	"sketch3d/internal/engine"
	"sketch3d/internal/world"
)

// Save writes the closed shapes and the scene objects built from them to
// path. In-progress points are not saved.
func Save(st *State, objects []*engine.GameObject, path string) error {
	sf := &world.SketchFile{}
	for i, shape := range st.Shapes {
		sf.Shapes = append(sf.Shapes, world.ShapeDef{
			Ring:     world.PointsToDef(shape.Ring),
			Outline:  shape.Outline,
			Extruded: i < len(st.Extruded) && st.Extruded[i],
		})
	}
	for _, g := range objects {
		if def, ok := world.DescribeObject(g); ok {
			sf.Objects = append(sf.Objects, def)
		}
	}
	if err := world.SaveSketchFile(path, sf); err != nil {
		return err
	}
	slog.Info("sketch saved", "path", path, "shapes", len(sf.Shapes))
	return nil
}

// Load replaces the current sketch with the one stored at path. Nothing is
// touched if the file cannot be read.
func Load(d *Dispatcher, path string) error {
	sf, err := world.LoadSketchFile(path)
	if err != nil {
		return err
	}
	objects := make([]*engine.GameObject, 0, len(sf.Objects))
	for _, def := range sf.Objects {
		g, err := world.BuildObject(def)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		objects = append(objects, g)
	}

	d.Reset()
	for _, shape := range sf.Shapes {
		d.st.Shapes = append(d.st.Shapes, PendingShape{
			Ring:    world.PointsFromDef(shape.Ring),
			Outline: shape.Outline,
		})
		d.st.Extruded = append(d.st.Extruded, shape.Extruded)
	}
	for _, g := range objects {
		d.eng.Spawn(g)
	}
	slog.Info("sketch loaded", "path", path, "shapes", len(sf.Shapes), "objects", len(objects))
	return nil
}
