// Package export writes extruded solids to STL.
package export

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sketch3d/internal/components"
	"sketch3d/internal/engine"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultPath is where the toolbar export writes.
const DefaultPath = "export/shapes.stl"

var ErrNothingToExport = errors.New("export: no solids")

func toVec(p rl.Vector3) v3.Vec {
	return v3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// Triangles collects the world-space triangles of every solid in objects.
// Inactive objects are skipped.
func Triangles(objects []*engine.GameObject) []*sdf.Triangle3 {
	var tris []*sdf.Triangle3
	for _, g := range objects {
		if !g.Active {
			continue
		}
		mesh := engine.GetComponent[*components.SolidMesh](g)
		if mesh == nil {
			continue
		}
		mesh.WorldTriangles(func(a, b, c rl.Vector3) {
			tris = append(tris, &sdf.Triangle3{toVec(a), toVec(b), toVec(c)})
		})
	}
	return tris
}

// SaveSTL writes every solid in objects to a binary STL file at path and
// returns the number of triangles written.
func SaveSTL(path string, objects []*engine.GameObject) (int, error) {
	tris := Triangles(objects)
	if len(tris) == 0 {
		return 0, ErrNothingToExport
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("export %s: %w", path, err)
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return 0, fmt.Errorf("export %s: %w", path, err)
	}
	slog.Info("exported STL", "path", path, "triangles", len(tris))
	return len(tris), nil
}
