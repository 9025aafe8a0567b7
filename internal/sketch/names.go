package sketch

import (
	"fmt"

	"sketch3d/internal/components"
	"sketch3d/internal/engine"
)

// Scene objects are addressed by name prefix.
const (
	SolidPrefix        = "shapeExtruded"
	OutlinePrefix      = "lines"
	PointMarkerName    = "point"
	VertexMarkerPrefix = "vertexMarker"
)

func SolidName(i int) string { return fmt.Sprintf("%s%d", SolidPrefix, i) }
func OutlineName(i int) string { return fmt.Sprintf("%s%d", OutlinePrefix, i) }
func VertexMarkerName(i int) string { return fmt.Sprintf("%s%d", VertexMarkerPrefix, i) }

// IsSolid accepts pickable extruded solids.
func IsSolid(g *engine.GameObject) bool {
	return g.Pickable && g.HasPrefix(SolidPrefix)
}

// IsVertexMarker accepts vertex editing markers.
func IsVertexMarker(g *engine.GameObject) bool {
	return g.HasPrefix(VertexMarkerPrefix)
}

// OnlyGround returns a filter accepting nothing but ground.
func OnlyGround(ground *engine.GameObject) engine.PickFilter {
	return func(g *engine.GameObject) bool { return g == ground }
}

// GroundOrSolid accepts ground and solids, so a solid in front of the
// ground shadows it.
func GroundOrSolid(ground *engine.GameObject) engine.PickFilter {
	return func(g *engine.GameObject) bool { return g == ground || IsSolid(g) }
}

// shapeOf returns the shape a solid was extruded from, or nil.
func shapeOf(st *State, solid *engine.GameObject) *PendingShape {
	mesh := engine.GetComponent[*components.SolidMesh](solid)
	if mesh == nil || mesh.ShapeIndex < 0 || mesh.ShapeIndex >= len(st.Shapes) {
		return nil
	}
	return &st.Shapes[mesh.ShapeIndex]
}

// outlineOf finds the outline drawn for the shape a solid was extruded from.
func outlineOf(eng Engine, solid *engine.GameObject) *engine.GameObject {
	mesh := engine.GetComponent[*components.SolidMesh](solid)
	if mesh == nil {
		return nil
	}
	return eng.Find(OutlineName(mesh.ShapeIndex))
}
