package components

import (
	"testing"

	"sketch3d/internal/engine"
	"sketch3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(x, y, z float32) rl.Vector3 { return rl.Vector3{X: x, Y: y, Z: z} }

func downRay(x, z float32) rl.Ray {
	return rl.Ray{Position: vec(x, 50, z), Direction: vec(0, -1, 0)}
}

func newSolid(t *testing.T) (*engine.GameObject, *SolidMesh) {
	t.Helper()
	mesh, err := geom.Extrude([]rl.Vector3{vec(0, 0, 0), vec(1, 0, 0), vec(1, 0, 1), vec(0, 0, 0)}, 3)
	require.NoError(t, err)
	obj := engine.NewGameObject("shapeExtruded0")
	solid := NewSolidMesh(0, mesh)
	obj.AddComponent(solid)
	return obj, solid
}

func TestSolidMeshIdentity(t *testing.T) {
	_, a := newSolid(t)
	_, b := newSolid(t)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSolidMeshValidate(t *testing.T) {
	_, solid := newSolid(t)
	require.NoError(t, solid.Validate())

	tests := []struct {
		name   string
		mutate func(s *SolidMesh)
	}{
		{"partial vertex", func(s *SolidMesh) { s.Positions = s.Positions[:len(s.Positions)-1] }},
		{"partial triangle", func(s *SolidMesh) { s.Indices = s.Indices[:len(s.Indices)-1] }},
		{"index out of range", func(s *SolidMesh) { s.Indices[2] = 99 }},
		{"negative index", func(s *SolidMesh) { s.Indices[0] = -1 }},
		{"edge out of range", func(s *SolidMesh) { s.Edges = append(s.Edges, [2]int{0, 99}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, s := newSolid(t)
			tt.mutate(s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidMesh)
		})
	}
}

func TestSolidMeshRaycastHitsTopCap(t *testing.T) {
	obj, solid := newSolid(t)

	hit, ok := solid.Raycast(downRay(0.75, 0.25), 100)
	require.True(t, ok)
	assert.Same(t, obj, hit.GameObject)
	assert.InDelta(t, 47, hit.Distance, 1e-4)
	assert.InDelta(t, 3, hit.Point.Y, 1e-4)

	_, ok = solid.Raycast(downRay(0.25, 0.75), 100)
	assert.False(t, ok, "ray outside the triangle footprint")
}

func TestSolidMeshRaycastFollowsTransform(t *testing.T) {
	obj, solid := newSolid(t)
	obj.Translate(vec(5, 0, 0))

	_, ok := solid.Raycast(downRay(0.75, 0.25), 100)
	assert.False(t, ok)

	_, ok = solid.Raycast(downRay(5.75, 0.25), 100)
	assert.True(t, ok)
}

func TestSolidMeshBakeMovesVertices(t *testing.T) {
	obj, solid := newSolid(t)
	before := solid.Vertex(1)

	obj.Translate(vec(2, 0, -1))
	engine.BakeTransform(obj)

	assert.True(t, obj.Transform.IsIdentity())
	assert.Equal(t, rl.Vector3Add(before, vec(2, 0, -1)), solid.Vertex(1))
	_, ok := solid.Raycast(downRay(2.75, -0.75), 100)
	assert.True(t, ok)
}

func TestSolidMeshSnapshotRestore(t *testing.T) {
	_, solid := newSolid(t)
	snap := solid.Snapshot()

	solid.Positions[0] = 9
	assert.Equal(t, vec(9, 0, 0), solid.Vertex(0))

	solid.Restore(snap)
	assert.Equal(t, vec(0, 0, 0), solid.Vertex(0))

	solid.Restore(snap[:3])
	assert.Equal(t, vec(0, 0, 0), solid.Vertex(0), "mismatched snapshot is ignored")
}

func TestSolidMeshWorldTriangles(t *testing.T) {
	obj, solid := newSolid(t)
	obj.Translate(vec(0, 1, 0))

	count := 0
	minY := float32(100)
	solid.WorldTriangles(func(a, b, c rl.Vector3) {
		count++
		minY = min(minY, a.Y, b.Y, c.Y)
	})
	assert.Equal(t, len(solid.Indices)/3, count)
	assert.Equal(t, float32(1), minY)
}

func TestMarkerRaycast(t *testing.T) {
	tests := []struct {
		name  string
		shape MarkerShape
	}{
		{"sphere", MarkerSphere},
		{"box", MarkerBox},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := engine.NewGameObject("marker")
			obj.Transform.Position = vec(1, 0, 1)
			m := NewMarker(tt.shape, 0.2, VertexMarkerColor)
			obj.AddComponent(m)

			hit, ok := m.Raycast(downRay(1, 1), 100)
			require.True(t, ok)
			assert.InDelta(t, 49.9, hit.Distance, 1e-4)
			assert.Same(t, obj, hit.GameObject)

			_, ok = m.Raycast(downRay(1.5, 1), 100)
			assert.False(t, ok)

			_, ok = m.Raycast(downRay(1, 1), 10)
			assert.False(t, ok, "beyond max distance")
		})
	}
}

func TestGroundRaycastBounded(t *testing.T) {
	obj := engine.NewGameObject("ground")
	obj.Transform.Position = vec(0, -0.01, 0)
	g := NewGround(10)
	obj.AddComponent(g)

	hit, ok := g.Raycast(downRay(2, -3), 100)
	require.True(t, ok)
	assert.InDelta(t, -0.01, hit.Point.Y, 1e-5)
	assert.Equal(t, vec(0, 1, 0), hit.Normal)

	_, ok = g.Raycast(downRay(6, 0), 100)
	assert.False(t, ok)
}

func TestOutlineBake(t *testing.T) {
	ring := []rl.Vector3{vec(0, 0, 0), vec(1, 0, 0), vec(0, 0, 0)}
	obj := engine.NewGameObject("lines0")
	o := NewOutline(ring)
	obj.AddComponent(o)

	ring[1] = vec(7, 7, 7)
	assert.Equal(t, vec(1, 0, 0), o.Points[1], "outline keeps its own copy")

	obj.Translate(vec(0, 0, 2))
	assert.Equal(t, vec(1, 0, 2), o.WorldPoints()[1])

	engine.BakeTransform(obj)
	assert.Equal(t, vec(1, 0, 2), o.Points[1])
	assert.Equal(t, vec(1, 0, 2), o.WorldPoints()[1])
}
