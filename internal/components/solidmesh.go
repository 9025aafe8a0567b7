package components

import (
	"errors"
	"fmt"
	"math"

	"sketch3d/internal/engine"
	"sketch3d/internal/geom"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

var (
	SolidColor     = rl.NewColor(0, 128, 128, 255)
	SolidEdgeColor = rl.NewColor(20, 40, 40, 255)
	HighlightColor = rl.NewColor(255, 200, 0, 255)
)

var ErrInvalidMesh = errors.New("invalid solid mesh")

// lightDir is the fixed direction used for flat shading.
var lightDir = rl.Vector3Normalize(rl.Vector3{X: 0.4, Y: 1, Z: 0.6})

// SolidMesh is an extruded prism kept as a CPU vertex buffer so that
// individual vertices can be edited in place. Geometry is in object space;
// the owning GameObject's transform is applied on top until it is baked.
type SolidMesh struct {
	engine.BaseComponent
	ID         uuid.UUID
	ShapeIndex int
	Positions  []float32
	Indices    []int
	Edges      [][2]int
	Color      rl.Color
	EdgeColor  rl.Color
	// Highlighted draws the solid with HighlightColor instead of Color.
	Highlighted bool

	normals []rl.Vector3
	dirty   bool
}

func NewSolidMesh(shapeIndex int, mesh *geom.MeshData) *SolidMesh {
	s := &SolidMesh{
		ID:         uuid.New(),
		ShapeIndex: shapeIndex,
		Positions:  mesh.Positions,
		Indices:    mesh.Indices,
		Edges:      mesh.Edges,
		Color:      SolidColor,
		EdgeColor:  SolidEdgeColor,
	}
	s.MarkDirty()
	return s
}

func (s *SolidMesh) VertexCount() int {
	return len(s.Positions) / 3
}

func (s *SolidMesh) Vertex(i int) rl.Vector3 {
	return rl.Vector3{X: s.Positions[i*3], Y: s.Positions[i*3+1], Z: s.Positions[i*3+2]}
}

// Validate checks that the buffers describe whole triangles and that every
// index and edge refers to a vertex.
func (s *SolidMesh) Validate() error {
	n := s.VertexCount()
	switch {
	case len(s.Positions)%3 != 0:
		return fmt.Errorf("%w: %d position floats", ErrInvalidMesh, len(s.Positions))
	case len(s.Indices)%3 != 0:
		return fmt.Errorf("%w: %d indices", ErrInvalidMesh, len(s.Indices))
	}
	for _, i := range s.Indices {
		if i < 0 || i >= n {
			return fmt.Errorf("%w: index %d out of %d vertices", ErrInvalidMesh, i, n)
		}
	}
	for _, e := range s.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return fmt.Errorf("%w: edge %v out of %d vertices", ErrInvalidMesh, e, n)
		}
	}
	return nil
}

// MarkDirty flags the vertex buffer as changed; normals are rebuilt on the
// next draw.
func (s *SolidMesh) MarkDirty() {
	s.dirty = true
}

// Snapshot copies the vertex buffer.
func (s *SolidMesh) Snapshot() []float32 {
	out := make([]float32, len(s.Positions))
	copy(out, s.Positions)
	return out
}

// Restore replaces the vertex buffer with a previous snapshot.
func (s *SolidMesh) Restore(positions []float32) {
	if len(positions) != len(s.Positions) {
		return
	}
	copy(s.Positions, positions)
	s.MarkDirty()
}

// Bake implements engine.Bakeable.
func (s *SolidMesh) Bake(m rl.Matrix) {
	geom.BakeTransform(s.Positions, m)
	s.MarkDirty()
}

func (s *SolidMesh) worldMatrix() (rl.Matrix, bool) {
	g := s.GetGameObject()
	if g == nil || g.Transform.IsIdentity() {
		return rl.MatrixIdentity(), false
	}
	return g.Transform.Matrix(), true
}

// WorldVertex returns vertex i with the owning object's transform applied.
func (s *SolidMesh) WorldVertex(i int) rl.Vector3 {
	p := s.Vertex(i)
	if m, ok := s.worldMatrix(); ok {
		p = rl.Vector3Transform(p, m)
	}
	return p
}

// WorldTriangles calls fn for every triangle in world space.
func (s *SolidMesh) WorldTriangles(fn func(a, b, c rl.Vector3)) {
	m, transformed := s.worldMatrix()
	for i := 0; i+2 < len(s.Indices); i += 3 {
		a := s.Vertex(s.Indices[i])
		b := s.Vertex(s.Indices[i+1])
		c := s.Vertex(s.Indices[i+2])
		if transformed {
			a = rl.Vector3Transform(a, m)
			b = rl.Vector3Transform(b, m)
			c = rl.Vector3Transform(c, m)
		}
		fn(a, b, c)
	}
}

func (s *SolidMesh) refresh() {
	if !s.dirty {
		return
	}
	s.normals = s.normals[:0]
	for i := 0; i+2 < len(s.Indices); i += 3 {
		s.normals = append(s.normals, geom.TriangleNormal(
			s.Vertex(s.Indices[i]), s.Vertex(s.Indices[i+1]), s.Vertex(s.Indices[i+2])))
	}
	s.dirty = false
}

// Raycast implements engine.Collider against the mesh triangles.
func (s *SolidMesh) Raycast(ray rl.Ray, maxDistance float32) (engine.RaycastResult, bool) {
	// Bounds are in object space, so the early out only holds untransformed.
	if _, transformed := s.worldMatrix(); !transformed {
		min, max := geom.Bounds(s.Positions)
		if _, _, ok := geom.RayBox(ray, min, max); !ok {
			return engine.RaycastResult{}, false
		}
	}

	best := engine.RaycastResult{Distance: float32(math.MaxFloat32)}
	hit := false
	s.WorldTriangles(func(a, b, c rl.Vector3) {
		if d, ok := geom.RayTriangle(ray, a, b, c); ok && d <= maxDistance && d < best.Distance {
			best.Distance = d
			best.Point = rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, d))
			best.Normal = geom.TriangleNormal(a, b, c)
			hit = true
		}
	})
	if !hit {
		return engine.RaycastResult{}, false
	}
	best.GameObject = s.GetGameObject()
	return best, true
}

// Draw renders flat-shaded faces and the silhouette edges.
func (s *SolidMesh) Draw() {
	g := s.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	s.refresh()

	base := s.Color
	if s.Highlighted {
		base = HighlightColor
	}

	rl.DisableBackfaceCulling()
	tri := 0
	s.WorldTriangles(func(a, b, c rl.Vector3) {
		n := s.normals[tri]
		shade := 0.55 + 0.45*math32.Abs(rl.Vector3DotProduct(n, lightDir))
		rl.DrawTriangle3D(a, b, c, shadeColor(base, shade))
		tri++
	})
	rl.EnableBackfaceCulling()

	for _, e := range s.Edges {
		rl.DrawLine3D(s.WorldVertex(e[0]), s.WorldVertex(e[1]), s.EdgeColor)
	}
}

func shadeColor(c rl.Color, f float32) rl.Color {
	return rl.NewColor(uint8(float32(c.R)*f), uint8(float32(c.G)*f), uint8(float32(c.B)*f), c.A)
}
