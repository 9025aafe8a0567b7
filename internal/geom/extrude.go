package geom

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/samber/lo"
)

// MeshData is a triangle mesh with a flat position buffer (x, y, z per
// vertex). Vertices are not shared between faces, so a prism corner is
// stored once per face that touches it.
type MeshData struct {
	Positions []float32
	Indices   []int
	// Edges lists the silhouette edges of the prism as vertex index pairs.
	Edges [][2]int
}

// VertexCount returns the number of vertices in the buffer.
func (m *MeshData) VertexCount() int {
	return len(m.Positions) / 3
}

// Vertex returns vertex i.
func (m *MeshData) Vertex(i int) rl.Vector3 {
	return rl.Vector3{X: m.Positions[i*3], Y: m.Positions[i*3+1], Z: m.Positions[i*3+2]}
}

// Extrude builds a closed prism from ring: a bottom cap at the ring's
// height, a top cap raised by height along +Y and one quad per ring edge.
//
// Vertex layout: n bottom cap vertices, n top cap vertices, then four
// vertices per side quad (bottom a, bottom b, top b, top a).
func Extrude(ring []rl.Vector3, height float32) (*MeshData, error) {
	poly := Outline(ring)
	if SignedArea(poly) < 0 {
		poly = lo.Reverse(poly)
	}
	tris, err := Triangulate(poly)
	if err != nil {
		return nil, err
	}

	n := len(poly)
	up := rl.Vector3{Y: height}
	mesh := &MeshData{
		Positions: make([]float32, 0, (2*n+4*n)*3),
		Indices:   make([]int, 0, len(tris)*2+n*6),
		Edges:     make([][2]int, 0, 3*n),
	}
	push := func(p rl.Vector3) int {
		mesh.Positions = append(mesh.Positions, p.X, p.Y, p.Z)
		return len(mesh.Positions)/3 - 1
	}

	for _, p := range poly {
		push(p)
	}
	for _, p := range poly {
		push(rl.Vector3Add(p, up))
	}

	// Triangulate winds counter-clockwise in (x, z), which faces -Y.
	for i := 0; i < len(tris); i += 3 {
		mesh.Indices = append(mesh.Indices, tris[i], tris[i+1], tris[i+2])
	}
	for i := 0; i < len(tris); i += 3 {
		mesh.Indices = append(mesh.Indices, n+tris[i], n+tris[i+2], n+tris[i+1])
	}

	for i := range n {
		a := poly[i]
		b := poly[(i+1)%n]
		a0 := push(a)
		push(b)
		b1 := push(rl.Vector3Add(b, up))
		a1 := push(rl.Vector3Add(a, up))
		b0 := a0 + 1
		mesh.Indices = append(mesh.Indices,
			a0, b1, b0,
			a0, a1, b1,
		)
	}

	for i := range n {
		j := (i + 1) % n
		mesh.Edges = append(mesh.Edges,
			[2]int{i, j},
			[2]int{n + i, n + j},
			[2]int{i, n + i},
		)
	}
	return mesh, nil
}
