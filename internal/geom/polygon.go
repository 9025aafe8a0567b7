// Package geom holds the CPU-side geometry used by the sketch tool:
// polygon triangulation, prism extrusion, vertex grouping and ray tests.
// Everything here works on plain rl.Vector3 values and flat float32 vertex
// buffers so it can run without a window.
package geom

import (
	"errors"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrDegeneratePolygon is returned when a ring has fewer than three distinct
// points or encloses no area.
var ErrDegeneratePolygon = errors.New("geom: degenerate polygon")

const epsilon = 1e-6

// Outline strips the closing duplicate and consecutive duplicate points from
// ring, returning the open polygon.
func Outline(ring []rl.Vector3) []rl.Vector3 {
	out := make([]rl.Vector3, 0, len(ring))
	for _, p := range ring {
		if len(out) > 0 && samePoint(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && samePoint(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

// SignedArea returns the signed area of poly projected on the XZ plane.
// Positive means counter-clockwise in (x, z) coordinates.
func SignedArea(poly []rl.Vector3) float32 {
	var area float32
	n := len(poly)
	for i := range n {
		a := poly[i]
		b := poly[(i+1)%n]
		area += a.X*b.Z - b.X*a.Z
	}
	return area / 2
}

// Triangulate ear-clips an open polygon lying on a plane parallel to XZ.
// The returned indices point into poly, three per triangle, wound
// counter-clockwise in (x, z). Collinear vertices are dropped from the fan.
func Triangulate(poly []rl.Vector3) ([]int, error) {
	n := len(poly)
	if n < 3 {
		return nil, ErrDegeneratePolygon
	}
	area := SignedArea(poly)
	if math32.Abs(area) < epsilon {
		return nil, ErrDegeneratePolygon
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	if area < 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		}
	}

	indices := make([]int, 0, (n-2)*3)
	for len(remaining) > 3 {
		clipped := false
		for i := range remaining {
			m := len(remaining)
			prev := remaining[(i+m-1)%m]
			cur := remaining[i]
			next := remaining[(i+1)%m]

			c := cross2(poly[prev], poly[cur], poly[next])
			if math32.Abs(c) < epsilon {
				remaining = append(remaining[:i], remaining[i+1:]...)
				clipped = true
				break
			}
			if c < 0 || !isEar(poly, remaining, prev, cur, next) {
				continue
			}
			indices = append(indices, prev, cur, next)
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// self-intersecting ring
			return nil, ErrDegeneratePolygon
		}
	}

	if len(remaining) == 3 {
		a, b, c := remaining[0], remaining[1], remaining[2]
		if math32.Abs(cross2(poly[a], poly[b], poly[c])) >= epsilon {
			indices = append(indices, a, b, c)
		}
	}
	if len(indices) == 0 {
		return nil, ErrDegeneratePolygon
	}
	return indices, nil
}

func isEar(poly []rl.Vector3, remaining []int, a, b, c int) bool {
	for _, idx := range remaining {
		if idx == a || idx == b || idx == c {
			continue
		}
		p := poly[idx]
		if samePoint(p, poly[a]) || samePoint(p, poly[b]) || samePoint(p, poly[c]) {
			continue
		}
		if pointInTriangle(p, poly[a], poly[b], poly[c]) {
			return false
		}
	}
	return true
}

// cross2 is the z-component of (b-a) x (c-b) using (x, z) as 2D coordinates.
func cross2(a, b, c rl.Vector3) float32 {
	return (b.X-a.X)*(c.Z-b.Z) - (b.Z-a.Z)*(c.X-b.X)
}

func pointInTriangle(p, a, b, c rl.Vector3) bool {
	d1 := edgeSide(p, a, b)
	d2 := edgeSide(p, b, c)
	d3 := edgeSide(p, c, a)
	hasNeg := d1 < -epsilon || d2 < -epsilon || d3 < -epsilon
	hasPos := d1 > epsilon || d2 > epsilon || d3 > epsilon
	return !(hasNeg && hasPos)
}

func edgeSide(p, a, b rl.Vector3) float32 {
	return (b.X-a.X)*(p.Z-a.Z) - (b.Z-a.Z)*(p.X-a.X)
}

func samePoint(a, b rl.Vector3) bool {
	return math32.Abs(a.X-b.X) < epsilon &&
		math32.Abs(a.Y-b.Y) < epsilon &&
		math32.Abs(a.Z-b.Z) < epsilon
}
