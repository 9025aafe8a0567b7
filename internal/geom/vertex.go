package geom

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// VertexGroup is a set of vertex indices that share one rounded position.
// Moving the group moves every face corner stored at that spot together.
type VertexGroup struct {
	Key      string
	Position rl.Vector3
	Indices  []int
}

// Round rounds v to the given number of decimal places. Negative zero
// becomes zero so that -0.0001 and 0.0001 land in the same group.
func Round(v float32, precision int) float32 {
	scale := math32.Pow(10, float32(precision))
	r := math32.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}

// RoundVector rounds every component of p with Round.
func RoundVector(p rl.Vector3, precision int) rl.Vector3 {
	return rl.Vector3{
		X: Round(p.X, precision),
		Y: Round(p.Y, precision),
		Z: Round(p.Z, precision),
	}
}

// VertexKey formats p as "x,y,z" with a fixed number of decimals.
func VertexKey(p rl.Vector3, precision int) string {
	r := RoundVector(p, precision)
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(float64(r.X), 'f', precision, 32))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(float64(r.Y), 'f', precision, 32))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(float64(r.Z), 'f', precision, 32))
	return b.String()
}

// GroupVertices buckets the vertices of a flat position buffer by VertexKey.
// Groups are returned in order of first occurrence.
func GroupVertices(positions []float32, precision int) []VertexGroup {
	byKey := make(map[string]int)
	var groups []VertexGroup
	for i := 0; i+2 < len(positions); i += 3 {
		p := rl.Vector3{X: positions[i], Y: positions[i+1], Z: positions[i+2]}
		key := VertexKey(p, precision)
		idx, ok := byKey[key]
		if !ok {
			idx = len(groups)
			byKey[key] = idx
			groups = append(groups, VertexGroup{
				Key:      key,
				Position: RoundVector(p, precision),
			})
		}
		groups[idx].Indices = append(groups[idx].Indices, i/3)
	}
	return groups
}

// ApplyDelta adds delta to every listed vertex of positions.
func ApplyDelta(positions []float32, indices []int, delta rl.Vector3) {
	for _, i := range indices {
		o := i * 3
		if o+2 >= len(positions) {
			continue
		}
		positions[o] += delta.X
		positions[o+1] += delta.Y
		positions[o+2] += delta.Z
	}
}

// BakeTransform applies m to every vertex of positions in place.
func BakeTransform(positions []float32, m rl.Matrix) {
	for i := 0; i+2 < len(positions); i += 3 {
		p := rl.Vector3Transform(rl.Vector3{X: positions[i], Y: positions[i+1], Z: positions[i+2]}, m)
		positions[i], positions[i+1], positions[i+2] = p.X, p.Y, p.Z
	}
}

// TransformPoints applies m to each point in place.
func TransformPoints(points []rl.Vector3, m rl.Matrix) {
	for i, p := range points {
		points[i] = rl.Vector3Transform(p, m)
	}
}

// Bounds returns the axis-aligned bounds of a flat position buffer.
func Bounds(positions []float32) (rl.Vector3, rl.Vector3) {
	if len(positions) < 3 {
		return rl.Vector3{}, rl.Vector3{}
	}
	min := rl.Vector3{X: positions[0], Y: positions[1], Z: positions[2]}
	max := min
	for i := 3; i+2 < len(positions); i += 3 {
		min.X = math32.Min(min.X, positions[i])
		min.Y = math32.Min(min.Y, positions[i+1])
		min.Z = math32.Min(min.Z, positions[i+2])
		max.X = math32.Max(max.X, positions[i])
		max.Y = math32.Max(max.Y, positions[i+1])
		max.Z = math32.Max(max.Z, positions[i+2])
	}
	return min, max
}
