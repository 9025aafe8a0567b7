package geom

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RayTriangle intersects ray with triangle abc (both sides) and returns the
// distance along the ray.
func RayTriangle(ray rl.Ray, a, b, c rl.Vector3) (float32, bool) {
	e1 := rl.Vector3Subtract(b, a)
	e2 := rl.Vector3Subtract(c, a)
	p := rl.Vector3CrossProduct(ray.Direction, e2)
	det := rl.Vector3DotProduct(e1, p)
	if math32.Abs(det) < 1e-8 {
		return 0, false
	}
	inv := 1 / det
	s := rl.Vector3Subtract(ray.Position, a)
	u := rl.Vector3DotProduct(s, p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := rl.Vector3CrossProduct(s, e1)
	v := rl.Vector3DotProduct(ray.Direction, q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := rl.Vector3DotProduct(e2, q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

// TriangleNormal returns the unit normal of abc using right-hand winding.
func TriangleNormal(a, b, c rl.Vector3) rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3CrossProduct(rl.Vector3Subtract(b, a), rl.Vector3Subtract(c, a)))
}

// RayPlane intersects ray with the plane through point with the given normal.
func RayPlane(ray rl.Ray, point, normal rl.Vector3) (float32, bool) {
	denom := rl.Vector3DotProduct(normal, ray.Direction)
	if math32.Abs(denom) < 1e-6 {
		return 0, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(point, ray.Position), normal) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// RaySphere intersects ray with a sphere and returns the nearest
// non-negative distance.
func RaySphere(ray rl.Ray, center rl.Vector3, radius float32) (float32, bool) {
	oc := rl.Vector3Subtract(ray.Position, center)
	b := rl.Vector3DotProduct(oc, ray.Direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// RayBox intersects ray with the axis-aligned box [min, max] using the slab
// method and returns the entry distance and face normal.
func RayBox(ray rl.Ray, min, max rl.Vector3) (float32, rl.Vector3, bool) {
	origin, dir := ray.Position, ray.Direction
	tmin := float32(-1e30)
	tmax := float32(1e30)
	var normal rl.Vector3

	slab := func(o, d, lo, hi float32, axis rl.Vector3) bool {
		if d == 0 {
			return o >= lo && o <= hi
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		n := rl.Vector3Negate(axis)
		if t1 > t2 {
			t1, t2 = t2, t1
			n = axis
		}
		if t1 > tmin {
			tmin = t1
			normal = n
		}
		if t2 < tmax {
			tmax = t2
		}
		return tmin <= tmax
	}

	if !slab(origin.X, dir.X, min.X, max.X, rl.Vector3{X: 1}) ||
		!slab(origin.Y, dir.Y, min.Y, max.Y, rl.Vector3{Y: 1}) ||
		!slab(origin.Z, dir.Z, min.Z, max.Z, rl.Vector3{Z: 1}) {
		return 0, rl.Vector3{}, false
	}
	if tmax < 0 {
		return 0, rl.Vector3{}, false
	}
	t := tmin
	if t < 0 {
		// origin inside the box
		t = tmax
		normal = rl.Vector3{}
	}
	return t, normal, true
}
