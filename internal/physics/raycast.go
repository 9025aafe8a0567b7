package physics

import (
	"sketch3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultMaxDistance bounds pick rays cast from the camera.
const DefaultMaxDistance float32 = 1000

// Raycast checks every collider on the accepted objects and returns the
// closest hit. Objects rejected by filter are skipped entirely.
func Raycast(objects []*engine.GameObject, ray rl.Ray, maxDistance float32, filter engine.PickFilter) (engine.RaycastResult, bool) {
	ray.Direction = rl.Vector3Normalize(ray.Direction)
	var closestHit engine.RaycastResult
	closestHit.Distance = maxDistance
	hit := false

	for _, obj := range objects {
		if !filter.Accepts(obj) {
			continue
		}
		for _, c := range obj.Components() {
			collider, ok := c.(engine.Collider)
			if !ok {
				continue
			}
			hitInfo, ok := collider.Raycast(ray, maxDistance)
			if !ok || hitInfo.Distance > closestHit.Distance || hit && hitInfo.Distance == closestHit.Distance {
				continue
			}
			closestHit = hitInfo
			closestHit.GameObject = obj
			hit = true
		}
	}

	return closestHit, hit
}
