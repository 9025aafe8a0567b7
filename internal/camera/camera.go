package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is one frame of pointer state relevant to the camera.
type Input struct {
	Delta  rl.Vector2
	Rotate bool // rotate button held
	Pan    bool // pan button held
	Wheel  float32
}

// Orbit is an arc-rotate camera circling Target. Yaw and Pitch are in
// degrees; pitch 90 looks straight down.
type Orbit struct {
	Target   rl.Vector3
	Distance float32
	Yaw      float32
	Pitch    float32
	Fovy     float32

	LookSpeed   float32
	PanSpeed    float32
	ZoomSpeed   float32
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	attached bool
}

// New returns a camera looking at target from pos.
func New(pos, target rl.Vector3) *Orbit {
	o := &Orbit{
		Target:      target,
		Fovy:        45,
		LookSpeed:   0.3,
		PanSpeed:    0.01,
		ZoomSpeed:   0.1,
		MinDistance: 2,
		MaxDistance: 100,
		MinPitch:    5,
		MaxPitch:    89,
		attached:    true,
	}
	o.LookFrom(pos)
	return o
}

// LookFrom places the camera at pos, keeping the current target.
func (c *Orbit) LookFrom(pos rl.Vector3) {
	off := rl.Vector3Subtract(pos, c.Target)
	c.Distance = rl.Vector3Length(off)
	if c.Distance < 1e-4 {
		c.Distance = c.MinDistance
		c.Yaw, c.Pitch = 45, 35
		return
	}
	c.Pitch = math32.Asin(off.Y/c.Distance) * rl.Rad2deg
	c.Yaw = math32.Atan2(off.Z, off.X) * rl.Rad2deg
}

// Attach enables user control; Detach freezes the camera while an
// interaction owns the pointer.
func (c *Orbit) Attach() { c.attached = true }

func (c *Orbit) Detach() { c.attached = false }

func (c *Orbit) Attached() bool { return c.attached }

func (c *Orbit) Position() rl.Vector3 {
	yaw := c.Yaw * rl.Deg2rad
	pitch := c.Pitch * rl.Deg2rad
	return rl.Vector3{
		X: c.Target.X + c.Distance*math32.Cos(pitch)*math32.Cos(yaw),
		Y: c.Target.Y + c.Distance*math32.Sin(pitch),
		Z: c.Target.Z + c.Distance*math32.Cos(pitch)*math32.Sin(yaw),
	}
}

func (c *Orbit) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = clamp(c.Pitch+dPitch, c.MinPitch, c.MaxPitch)
}

// Zoom scales the distance; positive amounts move closer.
func (c *Orbit) Zoom(amount float32) {
	c.Distance = clamp(c.Distance*(1-amount*c.ZoomSpeed), c.MinDistance, c.MaxDistance)
}

// Pan slides the target in the view plane by screen-space pixels.
func (c *Orbit) Pan(dx, dy float32) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(c.Target, c.Position()))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, rl.Vector3{Y: 1}))
	up := rl.Vector3CrossProduct(right, forward)
	scale := c.PanSpeed * c.Distance * 0.1
	c.Target = rl.Vector3Add(c.Target, rl.Vector3Scale(right, -dx*scale))
	c.Target = rl.Vector3Add(c.Target, rl.Vector3Scale(up, dy*scale))
}

// Focus moves the target to p without changing the view angle.
func (c *Orbit) Focus(p rl.Vector3) {
	c.Target = p
}

// Update applies one frame of input. A detached camera ignores it.
func (c *Orbit) Update(in Input) {
	if !c.attached {
		return
	}
	if in.Rotate {
		c.Rotate(in.Delta.X*c.LookSpeed, in.Delta.Y*c.LookSpeed)
	} else if in.Pan {
		c.Pan(in.Delta.X, in.Delta.Y)
	}
	if in.Wheel != 0 {
		c.Zoom(in.Wheel)
	}
}

func (c *Orbit) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
