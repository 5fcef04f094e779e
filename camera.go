package flythrough

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Viewpoint is the camera transform handed to the renderer each tick.
type Viewpoint struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
}

// ViewMatrix is the world-to-camera transform. A zero Up falls back to the
// world Y axis.
func (v Viewpoint) ViewMatrix() mgl64.Mat4 {
	up := v.Up
	if up.Len() == 0 {
		up = mgl64.Vec3{0, 1, 0}
	}
	return mgl64.LookAtV(v.Position, v.Target, up)
}

// Forward is the unit look direction.
func (v Viewpoint) Forward() mgl64.Vec3 {
	return Normalize(v.Target.Sub(v.Position))
}

// Shift returns a copy moved by offset, keeping the look target.
func (v Viewpoint) Shift(offset mgl64.Vec3) Viewpoint {
	v.Position = v.Position.Add(offset)
	return v
}
