package flythrough

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	ROTX = 0
	ROTY = 1
	ROTZ = 2
)

// NewRotationMatrix returns the rotation of theta radians around one of
// the world axes.
func NewRotationMatrix(aRotation int, theta float64) mgl64.Mat3 {
	switch aRotation {
	case ROTX:
		return mgl64.Rotate3DX(theta)
	case ROTY:
		return mgl64.Rotate3DY(theta)
	case ROTZ:
		return mgl64.Rotate3DZ(theta)
	}
	return mgl64.Ident3()
}

// EulerMatrix builds the rotation for Euler angles applied in X, Y, Z
// order (intrinsic), i.e. Rx * Ry * Rz.
func EulerMatrix(angles mgl64.Vec3) mgl64.Mat3 {
	x := NewRotationMatrix(ROTX, angles.X())
	y := NewRotationMatrix(ROTY, angles.Y())
	z := NewRotationMatrix(ROTZ, angles.Z())
	return x.Mul3(y).Mul3(z)
}

// LocalAxes rotates the world unit axes by the Euler angles and returns
// them as right, up, forward.
func LocalAxes(angles mgl64.Vec3) [3]mgl64.Vec3 {
	m := EulerMatrix(angles)
	return [3]mgl64.Vec3{
		m.Mul3x1(mgl64.Vec3{1, 0, 0}),
		m.Mul3x1(mgl64.Vec3{0, 1, 0}),
		m.Mul3x1(mgl64.Vec3{0, 0, 1}),
	}
}
