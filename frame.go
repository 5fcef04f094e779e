package flythrough

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// horizontalEpsilon is the smallest horizontal extent of forward for which
// the right vector is derived from it.
const horizontalEpsilon = 1e-9

// fallbackRight is used when forward is parallel to the world Y axis.
var fallbackRight = mgl64.Vec3{1, 0, 0}

// Frame is the local reference frame of the path at some progress.
type Frame struct {
	Forward mgl64.Vec3
	Right   mgl64.Vec3
	Up      mgl64.Vec3
}

// FrameAt derives the frame at progress t from the chord to t+delta.
// Right lies in the horizontal plane; Up = Forward x Right.
func (p *Path) FrameAt(t, delta float64) Frame {
	p0 := p.PointAt(t)
	p1 := p.PointAt(t + delta)
	return frameFromChord(p0, p1)
}

func frameFromChord(p0, p1 mgl64.Vec3) Frame {
	forward := Normalize(p1.Sub(p0))

	right := mgl64.Vec3{-forward.Z(), 0, forward.X()}
	if math.Hypot(right.X(), right.Z()) < horizontalEpsilon {
		right = fallbackRight
	}
	right = Normalize(right)
	up := Normalize(forward.Cross(right))

	return Frame{Forward: forward, Right: right, Up: up}
}
