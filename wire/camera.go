package wire

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/smasonuk/flythrough"
)

// Camera projects world points onto a screen of Width x Height pixels.
type Camera struct {
	view   mgl64.Mat4
	proj   mgl64.Mat4
	eye    mgl64.Vec3
	near   float64
	Width  float64
	Height float64
}

// NewCamera builds a perspective camera at the viewpoint. fovY is the
// vertical field of view in degrees.
func NewCamera(v flythrough.Viewpoint, width, height int, fovY, near, far float64) *Camera {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return &Camera{
		view:   v.ViewMatrix(),
		proj:   mgl64.Perspective(mgl64.DegToRad(fovY), aspect, near, far),
		eye:    v.Position,
		near:   near,
		Width:  float64(width),
		Height: float64(height),
	}
}

func (c *Camera) GetPosition() mgl64.Vec3 {
	return c.eye
}

// ToView transforms a world point into camera space, where the camera
// looks down -Z.
func (c *Camera) ToView(p mgl64.Vec3) mgl64.Vec3 {
	return c.view.Mul4x1(p.Vec4(1)).Vec3()
}

// Project maps a world point to screen pixels. ok is false for points at
// or behind the near plane.
func (c *Camera) Project(p mgl64.Vec3) (mgl64.Vec2, bool) {
	pv := c.ToView(p)
	if pv.Z() > -c.near {
		return mgl64.Vec2{}, false
	}
	return c.viewToScreen(pv), true
}

// ProjectSegment clips a world segment against the near plane and maps
// what is left to screen pixels.
func (c *Camera) ProjectSegment(a, b mgl64.Vec3) (mgl64.Vec2, mgl64.Vec2, bool) {
	va, vb := c.ToView(a), c.ToView(b)
	limit := -c.near

	aIn, bIn := va.Z() <= limit, vb.Z() <= limit
	if !aIn && !bIn {
		return mgl64.Vec2{}, mgl64.Vec2{}, false
	}
	if !aIn {
		va = clipToPlane(vb, va, limit)
	} else if !bIn {
		vb = clipToPlane(va, vb, limit)
	}
	return c.viewToScreen(va), c.viewToScreen(vb), true
}

// clipToPlane moves out along the segment from in until z == limit.
func clipToPlane(in, out mgl64.Vec3, limit float64) mgl64.Vec3 {
	t := (limit - in.Z()) / (out.Z() - in.Z())
	return in.Add(out.Sub(in).Mul(t))
}

func (c *Camera) viewToScreen(pv mgl64.Vec3) mgl64.Vec2 {
	clip := c.proj.Mul4x1(pv.Vec4(1))
	w := clip.W()
	if math.Abs(w) < 1e-12 {
		w = 1e-12
	}
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	return mgl64.Vec2{
		(ndcX + 1) / 2 * c.Width,
		(1 - ndcY) / 2 * c.Height,
	}
}
