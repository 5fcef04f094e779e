package flythrough

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// arcLengthDivisions is the resolution of the arc-length lookup table.
const arcLengthDivisions = 200

// Path is a closed centripetal Catmull-Rom curve through a set of control
// points. It is immutable once built and safe to share.
type Path struct {
	points     []mgl64.Vec3
	arcLengths []float64
}

// NewPath builds a closed path through the control points. At least four
// points are required.
func NewPath(points []mgl64.Vec3) (*Path, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("path needs at least 4 control points, got %d", len(points))
	}
	p := &Path{
		points: make([]mgl64.Vec3, len(points)),
	}
	copy(p.points, points)
	p.arcLengths = p.lengths(arcLengthDivisions)
	if p.Length() == 0 {
		return nil, fmt.Errorf("path has zero length")
	}
	return p, nil
}

// Points returns a copy of the control points.
func (p *Path) Points() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(p.points))
	copy(out, p.points)
	return out
}

// Length is the approximate arc length of one full loop.
func (p *Path) Length() float64 {
	return p.arcLengths[len(p.arcLengths)-1]
}

// Wrap folds any real progress value into [0,1). Negative values wrap
// forward, so -0.25 becomes 0.75.
func Wrap(t float64) float64 {
	w := t - math.Floor(t)
	if w >= 1 {
		return 0
	}
	return w
}

// PointAt returns the position at progress t, measured as a fraction of
// arc length. t is wrapped into [0,1).
func (p *Path) PointAt(t float64) mgl64.Vec3 {
	return p.point(p.uToT(Wrap(t)))
}

// uToT maps an arc-length fraction to the curve parameter.
func (p *Path) uToT(u float64) float64 {
	il := len(p.arcLengths)
	target := u * p.arcLengths[il-1]

	i := sort.Search(il, func(i int) bool { return p.arcLengths[i] >= target })
	if i < il && p.arcLengths[i] == target {
		return float64(i) / float64(il-1)
	}
	i--
	if i < 0 {
		return 0
	}
	if i >= il-1 {
		return 1
	}
	before := p.arcLengths[i]
	segment := p.arcLengths[i+1] - before
	fraction := (target - before) / segment
	return (float64(i) + fraction) / float64(il-1)
}

func (p *Path) lengths(divisions int) []float64 {
	out := make([]float64, 0, divisions+1)
	out = append(out, 0)
	last := p.point(0)
	sum := 0.0
	for d := 1; d <= divisions; d++ {
		current := p.point(float64(d) / float64(divisions))
		sum += DistanceTo(current, last)
		out = append(out, sum)
		last = current
	}
	return out
}

// point evaluates the spline at parameter t in [0,1].
func (p *Path) point(t float64) mgl64.Vec3 {
	l := len(p.points)
	pos := float64(l) * t
	intPoint := int(math.Floor(pos))
	weight := pos - float64(intPoint)
	if intPoint <= 0 {
		intPoint += (int(math.Abs(float64(intPoint)))/l + 1) * l
	}

	p0 := p.points[(intPoint-1)%l]
	p1 := p.points[intPoint%l]
	p2 := p.points[(intPoint+1)%l]
	p3 := p.points[(intPoint+2)%l]

	// centripetal: sqrt of the chord length
	dt0 := math.Pow(p0.Sub(p1).Dot(p0.Sub(p1)), 0.25)
	dt1 := math.Pow(p1.Sub(p2).Dot(p1.Sub(p2)), 0.25)
	dt2 := math.Pow(p2.Sub(p3).Dot(p2.Sub(p3)), 0.25)
	if dt1 < 1e-4 {
		dt1 = 1.0
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}

	var out mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		out[axis] = nonUniformCatmullRom(p0[axis], p1[axis], p2[axis], p3[axis], dt0, dt1, dt2, weight)
	}
	return out
}

func nonUniformCatmullRom(x0, x1, x2, x3, dt0, dt1, dt2, w float64) float64 {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	t1 *= dt1
	t2 *= dt1

	// cubic hermite between x1 and x2
	c0 := x1
	c1 := t1
	c2 := -3*x1 + 3*x2 - 2*t1 - t2
	c3 := 2*x1 - 2*x2 + t1 + t2
	return c0 + c1*w + c2*w*w + c3*w*w*w
}
