package flythrough

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Normalize returns v scaled to unit length. A zero vector is returned
// unchanged so callers never see NaN components.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	length := math.Sqrt(math.Abs(v.Dot(v)))
	if length == 0 {
		return v
	}
	return v.Mul(1 / length)
}

// DistanceTo
func DistanceTo(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// absProjections returns |dir . axis| for each of the three axes.
func absProjections(dir mgl64.Vec3, axes [3]mgl64.Vec3) [3]float64 {
	return [3]float64{
		math.Abs(dir.Dot(axes[0])),
		math.Abs(dir.Dot(axes[1])),
		math.Abs(dir.Dot(axes[2])),
	}
}

// moveToward moves value toward zero by step, stopping at zero.
func moveToward(value, step float64) float64 {
	if value > 0 {
		return math.Max(0, value-step)
	}
	if value < 0 {
		return math.Min(0, value+step)
	}
	return value
}
