package flythrough

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewPathRejectsShortInput(t *testing.T) {
	if _, err := NewPath(circlePoints(3, 1)); err == nil {
		t.Fatal("expected error for 3 control points")
	}
	same := []mgl64.Vec3{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	if _, err := NewPath(same); err == nil {
		t.Fatal("expected error for zero length path")
	}
}

func TestWrap(t *testing.T) {
	testCases := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{1.5, 0.5},
		{-0.25, 0.75},
		{-1, 0},
		{3.75, 0.75},
	}
	for _, tc := range testCases {
		if got := Wrap(tc.in); !almostEqual(got, tc.want) {
			t.Errorf("Wrap(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPointAtIsPeriodic(t *testing.T) {
	path := defaultPath(t)
	for i := 0; i < 50; i++ {
		u := float64(i) / 50
		base := path.PointAt(u)
		for _, shift := range []float64{1, 2, -1, -3} {
			if got := path.PointAt(u + shift); !vecAlmostEqual(got, base) {
				t.Fatalf("PointAt(%v) = %v, want %v", u+shift, got, base)
			}
		}
	}
}

func TestPointAtIsContinuousAcrossWrap(t *testing.T) {
	path := defaultPath(t)
	start := path.PointAt(0)
	for _, eps := range []float64{1e-6, 1e-9} {
		before := path.PointAt(1 - eps)
		after := path.PointAt(eps)
		if d := DistanceTo(before, start); d > 1e-3 {
			t.Errorf("PointAt(1-%g) is %v from PointAt(0)", eps, d)
		}
		if d := DistanceTo(after, start); d > 1e-3 {
			t.Errorf("PointAt(%g) is %v from PointAt(0)", eps, d)
		}
	}
}

func TestPointAtPassesThroughFirstControlPoint(t *testing.T) {
	points := DefaultConfig().Points()
	path := defaultPath(t)
	if got := path.PointAt(0); !vecAlmostEqual(got, points[0]) {
		t.Errorf("PointAt(0) = %v, want %v", got, points[0])
	}
}

func TestPointAtIsArcLengthParametrized(t *testing.T) {
	path, err := NewPath(circlePoints(8, 5))
	if err != nil {
		t.Fatal(err)
	}
	const steps = 100
	var dists []float64
	sum := 0.0
	last := path.PointAt(0)
	for i := 1; i <= steps; i++ {
		p := path.PointAt(float64(i) / steps)
		d := DistanceTo(p, last)
		dists = append(dists, d)
		sum += d
		last = p
	}
	mean := sum / steps
	for i, d := range dists {
		if math.Abs(d-mean)/mean > 0.05 {
			t.Errorf("step %d covers %v, mean is %v", i, d, mean)
		}
	}
	if circumference := 2 * math.Pi * 5; math.Abs(path.Length()-circumference)/circumference > 0.02 {
		t.Errorf("Length() = %v, want about %v", path.Length(), circumference)
	}
}
