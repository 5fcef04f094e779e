package wire

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/smasonuk/flythrough"
)

// Wireframe is a set of points joined by straight edges.
type Wireframe struct {
	Points []mgl64.Vec3
	Edges  [][2]int
}

// Transform returns a copy with every point moved by m.
func (w *Wireframe) Transform(m mgl64.Mat4) *Wireframe {
	out := &Wireframe{
		Points: make([]mgl64.Vec3, len(w.Points)),
		Edges:  w.Edges,
	}
	for i, p := range w.Points {
		out.Points[i] = mgl64.TransformCoordinate(p, m)
	}
	return out
}

// Segment returns the two end points of edge i.
func (w *Wireframe) Segment(i int) (mgl64.Vec3, mgl64.Vec3) {
	e := w.Edges[i]
	return w.Points[e[0]], w.Points[e[1]]
}

// NewBox is a cube of the given side centred on the origin.
func NewBox(size float64) *Wireframe {
	s := size / 2
	return &Wireframe{
		Points: []mgl64.Vec3{
			{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s}, // z- face (0-3)
			{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}, // z+ face (4-7)
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	}
}

// NewOctahedron has its six vertices on the axes at distance radius.
func NewOctahedron(radius float64) *Wireframe {
	r := radius
	return &Wireframe{
		Points: []mgl64.Vec3{
			{r, 0, 0}, {-r, 0, 0},
			{0, r, 0}, {0, -r, 0},
			{0, 0, r}, {0, 0, -r},
		},
		Edges: [][2]int{
			{0, 2}, {0, 3}, {0, 4}, {0, 5},
			{1, 2}, {1, 3}, {1, 4}, {1, 5},
			{2, 4}, {4, 3}, {3, 5}, {5, 2},
		},
	}
}

// NewTube wraps the path in rings of radialSegments points, one ring per
// tubular segment, joined around each ring and along the path.
func NewTube(path *flythrough.Path, tubularSegments, radialSegments int, radius, frameDelta float64) *Wireframe {
	w := &Wireframe{}
	for i := 0; i < tubularSegments; i++ {
		u := float64(i) / float64(tubularSegments)
		center := path.PointAt(u)
		frame := path.FrameAt(u, frameDelta)
		for j := 0; j < radialSegments; j++ {
			a := 2 * math.Pi * float64(j) / float64(radialSegments)
			offset := frame.Right.Mul(math.Cos(a)).Add(frame.Up.Mul(math.Sin(a))).Mul(radius)
			w.Points = append(w.Points, center.Add(offset))
		}
	}

	index := func(i, j int) int {
		return (i%tubularSegments)*radialSegments + j%radialSegments
	}
	for i := 0; i < tubularSegments; i++ {
		for j := 0; j < radialSegments; j++ {
			w.Edges = append(w.Edges,
				[2]int{index(i, j), index(i, j+1)},
				[2]int{index(i, j), index(i+1, j)},
			)
		}
	}
	return w
}
