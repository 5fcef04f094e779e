package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/smasonuk/flythrough"
	"github.com/smasonuk/flythrough/wire"
)

const (
	fovY       = 75
	nearPlane  = 0.1
	farPlane   = 1000
	fogDensity = 0.3
	// lines dimmer than this are not drawn
	minVisibility = 0.02
	lineWidth     = 1
)

// World is the scene graph: the tube, one wireframe per entity and the
// camera. It implements flythrough.Scene.
type World struct {
	tube      *wire.Wireframe
	box       *wire.Wireframe
	octa      *wire.Wireframe
	entities  []*flythrough.Entity
	hidden    map[int]bool
	viewpoint flythrough.Viewpoint
	fogCutoff float64
}

func NewWorld(path *flythrough.Path, cfg flythrough.Config, tubularSegments, radialSegments int) *World {
	return &World{
		tube:      wire.NewTube(path, tubularSegments, radialSegments, cfg.TubeRadius, cfg.FrameDelta),
		box:       wire.NewBox(cfg.CollectibleRadius),
		octa:      wire.NewOctahedron(cfg.ObstacleRadius),
		hidden:    make(map[int]bool),
		fogCutoff: wire.FogCutoff(fogDensity, minVisibility),
		viewpoint: flythrough.Viewpoint{
			Position: mgl64.Vec3{0, 0, 5},
			Up:       mgl64.Vec3{0, 1, 0},
		},
	}
}

func (w *World) SetEntities(entities []*flythrough.Entity) {
	w.entities = entities
	w.hidden = make(map[int]bool)
}

func (w *World) SetVisible(e *flythrough.Entity, visible bool) {
	w.hidden[e.ID] = !visible
}

func (w *World) SetViewpoint(v flythrough.Viewpoint) {
	w.viewpoint = v
}

// PaintObjects draws the tube and every visible entity, far to near.
func (w *World) PaintObjects(screen *ebiten.Image, xsize, ysize int, tubeColor colorful.Color) {
	cam := wire.NewCamera(w.viewpoint, xsize, ysize, fovY, nearPlane, farPlane)
	eye := cam.GetPosition()

	w.paintWireframe(screen, cam, w.tube, tubeColor)

	var visible []*flythrough.Entity
	for _, e := range w.entities {
		if w.hidden[e.ID] {
			continue
		}
		if e.Position.Sub(eye).Len() > w.fogCutoff {
			continue
		}
		visible = append(visible, e)
	}
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].Position.Sub(eye).Len() > visible[j].Position.Sub(eye).Len()
	})

	for _, e := range visible {
		shape, clr := w.box, wire.CollectibleColor(e.Hue)
		if e.Kind == flythrough.Obstacle {
			shape, clr = w.octa, wire.ObstacleRed
		}
		w.paintWireframe(screen, cam, shape.Transform(e.Model()), clr)
	}
}

func (w *World) paintWireframe(screen *ebiten.Image, cam *wire.Camera, frame *wire.Wireframe, clr colorful.Color) {
	eye := cam.GetPosition()
	for i := range frame.Edges {
		a, b := frame.Segment(i)
		mid := a.Add(b).Mul(0.5)
		dist := mid.Sub(eye).Len()
		if dist > w.fogCutoff {
			continue
		}
		p0, p1, ok := cam.ProjectSegment(a, b)
		if !ok || offscreen(p0, p1, cam.Width, cam.Height) {
			continue
		}
		drawLine(screen,
			float32(p0.X()), float32(p0.Y()), float32(p1.X()), float32(p1.Y()),
			lineWidth, wire.Faded(clr, wire.Visibility(dist, fogDensity)))
	}
}

func offscreen(a, b mgl64.Vec2, width, height float64) bool {
	return math.Max(a.X(), b.X()) < 0 || math.Min(a.X(), b.X()) > width ||
		math.Max(a.Y(), b.Y()) < 0 || math.Min(a.Y(), b.Y()) > height
}

// paintFlash tints the whole screen red after damage.
func paintFlash(screen *ebiten.Image, amount float64) {
	if amount <= 0 {
		return
	}
	b := screen.Bounds()
	fillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{R: uint8(100 * amount), A: uint8(100 * amount)})
}
