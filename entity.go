package flythrough

import "github.com/go-gl/mathgl/mgl64"

// Kind distinguishes the two entity variants.
type Kind int

const (
	Collectible Kind = iota
	Obstacle
)

func (k Kind) String() string {
	switch k {
	case Collectible:
		return "collectible"
	case Obstacle:
		return "obstacle"
	}
	return "unknown"
}

// LiveState of an entity. Active becomes Consumed exactly once.
type LiveState int

const (
	Active LiveState = iota
	Consumed
)

// Entity is a collectible box or an obstacle octahedron placed along the
// path. Position and Orientation never change after spawn.
type Entity struct {
	ID          int
	Kind        Kind
	Position    mgl64.Vec3
	Orientation mgl64.Vec3 // Euler angles, XYZ order
	Radius      float64
	State       LiveState

	// Progress is the path progress the entity was spawned at.
	Progress float64
	// Hue in [0,1) used to color collectibles.
	Hue float64

	axes    [3]mgl64.Vec3
	hasAxes bool
}

func (e *Entity) Active() bool {
	return e.State == Active
}

// consume marks the entity Consumed. It reports false if it already was.
func (e *Entity) consume() bool {
	if e.State == Consumed {
		return false
	}
	e.State = Consumed
	return true
}

// Axes returns the entity's local right, up and forward axes.
func (e *Entity) Axes() [3]mgl64.Vec3 {
	if !e.hasAxes {
		e.axes = LocalAxes(e.Orientation)
		e.hasAxes = true
	}
	return e.axes
}

// Model returns the entity's object-to-world transform.
func (e *Entity) Model() mgl64.Mat4 {
	rot := mgl64.HomogRotate3DX(e.Orientation.X()).
		Mul4(mgl64.HomogRotate3DY(e.Orientation.Y())).
		Mul4(mgl64.HomogRotate3DZ(e.Orientation.Z()))
	return mgl64.Translate3D(e.Position.X(), e.Position.Y(), e.Position.Z()).Mul4(rot)
}
