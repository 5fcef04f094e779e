package flythrough

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// collectibleHueBase is the hue of a collectible spawned at progress 0.
const collectibleHueBase = 0.7

// Placer scatters entities along a path. Every draw comes from Rand in
// sequence, so a fixed seed pins the layout.
type Placer struct {
	Path *Path
	Rand *rand.Rand
	// Jitter is the upper bound of the random progress added to each slot.
	Jitter float64
	// Bias is subtracted from the uniform [0,1) x/z offsets.
	Bias float64
}

func NewPlacer(path *Path, rng *rand.Rand, jitter, bias float64) *Placer {
	return &Placer{
		Path:   path,
		Rand:   rng,
		Jitter: jitter,
		Bias:   bias,
	}
}

// Place emits n entities of the given kind and radius, numbered from
// firstID. Entity i sits at progress i/n plus jitter.
func (pl *Placer) Place(kind Kind, n int, radius float64, firstID int) []*Entity {
	entities := make([]*Entity, 0, n)
	for i := 0; i < n; i++ {
		progress := math.Mod(float64(i)/float64(n)+pl.Rand.Float64()*pl.Jitter, 1)
		pos := pl.Path.PointAt(progress)
		pos[0] += pl.Rand.Float64() - pl.Bias
		pos[2] += pl.Rand.Float64() - pl.Bias

		orientation := mgl64.Vec3{
			pl.Rand.Float64() * math.Pi,
			pl.Rand.Float64() * math.Pi,
			pl.Rand.Float64() * math.Pi,
		}

		e := &Entity{
			ID:          firstID + i,
			Kind:        kind,
			Position:    pos,
			Orientation: orientation,
			Radius:      radius,
			State:       Active,
			Progress:    progress,
		}
		if kind == Collectible {
			e.Hue = Wrap(collectibleHueBase - progress)
		}
		entities = append(entities, e)
	}
	return entities
}
