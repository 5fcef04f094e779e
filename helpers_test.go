package flythrough

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func vecAlmostEqual(a, b mgl64.Vec3) bool {
	return almostEqual(a[0], b[0]) && almostEqual(a[1], b[1]) && almostEqual(a[2], b[2])
}

// circlePoints is a flat loop of n points of the given radius.
func circlePoints(n int, radius float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = mgl64.Vec3{radius * math.Cos(a), 0, radius * math.Sin(a)}
	}
	return out
}

func defaultPath(t *testing.T) *Path {
	t.Helper()
	path, err := NewPath(DefaultConfig().Points())
	if err != nil {
		t.Fatalf("NewPath: %v", err)
	}
	return path
}

// emptyConfig is the default tuning with no spawned entities.
func emptyConfig() Config {
	cfg := DefaultConfig()
	cfg.Collectibles = 0
	cfg.Obstacles = 0
	return cfg
}

type recordingHUD struct {
	scores  []int
	healths []int
	states  []State
}

func (h *recordingHUD) OnScoreChanged(score int)   { h.scores = append(h.scores, score) }
func (h *recordingHUD) OnHealthChanged(health int) { h.healths = append(h.healths, health) }
func (h *recordingHUD) OnStateChanged(state State) { h.states = append(h.states, state) }

type recordingScene struct {
	entities  []*Entity
	hidden    map[int]bool
	viewpoint Viewpoint
}

func newRecordingScene() *recordingScene {
	return &recordingScene{hidden: make(map[int]bool)}
}

func (s *recordingScene) SetEntities(entities []*Entity) {
	s.entities = entities
	s.hidden = make(map[int]bool)
}

func (s *recordingScene) SetVisible(e *Entity, visible bool) { s.hidden[e.ID] = !visible }
func (s *recordingScene) SetViewpoint(v Viewpoint)           { s.viewpoint = v }

type countingFeedback map[Kind]int

func (f countingFeedback) Pulse(kind Kind) { f[kind]++ }
