package flythrough

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// State of the game.
type State int

const (
	Menu State = iota
	Playing
	GameOver
	Win
)

func (s State) String() string {
	switch s {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case GameOver:
		return "gameover"
	case Win:
		return "win"
	}
	return "unknown"
}

// transitions lists the legal next states. GameOver and Win are left only
// by a restart, which builds a new session.
var transitions = map[State][]State{
	Menu:     {Playing},
	Playing:  {GameOver, Win},
	GameOver: {Playing},
	Win:      {Playing},
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// PlayerState is the mutable part of the player.
type PlayerState struct {
	PathProgress     float64
	Offset           mgl64.Vec2 // x along Frame.Right, y along Frame.Up
	Health           int
	Score            int
	Invincible       bool
	InvincibleFrames int
}

// Session is one run from start to GameOver or Win. A restart builds a
// fresh Session rather than resetting this one.
type Session struct {
	Player   PlayerState
	Entities []*Entity

	state     State
	cfg       Config
	path      *Path
	frame     Frame
	viewpoint Viewpoint
	rendered  Viewpoint
	effects   []*Effect
	fxRand    *rand.Rand
	out       collaborators
}

// NewSession places a new entity set from seed and starts in Playing.
func NewSession(cfg Config, path *Path, seed int64) *Session {
	return newSession(cfg, path, seed, collaborators{
		scene:    nopScene{},
		hud:      nopHUD{},
		feedback: nopFeedback{},
	})
}

func newSession(cfg Config, path *Path, seed int64, out collaborators) *Session {
	rng := rand.New(rand.NewSource(seed))
	placer := NewPlacer(path, rng, cfg.SpawnJitter, cfg.SpawnBias)

	entities := placer.Place(Collectible, cfg.Collectibles, cfg.CollectibleRadius, 0)
	entities = append(entities, placer.Place(Obstacle, cfg.Obstacles, cfg.ObstacleRadius, len(entities))...)

	s := &Session{
		Player: PlayerState{
			Health: cfg.MaxHealth,
		},
		Entities: entities,
		state:    Playing,
		cfg:      cfg,
		path:     path,
		fxRand:   rand.New(rand.NewSource(seed ^ 0x5eed)),
		out:      out,
	}
	s.frame = path.FrameAt(0, cfg.FrameDelta)
	s.viewpoint = s.viewpointAt(s.frame)
	s.rendered = s.viewpoint
	return s
}

func (s *Session) State() State {
	return s.state
}

// Viewpoint is the authoritative camera transform of the last tick.
func (s *Session) Viewpoint() Viewpoint {
	return s.viewpoint
}

// RenderViewpoint is Viewpoint with transient effects applied.
func (s *Session) RenderViewpoint() Viewpoint {
	return s.rendered
}

// Frame is the path frame of the last tick.
func (s *Session) Frame() Frame {
	return s.frame
}

func (s *Session) Config() Config {
	return s.cfg
}

// Tick runs one frame: motion, then collision, then effects. Motion and
// collision only run while Playing.
func (s *Session) Tick(in Input) {
	if in == nil {
		in = noInput{}
	}
	if s.state == Playing {
		s.move(in)
		s.collide()
	}
	s.advanceEffects()
}

func (s *Session) setState(next State) error {
	if !CanTransition(s.state, next) {
		return fmt.Errorf("illegal state transition %s -> %s", s.state, next)
	}
	s.state = next
	switch next {
	case GameOver:
		log.Printf("Game over. Final score: %d", s.Player.Score)
	case Win:
		log.Printf("You won! Final score: %d", s.Player.Score)
	}
	s.out.hud.OnStateChanged(next)
	return nil
}
