package flythrough

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"
)

var ErrAlreadyPlaying = errors.New("a session is already playing")

// Game owns the path, the live session and the collaborators. It is
// driven from a single goroutine: Start on the UI command, Tick once per
// displayed frame.
type Game struct {
	cfg     Config
	path    *Path
	seeds   *rand.Rand
	session *Session

	input Input
	out   collaborators
}

// Option configures a Game.
type Option func(*Game)

// WithSeed pins the sequence of session seeds.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seeds = rand.New(rand.NewSource(seed))
	}
}

func WithInput(in Input) Option {
	return func(g *Game) {
		g.input = in
	}
}

func WithScene(scene Scene) Option {
	return func(g *Game) {
		g.out.scene = scene
	}
}

func WithHUD(hud HUD) Option {
	return func(g *Game) {
		g.out.hud = hud
	}
}

func WithFeedback(f Feedback) Option {
	return func(g *Game) {
		g.out.feedback = f
	}
}

// NewGame validates cfg, builds the path and waits in Menu.
func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Println("Building path...")
	path, err := NewPath(cfg.Points())
	if err != nil {
		return nil, fmt.Errorf("building path: %w", err)
	}

	g := &Game{
		cfg:   cfg,
		path:  path,
		input: noInput{},
		out: collaborators{
			scene:    nopScene{},
			hud:      nopHUD{},
			feedback: nopFeedback{},
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.seeds == nil {
		g.seeds = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	log.Printf("Path ready: %d control points, length %.2f", len(cfg.ControlPoints), path.Length())
	return g, nil
}

func (g *Game) Config() Config {
	return g.cfg
}

func (g *Game) Path() *Path {
	return g.path
}

// Session is the live session, or nil while in the menu.
func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) State() State {
	if g.session == nil {
		return Menu
	}
	return g.session.State()
}

// Start discards any finished session and builds a new one in Playing.
func (g *Game) Start() error {
	if !CanTransition(g.State(), Playing) {
		return ErrAlreadyPlaying
	}

	seed := g.seeds.Int63()
	log.Printf("Starting session (seed %d)...", seed)
	g.session = newSession(g.cfg, g.path, seed, g.out)

	g.out.scene.SetEntities(g.session.Entities)
	g.out.scene.SetViewpoint(g.session.RenderViewpoint())
	g.out.hud.OnScoreChanged(g.session.Player.Score)
	g.out.hud.OnHealthChanged(g.session.Player.Health)
	g.out.hud.OnStateChanged(Playing)
	return nil
}

// Tick advances the live session one frame and hands the viewpoint to the
// scene.
func (g *Game) Tick() {
	if g.session == nil {
		return
	}
	g.session.Tick(g.input)
	g.out.scene.SetViewpoint(g.session.RenderViewpoint())
}
