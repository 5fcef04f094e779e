package render

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/smasonuk/flythrough"
	"github.com/smasonuk/flythrough/wire"
)

const (
	tubularSegments = 222
	radialSegments  = 16
)

// keyBindings maps each steering direction to its keys.
var keyBindings = map[flythrough.Direction][]ebiten.Key{
	flythrough.Up:    {ebiten.KeyW, ebiten.KeyArrowUp},
	flythrough.Down:  {ebiten.KeyS, ebiten.KeyArrowDown},
	flythrough.Left:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	flythrough.Right: {ebiten.KeyD, ebiten.KeyArrowRight},
}

// Game is the ebiten host: it feeds key state into the flythrough game,
// ticks it once per update and draws the result.
type Game struct {
	game      *flythrough.Game
	keys      *flythrough.KeyState
	world     *World
	hud       *HUD
	tubeColor colorful.Color
	rng       *rand.Rand
	width     int
	height    int
}

// NewGame wires the world, HUD, audio and keyboard into a flythrough game.
func NewGame(cfg flythrough.Config, seed int64, width, height int) (*Game, error) {
	g := &Game{
		keys:      &flythrough.KeyState{},
		hud:       NewHUD(cfg.MaxHealth),
		tubeColor: wire.TubeRed,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		width:     width,
		height:    height,
	}

	path, err := flythrough.NewPath(cfg.Points())
	if err != nil {
		return nil, err
	}
	log.Println("Building tube...")
	g.world = NewWorld(path, cfg, tubularSegments, radialSegments)

	opts := []flythrough.Option{
		flythrough.WithInput(g.keys),
		flythrough.WithScene(g.world),
		flythrough.WithHUD(g.hud),
		flythrough.WithFeedback(NewBlipper()),
	}
	if seed != 0 {
		opts = append(opts, flythrough.WithSeed(seed))
	}
	g.game, err = flythrough.NewGame(cfg, opts...)
	if err != nil {
		return nil, err
	}

	log.Println("Initialization Complete.")
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	playing := g.game.State() == flythrough.Playing
	for dir, keys := range keyBindings {
		pressed := false
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				pressed = true
			}
		}
		// presses only count while playing, releases always do
		if playing || !pressed {
			g.keys.Set(dir, pressed)
		}
	}

	if !playing && (inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
		g.keys.Release()
		if err := g.game.Start(); err != nil {
			log.Println(err)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.tubeColor = wire.RandomWireColor(g.rng)
		log.Printf("Wireframe color: %s", g.tubeColor.Hex())
	}

	g.game.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.world.PaintObjects(screen, g.width, g.height, g.tubeColor)
	if s := g.game.Session(); s != nil {
		paintFlash(screen, s.Flash())
	}
	g.hud.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
