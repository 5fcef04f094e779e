package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/smasonuk/flythrough"
	"github.com/smasonuk/flythrough/wire"
	"golang.org/x/image/font/basicfont"
)

var face = text.NewGoXFace(basicfont.Face7x13)

const (
	healthBarX      = 20
	healthBarY      = 60
	healthBarWidth  = 200
	healthBarHeight = 20
	titleScale      = 4
)

// HUD keeps the numbers shown on screen. It implements flythrough.HUD.
type HUD struct {
	score     int
	health    int
	maxHealth int
	state     flythrough.State
}

func NewHUD(maxHealth int) *HUD {
	return &HUD{
		health:    maxHealth,
		maxHealth: maxHealth,
	}
}

func (h *HUD) OnScoreChanged(score int) {
	h.score = score
}

func (h *HUD) OnHealthChanged(health int) {
	h.health = health
}

func (h *HUD) OnStateChanged(state flythrough.State) {
	h.state = state
}

func (h *HUD) Draw(screen *ebiten.Image) {
	switch h.state {
	case flythrough.Menu:
		h.drawScreen(screen, "FLYTHROUGH", "", "ENTER: START    C: WIREFRAME COLOR    ARROWS/WASD: STEER")
	case flythrough.Playing:
		h.drawPlaying(screen)
	case flythrough.GameOver:
		h.drawScreen(screen, "GAME OVER", fmt.Sprintf("Final Score: %d", h.score), "ENTER: TRY AGAIN")
	case flythrough.Win:
		h.drawScreen(screen, "CONGRATULATIONS!", fmt.Sprintf("YOU WON!  Final Score: %d", h.score), "ENTER: PLAY AGAIN")
	}
}

func (h *HUD) drawPlaying(screen *ebiten.Image) {
	drawText(screen, fmt.Sprintf("Score: %d", h.score), 20, 20, 2, color.White)

	fillRect(screen, healthBarX, healthBarY, healthBarWidth, healthBarHeight, color.RGBA{A: 128})
	fraction := 0.0
	if h.maxHealth > 0 {
		fraction = float64(h.health) / float64(h.maxHealth)
	}
	fillRect(screen, healthBarX, healthBarY, float32(healthBarWidth*fraction), healthBarHeight, wire.Faded(wire.HealthColor(h.health), 1))
	strokeRect(screen, healthBarX, healthBarY, healthBarWidth, healthBarHeight, 2, color.White)
}

func (h *HUD) drawScreen(screen *ebiten.Image, title, line, hint string) {
	b := screen.Bounds()
	fillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{A: 160})

	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	drawCentred(screen, title, cx, cy-80, titleScale, color.RGBA{R: 255, A: 255})
	if line != "" {
		drawCentred(screen, line, cx, cy, 2, color.White)
	}
	drawCentred(screen, hint, cx, cy+60, 1, color.White)
}

func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func drawCentred(screen *ebiten.Image, s string, cx, cy, scale float64, clr color.Color) {
	w, h := text.Measure(s, face, 0)
	drawText(screen, s, cx-w*scale/2, cy-h*scale/2, scale, clr)
}
