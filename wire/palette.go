package wire

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	TubeRed      = colorful.Color{R: 1, G: 0, B: 0}
	ObstacleRed  = colorful.Color{R: 1, G: 0, B: 0}
	HealthGood   = colorful.Color{R: 0, G: 1, B: 0}
	HealthWarn   = colorful.Color{R: 1, G: 1, B: 0}
	HealthDanger = colorful.Color{R: 1, G: 0, B: 0}
)

// CollectibleColor is the fully saturated color for a hue in [0,1).
func CollectibleColor(hue float64) colorful.Color {
	return colorful.Hsl(hue*360, 1, 0.5)
}

// RandomWireColor picks a random fully saturated hue.
func RandomWireColor(rng *rand.Rand) colorful.Color {
	return colorful.Hsl(rng.Float64()*360, 1, 0.5)
}

// HealthColor is green above 60, yellow above 30, red otherwise.
func HealthColor(health int) colorful.Color {
	switch {
	case health > 60:
		return HealthGood
	case health > 30:
		return HealthWarn
	}
	return HealthDanger
}

// Faded returns c premultiplied by alpha, ready to draw over black.
func Faded(c colorful.Color, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{
		R: uint8(float64(r) * alpha),
		G: uint8(float64(g) * alpha),
		B: uint8(float64(b) * alpha),
		A: uint8(255 * alpha),
	}
}
