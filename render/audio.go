package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/smasonuk/flythrough"
)

const sampleRate = 44100

// Blipper plays a short tone for each hit. It implements
// flythrough.Feedback.
type Blipper struct {
	ctx    *audio.Context
	sounds map[flythrough.Kind][]byte
}

func NewBlipper() *Blipper {
	return &Blipper{
		ctx: audio.NewContext(sampleRate),
		sounds: map[flythrough.Kind][]byte{
			flythrough.Collectible: tone(880, 0.06, 0.25, false),
			flythrough.Obstacle:    tone(110, 0.3, 0.35, true),
		},
	}
}

func (b *Blipper) Pulse(kind flythrough.Kind) {
	pcm, ok := b.sounds[kind]
	if !ok {
		return
	}
	b.ctx.NewPlayerFromBytes(pcm).Play()
}

// tone renders 16-bit little endian stereo PCM with a linear fade out.
func tone(freq, seconds, volume float64, square bool) []byte {
	n := int(sampleRate * seconds)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		phase := 2 * math.Pi * freq * float64(i) / sampleRate
		v := math.Sin(phase)
		if square {
			v = math.Copysign(1, v)
		}
		fade := 1 - float64(i)/float64(n)
		s := int16(v * fade * volume * math.MaxInt16)
		buf[4*i] = byte(s)
		buf[4*i+1] = byte(s >> 8)
		buf[4*i+2] = byte(s)
		buf[4*i+3] = byte(s >> 8)
	}
	return buf
}
