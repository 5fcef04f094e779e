package flythrough

import "github.com/go-gl/mathgl/mgl64"

type EffectKind int

const (
	// EffectShake jitters the rendered viewpoint around a snapshot.
	EffectShake EffectKind = iota
	// EffectFlash tints the screen after damage.
	EffectFlash
)

// Effect is a time-bounded side sequence advanced once per tick. It only
// touches the rendered viewpoint, never the player state.
type Effect struct {
	Kind      EffectKind
	Frame     int
	Frames    int
	Origin    mgl64.Vec3
	Intensity float64
	done      bool
}

func newShake(origin mgl64.Vec3, frames int, intensity float64) *Effect {
	return &Effect{
		Kind:      EffectShake,
		Frames:    frames,
		Origin:    origin,
		Intensity: intensity,
	}
}

func newFlash(frames int) *Effect {
	return &Effect{
		Kind:   EffectFlash,
		Frames: frames,
	}
}

// Done reports whether the effect has finished.
func (e *Effect) Done() bool {
	return e.done
}

// Remaining is the fraction of the effect still to run, in [0,1].
func (e *Effect) Remaining() float64 {
	if e.done || e.Frames == 0 {
		return 0
	}
	return float64(e.Frames-e.Frame) / float64(e.Frames)
}

func (s *Session) addEffect(e *Effect) {
	s.effects = append(s.effects, e)
}

// Effects returns the effects still running.
func (s *Session) Effects() []*Effect {
	return s.effects
}

// Flash returns the strongest damage flash in [0,1].
func (s *Session) Flash() float64 {
	strongest := 0.0
	for _, e := range s.effects {
		if e.Kind == EffectFlash && e.Remaining() > strongest {
			strongest = e.Remaining()
		}
	}
	return strongest
}

// advanceEffects steps every effect once. Later effects overwrite the
// rendered position of earlier ones. A shake ends by putting the rendered
// position back on its own snapshot.
func (s *Session) advanceEffects() {
	s.rendered = s.viewpoint

	live := s.effects[:0]
	for _, e := range s.effects {
		switch e.Kind {
		case EffectShake:
			if e.Frame < e.Frames {
				s.rendered.Position = e.Origin.Add(mgl64.Vec3{
					(s.fxRand.Float64() - 0.5) * e.Intensity,
					(s.fxRand.Float64() - 0.5) * e.Intensity,
					(s.fxRand.Float64() - 0.5) * e.Intensity,
				})
				e.Frame++
			} else {
				s.rendered.Position = e.Origin
				e.done = true
			}
		case EffectFlash:
			e.Frame++
			if e.Frame >= e.Frames {
				e.done = true
			}
		}
		if !e.done {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.effects); i++ {
		s.effects[i] = nil
	}
	s.effects = live
}
