package flythrough

import (
	"github.com/go-gl/mathgl/mgl64"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// Steer applies one tick of input to a lateral offset. Held directions
// push the offset by move; an axis with neither of its directions held
// drifts back to zero by recenter. Both axes end clamped to +-limit.
// Up input decreases y.
func Steer(offset mgl64.Vec2, in Input, move, recenter, limit float64) mgl64.Vec2 {
	x, y := offset.X(), offset.Y()

	up, down := in.Pressed(Up), in.Pressed(Down)
	left, right := in.Pressed(Left), in.Pressed(Right)

	if up {
		y -= move
	}
	if down {
		y += move
	}
	if left {
		x -= move
	}
	if right {
		x += move
	}

	if !up && !down {
		y = moveToward(y, recenter)
	}
	if !left && !right {
		x = moveToward(x, recenter)
	}

	return mgl64.Vec2{
		mgl64.Clamp(x, -limit, limit),
		mgl64.Clamp(y, -limit, limit),
	}
}

// move advances the player one tick along the path.
func (s *Session) move(in Input) {
	p := &s.Player

	p.PathProgress += s.cfg.PathSpeed
	if p.PathProgress >= 1 {
		p.PathProgress = 0
	}

	s.frame = s.path.FrameAt(p.PathProgress, s.cfg.FrameDelta)
	p.Offset = Steer(p.Offset, in, s.cfg.MoveSpeed, s.cfg.ReturnToCenterSpeed, s.cfg.MaxOffset)
	s.viewpoint = s.viewpointAt(s.frame)

	if p.Invincible {
		if p.InvincibleFrames > 0 {
			p.InvincibleFrames--
		}
		if p.InvincibleFrames == 0 {
			p.Invincible = false
		}
	}
}

// viewpointAt places the camera on the path, shifted by the lateral
// offset, looking ahead along the path.
func (s *Session) viewpointAt(frame Frame) Viewpoint {
	p := s.Player
	pos := s.path.PointAt(p.PathProgress).
		Add(frame.Right.Mul(p.Offset.X())).
		Add(frame.Up.Mul(p.Offset.Y()))

	return Viewpoint{
		Position: pos,
		Target:   s.path.PointAt(p.PathProgress + s.cfg.LookAhead),
		Up:       worldUp,
	}
}
