package flythrough

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
)

// ContactDirection is the unit vector from the entity to the viewpoint.
// It is zero when the two coincide.
func ContactDirection(viewpoint mgl64.Vec3, e *Entity) mgl64.Vec3 {
	return Normalize(viewpoint.Sub(e.Position))
}

// OnBoxFace reports whether the projections of a contact direction onto a
// cube's axes point at the middle of one face: one axis above face, the
// other two below other.
func OnBoxFace(proj [3]float64, face, other float64) bool {
	for i := 0; i < 3; i++ {
		if proj[i] > face && proj[(i+1)%3] < other && proj[(i+2)%3] < other {
			return true
		}
	}
	return false
}

// OnOctahedronFace is the looser test for the octahedron: either a cube
// style face hit, or two axes above edge with the third below edgeOther.
func OnOctahedronFace(proj [3]float64, t Thresholds) bool {
	if OnBoxFace(proj, t.ObstacleFace, t.ObstacleOther) {
		return true
	}
	for i := 0; i < 3; i++ {
		if proj[(i+1)%3] > t.ObstacleEdge && proj[(i+2)%3] > t.ObstacleEdge && proj[i] < t.ObstacleEdgeOther {
			return true
		}
	}
	return false
}

// TouchesCollectible runs the distance gate and surface test for a
// collectible.
func TouchesCollectible(viewpoint mgl64.Vec3, playerRadius float64, e *Entity, t Thresholds) bool {
	if DistanceTo(viewpoint, e.Position) >= playerRadius+e.Radius {
		return false
	}
	proj := absProjections(ContactDirection(viewpoint, e), e.Axes())
	return OnBoxFace(proj, t.CollectibleFace, t.CollectibleOther)
}

// TouchesObstacle runs the distance gate, surface test and the tighter
// contact distance for an obstacle.
func TouchesObstacle(viewpoint mgl64.Vec3, playerRadius float64, e *Entity, t Thresholds) bool {
	distance := DistanceTo(viewpoint, e.Position)
	if distance >= playerRadius+e.Radius {
		return false
	}
	proj := absProjections(ContactDirection(viewpoint, e), e.Axes())
	if !OnOctahedronFace(proj, t) {
		return false
	}
	return distance < playerRadius+e.Radius*t.ObstacleContact
}

// collide checks collectibles, then obstacles, against the viewpoint.
// Once the session leaves Playing the remaining checks do nothing.
func (s *Session) collide() {
	pos := s.viewpoint.Position

	for _, e := range s.Entities {
		if s.state != Playing {
			break
		}
		if e.Kind != Collectible || !e.Active() {
			continue
		}
		if TouchesCollectible(pos, s.cfg.PlayerRadius, e, s.cfg.Thresholds) {
			s.collect(e)
		}
	}

	for _, e := range s.Entities {
		if s.state != Playing || s.Player.Invincible {
			break
		}
		if e.Kind != Obstacle || !e.Active() {
			continue
		}
		if TouchesObstacle(pos, s.cfg.PlayerRadius, e, s.cfg.Thresholds) {
			s.hit(e)
		}
	}
}

func (s *Session) collect(e *Entity) {
	if !e.consume() {
		return
	}
	s.out.scene.SetVisible(e, false)
	s.out.feedback.Pulse(Collectible)

	s.Player.Score += s.cfg.CollectibleAward
	s.out.hud.OnScoreChanged(s.Player.Score)

	if s.Player.Score >= s.cfg.WinScore {
		if err := s.setState(Win); err != nil {
			log.Println(err)
		}
	}
}

func (s *Session) hit(e *Entity) {
	if !e.consume() {
		return
	}
	p := &s.Player

	p.Health -= s.cfg.ObstacleDamage
	if p.Health < 0 {
		p.Health = 0
	}
	s.out.hud.OnHealthChanged(p.Health)

	p.Invincible = true
	p.InvincibleFrames = s.cfg.InvincibilityTicks

	s.out.feedback.Pulse(Obstacle)
	s.addEffect(newFlash(s.cfg.FlashFrames))
	s.addEffect(newShake(s.viewpoint.Position, s.cfg.ShakeFrames, s.cfg.ShakeIntensity))

	if p.Health == 0 {
		if err := s.setState(GameOver); err != nil {
			log.Println(err)
		}
	}
}
