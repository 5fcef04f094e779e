package flythrough

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func held(dirs ...Direction) *KeyState {
	var k KeyState
	for _, d := range dirs {
		k.Set(d, true)
	}
	return &k
}

func TestSteer(t *testing.T) {
	const (
		move     = 0.03
		recenter = 0.01
		limit    = 0.35
	)
	testCases := []struct {
		name   string
		offset mgl64.Vec2
		in     *KeyState
		want   mgl64.Vec2
	}{
		{"idle at center", mgl64.Vec2{0, 0}, held(), mgl64.Vec2{0, 0}},
		{"up decreases y", mgl64.Vec2{0, 0}, held(Up), mgl64.Vec2{0, -0.03}},
		{"down increases y", mgl64.Vec2{0, 0}, held(Down), mgl64.Vec2{0, 0.03}},
		{"left decreases x", mgl64.Vec2{0, 0}, held(Left), mgl64.Vec2{-0.03, 0}},
		{"right increases x", mgl64.Vec2{0, 0}, held(Right), mgl64.Vec2{0.03, 0}},
		{"idle decays toward center", mgl64.Vec2{0.1, -0.1}, held(), mgl64.Vec2{0.09, -0.09}},
		{"decay does not overshoot", mgl64.Vec2{0.005, -0.004}, held(), mgl64.Vec2{0, 0}},
		{"held axis does not decay", mgl64.Vec2{0.1, 0.1}, held(Right), mgl64.Vec2{0.13, 0.09}},
		{"opposite keys cancel without decay", mgl64.Vec2{0.2, 0}, held(Left, Right), mgl64.Vec2{0.2, 0}},
		{"clamped at limit", mgl64.Vec2{0.34, -0.34}, held(Right, Up), mgl64.Vec2{0.35, -0.35}},
		{"out of range offset is clamped", mgl64.Vec2{2, -2}, held(), mgl64.Vec2{0.35, -0.35}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Steer(tc.offset, tc.in, move, recenter, limit)
			if !almostEqual(got.X(), tc.want.X()) || !almostEqual(got.Y(), tc.want.Y()) {
				t.Errorf("Steer(%v) = %v, want %v", tc.offset, got, tc.want)
			}
		})
	}
}

func TestOffsetNeverExceedsLimit(t *testing.T) {
	cfg := emptyConfig()
	s := NewSession(cfg, defaultPath(t), 1)
	rng := rand.New(rand.NewSource(99))
	var keys KeyState
	for i := 0; i < 5000; i++ {
		if rng.Intn(4) == 0 {
			keys.Set(Direction(rng.Intn(4)), rng.Intn(2) == 0)
		}
		s.Tick(&keys)
		off := s.Player.Offset
		if math.Abs(off.X()) > cfg.MaxOffset || math.Abs(off.Y()) > cfg.MaxOffset {
			t.Fatalf("tick %d: offset %v exceeds %v", i, off, cfg.MaxOffset)
		}
	}
}

func TestMoveAdvancesAndWrapsProgress(t *testing.T) {
	cfg := emptyConfig()
	s := NewSession(cfg, defaultPath(t), 1)

	s.Tick(nil)
	if !almostEqual(s.Player.PathProgress, cfg.PathSpeed) {
		t.Fatalf("progress %v after one tick, want %v", s.Player.PathProgress, cfg.PathSpeed)
	}

	s.Player.PathProgress = 1 - cfg.PathSpeed/2
	s.Tick(nil)
	if s.Player.PathProgress != 0 {
		t.Fatalf("progress %v after crossing 1, want 0", s.Player.PathProgress)
	}
}

func TestViewpointFollowsOffsetAndLooksAhead(t *testing.T) {
	cfg := emptyConfig()
	path := defaultPath(t)
	s := NewSession(cfg, path, 1)

	s.Tick(held(Right, Down))
	p := s.Player.PathProgress
	frame := path.FrameAt(p, cfg.FrameDelta)
	want := path.PointAt(p).Add(frame.Right.Mul(cfg.MoveSpeed)).Add(frame.Up.Mul(cfg.MoveSpeed))

	v := s.Viewpoint()
	if !vecAlmostEqual(v.Position, want) {
		t.Errorf("position %v, want %v", v.Position, want)
	}
	if !vecAlmostEqual(v.Target, path.PointAt(p+cfg.LookAhead)) {
		t.Errorf("target %v, want look-ahead point", v.Target)
	}
	if !vecAlmostEqual(s.Frame().Forward, frame.Forward) {
		t.Errorf("frame not updated")
	}
}

func TestInvincibilityCountsDown(t *testing.T) {
	s := NewSession(emptyConfig(), defaultPath(t), 1)
	s.Player.Invincible = true
	s.Player.InvincibleFrames = 3

	for i := 0; i < 2; i++ {
		s.Tick(nil)
		if !s.Player.Invincible {
			t.Fatalf("invincibility cleared after %d ticks", i+1)
		}
	}
	s.Tick(nil)
	if s.Player.Invincible || s.Player.InvincibleFrames != 0 {
		t.Fatalf("invincible=%v frames=%d after 3 ticks", s.Player.Invincible, s.Player.InvincibleFrames)
	}
}
