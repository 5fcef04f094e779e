package flythrough

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		from, to State
		want     bool
	}{
		{Menu, Playing, true},
		{Menu, GameOver, false},
		{Menu, Win, false},
		{Playing, GameOver, true},
		{Playing, Win, true},
		{Playing, Menu, false},
		{Playing, Playing, false},
		{GameOver, Playing, true},
		{GameOver, Win, false},
		{Win, Playing, true},
		{Win, GameOver, false},
	}
	for _, tc := range testCases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%v, %v) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestGameStartsInMenu(t *testing.T) {
	g, err := NewGame(DefaultConfig(), WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	if g.State() != Menu || g.Session() != nil {
		t.Fatalf("state %v session %v", g.State(), g.Session())
	}
	g.Tick()
	if g.State() != Menu {
		t.Fatal("tick left the menu")
	}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PathSpeed = 0
	if _, err := NewGame(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestStartNotifiesCollaborators(t *testing.T) {
	hud := &recordingHUD{}
	scene := newRecordingScene()
	g, err := NewGame(DefaultConfig(), WithSeed(1), WithHUD(hud), WithScene(scene))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	cfg := g.Config()
	if len(scene.entities) != cfg.Collectibles+cfg.Obstacles {
		t.Fatalf("scene got %d entities", len(scene.entities))
	}
	if !reflect.DeepEqual(hud.scores, []int{0}) || !reflect.DeepEqual(hud.healths, []int{100}) || !reflect.DeepEqual(hud.states, []State{Playing}) {
		t.Fatalf("hud got scores %v healths %v states %v", hud.scores, hud.healths, hud.states)
	}

	g.Tick()
	if scene.viewpoint != g.Session().RenderViewpoint() {
		t.Fatal("scene did not receive the viewpoint")
	}

	if err := g.Start(); !errors.Is(err, ErrAlreadyPlaying) {
		t.Fatalf("restart while playing: err = %v", err)
	}
}

// restarting from GameOver builds a brand new session.
func TestScenarioRestartAfterGameOver(t *testing.T) {
	scene := newRecordingScene()
	g, err := NewGame(DefaultConfig(), WithSeed(5), WithScene(scene))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	old := g.Session()
	for i := 0; i < 100; i++ {
		g.Tick()
	}
	old.Player.Health = 0
	old.Player.Score = 70
	old.Entities[0].State = Consumed
	if err := old.setState(GameOver); err != nil {
		t.Fatal(err)
	}

	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	s := g.Session()
	if s == old {
		t.Fatal("session was reused")
	}
	if s.State() != Playing || s.Player.Health != 100 || s.Player.Score != 0 || s.Player.PathProgress != 0 {
		t.Fatalf("new session: state %v player %+v", s.State(), s.Player)
	}
	oldSet := make(map[*Entity]bool)
	for _, e := range old.Entities {
		oldSet[e] = true
	}
	for _, e := range s.Entities {
		if e.State != Active {
			t.Fatalf("entity %d not active", e.ID)
		}
		if oldSet[e] {
			t.Fatalf("entity %d carried over", e.ID)
		}
	}
	if len(scene.entities) != len(s.Entities) || &scene.entities[0] != &s.Entities[0] {
		t.Fatal("scene still holds the old entity set")
	}
}

func TestRestartAfterWin(t *testing.T) {
	g, err := NewGame(DefaultConfig(), WithSeed(5))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	if err := g.Session().setState(Win); err != nil {
		t.Fatal(err)
	}
	if err := g.Start(); err != nil {
		t.Fatalf("restart after win: %v", err)
	}
	if g.State() != Playing {
		t.Fatalf("state %v", g.State())
	}
}

func scriptedKeys(rng *rand.Rand, keys *KeyState) {
	if rng.Intn(8) == 0 {
		keys.Set(Direction(rng.Intn(4)), rng.Intn(2) == 0)
	}
}

func TestTickIsDeterministic(t *testing.T) {
	path := defaultPath(t)
	a := NewSession(DefaultConfig(), path, 11)
	b := NewSession(DefaultConfig(), path, 11)

	rng := rand.New(rand.NewSource(3))
	var keys KeyState
	for i := 0; i < 3000; i++ {
		scriptedKeys(rng, &keys)
		a.Tick(&keys)
		b.Tick(&keys)
		if a.Player != b.Player || a.State() != b.State() {
			t.Fatalf("tick %d diverged: %+v vs %+v", i, a.Player, b.Player)
		}
	}
	for i := range a.Entities {
		if a.Entities[i].State != b.Entities[i].State {
			t.Fatalf("entity %d diverged", i)
		}
	}
	if a.RenderViewpoint() != b.RenderViewpoint() {
		t.Fatal("render viewpoints diverged")
	}
}

func TestHealthAndScoreMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PathSpeed = 0.0005
	path := defaultPath(t)

	for seed := int64(0); seed < 5; seed++ {
		s := NewSession(cfg, path, seed)
		rng := rand.New(rand.NewSource(seed))
		var keys KeyState
		consumed := make(map[int]bool)
		for i := 0; i < 4000 && s.State() == Playing; i++ {
			health, score := s.Player.Health, s.Player.Score
			scriptedKeys(rng, &keys)
			s.Tick(&keys)

			if s.Player.Health > health || s.Player.Health < 0 || s.Player.Health > cfg.MaxHealth {
				t.Fatalf("seed %d tick %d: health %d -> %d", seed, i, health, s.Player.Health)
			}
			if s.Player.Score < score {
				t.Fatalf("seed %d tick %d: score %d -> %d", seed, i, score, s.Player.Score)
			}
			for _, e := range s.Entities {
				if consumed[e.ID] && e.State != Consumed {
					t.Fatalf("entity %d revived", e.ID)
				}
				if e.State == Consumed {
					consumed[e.ID] = true
				}
			}
		}
		if s.Player.Score != len(collected(s))*cfg.CollectibleAward {
			t.Fatalf("seed %d: score %d does not match %d collected", seed, s.Player.Score, len(collected(s)))
		}
	}
}

func collected(s *Session) []*Entity {
	var out []*Entity
	for _, e := range s.Entities {
		if e.Kind == Collectible && e.State == Consumed {
			out = append(out, e)
		}
	}
	return out
}
