package flythrough

// Scene is the renderer side of the game. It receives the entity set of
// each new session, visibility changes and the per-tick viewpoint.
type Scene interface {
	SetEntities(entities []*Entity)
	SetVisible(e *Entity, visible bool)
	SetViewpoint(v Viewpoint)
}

// HUD is told about score, health and state changes.
type HUD interface {
	OnScoreChanged(score int)
	OnHealthChanged(health int)
	OnStateChanged(state State)
}

// Feedback plays a short cue when an entity is hit.
type Feedback interface {
	Pulse(kind Kind)
}

type nopScene struct{}

func (nopScene) SetEntities([]*Entity)    {}
func (nopScene) SetVisible(*Entity, bool) {}
func (nopScene) SetViewpoint(Viewpoint)   {}

type nopHUD struct{}

func (nopHUD) OnScoreChanged(int)  {}
func (nopHUD) OnHealthChanged(int) {}
func (nopHUD) OnStateChanged(State) {}

type nopFeedback struct{}

func (nopFeedback) Pulse(Kind) {}

// collaborators bundles the outputs a session writes to.
type collaborators struct {
	scene    Scene
	hud      HUD
	feedback Feedback
}
