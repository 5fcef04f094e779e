package flythrough

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tuning constant of the game. Distances are world
// units, durations are ticks.
type Config struct {
	// Motion
	PathSpeed           float64 `yaml:"path_speed"`
	MoveSpeed           float64 `yaml:"move_speed"`
	ReturnToCenterSpeed float64 `yaml:"return_to_center_speed"`
	MaxOffset           float64 `yaml:"max_offset"`
	FrameDelta          float64 `yaml:"frame_delta"`
	LookAhead           float64 `yaml:"look_ahead"`

	// Collision
	PlayerRadius      float64    `yaml:"player_radius"`
	CollectibleRadius float64    `yaml:"collectible_radius"`
	ObstacleRadius    float64    `yaml:"obstacle_radius"`
	Thresholds        Thresholds `yaml:"thresholds"`

	// Placement
	Collectibles int     `yaml:"collectibles"`
	Obstacles    int     `yaml:"obstacles"`
	SpawnJitter  float64 `yaml:"spawn_jitter"`
	SpawnBias    float64 `yaml:"spawn_bias"`

	// Rules
	MaxHealth          int `yaml:"max_health"`
	CollectibleAward   int `yaml:"collectible_award"`
	WinScore           int `yaml:"win_score"`
	ObstacleDamage     int `yaml:"obstacle_damage"`
	InvincibilityTicks int `yaml:"invincibility_ticks"`

	// Effects
	ShakeFrames    int     `yaml:"shake_frames"`
	ShakeIntensity float64 `yaml:"shake_intensity"`
	FlashFrames    int     `yaml:"flash_frames"`

	// Scenery
	TubeRadius    float64      `yaml:"tube_radius"`
	ControlPoints [][3]float64 `yaml:"control_points"`
}

// Thresholds of the surface projection test.
type Thresholds struct {
	CollectibleFace   float64 `yaml:"collectible_face"`
	CollectibleOther  float64 `yaml:"collectible_other"`
	ObstacleFace      float64 `yaml:"obstacle_face"`
	ObstacleOther     float64 `yaml:"obstacle_other"`
	ObstacleEdge      float64 `yaml:"obstacle_edge"`
	ObstacleEdgeOther float64 `yaml:"obstacle_edge_other"`
	// ObstacleContact scales the obstacle radius in the narrow distance check.
	ObstacleContact float64 `yaml:"obstacle_contact"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CollectibleFace:   0.9,
		CollectibleOther:  0.5,
		ObstacleFace:      0.92,
		ObstacleOther:     0.35,
		ObstacleEdge:      0.75,
		ObstacleEdgeOther: 0.25,
		ObstacleContact:   0.9,
	}
}

// DefaultConfig returns the stock game tuning.
func DefaultConfig() Config {
	return Config{
		PathSpeed:           0.0001,
		MoveSpeed:           0.03,
		ReturnToCenterSpeed: 0.01,
		MaxOffset:           0.35,
		FrameDelta:          0.01,
		LookAhead:           0.05,

		PlayerRadius:      0.3,
		CollectibleRadius: 0.075,
		ObstacleRadius:    0.15,
		Thresholds:        DefaultThresholds(),

		Collectibles: 55,
		Obstacles:    15,
		SpawnJitter:  0.1,
		SpawnBias:    0.4,

		MaxHealth:          100,
		CollectibleAward:   10,
		WinScore:           200,
		ObstacleDamage:     20,
		InvincibilityTicks: 60,

		ShakeFrames:    10,
		ShakeIntensity: 0.05,
		FlashFrames:    18,

		TubeRadius:    0.65,
		ControlPoints: defaultControlPoints(),
	}
}

// defaultControlPoints is a closed loop that wanders in x/z with gentle
// climbs, so the forward direction never turns vertical.
func defaultControlPoints() [][3]float64 {
	return [][3]float64{
		{10.14, -1.37, 10.38},
		{9.12, -1.37, 8.58},
		{8.10, -1.37, 6.79},
		{7.77, -1.37, 4.02},
		{7.16, -1.01, 1.42},
		{5.36, -0.32, -0.62},
		{3.01, 0.26, -1.85},
		{0.35, 0.58, -2.20},
		{-2.37, 0.45, -1.66},
		{-4.60, 0.09, -0.33},
		{-5.90, -0.36, 1.62},
		{-5.95, -0.71, 3.85},
		{-4.79, -0.93, 5.86},
		{-2.66, -1.02, 7.29},
		{-0.05, -1.05, 8.03},
		{2.69, -1.12, 8.21},
		{5.37, -1.25, 8.84},
		{7.61, -1.37, 10.32},
		{9.00, -1.42, 11.60},
		{10.32, -1.40, 11.95},
	}
}

// Points converts the control points to vectors.
func (c Config) Points() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(c.ControlPoints))
	for i, p := range c.ControlPoints {
		out[i] = mgl64.Vec3{p[0], p[1], p[2]}
	}
	return out
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"path_speed", c.PathSpeed},
		{"move_speed", c.MoveSpeed},
		{"return_to_center_speed", c.ReturnToCenterSpeed},
		{"max_offset", c.MaxOffset},
		{"frame_delta", c.FrameDelta},
		{"player_radius", c.PlayerRadius},
		{"collectible_radius", c.CollectibleRadius},
		{"obstacle_radius", c.ObstacleRadius},
		{"tube_radius", c.TubeRadius},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}
	if c.PathSpeed >= 1 || c.FrameDelta >= 1 {
		return fmt.Errorf("%w: path_speed and frame_delta must be below 1", ErrInvalidConfig)
	}

	fractions := []struct {
		name  string
		value float64
	}{
		{"thresholds.collectible_face", c.Thresholds.CollectibleFace},
		{"thresholds.collectible_other", c.Thresholds.CollectibleOther},
		{"thresholds.obstacle_face", c.Thresholds.ObstacleFace},
		{"thresholds.obstacle_other", c.Thresholds.ObstacleOther},
		{"thresholds.obstacle_edge", c.Thresholds.ObstacleEdge},
		{"thresholds.obstacle_edge_other", c.Thresholds.ObstacleEdgeOther},
		{"thresholds.obstacle_contact", c.Thresholds.ObstacleContact},
	}
	for _, f := range fractions {
		if f.value <= 0 || f.value > 1 {
			return fmt.Errorf("%w: %s must be in (0,1], got %v", ErrInvalidConfig, f.name, f.value)
		}
	}

	if c.Collectibles < 0 || c.Obstacles < 0 {
		return fmt.Errorf("%w: entity counts must not be negative", ErrInvalidConfig)
	}
	if c.SpawnJitter < 0 {
		return fmt.Errorf("%w: spawn_jitter must not be negative", ErrInvalidConfig)
	}
	if c.MaxHealth <= 0 || c.WinScore <= 0 {
		return fmt.Errorf("%w: max_health and win_score must be positive", ErrInvalidConfig)
	}
	if c.CollectibleAward < 0 || c.ObstacleDamage < 0 {
		return fmt.Errorf("%w: collectible_award and obstacle_damage must not be negative", ErrInvalidConfig)
	}
	if c.InvincibilityTicks < 0 || c.ShakeFrames < 0 || c.FlashFrames < 0 {
		return fmt.Errorf("%w: tick counts must not be negative", ErrInvalidConfig)
	}
	if len(c.ControlPoints) < 4 {
		return fmt.Errorf("%w: need at least 4 control_points, got %d", ErrInvalidConfig, len(c.ControlPoints))
	}
	return nil
}

// LoadConfig decodes YAML on top of DefaultConfig, so a file only needs
// the fields it changes.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfigFile(fileName string) (Config, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return Config{}, fmt.Errorf("opening config %s: %w", fileName, err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", fileName, err)
	}
	return cfg, nil
}
