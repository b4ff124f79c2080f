// Package config provides YAML-based configuration loading for the
// jumper game and its leaderboard services.
package config

// JumperConfig contains all tunable parameters for the jumper game.
type JumperConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Level   LevelConfig   `yaml:"level"`
}

// WorldConfig defines the simulation space and scoring geometry.
type WorldConfig struct {
	CanvasWidth  float64 `yaml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height"`
	CameraFactor float64 `yaml:"camera_factor"` // Camera target = playerY - canvasHeight*factor
	FallMargin   float64 `yaml:"fall_margin"`   // Distance below the viewport that ends the run
	ScoreDivisor float64 `yaml:"score_divisor"` // Height units per score point
}

// PhysicsConfig defines per-tick kinematics.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	JumpForce        float64 `yaml:"jump_force"` // Fixed bounce velocity on landing (negative = up)
	PlayerSpeed      float64 `yaml:"player_speed"`
	Friction         float64 `yaml:"friction"`          // Horizontal velocity decay when no key is held
	LandingTolerance float64 `yaml:"landing_tolerance"` // Forgiving band below a platform top
}

// PlayerConfig defines the player hitbox and spawn point.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnY float64 `yaml:"spawn_y"` // Offset from the bottom of the canvas
}

// LevelConfig defines procedural platform generation.
type LevelConfig struct {
	PlatformWidth   float64 `yaml:"platform_width"`
	PlatformHeight  float64 `yaml:"platform_height"`
	Spacing         float64 `yaml:"spacing"`          // Vertical distance between platforms
	InitialCount    int     `yaml:"initial_count"`    // Platforms generated at game start
	BatchCount      int     `yaml:"batch_count"`      // Platforms generated per extension
	RefillThreshold int     `yaml:"refill_threshold"` // Extend when player is within threshold*spacing of the top
}
